// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"archive/zip"
	"bytes"
	"math"

	"github.com/ik5/osuarchive/audio"
	"github.com/ik5/osuarchive/formats/wav"
	"github.com/ik5/osuarchive/utils"
)

// WAV16 encodes samples as a mono 16-bit PCM WAV file at sampleRate.
func WAV16(sampleRate int, samples []float32) []byte {
	pcm16 := make([]int16, len(samples))
	for i, x := range samples {
		pcm16[i] = utils.Float32ToInt16(x)
	}

	buf := new(bytes.Buffer)
	if err := wav.WriteWAV16(buf, sampleRate, pcm16); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// Sine returns n samples of a sine wave at freq Hz sampled at sampleRate.
func Sine(sampleRate, n int, freq float64) []float32 {
	out := make([]float32, n)
	for i := range out {
		t := float64(i) / float64(sampleRate)
		out[i] = float32(0.5 * math.Sin(2*math.Pi*freq*t))
	}
	return out
}

// Entry is one file of a test zip container.
type Entry struct {
	Name string
	Data []byte
}

// Zip builds a zip container holding entries in the given order.
func Zip(entries ...Entry) []byte {
	buf := new(bytes.Buffer)
	zw := zip.NewWriter(buf)
	for _, e := range entries {
		w, err := zw.Create(e.Name)
		if err != nil {
			panic(err)
		}
		if _, err := w.Write(e.Data); err != nil {
			panic(err)
		}
	}
	if err := zw.Close(); err != nil {
		panic(err)
	}
	return buf.Bytes()
}

// CountingDecoder is a decoder stub that records every call and returns a
// fixed result.
type CountingDecoder struct {
	Waveform audio.Waveform
	Err      error

	Calls  int
	Inputs [][]byte
}

// Decode returns d.Waveform or d.Err.
func (d *CountingDecoder) Decode(data []byte) (audio.Waveform, error) {
	d.Calls++
	d.Inputs = append(d.Inputs, data)
	if d.Err != nil {
		return nil, d.Err
	}
	return d.Waveform, nil
}
