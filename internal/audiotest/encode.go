// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"os"
	"testing"

	"github.com/go-audio/aiff"
	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"
)

// pcmEncoder is the part of the go-audio wav and aiff encoders used here.
type pcmEncoder interface {
	Write(buf *goaudio.IntBuffer) error
	Close() error
}

// encode runs interleaved 16-bit samples through the encoder built by
// newEnc, which needs a seekable file, and returns the written bytes.
func encode(t testing.TB, sampleRate, channels int, data []int, newEnc func(io.WriteSeeker) pcmEncoder) []byte {
	t.Helper()

	f, err := os.CreateTemp(t.TempDir(), "pcm")
	if err != nil {
		t.Fatalf("CreateTemp() error = %v", err)
	}
	defer f.Close()

	enc := newEnc(f)
	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("encoder Write() error = %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("encoder Close() error = %v", err)
	}

	out, err := os.ReadFile(f.Name())
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	return out
}

// AIFF16 encodes interleaved 16-bit samples as an AIFF file with go-audio/aiff.
func AIFF16(t testing.TB, sampleRate, channels int, data []int) []byte {
	t.Helper()

	return encode(t, sampleRate, channels, data, func(w io.WriteSeeker) pcmEncoder {
		return aiff.NewEncoder(w, sampleRate, 16, channels)
	})
}

// WAVPCM16 encodes interleaved 16-bit samples as a PCM WAV file with
// go-audio/wav. Unlike WAV16 it supports any channel count.
func WAVPCM16(t testing.TB, sampleRate, channels int, data []int) []byte {
	t.Helper()

	return encode(t, sampleRate, channels, data, func(w io.WriteSeeker) pcmEncoder {
		return gowav.NewEncoder(w, sampleRate, 16, channels, 1)
	})
}

// Stereo16 returns frames interleaved stereo frames holding left on the
// first channel and right on the second.
func Stereo16(frames, left, right int) []int {
	data := make([]int, frames*2)
	for i := range frames {
		data[2*i] = left
		data[2*i+1] = right
	}
	return data
}
