// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"
	"io"
	"time"
)

// maxIdleReads bounds consecutive empty reads before ReadAll gives up.
const maxIdleReads = 64

// WaveformRate is the sample rate, in Hz, of every Waveform.
const WaveformRate = 44100

// Waveform is a fully decoded, single channel float32 signal at WaveformRate.
type Waveform []float32

// Duration of the waveform at WaveformRate.
func (w Waveform) Duration() time.Duration {
	return time.Duration(len(w)) * time.Second / WaveformRate
}

// Equal reports whether w and o hold the same samples.
func (w Waveform) Equal(o Waveform) bool {
	if len(w) != len(o) {
		return false
	}
	for i := range w {
		if w[i] != o[i] {
			return false
		}
	}
	return true
}

// ReadAll drains src into memory, reading bufSize samples at a time.
// The source is not closed.
func ReadAll(src Source, bufSize int) ([]float32, error) {
	if bufSize <= 0 {
		bufSize = src.BufSize()
	}
	if bufSize <= 0 {
		bufSize = 4096
	}
	if ch := src.Channels(); ch > 0 && bufSize%ch != 0 {
		bufSize += ch - bufSize%ch
	}

	var out []float32
	buf := make([]float32, bufSize)
	idle := 0

	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out = append(out, buf[:n]...)
		}

		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reading samples: %w", err)
		}

		if n > 0 {
			idle = 0
			continue
		}

		idle++
		if idle >= maxIdleReads {
			return nil, ErrNoProgress
		}
	}

	return out, nil
}
