// SPDX-License-Identifier: EPL-2.0

package pcm

import (
	"errors"
	"io"
	"testing"

	goaudio "github.com/go-audio/audio"
)

// mockReader mimics the go-audio decoders: a short read with a nil error
// at the end of the data chunk, then zero.
type mockReader struct {
	samples []int
	err     error
}

func (m *mockReader) Format() *goaudio.Format {
	return &goaudio.Format{SampleRate: 44100, NumChannels: 1}
}

func (m *mockReader) PCMBuffer(buf *goaudio.IntBuffer) (int, error) {
	if m.err != nil {
		return 0, m.err
	}
	n := copy(buf.Data, m.samples)
	m.samples = m.samples[n:]
	return n, nil
}

func TestSource_ReadSamples(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockReader{samples: []int{0, 16384, -16384, -32768}}, 44100, 1, 16)

	dst := make([]float32, 3)
	n, err := src.ReadSamples(dst)
	if err != nil {
		t.Fatalf("ReadSamples() error = %v", err)
	}
	if n != 3 {
		t.Fatalf("ReadSamples() n = %d, want 3", n)
	}
	want := []float32{0, 0.5, -0.5}
	for i := range n {
		if dst[i] != want[i] {
			t.Errorf("dst[%d] = %v, want %v", i, dst[i], want[i])
		}
	}

	n, err = src.ReadSamples(dst)
	if n != 1 || err != io.EOF {
		t.Errorf("ReadSamples() short read = %d, %v, want 1, io.EOF", n, err)
	}
	if dst[0] != -1 {
		t.Errorf("dst[0] = %v, want -1", dst[0])
	}

	n, err = src.ReadSamples(dst)
	if n != 0 || err != io.EOF {
		t.Errorf("ReadSamples() at end = %d, %v, want 0, io.EOF", n, err)
	}
}

func TestSource_ReadSamples_Error(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	src := NewSource(&mockReader{err: boom}, 44100, 1, 16)

	if _, err := src.ReadSamples(make([]float32, 4)); !errors.Is(err, boom) {
		t.Errorf("ReadSamples() error = %v, want %v", err, boom)
	}
}

func TestSource_ReadSamples_Empty(t *testing.T) {
	t.Parallel()

	src := NewSource(&mockReader{samples: []int{1}}, 44100, 1, 16)
	if n, err := src.ReadSamples(nil); n != 0 || err != nil {
		t.Errorf("ReadSamples(nil) = %d, %v, want 0, nil", n, err)
	}
}

func TestScale(t *testing.T) {
	t.Parallel()

	tests := []struct {
		bits int
		want float32
	}{
		{8, 128},
		{16, 32768},
		{24, 8388608},
		{32, 2147483648},
		{12, 32768},
	}

	for _, tt := range tests {
		if got := Scale(tt.bits); got != tt.want {
			t.Errorf("Scale(%d) = %v, want %v", tt.bits, got, tt.want)
		}
	}
}
