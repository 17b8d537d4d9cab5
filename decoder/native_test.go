// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"errors"
	"math"
	"testing"

	"github.com/ik5/osuarchive/internal/audiotest"
)

func TestSniff(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		data   []byte
		format string
		ok     bool
	}{
		{"wav", audiotest.WAV16(44100, []float32{0}), FormatWAV, true},
		{"ogg", []byte("OggS\x00\x02rest"), FormatOgg, true},
		{"aiff", []byte("FORM\x00\x00\x00\x10AIFFCOMM"), FormatAIFF, true},
		{"aifc", []byte("FORM\x00\x00\x00\x10AIFCCOMM"), FormatAIFF, true},
		{"id3", []byte("ID3\x04\x00"), FormatMP3, true},
		{"mpeg sync", []byte{0xFF, 0xFB, 0x90, 0x00}, FormatMP3, true},
		{"riff not wave", []byte("RIFF\x00\x00\x00\x00AVI LIST"), "", false},
		{"text", []byte("[General]"), "", false},
		{"empty", nil, "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			format, ok := Sniff(tt.data)
			if format != tt.format || ok != tt.ok {
				t.Errorf("Sniff() = %q, %v, want %q, %v", format, ok, tt.format, tt.ok)
			}
		})
	}
}

func TestNativeDecode_WAV(t *testing.T) {
	t.Parallel()

	samples := audiotest.Sine(44100, 4410, 440)
	wf, err := New().Decode(audiotest.WAV16(44100, samples))
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}

	if len(wf) != len(samples) {
		t.Fatalf("Decode() len = %d, want %d", len(wf), len(samples))
	}
	for i := range wf {
		if math.Abs(float64(wf[i]-samples[i])) > 1e-3 {
			t.Fatalf("wf[%d] = %v, want ≈%v", i, wf[i], samples[i])
		}
	}
}

func TestNativeDecode_StereoDownmix(t *testing.T) {
	t.Parallel()

	const frames = 1000
	stereo := audiotest.Stereo16(frames, 1000, 0)

	tests := []struct {
		name string
		data []byte
	}{
		{"wav", audiotest.WAVPCM16(t, 44100, 2, stereo)},
		{"aiff", audiotest.AIFF16(t, 44100, 2, stereo)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			wf, err := New().Decode(tt.data)
			if err != nil {
				t.Fatalf("Decode() error = %v", err)
			}
			if len(wf) != frames {
				t.Fatalf("Decode() len = %d, want %d", len(wf), frames)
			}

			// Left at 1000/32768, right silent
			const want = float32(500.0 / 32768)
			for i, x := range wf {
				if x != want {
					t.Fatalf("wf[%d] = %v, want %v", i, x, want)
				}
			}
		})
	}
}

func TestNativeDecode_UnsupportedRate(t *testing.T) {
	t.Parallel()

	_, err := New().Decode(audiotest.WAV16(48000, make([]float32, 100)))

	var rateErr *RateError
	if !errors.As(err, &rateErr) {
		t.Fatalf("Decode() error = %v, want *RateError", err)
	}
	if rateErr.Rate != 48000 {
		t.Errorf("RateError.Rate = %v, want 48000", rateErr.Rate)
	}
}

func TestNativeDecode_StreamErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
		code ErrorCode
	}{
		{"empty", nil, CodeEmpty},
		{"unknown format", []byte("not audio at all"), CodeFormat},
		{"truncated wav", audiotest.WAV16(44100, []float32{0})[:20], CodeCodec},
		{"broken ogg", []byte("OggS garbage garbage garbage"), CodeCodec},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := New().Decode(tt.data)

			var streamErr *StreamError
			if !errors.As(err, &streamErr) {
				t.Fatalf("Decode() error = %v, want *StreamError", err)
			}
			if streamErr.Code != tt.code {
				t.Errorf("StreamError.Code = %d, want %d", streamErr.Code, tt.code)
			}
		})
	}
}

func TestNativeEngine_Lifecycle(t *testing.T) {
	t.Parallel()

	e := NewNativeEngine()

	if _, err := e.CreateStream([]byte("RIFF")); !errors.Is(err, CodeInit) {
		t.Errorf("CreateStream() before Init error = %v, want %v", err, CodeInit)
	}

	if err := e.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	if err := e.Init(); !errors.Is(err, CodeAlready) {
		t.Errorf("second Init() error = %v, want %v", err, CodeAlready)
	}

	e.Free()
	if err := e.Init(); err != nil {
		t.Errorf("Init() after Free error = %v", err)
	}
	e.Free()
	e.Free()
}

func TestNativeStream_FreedLength(t *testing.T) {
	t.Parallel()

	e := NewNativeEngine()
	if err := e.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	defer e.Free()

	s, err := e.CreateStream(audiotest.WAV16(44100, make([]float32, 10)))
	if err != nil {
		t.Fatalf("CreateStream() error = %v", err)
	}
	if n, err := s.Length(); n != 10 || err != nil {
		t.Errorf("Length() = %d, %v, want 10, nil", n, err)
	}

	s.Free()
	if n, err := s.Length(); n != -1 || !errors.Is(err, CodeNoData) {
		t.Errorf("Length() after Free = %d, %v, want -1, %v", n, err, CodeNoData)
	}
}
