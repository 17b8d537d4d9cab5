// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"bytes"
	"fmt"

	"github.com/ik5/osuarchive/audio"
	"github.com/ik5/osuarchive/formats/aiff"
	"github.com/ik5/osuarchive/formats/mp3"
	"github.com/ik5/osuarchive/formats/vorbis"
	"github.com/ik5/osuarchive/formats/wav"
)

// Registry keys for the containers the native engine understands.
const (
	FormatWAV  = "wav"
	FormatMP3  = "mp3"
	FormatOgg  = "ogg"
	FormatAIFF = "aiff"
)

// NativeEngine decodes with the pure Go decoders under formats/. Every
// stream is down-mixed to mono and prescanned into memory, so its length
// is exact.
type NativeEngine struct {
	registry *audio.Registry
}

// NewNativeEngine returns an uninitialized NativeEngine.
func NewNativeEngine() Engine { return &NativeEngine{} }

func (e *NativeEngine) Init() error {
	if e.registry != nil {
		return CodeAlready
	}

	r := audio.NewRegistry()
	r.Register(FormatWAV, wav.Decoder{})
	r.Register(FormatMP3, mp3.Decoder{})
	r.Register(FormatOgg, vorbis.Decoder{})
	r.Register(FormatAIFF, aiff.Decoder{})
	e.registry = r

	return nil
}

func (e *NativeEngine) CreateStream(data []byte) (Stream, error) {
	if e.registry == nil {
		return nil, CodeInit
	}
	if len(data) == 0 {
		return nil, CodeEmpty
	}

	format, ok := Sniff(data)
	if !ok {
		return nil, CodeFormat
	}
	dec, ok := e.registry.Get(format)
	if !ok {
		return nil, fmt.Errorf("%w: no decoder for %s", CodeFormat, format)
	}

	src, err := dec.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", CodeCodec, format, err)
	}
	defer src.Close()

	mono := audio.NewMonoMixer(src)
	samples, err := audio.ReadAll(mono, 0)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", CodeCodec, format, err)
	}

	return &nativeStream{
		rate:    float64(src.SampleRate()),
		samples: samples,
	}, nil
}

func (e *NativeEngine) Free() {
	e.registry = nil
}

type nativeStream struct {
	rate    float64
	samples []float32
}

func (s *nativeStream) SampleRate() float64 { return s.rate }

func (s *nativeStream) Length() (int64, error) {
	if s.samples == nil && s.rate == 0 {
		return -1, CodeNoData
	}
	return int64(len(s.samples)), nil
}

func (s *nativeStream) Data(dst []float32) (int, error) {
	return copy(dst, s.samples), nil
}

func (s *nativeStream) Free() {
	s.samples = nil
	s.rate = 0
}

// Sniff identifies an audio container by its leading bytes and returns
// its registry key.
func Sniff(data []byte) (string, bool) {
	switch {
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("RIFF")) && bytes.Equal(data[8:12], []byte("WAVE")):
		return FormatWAV, true
	case bytes.HasPrefix(data, []byte("OggS")):
		return FormatOgg, true
	case len(data) >= 12 && bytes.HasPrefix(data, []byte("FORM")) &&
		(bytes.Equal(data[8:12], []byte("AIFF")) || bytes.Equal(data[8:12], []byte("AIFC"))):
		return FormatAIFF, true
	case bytes.HasPrefix(data, []byte("ID3")):
		return FormatMP3, true
	case len(data) >= 2 && data[0] == 0xFF && data[1]&0xE0 == 0xE0:
		// MPEG audio frame sync
		return FormatMP3, true
	}

	return "", false
}
