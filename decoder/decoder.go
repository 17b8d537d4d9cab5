// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"fmt"
	"math"

	"github.com/ik5/osuarchive/audio"
	"go.uber.org/zap"
)

// rateTolerance is how far, in Hz, a stream may drift from
// audio.WaveformRate before it is rejected.
const rateTolerance = 1e-3

// Decoder turns raw audio container bytes into an audio.Waveform.
type Decoder struct {
	newEngine func() Engine
	logger    *zap.Logger
}

// Option configures a Decoder.
type Option func(*Decoder)

// WithEngine sets the constructor used to obtain a fresh Engine for every
// Decode call.
func WithEngine(newEngine func() Engine) Option {
	return func(d *Decoder) {
		if newEngine != nil {
			d.newEngine = newEngine
		}
	}
}

// WithLogger sets the logger used for decode diagnostics.
func WithLogger(logger *zap.Logger) Option {
	return func(d *Decoder) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New returns a Decoder backed by NativeEngine unless WithEngine is given.
func New(opts ...Option) *Decoder {
	d := &Decoder{
		newEngine: NewNativeEngine,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Decode decodes data in a single pass. A new engine is initialized and
// torn down on every call; nothing is reused between calls.
//
// Errors match ErrDecodeInit, ErrDecodeStream, ErrUnsupportedRate or
// ErrDecodeLength under errors.Is.
func (d *Decoder) Decode(data []byte) (audio.Waveform, error) {
	engine := d.newEngine()
	defer engine.Free()

	if err := engine.Init(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecodeInit, err)
	}

	stream, err := engine.CreateStream(data)
	if err != nil {
		return nil, &StreamError{Op: OpCreate, Code: codeOf(err), Err: err}
	}
	defer stream.Free()

	rate := stream.SampleRate()
	if !(math.Abs(rate-audio.WaveformRate) <= rateTolerance) {
		return nil, &RateError{Rate: rate}
	}

	length, err := stream.Length()
	if err != nil || length < 0 {
		return nil, &LengthError{Length: length, Code: codeOf(err)}
	}
	if length > math.MaxInt32 {
		return nil, &LengthError{Length: length, Code: CodeMem}
	}

	wf := make(audio.Waveform, length)
	n, err := stream.Data(wf)
	if err != nil {
		return nil, &StreamError{Op: OpData, Code: codeOf(err), Err: err}
	}

	d.logger.Debug("decoded audio",
		zap.Int("bytes", len(data)),
		zap.Int64("length", length),
		zap.Int("samples", n),
		zap.Float64("rate", rate),
	)

	return wf[:n], nil
}
