// SPDX-License-Identifier: EPL-2.0

package decoder

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	// ErrDecodeInit is returned when the engine cannot be initialized.
	ErrDecodeInit = errors.New("decoder initialization failed")
	// ErrDecodeStream is matched by every *StreamError, whether the stream
	// could not be created or its data could not be read.
	ErrDecodeStream = errors.New("decode stream failed")
	// ErrUnsupportedRate is matched by *RateError.
	ErrUnsupportedRate = errors.New("audio with non-44.1k sample rate not supported")
	// ErrDecodeLength is matched by *LengthError.
	ErrDecodeLength = errors.New("failed to get decoded length")
)

// ErrorCode is a numeric failure reason reported by an Engine. Engines
// return it (possibly wrapped) as an error so Decode can recover it with
// errors.As.
type ErrorCode int

const (
	// CodeUnknown is used when an engine error carries no code.
	CodeUnknown ErrorCode = -1
	// CodeMem reports a buffer that cannot be allocated.
	CodeMem ErrorCode = 1
	// CodeInit reports use of an engine before Init.
	CodeInit ErrorCode = 8
	// CodeAlready reports a second Init on the same engine.
	CodeAlready ErrorCode = 14
	// CodeEmpty reports empty input bytes.
	CodeEmpty ErrorCode = 31
	// CodeNoData reports a stream with no data left, e.g. after Free.
	CodeNoData ErrorCode = 37
	// CodeFormat reports an unrecognized container.
	CodeFormat ErrorCode = 41
	// CodeCodec reports a recognized container that failed to decode.
	CodeCodec ErrorCode = 44
)

var codeText = map[ErrorCode]string{
	CodeUnknown: "unknown error",
	CodeMem:     "memory error",
	CodeInit:    "engine not initialized",
	CodeAlready: "engine already initialized",
	CodeEmpty:   "empty input",
	CodeNoData:  "no audio data",
	CodeFormat:  "unsupported container format",
	CodeCodec:   "codec failure",
}

func (c ErrorCode) Error() string {
	if s, ok := codeText[c]; ok {
		return s
	}
	return "engine error " + strconv.Itoa(int(c))
}

// codeOf extracts the engine code carried by err, or CodeUnknown.
func codeOf(err error) ErrorCode {
	var code ErrorCode
	if errors.As(err, &code) {
		return code
	}
	return CodeUnknown
}

// Stream operations reported by StreamError.
const (
	OpCreate = "create"
	OpData   = "data"
)

// StreamError reports a stream failure. Op is OpCreate when the engine
// could not build a stream from the input bytes and OpData when reading
// the decoded samples failed.
type StreamError struct {
	Op   string
	Code ErrorCode
	Err  error
}

func (e *StreamError) Error() string {
	return fmt.Sprintf("%s (%s) with error code %d: %v", ErrDecodeStream, e.Op, int(e.Code), e.Err)
}

func (e *StreamError) Unwrap() []error { return []error{ErrDecodeStream, e.Err} }

// RateError reports a stream whose sample rate is not audio.WaveformRate.
type RateError struct {
	Rate float64
}

func (e *RateError) Error() string {
	return fmt.Sprintf("%s: got %g Hz", ErrUnsupportedRate, e.Rate)
}

func (e *RateError) Unwrap() error { return ErrUnsupportedRate }

// LengthError reports a stream whose decoded length is unknown or invalid.
type LengthError struct {
	Length int64
	Code   ErrorCode
}

func (e *LengthError) Error() string {
	return fmt.Sprintf("%s (length %d) with error code %d", ErrDecodeLength, e.Length, int(e.Code))
}

func (e *LengthError) Unwrap() error { return ErrDecodeLength }
