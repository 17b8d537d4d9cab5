// SPDX-License-Identifier: EPL-2.0

package decoder

// Engine is the decoding backend. Decode creates one Engine per call,
// initializes it, opens a single Stream and frees both before returning,
// so no engine state survives between calls.
type Engine interface {
	// Init prepares engine-global state. Failures should carry an ErrorCode.
	Init() error
	// CreateStream prepares a mono float32 stream over data. Failures
	// should carry an ErrorCode.
	CreateStream(data []byte) (Stream, error)
	// Free releases everything Init acquired. It is called even when Init
	// fails.
	Free()
}

// Stream is a fully prepared decode of one input.
type Stream interface {
	// SampleRate reported by the stream, in Hz.
	SampleRate() float64
	// Length is the decoded length in mono samples.
	Length() (int64, error)
	// Data copies up to len(dst) decoded samples into dst.
	Data(dst []float32) (int, error)
	// Free releases the stream.
	Free()
}
