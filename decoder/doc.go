// SPDX-License-Identifier: EPL-2.0

// Package decoder converts raw audio container bytes into mono float32
// waveforms at 44100 Hz.
//
// Decoding goes through an Engine. Each call to Decoder.Decode follows the
// same fixed sequence:
//
//  1. create and Init a new Engine (failure: ErrDecodeInit)
//  2. CreateStream over the whole input (failure: *StreamError, carrying
//     the engine's numeric ErrorCode)
//  3. check the stream sample rate is 44100 Hz within 1e-3 (failure:
//     *RateError; nothing is resampled)
//  4. read the decoded length (failure: *LengthError)
//  5. pull the entire length with a single Data call
//
// The stream and the engine are freed on every path out of Decode. Engines
// are never shared between calls.
//
// The default engine, NativeEngine, identifies the container with Sniff and
// decodes WAV, MP3, Ogg Vorbis and AIFF through the formats packages:
//
//	dec := decoder.New()
//	wf, err := dec.Decode(data)
//	if errors.Is(err, decoder.ErrUnsupportedRate) {
//	    // not 44.1 kHz
//	}
package decoder
