// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff. Only PCM 16-bit is
// supported; any channel count and sample rate is accepted.
//
//	src, err := aiff.Decoder{}.Decode(file)
//
// go-audio needs an io.ReadSeeker; other readers are buffered in memory
// first.
package aiff
