// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis. Samples keep the
// channel count of the stream and are interleaved.
//
//	src, err := vorbis.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// ReadSamples always returns whole frames, so a dst shorter than one frame
// reads nothing.
package vorbis
