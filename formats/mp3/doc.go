// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3. Output is always
// interleaved stereo float32 in [-1.0, 1.0] at the rate of the file; wrap
// it in audio.NewMonoMixer for mono.
//
//	src, err := mp3.Decoder{}.Decode(file)
//	mono := audio.NewMonoMixer(src)
//
// Leading ID3v2 tags are skipped by go-mp3. Decoding only; there is no
// encoder.
package mp3
