// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Decoding uses github.com/go-audio/wav, so chunk layouts other than the
// canonical 44 byte header (LIST, fact, padded fmt) are accepted. Only
// integer PCM 16-bit is supported.
//
//	src, err := wav.Decoder{}.Decode(file)
//	buf := make([]float32, 4096)
//	n, err := src.ReadSamples(buf)
//
// WriteWAV16 writes mono 16-bit PCM, and WriteWaveform writes an
// audio.Waveform at 44100 Hz:
//
//	err := wav.WriteWaveform(out, wf)
package wav
