// SPDX-License-Identifier: EPL-2.0

// Package audio provides low-level audio primitives.
//
//   - Source: interleaved float32 PCM produced by a format decoder
//   - Decoder and Registry: decoders looked up by format key
//   - MonoMixer: averages the channels of a Source into one
//   - Waveform: a fully decoded mono signal at WaveformRate (44100 Hz)
//   - ReadAll: drains a Source into memory
//
// # Sample Format
//
// Samples are float32 in [-1.0, 1.0]; 0.0 is silence.
//
// # Reading
//
// ReadSamples returns io.EOF once the stream is finished; it may return
// the final samples together with io.EOF:
//
//	mono := audio.NewMonoMixer(src)
//	buf := make([]float32, 4096)
//	for {
//	    n, err := mono.ReadSamples(buf)
//	    // use buf[:n]
//	    if err == io.EOF {
//	        break
//	    }
//	    if err != nil {
//	        return err
//	    }
//	}
package audio
