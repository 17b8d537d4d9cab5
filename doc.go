// SPDX-License-Identifier: EPL-2.0

// Package osuarchive reads osu! beatmap archives and decodes the audio they
// carry.
//
// An archive is either a packed .osz file (a zip container) or an extracted
// beatmap set directory. Map definitions are the ".osu" entries; every
// other entry, usually the song and hit sounds, is reachable as decoded
// audio.
//
// # Quick Start
//
//	a, err := osuarchive.Open("set.osz")
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	for bm, err := range a.Beatmaps() {
//	    if err != nil {
//	        return err
//	    }
//	    song, err := bm.Audio("audio.mp3")
//	    // song is mono float32 at 44100 Hz
//	}
//
// # Packages
//
//   - archive: Archive, the zip and directory stores, the audio cache
//   - beatmap: map definition entries
//   - decoder: raw bytes to audio.Waveform, one engine per call
//   - audio: Source, Registry, MonoMixer and Waveform
//   - formats/wav, formats/mp3, formats/vorbis, formats/aiff: container
//     decoders
//
// # Supported Audio
//
// WAV and AIFF (PCM 16-bit), MP3 and Ogg Vorbis. Audio must already be at
// 44100 Hz; other rates are rejected, never resampled. Multi-channel audio
// is averaged down to mono.
package osuarchive
