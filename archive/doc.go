// SPDX-License-Identifier: EPL-2.0

// Package archive reads osu! beatmap archives.
//
// An Archive sits on top of a Store, which only knows how to list and open
// named entries. Two stores are provided:
//
//   - OszStore reads a zip container (.osz) via OpenOsz, NewOszFromReader
//     or NewOszFromZip.
//   - DirStore reads the direct children of an extracted directory via
//     OpenDir.
//
// Everything else lives once in Archive: entries ending in ".osu" are
// yielded as beatmaps, and any other entry can be fetched as decoded audio
// with OpenAudio, which decodes on first use and caches the waveform for
// the life of the Archive.
//
//	a, err := archive.OpenOsz("set.osz")
//	if err != nil {
//	    return err
//	}
//	defer a.Close()
//
//	for bm, err := range a.Beatmaps() {
//	    if err != nil {
//	        return err
//	    }
//	    wf, err := bm.Audio("audio.mp3")
//	    ...
//	}
//
// Construction failures match ErrConstruction and missing entries match
// ErrNotFound. Decode failures are returned as produced by the decoder
// package.
package archive
