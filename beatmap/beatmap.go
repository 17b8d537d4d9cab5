// SPDX-License-Identifier: EPL-2.0

// Package beatmap holds osu! map definitions read from an archive.
//
// Only construction is supported for now: a Beatmap keeps the raw .osu
// content and the audio provider of the archive it came from. Structured
// parsing returns ErrUnimplemented.
package beatmap

import (
	"errors"

	"github.com/ik5/osuarchive/audio"
)

// ErrUnimplemented is returned by every accessor that needs the .osu
// content parsed.
var ErrUnimplemented = errors.New("beatmap parsing is not implemented")

// ErrNoAudioProvider is returned by Audio on a Beatmap built without one.
var ErrNoAudioProvider = errors.New("beatmap has no audio provider")

// AudioProvider fetches a decoded audio entry by name from the archive the
// beatmap belongs to.
type AudioProvider func(name string) (audio.Waveform, error)

// Beatmap is one map definition entry.
type Beatmap struct {
	raw   []byte
	audio AudioProvider
}

// New binds raw .osu content to provider. provider is not called.
func New(raw []byte, provider AudioProvider) *Beatmap {
	return &Beatmap{raw: raw, audio: provider}
}

// Raw returns the unparsed .osu content.
func (b *Beatmap) Raw() []byte { return b.raw }

// Audio fetches the named audio entry through the bound provider.
func (b *Beatmap) Audio(name string) (audio.Waveform, error) {
	if b.audio == nil {
		return nil, ErrNoAudioProvider
	}
	return b.audio(name)
}

// Parse decodes the .osu sections into fields.
func (b *Beatmap) Parse() error {
	return ErrUnimplemented
}

// AudioFilename is the audio entry named by the General section.
func (b *Beatmap) AudioFilename() (string, error) {
	return "", ErrUnimplemented
}
