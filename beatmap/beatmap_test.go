// SPDX-License-Identifier: EPL-2.0

package beatmap

import (
	"errors"
	"testing"

	"github.com/ik5/osuarchive/audio"
)

func TestNew_DoesNotCallProvider(t *testing.T) {
	t.Parallel()

	calls := 0
	provider := func(string) (audio.Waveform, error) {
		calls++
		return audio.Waveform{1}, nil
	}

	raw := []byte("osu file format v14\n")
	bm := New(raw, provider)

	if calls != 0 {
		t.Errorf("provider calls after New = %d, want 0", calls)
	}
	if string(bm.Raw()) != string(raw) {
		t.Errorf("Raw() = %q, want %q", bm.Raw(), raw)
	}
}

func TestBeatmap_Audio(t *testing.T) {
	t.Parallel()

	var asked []string
	bm := New(nil, func(name string) (audio.Waveform, error) {
		asked = append(asked, name)
		return audio.Waveform{0.5, 0.25}, nil
	})

	wf, err := bm.Audio("audio.mp3")
	if err != nil {
		t.Fatalf("Audio() error = %v", err)
	}
	if !wf.Equal(audio.Waveform{0.5, 0.25}) {
		t.Errorf("Audio() = %v, want [0.5 0.25]", wf)
	}
	if len(asked) != 1 || asked[0] != "audio.mp3" {
		t.Errorf("provider asked for %v, want [audio.mp3]", asked)
	}
}

func TestBeatmap_AudioError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	bm := New(nil, func(string) (audio.Waveform, error) { return nil, boom })

	if _, err := bm.Audio("x"); !errors.Is(err, boom) {
		t.Errorf("Audio() error = %v, want %v", err, boom)
	}
}

func TestBeatmap_NoProvider(t *testing.T) {
	t.Parallel()

	if _, err := New(nil, nil).Audio("x"); !errors.Is(err, ErrNoAudioProvider) {
		t.Errorf("Audio() error = %v, want %v", err, ErrNoAudioProvider)
	}
}

func TestBeatmap_Unimplemented(t *testing.T) {
	t.Parallel()

	bm := New([]byte("[General]\nAudioFilename: audio.mp3\n"), nil)

	if err := bm.Parse(); !errors.Is(err, ErrUnimplemented) {
		t.Errorf("Parse() error = %v, want %v", err, ErrUnimplemented)
	}
	if _, err := bm.AudioFilename(); !errors.Is(err, ErrUnimplemented) {
		t.Errorf("AudioFilename() error = %v, want %v", err, ErrUnimplemented)
	}
}
