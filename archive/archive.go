// SPDX-License-Identifier: EPL-2.0

package archive

import (
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/ik5/osuarchive/audio"
	"github.com/ik5/osuarchive/beatmap"
	"github.com/ik5/osuarchive/decoder"
	"go.uber.org/zap"
)

// BeatmapSuffix marks map definition entries. The match is case-sensitive.
const BeatmapSuffix = ".osu"

// Store is a named-entry backing store. Every name returned by ListContent
// must be openable with OpenContent.
//
// A Store holding a releasable resource also implements io.Closer; the
// Archive closes it on Close.
type Store interface {
	// OpenContent opens the named entry for reading. Missing names fail
	// with an error matching ErrNotFound.
	OpenContent(name string) (io.ReadCloser, error)
	// ListContent returns entry names in the store's native order.
	ListContent() ([]string, error)
}

// AudioDecoder turns raw audio entry bytes into a waveform.
type AudioDecoder interface {
	Decode(data []byte) (audio.Waveform, error)
}

// Archive reads beatmaps and audio from a Store. Decoded audio is cached
// per Archive by entry name and never evicted.
//
// An Archive is not safe for concurrent use.
type Archive struct {
	store   Store
	decoder AudioDecoder
	logger  *zap.Logger

	audios map[string]audio.Waveform
	closed bool
}

type options struct {
	decoder AudioDecoder
	logger  *zap.Logger
}

// Option configures an Archive.
type Option func(*options)

// WithDecoder sets the decoder used on audio cache misses.
func WithDecoder(d AudioDecoder) Option {
	return func(o *options) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// New returns an Archive over store with an empty audio cache.
func New(store Store, opts ...Option) *Archive {
	o := options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&o)
	}
	if o.decoder == nil {
		o.decoder = decoder.New(decoder.WithLogger(o.logger))
	}

	return &Archive{
		store:   store,
		decoder: o.decoder,
		logger:  o.logger,
		audios:  make(map[string]audio.Waveform),
	}
}

// IsBeatmapName reports whether name is a map definition entry.
func IsBeatmapName(name string) bool {
	return strings.HasSuffix(name, BeatmapSuffix)
}

// OpenContent opens the named entry of the backing store.
func (a *Archive) OpenContent(name string) (io.ReadCloser, error) {
	if a.closed {
		return nil, ErrClosed
	}
	return a.store.OpenContent(name)
}

// ListContent lists the entries of the backing store.
func (a *Archive) ListContent() ([]string, error) {
	if a.closed {
		return nil, ErrClosed
	}
	return a.store.ListContent()
}

// readContent reads a whole entry, closing it on every path.
func (a *Archive) readContent(name string) ([]byte, error) {
	rc, err := a.OpenContent(name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %q: %w", name, err)
	}

	return data, nil
}

// OpenAudio returns the decoded audio entry name. The entry is decoded on
// first access and served from the cache afterwards; failed decodes are
// not cached.
func (a *Archive) OpenAudio(name string) (audio.Waveform, error) {
	if wf, ok := a.audios[name]; ok {
		return wf, nil
	}

	data, err := a.readContent(name)
	if err != nil {
		return nil, err
	}

	wf, err := a.decoder.Decode(data)
	if err != nil {
		a.logger.Debug("audio decode failed", zap.String("name", name), zap.Error(err))
		return nil, err
	}

	a.audios[name] = wf
	a.logger.Debug("audio cached",
		zap.String("name", name),
		zap.Int("samples", len(wf)),
		zap.Duration("duration", wf.Duration()),
	)

	return wf, nil
}

// Cached reports whether name has a decoded waveform in the cache.
func (a *Archive) Cached(name string) bool {
	_, ok := a.audios[name]
	return ok
}

// CacheLen is the number of cached waveforms.
func (a *Archive) CacheLen() int { return len(a.audios) }

// Beatmaps returns a lazy sequence over the map definition entries, in the
// backing store's listing order. Listing happens when iteration starts and
// each entry is read only when reached. The first error is yielded with a
// nil Beatmap and ends the sequence.
//
// The sequence is single-use: ranging over it again yields nothing.
func (a *Archive) Beatmaps() iter.Seq2[*beatmap.Beatmap, error] {
	used := false

	return func(yield func(*beatmap.Beatmap, error) bool) {
		if used {
			return
		}
		used = true

		names, err := a.ListContent()
		if err != nil {
			yield(nil, err)
			return
		}

		for _, name := range names {
			if !IsBeatmapName(name) {
				continue
			}

			raw, err := a.readContent(name)
			if err != nil {
				yield(nil, err)
				return
			}

			a.logger.Debug("beatmap", zap.String("name", name), zap.Int("bytes", len(raw)))

			if !yield(beatmap.New(raw, a.OpenAudio), nil) {
				return
			}
		}
	}
}

// Close releases the backing store if it holds a resource. The audio cache
// is dropped. Calling Close more than once is a no-op.
func (a *Archive) Close() error {
	if a.closed {
		return nil
	}
	a.closed = true
	a.audios = nil

	c, ok := a.store.(io.Closer)
	if !ok {
		return nil
	}
	if err := c.Close(); err != nil {
		return fmt.Errorf("closing store: %w", err)
	}

	return nil
}
