// SPDX-License-Identifier: EPL-2.0

package archive

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DirStore is a Store over the direct children of a directory. It holds
// no open handle between calls.
type DirStore struct {
	path string
}

// OpenDir returns an Archive over the directory at path. path must exist
// and be a directory; this is checked here, before any entry is touched.
func OpenDir(path string, opts ...Option) (*Archive, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConstruction, path, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s: not a directory", ErrConstruction, path)
	}

	return New(&DirStore{path: path}, opts...), nil
}

// Path is the directory the store reads from.
func (s *DirStore) Path() string { return s.path }

func (s *DirStore) OpenContent(name string) (io.ReadCloser, error) {
	if !filepath.IsLocal(name) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	f, err := os.Open(filepath.Join(s.path, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", name, err)
	}

	if info, err := f.Stat(); err == nil && info.IsDir() {
		f.Close()
		return nil, fmt.Errorf("%w: %q is a directory", ErrNotFound, name)
	}

	return f, nil
}

// ListContent returns the names of the non-directory children in the order
// the operating system reports them. It does not recurse. Symbolic links
// that are dangling or point at a directory are left out.
func (s *DirStore) ListContent() ([]string, error) {
	d, err := os.Open(s.path)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.path, err)
	}
	defer d.Close()

	// (*os.File).ReadDir keeps directory order; os.ReadDir would sort
	entries, err := d.ReadDir(-1)
	if err != nil {
		return nil, fmt.Errorf("listing %s: %w", s.path, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		// Links are listed only when they resolve to a file
		if e.Type()&fs.ModeSymlink != 0 {
			info, err := os.Stat(filepath.Join(s.path, e.Name()))
			if err != nil || info.IsDir() {
				continue
			}
		}
		names = append(names, e.Name())
	}

	return names, nil
}
