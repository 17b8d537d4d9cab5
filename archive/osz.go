// SPDX-License-Identifier: EPL-2.0

package archive

import (
	"archive/zip"
	"fmt"
	"io"
	"strings"
)

// OszStore is a Store over a zip container (.osz).
type OszStore struct {
	zr     *zip.Reader
	closer io.Closer
	files  map[string]*zip.File
}

func newOszStore(zr *zip.Reader, closer io.Closer) *OszStore {
	files := make(map[string]*zip.File, len(zr.File))
	for _, f := range zr.File {
		// First entry wins on duplicate names, as in the central directory
		if _, dup := files[f.Name]; !dup {
			files[f.Name] = f
		}
	}

	return &OszStore{zr: zr, closer: closer, files: files}
}

// OpenOsz opens the .osz file at path. The file handle is owned by the
// returned Archive and released by Close.
func OpenOsz(path string, opts ...Option) (*Archive, error) {
	zrc, err := zip.OpenReader(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", ErrConstruction, path, err)
	}

	return New(newOszStore(&zrc.Reader, zrc), opts...), nil
}

// NewOszFromReader reads an .osz container from r, which holds size bytes.
// r stays owned by the caller.
func NewOszFromReader(r io.ReaderAt, size int64, opts ...Option) (*Archive, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConstruction, err)
	}

	return New(newOszStore(zr, nil), opts...), nil
}

// NewOszFromZip wraps an already open container. Ownership of zrc passes
// to the Archive, which closes it on Close.
func NewOszFromZip(zrc *zip.ReadCloser, opts ...Option) *Archive {
	return New(newOszStore(&zrc.Reader, zrc), opts...)
}

func (s *OszStore) OpenContent(name string) (io.ReadCloser, error) {
	f, ok := s.files[name]
	if !ok || isDirEntry(f) {
		return nil, fmt.Errorf("%w: %q", ErrNotFound, name)
	}

	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("opening %q: %w", name, err)
	}

	return rc, nil
}

// ListContent returns entry names in central directory order. Directory
// entries are left out.
func (s *OszStore) ListContent() ([]string, error) {
	names := make([]string, 0, len(s.zr.File))
	seen := make(map[string]struct{}, len(s.zr.File))
	for _, f := range s.zr.File {
		if isDirEntry(f) {
			continue
		}
		if _, dup := seen[f.Name]; dup {
			continue
		}
		seen[f.Name] = struct{}{}
		names = append(names, f.Name)
	}

	return names, nil
}

// Close releases the container handle, if the store owns one.
func (s *OszStore) Close() error {
	if s.closer == nil {
		return nil
	}

	c := s.closer
	s.closer = nil

	return c.Close()
}

func isDirEntry(f *zip.File) bool {
	return strings.HasSuffix(f.Name, "/") || f.FileInfo().IsDir()
}
