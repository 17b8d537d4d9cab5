// SPDX-License-Identifier: EPL-2.0

package osuarchive

import (
	"fmt"
	"os"

	"github.com/ik5/osuarchive/archive"
)

// Open returns an Archive for path: a DirStore archive when path is a
// directory, an OszStore archive otherwise.
func Open(path string, opts ...archive.Option) (*archive.Archive, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %w", archive.ErrConstruction, path, err)
	}

	if info.IsDir() {
		return archive.OpenDir(path, opts...)
	}

	return archive.OpenOsz(path, opts...)
}
