// SPDX-License-Identifier: EPL-2.0

package archive

import "errors"

var (
	// ErrConstruction is returned when a backing store cannot be opened.
	ErrConstruction = errors.New("invalid archive backing store")

	// ErrNotFound is returned when a name is absent from the backing store.
	ErrNotFound = errors.New("archive entry not found")

	// ErrClosed is returned by content access after Close.
	ErrClosed = errors.New("archive is closed")
)
