package storage

import (
	"context"
	"errors"
)

// ErrInvalidPath is returned for names that would escape the content root.
var ErrInvalidPath = errors.New("storage: invalid path")

// Source is read-only access to content files. The local filesystem
// implementation can be swapped for another backend without touching callers.
type Source interface {
	// ReadFile returns the contents of the file at name (slash separated,
	// relative to the content root).
	ReadFile(ctx context.Context, name string) ([]byte, error)

	// ReadDir returns the names of the regular files directly inside dir,
	// sorted by name.
	ReadDir(ctx context.Context, dir string) ([]string, error)

	// Ping reports whether the content root is reachable.
	Ping(ctx context.Context) error
}
