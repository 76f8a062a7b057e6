package storage

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"sort"
)

// LocalStorage reads content from a directory tree (e.g. "./content").
type LocalStorage struct {
	baseDir string // root directory on disk, empty for in-memory filesystems
	fsys    fs.FS
}

// NewLocalStorage creates a LocalStorage rooted at baseDir.
func NewLocalStorage(baseDir string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, fsys: os.DirFS(baseDir)}
}

// NewFSStorage wraps an arbitrary fs.FS, e.g. an embed.FS or fstest.MapFS.
func NewFSStorage(fsys fs.FS) *LocalStorage {
	return &LocalStorage{fsys: fsys}
}

func (s *LocalStorage) ReadFile(ctx context.Context, name string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, name)
	}
	data, err := fs.ReadFile(s.fsys, name)
	if err != nil {
		return nil, fmt.Errorf("storage: read %s: %w", name, err)
	}
	return data, nil
}

func (s *LocalStorage) ReadDir(ctx context.Context, dir string) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(dir) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidPath, dir)
	}
	entries, err := fs.ReadDir(s.fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("storage: readdir %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.Type().IsRegular() {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)
	return names, nil
}

func (s *LocalStorage) Ping(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	info, err := fs.Stat(s.fsys, ".")
	if err != nil {
		return fmt.Errorf("storage: stat %s: %w", s.baseDir, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("storage: %s is not a directory", s.baseDir)
	}
	return nil
}
