package storage

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// Local stores artifacts as plain files under a single root directory.
type Local struct {
	root string
}

// NewLocal creates a local backend rooted at dir. The directory is not
// created until Ensure or the first Put.
func NewLocal(dir string) *Local {
	return &Local{root: dir}
}

// Ensure creates the root directory (with parents) if it does not exist.
func (l *Local) Ensure(ctx context.Context) error {
	if err := os.MkdirAll(l.root, 0o755); err != nil {
		return fmt.Errorf("create download directory: %w", err)
	}
	return nil
}

func (l *Local) Put(ctx context.Context, name string, data []byte) error {
	if err := l.Ensure(ctx); err != nil {
		return err
	}
	if err := os.WriteFile(filepath.Join(l.root, name), data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", name, err)
	}
	return nil
}

func (l *Local) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := os.ReadFile(filepath.Join(l.root, name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", name, err)
	}
	return data, nil
}

func (l *Local) Exists(ctx context.Context, name string) (bool, error) {
	info, err := os.Stat(filepath.Join(l.root, name))
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("stat %s: %w", name, err)
	}
	return info.Mode().IsRegular(), nil
}

// List returns the regular files directly under the root. A root that was
// never created lists as empty, not as an error.
func (l *Local) List(ctx context.Context) ([]Object, error) {
	entries, err := os.ReadDir(l.root)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read download directory: %w", err)
	}

	var objects []Object
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, fmt.Errorf("stat %s: %w", entry.Name(), err)
		}
		objects = append(objects, Object{
			Name:         entry.Name(),
			Size:         info.Size(),
			LastModified: info.ModTime(),
		})
	}
	return objects, nil
}

func (l *Local) Delete(ctx context.Context, name string) error {
	err := os.Remove(filepath.Join(l.root, name))
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("delete %s: %w", name, err)
	}
	return nil
}

func (l *Local) Location() string {
	return l.root
}
