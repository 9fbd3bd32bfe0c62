package storage

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/afero"
)

// FileStore persists uploaded files and returns their path relative to the store root.
type FileStore interface {
	Save(ctx context.Context, dir, filename string, r io.Reader) (string, error)
}

type fileStore struct {
	fs   afero.Fs
	root string
}

func NewFileStore(fs afero.Fs, root string) FileStore {
	return &fileStore{fs: fs, root: root}
}

func (s *fileStore) Save(ctx context.Context, dir, filename string, r io.Reader) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	name := sanitizeFilename(filename)
	if name == "" {
		return "", fmt.Errorf("invalid file name %q", filename)
	}

	relPath := filepath.Join(filepath.Base(dir), uuid.New().String()+"_"+name)
	fullPath := filepath.Join(s.root, relPath)

	if err := s.fs.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	f, err := s.fs.Create(fullPath)
	if err != nil {
		return "", fmt.Errorf("create file %s: %w", relPath, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		_ = s.fs.Remove(fullPath)
		return "", fmt.Errorf("write file %s: %w", relPath, err)
	}

	return relPath, nil
}

func sanitizeFilename(filename string) string {
	name := filepath.Base(strings.ReplaceAll(filename, "\\", "/"))
	if name == "." || name == "/" || name == ".." {
		return ""
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '.', r == '-', r == '_':
			return r
		default:
			return '_'
		}
	}, name)
}
