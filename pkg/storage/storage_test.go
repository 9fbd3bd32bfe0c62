package storage

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFileStoreSave(t *testing.T) {
	fs := afero.NewMemMapFs()
	store := NewFileStore(fs, "/uploads")

	path, err := store.Save(context.Background(), "pro_documents", "../../etc/my licence.pdf", strings.NewReader("pdf-bytes"))
	require.NoError(t, err)

	assert.Equal(t, "pro_documents", filepath.Dir(path))
	assert.True(t, strings.HasSuffix(path, "_my_licence.pdf"), path)

	content, err := afero.ReadFile(fs, filepath.Join("/uploads", path))
	require.NoError(t, err)
	assert.Equal(t, "pdf-bytes", string(content))
}

func TestFileStoreRejectsEmptyName(t *testing.T) {
	store := NewFileStore(afero.NewMemMapFs(), "/uploads")

	_, err := store.Save(context.Background(), "pro_documents", "..", strings.NewReader("x"))
	assert.Error(t, err)
}

func TestFileStoreHonoursCancelledContext(t *testing.T) {
	store := NewFileStore(afero.NewMemMapFs(), "/uploads")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := store.Save(ctx, "pro_documents", "id.png", strings.NewReader("x"))
	assert.ErrorIs(t, err, context.Canceled)
}
