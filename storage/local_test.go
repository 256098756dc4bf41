package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLocalSave(t *testing.T) {
	root := t.TempDir()
	store := NewLocal(root, "http://localhost:8080/")

	url, err := store.Save(context.Background(), "blog", "cover.png", "image/png", strings.NewReader("not-really-a-png"))
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080/uploads/blog/cover.png", url)

	data, err := os.ReadFile(filepath.Join(root, "blog", "cover.png"))
	require.NoError(t, err)
	assert.Equal(t, "not-really-a-png", string(data))
}

func TestLocalSaveCreatesDirectories(t *testing.T) {
	root := filepath.Join(t.TempDir(), "nested")
	store := NewLocal(root, "http://localhost")

	_, err := store.Save(context.Background(), "icon", "a.svg", "image/svg+xml", strings.NewReader("<svg/>"))
	require.NoError(t, err)

	_, err = os.Stat(filepath.Join(root, "icon", "a.svg"))
	require.NoError(t, err)
}
