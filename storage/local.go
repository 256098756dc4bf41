package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// Local writes uploads to disk under root; the server serves them back
// under /uploads/.
type Local struct {
	root    string
	baseURL string
}

func NewLocal(root, baseURL string) *Local {
	return &Local{root: root, baseURL: strings.TrimRight(baseURL, "/")}
}

func (l *Local) Save(ctx context.Context, dir, name, contentType string, r io.Reader) (string, error) {
	targetDir := filepath.Join(l.root, dir)
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	target := filepath.Join(targetDir, name)
	f, err := os.Create(target)
	if err != nil {
		return "", fmt.Errorf("create upload file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		os.Remove(target)
		return "", fmt.Errorf("write upload file: %w", err)
	}

	return fmt.Sprintf("%s/uploads/%s/%s", l.baseURL, dir, name), nil
}
