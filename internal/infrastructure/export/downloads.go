// Package export renders crosswalk and dashboard workbooks and lands
// downloaded blobs in a local directory.
package export

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

// Downloads stores export blobs under a base directory and returns the
// absolute path of each saved file.
type Downloads struct {
	basePath string
}

func NewDownloads(basePath string) (*Downloads, error) {
	if basePath == "" {
		basePath = "./data/exports"
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("create export dir: %w", err)
	}
	abs, err := filepath.Abs(basePath)
	if err != nil {
		return nil, fmt.Errorf("resolve export dir: %w", err)
	}
	return &Downloads{basePath: abs}, nil
}

func (d *Downloads) Save(_ context.Context, key string, data io.Reader) (string, error) {
	path := filepath.Join(d.basePath, filepath.Base(key))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create export file: %w", err)
	}
	defer f.Close()

	if _, err := io.Copy(f, data); err != nil {
		return "", fmt.Errorf("write export file: %w", err)
	}
	return path, nil
}

func (d *Downloads) Open(_ context.Context, key string) (io.ReadCloser, error) {
	f, err := os.Open(filepath.Join(d.basePath, filepath.Base(key)))
	if err != nil {
		return nil, fmt.Errorf("open export file: %w", err)
	}
	return f, nil
}
