package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"autorental-backend/internal/logger"
)

// LocalStore keeps images on the local filesystem under
// <uploadDir>/images/cars and hands out URLs served by the HTTP image route.
type LocalStore struct {
	baseURL   string
	imagesDir string
}

func NewLocalStore(baseURL, uploadDir string) (*LocalStore, error) {
	imagesDir := filepath.Join(uploadDir, filepath.FromSlash(ImagePrefix))
	if err := os.MkdirAll(imagesDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create images directory: %w", err)
	}
	return &LocalStore{
		baseURL:   strings.TrimRight(baseURL, "/"),
		imagesDir: imagesDir,
	}, nil
}

// Store writes data under a new unique name. A partially written file is
// removed before the error is returned.
func (s *LocalStore) Store(ctx context.Context, data []byte, ext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	name := NewName(ext)
	fullPath := s.path(name)

	logger.ExternalServiceCall("local-fs", "Store", "name", name, "bytes", len(data))
	err := os.WriteFile(fullPath, data, 0644)
	if err != nil {
		_ = os.Remove(fullPath)
		err = fmt.Errorf("failed to write image: %w", err)
	}
	logger.ExternalServiceResult("local-fs", "Store", err, "name", name)
	if err != nil {
		return "", err
	}
	return s.URL(name), nil
}

// URL is the public address of a stored image.
func (s *LocalStore) URL(name string) string {
	return s.baseURL + "/" + ImagePrefix + "/" + name
}

// Open streams a stored image back. Missing files report os.ErrNotExist.
func (s *LocalStore) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if !validName(name) {
		return nil, ErrInvalidName
	}
	return os.Open(s.path(name))
}

func (s *LocalStore) path(name string) string {
	return filepath.Join(s.imagesDir, name)
}
