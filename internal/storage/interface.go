// Package storage holds the blob stores that keep uploaded car images.
package storage

import (
	"context"
	"errors"
	"io"
	"mime"
	"path"
	"strings"

	"github.com/google/uuid"
)

// ImagePrefix is the key prefix every car image is stored under.
const ImagePrefix = "images/cars"

// ErrInvalidName is returned when a blob name would escape the image prefix.
var ErrInvalidName = errors.New("invalid blob name")

// BlobStore stores image bytes and returns the URL the car record keeps.
type BlobStore interface {
	Store(ctx context.Context, data []byte, ext string) (string, error)
}

// BlobReader is implemented by stores that can stream stored blobs back,
// used to serve images when no CDN fronts the store.
type BlobReader interface {
	Open(ctx context.Context, name string) (io.ReadCloser, error)
}

// NewName returns a fresh unique blob name keeping ext, e.g. "3f1c...e2.jpg".
func NewName(ext string) string {
	return uuid.NewString() + NormalizeExt(ext)
}

// NormalizeExt lowercases ext, adds the leading dot and drops any
// character that is not a letter or digit. An unusable ext becomes "".
func NormalizeExt(ext string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(strings.TrimPrefix(strings.TrimSpace(ext), ".")) {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
	}
	if b.Len() == 0 {
		return ""
	}
	return "." + b.String()
}

// ContentType derives the MIME type from a blob name's extension.
func ContentType(name string) string {
	if ct := mime.TypeByExtension(path.Ext(name)); ct != "" {
		return ct
	}
	return "application/octet-stream"
}

// validName reports whether name is a bare file name.
func validName(name string) bool {
	return name != "" && name != "." && name != ".." && !strings.ContainsAny(name, `/\`)
}
