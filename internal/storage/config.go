package storage

import (
	"context"
	"fmt"
)

// Config selects and configures the blob store backend.
type Config struct {
	Type      string // "local" or "s3"
	UploadDir string // local: root directory for stored files
	BaseURL   string // local: public server URL prefixed to image paths
	Bucket    string // s3
	Region    string // s3
	CDNDomain string // s3: optional domain serving the bucket
}

// New builds the configured backend.
func New(ctx context.Context, cfg Config) (BlobStore, error) {
	switch cfg.Type {
	case "", "local":
		return NewLocalStore(cfg.BaseURL, cfg.UploadDir)
	case "s3":
		return NewS3Store(ctx, cfg.Region, cfg.Bucket, cfg.CDNDomain)
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Type)
	}
}
