package storage

import (
	"context"
	"fmt"

	"lawfirm-backend/internal/config"
)

// New builds the blob store selected by STORAGE_DRIVER
func New(ctx context.Context, cfg config.StorageConfig) (BlobStore, error) {
	switch cfg.Driver {
	case "minio":
		return NewMinIOStorage(ctx, cfg.MinIO, cfg.PublicURL)
	case "s3":
		return NewS3Storage(ctx, cfg.S3, cfg.PublicURL)
	default:
		return nil, fmt.Errorf("unsupported storage driver %q", cfg.Driver)
	}
}
