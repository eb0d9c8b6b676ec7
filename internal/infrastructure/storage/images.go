package storage

import (
	"context"
	"fmt"
	"path"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/metrics"
)

// Cleaner schedules deletion of a blob that is no longer referenced
type Cleaner interface {
	ScheduleDelete(ctx context.Context, key string) error
}

// InlineCleaner deletes immediately. Used when no queue is configured.
type InlineCleaner struct {
	Blobs BlobStore
}

func (c InlineCleaner) ScheduleDelete(ctx context.Context, key string) error {
	err := c.Blobs.Delete(ctx, key)
	metrics.BlobOperations.WithLabelValues("delete", metrics.Result(err)).Inc()
	return err
}

// Images stores uploaded pictures for content rows and releases replaced ones.
// Keys look like "articles/<uuid>.jpg"; only the key is persisted on the row.
type Images struct {
	blobs     BlobStore
	processor *ImageProcessor
	cleaner   Cleaner
}

func NewImages(blobs BlobStore, processor *ImageProcessor, cleaner Cleaner) *Images {
	if cleaner == nil {
		cleaner = InlineCleaner{Blobs: blobs}
	}
	return &Images{blobs: blobs, processor: processor, cleaner: cleaner}
}

// Validate checks an upload without storing it
func (s *Images) Validate(up *Upload) error {
	if up.Empty() {
		return nil
	}
	_, err := s.processor.Validate(up.Data)
	return err
}

// Save processes and uploads the image under dir, returning the new key
func (s *Images) Save(ctx context.Context, dir string, up *Upload) (string, error) {
	img, err := s.processor.Process(up.Data)
	if err != nil {
		return "", err
	}

	key := path.Join(dir, uuid.NewString()+"."+img.Ext)
	_, err = s.blobs.Upload(ctx, key, img.Data, img.ContentType)
	metrics.BlobOperations.WithLabelValues("upload", metrics.Result(err)).Inc()
	if err != nil {
		return "", fmt.Errorf("store image: %w", err)
	}
	return key, nil
}

// Release drops a blob that no row references any more. Failures are logged,
// never returned: the row change has already been committed.
func (s *Images) Release(ctx context.Context, key string) {
	if key == "" {
		return
	}
	if err := s.cleaner.ScheduleDelete(ctx, key); err != nil {
		log.Warn().Err(err).Str("key", key).Msg("[STORAGE] scheduled delete failed, deleting inline")
		if err := s.blobs.Delete(ctx, key); err != nil {
			metrics.BlobOperations.WithLabelValues("delete", "error").Inc()
			log.Error().Err(err).Str("key", key).Msg("[STORAGE] orphaned blob left behind")
		}
	}
}

// URL is the public address of key, "" for no image
func (s *Images) URL(key string) string {
	if key == "" {
		return ""
	}
	return s.blobs.URL(key)
}
