package storage

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"strings"
)

var ErrBlobNotFound = errors.New("blob not found")

// BlobStore is the minimal contract the content services need:
// store bytes under a key, delete by key, and build a public URL.
type BlobStore interface {
	Upload(ctx context.Context, key string, data []byte, contentType string) (string, error)
	Delete(ctx context.Context, key string) error
	URL(key string) string
}

// Upload is a file received from a form
type Upload struct {
	Filename    string
	ContentType string
	Data        []byte
}

func (u *Upload) Empty() bool {
	return u == nil || len(u.Data) == 0
}

// UploadFromForm reads a multipart file. A nil header means no file was sent.
// At most limit+1 bytes are read so an oversized file still fails validation.
func UploadFromForm(fh *multipart.FileHeader, limit int64) (*Upload, error) {
	if fh == nil {
		return nil, nil
	}
	f, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("open upload: %w", err)
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, limit+1))
	if err != nil {
		return nil, fmt.Errorf("read upload: %w", err)
	}
	return &Upload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get("Content-Type"),
		Data:        data,
	}, nil
}

// publicURL joins base and key with exactly one slash
func publicURL(base, key string) string {
	if key == "" {
		return ""
	}
	return strings.TrimRight(base, "/") + "/" + strings.TrimLeft(key, "/")
}
