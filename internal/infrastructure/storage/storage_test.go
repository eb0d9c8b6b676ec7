package storage

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memBlobs struct {
	mu      sync.Mutex
	objects map[string][]byte
	failDel bool
}

func newMemBlobs() *memBlobs { return &memBlobs{objects: map[string][]byte{}} }

func (m *memBlobs) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[key] = data
	return m.URL(key), nil
}

func (m *memBlobs) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failDel {
		return errors.New("delete failed")
	}
	delete(m.objects, key)
	return nil
}

func (m *memBlobs) URL(key string) string { return publicURL("http://cdn.test/bucket/", key) }

type failingCleaner struct{}

func (failingCleaner) ScheduleDelete(ctx context.Context, key string) error {
	return errors.New("queue down")
}

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	img.Set(0, 0, color.RGBA{R: 255, A: 255})
	buf := new(bytes.Buffer)
	require.NoError(t, png.Encode(buf, img))
	return buf.Bytes()
}

func encodeJPEG(t *testing.T, w, h int) []byte {
	t.Helper()
	buf := new(bytes.Buffer)
	require.NoError(t, jpeg.Encode(buf, image.NewRGBA(image.Rect(0, 0, w, h)), nil))
	return buf.Bytes()
}

func TestImageProcessorValidate(t *testing.T) {
	p := NewImageProcessor(2 * 1024 * 1024)

	t.Run("accepts png", func(t *testing.T) {
		format, err := p.Validate(encodePNG(t, 10, 10))
		require.NoError(t, err)
		assert.Equal(t, "png", format)
	})

	t.Run("rejects non image", func(t *testing.T) {
		_, err := p.Validate([]byte("%PDF-1.4 not an image"))
		assert.ErrorIs(t, err, ErrInvalidImage)
	})

	t.Run("rejects oversized", func(t *testing.T) {
		small := NewImageProcessor(16)
		_, err := small.Validate(encodePNG(t, 10, 10))
		assert.ErrorIs(t, err, ErrInvalidImage)
		assert.Contains(t, err.Error(), "kilobytes")
	})

	t.Run("rejects empty", func(t *testing.T) {
		_, err := p.Validate(nil)
		assert.ErrorIs(t, err, ErrInvalidImage)
	})
}

func TestImageProcessorProcess(t *testing.T) {
	p := NewImageProcessor(10 * 1024 * 1024)
	p.MaxDimension = 100

	t.Run("shrinks large jpeg", func(t *testing.T) {
		out, err := p.Process(encodeJPEG(t, 400, 200))
		require.NoError(t, err)
		assert.Equal(t, "jpg", out.Ext)

		cfg, _, err := image.DecodeConfig(bytes.NewReader(out.Data))
		require.NoError(t, err)
		assert.Equal(t, 100, cfg.Width)
		assert.Equal(t, 50, cfg.Height)
	})

	t.Run("keeps small png as png", func(t *testing.T) {
		out, err := p.Process(encodePNG(t, 20, 20))
		require.NoError(t, err)
		assert.Equal(t, "image/png", out.ContentType)
	})
}

func TestImages(t *testing.T) {
	ctx := context.Background()

	t.Run("save stores under dir and release deletes", func(t *testing.T) {
		blobs := newMemBlobs()
		images := NewImages(blobs, NewImageProcessor(0), nil)

		key, err := images.Save(ctx, "articles", &Upload{Data: encodePNG(t, 5, 5)})
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(key, "articles/"))
		assert.True(t, strings.HasSuffix(key, ".png"))
		assert.Contains(t, blobs.objects, key)
		assert.Equal(t, "http://cdn.test/bucket/"+key, images.URL(key))

		images.Release(ctx, key)
		assert.NotContains(t, blobs.objects, key)
	})

	t.Run("release falls back to inline delete", func(t *testing.T) {
		blobs := newMemBlobs()
		blobs.objects["services/old.jpg"] = []byte("x")
		images := NewImages(blobs, NewImageProcessor(0), failingCleaner{})

		images.Release(ctx, "services/old.jpg")
		assert.Empty(t, blobs.objects)
	})

	t.Run("release of empty key is a no-op", func(t *testing.T) {
		blobs := newMemBlobs()
		blobs.failDel = true
		images := NewImages(blobs, NewImageProcessor(0), nil)
		images.Release(ctx, "")
		assert.Equal(t, "", images.URL(""))
	})

	t.Run("invalid upload is not stored", func(t *testing.T) {
		blobs := newMemBlobs()
		images := NewImages(blobs, NewImageProcessor(0), nil)
		_, err := images.Save(ctx, "articles", &Upload{Data: []byte("nope")})
		assert.ErrorIs(t, err, ErrInvalidImage)
		assert.Empty(t, blobs.objects)
	})
}
