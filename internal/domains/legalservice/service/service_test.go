package service

import (
	"bytes"
	"context"
	"image"
	"image/jpeg"
	"strings"
	"testing"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawfirm-backend/internal/domains/legalservice/model"
	"lawfirm-backend/internal/domains/legalservice/repository"
	"lawfirm-backend/internal/infrastructure/storage"
)

type blobs map[string]bool

func (b blobs) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	b[key] = true
	return key, nil
}

func (b blobs) Delete(ctx context.Context, key string) error {
	delete(b, key)
	return nil
}

func (b blobs) URL(key string) string { return "/media/" + key }

func jpegUpload(t *testing.T) *storage.Upload {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, image.NewGray(image.Rect(0, 0, 4, 4)), nil))
	return &storage.Upload{Filename: "x.jpg", Data: buf.Bytes()}
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

func newService() (ServiceInterface, blobs) {
	b := blobs{}
	return NewLegalService(repository.NewMemoryRepository(), storage.NewImages(b, storage.NewImageProcessor(0), nil)), b
}

func validRequest(title string, order int) model.ServiceRequest {
	return model.ServiceRequest{
		Title:       title,
		Description: "What we do",
		Features:    []string{"Consultation", "Representation"},
		Icon:        "scale",
		SortOrder:   intPtr(order),
	}
}

func TestLegalService_OrderingAndActive(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.Create(ctx, validRequest("Third", 3), nil)
	require.NoError(t, err)
	_, err = svc.Create(ctx, validRequest("First", 1), nil)
	require.NoError(t, err)
	hidden := validRequest("Hidden", 2)
	hidden.IsActive = boolPtr(false)
	_, err = svc.Create(ctx, hidden, nil)
	require.NoError(t, err)

	all, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{"First", "Hidden", "Third"}, []string{all[0].Title, all[1].Title, all[2].Title})
	assert.True(t, all[0].IsActive, "is_active defaults to true")

	active, err := svc.Active(ctx)
	require.NoError(t, err)
	require.Len(t, active, 2)
	assert.Equal(t, "First", active[0].Title)

	counts, err := svc.Counts(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Counts{Total: 3, Active: 2}, *counts)
}

func TestLegalService_Validation(t *testing.T) {
	svc, _ := newService()

	tests := []struct {
		name  string
		edit  func(r *model.ServiceRequest)
		field string
	}{
		{"no features", func(r *model.ServiceRequest) { r.Features = nil }, "features"},
		{"blank feature", func(r *model.ServiceRequest) { r.Features = []string{"ok", "  "} }, "features"},
		{"long feature", func(r *model.ServiceRequest) { r.Features = []string{strings.Repeat("x", 256)} }, "features"},
		{"missing sort order", func(r *model.ServiceRequest) { r.SortOrder = nil }, "sort_order"},
		{"negative sort order", func(r *model.ServiceRequest) { r.SortOrder = intPtr(-1) }, "sort_order"},
		{"missing icon", func(r *model.ServiceRequest) { r.Icon = "" }, "icon"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validRequest("Title", 0)
			tt.edit(&req)

			_, err := svc.Create(context.Background(), req, nil)

			var verrs validation.Errors
			require.ErrorAs(t, err, &verrs)
			assert.Contains(t, verrs, tt.field)
		})
	}
}

func TestLegalService_ImageLifecycle(t *testing.T) {
	ctx := context.Background()
	svc, b := newService()

	created, err := svc.Create(ctx, validRequest("Family Law", 1), jpegUpload(t))
	require.NoError(t, err)
	require.NotNil(t, created.Image)
	first := *created.Image
	assert.True(t, strings.HasPrefix(first, "services/"))
	assert.Equal(t, "/media/"+first, created.ImageURL)

	updated, err := svc.Update(ctx, created.ID, validRequest("Family Law", 1), jpegUpload(t))
	require.NoError(t, err)
	second := *updated.Image
	assert.True(t, b[second])
	assert.False(t, b[first])

	require.NoError(t, svc.Delete(ctx, created.ID))
	assert.Empty(t, b)

	_, err = svc.Get(ctx, created.ID)
	assert.ErrorIs(t, err, model.ErrServiceNotFound)
}
