package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawfirm-backend/internal/domains/legalservice/model"
	"lawfirm-backend/internal/domains/legalservice/repository"
	"lawfirm-backend/internal/domains/legalservice/service"
	"lawfirm-backend/internal/infrastructure/storage"
)

type nullBlobs struct{}

func (nullBlobs) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return key, nil
}
func (nullBlobs) Delete(ctx context.Context, key string) error { return nil }
func (nullBlobs) URL(key string) string                        { return key }

func setupRouter() (*gin.Engine, service.ServiceInterface) {
	gin.SetMode(gin.TestMode)
	svc := service.NewLegalService(repository.NewMemoryRepository(),
		storage.NewImages(nullBlobs{}, storage.NewImageProcessor(0), nil))
	h := NewServiceHandler(svc, 2<<20)

	r := gin.New()
	g := r.Group("/admin/services")
	g.GET("", h.Index)
	g.POST("", h.Store)
	g.GET("/:id", h.Show)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Destroy)
	return r, svc
}

func TestServiceHandler_StoreMultipart(t *testing.T) {
	r, svc := setupRouter()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)
	require.NoError(t, mw.WriteField("title", "Corporate Law"))
	require.NoError(t, mw.WriteField("description", "Incorporation and compliance"))
	require.NoError(t, mw.WriteField("features[]", "Incorporation"))
	require.NoError(t, mw.WriteField("features[]", "Contracts"))
	require.NoError(t, mw.WriteField("icon", "briefcase"))
	require.NoError(t, mw.WriteField("sort_order", "2"))
	require.NoError(t, mw.WriteField("is_active", "0"))
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/admin/services", &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	list, err := svc.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 1)
	assert.Equal(t, []string{"Incorporation", "Contracts"}, list[0].Features)
	assert.Equal(t, 2, list[0].SortOrder)
	assert.False(t, list[0].IsActive)
}

func TestServiceHandler_JSONFlow(t *testing.T) {
	r, _ := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/admin/services", strings.NewReader(
		`{"title":"Family","description":"d","features":["Custody"],"icon":"home","sort_order":0}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		Data model.ServiceResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.True(t, created.Data.IsActive)

	req = httptest.NewRequest(http.MethodPut, "/admin/services/"+created.Data.ID.String(), strings.NewReader(
		`{"title":"Family","description":"d","features":[],"icon":"home","sort_order":0}`))
	req.Header.Set("Content-Type", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "features")

	req = httptest.NewRequest(http.MethodDelete, "/admin/services/"+created.Data.ID.String(), nil)
	req.Header.Set("Accept", "application/json")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Service deleted successfully.")

	req = httptest.NewRequest(http.MethodGet, "/admin/services/"+created.Data.ID.String(), nil)
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
