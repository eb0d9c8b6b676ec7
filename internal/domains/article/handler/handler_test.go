package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lawfirm-backend/internal/domains/article/model"
	"lawfirm-backend/internal/domains/article/repository"
	"lawfirm-backend/internal/domains/article/service"
	"lawfirm-backend/internal/infrastructure/storage"
	"lawfirm-backend/internal/shared/flash"
	"lawfirm-backend/internal/shared/query"
)

type nullBlobs struct{}

func (nullBlobs) Upload(ctx context.Context, key string, data []byte, contentType string) (string, error) {
	return key, nil
}
func (nullBlobs) Delete(ctx context.Context, key string) error { return nil }
func (nullBlobs) URL(key string) string                        { return "/storage/" + key }

func setupRouter(t *testing.T) (*gin.Engine, service.ServiceInterface) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	images := storage.NewImages(nullBlobs{}, storage.NewImageProcessor(0), nil)
	svc := service.NewArticleService(repository.NewMemoryRepository(), images, nil, service.Config{})
	h := NewArticleHandler(svc, 2<<20)

	r := gin.New()
	r.Use(flash.Middleware())
	admin := r.Group("/admin/articles")
	admin.GET("", h.Index)
	admin.POST("", h.Store)
	admin.GET("/:id", h.Show)
	admin.PUT("/:id", h.Update)
	admin.DELETE("/:id", h.Destroy)

	r.GET("/blog", h.BlogIndex)
	r.GET("/blog/category/:category", h.BlogCategory)
	r.GET("/blog/:slug", h.BlogShow)
	return r, svc
}

func create(t *testing.T, svc service.ServiceInterface, title string, status model.Status) *model.ArticleResponse {
	t.Helper()
	a, err := svc.Create(context.Background(), model.ArticleRequest{
		Title: title, Content: "Body", Category: "legal-tips", Status: status,
	}, nil)
	require.NoError(t, err)
	return a
}

func doJSON(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestArticleHandler_StoreJSON(t *testing.T) {
	r, _ := setupRouter(t)

	w := doJSON(r, http.MethodPost, "/admin/articles",
		`{"title":"Know Your Rights","content":"<p>Text</p>","category":"legal-tips","status":"published","tags":["rights"," rights ",""]}`)

	require.Equal(t, http.StatusCreated, w.Code)
	var body struct {
		Message string                `json:"message"`
		Data    model.ArticleResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Article created successfully.", body.Message)
	assert.Equal(t, "know-your-rights", body.Data.Slug)
	assert.Equal(t, []string{"rights"}, body.Data.Tags)
	assert.Equal(t, "Legal Tips", body.Data.CategoryName)
	assert.NotNil(t, body.Data.PublishedAt)
}

func TestArticleHandler_StoreForm(t *testing.T) {
	r, svc := setupRouter(t)

	form := url.Values{
		"title":       {"Form Post"},
		"content":     {"Body"},
		"category":    {"general"},
		"status":      {"draft"},
		"is_featured": {"on"},
		"tags[]":      {"a", "b"},
	}
	req := httptest.NewRequest(http.MethodPost, "/admin/articles", strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "/admin/articles", w.Header().Get("Location"))

	list, err := svc.List(context.Background(), query.Filter{}, 1)
	require.NoError(t, err)
	require.Len(t, list.Articles.Items, 1)
	assert.True(t, list.Articles.Items[0].IsFeatured)
	assert.Equal(t, []string{"a", "b"}, list.Articles.Items[0].Tags)
}

func TestArticleHandler_StoreValidation(t *testing.T) {
	r, _ := setupRouter(t)

	t.Run("json", func(t *testing.T) {
		w := doJSON(r, http.MethodPost, "/admin/articles", `{"title":"","category":"nope","status":"draft"}`)
		assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Contains(t, w.Body.String(), `"title"`)
		assert.Contains(t, w.Body.String(), `"category"`)
	})

	t.Run("form redirects back with old input", func(t *testing.T) {
		form := url.Values{"title": {"Kept"}, "status": {"draft"}}
		req := httptest.NewRequest(http.MethodPost, "/admin/articles", strings.NewReader(form.Encode()))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Referer", "/admin/articles/create")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/admin/articles/create", w.Header().Get("Location"))
		assert.NotEmpty(t, w.Result().Cookies())
	})
}

func TestArticleHandler_UpdateAndDestroy(t *testing.T) {
	r, svc := setupRouter(t)
	a := create(t, svc, "Original", model.StatusDraft)

	w := doJSON(r, http.MethodPut, "/admin/articles/"+a.ID.String(),
		`{"title":"Renamed","content":"Body","category":"news","status":"published"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"slug":"renamed"`)

	w = doJSON(r, http.MethodDelete, "/admin/articles/"+a.ID.String(), "")
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodGet, "/admin/articles/"+a.ID.String(), "")
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(r, http.MethodGet, "/admin/articles/not-a-uuid", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestArticleHandler_IndexKeepsFilterInLinks(t *testing.T) {
	r, svc := setupRouter(t)
	for i := 0; i < 16; i++ {
		create(t, svc, "Post "+string(rune('a'+i)), model.StatusDraft)
	}

	w := doJSON(r, http.MethodGet, "/admin/articles?status=draft&search=post&page=1", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data model.AdminListResponse `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data.Articles.Items, 15)
	assert.Equal(t, 2, body.Data.Articles.LastPage)
	assert.Equal(t, 16, body.Data.Stats.Draft)

	next, err := url.Parse(body.Data.Articles.Links.Next)
	require.NoError(t, err)
	assert.Equal(t, "2", next.Query().Get("page"))
	assert.Equal(t, "draft", next.Query().Get("status"))
	assert.Equal(t, "post", next.Query().Get("search"))
}

func TestArticleHandler_Blog(t *testing.T) {
	r, svc := setupRouter(t)
	live := create(t, svc, "Live Tip", model.StatusPublished)
	draft := create(t, svc, "Draft Tip", model.StatusDraft)

	t.Run("show live", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/blog/"+live.Slug, "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"views":1`)
	})

	t.Run("show draft is 404", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/blog/"+draft.Slug, "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("category", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/blog/category/legal-tips", "")
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"category_name":"Legal Tips"`)

		w = doJSON(r, http.MethodGet, "/blog/category/unknown", "")
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("index", func(t *testing.T) {
		w := doJSON(r, http.MethodGet, "/blog?search=tip", "")
		require.Equal(t, http.StatusOK, w.Code)
		var body struct {
			Data model.BlogIndexResponse `json:"data"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, 1, body.Data.Articles.Total)
	})
}

func TestFormBool(t *testing.T) {
	for _, v := range []string{"1", "true", "on", "YES"} {
		assert.True(t, formBool(v), v)
	}
	for _, v := range []string{"", "0", "off", "false"} {
		assert.False(t, formBool(v), v)
	}
}
