package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/domains/article/model"
	"lawfirm-backend/internal/domains/article/service"
	"lawfirm-backend/internal/infrastructure/storage"
	"lawfirm-backend/internal/shared/query"
	"lawfirm-backend/internal/shared/response"
)

const indexPath = "/admin/articles"

type ArticleHandler struct {
	articleService service.ServiceInterface
	maxUpload      int64
}

func NewArticleHandler(articleService service.ServiceInterface, maxUpload int64) *ArticleHandler {
	return &ArticleHandler{articleService: articleService, maxUpload: maxUpload}
}

// =====================================================
// ADMIN ENDPOINTS
// =====================================================

// Index lists articles with filters and stats
// GET /admin/articles
func (h *ArticleHandler) Index(c *gin.Context) {
	f := query.FilterFromValues(c.Request.URL.Query())
	page := query.ParsePage(c.Query("page"))

	result, err := h.articleService.List(c.Request.Context(), f, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	result.Articles = result.Articles.WithLinks(c.Request.URL.Path, c.Request.URL.Query())

	response.Page(c, result)
}

// Show returns one article
// GET /admin/articles/:id
func (h *ArticleHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	article, err := h.articleService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Page(c, gin.H{"article": article, "categories": model.Categories()})
}

// Store creates an article
// POST /admin/articles
func (h *ArticleHandler) Store(c *gin.Context) {
	req, image, ok := h.bind(c)
	if !ok {
		return
	}

	article, err := h.articleService.Create(c.Request.Context(), req, image)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Done(c, http.StatusCreated, indexPath, "Article created successfully.", article)
}

// Update replaces an article's fields
// PUT /admin/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, image, ok := h.bind(c)
	if !ok {
		return
	}

	article, err := h.articleService.Update(c.Request.Context(), id, req, image)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Done(c, http.StatusOK, indexPath, "Article updated successfully.", article)
}

// Destroy deletes an article and its image
// DELETE /admin/articles/:id
func (h *ArticleHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.articleService.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Done(c, http.StatusOK, indexPath, "Article deleted successfully.", nil)
}

// =====================================================
// PUBLIC BLOG
// =====================================================

// BlogIndex lists live articles
// GET /blog
func (h *ArticleHandler) BlogIndex(c *gin.Context) {
	f := query.Filter{Category: c.Query("category"), Search: c.Query("search")}
	page := query.ParsePage(c.Query("page"))

	result, err := h.articleService.BlogIndex(c.Request.Context(), f, page)
	if err != nil {
		h.fail(c, err)
		return
	}
	result.Articles = result.Articles.WithLinks(c.Request.URL.Path, c.Request.URL.Query())

	response.Page(c, result)
}

// BlogCategory lists live articles of one category
// GET /blog/category/:category
func (h *ArticleHandler) BlogCategory(c *gin.Context) {
	page := query.ParsePage(c.Query("page"))

	result, err := h.articleService.BlogCategory(c.Request.Context(), c.Param("category"), page)
	if err != nil {
		h.fail(c, err)
		return
	}
	result.Articles = result.Articles.WithLinks(c.Request.URL.Path, c.Request.URL.Query())

	response.Page(c, result)
}

// BlogShow renders one live article and counts the view
// GET /blog/:slug
func (h *ArticleHandler) BlogShow(c *gin.Context) {
	result, err := h.articleService.BlogShow(c.Request.Context(), c.Param("slug"))
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Page(c, result)
}

// =====================================================
// HELPERS
// =====================================================

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Article not found")
		return uuid.Nil, false
	}
	return id, true
}

// bind reads a JSON body or a (multipart) form with an optional featured_image
func (h *ArticleHandler) bind(c *gin.Context) (model.ArticleRequest, *storage.Upload, bool) {
	var req model.ArticleRequest

	if strings.HasPrefix(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return req, nil, false
		}
		return req, nil, true
	}

	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data")
		return req, nil, false
	}
	if len(req.Tags) == 0 {
		req.Tags = c.PostFormArray("tags[]")
	}
	req.IsFeatured = formBool(c.PostForm("is_featured"))

	fh, err := c.FormFile("featured_image")
	if err != nil && !errors.Is(err, http.ErrMissingFile) && !errors.Is(err, http.ErrNotMultipart) {
		response.BadRequest(c, "Invalid upload")
		return req, nil, false
	}
	image, err := storage.UploadFromForm(fh, h.maxUpload)
	if err != nil {
		response.BadRequest(c, "Invalid upload")
		return req, nil, false
	}
	return req, image, true
}

// formBool accepts the values HTML forms send for a checked box
func formBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func mapArticleError(err error) (int, string) {
	var aerr *model.ArticleError
	if !errors.As(err, &aerr) {
		return http.StatusInternalServerError, response.CodeInternal
	}
	switch aerr.Code {
	case model.ErrCodeArticleNotFound, model.ErrCodeUnknownCategory:
		return http.StatusNotFound, aerr.Code
	case model.ErrCodeSlugTaken:
		return http.StatusConflict, aerr.Code
	default:
		return http.StatusBadRequest, aerr.Code
	}
}

func (h *ArticleHandler) fail(c *gin.Context, err error) {
	if fields, ok := response.FieldErrors(err); ok {
		response.Invalid(c, fields, response.OldInput(c))
		return
	}

	status, code := mapArticleError(err)
	if status == http.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("[ARTICLE] request failed")
		response.InternalServerError(c)
		return
	}

	var aerr *model.ArticleError
	errors.As(err, &aerr)
	response.ErrorResponse(c, status, code, aerr.Message)
}
