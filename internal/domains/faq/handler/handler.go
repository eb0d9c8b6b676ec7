package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/domains/faq/model"
	"lawfirm-backend/internal/domains/faq/service"
	"lawfirm-backend/internal/shared/response"
)

const indexPath = "/admin/faqs"

type FaqHandler struct {
	faqService service.ServiceInterface
}

func NewFaqHandler(faqService service.ServiceInterface) *FaqHandler {
	return &FaqHandler{faqService: faqService}
}

// GET /admin/faqs
func (h *FaqHandler) Index(c *gin.Context) {
	faqs, err := h.faqService.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Page(c, gin.H{"faqs": faqs})
}

// GET /admin/faqs/:id
func (h *FaqHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	f, err := h.faqService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Page(c, gin.H{"faq": f})
}

// POST /admin/faqs
func (h *FaqHandler) Store(c *gin.Context) {
	req, ok := bind(c)
	if !ok {
		return
	}
	f, err := h.faqService.Create(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Done(c, http.StatusCreated, indexPath, "FAQ created successfully.", f)
}

// PUT /admin/faqs/:id
func (h *FaqHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, ok := bind(c)
	if !ok {
		return
	}
	f, err := h.faqService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Done(c, http.StatusOK, indexPath, "FAQ updated successfully.", f)
}

// DELETE /admin/faqs/:id
func (h *FaqHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.faqService.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Done(c, http.StatusOK, indexPath, "FAQ deleted successfully.", nil)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "FAQ not found")
		return uuid.Nil, false
	}
	return id, true
}

func bind(c *gin.Context) (model.FaqRequest, bool) {
	var req model.FaqRequest

	if strings.HasPrefix(c.ContentType(), "application/json") {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return req, false
		}
		return req, true
	}

	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid form data")
		return req, false
	}
	// unchecked checkboxes are not submitted, the hidden "0" field is
	if v, ok := c.GetPostForm("is_published"); ok {
		published := v == "1" || strings.EqualFold(v, "true") || strings.EqualFold(v, "on")
		req.IsPublished = &published
	}
	return req, true
}

func (h *FaqHandler) fail(c *gin.Context, err error) {
	if fields, ok := response.FieldErrors(err); ok {
		response.Invalid(c, fields, response.OldInput(c))
		return
	}

	var ferr *model.FaqError
	if errors.As(err, &ferr) && ferr.Code == model.ErrCodeFaqNotFound {
		response.NotFound(c, ferr.Message)
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("[FAQ] request failed")
	response.InternalServerError(c)
}
