package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/domains/legalservice/model"
	"lawfirm-backend/internal/domains/legalservice/service"
	"lawfirm-backend/internal/infrastructure/storage"
	"lawfirm-backend/internal/shared/response"
)

const indexPath = "/admin/services"

type ServiceHandler struct {
	legalService service.ServiceInterface
	maxUpload    int64
}

func NewServiceHandler(legalService service.ServiceInterface, maxUpload int64) *ServiceHandler {
	return &ServiceHandler{legalService: legalService, maxUpload: maxUpload}
}

// Index lists every service in manual order
// GET /admin/services
func (h *ServiceHandler) Index(c *gin.Context) {
	services, err := h.legalService.List(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Page(c, gin.H{"services": services})
}

// GET /admin/services/:id
func (h *ServiceHandler) Show(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	svc, err := h.legalService.Get(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Page(c, gin.H{"service": svc})
}

// POST /admin/services
func (h *ServiceHandler) Store(c *gin.Context) {
	req, image, ok := h.bind(c)
	if !ok {
		return
	}
	svc, err := h.legalService.Create(c.Request.Context(), req, image)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Done(c, http.StatusCreated, indexPath, "Service created successfully.", svc)
}

// PUT /admin/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	req, image, ok := h.bind(c)
	if !ok {
		return
	}
	svc, err := h.legalService.Update(c.Request.Context(), id, req, image)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Done(c, http.StatusOK, indexPath, "Service updated successfully.", svc)
}

// DELETE /admin/services/:id
func (h *ServiceHandler) Destroy(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.legalService.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Done(c, http.StatusOK, indexPath, "Service deleted successfully.", nil)
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, "Service not found")
		return uuid.Nil, false
	}
	return id, true
}

func (h *ServiceHandler) bind(c *gin.Context) (model.ServiceRequest, *storage.Upload, bool) {
	var req model.ServiceRequest

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
	if len(req.Features) == 0 {
		req.Features = c.PostFormArray("features[]")
	}
	if v, ok := c.GetPostForm("is_active"); ok {
		active := formBool(v)
		req.IsActive = &active
	}

	fh, err := c.FormFile("image")
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

func formBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

func (h *ServiceHandler) fail(c *gin.Context, err error) {
	if fields, ok := response.FieldErrors(err); ok {
		response.Invalid(c, fields, response.OldInput(c))
		return
	}

	var serr *model.ServiceError
	if errors.As(err, &serr) && serr.Code == model.ErrCodeServiceNotFound {
		response.NotFound(c, serr.Message)
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("[SERVICE] request failed")
	response.InternalServerError(c)
}
