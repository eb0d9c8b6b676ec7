package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/domains/setting/model"
	"lawfirm-backend/internal/domains/setting/service"
	"lawfirm-backend/internal/shared/response"
)

type SettingHandler struct {
	settingService service.ServiceInterface
}

func NewSettingHandler(settingService service.ServiceInterface) *SettingHandler {
	return &SettingHandler{settingService: settingService}
}

// Index lists settings grouped for the admin page
// GET /admin/settings
func (h *SettingHandler) Index(c *gin.Context) {
	groups, err := h.settingService.Grouped(c.Request.Context())
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"groups": groups})
}

// Update overwrites the submitted settings
// POST /admin/settings
func (h *SettingHandler) Update(c *gin.Context) {
	var req model.BulkUpdateRequest
	if response.WantsJSON(c) {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.BadRequest(c, "Invalid request body")
			return
		}
	} else {
		req.Settings = c.PostFormMap("settings")
	}

	n, err := h.settingService.BulkUpdate(c.Request.Context(), req)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Done(c, http.StatusOK, "/admin/settings", "Settings updated successfully.", gin.H{"updated": n})
}

func (h *SettingHandler) fail(c *gin.Context, err error) {
	if fields, ok := response.FieldErrors(err); ok {
		response.Invalid(c, fields, response.OldInput(c))
		return
	}

	var serr *model.SettingError
	if errors.As(err, &serr) {
		response.ErrorResponse(c, http.StatusBadRequest, serr.Code, serr.Message)
		return
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("[SETTINGS] request failed")
	response.InternalServerError(c)
}
