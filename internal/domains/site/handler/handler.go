package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/domains/site/service"
	"lawfirm-backend/internal/shared/response"
)

// SiteHandler serves the public marketing pages and the admin dashboard
type SiteHandler struct {
	siteService service.ServiceInterface
}

func NewSiteHandler(siteService service.ServiceInterface) *SiteHandler {
	return &SiteHandler{siteService: siteService}
}

// GET /
func (h *SiteHandler) Home(c *gin.Context) {
	page, err := h.siteService.Home(c.Request.Context())
	h.render(c, page, err)
}

// GET /about
func (h *SiteHandler) About(c *gin.Context) {
	page, err := h.siteService.About(c.Request.Context())
	h.render(c, page, err)
}

// GET /services
func (h *SiteHandler) Services(c *gin.Context) {
	page, err := h.siteService.Services(c.Request.Context())
	h.render(c, page, err)
}

// GET /contact
func (h *SiteHandler) Contact(c *gin.Context) {
	page, err := h.siteService.Contact(c.Request.Context())
	h.render(c, page, err)
}

// GET /admin
func (h *SiteHandler) Dashboard(c *gin.Context) {
	d, err := h.siteService.Dashboard(c.Request.Context())
	h.render(c, d, err)
}

func (h *SiteHandler) render(c *gin.Context, page interface{}, err error) {
	if err != nil {
		log.Error().Err(err).Str("path", c.FullPath()).Msg("[SITE] failed to build page")
		response.InternalServerError(c)
		return
	}
	response.Page(c, page)
}
