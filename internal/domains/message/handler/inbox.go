package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"lawfirm-backend/internal/domains/message/model"
	"lawfirm-backend/internal/domains/message/service"
	"lawfirm-backend/internal/shared/query"
	"lawfirm-backend/internal/shared/response"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// inboxHandler serves the admin routes shared by contacts and inquiries
type inboxHandler[T any] struct {
	inbox service.Inbox[T]
	// plural names the listing key and URL segment ("contacts"), singular
	// the detail key ("contact"), label the user-facing noun ("Contact")
	plural   string
	singular string
	label    string
}

func (h *inboxHandler[T]) indexPath() string {
	return "/admin/" + h.plural
}

// GET /admin/{kind}
func (h *inboxHandler[T]) Index(c *gin.Context) {
	f := query.FilterFromValues(c.Request.URL.Query())
	page := query.ParsePage(c.Query("page"))

	result, err := h.inbox.List(c.Request.Context(), f, page)
	if err != nil {
		h.fail(c, err)
		return
	}

	response.Page(c, gin.H{
		h.plural:  result.Items.WithLinks(c.Request.URL.Path, c.Request.URL.Query()),
		"filters": result.Filters,
		"stats":   result.Stats,
	})
}

// Show returns one message and marks it read
// GET /admin/{kind}/:id
func (h *inboxHandler[T]) Show(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	m, err := h.inbox.Show(c.Request.Context(), id)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Page(c, gin.H{h.singular: m})
}

// Update records the admin reply
// PUT /admin/{kind}/:id
func (h *inboxHandler[T]) Update(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}

	var req model.ReplyRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Invalid request body")
		return
	}

	m, err := h.inbox.Reply(c.Request.Context(), id, req)
	if err != nil {
		h.fail(c, err)
		return
	}
	response.Done(c, http.StatusOK, response.Back(c, h.indexPath()+"/"+id.String()), "Reply sent successfully.", m)
}

// DELETE /admin/{kind}/:id
func (h *inboxHandler[T]) Destroy(c *gin.Context) {
	id, ok := h.parseID(c)
	if !ok {
		return
	}
	if err := h.inbox.Delete(c.Request.Context(), id); err != nil {
		h.fail(c, err)
		return
	}
	response.Done(c, http.StatusOK, h.indexPath(), h.label+" deleted successfully.", nil)
}

// Export downloads the filtered listing as a spreadsheet
// GET /admin/{kind}/export
func (h *inboxHandler[T]) Export(c *gin.Context) {
	f, err := h.inbox.Export(c.Request.Context(), query.FilterFromValues(c.Request.URL.Query()))
	if err != nil {
		h.fail(c, err)
		return
	}
	defer f.Close()

	filename := fmt.Sprintf("%s-%s.xlsx", h.plural, time.Now().Format("20060102-150405"))
	c.Header("Content-Type", xlsxContentType)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Status(http.StatusOK)

	if err := f.Write(c.Writer); err != nil {
		log.Error().Err(err).Str("kind", h.plural).Msg("[MESSAGE] failed to write export")
	}
}

func (h *inboxHandler[T]) parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.NotFound(c, h.label+" not found")
		return uuid.Nil, false
	}
	return id, true
}

func (h *inboxHandler[T]) fail(c *gin.Context, err error) {
	fail(c, err)
}

func fail(c *gin.Context, err error) {
	if fields, ok := response.FieldErrors(err); ok {
		response.Invalid(c, fields, response.OldInput(c))
		return
	}

	var merr *model.MessageError
	if errors.As(err, &merr) {
		switch merr.Code {
		case model.ErrCodeContactNotFound, model.ErrCodeInquiryNotFound:
			response.NotFound(c, merr.Message)
			return
		case model.ErrCodeInvalidReply:
			response.ValidationFailed(c, map[string]string{"admin_reply": merr.Err.Error()})
			return
		}
	}

	log.Error().Err(err).Str("path", c.FullPath()).Msg("[MESSAGE] request failed")
	response.InternalServerError(c)
}

// bindSubmission reads a public form or JSON body into req
func bindSubmission(c *gin.Context, req interface{}) bool {
	var err error
	if strings.HasPrefix(c.ContentType(), "application/json") {
		err = c.ShouldBindJSON(req)
	} else {
		err = c.ShouldBind(req)
	}
	if err != nil {
		response.BadRequest(c, "Invalid request body")
		return false
	}
	return true
}
