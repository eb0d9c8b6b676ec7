package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lawfirm-backend/internal/domains/message/model"
	"lawfirm-backend/internal/domains/message/service"
	"lawfirm-backend/internal/shared/response"
)

type ContactHandler struct {
	inboxHandler[model.Contact]
	contactService service.ContactService
}

func NewContactHandler(contactService service.ContactService) *ContactHandler {
	return &ContactHandler{
		inboxHandler: inboxHandler[model.Contact]{
			inbox:    contactService,
			plural:   "contacts",
			singular: "contact",
			label:    "Contact",
		},
		contactService: contactService,
	}
}

// Submit stores the public contact form
// POST /contact
func (h *ContactHandler) Submit(c *gin.Context) {
	var req model.ContactRequest
	if !bindSubmission(c, &req) {
		return
	}

	contact, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		fail(c, err)
		return
	}
	response.Done(c, http.StatusCreated, response.Back(c, "/contact"),
		"Thank you for your message! We will get back to you soon.", gin.H{"id": contact.ID})
}
