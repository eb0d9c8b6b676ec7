package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"lawfirm-backend/internal/domains/message/model"
	"lawfirm-backend/internal/domains/message/service"
	"lawfirm-backend/internal/shared/middleware"
	"lawfirm-backend/internal/shared/response"
)

type InquiryHandler struct {
	inboxHandler[model.Inquiry]
	inquiryService service.InquiryService
}

func NewInquiryHandler(inquiryService service.InquiryService) *InquiryHandler {
	return &InquiryHandler{
		inboxHandler: inboxHandler[model.Inquiry]{
			inbox:    inquiryService,
			plural:   "inquiries",
			singular: "inquiry",
			label:    "Inquiry",
		},
		inquiryService: inquiryService,
	}
}

// Submit stores the quick inquiry form together with the client IP
// POST /inquiry
func (h *InquiryHandler) Submit(c *gin.Context) {
	var req model.InquiryRequest
	if !bindSubmission(c, &req) {
		return
	}

	inquiry, err := h.inquiryService.Submit(c.Request.Context(), req, middleware.GetClientIP(c))
	if err != nil {
		fail(c, err)
		return
	}
	response.Done(c, http.StatusCreated, response.Back(c, "/"),
		"Your inquiry has been sent successfully!", gin.H{"id": inquiry.ID})
}
