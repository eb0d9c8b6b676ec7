package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// ContactRequest is the public contact form
type ContactRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Phone   string `json:"phone" form:"phone"`
	Subject string `json:"subject" form:"subject"`
	Message string `json:"message" form:"message"`
}

func (r *ContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Phone = strings.TrimSpace(r.Phone)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

func (r ContactRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.Required.Error("The name field is required."),
			validation.RuneLength(0, 255).Error("The name may not be greater than 255 characters."),
		),
		validation.Field(&r.Email,
			validation.Required.Error("The email field is required."),
			is.EmailFormat.Error("The email must be a valid email address."),
			validation.RuneLength(0, 255).Error("The email may not be greater than 255 characters."),
		),
		validation.Field(&r.Phone,
			validation.RuneLength(0, 50).Error("The phone may not be greater than 50 characters."),
		),
		validation.Field(&r.Subject,
			validation.Required.Error("The subject field is required."),
			validation.RuneLength(0, 255).Error("The subject may not be greater than 255 characters."),
		),
		validation.Field(&r.Message,
			validation.Required.Error("The message field is required."),
			validation.RuneLength(0, 2000).Error("The message may not be greater than 2000 characters."),
		),
	)
}

// InquiryRequest is the quick inquiry form; name and email are optional
type InquiryRequest struct {
	Name    string `json:"name" form:"name"`
	Email   string `json:"email" form:"email"`
	Message string `json:"message" form:"message"`
}

func (r *InquiryRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.TrimSpace(r.Email)
	r.Message = strings.TrimSpace(r.Message)
}

func (r InquiryRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Name,
			validation.RuneLength(0, 255).Error("The name may not be greater than 255 characters."),
		),
		validation.Field(&r.Email,
			is.EmailFormat.Error("The email must be a valid email address."),
			validation.RuneLength(0, 255).Error("The email may not be greater than 255 characters."),
		),
		validation.Field(&r.Message,
			validation.Required.Error("The message field is required."),
			validation.RuneLength(0, 1000).Error("The message may not be greater than 1000 characters."),
		),
	)
}

// ReplyRequest is the admin reply form for both message kinds
type ReplyRequest struct {
	AdminReply string `json:"admin_reply" form:"admin_reply"`
}

func (r *ReplyRequest) Normalize() {
	r.AdminReply = strings.TrimSpace(r.AdminReply)
}

func (r ReplyRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.AdminReply,
			validation.Required.Error("The admin reply field is required."),
			validation.RuneLength(0, MaxReplyLength).Error("The admin reply may not be greater than 2000 characters."),
		),
	)
}

// optional maps an empty form value to NULL
func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func (r ContactRequest) PhoneOrNil() *string { return optional(r.Phone) }

func (r InquiryRequest) NameOrNil() *string  { return optional(r.Name) }
func (r InquiryRequest) EmailOrNil() *string { return optional(r.Email) }
