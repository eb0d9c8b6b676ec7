package model

import (
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

type FaqRequest struct {
	Question  string `json:"question" form:"question"`
	Answer    string `json:"answer" form:"answer"`
	Category  string `json:"category" form:"category"`
	SortOrder *int   `json:"sort_order" form:"sort_order"`
	// IsPublished defaults to true when absent
	IsPublished *bool `json:"is_published" form:"-"`
}

func (r *FaqRequest) Normalize() {
	r.Question = strings.TrimSpace(r.Question)
	r.Answer = strings.TrimSpace(r.Answer)
	r.Category = strings.TrimSpace(r.Category)
}

func (r FaqRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Question,
			validation.Required.Error("The question field is required."),
			validation.RuneLength(0, 255).Error("The question may not be greater than 255 characters."),
		),
		validation.Field(&r.Answer, validation.Required.Error("The answer field is required.")),
		validation.Field(&r.Category,
			validation.Required.Error("The category field is required."),
			validation.RuneLength(0, 255).Error("The category may not be greater than 255 characters."),
		),
		validation.Field(&r.SortOrder,
			validation.NotNil.Error("The sort order field is required."),
			validation.Min(0).Error("The sort order must be at least 0."),
		),
	)
}

func (r FaqRequest) Published() bool {
	return r.IsPublished == nil || *r.IsPublished
}
