package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"
)

type ServiceRequest struct {
	Title       string   `json:"title" form:"title"`
	Description string   `json:"description" form:"description"`
	Features    []string `json:"features" form:"features"`
	Icon        string   `json:"icon" form:"icon"`
	SortOrder   *int     `json:"sort_order" form:"sort_order"`
	// IsActive defaults to true when absent
	IsActive *bool `json:"is_active" form:"-"`
}

func (r *ServiceRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.Icon = strings.TrimSpace(r.Icon)
	for i, f := range r.Features {
		r.Features[i] = strings.TrimSpace(f)
	}
}

func (r ServiceRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("The title field is required."),
			validation.RuneLength(0, 255).Error("The title may not be greater than 255 characters."),
		),
		validation.Field(&r.Description, validation.Required.Error("The description field is required.")),
		validation.Field(&r.Features,
			validation.Required.Error("The features field is required."),
			validation.Length(1, 0).Error("The features must have at least 1 items."),
			validation.Each(
				validation.Required.Error("Each feature is required."),
				validation.RuneLength(0, 255).Error("Each feature may not be greater than 255 characters."),
			),
		),
		validation.Field(&r.Icon,
			validation.Required.Error("The icon field is required."),
			validation.RuneLength(0, 255).Error("The icon may not be greater than 255 characters."),
		),
		validation.Field(&r.SortOrder,
			validation.NotNil.Error("The sort order field is required."),
			validation.Min(0).Error("The sort order must be at least 0."),
		),
	)
}

func (r ServiceRequest) Active() bool {
	return r.IsActive == nil || *r.IsActive
}

type ServiceResponse struct {
	ID          uuid.UUID `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Features    []string  `json:"features"`
	Icon        string    `json:"icon"`
	Image       *string   `json:"image"`
	ImageURL    string    `json:"image_url,omitempty"`
	SortOrder   int       `json:"sort_order"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToResponse(s Service, imageURL func(string) string) ServiceResponse {
	features := s.Features
	if features == nil {
		features = []string{}
	}
	resp := ServiceResponse{
		ID:          s.ID,
		Title:       s.Title,
		Description: s.Description,
		Features:    features,
		Icon:        s.Icon,
		Image:       s.ImageURL,
		SortOrder:   s.SortOrder,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
	if s.ImageURL != nil && imageURL != nil {
		resp.ImageURL = imageURL(*s.ImageURL)
	}
	return resp
}
