package model

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	"lawfirm-backend/internal/shared/query"
)

// ArticleRequest is the create and update form
type ArticleRequest struct {
	Title           string   `json:"title" form:"title"`
	Excerpt         *string  `json:"excerpt" form:"excerpt"`
	Content         string   `json:"content" form:"content"`
	Category        string   `json:"category" form:"category"`
	Tags            []string `json:"tags" form:"tags"`
	Status          Status   `json:"status" form:"status"`
	IsFeatured      bool     `json:"is_featured" form:"-"`
	MetaTitle       *string  `json:"meta_title" form:"meta_title"`
	MetaDescription *string  `json:"meta_description" form:"meta_description"`
}

func (r ArticleRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Title,
			validation.Required.Error("The title field is required."),
			validation.RuneLength(0, 255).Error("The title may not be greater than 255 characters."),
		),
		validation.Field(&r.Excerpt,
			validation.RuneLength(0, 500).Error("The excerpt may not be greater than 500 characters."),
		),
		validation.Field(&r.Content, validation.Required.Error("The content field is required.")),
		validation.Field(&r.Category,
			validation.Required.Error("The category field is required."),
			validation.In(categorySlugs()...).Error("The selected category is invalid."),
		),
		validation.Field(&r.Tags, validation.Each(
			validation.RuneLength(0, 50).Error("Each tag may not be greater than 50 characters."),
		)),
		validation.Field(&r.Status,
			validation.Required.Error("The status field is required."),
			validation.In(StatusDraft, StatusPublished).Error("The selected status is invalid."),
		),
		validation.Field(&r.MetaTitle,
			validation.RuneLength(0, 255).Error("The meta title may not be greater than 255 characters."),
		),
		validation.Field(&r.MetaDescription,
			validation.RuneLength(0, 500).Error("The meta description may not be greater than 500 characters."),
		),
	)
}

// CleanTags trims tags and drops empty ones and duplicates, keeping order
func CleanTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.TrimSpace(t)
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out
}

// blank turns an empty optional string into nil
func blank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	v := strings.TrimSpace(*s)
	return &v
}

// Normalize trims the request in place before validation
func (r *ArticleRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Category = strings.TrimSpace(r.Category)
	r.Status = Status(strings.TrimSpace(string(r.Status)))
	r.Excerpt = blank(r.Excerpt)
	r.MetaTitle = blank(r.MetaTitle)
	r.MetaDescription = blank(r.MetaDescription)
	r.Tags = CleanTags(r.Tags)
}

// ArticleResponse adds the derived fields the site displays
type ArticleResponse struct {
	ID                   uuid.UUID  `json:"id"`
	Title                string     `json:"title"`
	Slug                 string     `json:"slug"`
	Excerpt              string     `json:"excerpt"`
	Content              string     `json:"content"`
	FeaturedImage        *string    `json:"featured_image"`
	FeaturedImageURL     string     `json:"featured_image_url,omitempty"`
	Category             string     `json:"category"`
	CategoryName         string     `json:"category_name"`
	Tags                 []string   `json:"tags"`
	Status               Status     `json:"status"`
	IsFeatured           bool       `json:"is_featured"`
	MetaTitle            *string    `json:"meta_title"`
	MetaDescription      *string    `json:"meta_description"`
	ReadTime             int        `json:"read_time"`
	PublishedAt          *time.Time `json:"published_at"`
	FormattedPublishedAt *string    `json:"formatted_published_at"`
	Views                int64      `json:"views"`
	CreatedAt            time.Time  `json:"created_at"`
	UpdatedAt            time.Time  `json:"updated_at"`
}

// ToResponse derives display fields; imageURL turns a blob key into a URL
func ToResponse(a Article, imageURL func(string) string) ArticleResponse {
	name, _ := CategoryName(a.Category)
	tags := a.Tags
	if tags == nil {
		tags = []string{}
	}

	resp := ArticleResponse{
		ID:                   a.ID,
		Title:                a.Title,
		Slug:                 a.Slug,
		Excerpt:              a.DisplayExcerpt(),
		Content:              a.Content,
		FeaturedImage:        a.FeaturedImage,
		Category:             a.Category,
		CategoryName:         name,
		Tags:                 tags,
		Status:               a.Status,
		IsFeatured:           a.IsFeatured,
		MetaTitle:            a.MetaTitle,
		MetaDescription:      a.MetaDescription,
		ReadTime:             a.EstimatedReadTime(),
		PublishedAt:          a.PublishedAt,
		FormattedPublishedAt: a.FormattedPublishedAt(),
		Views:                a.Views,
		CreatedAt:            a.CreatedAt,
		UpdatedAt:            a.UpdatedAt,
	}
	if a.FeaturedImage != nil && imageURL != nil {
		resp.FeaturedImageURL = imageURL(*a.FeaturedImage)
	}
	return resp
}

// AdminListResponse is the admin article index
type AdminListResponse struct {
	Articles   query.Paginator[ArticleResponse] `json:"articles"`
	Filters    query.Filter                     `json:"filters"`
	Categories []Category                       `json:"categories"`
	Stats      Stats                            `json:"stats"`
}

type BlogIndexResponse struct {
	Articles         query.Paginator[ArticleResponse] `json:"articles"`
	FeaturedArticles []ArticleResponse                `json:"featured_articles"`
	RecentArticles   []ArticleResponse                `json:"recent_articles"`
	Categories       []Category                       `json:"categories"`
	Filters          query.Filter                     `json:"filters"`
}

type BlogCategoryResponse struct {
	Articles     query.Paginator[ArticleResponse] `json:"articles"`
	Category     string                           `json:"category"`
	CategoryName string                           `json:"category_name"`
	Categories   []Category                       `json:"categories"`
}

type BlogShowResponse struct {
	Article         ArticleResponse   `json:"article"`
	RelatedArticles []ArticleResponse `json:"related_articles"`
}
