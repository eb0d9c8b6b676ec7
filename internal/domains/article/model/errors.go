package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeArticleNotFound = "ART001"
	ErrCodeSlugTaken       = "ART002"
	ErrCodeUnknownCategory = "ART003"
)

var (
	ErrArticleNotFound = errors.New("article not found")
	ErrSlugTaken       = errors.New("slug already taken")
	ErrUnknownCategory = errors.New("unknown category")
)

type ArticleError struct {
	Code    string
	Message string
	Err     error
}

func (e *ArticleError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ArticleError) Unwrap() error {
	return e.Err
}

func NewArticleNotFoundError() *ArticleError {
	return &ArticleError{
		Code:    ErrCodeArticleNotFound,
		Message: "Article not found",
		Err:     ErrArticleNotFound,
	}
}

func NewSlugTakenError(slug string) *ArticleError {
	return &ArticleError{
		Code:    ErrCodeSlugTaken,
		Message: fmt.Sprintf("Could not find a free slug for %q", slug),
		Err:     ErrSlugTaken,
	}
}

func NewUnknownCategoryError(category string) *ArticleError {
	return &ArticleError{
		Code:    ErrCodeUnknownCategory,
		Message: fmt.Sprintf("Unknown category %q", category),
		Err:     ErrUnknownCategory,
	}
}
