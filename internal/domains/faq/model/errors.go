package model

import (
	"errors"
	"fmt"
)

const ErrCodeFaqNotFound = "FAQ001"

var ErrFaqNotFound = errors.New("faq not found")

type FaqError struct {
	Code    string
	Message string
	Err     error
}

func (e *FaqError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *FaqError) Unwrap() error {
	return e.Err
}

func NewFaqNotFoundError() *FaqError {
	return &FaqError{
		Code:    ErrCodeFaqNotFound,
		Message: "FAQ not found",
		Err:     ErrFaqNotFound,
	}
}
