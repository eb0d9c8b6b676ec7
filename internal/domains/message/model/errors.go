package model

import (
	"errors"
	"fmt"
)

const (
	ErrCodeContactNotFound = "MSG001"
	ErrCodeInquiryNotFound = "MSG002"
	ErrCodeInvalidReply    = "MSG003"
)

var (
	ErrContactNotFound = errors.New("contact not found")
	ErrInquiryNotFound = errors.New("inquiry not found")
	ErrReplyRequired   = errors.New("reply text is required")
	ErrReplyTooLong    = errors.New("reply text is too long")
)

type MessageError struct {
	Code    string
	Message string
	Err     error
}

func (e *MessageError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *MessageError) Unwrap() error {
	return e.Err
}

func NewContactNotFoundError() *MessageError {
	return &MessageError{
		Code:    ErrCodeContactNotFound,
		Message: "Contact not found",
		Err:     ErrContactNotFound,
	}
}

func NewInquiryNotFoundError() *MessageError {
	return &MessageError{
		Code:    ErrCodeInquiryNotFound,
		Message: "Inquiry not found",
		Err:     ErrInquiryNotFound,
	}
}

func NewInvalidReplyError(err error) *MessageError {
	return &MessageError{
		Code:    ErrCodeInvalidReply,
		Message: "Invalid reply",
		Err:     err,
	}
}

// IsNotFound reports whether err means the message does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, ErrContactNotFound) || errors.Is(err, ErrInquiryNotFound)
}
