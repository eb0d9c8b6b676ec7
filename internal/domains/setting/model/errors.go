package model

import (
	"errors"
	"fmt"
)

// Error codes
const (
	ErrCodeSettingNotFound = "SET001"
	ErrCodeInvalidType     = "SET002"
)

var (
	ErrSettingNotFound = errors.New("setting not found")
	ErrInvalidType     = errors.New("invalid setting type")
)

type SettingError struct {
	Code    string
	Message string
	Err     error
}

func (e *SettingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *SettingError) Unwrap() error {
	return e.Err
}

func NewInvalidTypeError(t Type) *SettingError {
	return &SettingError{
		Code:    ErrCodeInvalidType,
		Message: fmt.Sprintf("Unsupported setting type %q", t),
		Err:     ErrInvalidType,
	}
}
