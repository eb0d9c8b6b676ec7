package model

import (
	"errors"
	"fmt"
)

const ErrCodeServiceNotFound = "SRV001"

var ErrServiceNotFound = errors.New("service not found")

type ServiceError struct {
	Code    string
	Message string
	Err     error
}

func (e *ServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *ServiceError) Unwrap() error {
	return e.Err
}

func NewServiceNotFoundError() *ServiceError {
	return &ServiceError{
		Code:    ErrCodeServiceNotFound,
		Message: "Service not found",
		Err:     ErrServiceNotFound,
	}
}
