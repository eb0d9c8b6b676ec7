package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"lawfirm-backend/internal/shared/flash"
)

type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *Error      `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
	Message string      `json:"message,omitempty"`
	// Flash carries messages set before the redirect that led here
	Flash *flash.Messages `json:"flash,omitempty"`
}

type Error struct {
	Code    string      `json:"code"`
	Message string      `json:"message"`
	Details interface{} `json:"details,omitempty"`
}

type Meta struct {
	Page     int `json:"page,omitempty"`
	PerPage  int `json:"per_page,omitempty"`
	Total    int `json:"total"`
	LastPage int `json:"last_page,omitempty"`
}

// Error codes shared by every handler
const (
	CodeBadRequest   = "BAD_REQUEST"
	CodeValidation   = "VALIDATION_ERROR"
	CodeNotFound     = "NOT_FOUND"
	CodeUnauthorized = "UNAUTHORIZED"
	CodeForbidden    = "FORBIDDEN"
	CodeInternal     = "INTERNAL_ERROR"
)

// Success responses
func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
	})
}

// SuccessMessage is used for mutations whose UI shows a confirmation line
func SuccessMessage(c *gin.Context, statusCode int, message string, data interface{}) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Message: message,
	})
}

func SuccessWithMeta(c *gin.Context, statusCode int, data interface{}, meta *Meta) {
	c.JSON(statusCode, Response{
		Success: true,
		Data:    data,
		Meta:    meta,
	})
}

// Error responses
func ErrorResponse(c *gin.Context, statusCode int, code, message string) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
		},
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, code, message string, details interface{}) {
	c.JSON(statusCode, Response{
		Success: false,
		Error: &Error{
			Code:    code,
			Message: message,
			Details: details,
		},
	})
}

func BadRequest(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusBadRequest, CodeBadRequest, message)
}

func Unauthorized(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusUnauthorized, CodeUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusForbidden, CodeForbidden, message)
}

func NotFound(c *gin.Context, message string) {
	ErrorResponse(c, http.StatusNotFound, CodeNotFound, message)
}

// InternalServerError never leaks the underlying error to the client
func InternalServerError(c *gin.Context) {
	ErrorResponse(c, http.StatusInternalServerError, CodeInternal, "Internal server error")
}

// ValidationFailed answers 422 with one message per field
func ValidationFailed(c *gin.Context, fields map[string]string) {
	ErrorWithDetails(c, http.StatusUnprocessableEntity, CodeValidation, "The given data was invalid.", fields)
}

// FieldErrors flattens ozzo validation errors into field -> message.
// Nested errors (e.g. features.0) are joined with a dot.
// The second return value is false when err is not a validation error.
func FieldErrors(err error) (map[string]string, bool) {
	var verrs validation.Errors
	if !errors.As(err, &verrs) {
		return nil, false
	}
	out := map[string]string{}
	flatten("", verrs, out)
	return out, true
}

func flatten(prefix string, verrs validation.Errors, out map[string]string) {
	for field, ferr := range verrs {
		if ferr == nil {
			continue
		}
		key := field
		if prefix != "" {
			key = prefix + "." + field
		}
		var nested validation.Errors
		if errors.As(ferr, &nested) {
			flatten(key, nested, out)
			continue
		}
		out[key] = ferr.Error()
	}
}
