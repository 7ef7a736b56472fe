package utils

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"
)

// AppError carries the HTTP status a domain failure maps to. Services
// return these; the controller helper translates them at the boundary.
type AppError struct {
	Code    int
	Message string
}

func (e *AppError) Error() string {
	return e.Message
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func BadRequest(format string, args ...any) *AppError {
	return NewAppError(fiber.StatusBadRequest, fmt.Sprintf(format, args...))
}

func Unauthorized(format string, args ...any) *AppError {
	return NewAppError(fiber.StatusUnauthorized, fmt.Sprintf(format, args...))
}

func Forbidden(format string, args ...any) *AppError {
	return NewAppError(fiber.StatusForbidden, fmt.Sprintf(format, args...))
}

func NotFound(format string, args ...any) *AppError {
	return NewAppError(fiber.StatusNotFound, fmt.Sprintf(format, args...))
}

func Conflict(format string, args ...any) *AppError {
	return NewAppError(fiber.StatusConflict, fmt.Sprintf(format, args...))
}

// AsAppError unwraps err into an *AppError if one is in the chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
