// Package errors defines the structured application error used across
// handlers and middleware to map failures onto HTTP responses.
package errors

import (
	"fmt"
	"net/http"
)

type ErrorType string

const (
	ValidationError       ErrorType = "VALIDATION_ERROR"
	MethodNotAllowedError ErrorType = "METHOD_NOT_ALLOWED"
	DeliveryError         ErrorType = "DELIVERY_ERROR"
	ServerError           ErrorType = "SERVER_ERROR"
)

// AppError represents a structured application error.
// Message is safe for API clients; Detail is operator-facing context.
type AppError struct {
	Type       ErrorType `json:"type"`
	Message    string    `json:"message"`
	Detail     string    `json:"detail,omitempty"`
	HTTPStatus int       `json:"-"`
	Raw        error     `json:"-"`
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s (%s)", e.Type, e.Message, e.Detail)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap exposes the wrapped raw error for errors.Is/As chains.
func (e *AppError) Unwrap() error {
	return e.Raw
}

// GetHTTPStatus returns the HTTP status this error maps to,
// defaulting to 500 when unset.
func (e *AppError) GetHTTPStatus() int {
	if e.HTTPStatus == 0 {
		return http.StatusInternalServerError
	}
	return e.HTTPStatus
}

// New creates a new AppError with the status implied by its type.
func New(errType ErrorType, message string, detail string) *AppError {
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     detail,
		HTTPStatus: getHTTPStatus(errType),
	}
}

// Wrap wraps a raw error with AppError context.
func Wrap(err error, errType ErrorType, message string) *AppError {
	if err == nil {
		return nil
	}
	return &AppError{
		Type:       errType,
		Message:    message,
		Detail:     err.Error(),
		HTTPStatus: getHTTPStatus(errType),
		Raw:        err,
	}
}

// ValidationFailed reports a request payload that failed validation.
func ValidationFailed(message string, detail string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    message,
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
	}
}

// MissingFields is the canonical rejection for an incomplete quote payload.
func MissingFields() *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    "Missing required fields",
		HTTPStatus: http.StatusBadRequest,
	}
}

// InvalidEmail rejects a payload whose email address fails format validation.
func InvalidEmail(detail string) *AppError {
	return &AppError{
		Type:       ValidationError,
		Message:    "Invalid email address",
		Detail:     detail,
		HTTPStatus: http.StatusBadRequest,
	}
}

// MethodNotAllowed rejects any verb other than POST on the quote endpoint.
func MethodNotAllowed() *AppError {
	return &AppError{
		Type:       MethodNotAllowedError,
		Message:    "Method not allowed",
		HTTPStatus: http.StatusMethodNotAllowed,
	}
}

// DeliveryFailed wraps an error reported by the email provider.
func DeliveryFailed(err error) *AppError {
	message := "Failed to send email"
	if err != nil && err.Error() != "" {
		message = err.Error()
	}
	return &AppError{
		Type:       DeliveryError,
		Message:    message,
		Detail:     fmt.Sprintf("%v", err),
		HTTPStatus: http.StatusInternalServerError,
		Raw:        err,
	}
}

// InternalServerError reports an unexpected failure without leaking internals.
func InternalServerError(message string) *AppError {
	return &AppError{
		Type:       ServerError,
		Message:    message,
		HTTPStatus: http.StatusInternalServerError,
	}
}

func getHTTPStatus(errType ErrorType) int {
	switch errType {
	case ValidationError:
		return http.StatusBadRequest
	case MethodNotAllowedError:
		return http.StatusMethodNotAllowed
	case DeliveryError, ServerError:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}
