package errors

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/dright/marketplace/internal/domain"
	"github.com/dright/marketplace/internal/friendly"
)

// ErrorCode represents a standardized error code
type ErrorCode string

const (
	// Client errors (4xx)
	ErrCodeBadRequest       ErrorCode = "bad_request"
	ErrCodeNotFound         ErrorCode = "not_found"
	ErrCodeValidationFailed ErrorCode = "validation_failed"
	ErrCodeUnauthorized     ErrorCode = "unauthorized"
	ErrCodeForbidden        ErrorCode = "forbidden"
	ErrCodeConflict         ErrorCode = "conflict"
	ErrCodePayloadTooLarge  ErrorCode = "payload_too_large"

	// Server errors (5xx)
	ErrCodeInternalError ErrorCode = "internal_error"
	ErrCodeDatabaseError ErrorCode = "database_error"
	ErrCodeServiceError  ErrorCode = "service_error"
)

// APIError represents a structured API error carrying the machine code,
// the raw message, and the user-facing friendly translation
type APIError struct {
	Code     ErrorCode `json:"code"`
	Message  string    `json:"message"`
	Friendly string    `json:"friendly,omitempty"`
	Details  string    `json:"details,omitempty"`
}

func (e *APIError) Error() string {
	jsonErr, _ := json.Marshal(e)
	return string(jsonErr)
}

// HTTPStatus maps the error code to its HTTP status
func (e *APIError) HTTPStatus() int {
	switch e.Code {
	case ErrCodeBadRequest:
		return http.StatusBadRequest
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeValidationFailed:
		return http.StatusUnprocessableEntity
	case ErrCodeUnauthorized:
		return http.StatusUnauthorized
	case ErrCodeForbidden:
		return http.StatusForbidden
	case ErrCodeConflict:
		return http.StatusConflict
	case ErrCodePayloadTooLarge:
		return http.StatusRequestEntityTooLarge
	default:
		return http.StatusInternalServerError
	}
}

// Error constructors for common error types
func NewBadRequestError(message string, details ...string) *APIError {
	return &APIError{
		Code:     ErrCodeBadRequest,
		Message:  message,
		Friendly: friendly.TranslateMessage(message),
		Details:  strings.Join(details, ", "),
	}
}

func NewNotFoundError(message string, details ...string) *APIError {
	return &APIError{
		Code:     ErrCodeNotFound,
		Message:  message,
		Friendly: friendly.TranslateMessage(message),
		Details:  strings.Join(details, ", "),
	}
}

func NewValidationError(details ...string) *APIError {
	return &APIError{
		Code:     ErrCodeValidationFailed,
		Message:  "Validation failed",
		Friendly: friendly.TranslateMessage("validation failed"),
		Details:  strings.Join(details, ", "),
	}
}

func NewUnauthorizedError(message string, details ...string) *APIError {
	return &APIError{
		Code:     ErrCodeUnauthorized,
		Message:  message,
		Friendly: friendly.TranslateMessage(message),
		Details:  strings.Join(details, ", "),
	}
}

func NewForbiddenError(message string, details ...string) *APIError {
	return &APIError{
		Code:     ErrCodeForbidden,
		Message:  message,
		Friendly: friendly.TranslateMessage(message),
		Details:  strings.Join(details, ", "),
	}
}

func NewConflictError(message string, details ...string) *APIError {
	return &APIError{
		Code:     ErrCodeConflict,
		Message:  message,
		Friendly: friendly.TranslateMessage(message),
		Details:  strings.Join(details, ", "),
	}
}

func NewPayloadTooLargeError(message string, details ...string) *APIError {
	return &APIError{
		Code:     ErrCodePayloadTooLarge,
		Message:  message,
		Friendly: friendly.TranslateMessage(message),
		Details:  strings.Join(details, ", "),
	}
}

func NewInternalError(message string, details ...string) *APIError {
	return &APIError{
		Code:     ErrCodeInternalError,
		Message:  message,
		Friendly: friendly.FallbackMessage,
		Details:  strings.Join(details, ", "),
	}
}

func NewDatabaseError(message string, details ...string) *APIError {
	return &APIError{
		Code:     ErrCodeDatabaseError,
		Message:  message,
		Friendly: friendly.FallbackMessage,
		Details:  strings.Join(details, ", "),
	}
}

func NewServiceError(message string, details ...string) *APIError {
	return &APIError{
		Code:     ErrCodeServiceError,
		Message:  message,
		Friendly: friendly.TranslateMessage(message),
		Details:  strings.Join(details, ", "),
	}
}

// FromError maps domain sentinel errors onto API errors so handlers return
// the right status without inspecting store errors themselves. Raw messages
// of unrecognized errors are kept out of the response body.
func FromError(err error) *APIError {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr
	}

	code := ErrCodeInternalError
	switch {
	case errors.Is(err, domain.ErrRightNotFound),
		errors.Is(err, domain.ErrUserNotFound),
		errors.Is(err, domain.ErrStakeNotFound):
		code = ErrCodeNotFound

	case errors.Is(err, domain.ErrNotOwner),
		errors.Is(err, domain.ErrAddressBanned):
		code = ErrCodeForbidden

	case errors.Is(err, domain.ErrInvalidNonce),
		errors.Is(err, domain.ErrInvalidSignature):
		code = ErrCodeUnauthorized

	case errors.Is(err, domain.ErrNotDraft),
		errors.Is(err, domain.ErrSelfPurchase),
		errors.Is(err, domain.ErrSelfFollow),
		errors.Is(err, domain.ErrNotForSale),
		errors.Is(err, domain.ErrAuctionClosed),
		errors.Is(err, domain.ErrAuctionNotOpen),
		errors.Is(err, domain.ErrBidTooLow),
		errors.Is(err, domain.ErrNoDividends),
		errors.Is(err, domain.ErrAlreadyStaked):
		code = ErrCodeConflict

	case errors.Is(err, domain.ErrFileTooLarge):
		code = ErrCodePayloadTooLarge

	case errors.Is(err, domain.ErrUnsupportedFileType):
		return NewValidationError(err.Error())
	}

	if code == ErrCodeInternalError {
		return NewInternalError("Internal server error")
	}

	return &APIError{
		Code:     code,
		Message:  err.Error(),
		Friendly: friendly.Translate(err),
	}
}
