package apperrors

import (
	"errors"
	"net/http"
)

// Error codes for the domain error taxonomy. Business-rule failures are
// returned as *Error values; anything else is treated as an internal fault
// at the handler boundary.
const (
	CodeValidation         = "validation_error"
	CodeNotFound           = "not_found"
	CodeInsufficientPoints = "insufficient_points"
	CodeAlreadyCompleted   = "already_completed"
	CodeAlreadyRegistered  = "already_registered"
	CodeAuthentication     = "authentication_error"
	CodeInternal           = "internal_error"
)

// Error is a domain error with a stable machine-readable code.
type Error struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (e *Error) Error() string {
	return e.Message
}

func Validation(msg string) *Error {
	return &Error{Code: CodeValidation, Message: msg}
}

func NotFound(msg string) *Error {
	return &Error{Code: CodeNotFound, Message: msg}
}

func InsufficientPoints(msg string) *Error {
	return &Error{Code: CodeInsufficientPoints, Message: msg}
}

func AlreadyCompleted(msg string) *Error {
	return &Error{Code: CodeAlreadyCompleted, Message: msg}
}

func AlreadyRegistered(msg string) *Error {
	return &Error{Code: CodeAlreadyRegistered, Message: msg}
}

func Authentication(msg string) *Error {
	return &Error{Code: CodeAuthentication, Message: msg}
}

// IsCode reports whether err carries the given domain code.
func IsCode(err error, code string) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}

// Status maps a domain error to the HTTP status used when surfacing it.
// Unknown errors map to 500; handlers must not leak their detail.
func Status(err error) int {
	var e *Error
	if !errors.As(err, &e) {
		return http.StatusInternalServerError
	}
	switch e.Code {
	case CodeValidation:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeInsufficientPoints, CodeAlreadyCompleted, CodeAlreadyRegistered:
		return http.StatusConflict
	case CodeAuthentication:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}
