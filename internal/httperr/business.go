package httperr

import (
	"errors"
	"net/http"
)

// Kind classifies an error for the HTTP layer.
type Kind string

const (
	KindValidation   Kind = "validation"
	KindUnauthorized Kind = "unauthorized"
	KindInvalidToken Kind = "invalid_token"
	KindForbidden    Kind = "forbidden"
	KindNotFound     Kind = "not_found"
	KindConflict     Kind = "conflict"
	KindBusiness     Kind = "business"
	KindInternal     Kind = "internal"
)

// Error is the error type every use case returns for expected failures.
// Code is stable and machine readable; Message is shown to the client.
type Error struct {
	Kind    Kind
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Code + ": " + e.Err.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.Err
}

// ======================================================
// CONSTRUCTORS
// ======================================================

func New(kind Kind, code, message string) error {
	return &Error{Kind: kind, Code: code, Message: message}
}

func Validation(code, message string) error {
	return New(KindValidation, code, message)
}

func Unauthorized(code, message string) error {
	return New(KindUnauthorized, code, message)
}

func InvalidToken(message string) error {
	return New(KindInvalidToken, "invalid_token", message)
}

func Forbidden(code, message string) error {
	return New(KindForbidden, code, message)
}

func NotFound(code, message string) error {
	return New(KindNotFound, code, message)
}

func Conflict(code, message string) error {
	return New(KindConflict, code, message)
}

// ErrBusiness reports a business-rule violation (booking in the past,
// unavailable service, rating a pending booking...).
func ErrBusiness(code, message string) error {
	return New(KindBusiness, code, message)
}

// Internal wraps an unexpected failure. The cause is logged, never sent.
func Internal(code string, err error) error {
	return &Error{
		Kind:    KindInternal,
		Code:    code,
		Message: "Unexpected error.",
		Err:     err,
	}
}

// ======================================================
// INSPECTION
// ======================================================

func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

func KindOf(err error) Kind {
	if e, ok := As(err); ok {
		return e.Kind
	}
	return KindInternal
}

// Is reports whether err carries the given code.
func Is(err error, code string) bool {
	if e, ok := As(err); ok {
		return e.Code == code
	}
	return false
}

func Status(kind Kind) int {
	switch kind {
	case KindValidation, KindBusiness:
		return http.StatusBadRequest
	case KindUnauthorized, KindInvalidToken:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	case KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
