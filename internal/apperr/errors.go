package apperr

import (
	"errors"
	"net/http"
)

// Kind tags an Error with its place in the failure taxonomy.
type Kind string

const (
	KindValidationFailed Kind = "ValidationFailed"
	KindUnauthenticated  Kind = "Unauthenticated"
	KindForbidden        Kind = "Forbidden"
	KindNotFound         Kind = "NotFound"
	KindConflict         Kind = "Conflict"
	KindExpired          Kind = "Expired"
	KindInvalidSignature Kind = "InvalidSignature"
	KindMalformed        Kind = "Malformed"
	KindInternal         Kind = "Internal"
)

// Sentinels for errors.Is. Matching is by Kind only.
var (
	ErrValidationFailed = &Error{Kind: KindValidationFailed}
	ErrUnauthenticated  = &Error{Kind: KindUnauthenticated}
	ErrForbidden        = &Error{Kind: KindForbidden}
	ErrNotFound         = &Error{Kind: KindNotFound}
	ErrConflict         = &Error{Kind: KindConflict}
	ErrExpired          = &Error{Kind: KindExpired}
	ErrInvalidSignature = &Error{Kind: KindInvalidSignature}
	ErrMalformed        = &Error{Kind: KindMalformed}
	ErrInternal         = &Error{Kind: KindInternal}
)

// FieldViolation is one failed constraint of a validated payload.
type FieldViolation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Error is the application error type. Every failure surfaced to a client
// is one of these; anything else is treated as Internal.
type Error struct {
	Kind       Kind
	Message    string
	Violations []FieldViolation
	Err        error
}

func (e *Error) Error() string {
	msg := e.Message
	if msg == "" {
		msg = string(e.Kind)
	}
	if e.Err != nil {
		return msg + ": " + e.Err.Error()
	}
	return msg
}

func (e *Error) Unwrap() error { return e.Err }

// Is reports whether target is an *Error of the same Kind.
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// New creates an Error of the given kind.
func New(kind Kind, message string) *Error {
	return &Error{Kind: kind, Message: message}
}

// Wrap creates an Error of the given kind carrying cause.
func Wrap(kind Kind, message string, cause error) *Error {
	return &Error{Kind: kind, Message: message, Err: cause}
}

// Validation creates a ValidationFailed error listing every violation.
func Validation(violations []FieldViolation) *Error {
	return &Error{
		Kind:       KindValidationFailed,
		Message:    "request validation failed",
		Violations: violations,
	}
}

func NotFound(message string) *Error { return New(KindNotFound, message) }
func Forbidden(message string) *Error { return New(KindForbidden, message) }
func Conflict(message string) *Error { return New(KindConflict, message) }
func Unauthenticated(message string) *Error { return New(KindUnauthenticated, message) }

// As returns the *Error in err's chain, if any.
func As(err error) (*Error, bool) {
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// KindOf returns the kind of err. Errors outside the taxonomy are Internal.
func KindOf(err error) Kind {
	if appErr, ok := As(err); ok {
		return appErr.Kind
	}
	return KindInternal
}

// HTTPStatus maps a kind to its response status code.
func HTTPStatus(kind Kind) int {
	switch kind {
	case KindValidationFailed:
		return http.StatusBadRequest
	case KindUnauthenticated, KindExpired, KindInvalidSignature, KindMalformed:
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
