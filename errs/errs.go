package errs

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind classifies an error so handlers can map it to an HTTP status.
type Kind int

const (
	KindInternal Kind = iota
	KindValidation
	KindNotFound
	KindForbidden
	KindInvalidSignature
	KindPaymentFailed
	KindConfiguration
	KindStorage
)

// Error carries a kind, a caller-facing message, and an optional wrapped cause.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

func Validation(format string, args ...any) *Error {
	return &Error{Kind: KindValidation, Message: fmt.Sprintf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Kind: KindNotFound, Message: fmt.Sprintf(format, args...)}
}

func Forbidden(format string, args ...any) *Error {
	return &Error{Kind: KindForbidden, Message: fmt.Sprintf(format, args...)}
}

func InvalidSignature(format string, args ...any) *Error {
	return &Error{Kind: KindInvalidSignature, Message: fmt.Sprintf(format, args...)}
}

func PaymentFailed(format string, args ...any) *Error {
	return &Error{Kind: KindPaymentFailed, Message: fmt.Sprintf(format, args...)}
}

func Configuration(msg string, cause error) *Error {
	return &Error{Kind: KindConfiguration, Message: msg, Err: cause}
}

func Storage(msg string, cause error) *Error {
	return &Error{Kind: KindStorage, Message: msg, Err: cause}
}

func Internal(msg string, cause error) *Error {
	return &Error{Kind: KindInternal, Message: msg, Err: cause}
}

// KindOf returns the kind of err, or KindInternal for unclassified errors.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}

// HTTPStatus maps an error to the status code the handler should write.
func HTTPStatus(err error) int {
	switch KindOf(err) {
	case KindValidation, KindInvalidSignature, KindPaymentFailed:
		return http.StatusBadRequest
	case KindNotFound:
		return http.StatusNotFound
	case KindForbidden:
		return http.StatusForbidden
	default:
		return http.StatusInternalServerError
	}
}
