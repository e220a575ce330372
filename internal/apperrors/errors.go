// Package apperrors classifies failures so handlers can translate them into HTTP responses
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
)

// Kind is the category of an application error
type Kind int

const (
	KindUnexpected Kind = iota
	KindValidation
	KindDuplicate
	KindConflict
	KindAuthentication
	KindUnauthorized
	KindForbidden
	KindNotFound
)

// GenericServerMessage is the only message a client sees for unexpected failures
const GenericServerMessage = "server error"

// Error is an application error with a client-safe message.
// Err carries the internal cause and is only ever logged.
type Error struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches errors of the same kind and message, so sentinel values work with errors.Is
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	if !ok {
		return false
	}
	return e.Kind == t.Kind && e.Message == t.Message
}

// NewValidation reports missing or malformed input (400)
func NewValidation(message string) *Error {
	return &Error{Kind: KindValidation, Message: message}
}

// NewDuplicate reports a resource that already exists where the API answers 400
func NewDuplicate(message string) *Error {
	return &Error{Kind: KindDuplicate, Message: message}
}

// NewConflict reports a resource that already exists where the API answers 409
func NewConflict(message string) *Error {
	return &Error{Kind: KindConflict, Message: message}
}

// NewAuthentication reports bad credentials on login (400)
func NewAuthentication(message string) *Error {
	return &Error{Kind: KindAuthentication, Message: message}
}

// NewUnauthorized reports a missing, invalid or expired token (401)
func NewUnauthorized(message string) *Error {
	return &Error{Kind: KindUnauthorized, Message: message}
}

// NewForbidden reports a valid identity with insufficient role (403)
func NewForbidden(message string) *Error {
	return &Error{Kind: KindForbidden, Message: message}
}

// NewNotFound reports a missing resource (404)
func NewNotFound(resource string) *Error {
	return &Error{Kind: KindNotFound, Message: resource + " not found"}
}

// Wrap attaches an internal cause to an application error without changing its client message
func Wrap(appErr *Error, cause error) *Error {
	return &Error{Kind: appErr.Kind, Message: appErr.Message, Err: cause}
}

// NewUnexpected wraps a store or network failure (500)
func NewUnexpected(err error) *Error {
	return &Error{Kind: KindUnexpected, Message: GenericServerMessage, Err: err}
}

// From returns the application error in err's chain, or an unexpected error wrapping err
func From(err error) *Error {
	if err == nil {
		return nil
	}
	var appErr *Error
	if errors.As(err, &appErr) {
		return appErr
	}
	return NewUnexpected(err)
}

// HTTPStatus maps an error to the response status code
func HTTPStatus(err error) int {
	switch From(err).Kind {
	case KindValidation, KindDuplicate, KindAuthentication:
		return http.StatusBadRequest
	case KindConflict:
		return http.StatusConflict
	case KindUnauthorized:
		return http.StatusUnauthorized
	case KindForbidden:
		return http.StatusForbidden
	case KindNotFound:
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}

// ClientMessage returns the message that is safe to put in a response body
func ClientMessage(err error) string {
	appErr := From(err)
	if appErr.Kind == KindUnexpected {
		return GenericServerMessage
	}
	return appErr.Message
}
