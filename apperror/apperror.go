package apperror

import (
	"fmt"
	"net/http"
)

// Error codes carried in every error response body.
const (
	CodeValidation    = "validation_error"
	CodeImageRequired = "image_required"
	CodeReferential   = "referential_error"
	CodeNotFound      = "not_found"
	CodeUpstream      = "upstream_error"
	CodeDuplicateSlug = "duplicate_slug"
	CodePersistence   = "persistence_error"
	CodeInternal      = "internal_error"
)

// Error is the single error type crossing handler boundaries. Message is
// client-facing; Err keeps the underlying cause for logs and, matching the
// original API's behavior, is also surfaced in the response body.
type Error struct {
	Code    string
	Message string
	Err     error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// Status maps an error code to its HTTP status.
func (e *Error) Status() int {
	switch e.Code {
	case CodeValidation, CodeImageRequired, CodeReferential:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUpstream:
		return http.StatusBadGateway
	case CodeDuplicateSlug:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// Detail is what goes into the "error" field of the response body.
func (e *Error) Detail() string {
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

func Validation(format string, args ...any) *Error {
	return &Error{Code: CodeValidation, Message: "Validation Error", Err: fmt.Errorf(format, args...)}
}

func ImageRequired() *Error {
	return &Error{Code: CodeImageRequired, Message: "Image file not found"}
}

func Referential(format string, args ...any) *Error {
	return &Error{Code: CodeReferential, Message: "Referential Error", Err: fmt.Errorf(format, args...)}
}

func NotFound(format string, args ...any) *Error {
	return &Error{Code: CodeNotFound, Message: "Event Not Found", Err: fmt.Errorf(format, args...)}
}

func Upstream(msg string, err error) *Error {
	return &Error{Code: CodeUpstream, Message: msg, Err: err}
}

func DuplicateSlug(slug string, err error) *Error {
	return &Error{Code: CodeDuplicateSlug, Message: fmt.Sprintf("an event with slug %q already exists", slug), Err: err}
}

func Persistence(msg string, err error) *Error {
	return &Error{Code: CodePersistence, Message: msg, Err: err}
}

func Internal(msg string, err error) *Error {
	return &Error{Code: CodeInternal, Message: msg, Err: err}
}
