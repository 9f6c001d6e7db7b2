package docdeck

import (
	"errors"
	"fmt"
)

// Application error codes. These map one-to-one onto backend response
// classes at the transport boundary and drive retry decisions: only
// EINTERNAL and EUNAVAILABLE are ever retried.
const (
	EINVALID      = "invalid"
	EUNAUTHORIZED = "unauthorized"
	EFORBIDDEN    = "forbidden"
	ENOTFOUND     = "not_found"
	EINTERNAL     = "internal"
	EUNAVAILABLE  = "unavailable"
)

// Error represents an application error with a machine-readable code and a
// human-readable message.
type Error struct {
	// Code is one of the E* constants above.
	Code string

	// Message is a human-readable description of the error.
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("docdeck error: code=%s message=%s", e.Code, e.Message)
}

// Errorf returns a new Error with the given code and formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps err and returns its code, if any. Non-application
// errors report EINTERNAL; a nil error reports an empty string.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EINTERNAL
}

// ErrorMessage unwraps err and returns its message, if any. Non-application
// errors report a generic message; a nil error reports an empty string.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return "Internal error."
}

// userMessages maps error codes to the messages shown in UI surfaces when
// the backend message is unsuitable for end users.
var userMessages = map[string]string{
	EUNAUTHORIZED: "authentication required",
	EFORBIDDEN:    "access forbidden",
	ENOTFOUND:     "resource not found",
	EINTERNAL:     "server error, try again later",
	EUNAVAILABLE:  "server error, retry later",
}

// UserMessage returns a display string for err suitable for an end user.
// Client errors surface the backend message verbatim; server and transport
// errors are substituted with a generic message.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	code := ErrorCode(err)
	switch code {
	case EINVALID:
		return ErrorMessage(err)
	}
	if msg, ok := userMessages[code]; ok {
		return msg
	}
	return ErrorMessage(err)
}
