package monoread

import (
	"errors"
	"fmt"
)

// Error codes. The values double as the user-facing error kinds.
const (
	ENETWORK   = "network"
	ENOTFOUND  = "not_found"
	EAUTH      = "auth"
	ERATELIMIT = "rate_limit"
	EINVALID   = "invalid_url"
	EUNKNOWN   = "unknown"
)

// Error represents a failure to obtain content.
type Error struct {
	Code    string
	Message string
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("monoread error: code=%s message=%s", e.Code, e.Message)
}

// Errorf is a helper function to return an Error with a given code and
// formatted message.
func Errorf(code string, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// ErrorCode unwraps an application error and returns its code.
// Non-application errors always return EUNKNOWN.
func ErrorCode(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Code
	}
	return EUNKNOWN
}

// ErrorMessage unwraps an application error and returns its message.
// Non-application errors return the underlying error text.
func ErrorMessage(err error) string {
	var e *Error
	if err == nil {
		return ""
	} else if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}

// StatusCode maps a non-2xx HTTP status to the error code reported for it.
func StatusCode(status int) string {
	switch status {
	case 404:
		return ENOTFOUND
	case 401, 403:
		return EAUTH
	case 429:
		return ERATELIMIT
	default:
		return ENETWORK
	}
}
