package errors

import (
	"errors"
	"fmt"
	"net/http"
)

// default error is internal service error at handler level
// if error has different status code use ErrorWithStatusCode
type ErrorWithStatusCode struct {
	Message    string
	StatusCode int
}

func (e *ErrorWithStatusCode) Error() string {
	return e.Message
}

func NotFound(format string, args ...any) error {
	return &ErrorWithStatusCode{Message: fmt.Sprintf(format, args...), StatusCode: http.StatusNotFound}
}

func BadRequest(format string, args ...any) error {
	return &ErrorWithStatusCode{Message: fmt.Sprintf(format, args...), StatusCode: http.StatusBadRequest}
}

func Forbidden(format string, args ...any) error {
	return &ErrorWithStatusCode{Message: fmt.Sprintf(format, args...), StatusCode: http.StatusForbidden}
}

func Conflict(format string, args ...any) error {
	return &ErrorWithStatusCode{Message: fmt.Sprintf(format, args...), StatusCode: http.StatusConflict}
}

// StatusCode returns the status attached to err anywhere in its chain, or 500.
func StatusCode(err error) int {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) {
		return e.StatusCode
	}
	return http.StatusInternalServerError
}

// InternalMessage is shown to clients instead of unexpected error text.
const InternalMessage = "internal error"

// ServerMessage returns what a client may see of a 5xx error: the message of an
// explicit status error (e.g. 502 from the gateway), never driver or wrapping text.
func ServerMessage(err error) string {
	var e *ErrorWithStatusCode
	if errors.As(err, &e) && e.StatusCode >= http.StatusInternalServerError {
		return e.Message
	}
	return InternalMessage
}
