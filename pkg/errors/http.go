package errors

import (
	stderrors "errors"
	"net/http"
)

// HTTPError is an error that knows which HTTP status it should be served with.
type HTTPError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewHTTPError creates an HTTPError. code is an HTTP status code.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{Code: code, Message: message}
}

func (e *HTTPError) Error() string {
	return e.Message
}

// StatusCode returns Code, or 500 when Code isn't a valid status.
func (e *HTTPError) StatusCode() int {
	if e.Code < 100 || e.Code > 599 {
		return http.StatusInternalServerError
	}
	return e.Code
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, "unauthorized")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)

// AsHTTPError unwraps err to an *HTTPError if it holds one.
func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	if stderrors.As(err, &he) {
		return he, true
	}
	return nil, false
}
