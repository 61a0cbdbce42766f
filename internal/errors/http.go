package errors

import "net/http"

// NewHTTPError builds the error for op answered with statusCode.
func NewHTTPError(op string, statusCode int) *RequestError {
	return &RequestError{Op: op, StatusCode: statusCode}
}

// IsSuccess reports whether statusCode is in the 2xx range.
func IsSuccess(statusCode int) bool {
	return statusCode >= http.StatusOK && statusCode < http.StatusMultipleChoices
}

// IsNotFound reports whether err is a 404 RequestError.
func IsNotFound(err error) bool {
	code, ok := StatusCode(err)
	return ok && code == http.StatusNotFound
}

// IsServerError reports whether err is a 5xx RequestError.
func IsServerError(err error) bool {
	code, ok := StatusCode(err)
	return ok && code >= http.StatusInternalServerError && code < 600
}
