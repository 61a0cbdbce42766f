package client

import apierrors "github.com/0xJijimi/estfor-api/client/internal/errors"

// RequestError is returned when the API answers with a non-2xx status.
// Network and JSON decode errors are returned as-is.
type RequestError = apierrors.RequestError

// StatusCode returns the HTTP status carried by err, if it wraps a RequestError.
func StatusCode(err error) (int, bool) { return apierrors.StatusCode(err) }

// IsNotFound reports whether err is a 404 from the API.
func IsNotFound(err error) bool { return apierrors.IsNotFound(err) }

// IsServerError reports whether err is a 5xx from the API.
func IsServerError(err error) bool { return apierrors.IsServerError(err) }
