package types

import "net/http"

// ------------------------------
// Shared Interfaces
// ------------------------------

// HTTPClient is the transport the api layer sends requests through.
// *http.Client satisfies it.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}
