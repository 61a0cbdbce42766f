package types

// ------------------------------
// Response Types
// ------------------------------

// Page is the paginated envelope returned by list endpoints.
type Page[T any] struct {
	Items []T     `json:"items"`
	Total float64 `json:"total"`
}
