package models

// ErrorBody is the JSON shape of every error response. Handlers never return
// HTML error pages.
type ErrorBody struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
