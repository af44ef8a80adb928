// Package dto defines data transfer objects for API requests and responses.
package dto

// ErrorResponse represents an error response returned to the client.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}
