// Package models defines request and response types for the dabmux-gui REST API.
// All types are JSON-serializable and include validation tags where appropriate.
package models

// ErrorResponse represents an API error response.
type ErrorResponse struct {
	Error string `json:"error"`
	// Kind names the rc failure class (timeout, malformed_response, ...), empty
	// for request validation errors.
	Kind string `json:"kind,omitempty"`
}

// StatusResponse represents a simple status response.
type StatusResponse struct {
	Status string `json:"status"`
}
