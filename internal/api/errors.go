package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// Sentinel errors - transport
var (
	// ErrNetwork indicates a transport or connectivity failure: the request
	// never produced an HTTP response.
	ErrNetwork = errors.New("api: network failure")
)

// Sentinel errors - service
var (
	ErrInvalidCredentials = errors.New("api: invalid email or password")
	ErrUnauthorized       = errors.New("api: unauthorized")
	ErrNotFound           = errors.New("api: not found")
	ErrConflict           = errors.New("api: already exists")
	ErrValidation         = errors.New("api: validation failed")
)

// Error represents a LensLink API error response.
type Error struct {
	// StatusCode is the HTTP status code.
	StatusCode int `json:"-"`
	// Detail is the server-supplied human-readable reason.
	Detail string `json:"detail"`
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api: %s (HTTP %d)", e.Detail, e.StatusCode)
	}
	return fmt.Sprintf("api: HTTP %d", e.StatusCode)
}

// Unwrap maps the status code onto the sentinel taxonomy so callers can use
// errors.Is without inspecting status codes themselves.
func (e *Error) Unwrap() error {
	switch e.StatusCode {
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusNotFound:
		return ErrNotFound
	default:
		if e.StatusCode >= 400 && e.StatusCode < 500 {
			return ErrValidation
		}
	}
	return nil
}

// IsNotFound returns true if the error is a not found error.
func (e *Error) IsNotFound() bool {
	return e.StatusCode == http.StatusNotFound
}

// IsUnauthorized returns true if the error is an authorization error.
func (e *Error) IsUnauthorized() bool {
	return e.StatusCode == http.StatusUnauthorized
}

// IsValidation returns true if the error carries a server-side validation reason.
func (e *Error) IsValidation() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500 &&
		e.StatusCode != http.StatusUnauthorized && e.StatusCode != http.StatusNotFound
}

// parseError parses an error response body from the API.
// The service reports failures as {"detail": "..."}.
func parseError(statusCode int, body []byte) error {
	var apiError Error
	if err := json.Unmarshal(body, &apiError); err == nil && apiError.Detail != "" {
		apiError.StatusCode = statusCode
		return &apiError
	}

	// Fallback for non-JSON bodies
	return &Error{
		StatusCode: statusCode,
		Detail:     string(body),
	}
}

// IsAPIError checks if an error is an API error and returns it.
func IsAPIError(err error) (*Error, bool) {
	var apiErr *Error
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
