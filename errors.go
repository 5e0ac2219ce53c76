package ravy

import (
	"errors"
	"fmt"
)

// Sentinel errors for client operations.
var (
	// ErrAccessDenied is returned when the token's granted permissions do
	// not satisfy a guarded endpoint's required permission.
	ErrAccessDenied = errors.New("ravy: access denied")

	// ErrTokenRequired is returned by New when no API token is supplied.
	ErrTokenRequired = errors.New("ravy: token required")

	// ErrRequestFailed is returned when the API answers with a non-2xx
	// status. It is always wrapped in an *APIError carrying the status.
	ErrRequestFailed = errors.New("ravy: request failed")
)

// AccessError reports that a guarded call was blocked before any network
// traffic because the granted permission set does not satisfy the
// requirement. It carries the exact required permission for diagnostics.
type AccessError struct {
	// Required is the permission string the blocked endpoint demands.
	Required string
}

// NewAccessError creates an AccessError for a required permission.
func NewAccessError(required string) *AccessError {
	return &AccessError{Required: required}
}

// Error implements the error interface.
func (e *AccessError) Error() string {
	return fmt.Sprintf("ravy: access denied: insufficient permissions to access %q", e.Required)
}

// Unwrap returns ErrAccessDenied for errors.Is matching.
func (e *AccessError) Unwrap() error {
	return ErrAccessDenied
}

// APIError reports a non-2xx response from the API. The wrapped endpoint
// already ran, so unlike AccessError the request did reach the service.
type APIError struct {
	// Status is the HTTP status code of the response.
	Status int

	// Message is the error text reported by the API, or the status text
	// when the body carried none.
	Message string
}

// Error implements the error interface.
func (e *APIError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("ravy: request failed: %d: %s", e.Status, e.Message)
	}
	return fmt.Sprintf("ravy: request failed: %d", e.Status)
}

// Unwrap returns ErrRequestFailed for errors.Is matching.
func (e *APIError) Unwrap() error {
	return ErrRequestFailed
}

// IsAccessDenied checks if an error is a permission-guard denial.
func IsAccessDenied(err error) bool {
	return errors.Is(err, ErrAccessDenied)
}

// IsNotFound checks if an error is an API 404 response.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.Status == 404
}
