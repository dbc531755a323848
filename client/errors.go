// Package client implements the Go SDK for the TaskQueue REST API.
//
// All operations go through a single request executor that retries
// transport-level failures with exponential backoff and maps API error
// responses onto a typed error taxonomy. Application-level errors (HTTP
// status >= 400) are never retried; they are assumed deterministic per
// request.
package client

import "fmt"

// APIError is the base error for any HTTP response with status >= 400. It
// retains enough structure (message, status code, raw body) for callers to
// print a clear message and choose an exit code.
type APIError struct {
	Message    string
	StatusCode int
	Body       []byte
}

func (e *APIError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("API error (status %d): %s", e.StatusCode, e.Message)
	}
	return fmt.Sprintf("API error: %s", e.Message)
}

// ValidationError is raised for malformed requests, either rejected locally
// before any network call (StatusCode 0) or by the API with status 400.
type ValidationError struct {
	APIError
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

func (e *ValidationError) Unwrap() error { return &e.APIError }

// NewValidationError builds a client-side validation error that never
// reached the network.
func NewValidationError(message string) *ValidationError {
	return &ValidationError{APIError{Message: message}}
}

// AuthenticationError corresponds to HTTP 401.
type AuthenticationError struct {
	APIError
}

func (e *AuthenticationError) Error() string {
	return fmt.Sprintf("authentication error: %s", e.Message)
}

func (e *AuthenticationError) Unwrap() error { return &e.APIError }

// AuthorizationError corresponds to HTTP 403.
type AuthorizationError struct {
	APIError
}

func (e *AuthorizationError) Error() string {
	return fmt.Sprintf("authorization error: %s", e.Message)
}

func (e *AuthorizationError) Unwrap() error { return &e.APIError }

// TaskNotFoundError corresponds to HTTP 404 where the server's message
// mentions a task.
type TaskNotFoundError struct {
	APIError
}

func (e *TaskNotFoundError) Error() string {
	return fmt.Sprintf("task not found: %s", e.Message)
}

func (e *TaskNotFoundError) Unwrap() error { return &e.APIError }

// ProjectNotFoundError corresponds to HTTP 404 where the server's message
// mentions a project.
type ProjectNotFoundError struct {
	APIError
}

func (e *ProjectNotFoundError) Error() string {
	return fmt.Sprintf("project not found: %s", e.Message)
}

func (e *ProjectNotFoundError) Unwrap() error { return &e.APIError }

// RateLimitError corresponds to HTTP 429.
type RateLimitError struct {
	APIError
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limited: %s", e.Message)
}

func (e *RateLimitError) Unwrap() error { return &e.APIError }

// TimeoutError is surfaced after transport timeouts have exhausted the retry
// budget, or when the completion poller's deadline elapses.
type TimeoutError struct {
	Message string
	Err     error
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("timeout: %s", e.Message)
}

func (e *TimeoutError) Unwrap() error { return e.Err }

// ConnectionError is surfaced after connection failures have exhausted the
// retry budget.
type ConnectionError struct {
	Message string
	Err     error
}

func (e *ConnectionError) Error() string {
	return fmt.Sprintf("connection failed: %s", e.Message)
}

func (e *ConnectionError) Unwrap() error { return e.Err }

// RequestError wraps unclassified failures after retries are exhausted.
type RequestError struct {
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	return fmt.Sprintf("request failed: %s", e.Message)
}

func (e *RequestError) Unwrap() error { return e.Err }
