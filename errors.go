package dev2cloud

import (
	"errors"
	"fmt"
	"time"

	"github.com/dev2cloud/client-go/internal/api"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrMissingAPIKey is returned when no API key is provided.
	ErrMissingAPIKey = errors.New("API key is required")

	// ErrUnauthorized is returned when the API key is invalid or expired.
	ErrUnauthorized = errors.New("invalid or expired API key")

	// ErrSandboxNotFound is returned when a sandbox is not found.
	ErrSandboxNotFound = errors.New("sandbox not found")

	// ErrRateLimited is returned when the API rate limit is exceeded.
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrProvisionTimeout is returned when a sandbox does not become
	// ready within the create timeout.
	ErrProvisionTimeout = errors.New("sandbox did not become ready in time")

	// ErrProvisionFailed is returned when a sandbox transitions to the
	// failed status during provisioning.
	ErrProvisionFailed = errors.New("sandbox failed to provision")
)

// Dev2CloudError is implemented by all SDK errors. StatusCode reports
// the HTTP status of the failing response, or 0 for client-side
// conditions (timeout, provisioning failure, network errors).
type Dev2CloudError interface {
	error
	StatusCode() int
	Dev2CloudError() // marker method
}

// APIError represents an HTTP error response from the Dev2Cloud API.
// Detail carries the server's "detail" field when present, otherwise
// the raw response body.
type APIError struct {
	Status int
	Detail string
}

func (e *APIError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("API error %d: %s", e.Status, e.Detail)
	}
	return fmt.Sprintf("API error %d", e.Status)
}

// StatusCode returns the HTTP status of the failing response.
func (e *APIError) StatusCode() int { return e.Status }

// Dev2CloudError implements the Dev2CloudError interface.
func (e *APIError) Dev2CloudError() {}

// Is implements errors.Is for sentinel error matching.
func (e *APIError) Is(target error) bool {
	switch e.Status {
	case 401:
		return target == ErrUnauthorized
	case 404:
		return target == ErrSandboxNotFound
	case 429:
		return target == ErrRateLimited
	}
	return false
}

// TimeoutError is returned when Create's poll loop exceeds its deadline.
// The sandbox may still be provisioning server-side; callers that want
// to reclaim the resource should Delete it.
type TimeoutError struct {
	SandboxID string
	Timeout   time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("sandbox %s did not become ready within %v", e.SandboxID, e.Timeout)
}

// StatusCode returns 0: the condition is local, there is no HTTP status.
func (e *TimeoutError) StatusCode() int { return 0 }

// Dev2CloudError implements the Dev2CloudError interface.
func (e *TimeoutError) Dev2CloudError() {}

// Is implements errors.Is for sentinel error matching.
func (e *TimeoutError) Is(target error) bool {
	return target == ErrProvisionTimeout
}

// ProvisioningError is returned when a polled sandbox transitions to
// the failed status.
type ProvisioningError struct {
	SandboxID string
}

func (e *ProvisioningError) Error() string {
	return fmt.Sprintf("sandbox %s failed to provision", e.SandboxID)
}

// StatusCode returns 0: the condition is local, there is no HTTP status.
func (e *ProvisioningError) StatusCode() int { return 0 }

// Dev2CloudError implements the Dev2CloudError interface.
func (e *ProvisioningError) Dev2CloudError() {}

// Is implements errors.Is for sentinel error matching.
func (e *ProvisioningError) Is(target error) bool {
	return target == ErrProvisionFailed
}

// NetworkError represents a network-level failure.
type NetworkError struct {
	Err     error
	URL     string
	Attempt int
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("network error: %v", e.Err)
}

// Unwrap returns the underlying error.
func (e *NetworkError) Unwrap() error {
	return e.Err
}

// StatusCode returns 0: the request never produced an HTTP status.
func (e *NetworkError) StatusCode() int { return 0 }

// Dev2CloudError implements the Dev2CloudError interface.
func (e *NetworkError) Dev2CloudError() {}

// wrapError converts internal API errors to public errors.
// This ensures that errors.Is() checks work with public sentinel errors.
func wrapError(err error) error {
	if err == nil {
		return nil
	}

	var apiErr *api.APIError
	if errors.As(err, &apiErr) {
		return &APIError{
			Status: apiErr.StatusCode,
			Detail: apiErr.Detail,
		}
	}

	var netErr *api.NetworkError
	if errors.As(err, &netErr) {
		return &NetworkError{
			Err:     netErr.Err,
			URL:     netErr.URL,
			Attempt: netErr.Attempt,
		}
	}

	return err
}
