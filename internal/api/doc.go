// Package api implements the low-level HTTP client for the Dev2Cloud API.
//
// This package handles request construction, authentication headers,
// JSON serialization, and error-body parsing. The public SDK in the
// root package wraps it with the sandbox domain types.
package api
