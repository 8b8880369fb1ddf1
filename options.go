package dev2cloud

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const (
	defaultBaseURL       = "https://api.dev2.cloud"
	defaultCreateTimeout = 180 * time.Second
	defaultPollInterval  = time.Second
)

// clientConfig holds configuration for the client.
type clientConfig struct {
	baseURL    string
	httpClient *http.Client
	timeout    time.Duration
	retries    int
	retryOn    []int
	logger     *zap.Logger
}

// createConfig holds configuration for sandbox creation.
type createConfig struct {
	sandboxType  SandboxType
	timeout      time.Duration
	pollInterval time.Duration
}

// Option configures the client.
type Option func(*clientConfig)

// CreateOption configures sandbox creation.
type CreateOption func(*createConfig)

// WithBaseURL sets the API base URL.
func WithBaseURL(url string) Option {
	return func(c *clientConfig) {
		c.baseURL = url
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(c *clientConfig) {
		c.httpClient = client
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *clientConfig) {
		c.timeout = timeout
	}
}

// WithLogger sets the logger used for debug and warning output.
// The default is a no-op logger.
func WithLogger(logger *zap.Logger) Option {
	return func(c *clientConfig) {
		c.logger = logger
	}
}

// WithRetries sets the number of transport-level retries for retryable
// status codes. Default: 0 (failed requests surface immediately).
func WithRetries(count int) Option {
	return func(c *clientConfig) {
		c.retries = count
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
// Default: [408, 429, 500, 502, 503, 504]
func WithRetryOn(statusCodes []int) Option {
	return func(c *clientConfig) {
		c.retryOn = statusCodes
	}
}

// WithType sets the kind of sandbox to create.
func WithType(t SandboxType) CreateOption {
	return func(c *createConfig) {
		c.sandboxType = t
	}
}

// WithCreateTimeout sets the maximum wall-clock time to wait for the
// sandbox to become ready. Default: 3 minutes.
func WithCreateTimeout(timeout time.Duration) CreateOption {
	return func(c *createConfig) {
		c.timeout = timeout
	}
}

// WithPollInterval sets the interval between status polls while the
// sandbox is pending. Default: 1 second.
func WithPollInterval(interval time.Duration) CreateOption {
	return func(c *createConfig) {
		c.pollInterval = interval
	}
}
