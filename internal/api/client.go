package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultBaseURL is the production Dev2Cloud API endpoint.
const DefaultBaseURL = "https://api.dev2.cloud"

// DefaultTimeout is the per-request HTTP timeout.
const DefaultTimeout = 30 * time.Second

// Client is the HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	retry      *RetryConfig
	logger     *zap.Logger
}

// Option configures the API client.
type Option func(*Client)

// WithBaseURL sets the base URL. A trailing slash is trimmed.
func WithBaseURL(url string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(url, "/")
	}
}

// WithTimeout sets the per-request HTTP timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// WithRetries sets the number of retry attempts for retryable statuses.
func WithRetries(retries int) Option {
	return func(c *Client) {
		c.retry.MaxRetries = retries
	}
}

// WithRetryOn sets the HTTP status codes that trigger a retry.
func WithRetryOn(statusCodes []int) Option {
	return func(c *Client) {
		codes := make(map[int]struct{}, len(statusCodes))
		for _, code := range statusCodes {
			codes[code] = struct{}{}
		}
		c.retry.RetryableOn = func(statusCode int) bool {
			_, ok := codes[statusCode]
			return ok
		}
	}
}

// WithLogger sets the logger for request-level debug logging.
func WithLogger(logger *zap.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a new API client.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, fmt.Errorf("API key is required")
	}

	c := &Client{
		baseURL: DefaultBaseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: DefaultTimeout,
		},
		retry:  DefaultRetryConfig(),
		logger: zap.NewNop(),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c, nil
}

// SetHTTPClient sets a custom HTTP client.
func (c *Client) SetHTTPClient(client *http.Client) {
	c.httpClient = client
}

// BaseURL returns the configured base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Do executes an HTTP request against the API and decodes the JSON
// response into result when result is non-nil.
func (c *Client) Do(ctx context.Context, method, path string, body interface{}, result interface{}) error {
	var payload []byte
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshal request body: %w", err)
		}
		payload = data
	}

	url := c.baseURL + path

	var resp *http.Response
	for attempt := 0; ; attempt++ {
		var err error
		resp, err = c.doOnce(ctx, method, url, payload)
		if err != nil {
			return &NetworkError{Err: err, URL: url, Attempt: attempt}
		}
		if !c.retry.ShouldRetry(attempt, resp.StatusCode) {
			break
		}
		resp.Body.Close()
		if err := c.retry.Wait(ctx, attempt); err != nil {
			return err
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return parseErrorResponse(resp)
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("decode response: %w", err)
		}
	}

	return nil
}

// doOnce issues a single HTTP request. The body reader is rebuilt from
// the marshalled payload so retries never reuse a consumed reader.
func (c *Client) doOnce(ctx context.Context, method, url string, payload []byte) (*http.Response, error) {
	var bodyReader io.Reader
	if payload != nil {
		bodyReader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return nil, err
	}

	req.Header.Set("X-Api-Key", c.apiKey)
	req.Header.Set("Accept", "application/json")
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Debug("request failed",
			zap.String("method", method),
			zap.String("url", url),
			zap.Error(err))
		return nil, err
	}

	c.logger.Debug("request completed",
		zap.String("method", method),
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", time.Since(start)))

	return resp, nil
}

// parseErrorResponse converts a non-2xx response into an *APIError.
// The body is expected to be JSON with a "detail" field; anything else
// degrades to using the raw body text as the detail.
func parseErrorResponse(resp *http.Response) error {
	body, _ := io.ReadAll(resp.Body)

	var errResp struct {
		Detail string `json:"detail"`
	}

	detail := string(body)
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Detail != "" {
		detail = errResp.Detail
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Detail:     detail,
	}
}
