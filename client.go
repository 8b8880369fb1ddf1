package dev2cloud

import (
	"context"
	"time"

	"github.com/dev2cloud/client-go/internal/api"
	"go.uber.org/zap"
)

// Client is the Dev2Cloud client for managing sandboxes.
//
// A Client is safe for sequential reuse across calls; it holds no
// mutable state beyond its configuration and the underlying HTTP
// connection pool.
type Client struct {
	apiClient *api.Client
	logger    *zap.Logger

	// Injectable for tests so the poll loop runs without real delays.
	now   func() time.Time
	sleep func(ctx context.Context, d time.Duration) error
}

// buildAPIClient creates and configures an API client from the given config.
func buildAPIClient(apiKey string, cfg *clientConfig) (*api.Client, error) {
	apiOpts := []api.Option{
		api.WithBaseURL(cfg.baseURL),
		api.WithLogger(cfg.logger),
	}
	if cfg.timeout > 0 {
		apiOpts = append(apiOpts, api.WithTimeout(cfg.timeout))
	}
	if cfg.retries > 0 {
		apiOpts = append(apiOpts, api.WithRetries(cfg.retries))
	}
	if len(cfg.retryOn) > 0 {
		apiOpts = append(apiOpts, api.WithRetryOn(cfg.retryOn))
	}

	apiClient, err := api.New(apiKey, apiOpts...)
	if err != nil {
		return nil, err
	}

	if cfg.httpClient != nil {
		apiClient.SetHTTPClient(cfg.httpClient)
	}

	return apiClient, nil
}

// New creates a new Dev2Cloud client with the given API key. The key
// is sent as the X-Api-Key header on every request; it is not
// validated locally.
func New(apiKey string, opts ...Option) (*Client, error) {
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	cfg := &clientConfig{
		baseURL: defaultBaseURL,
		logger:  zap.NewNop(),
	}

	for _, opt := range opts {
		opt(cfg)
	}

	apiClient, err := buildAPIClient(apiKey, cfg)
	if err != nil {
		return nil, err
	}

	return &Client{
		apiClient: apiClient,
		logger:    cfg.logger,
		now:       time.Now,
		sleep:     sleepContext,
	}, nil
}

// sleepContext sleeps for d or until the context is cancelled.
func sleepContext(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// List returns all sandboxes owned by the API key, in the server's
// creation-time order.
func (c *Client) List(ctx context.Context) ([]*Sandbox, error) {
	raw, err := c.apiClient.ListSandboxes(ctx)
	if err != nil {
		return nil, wrapError(err)
	}

	sandboxes := make([]*Sandbox, 0, len(raw))
	for _, r := range raw {
		sandboxes = append(sandboxes, newSandbox(r, c.logger))
	}
	return sandboxes, nil
}

// Get fetches a sandbox by id.
func (c *Client) Get(ctx context.Context, id string) (*Sandbox, error) {
	raw, err := c.apiClient.GetSandbox(ctx, id)
	if err != nil {
		return nil, wrapError(err)
	}
	return newSandbox(raw, c.logger), nil
}

// Create provisions a new sandbox and waits for it to be ready.
//
// Provisioning is asynchronous server-side: Create polls the sandbox
// status once per poll interval until it leaves pending, then returns
// the ready record with credentials populated. It returns a
// *TimeoutError when the deadline passes while still pending, and a
// *ProvisioningError when the status becomes failed. On either error
// the half-provisioned sandbox may still exist server-side; callers
// that care should Delete it.
func (c *Client) Create(ctx context.Context, opts ...CreateOption) (*Sandbox, error) {
	cfg := &createConfig{
		timeout:      defaultCreateTimeout,
		pollInterval: defaultPollInterval,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	raw, err := c.apiClient.CreateSandbox(ctx, string(cfg.sandboxType))
	if err != nil {
		return nil, wrapError(err)
	}

	sandbox := newSandbox(raw, c.logger)
	deadline := c.now().Add(cfg.timeout)

	for sandbox.Status == StatusPending {
		if !c.now().Before(deadline) {
			return nil, &TimeoutError{SandboxID: sandbox.ID, Timeout: cfg.timeout}
		}
		if err := c.sleep(ctx, cfg.pollInterval); err != nil {
			return nil, err
		}

		sandbox, err = c.Get(ctx, sandbox.ID)
		if err != nil {
			return nil, err
		}

		c.logger.Debug("polled sandbox",
			zap.String("sandbox_id", sandbox.ID),
			zap.String("status", sandbox.Status))
	}

	if sandbox.Status == StatusFailed {
		return nil, &ProvisioningError{SandboxID: sandbox.ID}
	}

	return sandbox, nil
}

// Delete permanently deletes a sandbox. This action is irreversible;
// connection credentials are revoked immediately.
func (c *Client) Delete(ctx context.Context, id string) error {
	return wrapError(c.apiClient.DeleteSandbox(ctx, id))
}

// DeleteAll deletes all sandboxes owned by the API key, best-effort.
//
// Deletion errors for individual sandboxes are logged and swallowed so
// that one failure does not prevent the remaining sandboxes from being
// removed. It returns the ids that were successfully deleted, in the
// order they were attempted.
func (c *Client) DeleteAll(ctx context.Context) ([]string, error) {
	sandboxes, err := c.List(ctx)
	if err != nil {
		return nil, err
	}

	deleted := make([]string, 0, len(sandboxes))
	for _, sb := range sandboxes {
		if err := c.Delete(ctx, sb.ID); err != nil {
			c.logger.Warn("failed to delete sandbox",
				zap.String("sandbox_id", sb.ID),
				zap.Error(err))
			continue
		}
		deleted = append(deleted, sb.ID)
	}

	return deleted, nil
}
