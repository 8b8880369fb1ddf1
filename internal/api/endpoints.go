package api

import (
	"context"
	"fmt"
	"net/url"
)

// ListSandboxes returns all sandboxes owned by the API key, in the
// server's creation-time order.
func (c *Client) ListSandboxes(ctx context.Context) ([]*Sandbox, error) {
	var result []*Sandbox
	if err := c.Do(ctx, "GET", "/api/v1/sandboxes", nil, &result); err != nil {
		return nil, err
	}
	return result, nil
}

// CreateSandbox requests a new sandbox. sandboxType may be empty, in
// which case the server picks its default.
func (c *Client) CreateSandbox(ctx context.Context, sandboxType string) (*Sandbox, error) {
	req := createSandboxRequest{SandboxType: sandboxType}
	var result Sandbox
	if err := c.Do(ctx, "POST", "/api/v1/sandboxes", req, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetSandbox fetches a sandbox by id.
func (c *Client) GetSandbox(ctx context.Context, id string) (*Sandbox, error) {
	path := fmt.Sprintf("/api/v1/sandboxes/%s", url.PathEscape(id))
	var result Sandbox
	if err := c.Do(ctx, "GET", path, nil, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeleteSandbox permanently deletes a sandbox by id.
func (c *Client) DeleteSandbox(ctx context.Context, id string) error {
	path := fmt.Sprintf("/api/v1/sandboxes/%s", url.PathEscape(id))
	return c.Do(ctx, "DELETE", path, nil, nil)
}
