package api

import "time"

// Credentials represents the connection parameters issued once a
// sandbox is ready.
type Credentials struct {
	User     string `json:"user"`
	Password string `json:"password"`
	Host     string `json:"host"`
	Port     int    `json:"port"`
	Database string `json:"database,omitempty"`
}

// Sandbox represents a sandbox object as returned by the API.
type Sandbox struct {
	ID          string       `json:"id"`
	SandboxType string       `json:"sandbox_type,omitempty"`
	Status      string       `json:"status,omitempty"`
	CreatedAt   time.Time    `json:"created_at"`
	Credentials *Credentials `json:"credentials,omitempty"`
}

// createSandboxRequest is the POST /api/v1/sandboxes request body.
// With no type set it marshals to an empty object.
type createSandboxRequest struct {
	SandboxType string `json:"sandbox_type,omitempty"`
}
