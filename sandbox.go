package dev2cloud

import (
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/dev2cloud/client-go/internal/api"
	"go.uber.org/zap"
)

// SandboxType is the kind of sandbox to provision.
type SandboxType string

// Supported sandbox types.
const (
	TypePostgres SandboxType = "postgres"
	TypeRedis    SandboxType = "redis"
)

// Sandbox statuses interpreted by the SDK. Status is an open set; any
// value other than pending and failed means the sandbox is ready.
const (
	StatusPending = "pending"
	StatusRunning = "running"
	StatusFailed  = "failed"
)

// Credentials are the connection parameters issued by the service once
// a sandbox is ready. Database is only set for database-backed types.
type Credentials struct {
	User     string
	Password string
	Host     string
	Port     int
	Database string
}

// Sandbox is an immutable snapshot of a provisioned sandbox. It is not
// updated in place; fetch the sandbox again to observe state changes.
type Sandbox struct {
	// ID is the opaque identifier assigned by the service.
	ID string
	// Type is the sandbox kind, e.g. TypePostgres.
	Type SandboxType
	// Status is the provisioning status at snapshot time.
	Status string
	// CreatedAt is the server-side creation timestamp.
	CreatedAt time.Time
	// Credentials are nil until the sandbox is ready.
	Credentials *Credentials
	// URL is a connection URI synthesized from Type and Credentials.
	// It is best-effort and empty when credentials are incomplete.
	URL string
}

// Ready reports whether the sandbox has left provisioning without
// failing.
func (s *Sandbox) Ready() bool {
	return s.Status != StatusPending && s.Status != StatusFailed
}

// newSandbox builds a Sandbox snapshot from a wire object. URL
// synthesis failures are advisory: they are logged at debug and leave
// URL empty.
func newSandbox(raw *api.Sandbox, logger *zap.Logger) *Sandbox {
	s := &Sandbox{
		ID:        raw.ID,
		Type:      SandboxType(raw.SandboxType),
		Status:    raw.Status,
		CreatedAt: raw.CreatedAt,
	}

	if raw.Credentials != nil {
		s.Credentials = &Credentials{
			User:     raw.Credentials.User,
			Password: raw.Credentials.Password,
			Host:     raw.Credentials.Host,
			Port:     raw.Credentials.Port,
			Database: raw.Credentials.Database,
		}
	}

	connURL, err := connectionURL(s.Type, s.Credentials)
	if err != nil {
		logger.Debug("skipping connection URL",
			zap.String("sandbox_id", s.ID),
			zap.Error(err))
		return s
	}
	s.URL = connURL

	return s
}

// connectionURL synthesizes a connection URI from a sandbox type and
// its credentials. It fails on missing credential fields or an unknown
// type rather than producing a partial URI.
func connectionURL(t SandboxType, creds *Credentials) (string, error) {
	if creds == nil {
		return "", fmt.Errorf("no credentials")
	}
	if creds.User == "" || creds.Password == "" || creds.Host == "" || creds.Port == 0 {
		return "", fmt.Errorf("incomplete credentials")
	}

	u := url.URL{
		User: url.UserPassword(creds.User, creds.Password),
		Host: net.JoinHostPort(creds.Host, strconv.Itoa(creds.Port)),
	}

	switch t {
	case TypePostgres:
		if creds.Database == "" {
			return "", fmt.Errorf("incomplete credentials: missing database")
		}
		u.Scheme = "postgresql"
		u.Path = "/" + creds.Database
	case TypeRedis:
		u.Scheme = "redis"
	default:
		return "", fmt.Errorf("unknown sandbox type %q", t)
	}

	return u.String(), nil
}
