package dev2cloud

import (
	"testing"
	"time"

	"github.com/dev2cloud/client-go/internal/api"
	"go.uber.org/zap"
)

func TestConnectionURL(t *testing.T) {
	creds := &Credentials{
		User:     "u",
		Password: "p",
		Host:     "h",
		Port:     5432,
		Database: "d",
	}

	tests := []struct {
		name    string
		typ     SandboxType
		creds   *Credentials
		want    string
		wantErr bool
	}{
		{
			name:  "postgres",
			typ:   TypePostgres,
			creds: creds,
			want:  "postgresql://u:p@h:5432/d",
		},
		{
			name:  "redis omits database segment",
			typ:   TypeRedis,
			creds: &Credentials{User: "u", Password: "p", Host: "h", Port: 5432},
			want:  "redis://u:p@h:5432",
		},
		{
			name:    "nil credentials",
			typ:     TypePostgres,
			creds:   nil,
			wantErr: true,
		},
		{
			name:    "missing host",
			typ:     TypePostgres,
			creds:   &Credentials{User: "u", Password: "p", Port: 5432, Database: "d"},
			wantErr: true,
		},
		{
			name:    "zero port",
			typ:     TypeRedis,
			creds:   &Credentials{User: "u", Password: "p", Host: "h"},
			wantErr: true,
		},
		{
			name:    "postgres without database",
			typ:     TypePostgres,
			creds:   &Credentials{User: "u", Password: "p", Host: "h", Port: 5432},
			wantErr: true,
		},
		{
			name:    "unknown type",
			typ:     SandboxType("mysql"),
			creds:   creds,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := connectionURL(tt.typ, tt.creds)
			if tt.wantErr {
				if err == nil {
					t.Errorf("connectionURL() = %q, want error", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("connectionURL() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("connectionURL() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestNewSandbox(t *testing.T) {
	created := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)

	raw := &api.Sandbox{
		ID:          "sb-1",
		SandboxType: "postgres",
		Status:      "running",
		CreatedAt:   created,
		Credentials: &api.Credentials{
			User:     "u",
			Password: "p",
			Host:     "h",
			Port:     5432,
			Database: "d",
		},
	}

	sb := newSandbox(raw, zap.NewNop())

	if sb.ID != "sb-1" {
		t.Errorf("ID = %q, want sb-1", sb.ID)
	}
	if sb.Type != TypePostgres {
		t.Errorf("Type = %q, want postgres", sb.Type)
	}
	if !sb.CreatedAt.Equal(created) {
		t.Errorf("CreatedAt = %v, want %v", sb.CreatedAt, created)
	}
	if sb.URL != "postgresql://u:p@h:5432/d" {
		t.Errorf("URL = %q, want postgresql://u:p@h:5432/d", sb.URL)
	}
}

func TestNewSandbox_IncompleteCredentials(t *testing.T) {
	// URL synthesis is best-effort: incomplete credentials leave URL
	// empty without failing the record.
	raw := &api.Sandbox{
		ID:          "sb-1",
		SandboxType: "postgres",
		Status:      "running",
		Credentials: &api.Credentials{User: "u"},
	}

	sb := newSandbox(raw, zap.NewNop())

	if sb.URL != "" {
		t.Errorf("URL = %q, want empty", sb.URL)
	}
	if sb.Credentials == nil {
		t.Error("Credentials dropped")
	}
}

func TestSandbox_Ready(t *testing.T) {
	tests := []struct {
		status string
		want   bool
	}{
		{"running", true},
		{"pending", false},
		{"failed", false},
		{"", true},
		{"degraded", true},
	}

	for _, tt := range tests {
		t.Run("status "+tt.status, func(t *testing.T) {
			sb := &Sandbox{Status: tt.status}
			if got := sb.Ready(); got != tt.want {
				t.Errorf("Ready() = %v, want %v", got, tt.want)
			}
		})
	}
}
