package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestNew_RequiresAPIKey(t *testing.T) {
	_, err := New("")
	if err == nil {
		t.Error("expected error for empty API key")
	}
}

func TestNew_Defaults(t *testing.T) {
	client, err := New("test-key")
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	if client.baseURL != DefaultBaseURL {
		t.Errorf("baseURL = %s, want %s", client.baseURL, DefaultBaseURL)
	}
	if client.httpClient.Timeout != DefaultTimeout {
		t.Errorf("timeout = %v, want %v", client.httpClient.Timeout, DefaultTimeout)
	}
	if client.retry.MaxRetries != 0 {
		t.Errorf("MaxRetries = %d, want 0", client.retry.MaxRetries)
	}
}

func TestNew_WithOptions(t *testing.T) {
	client, err := New("test-key",
		WithBaseURL("https://example.com/"),
		WithRetries(5),
		WithTimeout(60*time.Second),
	)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	// Trailing slash must be trimmed so path joins don't double up.
	if client.baseURL != "https://example.com" {
		t.Errorf("baseURL = %s, want https://example.com", client.baseURL)
	}
	if client.retry.MaxRetries != 5 {
		t.Errorf("MaxRetries = %d, want 5", client.retry.MaxRetries)
	}
	if client.httpClient.Timeout != 60*time.Second {
		t.Errorf("timeout = %v, want 60s", client.httpClient.Timeout)
	}
}

func TestDo_SetsHeaders(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.Header.Get("X-Api-Key"); got != "secret" {
			t.Errorf("X-Api-Key = %q, want secret", got)
		}
		if got := r.Header.Get("Accept"); got != "application/json" {
			t.Errorf("Accept = %q, want application/json", got)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client, _ := New("secret", WithBaseURL(srv.URL))
	if err := client.Do(context.Background(), "GET", "/x", nil, nil); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
}

func TestDo_ContentTypeOnlyWithBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ct := r.Header.Get("Content-Type")
		if r.Method == "POST" && ct != "application/json" {
			t.Errorf("POST Content-Type = %q", ct)
		}
		if r.Method == "GET" && ct != "" {
			t.Errorf("GET Content-Type = %q, want empty", ct)
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	client, _ := New("k", WithBaseURL(srv.URL))
	if err := client.Do(context.Background(), "GET", "/x", nil, nil); err != nil {
		t.Fatalf("GET error = %v", err)
	}
	if err := client.Do(context.Background(), "POST", "/x", map[string]string{"a": "b"}, nil); err != nil {
		t.Fatalf("POST error = %v", err)
	}
}

func TestDo_ErrorParsing(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		body       string
		wantDetail string
	}{
		{"detail field", 404, `{"detail": "sandbox not found"}`, "sandbox not found"},
		{"no detail field", 500, `{"message": "oops"}`, `{"message": "oops"}`},
		{"plain text", 503, "unavailable", "unavailable"},
		{"empty body", 500, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			client, _ := New("k", WithBaseURL(srv.URL))
			err := client.Do(context.Background(), "GET", "/x", nil, nil)

			apiErr, ok := err.(*APIError)
			if !ok {
				t.Fatalf("Do() error = %T (%v), want *APIError", err, err)
			}
			if apiErr.StatusCode != tt.status {
				t.Errorf("StatusCode = %d, want %d", apiErr.StatusCode, tt.status)
			}
			if apiErr.Detail != tt.wantDetail {
				t.Errorf("Detail = %q, want %q", apiErr.Detail, tt.wantDetail)
			}
		})
	}
}

func TestDo_NoRetryByDefault(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	client, _ := New("k", WithBaseURL(srv.URL))
	err := client.Do(context.Background(), "GET", "/x", nil, nil)
	if err == nil {
		t.Fatal("expected error")
	}
	if got := calls.Load(); got != 1 {
		t.Errorf("server called %d times, want 1", got)
	}
}

func TestDo_RetriesWhenConfigured(t *testing.T) {
	var calls atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		w.Write([]byte(`{"ok": true}`))
	}))
	defer srv.Close()

	client, _ := New("k", WithBaseURL(srv.URL), WithRetries(3))
	client.retry.BaseDelay = time.Millisecond
	client.retry.Jitter = 0

	var result struct {
		OK bool `json:"ok"`
	}
	if err := client.Do(context.Background(), "GET", "/x", nil, &result); err != nil {
		t.Fatalf("Do() error = %v", err)
	}
	if !result.OK {
		t.Error("result not decoded")
	}
	if got := calls.Load(); got != 3 {
		t.Errorf("server called %d times, want 3", got)
	}
}

func TestDo_NetworkError(t *testing.T) {
	client, _ := New("k", WithBaseURL("http://127.0.0.1:1"))

	err := client.Do(context.Background(), "GET", "/x", nil, nil)
	if _, ok := err.(*NetworkError); !ok {
		t.Errorf("Do() error = %T (%v), want *NetworkError", err, err)
	}
}
