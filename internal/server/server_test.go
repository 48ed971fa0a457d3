package server

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/information-sharing-networks/crypto-api/internal/api"
	"github.com/information-sharing-networks/crypto-api/internal/config"
	_ "github.com/information-sharing-networks/crypto-api/internal/docs"
)

func testConfig(secret string) *config.ServerEnvironment {
	return &config.ServerEnvironment{
		Environment:    "test",
		Host:           "127.0.0.1",
		Port:           8080,
		MaxRequestSize: 1024,
		RateLimitRPS:   0,
		HMACSecret:     secret,
	}
}

func newTestServer(t *testing.T, secret string) *Server {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	s, err := NewServer(testConfig(secret), logger)
	if err != nil {
		t.Fatalf("NewServer() returned error: %v", err)
	}
	return s
}

func do(t *testing.T, s *Server, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)
	return rr
}

func TestRoutes(t *testing.T) {
	s := newTestServer(t, "test-secret")

	tests := []struct {
		method     string
		path       string
		body       string
		wantStatus int
	}{
		{http.MethodGet, "/health/live", "", http.StatusOK},
		{http.MethodGet, "/health/ready", "", http.StatusOK},
		{http.MethodGet, "/version", "", http.StatusOK},
		{http.MethodGet, "/metrics", "", http.StatusOK},
		{http.MethodGet, "/swagger/doc.json", "", http.StatusOK},
		{http.MethodPost, "/encrypt", `{"a":1}`, http.StatusOK},
		{http.MethodPost, "/decrypt", `{"a":"MQ=="}`, http.StatusOK},
		{http.MethodPost, "/sign", `{"a":1}`, http.StatusOK},
		{http.MethodGet, "/encrypt", "", http.StatusMethodNotAllowed},
		{http.MethodGet, "/unknown", "", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.path, func(t *testing.T) {
			rr := do(t, s, tt.method, tt.path, tt.body)
			if rr.Code != tt.wantStatus {
				t.Errorf("status = %d, want %d", rr.Code, tt.wantStatus)
			}
			if rr.Header().Get("X-Request-ID") == "" {
				t.Error("X-Request-ID header not set")
			}
		})
	}
}

func TestServerWithoutSecret(t *testing.T) {
	s := newTestServer(t, "")

	if s.Ready() {
		t.Fatal("Ready() = true without a secret")
	}

	if rr := do(t, s, http.MethodGet, "/health/ready", ""); rr.Code != http.StatusServiceUnavailable {
		t.Errorf("/health/ready status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if rr := do(t, s, http.MethodGet, "/health/live", ""); rr.Code != http.StatusOK {
		t.Errorf("/health/live status = %d, want %d", rr.Code, http.StatusOK)
	}
	if rr := do(t, s, http.MethodPost, "/sign", `{"a":1}`); rr.Code != http.StatusServiceUnavailable {
		t.Errorf("/sign status = %d, want %d", rr.Code, http.StatusServiceUnavailable)
	}
	if rr := do(t, s, http.MethodPost, "/encrypt", `{"a":1}`); rr.Code != http.StatusOK {
		t.Errorf("/encrypt status = %d, want %d", rr.Code, http.StatusOK)
	}
}

func TestRequestSizeLimitApplied(t *testing.T) {
	s := newTestServer(t, "test-secret")

	body := `{"a":"` + strings.Repeat("x", 2048) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/encrypt", bytes.NewReader([]byte(body)))
	rr := httptest.NewRecorder()
	s.Router().ServeHTTP(rr, req)

	if rr.Code != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusRequestEntityTooLarge)
	}

	var resp api.ErrorResponse
	if err := json.Unmarshal(rr.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if resp.RequestID == "" || resp.RequestID != rr.Header().Get("X-Request-ID") {
		t.Errorf("requestId = %q, want the X-Request-ID header %q", resp.RequestID, rr.Header().Get("X-Request-ID"))
	}
}
