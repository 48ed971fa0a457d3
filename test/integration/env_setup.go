//go:build integration

package integration

// Test environment setup and server lifecycle management.
//
// The integration tests start crypto-server in-process and run tests against it.
// see startInProcessServer for the settings used.
//
// By default the server logs are not included in the test output, you can enable them with:
//
//	ENABLE_SERVER_LOGS=true go test -tags=integration -v ./test/integration
//

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/information-sharing-networks/crypto-api/internal/config"
	"github.com/information-sharing-networks/crypto-api/internal/logger"
	"github.com/information-sharing-networks/crypto-api/internal/server"
)

// testSecret is the HMAC secret used unless a test starts the server without one
const testSecret = "integration-test-secret"

// testEnv provides access to the running server
type testEnv struct {
	baseURL  string
	cfg      *config.ServerEnvironment
	shutdown func()
}

// startInProcessServer starts crypto-server in-process for testing.
// hmacSecret may be empty to start a server that is not ready.
func startInProcessServer(t *testing.T, hmacSecret string, extraEnv map[string]string) *testEnv {
	t.Helper()

	testEnv := &testEnv{}

	t.Log("Starting in-process server...")

	var (
		ctx          = context.Background()
		host         = "localhost"
		port         = findFreePort(t)
		rateLimitRPS = 0
		environment  = "test"
	)

	testEnvVars := map[string]string{
		"HOST":           host,
		"PORT":           fmt.Sprintf("%d", port),
		"ENVIRONMENT":    environment,
		"LOG_LEVEL":      "none",
		"RATE_LIMIT_RPS": fmt.Sprintf("%d", rateLimitRPS),
		"HMAC_SECRET":    hmacSecret,
	}
	for key, value := range extraEnv {
		testEnvVars[key] = value
	}

	// t.Setenv restores the original values when the test completes
	for key, value := range testEnvVars {
		t.Setenv(key, value)
	}
	if hmacSecret == "" {
		os.Unsetenv("HMAC_SECRET")
	}

	cfg, err := config.NewServerConfig()
	if err != nil {
		t.Fatalf("Failed to load configuration: %v", err)
	}

	logLevel := logger.ParseLogLevel("none")
	if os.Getenv("ENABLE_SERVER_LOGS") == "true" {
		logLevel = logger.ParseLogLevel("debug")
	}
	appLogger := logger.InitLogger(logLevel, environment)

	serverInstance, err := server.NewServer(cfg, appLogger)
	if err != nil {
		t.Fatalf("Failed to create server: %v", err)
	}

	serverCtx, serverCancel := context.WithCancel(ctx)

	serverDone := make(chan error, 1)
	go func() {
		defer close(serverDone)
		if err := serverInstance.Start(serverCtx); err != nil {
			serverDone <- err
		}
	}()

	testEnv.shutdown = func() {
		t.Log("Stopping server...")

		serverCancel()

		select {
		case err := <-serverDone:
			if err != nil {
				t.Logf("❌ Server shutdown with error: %v", err)
			} else {
				t.Log("✅ Server shut down gracefully")
			}
		case <-time.After(5 * time.Second):
			t.Log("⚠️ Server shutdown timeout")
		}
	}
	t.Cleanup(testEnv.shutdown)

	testEnv.baseURL = fmt.Sprintf("http://localhost:%d", port)
	testEnv.cfg = cfg

	if !waitForServer(t, testEnv.baseURL+"/health/live", 30*time.Second) {
		t.Fatal("Server failed to start within timeout")
	}

	t.Logf("✅ Server started at %s", testEnv.baseURL)
	return testEnv
}

func findFreePort(t *testing.T) int {
	t.Helper()
	listener, err := net.Listen("tcp", ":0")
	if err != nil {
		t.Fatalf("Failed to find free port: %v", err)
	}
	defer listener.Close()

	addr := listener.Addr().(*net.TCPAddr)
	return addr.Port
}

func waitForServer(t *testing.T, url string, timeout time.Duration) bool {
	t.Helper()

	client := &http.Client{Timeout: 1 * time.Second}
	deadline := time.Now().Add(timeout)

	for time.Now().Before(deadline) {
		resp, err := client.Get(url)
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return true
			}
		}
		time.Sleep(100 * time.Millisecond)
	}
	return false
}
