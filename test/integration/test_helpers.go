//go:build integration

// functions that are useful in integration tests

package integration

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/information-sharing-networks/crypto-api/internal/api"
)

// postJSON posts body to baseURL+path and returns the response and its body
func postJSON(t *testing.T, baseURL, path, body string) (*http.Response, []byte) {
	t.Helper()

	resp, err := http.Post(baseURL+path, "application/json", bytes.NewReader([]byte(body)))
	if err != nil {
		t.Fatalf("POST %s failed: %v", path, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return resp, respBody
}

// sign calls /sign and returns the signature
func sign(t *testing.T, baseURL, payload string) string {
	t.Helper()

	resp, body := postJSON(t, baseURL, "/sign", payload)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/sign returned %d: %s", resp.StatusCode, body)
	}

	var signResp api.SignResponse
	if err := json.Unmarshal(body, &signResp); err != nil {
		t.Fatalf("failed to decode /sign response: %v", err)
	}
	return signResp.Signature
}

// verifyRequest builds a /verify body
func verifyRequest(signature, data string) string {
	sig, _ := json.Marshal(signature)
	return `{"signature":` + string(sig) + `,"data":` + data + `}`
}

// decodeError decodes an error response body
func decodeError(t *testing.T, body []byte) api.ErrorResponse {
	t.Helper()

	var errResp api.ErrorResponse
	if err := json.Unmarshal(body, &errResp); err != nil {
		t.Fatalf("failed to decode error response %q: %v", body, err)
	}
	return errResp
}
