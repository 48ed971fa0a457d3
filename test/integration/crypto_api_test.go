//go:build integration

package integration

import (
	"bytes"
	"io"
	"net/http"
	"strings"
	"testing"

	"github.com/information-sharing-networks/crypto-api/internal/api"
)

func TestEncryptDecryptRoundTrip(t *testing.T) {
	testEnv := startInProcessServer(t, testSecret, nil)

	original := `{"name":"John Doe","age":30,"contact":{"email":"john@example.com","phone":"123-456-7890"},"scores":[1.5,2],"active":true,"note":null}`

	resp, encrypted := postJSON(t, testEnv.baseURL, "/encrypt", original)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/encrypt returned %d: %s", resp.StatusCode, encrypted)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}
	if !bytes.Contains(encrypted, []byte(`"age":"MzA="`)) {
		t.Errorf("/encrypt response %s does not contain the token for 30", encrypted)
	}

	resp, decrypted := postJSON(t, testEnv.baseURL, "/decrypt", string(encrypted))
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/decrypt returned %d: %s", resp.StatusCode, decrypted)
	}
	if got := strings.TrimSpace(string(decrypted)); got != original {
		t.Errorf("/decrypt = %s, want %s", got, original)
	}
}

func TestDecryptMixedPayload(t *testing.T) {
	testEnv := startInProcessServer(t, testSecret, nil)

	_, encrypted := postJSON(t, testEnv.baseURL, "/encrypt", `{"name":"John Doe"}`)
	mixed := strings.Replace(string(bytes.TrimSpace(encrypted)), "}", `,"birth_date":"1998-11-19"}`, 1)

	resp, body := postJSON(t, testEnv.baseURL, "/decrypt", mixed)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/decrypt returned %d: %s", resp.StatusCode, body)
	}
	if want := `{"name":"John Doe","birth_date":"1998-11-19"}`; strings.TrimSpace(string(body)) != want {
		t.Errorf("/decrypt = %s, want %s", body, want)
	}
}

func TestSignVerifyScenarios(t *testing.T) {
	testEnv := startInProcessServer(t, testSecret, nil)

	data := `{"message":"Hello World","timestamp":1616161616}`
	signature := sign(t, testEnv.baseURL, data)

	if reordered := sign(t, testEnv.baseURL, `{"timestamp":1616161616,"message":"Hello World"}`); reordered != signature {
		t.Errorf("signature depends on property order: %s != %s", reordered, signature)
	}

	tests := []struct {
		name       string
		body       string
		wantStatus int
		wantCode   api.ErrorCode
	}{
		{"valid signature", verifyRequest(signature, data), http.StatusNoContent, ""},
		{"valid signature reordered data", verifyRequest(signature, `{"timestamp":1616161616,"message":"Hello World"}`), http.StatusNoContent, ""},
		{"tampered data", verifyRequest(signature, `{"message":"Goodbye World","timestamp":1616161616}`), http.StatusBadRequest, api.ErrCodeInvalidSignature},
		{"tampered signature", verifyRequest(strings.Repeat("0", 64), data), http.StatusBadRequest, api.ErrCodeInvalidSignature},
		{"missing data", `{"signature":"` + signature + `"}`, http.StatusUnprocessableEntity, api.ErrCodeValidation},
		{"data not an object", verifyRequest(signature, `"text"`), http.StatusUnprocessableEntity, api.ErrCodeValidation},
		{"malformed JSON", `{"signature":`, http.StatusBadRequest, api.ErrCodeMalformedRequest},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, body := postJSON(t, testEnv.baseURL, "/verify", tt.body)
			if resp.StatusCode != tt.wantStatus {
				t.Fatalf("/verify returned %d, want %d: %s", resp.StatusCode, tt.wantStatus, body)
			}
			if tt.wantStatus == http.StatusNoContent {
				if len(body) != 0 {
					t.Errorf("204 response has a body: %q", body)
				}
				return
			}
			if errResp := decodeError(t, body); errResp.Code != tt.wantCode {
				t.Errorf("code = %q, want %q", errResp.Code, tt.wantCode)
			}
		})
	}
}

func TestServerWithoutSecret(t *testing.T) {
	testEnv := startInProcessServer(t, "", nil)

	resp, err := http.Get(testEnv.baseURL + "/health/ready")
	if err != nil {
		t.Fatalf("GET /health/ready failed: %v", err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusServiceUnavailable {
		t.Errorf("/health/ready returned %d, want %d", resp.StatusCode, http.StatusServiceUnavailable)
	}

	for _, path := range []string{"/sign", "/verify"} {
		resp, body := postJSON(t, testEnv.baseURL, path, `{"signature":"abc","data":{"x":1}}`)
		if resp.StatusCode != http.StatusServiceUnavailable {
			t.Errorf("%s returned %d, want %d", path, resp.StatusCode, http.StatusServiceUnavailable)
			continue
		}
		if errResp := decodeError(t, body); errResp.Code != api.ErrCodeSecretMissing {
			t.Errorf("%s code = %q, want %q", path, errResp.Code, api.ErrCodeSecretMissing)
		}
	}

	// encryption does not need the secret
	if resp, _ := postJSON(t, testEnv.baseURL, "/encrypt", `{"x":1}`); resp.StatusCode != http.StatusOK {
		t.Errorf("/encrypt returned %d, want 200", resp.StatusCode)
	}
}

func TestRequestIDAndSizeLimit(t *testing.T) {
	testEnv := startInProcessServer(t, testSecret, map[string]string{"MAX_REQUEST_SIZE": "256"})

	req, err := http.NewRequest(http.MethodPost, testEnv.baseURL+"/encrypt",
		strings.NewReader(`{"blob":"`+strings.Repeat("x", 512)+`"}`))
	if err != nil {
		t.Fatal(err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", "integration-413")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("POST /encrypt failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusRequestEntityTooLarge {
		t.Fatalf("status = %d, want %d", resp.StatusCode, http.StatusRequestEntityTooLarge)
	}
	if got := resp.Header.Get("X-Request-ID"); got != "integration-413" {
		t.Errorf("X-Request-ID = %q, want integration-413", got)
	}
	if got := resp.Header.Get("X-Max-Request-Size"); got != "256" {
		t.Errorf("X-Max-Request-Size = %q, want 256", got)
	}

	errResp := decodeError(t, body)
	if errResp.Code != api.ErrCodePayloadTooLarge {
		t.Errorf("code = %q, want %q", errResp.Code, api.ErrCodePayloadTooLarge)
	}
	if errResp.RequestID != "integration-413" {
		t.Errorf("requestId = %q, want integration-413", errResp.RequestID)
	}
}

func TestMetricsEndpoint(t *testing.T) {
	testEnv := startInProcessServer(t, testSecret, nil)

	sign(t, testEnv.baseURL, `{"x":1}`)

	resp, err := http.Get(testEnv.baseURL + "/metrics")
	if err != nil {
		t.Fatalf("GET /metrics failed: %v", err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("/metrics returned %d", resp.StatusCode)
	}
	if !bytes.Contains(body, []byte(`crypto_api_operations_total{operation="sign",status="success"}`)) {
		t.Errorf("/metrics does not report the sign operation")
	}
}
