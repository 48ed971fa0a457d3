package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/information-sharing-networks/crypto-api/internal/crypto"
)

func TestMapErrorToResponse(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   ErrorCode
	}{
		{"malformed request", NewMalformedRequestError("bad json"), http.StatusBadRequest, ErrCodeMalformedRequest},
		{"root not object", NewRootNotObjectError("not an object"), http.StatusUnprocessableEntity, ErrCodeRootNotObject},
		{"validation", NewValidationError("signature is required"), http.StatusUnprocessableEntity, ErrCodeValidation},
		{"invalid signature", NewInvalidSignatureError("Invalid signature"), http.StatusBadRequest, ErrCodeInvalidSignature},
		{"secret missing", NewSecretMissingError("HMAC secret missing"), http.StatusServiceUnavailable, ErrCodeSecretMissing},
		{"payload too large", NewPayloadTooLargeError("too big"), http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge},
		{"rate limit", NewRateLimitError("slow down"), http.StatusTooManyRequests, ErrCodeRateLimitExceeded},
		{"api internal", WrapInternalError(errors.New("boom"), "boom"), http.StatusInternalServerError, ErrCodeInternal},
		{"wrapped api error", fmt.Errorf("handler: %w", NewValidationError("x")), http.StatusUnprocessableEntity, ErrCodeValidation},
		{"crypto config", crypto.NewConfigError("HMAC secret must not be empty"), http.StatusServiceUnavailable, ErrCodeSecretMissing},
		{"crypto decode", crypto.NewDecodeError("token is empty"), http.StatusBadRequest, ErrCodeInvalidToken},
		{"crypto encode", crypto.WrapEncodeError(errors.New("NaN"), "value cannot be serialized"), http.StatusUnprocessableEntity, ErrCodeValidation},
		{"crypto internal", crypto.NewInternalError("boom"), http.StatusInternalServerError, ErrCodeInternal},
		{"max bytes", &http.MaxBytesError{Limit: 64}, http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge},
		{"unmapped", errors.New("something else"), http.StatusInternalServerError, ErrCodeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/sign", nil)
			req = req.WithContext(context.WithValue(req.Context(), middleware.RequestIDKey, "req-123"))

			resp := MapErrorToResponse(tt.err, req)
			if resp.StatusCode != tt.wantStatus {
				t.Errorf("StatusCode = %d, want %d", resp.StatusCode, tt.wantStatus)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("Code = %q, want %q", resp.Code, tt.wantCode)
			}
			if resp.RequestID != "req-123" {
				t.Errorf("RequestID = %q, want req-123", resp.RequestID)
			}
			if resp.ErrorDateTime == "" {
				t.Error("ErrorDateTime not set")
			}
		})
	}
}

func TestMapErrorToResponseSanitizesInternalErrors(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/sign", nil)

	resp := MapErrorToResponse(WrapInternalError(errors.New("secret=hunter2"), "failed"), req)
	if strings.Contains(resp.Error, "hunter2") {
		t.Errorf("internal error details leaked to the client: %q", resp.Error)
	}

	resp = MapErrorToResponse(crypto.NewConfigError("HMAC secret must not be empty"), req)
	if resp.Error != "HMAC secret missing" {
		t.Errorf("Error = %q, want %q", resp.Error, "HMAC secret missing")
	}
}

func TestRespondWithErrorResponse(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/verify", nil)
	rr := httptest.NewRecorder()

	RespondWithErrorResponse(rr, req, NewInvalidSignatureError("Invalid signature"))

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusBadRequest)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("Content-Type = %q, want application/json", ct)
	}

	var body ErrorResponse
	if err := json.NewDecoder(rr.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error response: %v", err)
	}
	if body.Code != ErrCodeInvalidSignature {
		t.Errorf("code = %q, want %q", body.Code, ErrCodeInvalidSignature)
	}
	if body.Error != "Invalid signature" {
		t.Errorf("error = %q, want %q", body.Error, "Invalid signature")
	}
}
