package api

// error_response.go implements the error response format for the crypto API
// it includes functions to map lower level errors to the error response format (returned to the client)

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/information-sharing-networks/crypto-api/internal/crypto"
	"github.com/information-sharing-networks/crypto-api/internal/logger"
)

// ErrorResponse is the body of every error response
type ErrorResponse struct {

	// A human-readable description of the error
	Error string `json:"error" example:"Invalid signature"`

	// A stable machine readable error code
	Code ErrorCode `json:"code" example:"invalid_signature"`

	// The HTTP status code returned
	StatusCode int `json:"statusCode" example:"400"`

	// The X-Request-ID of the request
	RequestID string `json:"requestId,omitempty"`

	// The DateTime corresponding to the error occurring
	ErrorDateTime string `json:"errorDateTime" example:"2024-01-28T10:00:00Z"`
}

// MapErrorToResponse maps api.Error, crypto.Error, or generic errors to an error response.
//
// Internal errors are sanitized for the response, the full error message is logged server-side.
// The mapping also establishes the appropriate HTTP status code based on the error type.
func MapErrorToResponse(err error, r *http.Request) *ErrorResponse {
	requestID := middleware.GetReqID(r.Context())

	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return errorResponseFromAPI(apiErr, requestID)
	}

	var cryptoErr *crypto.CryptoError
	if errors.As(err, &cryptoErr) {
		return errorResponseFromCrypto(cryptoErr, requestID)
	}

	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		return newErrorResponse(http.StatusRequestEntityTooLarge, ErrCodePayloadTooLarge,
			fmt.Sprintf("Request body exceeds maximum allowed size (%d bytes)", maxBytesErr.Limit), requestID)
	}

	// fallback - this is not expected - if it does happen, return an internal error response and log the unmapped error
	reqLogger := logger.ContextRequestLogger(r.Context())
	reqLogger.Error("BUG: Unmapped error type in MapErrorToResponse",
		slog.String("error_type", fmt.Sprintf("%T", err)),
		slog.String("error", err.Error()),
		slog.String("request_id", requestID),
	)
	return newErrorResponse(http.StatusInternalServerError, ErrCodeInternal, "Internal Server Error", requestID)
}

// errorResponseFromAPI maps api.Error to an error response
func errorResponseFromAPI(err *APIError, requestID string) *ErrorResponse {
	var statusCode int

	switch err.Code() {
	case ErrCodeMalformedRequest, ErrCodeInvalidSignature, ErrCodeInvalidToken:
		statusCode = http.StatusBadRequest
	case ErrCodeRootNotObject, ErrCodeValidation:
		statusCode = http.StatusUnprocessableEntity
	case ErrCodePayloadTooLarge:
		statusCode = http.StatusRequestEntityTooLarge
	case ErrCodeRateLimitExceeded:
		statusCode = http.StatusTooManyRequests
	case ErrCodeSecretMissing:
		statusCode = http.StatusServiceUnavailable
	default:
		return newErrorResponse(http.StatusInternalServerError, ErrCodeInternal, "Internal Server Error", requestID)
	}

	return newErrorResponse(statusCode, err.Code(), err.Error(), requestID)
}

// errorResponseFromCrypto maps crypto.Error to an error response
func errorResponseFromCrypto(err *crypto.CryptoError, requestID string) *ErrorResponse {
	switch err.Code() {
	case crypto.ErrCodeConfig:
		// don't echo configuration details to the client
		return newErrorResponse(http.StatusServiceUnavailable, ErrCodeSecretMissing, "HMAC secret missing", requestID)
	case crypto.ErrCodeDecode:
		return newErrorResponse(http.StatusBadRequest, ErrCodeInvalidToken, err.Error(), requestID)
	case crypto.ErrCodeEncode:
		return newErrorResponse(http.StatusUnprocessableEntity, ErrCodeValidation, err.Error(), requestID)
	default:
		return newErrorResponse(http.StatusInternalServerError, ErrCodeInternal, "Internal Server Error", requestID)
	}
}

func newErrorResponse(statusCode int, code ErrorCode, msg, requestID string) *ErrorResponse {
	return &ErrorResponse{
		Error:         msg,
		Code:          code,
		StatusCode:    statusCode,
		RequestID:     requestID,
		ErrorDateTime: time.Now().UTC().Format(time.RFC3339),
	}
}
