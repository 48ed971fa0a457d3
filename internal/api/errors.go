package api

// errors.go defines the error codes returned by the crypto API

import "fmt"

// APIError represents a request level error from the api package.
type APIError struct {
	// code is the API error code
	code ErrorCode

	// message is a human-readable error message
	message string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *APIError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *APIError) Code() ErrorCode { return e.code }
func (e *APIError) Unwrap() error   { return e.wrapped }

// ErrorCode is the machine readable "code" field of an error response.
type ErrorCode string

// Error codes used by the crypto API
const (

	// ErrCodeMalformedRequest is used when the request body is not valid JSON
	ErrCodeMalformedRequest ErrorCode = "malformed_request"

	// ErrCodeRootNotObject is used by /encrypt and /decrypt when the payload is not a JSON object
	ErrCodeRootNotObject ErrorCode = "root_not_object"

	// ErrCodeValidation is used when the request is valid JSON but does not have the expected shape
	// (e.g. /verify without a signature, or with data that is not an object)
	ErrCodeValidation ErrorCode = "validation_error"

	// ErrCodeInvalidSignature is used when a signature does not match the data
	ErrCodeInvalidSignature ErrorCode = "invalid_signature"

	// ErrCodeInvalidToken is used when a token could not be decoded and the caller required a valid token
	ErrCodeInvalidToken ErrorCode = "invalid_token"

	// ErrCodeSecretMissing is used when the signing secret is not configured.
	// This is a readiness failure, not a request error.
	ErrCodeSecretMissing ErrorCode = "secret_missing"

	// ErrCodePayloadTooLarge is used when the request body is too large
	// - this is used in the middleware and when a body read hits the limit
	ErrCodePayloadTooLarge ErrorCode = "payload_too_large"

	// ErrCodeRateLimitExceeded is used when the rate limit is exceeded
	// - this is only used in the middleware
	ErrCodeRateLimitExceeded ErrorCode = "rate_limit_exceeded"

	// ErrCodeInternal is used when an internal server error occurs
	ErrCodeInternal ErrorCode = "internal_error"
)

// NewMalformedRequestError creates an error for malformed requests.
func NewMalformedRequestError(msg string) error {
	return &APIError{code: ErrCodeMalformedRequest, message: msg}
}

// WrapMalformedRequestError wraps an existing error as a malformed request error.
func WrapMalformedRequestError(err error, msg string) error {
	return &APIError{code: ErrCodeMalformedRequest, message: msg, wrapped: err}
}

// NewRootNotObjectError creates an error for payloads that must be a JSON object but are not.
//
// The returned error will have code ErrCodeRootNotObject.
func NewRootNotObjectError(msg string) error {
	return &APIError{code: ErrCodeRootNotObject, message: msg}
}

// NewValidationError creates a validation error for requests with missing or wrongly typed fields.
//
// The returned error will have code ErrCodeValidation.
func NewValidationError(msg string) error {
	return &APIError{code: ErrCodeValidation, message: msg}
}

// NewInvalidSignatureError creates an error for a signature that does not match the data.
//
// The returned error will have code ErrCodeInvalidSignature.
func NewInvalidSignatureError(msg string) error {
	return &APIError{code: ErrCodeInvalidSignature, message: msg}
}

// NewSecretMissingError creates an error for requests that need the signing secret when none is configured.
//
// The returned error will have code ErrCodeSecretMissing.
func NewSecretMissingError(msg string) error {
	return &APIError{code: ErrCodeSecretMissing, message: msg}
}

// NewPayloadTooLargeError creates a request too large error.
// Use this when the request body exceeds the maximum allowed size.
//
// The returned error will have code ErrCodePayloadTooLarge.
func NewPayloadTooLargeError(msg string) error {
	return &APIError{code: ErrCodePayloadTooLarge, message: msg}
}

// NewRateLimitError creates a rate limit exceeded error.
// Use this when the client has exceeded the rate limit.
//
// The returned error will have code ErrCodeRateLimitExceeded.
func NewRateLimitError(msg string) error {
	return &APIError{code: ErrCodeRateLimitExceeded, message: msg}
}

// WrapInternalError wraps an existing error as an internal error.
// Use this for errors related to unexpected nil values, system errors,
// or other failures that should not normally occur.
//
// The returned error will have code ErrCodeInternal.
func WrapInternalError(err error, msg string) error {
	return &APIError{code: ErrCodeInternal, message: msg, wrapped: err}
}
