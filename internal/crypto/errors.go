package crypto

import (
	"errors"
	"fmt"
)

// Error represents a structured error from the crypto package
type Error interface {
	error
	Code() ErrorCode
	Unwrap() error
}

type ErrorCode string

const (
	ErrCodeConfig   ErrorCode = "config"
	ErrCodeDecode   ErrorCode = "decode"
	ErrCodeEncode   ErrorCode = "encode"
	ErrCodeInternal ErrorCode = "internal"
)

// CryptoError represents a structured error from the crypto package
type CryptoError struct {

	// code is the cryptoerror code
	code ErrorCode

	// message is a human-readable error message
	message string

	// wrapped is the optional underlying error
	wrapped error
}

func (e *CryptoError) Error() string {
	if e.wrapped != nil {
		return fmt.Sprintf("%s: %v", e.message, e.wrapped)
	}
	return e.message
}

func (e *CryptoError) Code() ErrorCode { return e.code }
func (e *CryptoError) Unwrap() error   { return e.wrapped }

// NewConfigError creates a configuration error.
// Use this when a component cannot be constructed, e.g. a signer is created without a secret.
// These errors are fatal to the component and are not retried.
//
// The returned error will have code ErrCodeConfig.
func NewConfigError(msg string) error {
	return &CryptoError{code: ErrCodeConfig, message: msg}
}

// NewDecodeError creates a decode error.
// Use this when a token is not valid base64 or does not hold a JSON value.
// Callers decide whether to surface the error or keep the original input.
//
// The returned error will have code ErrCodeDecode.
func NewDecodeError(msg string) error {
	return &CryptoError{code: ErrCodeDecode, message: msg}
}

// WrapDecodeError wraps an existing error as a decode error.
//
// The returned error will have code ErrCodeDecode.
func WrapDecodeError(err error, msg string) error {
	return &CryptoError{code: ErrCodeDecode, message: msg, wrapped: err}
}

// WrapEncodeError wraps an existing error as an encode error.
// Use this when a Go value has no JSON representation (channels, functions, NaN etc).
//
// The returned error will have code ErrCodeEncode.
func WrapEncodeError(err error, msg string) error {
	return &CryptoError{code: ErrCodeEncode, message: msg, wrapped: err}
}

// NewInternalError creates an internal error for unexpected failures.
//
// The returned error will have code ErrCodeInternal.
func NewInternalError(msg string) error {
	return &CryptoError{code: ErrCodeInternal, message: msg}
}

// WrapInternalError wraps an existing error as an internal error.
// Use this for errors related to crypto library failures, unexpected nil values,
// or system errors that should not normally occur.
//
// The returned error will have code ErrCodeInternal.
func WrapInternalError(err error, msg string) error {
	return &CryptoError{code: ErrCodeInternal, message: msg, wrapped: err}
}

// IsConfigError reports whether err is a crypto configuration error.
func IsConfigError(err error) bool {
	return hasCode(err, ErrCodeConfig)
}

// IsDecodeError reports whether err is a crypto decode error.
func IsDecodeError(err error) bool {
	return hasCode(err, ErrCodeDecode)
}

func hasCode(err error, code ErrorCode) bool {
	var cryptoErr *CryptoError
	return errors.As(err, &cryptoErr) && cryptoErr.Code() == code
}
