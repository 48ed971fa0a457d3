package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
)

// AlgorithmHMACSHA256 identifies HMAC-SHA256 over canonical JSON (see Canonicalize).
const AlgorithmHMACSHA256 = "HMAC-SHA256"

// Signer computes and checks signatures over JSON values.
//
// Signatures must not depend on object key order: two values that are equal
// apart from member order produce the same signature.
// Implementations must be safe for concurrent use.
type Signer interface {
	// Sign returns the signature for value.
	Sign(value any) (string, error)

	// Verify reports whether signature matches value.
	// It never returns an error: malformed signatures and unserializable values are simply not valid.
	Verify(signature string, value any) bool

	// Algorithm names the signature algorithm.
	Algorithm() string
}

// HMACSHA256Signer signs the canonical JSON form of a value with HMAC-SHA256.
type HMACSHA256Signer struct {
	secret []byte
}

// NewHMACSHA256Signer creates a signer using secret as the HMAC key.
//
// An empty secret returns an error with code ErrCodeConfig.
// The secret is copied, later changes to the caller's slice have no effect.
func NewHMACSHA256Signer(secret []byte) (*HMACSHA256Signer, error) {
	if len(secret) == 0 {
		return nil, NewConfigError("HMAC secret must not be empty")
	}

	key := make([]byte, len(secret))
	copy(key, secret)

	return &HMACSHA256Signer{secret: key}, nil
}

// Sign returns the lowercase hex HMAC-SHA256 (64 characters) of the canonical JSON form of value.
func (s *HMACSHA256Signer) Sign(value any) (string, error) {
	msg, err := Canonicalize(value)
	if err != nil {
		return "", err
	}

	return hex.EncodeToString(s.mac(msg)), nil
}

// Verify recomputes the signature for value and compares it with signature in constant time.
func (s *HMACSHA256Signer) Verify(signature string, value any) bool {
	expected, err := s.Sign(value)
	if err != nil {
		return false
	}

	// hmac.Equal does not return early on the first differing byte
	return hmac.Equal([]byte(expected), []byte(signature))
}

func (s *HMACSHA256Signer) Algorithm() string {
	return AlgorithmHMACSHA256
}

func (s *HMACSHA256Signer) mac(msg []byte) []byte {
	h := hmac.New(sha256.New, s.secret)
	h.Write(msg)
	return h.Sum(nil)
}
