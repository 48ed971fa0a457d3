package crypto

import (
	"encoding/base64"
	"encoding/json"
	"unicode/utf8"

	"github.com/information-sharing-networks/crypto-api/internal/jsonvalue"
)

// ValueCodec converts a single JSON value into an opaque string token and back.
//
// Implementations must be safe for concurrent use.
type ValueCodec interface {
	// Encode returns the token for value.
	Encode(value any) (string, error)

	// Decode returns the value held by token.
	// An error with code ErrCodeDecode is returned when token was not produced by Encode.
	Decode(token string) (any, error)
}

// Base64JSONCodec encodes a value as base64(JSON(value)).
//
// The JSON step keeps the value's type (integers stay integers, objects stay objects),
// the base64 step makes the result a plain string.
// This is an encoding, not encryption: anyone can decode a token.
type Base64JSONCodec struct{}

// NewBase64JSONCodec returns the base64 JSON codec.
func NewBase64JSONCodec() *Base64JSONCodec {
	return &Base64JSONCodec{}
}

// Encode serializes value to JSON and base64 encodes the result (standard alphabet, padded).
//
// Values produced by jsonvalue.Parse always encode.
// Other Go values fail with ErrCodeEncode when they have no JSON form.
func (c *Base64JSONCodec) Encode(value any) (string, error) {
	payload, err := json.Marshal(value)
	if err != nil {
		return "", WrapEncodeError(err, "value cannot be serialized as JSON")
	}
	return base64.StdEncoding.EncodeToString(payload), nil
}

// Decode reverses Encode.
//
// Decoding is strict: the padding and alphabet are validated, embedded line breaks are rejected
// and the decoded bytes must be valid UTF-8.
// The decoded JSON is parsed with jsonvalue.Parse so numbers keep their literal form.
func (c *Base64JSONCodec) Decode(token string) (any, error) {
	if token == "" {
		return nil, NewDecodeError("token is empty")
	}

	payload, err := base64.StdEncoding.Strict().DecodeString(token)
	if err != nil {
		return nil, WrapDecodeError(err, "token is not valid base64")
	}

	// the standard decoder silently drops \r and \n
	if base64.StdEncoding.EncodedLen(len(payload)) != len(token) {
		return nil, NewDecodeError("token contains characters outside the base64 alphabet")
	}

	// encoding/json would replace invalid bytes with U+FFFD
	if !utf8.Valid(payload) {
		return nil, NewDecodeError("token does not hold UTF-8 encoded JSON")
	}

	value, err := jsonvalue.Parse(payload)
	if err != nil {
		return nil, WrapDecodeError(err, "token does not hold a JSON value")
	}
	return value, nil
}
