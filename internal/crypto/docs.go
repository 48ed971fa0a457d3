// crypto package provides the two operations behind the crypto API.
//
//   - ValueCodec turns a single JSON value into an opaque string token and back (Base64JSONCodec).
//   - Signer signs and verifies JSON values (HMACSHA256Signer over canonical JSON with exact numbers).
//
// EncryptProperties and DecryptProperties apply a codec to the top-level members of an object.
//
// Both are interfaces so the HTTP handlers do not depend on a particular algorithm.
// Neither holds mutable state, a single instance is shared by all requests.
//
// Errors are returned as *CryptoError with a code (ErrCodeConfig, ErrCodeDecode, ...).
// The package never decides how an error is reported to a client: that is done by the api package.
package crypto
