// Package jsonvalue provides the JSON value model shared by the codec, the signer and the HTTP handlers.
//
// A parsed value is one of:
//   - nil (JSON null)
//   - bool
//   - json.Number (the literal text is kept so that 30 stays an integer and 1.50 keeps its trailing zero)
//   - string
//   - []any
//   - *Object (members are kept in the order they were read)
//
// encoding/json's default decoding turns every number into a float64 and every object into an unordered map,
// neither of which is acceptable when a value has to survive an encode/decode round trip unchanged.
package jsonvalue
