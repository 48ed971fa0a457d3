// signatures are computed over a canonical JSON encoding so that semantically equal documents
// produce the same bytes regardless of key order or whitespace.
//
// The signing form follows the RFC 8785 layout (keys sorted, no whitespace, minimal string escaping)
// but keeps numbers exact: integers of any size are written digit for digit and floats keep a fraction,
// so values that only collide once converted to float64 (2^53 and 2^53+1, 1 and 1.0) sign differently.
// CanonicalizeJSON exposes the strict RFC 8785 form (gowebpki/jcs) for interop with other JCS tools.
package crypto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"

	"github.com/gowebpki/jcs"

	"github.com/information-sharing-networks/crypto-api/internal/jsonvalue"
)

// CanonicalizeJSON converts JSON to canonical form per RFC 8785
//
//   - object keys are sorted by UTF-16 code units at every depth
//   - insignificant whitespace is removed
//   - numbers use the ECMAScript shortest round-trip form (1.50 and 1.5 are the same, 1e2 becomes 100)
//   - strings use the minimal JSON escaping
//   - array order is preserved
//
// Numbers go through float64, so this form is not used for signing.
// If the input is not valid JSON, an error is returned (handled by jcs library).
func CanonicalizeJSON(jsonData []byte) ([]byte, error) {
	return jcs.Transform(jsonData)
}

// Canonicalize marshals value to JSON and returns the canonical form used for signing.
//
//   - object keys are sorted byte-wise (UTF-8) at every depth
//   - insignificant whitespace is removed
//   - integers are written exactly and -0 becomes 0
//   - floats are normalised by jsonvalue.CanonicalNumber and always keep a fraction (1.0, 100.0, 1.0e+400)
//   - strings use the minimal JSON escaping
//   - array order is preserved
func Canonicalize(value any) ([]byte, error) {
	jsonData, err := json.Marshal(value)
	if err != nil {
		return nil, WrapEncodeError(err, "failed to marshal value")
	}

	tree, err := jsonvalue.Parse(jsonData)
	if err != nil {
		return nil, WrapInternalError(err, "failed to parse marshalled JSON")
	}

	var buf bytes.Buffer
	if err := writeCanonical(&buf, tree); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeCanonical(buf *bytes.Buffer, v any) error {
	switch val := v.(type) {
	case nil:
		buf.WriteString("null")
	case bool:
		if val {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case json.Number:
		n, err := jsonvalue.CanonicalNumber(val)
		if err != nil {
			return WrapEncodeError(err, "failed to canonicalize number")
		}
		buf.WriteString(n)
	case string:
		writeCanonicalString(buf, val)
	case []any:
		buf.WriteByte('[')
		for i, elem := range val {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := writeCanonical(buf, elem); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case *jsonvalue.Object:
		keys := val.Keys()
		sort.Strings(keys)

		buf.WriteByte('{')
		for i, key := range keys {
			if i > 0 {
				buf.WriteByte(',')
			}
			writeCanonicalString(buf, key)
			buf.WriteByte(':')
			member, _ := val.Get(key)
			if err := writeCanonical(buf, member); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return NewInternalError(fmt.Sprintf("unexpected %T in parsed JSON", v))
	}
	return nil
}

const hexDigits = "0123456789abcdef"

// writeCanonicalString escapes only what JSON requires: the quote, the backslash and control characters.
func writeCanonicalString(buf *bytes.Buffer, s string) {
	buf.WriteByte('"')
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch c {
		case '"':
			buf.WriteString(`\"`)
		case '\\':
			buf.WriteString(`\\`)
		case '\b':
			buf.WriteString(`\b`)
		case '\f':
			buf.WriteString(`\f`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if c < 0x20 {
				buf.WriteString(`\u00`)
				buf.WriteByte(hexDigits[c>>4])
				buf.WriteByte(hexDigits[c&0xf])
			} else {
				buf.WriteByte(c)
			}
		}
	}
	buf.WriteByte('"')
}
