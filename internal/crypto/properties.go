package crypto

import (
	"github.com/information-sharing-networks/crypto-api/internal/jsonvalue"
)

// EncryptProperties returns a new object with the same keys as obj, in the same order,
// where each top-level value is replaced by its token.
// Nested objects and arrays become a single token, their members are not visited.
func EncryptProperties(codec ValueCodec, obj *jsonvalue.Object) (*jsonvalue.Object, error) {
	result := jsonvalue.NewObject()
	for _, key := range obj.Keys() {
		value, _ := obj.Get(key)

		token, err := codec.Encode(value)
		if err != nil {
			return nil, WrapEncodeError(err, "failed to encrypt property "+key)
		}
		result.Set(key, token)
	}
	return result, nil
}

// DecryptProperties returns a new object where every top-level string that decodes as a token
// is replaced by the decoded value.
//
// Strings that are not tokens and values that are not strings are copied unchanged.
// The second return value is the number of strings that could not be decoded.
func DecryptProperties(codec ValueCodec, obj *jsonvalue.Object) (*jsonvalue.Object, int) {
	result := jsonvalue.NewObject()
	unchanged := 0
	for _, key := range obj.Keys() {
		value, _ := obj.Get(key)

		token, ok := value.(string)
		if !ok {
			result.Set(key, value)
			continue
		}

		decoded, err := codec.Decode(token)
		if err != nil {
			unchanged++
			result.Set(key, token)
			continue
		}
		result.Set(key, decoded)
	}
	return result, unchanged
}
