package crypto

import (
	"testing"

	"github.com/information-sharing-networks/crypto-api/internal/jsonvalue"
)

func mustParseObject(t *testing.T, s string) *jsonvalue.Object {
	t.Helper()
	v, err := jsonvalue.Parse([]byte(s))
	if err != nil {
		t.Fatalf("Parse(%s) returned error: %v", s, err)
	}
	obj, ok := v.(*jsonvalue.Object)
	if !ok {
		t.Fatalf("Parse(%s) returned %T, want object", s, v)
	}
	return obj
}

func TestEncryptDecryptProperties(t *testing.T) {
	codec := NewBase64JSONCodec()
	original := mustParseObject(t, `{"name":"John Doe","age":30,"contact":{"email":"john@example.com","phone":"123-456-7890"},"tags":[1,"a",null]}`)

	encrypted, err := EncryptProperties(codec, original)
	if err != nil {
		t.Fatalf("EncryptProperties() returned error: %v", err)
	}

	if got, want := encrypted.Keys(), original.Keys(); len(got) != len(want) {
		t.Fatalf("encrypted keys = %v, want %v", got, want)
	}
	for i, key := range encrypted.Keys() {
		if key != original.Keys()[i] {
			t.Errorf("key %d = %q, want %q", i, key, original.Keys()[i])
		}
		v, _ := encrypted.Get(key)
		if _, ok := v.(string); !ok {
			t.Errorf("encrypted %s is %T, want string", key, v)
		}
	}
	if age, _ := encrypted.Get("age"); age != "MzA=" {
		t.Errorf("encrypted age = %v, want MzA=", age)
	}

	decrypted, unchanged := DecryptProperties(codec, encrypted)
	if unchanged != 0 {
		t.Errorf("unchanged = %d, want 0", unchanged)
	}
	if !jsonvalue.Equal(decrypted, original) {
		t.Errorf("decrypt(encrypt(x)) != x")
	}
}

func TestDecryptPropertiesFallback(t *testing.T) {
	codec := NewBase64JSONCodec()
	input := mustParseObject(t, `{"name":"IkpvaG4gRG9lIg==","birth_date":"1998-11-19","count":7,"nested":{"a":"MzA="},"empty":""}`)

	decrypted, unchanged := DecryptProperties(codec, input)

	want := mustParseObject(t, `{"name":"John Doe","birth_date":"1998-11-19","count":7,"nested":{"a":"MzA="},"empty":""}`)
	if !jsonvalue.Equal(decrypted, want) {
		got, _ := decrypted.MarshalJSON()
		t.Errorf("DecryptProperties() = %s", got)
	}
	// birth_date and empty are not tokens
	if unchanged != 2 {
		t.Errorf("unchanged = %d, want 2", unchanged)
	}
}
