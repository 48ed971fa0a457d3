package jsonvalue

import (
	"encoding/json"
)

// Equal reports whether a and b are the same JSON value.
//
// Object members are compared regardless of order, array elements in order.
// Numbers are compared after normalisation (see CanonicalNumber): integers compare exactly,
// floats by their normalised decimal text, and an integer never equals a float, so 30 and 30.0 are
// different values while 1.50 and 1.5 are the same.
// Plain map[string]any objects are accepted alongside *Object.
func Equal(a, b any) bool {
	switch av := a.(type) {
	case nil:
		return b == nil
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case json.Number:
		bv, ok := b.(json.Number)
		return ok && equalNumbers(av, bv)
	case string:
		bv, ok := b.(string)
		return ok && av == bv
	case []any:
		bv, ok := b.([]any)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if !Equal(av[i], bv[i]) {
				return false
			}
		}
		return true
	case *Object, map[string]any:
		return equalObjects(members(a), members(b))
	default:
		return false
	}
}

func members(v any) map[string]any {
	switch o := v.(type) {
	case *Object:
		if o == nil {
			return nil
		}
		return o.values
	case map[string]any:
		return o
	default:
		return nil
	}
}

func equalObjects(a, b map[string]any) bool {
	if a == nil || b == nil || len(a) != len(b) {
		return false
	}
	for key, av := range a {
		bv, ok := b[key]
		if !ok || !Equal(av, bv) {
			return false
		}
	}
	return true
}

func equalNumbers(a, b json.Number) bool {
	ca, errA := CanonicalNumber(a)
	cb, errB := CanonicalNumber(b)
	if errA != nil || errB != nil {
		return a == b
	}
	return ca == cb
}
