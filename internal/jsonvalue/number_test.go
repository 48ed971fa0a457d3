package jsonvalue

import (
	"encoding/json"
	"testing"
)

func TestCanonicalNumber(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"0", "0"},
		{"-0", "0"},
		{"30", "30"},
		{"-42", "-42"},
		{"9007199254740993", "9007199254740993"},
		{"123456789012345678901234567890", "123456789012345678901234567890"},
		{"1.0", "1.0"},
		{"1.50", "1.5"},
		{"-0.0", "0.0"},
		{"0.0e10", "0.0"},
		{"1e2", "100.0"},
		{"1E+2", "100.0"},
		{"1616161616.0", "1616161616.0"},
		{"0.000001", "0.000001"},
		{"1.5e-7", "0.00000015"},
		{"1.5e-8", "1.5e-8"},
		{"12.5e20", "1.25e+21"},
		{"1e20", "100000000000000000000.0"},
		{"1e400", "1.0e+400"},
		{"-2.5e-400", "-2.5e-400"},
		{"0.1", "0.1"},
		{"0.10000000000000001", "0.10000000000000001"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := CanonicalNumber(json.Number(tt.input))
			if err != nil {
				t.Fatalf("CanonicalNumber(%s) returned error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("CanonicalNumber(%s) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestCanonicalNumberKeepsIntegersAndFloatsApart(t *testing.T) {
	pairs := [][2]string{
		{"1", "1.0"},
		{"0", "-0.0"},
		{"100", "1e2"},
		{"9007199254740993", "9007199254740992"},
	}

	for _, p := range pairs {
		a, errA := CanonicalNumber(json.Number(p[0]))
		b, errB := CanonicalNumber(json.Number(p[1]))
		if errA != nil || errB != nil {
			t.Fatalf("CanonicalNumber() returned errors: %v, %v", errA, errB)
		}
		if a == b {
			t.Errorf("%s and %s both normalise to %s", p[0], p[1], a)
		}
	}
}

func TestCanonicalNumberRejectsInvalidLiterals(t *testing.T) {
	for _, input := range []string{"", "-", "1.", ".5", "1e", "1e+-2", "abc", "0x10", "1.2.3"} {
		if got, err := CanonicalNumber(json.Number(input)); err == nil {
			t.Errorf("CanonicalNumber(%q) = %s, expected error", input, got)
		}
	}
}
