package jsonvalue

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// CanonicalNumber returns the normalised text of a JSON number literal.
//
// Integer literals (no fraction or exponent) are written exactly, with no size limit,
// and -0 becomes 0.
// Other literals are floats. They are normalised without rounding: trailing zeros are removed,
// values with a decimal exponent between -7 and 20 are written in plain notation, others as
// d.ddde±N, and the result always has a fraction so a float never reads as an integer
// (1.0 stays "1.0", 1e2 becomes "100.0", -0.0 becomes "0.0", 1e400 becomes "1.0e+400").
func CanonicalNumber(n json.Number) (string, error) {
	lit := string(n)
	if lit == "" {
		return "", fmt.Errorf("empty number literal")
	}

	if !strings.ContainsAny(lit, ".eE") {
		if !isDigits(strings.TrimPrefix(lit, "-")) {
			return "", fmt.Errorf("invalid number literal %q", lit)
		}
		i, ok := new(big.Int).SetString(lit, 10)
		if !ok {
			return "", fmt.Errorf("invalid number literal %q", lit)
		}
		return i.String(), nil
	}

	return canonicalFloat(lit)
}

func canonicalFloat(lit string) (string, error) {
	s := lit
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	mantissa, expPart, hasExp := s, "", false
	if i := strings.IndexAny(s, "eE"); i >= 0 {
		mantissa, expPart, hasExp = s[:i], s[i+1:], true
	}

	intPart, frac := mantissa, ""
	if i := strings.IndexByte(mantissa, '.'); i >= 0 {
		intPart, frac = mantissa[:i], mantissa[i+1:]
		if frac == "" {
			return "", fmt.Errorf("invalid number literal %q", lit)
		}
	}
	if intPart == "" || !isDigits(intPart) || !isDigits(frac) {
		return "", fmt.Errorf("invalid number literal %q", lit)
	}

	exp := new(big.Int)
	if hasExp {
		digits := strings.TrimLeft(expPart, "+-")
		if len(expPart)-len(digits) > 1 || digits == "" || !isDigits(digits) {
			return "", fmt.Errorf("invalid number literal %q", lit)
		}
		exp.SetString(expPart, 10)
	}

	// value = digits * 10^exp
	digits := strings.TrimLeft(intPart+frac, "0")
	exp.Sub(exp, big.NewInt(int64(len(frac))))
	trimmed := strings.TrimRight(digits, "0")
	exp.Add(exp, big.NewInt(int64(len(digits)-len(trimmed))))
	digits = trimmed

	if digits == "" {
		return "0.0", nil
	}

	// value = d.ddd * 10^adjusted
	adjusted := new(big.Int).Add(exp, big.NewInt(int64(len(digits)-1)))

	if adjusted.IsInt64() && adjusted.Int64() >= -7 && adjusted.Int64() < 21 {
		e := int(exp.Int64())
		switch {
		case e >= 0:
			return sign + digits + strings.Repeat("0", e) + ".0", nil
		case len(digits)+e > 0:
			point := len(digits) + e
			return sign + digits[:point] + "." + digits[point:], nil
		default:
			return sign + "0." + strings.Repeat("0", -(len(digits)+e)) + digits, nil
		}
	}

	rest := digits[1:]
	if rest == "" {
		rest = "0"
	}
	expSign := "+"
	if adjusted.Sign() < 0 {
		expSign = "-"
		adjusted.Neg(adjusted)
	}
	return sign + digits[:1] + "." + rest + "e" + expSign + adjusted.String(), nil
}

func isDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
