package toon

import (
	"math"
	"strconv"
	"strings"
)

// normalizeInt renders i in the shortest decimal form (spec §4.1 rule 1).
func normalizeInt(i int64) string {
	return strconv.FormatInt(i, 10)
}

// normalizeFloat renders f per spec §4.1 rules 2-4.
//
// Rule 2: a finite float whose fractional part is zero and whose magnitude
// is below 2^63 is emitted as an integer (1.0 -> "1").
// Rule 3: otherwise, a shortest-round-trip decimal with a point, no
// exponent, trailing fractional zeros stripped, and a bare trailing "."
// stripped.
// Rule 4: NaN/+Inf/-Inf emit as "null" (callers normally never reach this
// because Float() already maps non-finite values to Null; kept for direct
// callers of normalizeFloat).
func normalizeFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "null"
	}
	if frac := f - math.Trunc(f); frac == 0 && math.Abs(f) < 9223372036854775808.0 {
		return strconv.FormatInt(int64(f), 10)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if strings.ContainsAny(s, "eE") {
		// strconv with 'f' never emits exponent notation, but guard anyway.
		s = strconv.FormatFloat(f, 'g', -1, 64)
	}
	if strings.Contains(s, ".") {
		s = strings.TrimRight(s, "0")
		s = strings.TrimSuffix(s, ".")
	}
	return s
}

// NormalizeNumber dispatches a Value of Kind Int or Float to its TOON text
// form. It panics if v is not a number; callers are expected to dispatch on
// Kind first, mirroring how the rest of the encoder is structured.
func NormalizeNumber(v Value) string {
	switch v.Kind() {
	case KindInt:
		return normalizeInt(v.Int())
	case KindFloat:
		return normalizeFloat(v.Float())
	default:
		panic("toon: NormalizeNumber called on non-number Value")
	}
}

// looksNumeric implements the numeric surface grammar from spec §4.2 rule 4:
// a bare token that would be misread as a number (and therefore requires
// quoting to round-trip as a string).
func looksNumeric(s string) bool {
	i := 0
	n := len(s)
	if i < n && s[i] == '-' {
		i++
	}
	start := i
	for i < n && isDigit(s[i]) {
		i++
	}
	digits := s[start:i]
	if len(digits) == 0 {
		return false
	}
	// Leading zero is only permitted if the run is exactly "0" or is
	// immediately followed by '.'. Any other run starting with '0' of
	// length >= 2 forces quoting (05, 007, ...).
	if digits[0] == '0' && !(digits == "0" || (i < n && s[i] == '.')) {
		return true
	}

	if i < n && s[i] == '.' {
		i++
		fracStart := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == fracStart {
			return false // bare "-3." or "3." is not a number-lookalike
		}
	}
	if i < n && (s[i] == 'e' || s[i] == 'E') {
		i++
		if i < n && (s[i] == '+' || s[i] == '-') {
			i++
		}
		expStart := i
		for i < n && isDigit(s[i]) {
			i++
		}
		if i == expStart {
			return false
		}
	}
	return i == n
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseNumberToken classifies and parses an unquoted bare token into an
// Int or Float Value per spec §4.4's primitive token inference, or reports
// ok=false if it is not a valid number token at all.
func parseNumberToken(s string) (Value, bool) {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return Int(i), true
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return Float(f), true
	}
	return Value{}, false
}
