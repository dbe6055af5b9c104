package edn

import (
	"math"
	"strconv"
	"strings"
)

// keyText strips the leading ':' a Key payload always carries, the
// common prefix ToInt/ToUint/ToFloat/ToBool need before handing a
// keyword's text to strconv.
func keyText(e Edn) string {
	if e.kind == KindKey {
		return strings.TrimPrefix(e.s, ":")
	}
	return e.s
}

// ToInt coerces e to a signed integer the way the origin crate's
// to_int does: Int passes through; UInt converts when it fits in an
// int64; Double and Rational truncate toward zero; Str and Key parse
// their text (a Key's leading ':' is stripped first); every other
// variant reports false.
func (e Edn) ToInt() (int64, bool) {
	switch e.kind {
	case KindInt:
		return e.i, true
	case KindUInt:
		if e.u > math.MaxInt64 {
			return 0, false
		}
		return int64(e.u), true
	case KindDouble:
		if math.IsNaN(e.f) || math.IsInf(e.f, 0) {
			return 0, false
		}
		return int64(e.f), true
	case KindRational:
		if e.den == 0 {
			return 0, false
		}
		return e.num / e.den, true
	case KindStr, KindKey:
		v, err := strconv.ParseInt(keyText(e), 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// ToUint coerces e to an unsigned integer. UInt passes through; Int,
// Double, and Rational convert when the value is non-negative; Str and
// Key parse their text.
func (e Edn) ToUint() (uint64, bool) {
	switch e.kind {
	case KindUInt:
		return e.u, true
	case KindInt:
		if e.i < 0 {
			return 0, false
		}
		return uint64(e.i), true
	case KindDouble:
		if math.IsNaN(e.f) || math.IsInf(e.f, 0) || e.f < 0 {
			return 0, false
		}
		return uint64(e.f), true
	case KindRational:
		if e.den == 0 || (e.num != 0 && (e.num < 0) != (e.den < 0)) {
			return 0, false
		}
		v := e.num / e.den
		if v < 0 {
			return 0, false
		}
		return uint64(v), true
	case KindStr, KindKey:
		v, err := strconv.ParseUint(keyText(e), 10, 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// ToFloat coerces e to a float64: Int, UInt, and Double convert
// directly; Rational divides; Str and Key parse their text. Every
// other variant — Bool, Char, and the container and Tagged kinds —
// reports false, matching the origin crate's to_float, which only
// converts scalar numeric-ish shapes.
func (e Edn) ToFloat() (float64, bool) {
	switch e.kind {
	case KindDouble:
		return e.f, true
	case KindInt:
		return float64(e.i), true
	case KindUInt:
		return float64(e.u), true
	case KindRational:
		if e.den == 0 {
			return 0, false
		}
		return float64(e.num) / float64(e.den), true
	case KindStr, KindKey:
		v, err := strconv.ParseFloat(keyText(e), 64)
		if err != nil {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

// ToBool coerces e to a bool: Bool passes through; Str and Key convert
// when their text is exactly "true" or "false". Added symmetrically
// with ToInt/ToUint/ToFloat; the origin crate has no equivalent since
// Rust's Edn::Bool already borrows directly wherever a bool is needed.
func (e Edn) ToBool() (bool, bool) {
	switch e.kind {
	case KindBool:
		return e.b, true
	case KindStr, KindKey:
		switch keyText(e) {
		case "true":
			return true, true
		case "false":
			return false, true
		default:
			return false, false
		}
	default:
		return false, false
	}
}
