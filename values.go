package rulekit

import (
	"fmt"
	"strconv"
	"unicode/utf8"
)

// asFloat coerces numeric values (and numeric strings) to float64 for
// comparison rules.
func asFloat(value any) (float64, bool) {
	switch v := value.(type) {
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case float32:
		return float64(v), true
	case float64:
		return v, true
	case string:
		f, err := strconv.ParseFloat(v, 64)
		return f, err == nil
	default:
		return 0, false
	}
}

// valueLen measures a value the way length rules count: elements for
// sequences and mappings, runes of the string form for scalars.
func valueLen(value any) int {
	switch v := value.(type) {
	case nil:
		return 0
	case string:
		return utf8.RuneCountInString(v)
	case []any:
		return len(v)
	case map[string]any:
		return len(v)
	default:
		return utf8.RuneCountInString(fmt.Sprint(v))
	}
}

// isTruthy mirrors dynamic-language truthiness: nil, false, zero numbers,
// and empty strings/sequences/mappings are falsy, everything else truthy.
func isTruthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case bool:
		return v
	case string:
		return v != ""
	case []any:
		return len(v) > 0
	case map[string]any:
		return len(v) > 0
	default:
		if f, ok := asFloat(value); ok {
			return f != 0
		}
		return true
	}
}

// looseEqual compares two values numerically when both coerce to numbers,
// otherwise by string form. This keeps "18" from the string grammar equal
// to a record value of 18.
func looseEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == b
	}
	fa, oka := asFloat(a)
	fb, okb := asFloat(b)
	if oka && okb {
		return fa == fb
	}
	return fmt.Sprint(a) == fmt.Sprint(b)
}
