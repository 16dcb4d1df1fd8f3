package fieldtype

import (
	"fmt"
	"strconv"
	"strings"
)

// Value coercions. Stored values arrive as any: database scans, JSONL
// decoding, and user code all feed this boundary, so each coercion accepts
// the plausible concrete types and treats everything else as absent.

// asInt64 converts a stored value to int64. The second result reports
// whether the value carried a usable integer.
func asInt64(v any) (int64, bool) {
	switch n := v.(type) {
	case int64:
		return n, true
	case int:
		return int64(n), true
	case int32:
		return int64(n), true
	case uint:
		return int64(n), true
	case uint64:
		return int64(n), true
	case float64:
		return int64(n), true
	case float32:
		return int64(n), true
	case bool:
		if n {
			return 1, true
		}
		return 0, true
	default:
		return 0, false
	}
}

// intOrZero converts a stored value to int64, with nil and foreign types
// collapsing to 0.
func intOrZero(v any) int64 {
	n, _ := asInt64(v)
	return n
}

// asFloat64 converts a stored value to float64. The second result reports
// whether the value carried a usable number.
func asFloat64(v any) (float64, bool) {
	switch f := v.(type) {
	case float64:
		return f, true
	case float32:
		return float64(f), true
	case int64:
		return float64(f), true
	case int:
		return float64(f), true
	default:
		return 0, false
	}
}

// floatOrZero converts a stored value to float64, with nil and foreign
// types collapsing to 0.
func floatOrZero(v any) float64 {
	f, _ := asFloat64(v)
	return f
}

// textOrEmpty renders a present, non-empty value in its textual form and
// everything else as the empty string.
func textOrEmpty(v any) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		if !truthy(v) {
			return ""
		}
		return fmt.Sprint(v)
	}
}

// truthy reports the boolean interpretation of a stored value: nil, zero
// numbers, false, and empty strings are false; any other present value is
// true.
func truthy(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int64:
		return t != 0
	case int:
		return t != 0
	case int32:
		return t != 0
	case uint:
		return t != 0
	case uint64:
		return t != 0
	case float64:
		return t != 0
	case float32:
		return t != 0
	default:
		return true
	}
}

// parseInteger parses decimal integer text, tolerating surrounding
// whitespace and an explicit sign. Anything else, including overflow,
// yields 0.
func parseInteger(text string) int64 {
	n, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0
	}
	return n
}

// parseFloat parses floating-point text, tolerating surrounding
// whitespace. Unparseable text yields 0.
func parseFloat(text string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil {
		return 0
	}
	return f
}

// floorDiv divides v by unit rounding toward negative infinity, so
// negative values scale symmetrically with positive ones.
func floorDiv(v, unit int64) int64 {
	q := v / unit
	if v%unit != 0 && (v < 0) != (unit < 0) {
		q--
	}
	return q
}
