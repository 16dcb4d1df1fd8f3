package query

import (
	"strconv"
	"strings"

	"github.com/spf13/cast"
)

// NumericMatcher matches numeric fields against point or range patterns:
//
//	"5"      equality
//	"1..10"  inclusive range
//	"5.."    open-ended minimum
//	"..10"   open-ended maximum
//
// Endpoints and stored values compare as float64. An empty pattern
// matches everything; a pattern with a malformed endpoint matches
// nothing.
type NumericMatcher struct{}

// Match implements Matcher.
func (NumericMatcher) Match(value any, pattern string) bool {
	pattern = strings.TrimSpace(pattern)
	if pattern == "" {
		return true
	}
	v, err := cast.ToFloat64E(value)
	if err != nil {
		return false
	}

	lo, hi, ok := parseRange(pattern)
	if !ok {
		return false
	}
	if lo != nil && v < *lo {
		return false
	}
	if hi != nil && v > *hi {
		return false
	}
	return true
}

// parseRange splits a point or range pattern into optional endpoints.
// A nil endpoint means unbounded on that side.
func parseRange(pattern string) (lo, hi *float64, ok bool) {
	before, after, found := strings.Cut(pattern, "..")
	if !found {
		n, err := strconv.ParseFloat(pattern, 64)
		if err != nil {
			return nil, nil, false
		}
		return &n, &n, true
	}
	if before != "" {
		n, err := strconv.ParseFloat(before, 64)
		if err != nil {
			return nil, nil, false
		}
		lo = &n
	}
	if after != "" {
		n, err := strconv.ParseFloat(after, 64)
		if err != nil {
			return nil, nil, false
		}
		hi = &n
	}
	return lo, hi, true
}
