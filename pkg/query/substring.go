package query

import (
	"strings"

	"github.com/spf13/cast"
)

// SubstringMatcher matches text fields when the pattern occurs anywhere
// in the stored value, ignoring case. An empty pattern matches
// everything.
type SubstringMatcher struct{}

// Match implements Matcher.
func (SubstringMatcher) Match(value any, pattern string) bool {
	if pattern == "" {
		return true
	}
	s := cast.ToString(value)
	return strings.Contains(strings.ToLower(s), strings.ToLower(pattern))
}
