package query

import (
	"github.com/spf13/cast"

	"github.com/tracknest/tracknest/internal/strutil"
)

// BoolMatcher matches boolean fields by equality. The pattern goes
// through the human-text boolean parser, so "yes", "on", and "1" all
// select true; the stored value is reduced to its truthiness.
type BoolMatcher struct{}

// Match implements Matcher.
func (BoolMatcher) Match(value any, pattern string) bool {
	return cast.ToBool(value) == strutil.ParseBool(pattern)
}
