// Package query selects and evaluates field matching strategies. Each
// field type carries a matcher tag (fieldtype.MatcherKind); a Registry
// resolves tags to concrete matchers so that descriptors never depend on
// matching implementations.
package query

import (
	"github.com/tracknest/tracknest/pkg/fieldtype"
)

// Matcher evaluates one stored value against a user-written filter
// pattern. Implementations are stateless and safe for concurrent use.
type Matcher interface {
	Match(value any, pattern string) bool
}

// Registry maps matcher tags to implementations. Register entries during
// setup; lookups after that are read-only.
type Registry struct {
	matchers map[fieldtype.MatcherKind]Matcher
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{matchers: make(map[fieldtype.MatcherKind]Matcher)}
}

// Default returns a registry preloaded with the standard matchers:
// numeric range, case-insensitive substring, and boolean equality.
func Default() *Registry {
	r := NewRegistry()
	r.Register(fieldtype.MatchNumeric, NumericMatcher{})
	r.Register(fieldtype.MatchSubstring, SubstringMatcher{})
	r.Register(fieldtype.MatchBool, BoolMatcher{})
	return r
}

// Register binds a matcher to a tag, replacing any previous binding.
func (r *Registry) Register(kind fieldtype.MatcherKind, m Matcher) {
	r.matchers[kind] = m
}

// For returns the matcher bound to the tag, or false if none is
// registered.
func (r *Registry) For(kind fieldtype.MatcherKind) (Matcher, bool) {
	m, ok := r.matchers[kind]
	return m, ok
}
