// Package fieldtype describes the types of catalog record fields: how a
// field's values are stored, matched against query filters, rendered for
// display, and parsed back from human-written text.
//
// Every descriptor is an immutable value constructed once at schema
// definition time and shared read-only for the process lifetime. Format and
// Parse are total: malformed or absent input yields the kind's canonical
// zero, never an error.
package fieldtype
