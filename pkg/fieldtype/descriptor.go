package fieldtype

import (
	"fmt"
	"strconv"

	"github.com/tracknest/tracknest/internal/strutil"
)

// StorageKind is the persistence representation a descriptor declares.
// The storage backend maps it to a column type.
type StorageKind int

const (
	StorageInteger StorageKind = iota
	StorageReal
	StorageText
)

// String returns the storage kind name.
func (s StorageKind) String() string {
	switch s {
	case StorageInteger:
		return "integer"
	case StorageReal:
		return "real"
	case StorageText:
		return "text"
	default:
		return "unknown"
	}
}

// MatcherKind tags the query-matching strategy that applies to a field.
// The query engine resolves the tag to a concrete matcher; descriptors
// never reference matcher implementations directly.
type MatcherKind int

const (
	MatchNumeric MatcherKind = iota
	MatchSubstring
	MatchBool
)

// String returns the matcher kind name.
func (m MatcherKind) String() string {
	switch m {
	case MatchNumeric:
		return "numeric"
	case MatchSubstring:
		return "substring"
	case MatchBool:
		return "bool"
	default:
		return "unknown"
	}
}

// Kind identifies one of the closed set of field type variants.
type Kind int

const (
	KindInteger Kind = iota
	KindPaddedInt
	KindScaledInt
	KindID
	KindFloat
	KindString
	KindBoolean
)

// String returns the kind name.
func (k Kind) String() string {
	switch k {
	case KindInteger:
		return "integer"
	case KindPaddedInt:
		return "padded_int"
	case KindScaledInt:
		return "scaled_int"
	case KindID:
		return "id"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindBoolean:
		return "boolean"
	default:
		return "unknown"
	}
}

// Descriptor describes one field type: its storage representation, its
// matcher tag, and total Format/Parse conversions. Descriptors are
// immutable and safe for concurrent use.
type Descriptor struct {
	kind       Kind
	storage    StorageKind
	matcher    MatcherKind
	primaryKey bool

	digits int    // PaddedInt display width
	unit   int64  // ScaledInt divisor
	suffix string // ScaledInt display suffix
}

// Integer returns the basic integer descriptor. Values are stored in an
// integer column and matched numerically.
func Integer() Descriptor {
	return Descriptor{kind: KindInteger, storage: StorageInteger, matcher: MatchNumeric}
}

// PaddedInt returns an integer descriptor whose display form is
// zero-padded to digits width. Values wider than digits render unpadded.
// A width below 1 is treated as 1.
func PaddedInt(digits int) Descriptor {
	if digits < 1 {
		digits = 1
	}
	return Descriptor{kind: KindPaddedInt, storage: StorageInteger, matcher: MatchNumeric, digits: digits}
}

// ScaledInt returns an integer descriptor whose display form is the value
// floor-divided by unit with suffix appended. Useful for large-magnitude
// units such as bitrates. A unit below 1 is treated as 1; scaling applies
// to display only, never to storage.
func ScaledInt(unit int64, suffix string) Descriptor {
	if unit < 1 {
		unit = 1
	}
	return Descriptor{kind: KindScaledInt, storage: StorageInteger, matcher: MatchNumeric, unit: unit, suffix: suffix}
}

// ID returns the integer descriptor used as a table's row key. It behaves
// exactly like Integer but flags primary-key intent to the storage backend.
func ID() Descriptor {
	return Descriptor{kind: KindID, storage: StorageInteger, matcher: MatchNumeric, primaryKey: true}
}

// Float returns the floating-point descriptor. Display uses one digit
// after the decimal point.
func Float() Descriptor {
	return Descriptor{kind: KindFloat, storage: StorageReal, matcher: MatchNumeric}
}

// String returns the text descriptor, matched by substring.
func String() Descriptor {
	return Descriptor{kind: KindString, storage: StorageText, matcher: MatchSubstring}
}

// Boolean returns the boolean descriptor, stored as a 0/1 integer column
// and matched by equality.
func Boolean() Descriptor {
	return Descriptor{kind: KindBoolean, storage: StorageInteger, matcher: MatchBool}
}

// Kind returns the descriptor's variant.
func (d Descriptor) Kind() Kind { return d.kind }

// Storage returns the declared persistence representation.
func (d Descriptor) Storage() StorageKind { return d.storage }

// Matcher returns the matcher tag for this field type.
func (d Descriptor) Matcher() MatcherKind { return d.matcher }

// PrimaryKey reports whether the descriptor marks its column as the
// unique row identifier.
func (d Descriptor) PrimaryKey() bool { return d.primaryKey }

// Format renders a stored value as display text. The value may be nil or
// of an unexpected type; absent and zero-equivalent values render as the
// kind's canonical zero. Format never fails.
func (d Descriptor) Format(value any) string {
	switch d.kind {
	case KindInteger, KindID:
		return strconv.FormatInt(intOrZero(value), 10)
	case KindPaddedInt:
		return fmt.Sprintf("%0*d", d.digits, intOrZero(value))
	case KindScaledInt:
		return strconv.FormatInt(floorDiv(intOrZero(value), d.unit), 10) + d.suffix
	case KindFloat:
		return strconv.FormatFloat(floatOrZero(value), 'f', 1, 64)
	case KindString:
		return textOrEmpty(value)
	case KindBoolean:
		return strconv.FormatBool(truthy(value))
	default:
		return ""
	}
}

// Parse converts human-written text to a stored value. Unparseable text
// yields the canonical zero; Parse never fails. The integer-backed kinds
// share one decimal parse (padding and scaling are display transforms
// only), strings pass through unchanged, and booleans go through the
// human-text parser, which accepts forms such as yes/no and on/off.
func (d Descriptor) Parse(text string) any {
	switch d.kind {
	case KindInteger, KindPaddedInt, KindScaledInt, KindID:
		return parseInteger(text)
	case KindFloat:
		return parseFloat(text)
	case KindString:
		return text
	case KindBoolean:
		return strutil.ParseBool(text)
	default:
		return nil
	}
}

// Zero returns the kind's canonical default value: int64(0), float64(0),
// the empty string, or false.
func (d Descriptor) Zero() any {
	switch d.kind {
	case KindInteger, KindPaddedInt, KindScaledInt, KindID:
		return int64(0)
	case KindFloat:
		return float64(0)
	case KindString:
		return ""
	case KindBoolean:
		return false
	default:
		return nil
	}
}
