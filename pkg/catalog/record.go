package catalog

import "github.com/spf13/cast"

// Record holds one row's values keyed by field name. Values are the
// concrete types the field descriptors produce: int64, float64, string,
// or bool; a missing key reads as the field's canonical zero.
type Record map[string]any

// NewRecord returns a record with every schema field set to its
// canonical zero.
func NewRecord(s Schema) Record {
	r := make(Record, len(s))
	for _, f := range s {
		r[f.Name] = f.Type.Zero()
	}
	return r
}

// ID returns the record's row identifier, or 0 when unset.
func (r Record) ID() int64 {
	return cast.ToInt64(r["id"])
}

// FormatField renders the named field for display using its descriptor.
// Returns ErrFieldUnknown if the schema has no such field.
func (r Record) FormatField(s Schema, name string) (string, error) {
	d, ok := s.Descriptor(name)
	if !ok {
		return "", ErrFieldUnknown
	}
	return d.Format(r[name]), nil
}

// SetField parses user-written text through the field's descriptor and
// stores the result. Unparseable text stores the canonical zero; the
// only error condition is a field the schema does not define.
func (r Record) SetField(s Schema, name, text string) error {
	d, ok := s.Descriptor(name)
	if !ok {
		return ErrFieldUnknown
	}
	r[name] = d.Parse(text)
	return nil
}
