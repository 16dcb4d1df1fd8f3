package catalog

import "github.com/tracknest/tracknest/pkg/fieldtype"

// Field pairs a column name with its type descriptor.
type Field struct {
	Name string
	Type fieldtype.Descriptor
}

// Schema is the ordered field list for one record table. Order is the
// column order used by storage and display.
type Schema []Field

// Descriptor returns the descriptor for a named field.
func (s Schema) Descriptor(name string) (fieldtype.Descriptor, bool) {
	for _, f := range s {
		if f.Name == name {
			return f.Type, true
		}
	}
	return fieldtype.Descriptor{}, false
}

// Names returns the field names in schema order.
func (s Schema) Names() []string {
	names := make([]string, len(s))
	for i, f := range s {
		names[i] = f.Name
	}
	return names
}

// Primary returns the name of the row-identifier field, if the schema
// declares one.
func (s Schema) Primary() (string, bool) {
	for _, f := range s {
		if f.Type.PrimaryKey() {
			return f.Name, true
		}
	}
	return "", false
}

// ItemFields describes one track in the catalog. Track and disc numbers
// display zero-padded; bitrate and sample rate display scaled to their
// customary units; length is seconds.
var ItemFields = Schema{
	{"id", fieldtype.ID()},
	{"title", fieldtype.String()},
	{"artist", fieldtype.String()},
	{"album", fieldtype.String()},
	{"genre", fieldtype.String()},
	{"year", fieldtype.Integer()},
	{"track", fieldtype.PaddedInt(2)},
	{"tracktotal", fieldtype.PaddedInt(2)},
	{"disc", fieldtype.PaddedInt(2)},
	{"disctotal", fieldtype.PaddedInt(2)},
	{"length", fieldtype.Float()},
	{"bitrate", fieldtype.ScaledInt(1000, "kbps")},
	{"samplerate", fieldtype.ScaledInt(1000, "kHz")},
	{"comp", fieldtype.Boolean()},
}

// AlbumFields describes one album in the catalog.
var AlbumFields = Schema{
	{"id", fieldtype.ID()},
	{"album", fieldtype.String()},
	{"albumartist", fieldtype.String()},
	{"year", fieldtype.Integer()},
	{"disctotal", fieldtype.PaddedInt(2)},
	{"comp", fieldtype.Boolean()},
}

// Standard table names for Store.GetTable.
const (
	TableItems  = "items"
	TableAlbums = "albums"
)

// StandardTableNames lists all standard table names for enumeration.
var StandardTableNames = []string{
	TableItems,
	TableAlbums,
}

// SchemaFor returns the schema for a standard table name.
func SchemaFor(table string) (Schema, bool) {
	switch table {
	case TableItems:
		return ItemFields, true
	case TableAlbums:
		return AlbumFields, true
	default:
		return nil, false
	}
}
