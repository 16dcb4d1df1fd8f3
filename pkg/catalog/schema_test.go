package catalog

import (
	"testing"

	"github.com/tracknest/tracknest/pkg/fieldtype"
)

func TestSchemaDescriptor(t *testing.T) {
	d, ok := ItemFields.Descriptor("track")
	if !ok {
		t.Fatal("ItemFields missing track field")
	}
	if d.Kind() != fieldtype.KindPaddedInt {
		t.Errorf("track kind = %v, want padded_int", d.Kind())
	}
	if _, ok := ItemFields.Descriptor("nope"); ok {
		t.Error("Descriptor(\"nope\") found a field")
	}
}

func TestSchemaPrimary(t *testing.T) {
	for _, s := range []Schema{ItemFields, AlbumFields} {
		name, ok := s.Primary()
		if !ok || name != "id" {
			t.Errorf("Primary() = (%q, %v), want (\"id\", true)", name, ok)
		}
	}
	noKey := Schema{{"title", fieldtype.String()}}
	if _, ok := noKey.Primary(); ok {
		t.Error("Primary() found a key in a schema without one")
	}
}

func TestSchemaNamesOrder(t *testing.T) {
	names := AlbumFields.Names()
	want := []string{"id", "album", "albumartist", "year", "disctotal", "comp"}
	if len(names) != len(want) {
		t.Fatalf("Names() has %d entries, want %d", len(names), len(want))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("Names()[%d] = %q, want %q", i, names[i], want[i])
		}
	}
}

func TestSchemaFor(t *testing.T) {
	for _, name := range StandardTableNames {
		if _, ok := SchemaFor(name); !ok {
			t.Errorf("SchemaFor(%q) not found", name)
		}
	}
	if _, ok := SchemaFor("playlists"); ok {
		t.Error("SchemaFor(\"playlists\") found a schema")
	}
}

// Storage kinds drive column generation, so pin the ones the item schema
// declares.
func TestItemFieldStorageKinds(t *testing.T) {
	tests := []struct {
		field string
		want  fieldtype.StorageKind
	}{
		{"id", fieldtype.StorageInteger},
		{"title", fieldtype.StorageText},
		{"length", fieldtype.StorageReal},
		{"bitrate", fieldtype.StorageInteger},
		{"comp", fieldtype.StorageInteger},
	}
	for _, tt := range tests {
		d, ok := ItemFields.Descriptor(tt.field)
		if !ok {
			t.Fatalf("ItemFields missing %s", tt.field)
		}
		if d.Storage() != tt.want {
			t.Errorf("%s storage = %v, want %v", tt.field, d.Storage(), tt.want)
		}
	}
}
