package sqlite

import (
	"errors"
	"testing"

	"github.com/tracknest/tracknest/pkg/catalog"
)

// addItem inserts an item built from field=text pairs and returns its ID.
func addItem(t *testing.T, tbl catalog.Table, fields map[string]string) int64 {
	t.Helper()
	rec := catalog.NewRecord(catalog.ItemFields)
	for name, text := range fields {
		if err := rec.SetField(catalog.ItemFields, name, text); err != nil {
			t.Fatalf("SetField(%s): %v", name, err)
		}
	}
	id, err := tbl.Set(0, rec)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}
	return id
}

func TestTableCRUD(t *testing.T) {
	b, _ := newTestBackend(t)
	defer b.Detach()
	tbl, err := b.GetTable(catalog.TableItems)
	if err != nil {
		t.Fatalf("GetTable: %v", err)
	}

	id := addItem(t, tbl, map[string]string{
		"title":   "So What",
		"artist":  "Miles Davis",
		"track":   "1",
		"bitrate": "192000",
		"length":  "545.3",
		"comp":    "no",
	})
	if id <= 0 {
		t.Fatalf("inserted id = %d, want positive", id)
	}

	rec, err := tbl.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if rec["title"] != "So What" {
		t.Errorf("title = %#v", rec["title"])
	}
	if rec["track"] != int64(1) {
		t.Errorf("track = %#v, want int64(1)", rec["track"])
	}
	if rec["length"] != 545.3 {
		t.Errorf("length = %#v, want 545.3", rec["length"])
	}
	if rec["comp"] != false {
		t.Errorf("comp = %#v, want false", rec["comp"])
	}

	// Update in place.
	rec["title"] = "So What (Remastered)"
	rec["comp"] = true
	if _, err := tbl.Set(id, rec); err != nil {
		t.Fatalf("update Set: %v", err)
	}
	rec, err = tbl.Get(id)
	if err != nil {
		t.Fatalf("Get after update: %v", err)
	}
	if rec["title"] != "So What (Remastered)" {
		t.Errorf("updated title = %#v", rec["title"])
	}
	if rec["comp"] != true {
		t.Errorf("updated comp = %#v, want true", rec["comp"])
	}

	if err := tbl.Delete(id); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := tbl.Get(id); err != catalog.ErrNotFound {
		t.Errorf("Get after delete: %v, want ErrNotFound", err)
	}
	if err := tbl.Delete(id); err != catalog.ErrNotFound {
		t.Errorf("second Delete: %v, want ErrNotFound", err)
	}
}

func TestTableInvalidIDs(t *testing.T) {
	b, _ := newTestBackend(t)
	defer b.Detach()
	tbl, _ := b.GetTable(catalog.TableItems)

	if _, err := tbl.Get(0); err != catalog.ErrInvalidID {
		t.Errorf("Get(0): %v, want ErrInvalidID", err)
	}
	if _, err := tbl.Get(-1); err != catalog.ErrInvalidID {
		t.Errorf("Get(-1): %v, want ErrInvalidID", err)
	}
	if err := tbl.Delete(0); err != catalog.ErrInvalidID {
		t.Errorf("Delete(0): %v, want ErrInvalidID", err)
	}
	if _, err := tbl.Set(-1, catalog.Record{}); err != catalog.ErrInvalidID {
		t.Errorf("Set(-1): %v, want ErrInvalidID", err)
	}
}

func TestFetchFilters(t *testing.T) {
	b, _ := newTestBackend(t)
	defer b.Detach()
	tbl, _ := b.GetTable(catalog.TableItems)

	addItem(t, tbl, map[string]string{
		"title": "Blue in Green", "artist": "Miles Davis", "year": "1959",
		"bitrate": "320000", "comp": "no",
	})
	addItem(t, tbl, map[string]string{
		"title": "Naima", "artist": "John Coltrane", "year": "1959",
		"bitrate": "192000", "comp": "no",
	})
	addItem(t, tbl, map[string]string{
		"title": "Blue Train", "artist": "John Coltrane", "year": "1957",
		"bitrate": "128000", "comp": "yes",
	})

	tests := []struct {
		name       string
		filter     map[string]string
		wantTitles []string
	}{
		{"empty filter matches all", nil,
			[]string{"Blue in Green", "Naima", "Blue Train"}},
		{"substring on title", map[string]string{"title": "blue"},
			[]string{"Blue in Green", "Blue Train"}},
		{"substring on artist", map[string]string{"artist": "coltrane"},
			[]string{"Naima", "Blue Train"}},
		{"numeric point", map[string]string{"year": "1959"},
			[]string{"Blue in Green", "Naima"}},
		{"numeric range", map[string]string{"bitrate": "150000..400000"},
			[]string{"Blue in Green", "Naima"}},
		{"open range", map[string]string{"year": "1958.."},
			[]string{"Blue in Green", "Naima"}},
		{"boolean", map[string]string{"comp": "yes"},
			[]string{"Blue Train"}},
		{"conjunction", map[string]string{"artist": "coltrane", "year": "..1958"},
			[]string{"Blue Train"}},
		{"no match", map[string]string{"title": "zzz"}, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := tbl.Fetch(tt.filter)
			if err != nil {
				t.Fatalf("Fetch: %v", err)
			}
			var titles []string
			for _, rec := range records {
				titles = append(titles, rec["title"].(string))
			}
			if len(titles) != len(tt.wantTitles) {
				t.Fatalf("Fetch returned %v, want %v", titles, tt.wantTitles)
			}
			for i := range tt.wantTitles {
				if titles[i] != tt.wantTitles[i] {
					t.Errorf("Fetch[%d] = %q, want %q", i, titles[i], tt.wantTitles[i])
				}
			}
		})
	}
}

func TestFetchInvalidFilterField(t *testing.T) {
	b, _ := newTestBackend(t)
	defer b.Detach()
	tbl, _ := b.GetTable(catalog.TableItems)

	_, err := tbl.Fetch(map[string]string{"mood": "blue"})
	if !errors.Is(err, catalog.ErrInvalidFilter) {
		t.Errorf("Fetch with unknown field: %v, want ErrInvalidFilter", err)
	}
}

func TestAlbumsTable(t *testing.T) {
	b, _ := newTestBackend(t)
	defer b.Detach()
	tbl, err := b.GetTable(catalog.TableAlbums)
	if err != nil {
		t.Fatalf("GetTable: %v", err)
	}

	rec := catalog.NewRecord(catalog.AlbumFields)
	rec["album"] = "Kind of Blue"
	rec["albumartist"] = "Miles Davis"
	rec["year"] = int64(1959)
	id, err := tbl.Set(0, rec)
	if err != nil {
		t.Fatalf("Set: %v", err)
	}

	got, err := tbl.Get(id)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got["album"] != "Kind of Blue" || got["year"] != int64(1959) {
		t.Errorf("album record = %#v", got)
	}
}
