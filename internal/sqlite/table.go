package sqlite

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/spf13/cast"

	"github.com/tracknest/tracknest/pkg/catalog"
	"github.com/tracknest/tracknest/pkg/fieldtype"
	"github.com/tracknest/tracknest/pkg/query"
)

// table implements catalog.Table for one schema. All SQL is generated
// from the schema: column lists from field order, column decoding from
// storage kinds, filter evaluation from matcher kinds.
type table struct {
	name    string
	schema  catalog.Schema
	backend *Backend
}

var _ catalog.Table = (*table)(nil)

// Get retrieves a record by row ID.
// Returns ErrInvalidID for non-positive IDs, ErrNotFound if missing.
func (t *table) Get(id int64) (catalog.Record, error) {
	if id <= 0 {
		return nil, catalog.ErrInvalidID
	}
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if !t.backend.attached {
		return nil, catalog.ErrDetached
	}

	q := fmt.Sprintf("SELECT %s FROM %s WHERE id = ?", t.columnList(), t.name)
	holders := t.scanHolders()
	if err := t.backend.db.QueryRow(q, id).Scan(holders...); err != nil {
		if err == sql.ErrNoRows {
			return nil, catalog.ErrNotFound
		}
		return nil, err
	}
	return t.recordFrom(holders), nil
}

// Set creates or updates a record. A zero id inserts a new row and
// returns its assigned ID; a positive id writes that row in place.
func (t *table) Set(id int64, rec catalog.Record) (int64, error) {
	if id < 0 {
		return 0, catalog.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.attached {
		return 0, catalog.ErrDetached
	}
	return t.setLocked(id, rec)
}

// setLocked writes one row. The caller must hold the backend write lock.
func (t *table) setLocked(id int64, rec catalog.Record) (int64, error) {
	var cols []string
	var args []any
	for _, f := range t.schema {
		if f.Type.PrimaryKey() {
			continue
		}
		cols = append(cols, f.Name)
		args = append(args, bindValue(f.Type, rec[f.Name]))
	}

	if id == 0 {
		q := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
			t.name, strings.Join(cols, ", "), placeholders(len(cols)))
		res, err := t.backend.db.Exec(q, args...)
		if err != nil {
			return 0, err
		}
		return res.LastInsertId()
	}

	q := fmt.Sprintf("INSERT OR REPLACE INTO %s (id, %s) VALUES (?, %s)",
		t.name, strings.Join(cols, ", "), placeholders(len(cols)))
	if _, err := t.backend.db.Exec(q, append([]any{id}, args...)...); err != nil {
		return 0, err
	}
	return id, nil
}

// Delete removes a record by row ID.
// Returns ErrInvalidID for non-positive IDs, ErrNotFound if missing.
func (t *table) Delete(id int64) error {
	if id <= 0 {
		return catalog.ErrInvalidID
	}
	t.backend.mu.Lock()
	defer t.backend.mu.Unlock()
	if !t.backend.attached {
		return catalog.ErrDetached
	}

	res, err := t.backend.db.Exec(fmt.Sprintf("DELETE FROM %s WHERE id = ?", t.name), id)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return catalog.ErrNotFound
	}
	return nil
}

// Fetch returns records matching the filter, ordered by row ID. Each
// filter entry is a user-written pattern evaluated by the matcher
// registered for the field's matcher kind; entries are ANDed. An empty
// filter returns everything.
func (t *table) Fetch(filter map[string]string) ([]catalog.Record, error) {
	t.backend.mu.RLock()
	defer t.backend.mu.RUnlock()
	if !t.backend.attached {
		return nil, catalog.ErrDetached
	}

	type predicate struct {
		field   string
		matcher query.Matcher
		pattern string
	}
	preds := make([]predicate, 0, len(filter))
	for field, pattern := range filter {
		d, ok := t.schema.Descriptor(field)
		if !ok {
			return nil, fmt.Errorf("%w: %s", catalog.ErrInvalidFilter, field)
		}
		m, ok := t.backend.matchers.For(d.Matcher())
		if !ok {
			return nil, fmt.Errorf("%w: no matcher for %s", catalog.ErrInvalidFilter, field)
		}
		preds = append(preds, predicate{field: field, matcher: m, pattern: pattern})
	}

	all, err := t.loadAll()
	if err != nil {
		return nil, err
	}
	records := make([]catalog.Record, 0, len(all))
	for _, rec := range all {
		matched := true
		for _, p := range preds {
			if !p.matcher.Match(rec[p.field], p.pattern) {
				matched = false
				break
			}
		}
		if matched {
			records = append(records, rec)
		}
	}
	return records, nil
}

// loadAll reads every row in ID order. The caller must hold the backend
// lock.
func (t *table) loadAll() ([]catalog.Record, error) {
	q := fmt.Sprintf("SELECT %s FROM %s ORDER BY id", t.columnList(), t.name)
	rows, err := t.backend.db.Query(q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	records := make([]catalog.Record, 0)
	for rows.Next() {
		holders := t.scanHolders()
		if err := rows.Scan(holders...); err != nil {
			return nil, err
		}
		records = append(records, t.recordFrom(holders))
	}
	return records, rows.Err()
}

// columnList returns the schema's fields as a SELECT column list.
func (t *table) columnList() string {
	return strings.Join(t.schema.Names(), ", ")
}

// scanHolders builds one scan destination per field, typed by the
// field's storage kind. NULL-capable so absent values decode to zeros.
func (t *table) scanHolders() []any {
	holders := make([]any, len(t.schema))
	for i, f := range t.schema {
		switch f.Type.Storage() {
		case fieldtype.StorageInteger:
			holders[i] = new(sql.NullInt64)
		case fieldtype.StorageReal:
			holders[i] = new(sql.NullFloat64)
		default:
			holders[i] = new(sql.NullString)
		}
	}
	return holders
}

// recordFrom converts scanned column holders back into a Record with the
// concrete value types the descriptors define. SQL NULL becomes the
// field's canonical zero; boolean columns decode their 0/1 encoding.
func (t *table) recordFrom(holders []any) catalog.Record {
	rec := make(catalog.Record, len(t.schema))
	for i, f := range t.schema {
		switch h := holders[i].(type) {
		case *sql.NullInt64:
			if !h.Valid {
				rec[f.Name] = f.Type.Zero()
			} else if f.Type.Kind() == fieldtype.KindBoolean {
				rec[f.Name] = h.Int64 != 0
			} else {
				rec[f.Name] = h.Int64
			}
		case *sql.NullFloat64:
			if !h.Valid {
				rec[f.Name] = f.Type.Zero()
			} else {
				rec[f.Name] = h.Float64
			}
		case *sql.NullString:
			if !h.Valid {
				rec[f.Name] = f.Type.Zero()
			} else {
				rec[f.Name] = h.String
			}
		}
	}
	return rec
}

// bindValue converts a record value to the driver type for the field's
// column. Values of unexpected type collapse toward the canonical zero
// rather than failing the write.
func bindValue(d fieldtype.Descriptor, v any) any {
	if d.Kind() == fieldtype.KindBoolean {
		if cast.ToBool(v) {
			return int64(1)
		}
		return int64(0)
	}
	switch d.Storage() {
	case fieldtype.StorageInteger:
		return cast.ToInt64(v)
	case fieldtype.StorageReal:
		return cast.ToFloat64(v)
	default:
		return cast.ToString(v)
	}
}

// placeholders returns n comma-separated SQL placeholders.
func placeholders(n int) string {
	if n == 0 {
		return ""
	}
	return strings.Repeat("?, ", n-1) + "?"
}
