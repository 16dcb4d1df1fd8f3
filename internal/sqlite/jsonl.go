// JSONL export and import for catalog tables, one file per table with
// atomic temp-file/fsync/rename writes.
package sqlite

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cast"

	"github.com/tracknest/tracknest/pkg/catalog"
	"github.com/tracknest/tracknest/pkg/fieldtype"
)

// ExportJSONL writes every standard table to dir as <table>.jsonl, one
// JSON object per record, in row-ID order.
func (b *Backend) ExportJSONL(dir string) error {
	b.mu.RLock()
	defer b.mu.RUnlock()
	if !b.attached {
		return catalog.ErrDetached
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return err
	}

	for _, name := range catalog.StandardTableNames {
		t := b.tables[name]
		records, err := t.loadAll()
		if err != nil {
			return fmt.Errorf("export %s: %w", name, err)
		}
		lines := make([]json.RawMessage, 0, len(records))
		for _, rec := range records {
			raw, err := json.Marshal(rec)
			if err != nil {
				return fmt.Errorf("export %s: %w", name, err)
			}
			lines = append(lines, raw)
		}
		if err := writeJSONL(filepath.Join(dir, name+".jsonl"), lines); err != nil {
			return fmt.Errorf("export %s: %w", name, err)
		}
	}
	return nil
}

// ImportJSONL loads <table>.jsonl files from dir into the catalog.
// Records carrying an id write that row in place; records without one
// insert fresh rows. Missing files and malformed lines are skipped.
func (b *Backend) ImportJSONL(dir string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.attached {
		return catalog.ErrDetached
	}

	for _, name := range catalog.StandardTableNames {
		path := filepath.Join(dir, name+".jsonl")
		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}
		raws, err := readJSONL(path)
		if err != nil {
			return fmt.Errorf("import %s: %w", name, err)
		}

		t := b.tables[name]
		for _, raw := range raws {
			var decoded map[string]any
			if err := json.Unmarshal(raw, &decoded); err != nil {
				continue
			}
			rec := recordFromJSON(t.schema, decoded)
			id := cast.ToInt64(decoded["id"])
			if id < 0 {
				id = 0
			}
			if _, err := t.setLocked(id, rec); err != nil {
				return fmt.Errorf("import %s: %w", name, err)
			}
		}
	}
	return nil
}

// recordFromJSON rebuilds a Record from a decoded JSON object, coercing
// each field to its descriptor's concrete type. JSON decodes numbers as
// float64, so integer-backed fields convert back; unknown keys are
// dropped and missing keys become canonical zeros.
func recordFromJSON(schema catalog.Schema, decoded map[string]any) catalog.Record {
	rec := catalog.NewRecord(schema)
	for _, f := range schema {
		v, ok := decoded[f.Name]
		if !ok {
			continue
		}
		switch f.Type.Kind() {
		case fieldtype.KindBoolean:
			rec[f.Name] = cast.ToBool(v)
		case fieldtype.KindFloat:
			rec[f.Name] = cast.ToFloat64(v)
		case fieldtype.KindString:
			rec[f.Name] = cast.ToString(v)
		default:
			rec[f.Name] = cast.ToInt64(v)
		}
	}
	return rec
}

// readJSONL reads a JSONL file and returns each non-empty, parseable
// line. Malformed lines are skipped so a damaged export still imports
// what it can.
func readJSONL(path string) ([]json.RawMessage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	var records []json.RawMessage
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 || !json.Valid(line) {
			continue
		}
		cp := make([]byte, len(line))
		copy(cp, line)
		records = append(records, json.RawMessage(cp))
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("scanning %s: %w", path, err)
	}
	return records, nil
}

// writeJSONL atomically writes records to a JSONL file using the
// temp-file, fsync, rename pattern.
func writeJSONL(path string, records []json.RawMessage) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".jsonl-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()

	w := bufio.NewWriter(tmp)
	for _, rec := range records {
		if _, err := w.Write(rec); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing record: %w", err)
		}
		if err := w.WriteByte('\n'); err != nil {
			tmp.Close()
			os.Remove(tmpName)
			return fmt.Errorf("writing newline: %w", err)
		}
	}
	if err := w.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("flushing buffer: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
