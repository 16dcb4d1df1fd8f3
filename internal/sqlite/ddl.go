package sqlite

import (
	"fmt"
	"strings"

	"github.com/tracknest/tracknest/pkg/catalog"
	"github.com/tracknest/tracknest/pkg/fieldtype"
)

// createMeta holds per-library facts: the library UUID and its creation
// time.
const createMeta = `CREATE TABLE IF NOT EXISTS meta (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL
);`

// schemaDDL generates the CREATE TABLE statements for every standard
// table plus the meta table. Statements use IF NOT EXISTS so attaching
// to an existing library is a no-op.
func schemaDDL() []string {
	stmts := make([]string, 0, len(catalog.StandardTableNames)+1)
	for _, name := range catalog.StandardTableNames {
		schema, _ := catalog.SchemaFor(name)
		stmts = append(stmts, createTableDDL(name, schema))
	}
	stmts = append(stmts, createMeta)
	return stmts
}

// createTableDDL renders one CREATE TABLE statement from a schema. Each
// column's type is the field descriptor's storage kind; the primary-key
// descriptor becomes SQLite's rowid alias so inserted rows get assigned
// IDs.
func createTableDDL(name string, schema catalog.Schema) string {
	cols := make([]string, 0, len(schema))
	for _, f := range schema {
		cols = append(cols, fmt.Sprintf("    %s %s", f.Name, columnType(f.Type)))
	}
	return fmt.Sprintf("CREATE TABLE IF NOT EXISTS %s (\n%s\n);", name, strings.Join(cols, ",\n"))
}

// columnType maps a descriptor to its SQLite column type.
func columnType(d fieldtype.Descriptor) string {
	if d.PrimaryKey() {
		return "INTEGER PRIMARY KEY"
	}
	switch d.Storage() {
	case fieldtype.StorageInteger:
		return "INTEGER"
	case fieldtype.StorageReal:
		return "REAL"
	case fieldtype.StorageText:
		return "TEXT"
	default:
		return "TEXT"
	}
}
