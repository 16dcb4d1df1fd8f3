// Shared helpers for tracknest CLI commands.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/tracknest/tracknest/internal/sqlite"
	"github.com/tracknest/tracknest/pkg/catalog"
)

// validTableNamesStr is a comma-separated list of valid table names for
// error output.
var validTableNamesStr = strings.Join(catalog.StandardTableNames, ", ")

// attachBackend resolves the data directory, creates a SQLite backend,
// and attaches it. The caller must defer backend.Detach().
func attachBackend() (*sqlite.Backend, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := catalog.Config{
		Backend: catalog.BackendSQLite,
		DataDir: dataDir,
	}

	backend := sqlite.NewBackend()
	if err := backend.Attach(cfg); err != nil {
		return nil, fmt.Errorf("attach backend: %w", err)
	}

	return backend, nil
}

// tableByName resolves a table and its schema, exiting with a user error
// for unknown names.
func tableByName(backend *sqlite.Backend, tableName string) (catalog.Table, catalog.Schema) {
	table, err := backend.GetTable(tableName)
	if err != nil {
		if errors.Is(err, catalog.ErrTableNotFound) {
			fmt.Fprintf(os.Stderr, "unknown table %q (valid: %s)\n", tableName, validTableNamesStr)
			os.Exit(exitUserError)
		}
		fmt.Fprintln(os.Stderr, "get table:", err)
		os.Exit(exitSysError)
	}
	schema, _ := catalog.SchemaFor(tableName)
	return table, schema
}

// parseRecordID parses a CLI id argument, exiting with a user error when
// it is not a positive integer.
func parseRecordID(arg string) int64 {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		fmt.Fprintf(os.Stderr, "invalid id %q (expected a positive integer)\n", arg)
		os.Exit(exitUserError)
	}
	return id
}

// parseFieldArgs splits field=text arguments into a map, exiting with a
// user error on malformed pairs.
func parseFieldArgs(args []string) map[string]string {
	fields := make(map[string]string, len(args))
	for _, arg := range args {
		key, value, found := strings.Cut(arg, "=")
		if !found || key == "" {
			fmt.Fprintf(os.Stderr, "invalid argument %q (expected field=value)\n", arg)
			os.Exit(exitUserError)
		}
		fields[key] = value
	}
	return fields
}

// printRecords renders records as JSON when --json is set, otherwise as
// a table of display-formatted values in schema column order.
func printRecords(schema catalog.Schema, records []catalog.Record) {
	if flagJSON {
		out, err := json.MarshalIndent(records, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "marshal records:", err)
			os.Exit(exitSysError)
		}
		fmt.Println(string(out))
		return
	}

	if len(records) == 0 {
		fmt.Println("No records found.")
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	names := schema.Names()
	fmt.Fprintln(w, strings.ToUpper(strings.Join(names, "\t")))
	for _, rec := range records {
		cells := make([]string, len(names))
		for i, name := range names {
			// Field names come from the schema, so FormatField cannot
			// miss here.
			cells[i], _ = rec.FormatField(schema, name)
		}
		fmt.Fprintln(w, strings.Join(cells, "\t"))
	}
	w.Flush()
	fmt.Printf("Total: %d record(s)\n", len(records))
}

// printRecord renders a single record: JSON with --json, otherwise one
// formatted field per line in schema order.
func printRecord(schema catalog.Schema, rec catalog.Record) {
	if flagJSON {
		out, err := json.MarshalIndent(rec, "", "  ")
		if err != nil {
			fmt.Fprintln(os.Stderr, "marshal record:", err)
			os.Exit(exitSysError)
		}
		fmt.Println(string(out))
		return
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	for _, f := range schema {
		text, _ := rec.FormatField(schema, f.Name)
		fmt.Fprintf(w, "%s\t%s\n", f.Name, text)
	}
	w.Flush()
}
