// Set command updates fields of an existing record.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracknest/tracknest/pkg/catalog"
)

var setCmd = &cobra.Command{
	Use:   "set <table> <id> <field=value...>",
	Short: "Update fields of a record",
	Long: `Set parses each field=value pair through the field's type and
writes the record back.

Example:
  tracknest set items 12 track=4 comp=yes
  tracknest set albums 3 year=1959`,
	Args: cobra.MinimumNArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		tableName := args[0]
		id := parseRecordID(args[1])
		fields := parseFieldArgs(args[2:])

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "set:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		table, schema := tableByName(backend, tableName)

		rec, err := table.Get(id)
		if err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "record %d not found in table %q\n", id, tableName)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "get record:", err)
			os.Exit(exitSysError)
		}

		for name, text := range fields {
			if err := rec.SetField(schema, name, text); err != nil {
				if errors.Is(err, catalog.ErrFieldUnknown) {
					fmt.Fprintf(os.Stderr, "unknown field %q in table %q\n", name, tableName)
					os.Exit(exitUserError)
				}
				fmt.Fprintln(os.Stderr, "set field:", err)
				os.Exit(exitSysError)
			}
		}

		if _, err := table.Set(id, rec); err != nil {
			fmt.Fprintln(os.Stderr, "set record:", err)
			os.Exit(exitSysError)
		}

		printRecord(schema, rec)
		return nil
	},
}
