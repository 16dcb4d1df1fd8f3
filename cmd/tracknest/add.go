// Add command inserts a new record built from field=text arguments.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracknest/tracknest/pkg/catalog"
)

var addCmd = &cobra.Command{
	Use:   "add <table> [field=value...]",
	Short: "Add a record to a table",
	Long: `Add inserts a new record. Values are given as field=value pairs
and parsed by each field's type; unparseable values fall back to the
field's zero rather than failing.

Example:
  tracknest add items title="Blue in Green" artist="Miles Davis" track=3
  tracknest add albums album="Kind of Blue" albumartist="Miles Davis" year=1959`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tableName := args[0]
		fields := parseFieldArgs(args[1:])

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "add:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		table, schema := tableByName(backend, tableName)

		rec := catalog.NewRecord(schema)
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

		id, err := table.Set(0, rec)
		if err != nil {
			fmt.Fprintln(os.Stderr, "add record:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Added %s/%d\n", tableName, id)
		return nil
	},
}
