// List command queries records from a table with optional filtering.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracknest/tracknest/pkg/catalog"
)

var listCmd = &cobra.Command{
	Use:   "list <table> [field=pattern...]",
	Short: "List records with optional filters",
	Long: `List queries records from the specified table with optional
filters. Filters are field=pattern pairs, ANDed together, and matched by
each field's matching strategy: numeric fields accept points and ranges
(1959, 1955..1960, 1958.., ..320000), text fields match substrings
case-insensitively, and boolean fields accept yes/no forms.

Example:
  tracknest list items
  tracknest list items artist=coltrane
  tracknest list items year=1955..1960 comp=no
  tracknest list albums --json`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tableName := args[0]
		filter := parseFieldArgs(args[1:])

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "list:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		table, schema := tableByName(backend, tableName)

		records, err := table.Fetch(filter)
		if err != nil {
			if errors.Is(err, catalog.ErrInvalidFilter) {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "fetch records:", err)
			os.Exit(exitSysError)
		}

		printRecords(schema, records)
		return nil
	},
}
