// Get command retrieves a record by ID from a table.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracknest/tracknest/pkg/catalog"
)

var getCmd = &cobra.Command{
	Use:   "get <table> <id>",
	Short: "Get a record by ID",
	Long: `Get retrieves a record from the specified table by its row ID.

Example:
  tracknest get items 12
  tracknest get albums 3 --json`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tableName := args[0]
		id := parseRecordID(args[1])

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "get:", err)
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

		printRecord(schema, rec)
		return nil
	},
}
