// Delete command removes a record by ID from a table.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/tracknest/tracknest/pkg/catalog"
)

var deleteCmd = &cobra.Command{
	Use:   "delete <table> <id>",
	Short: "Remove a record by ID",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		tableName := args[0]
		id := parseRecordID(args[1])

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "delete:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		table, _ := tableByName(backend, tableName)

		if err := table.Delete(id); err != nil {
			if errors.Is(err, catalog.ErrNotFound) {
				fmt.Fprintf(os.Stderr, "record %d not found in table %q\n", id, tableName)
				os.Exit(exitUserError)
			}
			fmt.Fprintln(os.Stderr, "delete record:", err)
			os.Exit(exitSysError)
		}

		fmt.Printf("Deleted %s/%d\n", tableName, id)
		return nil
	},
}
