// Fields command reports the field schemas and their type descriptors.
package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tracknest/tracknest/pkg/catalog"
)

var fieldsCmd = &cobra.Command{
	Use:   "fields [table]",
	Short: "Show the field schema for a table",
	Long: `Fields lists each field of a table with its type, storage
representation, and matching strategy. Without an argument, all tables
are shown.

Example:
  tracknest fields
  tracknest fields items`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tables := catalog.StandardTableNames
		if len(args) == 1 {
			if _, ok := catalog.SchemaFor(args[0]); !ok {
				fmt.Fprintf(os.Stderr, "unknown table %q (valid: %s)\n", args[0], validTableNamesStr)
				os.Exit(exitUserError)
			}
			tables = args[:1]
		}

		for i, name := range tables {
			if i > 0 {
				fmt.Println()
			}
			schema, _ := catalog.SchemaFor(name)
			printSchema(name, schema)
		}
		return nil
	},
}

// printSchema renders one table's fields with their descriptor
// attributes.
func printSchema(name string, schema catalog.Schema) {
	fmt.Printf("%s:\n", name)
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "  FIELD\tTYPE\tSTORAGE\tMATCHER")
	for _, f := range schema {
		fmt.Fprintf(w, "  %s\t%s\t%s\t%s\n",
			f.Name, f.Type.Kind(), f.Type.Storage(), f.Type.Matcher())
	}
	w.Flush()
}
