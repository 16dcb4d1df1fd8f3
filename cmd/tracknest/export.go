// Export and import commands move the catalog through JSONL files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var exportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Export the catalog to JSONL files",
	Long: `Export writes every table to <dir> as one JSONL file per table
(items.jsonl, albums.jsonl), one JSON object per record.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		if err := backend.ExportJSONL(dir); err != nil {
			fmt.Fprintln(os.Stderr, "export:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("Exported catalog to", dir)
		return nil
	},
}

var importCmd = &cobra.Command{
	Use:   "import <dir>",
	Short: "Import JSONL files into the catalog",
	Long: `Import loads items.jsonl and albums.jsonl from <dir>. Records
carrying an id overwrite that row; records without one insert fresh
rows. Malformed lines are skipped.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := args[0]

		backend, err := attachBackend()
		if err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}
		defer backend.Detach()

		if err := backend.ImportJSONL(dir); err != nil {
			fmt.Fprintln(os.Stderr, "import:", err)
			os.Exit(exitSysError)
		}

		fmt.Println("Imported catalog from", dir)
		return nil
	},
}
