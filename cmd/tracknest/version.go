// Version command for the tracknest CLI.
package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tracknest/tracknest/pkg/tracknest"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the tracknest version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("tracknest", tracknest.Version)
	},
}
