package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vmunix/vidcat/pkg/idhash"
)

var idCmd = &cobra.Command{
	Use:   "id <name>...",
	Short: "Print the catalog id derived from a name",
	Long: `Print the deterministic catalog id for each name, the same id
the scanner assigns to a directory of that name.

Examples:
  vidcat id "Big Buck Bunny (2008)"`,
	Args: cobra.MinimumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		for _, name := range args {
			fmt.Printf("%s  %s\n", idhash.Sum(name), name)
		}
	},
}

func init() {
	rootCmd.AddCommand(idCmd)
}
