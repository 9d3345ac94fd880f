package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var nextUpCmd = &cobra.Command{
	Use:   "next-up <watched-episode-id>...",
	Short: "Suggest the next episode per show given watched episodes",
	Long: `Given the ids of watched episodes, suggest for each show the
episode that follows the most recently watched one.

Examples:
  vidcat next-up 2mPPIyf8dwZFh07z01jV 9kQQJzg3exAGi18a12wW`,
	Args: cobra.MinimumNArgs(1),
	RunE: runNextUpCmd,
}

func init() {
	rootCmd.AddCommand(nextUpCmd)
}

func runNextUpCmd(cmd *cobra.Command, args []string) error {
	repo, _, err := buildCatalog(cmd.Context())
	if err != nil {
		return err
	}

	snap := repo.Snapshot()
	next := snap.NextUp(args)

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(next)
	}

	if len(next) == 0 {
		fmt.Println("nothing up next")
		return nil
	}
	for _, id := range next {
		if _, show, _, ep, ok := snap.EpisodeByID(id); ok {
			fmt.Printf("%s  %s %s\n", id, show.Name, ep.Name)
		} else {
			fmt.Println(id)
		}
	}
	return nil
}
