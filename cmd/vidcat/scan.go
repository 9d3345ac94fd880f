package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/vidcat/internal/catalog"
)

type collectionSummaryJSON struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Type     string   `json:"type"`
	Movies   int      `json:"movies,omitempty"`
	Shows    int      `json:"shows,omitempty"`
	Episodes int      `json:"episodes,omitempty"`
	Genres   []string `json:"genres,omitempty"`
	Years    []int    `json:"years,omitempty"`
}

var scanCmd = &cobra.Command{
	Use:   "scan",
	Short: "Scan all configured collections and summarize them",
	Long: `Scan every collection in the config and print what was found.

Examples:
  vidcat scan
  vidcat scan --json
  vidcat scan --items`,
	Args: cobra.NoArgs,
	RunE: runScanCmd,
}

func init() {
	rootCmd.AddCommand(scanCmd)
	scanCmd.Flags().Bool("items", false, "List every item, not just totals")
}

func runScanCmd(cmd *cobra.Command, args []string) error {
	listItems, _ := cmd.Flags().GetBool("items")

	repo, _, err := buildCatalog(cmd.Context())
	if err != nil {
		return err
	}

	collections := repo.Collections()
	if jsonOutput {
		out := make([]collectionSummaryJSON, 0, len(collections))
		for _, c := range collections {
			d := c.Details()
			out = append(out, collectionSummaryJSON{
				ID:       c.ID,
				Name:     c.Name,
				Type:     string(c.Type),
				Movies:   d.MovieCount,
				Shows:    d.ShowCount,
				Episodes: d.EpisodeCount,
				Genres:   d.Genres,
				Years:    d.Years,
			})
		}
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	for _, c := range collections {
		d := c.Details()
		switch c.Type {
		case catalog.TypeMovies:
			fmt.Printf("%s (%s): %d movies\n", c.Name, c.ID, d.MovieCount)
		case catalog.TypeShows:
			fmt.Printf("%s (%s): %d shows, %d episodes\n", c.Name, c.ID, d.ShowCount, d.EpisodeCount)
		}
		if listItems {
			printItems(c)
		}
	}
	return nil
}

func printItems(c *catalog.Collection) {
	for _, item := range c.Items {
		switch v := item.(type) {
		case *catalog.Movie:
			fmt.Printf("  %s  %s\n", v.ID, v.Name)
		case *catalog.Show:
			fmt.Printf("  %s  %s\n", v.ID, v.Name)
			for _, season := range v.Seasons {
				fmt.Printf("    %s  %s\n", season.ID, season.Name)
				for _, ep := range season.Episodes {
					fmt.Printf("      %s  %s\n", ep.ID, ep.Name)
				}
			}
		case *catalog.Season, *catalog.Episode:
			// Never top-level.
		}
	}
}
