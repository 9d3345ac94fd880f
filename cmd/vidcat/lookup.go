package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/vidcat/internal/catalog"
)

type lookupJSON struct {
	Collection string `json:"collection"`
	Kind       string `json:"kind"`
	ID         string `json:"id"`
	Name       string `json:"name"`
	Path       string `json:"path,omitempty"`
	FileName   string `json:"file_name,omitempty"`
	Show       string `json:"show,omitempty"`
	Season     int    `json:"season,omitempty"`
	Episode    int    `json:"episode,omitempty"`
}

var lookupCmd = &cobra.Command{
	Use:   "lookup <item-id>",
	Short: "Resolve an item id at any level of the catalog",
	Long: `Resolve an item id to the movie, show, season or episode it
identifies, including its ancestry for seasons and episodes.

Examples:
  vidcat lookup 2mPPIyf8dwZFh07z01jV
  vidcat lookup --json 2mPPIyf8dwZFh07z01jV`,
	Args: cobra.ExactArgs(1),
	RunE: runLookupCmd,
}

func init() {
	rootCmd.AddCommand(lookupCmd)
}

func runLookupCmd(cmd *cobra.Command, args []string) error {
	repo, _, err := buildCatalog(cmd.Context())
	if err != nil {
		return err
	}

	snap := repo.Snapshot()
	c, item, ok := snap.ItemByID(args[0])
	if !ok {
		return fmt.Errorf("lookup %q: %w", args[0], catalog.ErrNotFound)
	}

	out := lookupJSON{Collection: c.Name, ID: item.ItemID(), Name: item.ItemName()}
	switch v := item.(type) {
	case *catalog.Movie:
		out.Kind = "movie"
		out.Path = v.Path
		out.FileName = v.FileName
	case *catalog.Show:
		out.Kind = "show"
		out.Path = v.Path
	case *catalog.Season:
		out.Kind = "season"
		out.Season = v.SeasonNo
		if _, show, _, ok := snap.SeasonByID(v.ID); ok {
			out.Show = show.Name
			out.Path = show.Path
		}
	case *catalog.Episode:
		out.Kind = "episode"
		out.Season = v.SeasonNo
		out.Episode = v.EpisodeNo
		out.FileName = v.FileName
		if _, show, _, _, ok := snap.EpisodeByID(v.ID); ok {
			out.Show = show.Name
			out.Path = show.Path
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	}

	fmt.Printf("%s: %s\n", out.Kind, out.Name)
	fmt.Printf("  collection: %s\n", out.Collection)
	if out.Show != "" {
		fmt.Printf("  show:       %s\n", out.Show)
	}
	if out.Kind == "season" || out.Kind == "episode" {
		fmt.Printf("  season:     %d\n", out.Season)
	}
	if out.Kind == "episode" {
		fmt.Printf("  episode:    %d\n", out.Episode)
	}
	if out.Path != "" {
		fmt.Printf("  path:       %s\n", out.Path)
	}
	if out.FileName != "" {
		fmt.Printf("  file:       %s\n", out.FileName)
	}
	return nil
}
