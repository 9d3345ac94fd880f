package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/vidcat/internal/search"
)

type searchHitJSON struct {
	ID    string  `json:"id"`
	Name  string  `json:"name,omitempty"`
	Kind  string  `json:"kind,omitempty"`
	Score float64 `json:"score,omitempty"`
}

var searchCmd = &cobra.Command{
	Use:   "search [flags] <term>",
	Short: "Search the catalog by name",
	Long: `Search all collections for items whose name contains the term.

With --fts the term goes through the full-text index instead: prefix
matching over names and metadata, ranked by similarity.

Examples:
  vidcat search casablanca
  vidcat search --fts "cas"`,
	Args: cobra.ExactArgs(1),
	RunE: runSearchCmd,
}

func init() {
	rootCmd.AddCommand(searchCmd)
	searchCmd.Flags().Bool("fts", false, "Use the full-text index")
	searchCmd.Flags().Int("limit", 50, "Maximum number of results (--fts only)")
}

func runSearchCmd(cmd *cobra.Command, args []string) error {
	useFTS, _ := cmd.Flags().GetBool("fts")
	limit, _ := cmd.Flags().GetInt("limit")
	term := args[0]

	repo, cfg, err := buildCatalog(cmd.Context())
	if err != nil {
		return err
	}

	var hits []searchHitJSON
	if useFTS {
		idx, err := search.Open(cfg.Search.IndexPath, newLogger(parseLogLevel(cfg.Server.LogLevel)))
		if err != nil {
			return err
		}
		defer idx.Close()

		snap := repo.Snapshot()
		if err := idx.Rebuild(cmd.Context(), snap); err != nil {
			return err
		}
		found, err := idx.Search(cmd.Context(), term, limit)
		if err != nil {
			return err
		}
		for _, h := range found {
			hits = append(hits, searchHitJSON{ID: h.ItemID, Name: h.Name, Kind: h.Kind, Score: h.Score})
		}
	} else {
		snap := repo.Snapshot()
		for _, id := range snap.Search(term) {
			hit := searchHitJSON{ID: id}
			if _, item, ok := snap.ItemByID(id); ok {
				hit.Name = item.ItemName()
			}
			hits = append(hits, hit)
		}
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(hits)
	}

	if len(hits) == 0 {
		fmt.Println("no matches")
		return nil
	}
	for _, h := range hits {
		if h.Kind != "" {
			fmt.Printf("%s  %-8s %s\n", h.ID, h.Kind, h.Name)
		} else {
			fmt.Printf("%s  %s\n", h.ID, h.Name)
		}
	}
	return nil
}
