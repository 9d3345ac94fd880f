package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/vidcat/pkg/epname"
)

// parseResultJSON is the JSON-friendly representation of a parse.
type parseResultJSON struct {
	FileName string `json:"file_name"`
	Matched  bool   `json:"matched"`
	Season   int    `json:"season,omitempty"`
	Episode  int    `json:"episode,omitempty"`
	Double   bool   `json:"double,omitempty"`
	Name     string `json:"name,omitempty"`
}

var parseCmd = &cobra.Command{
	Use:   "parse [flags] <filename>...",
	Short: "Parse episode filenames (local, no catalog needed)",
	Long: `Parse episode filenames to extract season and episode numbers.

Examples:
  vidcat parse "show.s01e04.mkv"
  vidcat parse --season 3 "show.308.mkv"
  vidcat parse --json "show.2015.03.08.mkv"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runParseCmd,
}

func init() {
	rootCmd.AddCommand(parseCmd)
	parseCmd.Flags().Int("season", epname.HintNone, "Season hint from the containing folder")
	// Note: --json is inherited from root as persistent flag
}

func runParseCmd(cmd *cobra.Command, args []string) error {
	hint, _ := cmd.Flags().GetInt("season")

	results := make([]parseResultJSON, 0, len(args))
	for _, name := range args {
		r := parseResultJSON{FileName: name}
		if info, ok := epname.Parse(name, hint); ok {
			r.Matched = true
			r.Season = info.Season
			r.Episode = info.Episode
			r.Double = info.Double
			r.Name = info.Name
		}
		results = append(results, r)
	}

	if jsonOutput {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(results)
	}

	for _, r := range results {
		if !r.Matched {
			fmt.Printf("%s: no episode pattern\n", r.FileName)
			continue
		}
		double := ""
		if r.Double {
			double = " (double)"
		}
		fmt.Printf("%s: season %d episode %d%s -> %q\n",
			r.FileName, r.Season, r.Episode, double, r.Name)
	}
	return nil
}
