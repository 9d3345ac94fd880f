package main

import (
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

var (
	configPath string
	jsonOutput bool
)

var rootCmd = &cobra.Command{
	Use:   "vidcat",
	Short: "CLI for the vidcat media catalog",
	Long: `vidcat - CLI for the vidcat media catalog

Scans movie and TV show directories into a typed catalog and answers
lookups, next-up and search queries against it.

Run 'vidcatd' to keep a catalog continuously refreshed.`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (default: discover)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output as JSON")

	rootCmd.Version = version
	rootCmd.SetVersionTemplate("vidcat {{.Version}}\n")
}
