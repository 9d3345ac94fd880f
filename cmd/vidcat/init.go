package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmunix/vidcat/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter config file",
	Long: `Write the annotated default config to path (default ./config.toml).
Edit the collection directories afterwards, then run 'vidcat scan' to
check them.

Examples:
  vidcat init
  vidcat init --force
  vidcat init ~/.config/vidcat/config.toml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runInitCmd,
}

func init() {
	rootCmd.AddCommand(initCmd)
	initCmd.Flags().Bool("force", false, "Overwrite an existing config file")
}

func runInitCmd(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	path := "config.toml"
	if len(args) > 0 {
		path = args[0]
	}

	if err := writeInitConfig(path, force); err != nil {
		return err
	}
	fmt.Printf("wrote %s\n", path)
	return nil
}

// writeInitConfig writes the default config to path, refusing to
// clobber an existing file unless force is set.
func writeInitConfig(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("%s already exists, use --force to overwrite", path)
	}
	return config.WriteDefault(path)
}
