package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/iotempower/installcheck/internal/config"
)

var forceConfig bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage installcheck settings",
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default " + config.FileName + " into the local directory",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		local := localDir()
		path := filepath.Join(local, config.FileName)
		if _, err := os.Stat(path); err == nil && !forceConfig {
			return fmt.Errorf("%s already exists, use --force to overwrite", path)
		}

		if err := config.Default().Save(local); err != nil {
			return fmt.Errorf("save config: %w", err)
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&forceConfig, "force", false, "overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
