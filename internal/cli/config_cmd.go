package cli

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Priya28092000/safemocker"
)

// configCmd is the parent "config" namespace command. It has no action of
// its own -- it groups the show subcommand.
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Configuration management commands",
	Long:  "Inspect the resolved safemocker client configuration.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return cmd.Help()
	},
}

// configShowCmd implements "safemocker config show". It resolves the
// client configuration the same way NewClient would -- defaults,
// optionally merged with a safemocker.toml -- and prints it as JSON.
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the resolved client configuration",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, path, err := resolveConfig()
		if err != nil {
			return err
		}
		if path != "" {
			fmt.Fprintf(cmd.ErrOrStderr(), "config file: %s\n", path)
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(cfg)
	},
}

// resolveConfig loads the config file named by --config, or the nearest
// safemocker.toml above the working directory, falling back to defaults
// when no file exists. Returns the config and the file path used (empty
// for pure defaults).
func resolveConfig() (safemocker.Config, string, error) {
	path := flagConfig
	if path == "" {
		wd, err := os.Getwd()
		if err != nil {
			return safemocker.Config{}, "", err
		}
		path, err = safemocker.FindConfigFile(wd)
		if err != nil {
			return safemocker.Config{}, "", err
		}
	}
	if path == "" {
		return safemocker.DefaultConfig(), "", nil
	}
	cfg, err := safemocker.LoadConfigFile(path)
	return cfg, path, err
}

func init() {
	configCmd.AddCommand(configShowCmd)
	rootCmd.AddCommand(configCmd)
}
