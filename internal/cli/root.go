// Package cli implements the safemocker command tree. The binary is a
// debugging companion to the library: it runs declarative scenarios through
// the pipeline and inspects resolved configuration, so a failing test
// fixture can be reproduced outside the test runner.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/Priya28092000/safemocker/internal/logging"
)

// Global flag values accessible to all subcommands.
var (
	flagVerbose bool
	flagQuiet   bool
	flagConfig  string
)

// rootCmd is the base command for safemocker.
var rootCmd = &cobra.Command{
	Use:   "safemocker",
	Short: "Safe-action pipeline test double",
	Long: `safemocker emulates a safe-action framework's request pipeline --
schema-validated input, middleware chain, metadata, and result envelope --
so action handlers can be exercised without the real runtime. This CLI runs
declarative TOML scenarios through that pipeline and prints the envelopes.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// Check env vars for flags not explicitly set on command line.
		if !cmd.Flags().Changed("verbose") && os.Getenv("SAFEMOCKER_VERBOSE") != "" {
			flagVerbose = true
		}
		if !cmd.Flags().Changed("quiet") && os.Getenv("SAFEMOCKER_QUIET") != "" {
			flagQuiet = true
		}

		jsonFormat := os.Getenv("SAFEMOCKER_LOG_FORMAT") == "json"
		logging.Setup(flagVerbose, flagQuiet, jsonFormat)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable verbose (debug) output (env: SAFEMOCKER_VERBOSE)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress all output except errors (env: SAFEMOCKER_QUIET)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to safemocker.toml config file")
}

// Execute runs the root command and returns the exit code.
func Execute() int {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 1
	}
	return 0
}

// NewRootCmd returns a fresh instance of the root command for external
// generators (shell completions, man pages). It registers the same
// persistent flags using local variables so the exported command is safe
// for concurrent use by generators, and attaches all subcommands from the
// global tree.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:               rootCmd.Use,
		Short:             rootCmd.Short,
		Long:              rootCmd.Long,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: rootCmd.PersistentPreRunE,
	}

	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose (debug) output (env: SAFEMOCKER_VERBOSE)")
	cmd.PersistentFlags().BoolP("quiet", "q", false, "Suppress all output except errors (env: SAFEMOCKER_QUIET)")
	cmd.PersistentFlags().String("config", "", "Path to safemocker.toml config file")

	for _, child := range rootCmd.Commands() {
		cmd.AddCommand(child)
	}
	return cmd
}
