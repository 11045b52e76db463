package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Priya28092000/safemocker/internal/scenario"
)

var runGlob string

// runCmd implements "safemocker run". It executes one scenario file, or
// every file matched by --glob, and prints one result envelope per
// scenario as indented JSON on stdout. Log output stays on stderr so the
// JSON stream can be piped.
var runCmd = &cobra.Command{
	Use:   "run [scenario.toml]",
	Short: "Run pipeline scenarios and print their result envelopes",
	Long: `Run one or more declarative TOML scenarios through the action pipeline.
Each scenario defines an input schema, an input document, and optional
metadata and client settings; the envelope each invocation produces is
printed as JSON.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var paths []string
		switch {
		case runGlob != "":
			matched, err := scenario.Discover(runGlob)
			if err != nil {
				return err
			}
			if len(matched) == 0 {
				return fmt.Errorf("no scenarios match %q", runGlob)
			}
			paths = matched
		case len(args) == 1:
			paths = args
		default:
			return fmt.Errorf("provide a scenario file or --glob pattern")
		}

		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")

		for _, path := range paths {
			s, err := scenario.Load(path)
			if err != nil {
				return err
			}
			res, err := s.Run(cmd.Context())
			if err != nil {
				return err
			}
			out := map[string]any{"scenario": s.Name, "result": res}
			if err := enc.Encode(out); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	runCmd.Flags().StringVar(&runGlob, "glob", "", `Doublestar pattern of scenario files (e.g. "testdata/**/*.toml")`)
	rootCmd.AddCommand(runCmd)
}
