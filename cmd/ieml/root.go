package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ieml-core/ieml/log"
)

var rootFlags = struct {
	verbose *bool
}{}

var logger *log.Logger

var rootCmd = &cobra.Command{
	Use:   "ieml",
	Short: "Parse IEML scripts, load a dictionary, and project paradigm tables",
	Long: `ieml exposes the algebraic script core of an IEML toolchain:
- Parses and canonicalizes script text.
- Loads a dictionary of terms and computes its relation index.
- Projects a USL across two paradigmatic axes into a 2-D table.`,
	SilenceErrors: true,
	SilenceUsage:  true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		logger, err = log.New(*rootFlags.verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootFlags.verbose = rootCmd.PersistentFlags().Bool("verbose", false, "enable debug-level logging")
}

// Execute runs the CLI, printing any error to stderr.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return err
	}
	return nil
}
