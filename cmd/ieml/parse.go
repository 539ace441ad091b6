package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ieml-core/ieml/script"
)

func init() {
	cmd := &cobra.Command{
		Use:     "parse <script>",
		Short:   "Parse a script and print its canonical form and attributes",
		Example: `  ieml parse "[wa.]"`,
		Args:    cobra.ExactArgs(1),
		RunE:    runParse,
	}
	rootCmd.AddCommand(cmd)
}

func runParse(cmd *cobra.Command, args []string) error {
	s, err := script.Parse(args[0])
	if err != nil {
		return err
	}
	fmt.Printf("canonical: %s\n", s)
	fmt.Printf("layer:     %d\n", s.Layer())
	fmt.Printf("cardinal:  %d\n", s.Cardinal())
	fmt.Printf("class:     %s\n", s.Class())
	fmt.Printf("paradigm:  %t\n", s.Paradigm())
	if s.Paradigm() {
		seqs, err := s.SingularSequences()
		if err != nil {
			return err
		}
		fmt.Printf("singular sequences (%d):\n", len(seqs))
		for _, seq := range seqs {
			fmt.Printf("  %s\n", seq)
		}
	}
	return nil
}
