package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ieml-core/ieml/dictionary"
	"github.com/ieml-core/ieml/script"
)

var dictCmd = &cobra.Command{
	Use:   "dict",
	Short: "Load, save, and query a dictionary of terms",
}

func init() {
	rootCmd.AddCommand(dictCmd)

	dictCmd.AddCommand(&cobra.Command{
		Use:     "load <dictionary.yml>",
		Short:   "Load a dictionary, compute its relation index, and report term counts",
		Args:    cobra.ExactArgs(1),
		RunE:    runDictLoad,
		Example: `  ieml dict load dictionary.yml`,
	})

	relCmd := &cobra.Command{
		Use:     "relations <dictionary.yml> <script>",
		Short:   "Load a dictionary and print the visible relations of one term",
		Args:    cobra.ExactArgs(2),
		RunE:    runDictRelations,
		Example: `  ieml dict relations dictionary.yml "[U:A:.]"`,
	}
	dictCmd.AddCommand(relCmd)

	dictCmd.AddCommand(&cobra.Command{
		Use:     "save <dictionary.yml> <out.yml>",
		Short:   "Load a dictionary and re-emit it in canonical YAML form",
		Args:    cobra.ExactArgs(2),
		RunE:    runDictSave,
		Example: `  ieml dict save dictionary.yml normalized.yml`,
	})
}

func loadDictionary(path string) (*dictionary.Dictionary, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	d, err := dictionary.LoadYAML(data)
	if err != nil {
		return nil, err
	}
	if err := d.ComputeRelations(); err != nil {
		return nil, err
	}
	return d, nil
}

func runDictLoad(cmd *cobra.Command, args []string) error {
	d, err := loadDictionary(args[0])
	if err != nil {
		return err
	}
	if logger != nil {
		logger.Info("dictionary loaded", zap.Int("roots", len(d.Roots())), zap.Int("terms", len(d.Terms())))
	}
	fmt.Printf("roots: %d\n", len(d.Roots()))
	fmt.Printf("terms: %d\n", len(d.Terms()))
	return nil
}

func runDictSave(cmd *cobra.Command, args []string) error {
	d, err := loadDictionary(args[0])
	if err != nil {
		return err
	}
	data, err := d.SaveYAML()
	if err != nil {
		return err
	}
	if err := os.WriteFile(args[1], data, 0o644); err != nil {
		return err
	}
	if logger != nil {
		logger.Info("dictionary saved", zap.String("path", args[1]))
	}
	return nil
}

func runDictRelations(cmd *cobra.Command, args []string) error {
	d, err := loadDictionary(args[0])
	if err != nil {
		return err
	}
	s, err := script.Parse(args[1])
	if err != nil {
		return err
	}
	t, ok := d.Term(s)
	if !ok {
		return fmt.Errorf("no term registered for %s", s)
	}
	rel, err := d.VisibleRelations(t)
	if err != nil {
		return err
	}
	names := dictionary.NewRelationNames()
	for kind, terms := range rel {
		label, ok := names.Label(kind)
		if !ok {
			label = kind
		}
		fmt.Printf("%s (%s):\n", label, kind)
		for _, other := range terms {
			fmt.Printf("  %s\n", other.Script)
		}
	}
	return nil
}
