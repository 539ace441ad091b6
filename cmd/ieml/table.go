package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ieml-core/ieml/script"
	"github.com/ieml-core/ieml/table"
	"github.com/ieml-core/ieml/usl"
)

var tableFlags = struct {
	content *string
}{}

func init() {
	cmd := &cobra.Command{
		Use:   "table <row-group> <col-group>",
		Short: "Project a lexeme across two comma-separated morpheme groups into a 2-D table",
		Long: `table builds a lexeme whose flexion is the row group and whose content
is a fixed constant plus the column group, then prints every cell of the
resulting row x column matrix. Each group argument is a comma-separated
list of script texts, e.g. "U:,A:,S:".`,
		Args:    cobra.ExactArgs(2),
		RunE:    runTable,
		Example: `  ieml table "U:,A:,S:" "B:,T:"`,
	}
	tableFlags.content = cmd.Flags().String("content", "k.a.-", "constant content morpheme")
	rootCmd.AddCommand(cmd)
}

func runTable(cmd *cobra.Command, args []string) error {
	rowScripts, err := parseScriptList(args[0])
	if err != nil {
		return err
	}
	colScripts, err := parseScriptList(args[1])
	if err != nil {
		return err
	}
	contentScript, err := script.Parse(*tableFlags.content)
	if err != nil {
		return err
	}

	anyMorpheme := func(*script.Script) bool { return true }
	rowPm, err := usl.NewPolymorpheme(nil, []usl.Group{{Multiplicity: 1, Members: rowScripts}}, anyMorpheme)
	if err != nil {
		return err
	}
	colPm, err := usl.NewPolymorpheme([]*script.Script{contentScript}, []usl.Group{{Multiplicity: 1, Members: colScripts}}, anyMorpheme)
	if err != nil {
		return err
	}
	lex, err := usl.NewLexeme(rowPm, colPm)
	if err != nil {
		return err
	}

	tbl, err := table.NewUslTable2D(lex, table.Path{"flexion"}, table.Path{"content"})
	if err != nil {
		return err
	}

	for i, row := range tbl.Cells {
		cells := make([]string, len(row))
		for j, cell := range row {
			cells[j] = cell.String()
		}
		fmt.Printf("%s\t%s\n", tbl.Rows[i], strings.Join(cells, "\t"))
	}
	return nil
}

func parseScriptList(s string) ([]*script.Script, error) {
	parts := strings.Split(s, ",")
	out := make([]*script.Script, 0, len(parts))
	for _, p := range parts {
		sc, err := script.Parse(strings.TrimSpace(p))
		if err != nil {
			return nil, err
		}
		out = append(out, sc)
	}
	return out, nil
}
