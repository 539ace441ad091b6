package table

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieml-core/ieml/script"
	"github.com/ieml-core/ieml/usl"
)

func anyMorpheme(*script.Script) bool { return true }

func mustParse(t *testing.T, s string) *script.Script {
	t.Helper()
	sc, err := script.Parse(s)
	require.NoError(t, err)
	return sc
}

func TestUslTable2DRectangularity(t *testing.T) {
	a := mustParse(t, "U:")
	b := mustParse(t, "A:")
	c := mustParse(t, "S:")
	d := mustParse(t, "B:")

	rowGroup := usl.Group{Multiplicity: 2, Members: []*script.Script{a, b, c}}
	rowPm, err := usl.NewPolymorpheme(nil, []usl.Group{rowGroup}, anyMorpheme)
	require.NoError(t, err)

	colGroup := usl.Group{Multiplicity: 1, Members: []*script.Script{c, d}}
	colPm, err := usl.NewPolymorpheme(nil, []usl.Group{colGroup}, anyMorpheme)
	require.NoError(t, err)

	lex, err := usl.NewLexeme(rowPm, colPm)
	require.NoError(t, err)

	tbl, err := NewUslTable2D(lex, Path{"flexion"}, Path{"content"})
	require.NoError(t, err)

	assert.Equal(t, rowPm.Cardinal(), len(tbl.Rows))
	assert.Equal(t, colPm.Cardinal(), len(tbl.Cols))
	require.Len(t, tbl.Cells, len(tbl.Rows))
	for _, row := range tbl.Cells {
		assert.Len(t, row, len(tbl.Cols))
	}
}

func TestParsePath(t *testing.T) {
	p, err := ParsePath(">INITIATOR>content")
	require.NoError(t, err)
	assert.Equal(t, Path{"INITIATOR", "content"}, p)

	_, err = ParsePath("no-prefix")
	require.Error(t, err)
}
