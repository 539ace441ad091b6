package dictionary

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieml-core/ieml/script"
)

func mustParse(t *testing.T, s string) *script.Script {
	t.Helper()
	sc, err := script.Parse(s)
	require.NoError(t, err)
	return sc
}

func TestAddTermRootAndMember(t *testing.T) {
	d := New()
	root := mustParse(t, "[O:O:.]")
	member := mustParse(t, "[U:A:.]")

	rootTerm, err := d.AddTerm(root, true, nil, map[string]string{LanguageEN: "root"})
	require.NoError(t, err)
	assert.True(t, rootTerm.IsRoot())

	memberTerm, err := d.AddTerm(member, false, nil, map[string]string{LanguageEN: "member"})
	require.NoError(t, err)
	assert.Equal(t, rootTerm, memberTerm.Root)
}

func TestAddTermRootCollision(t *testing.T) {
	d := New()
	_, err := d.AddTerm(mustParse(t, "[O:O:.]"), true, nil, nil)
	require.NoError(t, err)

	_, err = d.AddTerm(mustParse(t, "[U:U:.]"), true, nil, nil)
	require.Error(t, err)
}

func TestAddTermRootMustBeParadigm(t *testing.T) {
	d := New()
	_, err := d.AddTerm(mustParse(t, "[U:A:.]"), true, nil, nil)
	require.Error(t, err)
}

func TestAddTermNoRootFound(t *testing.T) {
	d := New()
	_, err := d.AddTerm(mustParse(t, "[O:O:.]"), true, nil, nil)
	require.NoError(t, err)

	_, err = d.AddTerm(mustParse(t, "S:"), false, nil, nil)
	require.Error(t, err)
}

func TestDuplicateTranslationRejected(t *testing.T) {
	d := New()
	_, err := d.AddTerm(mustParse(t, "[O:O:.]"), true, nil, map[string]string{LanguageEN: "thing"})
	require.NoError(t, err)

	_, err = d.AddTerm(mustParse(t, "[M:M:.]"), true, nil, map[string]string{LanguageEN: "thing"})
	require.Error(t, err)
}

func TestComputeRelationsContainment(t *testing.T) {
	d := New()
	rootTerm, err := d.AddTerm(mustParse(t, "[O:O:.]"), true, nil, nil)
	require.NoError(t, err)
	memberTerm, err := d.AddTerm(mustParse(t, "[U:A:.]"), false, nil, nil)
	require.NoError(t, err)

	require.NoError(t, d.ComputeRelations())

	contained, err := d.Relations(memberTerm, KindContained)
	require.NoError(t, err)
	require.Len(t, contained, 1)
	assert.Same(t, rootTerm, contained[0])

	contains, err := d.Relations(rootTerm, KindContains)
	require.NoError(t, err)
	require.Len(t, contains, 1)
	assert.Same(t, memberTerm, contains[0])
}

func TestAddTermRejectedAfterComputeRelations(t *testing.T) {
	d := New()
	_, err := d.AddTerm(mustParse(t, "[O:O:.]"), true, nil, nil)
	require.NoError(t, err)
	require.NoError(t, d.ComputeRelations())

	_, err = d.AddTerm(mustParse(t, "[M:M:.]"), true, nil, nil)
	require.Error(t, err)
}

func TestVisibleRelationsAppliesInhibitions(t *testing.T) {
	d := New()
	rootTerm, err := d.AddTerm(mustParse(t, "[O:O:.]"), true, []string{KindContains}, nil)
	require.NoError(t, err)
	_, err = d.AddTerm(mustParse(t, "[U:A:.]"), false, nil, nil)
	require.NoError(t, err)
	require.NoError(t, d.ComputeRelations())

	visible, err := d.VisibleRelations(rootTerm)
	require.NoError(t, err)
	_, present := visible[KindContains]
	assert.False(t, present)

	all, err := d.AllRelations(rootTerm)
	require.NoError(t, err)
	_, present = all[KindContains]
	assert.True(t, present)
}
