package usl

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ieml-core/ieml/script"
)

func anyMorpheme(*script.Script) bool { return true }

func mustParse(t *testing.T, s string) *script.Script {
	t.Helper()
	sc, err := script.Parse(s)
	require.NoError(t, err)
	return sc
}

func TestPolymorphemeCardinal(t *testing.T) {
	a := mustParse(t, "U:")
	b := mustParse(t, "A:")
	c := mustParse(t, "S:")
	pm, err := NewPolymorpheme(nil, []Group{{Multiplicity: 2, Members: []*script.Script{a, b, c}}}, anyMorpheme)
	require.NoError(t, err)
	assert.Equal(t, 3, pm.Cardinal())
	assert.False(t, pm.IsSingular())

	variants, err := pm.SingularVariants()
	require.NoError(t, err)
	assert.Len(t, variants, 3)
}

func TestLexemeStringEmptyFlexion(t *testing.T) {
	content, err := NewPolymorpheme([]*script.Script{mustParse(t, "k.a.-k.a.-'")}, nil, anyMorpheme)
	require.NoError(t, err)
	lex, err := NewLexeme(nil, content)
	require.NoError(t, err)
	assert.Equal(t, "(k.a.-k.a.-')", lex.String())
}

func TestFromListSingleActant(t *testing.T) {
	content, err := NewPolymorpheme([]*script.Script{mustParse(t, "U:")}, nil, anyMorpheme)
	require.NoError(t, err)
	lex, err := NewLexeme(nil, content)
	require.NoError(t, err)

	fn, err := FromList([]AddressedLexeme{{Address: Address{RoleInitiator}, Actor: lex}}, FunctionActant)
	require.NoError(t, err)
	require.NotNil(t, fn.Actant)
	assert.Equal(t, RoleInitiator, fn.Actant.Role)

	got, ok := fn.Lookup(Address{RoleInitiator})
	require.True(t, ok)
	assert.Same(t, fn.Actant, got)
}

func TestFromListSingleIndependantQuality(t *testing.T) {
	content, err := NewPolymorpheme([]*script.Script{mustParse(t, "U:")}, nil, anyMorpheme)
	require.NoError(t, err)
	lex, err := NewLexeme(nil, content)
	require.NoError(t, err)

	fn, err := FromList([]AddressedLexeme{
		{Address: Address{RoleInitiator}, Actor: lex},
		{Address: Address{RoleInitiator, RoleIndependantQuality}, Actor: lex},
	}, FunctionActant)
	require.NoError(t, err)
	require.NotNil(t, fn.Actant)
	require.Len(t, fn.Actant.Independants, 1)

	got, ok := fn.Lookup(Address{RoleInitiator, RoleIndependantQuality})
	require.True(t, ok)
	assert.Same(t, fn.Actant.Independants[0], got)
}

func TestFromListRejectsMultipleIndependantQualities(t *testing.T) {
	content, err := NewPolymorpheme([]*script.Script{mustParse(t, "U:")}, nil, anyMorpheme)
	require.NoError(t, err)
	lex, err := NewLexeme(nil, content)
	require.NoError(t, err)

	_, err = FromList([]AddressedLexeme{
		{Address: Address{RoleInitiator}, Actor: lex},
		{Address: Address{RoleInitiator, RoleIndependantQuality}, Actor: lex},
		{Address: Address{RoleInitiator, RoleIndependantQuality}, Actor: lex},
	}, FunctionActant)
	require.Error(t, err)
}

func TestFromListProcessWithTwoActants(t *testing.T) {
	content, err := NewPolymorpheme([]*script.Script{mustParse(t, "U:")}, nil, anyMorpheme)
	require.NoError(t, err)
	lex, err := NewLexeme(nil, content)
	require.NoError(t, err)

	fn, err := FromList([]AddressedLexeme{
		{Address: Address{RoleInitiator}, Actor: lex},
		{Address: Address{RoleRecipient}, Actor: lex},
	}, FunctionProcess)
	require.NoError(t, err)
	require.NotNil(t, fn.Process)
	assert.Len(t, fn.Process.Actants, 2)
	assert.Equal(t, "E:A:.", fn.Process.Actor.Content.String())
}
