package dictionary

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func TestYAMLRoundTrip(t *testing.T) {
	d := New()
	_, err := d.AddTerm(mustParse(t, "[O:O:.]"), true, []string{KindContains}, map[string]string{LanguageEN: "thing"})
	require.NoError(t, err)
	_, err = d.AddTerm(mustParse(t, "[U:A:.]"), false, nil, map[string]string{LanguageEN: "member"})
	require.NoError(t, err)

	data, err := d.SaveYAML()
	require.NoError(t, err)

	reloaded, err := LoadYAML(data)
	require.NoError(t, err)

	wantDoc, err := d.MarshalYAML()
	require.NoError(t, err)
	gotDoc, err := reloaded.MarshalYAML()
	require.NoError(t, err)

	if diff := cmp.Diff(wantDoc, gotDoc); diff != "" {
		t.Fatalf("round trip changed the document (-want +got):\n%s", diff)
	}
}
