package script

import "testing"

func TestParseRemarkableMultiplication(t *testing.T) {
	s, err := Parse("[wa.]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Layer() != 1 {
		t.Fatalf("layer = %d, want 1", s.Layer())
	}
	if s.Cardinal() != 1 {
		t.Fatalf("cardinal = %d, want 1", s.Cardinal())
	}
	if s.Class() != ClassVerb {
		t.Fatalf("class = %v, want VERB", s.Class())
	}
	if got := s.String(); got != "wa." {
		t.Fatalf("String() = %q, want %q", got, "wa.")
	}
}

func TestParseRemarkableAdditionParadigm(t *testing.T) {
	s, err := Parse("[O:O:.]")
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if s.Cardinal() != 4 {
		t.Fatalf("cardinal = %d, want 4", s.Cardinal())
	}
	seqs, err := s.SingularSequences()
	if err != nil {
		t.Fatalf("SingularSequences: %v", err)
	}
	if len(seqs) != 4 {
		t.Fatalf("len(seqs) = %d, want 4", len(seqs))
	}
	// Canonical order sorts by orderKey bytes (U=0x2, A=0x4), so
	// [U:U:.] < [U:A:.] < [A:U:.] < [A:A:.]; their printed forms use the
	// two-letter remarkable-multiplication codes.
	want := []string{"wo.", "wa.", "wu.", "we."}
	got := make([]string, len(seqs))
	for i, sq := range seqs {
		got[i] = sq.String()
		if sq.Paradigm() {
			t.Fatalf("singular sequence %s reports paradigm=true", sq)
		}
		if sq.Cardinal() != 1 {
			t.Fatalf("singular sequence %s has cardinal %d", sq, sq.Cardinal())
		}
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("singular sequences = %v, want %v", got, want)
		}
	}
}

func TestParseTooManySingularSequences(t *testing.T) {
	_, err := Parse("[M:M:.M:M:.M:M:.-]")
	if err == nil {
		t.Fatalf("expected TooManySingularSequencesError, got nil")
	}
	if _, ok := err.(*TooManySingularSequencesError); !ok {
		t.Fatalf("err = %T, want *TooManySingularSequencesError", err)
	}
}

func TestRoundTrip(t *testing.T) {
	cases := []string{"[wa.]", "[O:O:.]", "E:", "U:", "[U:A:.]"}
	for _, c := range cases {
		s, err := Parse(c)
		if err != nil {
			t.Fatalf("Parse(%q): %v", c, err)
		}
		printed := s.String()
		s2, err := Parse(printed)
		if err != nil {
			t.Fatalf("Parse(print(Parse(%q))) = %v", c, err)
		}
		if s2 != s {
			t.Fatalf("round trip broke hash-consing for %q: %p != %p", c, s2, s)
		}
	}
}

func TestHashConsing(t *testing.T) {
	a, err := Parse("U:")
	if err != nil {
		t.Fatal(err)
	}
	b, err := Parse("U:")
	if err != nil {
		t.Fatal(err)
	}
	if a != b {
		t.Fatalf("two parses of the same canonical text returned distinct pointers")
	}
}

func TestContainment(t *testing.T) {
	root, err := Parse("[O:O:.]")
	if err != nil {
		t.Fatal(err)
	}
	member, err := Parse("[U:A:.]")
	if err != nil {
		t.Fatal(err)
	}
	ok, err := root.Contains(member)
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatalf("expected [O:O:.] to contain [U:A:.]")
	}
	ok, err = member.Contains(root)
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Fatalf("did not expect [U:A:.] to contain [O:O:.]")
	}
}
