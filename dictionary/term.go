// Package dictionary implements the L1 layer of the IEML core: terms
// grouped under root paradigms, the admission rules that keep a
// dictionary well-formed, and the relation index computed once over
// every term it holds.
package dictionary

import (
	"github.com/ieml-core/ieml/script"
)

// Languages fixes the two-element translation language set the core
// carries; the host collaborator owns anything beyond these two.
const (
	LanguageEN = "en"
	LanguageFR = "fr"
)

var Languages = [2]string{LanguageEN, LanguageFR}

// Term is a Script admitted to a Dictionary.
type Term struct {
	Script       *script.Script
	Translations map[string]string
	Inhibitions  map[string]bool
	Root         *Term
	Rank         int
	Index        int

	defined bool
}

// IsRoot reports whether t is itself a root paradigm (Root points to
// itself once admitted).
func (t *Term) IsRoot() bool {
	return t.Root == t
}

// Defined reports whether t has been fully admitted: translations set,
// inhibitions set, root assigned, and indexed by compute_relations.
// Mirrors the source's Term.defined property.
func (t *Term) Defined() bool {
	return t.defined
}

// Translation returns t's translation string for lang, and whether one
// was set.
func (t *Term) Translation(lang string) (string, bool) {
	s, ok := t.Translations[lang]
	return s, ok
}

// Inhibits reports whether t suppresses the given relation kind in
// output views (see Dictionary.VisibleRelations).
func (t *Term) Inhibits(kind string) bool {
	return t.Inhibitions[kind]
}
