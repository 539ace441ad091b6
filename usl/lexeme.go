package usl

import (
	"fmt"

	ierr "github.com/ieml-core/ieml/error"
	"github.com/ieml-core/ieml/script"
)

// Lexeme pairs a flexion polymorpheme (grammatical marking) with a
// content polymorpheme (semantic content), per spec.md §3.
type Lexeme struct {
	Flexion *Polymorpheme
	Content *Polymorpheme
}

// NewLexeme validates (flexion, content) via checkLexemeScripts and
// builds the Lexeme. A nil flexion is treated as the empty flexion.
func NewLexeme(flexion, content *Polymorpheme) (*Lexeme, error) {
	if content == nil {
		return nil, &ierr.StructuralError{Cause: fmt.Errorf("lexeme requires a non-nil content polymorpheme")}
	}
	if flexion == nil {
		flexion = &Polymorpheme{class: script.ClassAuxiliary, cardinal: 1}
	}
	if err := checkLexemeScripts(flexion, content); err != nil {
		return nil, err
	}
	return &Lexeme{Flexion: flexion, Content: content}, nil
}

// checkLexemeScripts enforces which flexion/content combinations are
// admissible: a flexion morpheme is a grammatical marker and must never
// outrank its content's class (a flexion can't be "more substantive"
// than what it modifies), matching the source's role-aware rejection of
// structurally invalid lexemes. The check does not depend on the
// syntagmatic role the lexeme is later placed in, and
// `SyntagmaticFunction` assembly (FromList) performs no further
// per-role check of a lexeme's flexion or content.
func checkLexemeScripts(flexion, content *Polymorpheme) error {
	if flexion.Class() > content.Class() {
		return &ierr.StructuralError{Cause: fmt.Errorf("flexion class %v outranks content class %v", flexion.Class(), content.Class())}
	}
	return nil
}

// Class returns the lexeme's grammatical class, which equals its
// content's class.
func (l *Lexeme) Class() script.Class {
	return l.Content.Class()
}

// Cardinal is the product of the flexion's and content's cardinals.
func (l *Lexeme) Cardinal() int {
	return l.Flexion.Cardinal() * l.Content.Cardinal()
}

// IsSingular reports whether both flexion and content are singular.
func (l *Lexeme) IsSingular() bool {
	return l.Flexion.IsSingular() && l.Content.IsSingular()
}

// String renders the flexion's text immediately followed by the
// content's text, in parentheses, matching S6's "(k.a.-k.a.-')"
// example for an empty flexion.
func (l *Lexeme) String() string {
	return "(" + l.Flexion.String() + l.Content.String() + ")"
}
