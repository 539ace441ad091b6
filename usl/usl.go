package usl

import (
	"fmt"

	"github.com/ieml-core/ieml/script"
)

// USL is the umbrella for any composable unit this layer produces: a
// single morpheme, a Polymorpheme, a Lexeme, or a SyntagmaticFunction
// wrapping Lexemes (spec.md §3).
type USL interface {
	// Cardinal is the number of singular variants the USL denotes.
	Cardinal() int
	// String renders the USL's canonical textual form.
	String() string
}

// morphemeUSL wraps a bare dictionary morpheme as a USL.
type morphemeUSL struct {
	*script.Script
}

func (m morphemeUSL) Cardinal() int { return m.Script.Cardinal() }
func (m morphemeUSL) String() string { return m.Script.String() }

// Morpheme lifts s to the USL interface.
func Morpheme(s *script.Script) USL {
	return morphemeUSL{s}
}

var _ USL = (*Polymorpheme)(nil)
var _ USL = (*Lexeme)(nil)

// Cardinal for a SyntagmaticFunction is the product of every lexeme it
// addresses directly or transitively.
func (f *SyntagmaticFunction) Cardinal() int {
	if f.Process != nil {
		c := f.Process.Actor.Flexion.Cardinal() * f.Process.Actor.Content.Cardinal()
		for _, a := range f.Process.Actants {
			c *= actantCardinal(a)
		}
		return c
	}
	if f.Actant != nil {
		return actantCardinal(f.Actant)
	}
	return 1
}

func actantCardinal(a *Actant) int {
	c := a.Actor.Flexion.Cardinal() * a.Actor.Content.Cardinal()
	if a.Dependant != nil {
		c *= actantCardinal(a.Dependant)
	}
	for _, iq := range a.Independants {
		c *= iq.Actor.Flexion.Cardinal() * iq.Actor.Content.Cardinal()
	}
	return c
}

// String renders a SyntagmaticFunction as its role-prefixed form, e.g.
// "(E:A:.) INITIATOR(...) TIME(...)" for a process (the valence actor
// first), with a dependant in [...] and an independant quality in {...}
// after its actant; mainly useful for diagnostics.
func (f *SyntagmaticFunction) String() string {
	if f.Process != nil {
		s := f.Process.Actor.String()
		for _, a := range f.Process.Actants {
			s += " " + actantString(a)
		}
		return s
	}
	if f.Actant != nil {
		return actantString(f.Actant)
	}
	return ""
}

func actantString(a *Actant) string {
	s := fmt.Sprintf("%s%s", a.Role, a.Actor.String())
	if a.Dependant != nil {
		s += "[" + actantString(a.Dependant) + "]"
	}
	for _, iq := range a.Independants {
		s += "{" + iq.Actor.String() + "}"
	}
	return s
}

var _ USL = (*SyntagmaticFunction)(nil)
