package usl

import (
	"fmt"
	"strings"

	ierr "github.com/ieml-core/ieml/error"
	"github.com/ieml-core/ieml/script"
)

// Address is a role path from the root of a SyntagmaticFunction (or from
// an Actant being assembled) down to the entry it addresses, e.g.
// {RoleInitiator, RoleDependantQuality} reaches the dependant quality of
// the initiator actant.
type Address []Role

func (a Address) String() string {
	parts := make([]string, len(a))
	for i, r := range a {
		parts[i] = string(r)
	}
	return ">" + strings.Join(parts, ">")
}

// AddressedLexeme is one entry in the flat list FromList assembles a
// SyntagmaticFunction from.
type AddressedLexeme struct {
	Address Address
	Actor   *Lexeme
}

// IndependantQuality is a leaf: a lexeme with no further structure.
type IndependantQuality struct {
	Actor *Lexeme
}

// Actant recursively carries further dependants and independent-quality
// leaves, per spec.md §3.
type Actant struct {
	Actor        *Lexeme
	Role         Role
	Dependant    *Actant
	Independants []*IndependantQuality
}

// Process is the top-level syntagmatic function: a valence-scripted
// actor lexeme plus the actants drawn from the eight process roles.
type Process struct {
	Actor   *Lexeme
	Actants []*Actant
}

// SyntagmaticFunction is the assembled tree: exactly one of Process or
// Actant is set (a lone IndependantQuality is never a function's root;
// spec.md §4.3 only allows it nested under an Actant).
type SyntagmaticFunction struct {
	Process *Process
	Actant  *Actant

	index map[string]interface{}
}

// Lookup returns the sub-function (an *Actant or *IndependantQuality)
// addressed by addr, for O(1) access, per spec.md §3's "flat map
// role-address → sub-function" requirement.
func (f *SyntagmaticFunction) Lookup(addr Address) (interface{}, bool) {
	v, ok := f.index[addr.String()]
	return v, ok
}

// FunctionType is the caller's declared intent for FromList, resolving
// the ambiguity a flat address list alone can't: spec.md §4.3 calls
// this "a list ... and an intended function type".
type FunctionType int

const (
	// FunctionProcess builds a Process: entries are grouped under the
	// eight process roles and the valence script is derived from the
	// count of motor actants present.
	FunctionProcess FunctionType = iota
	// FunctionActant builds a single Actant directly, without a
	// surrounding Process or valence script.
	FunctionActant
)

// FromList assembles a SyntagmaticFunction from a flat list of
// (address, actor) pairs for the declared function type, per spec.md
// §4.3's dispatch rule:
//   - FunctionProcess: every top-level address must name one of the
//     eight process roles; each becomes an Actant, and the count of
//     motor actants (initiator/interactant/recipient) present picks the
//     process's valence script;
//   - FunctionActant: every entry's address must share the same
//     top-level role, which becomes that Actant's role;
//   - within either, a residual [RoleDependantQuality, ...] address
//     recurses into a nested dependant Actant, and a residual
//     [RoleIndependantQuality] address (nothing left to recurse into)
//     becomes a leaf IndependantQuality;
//   - more than one direct-actor address under the same role without a
//     higher container is invalid.
func FromList(entries []AddressedLexeme, intended FunctionType) (*SyntagmaticFunction, error) {
	if len(entries) == 0 {
		return nil, &ierr.StructuralError{Cause: fmt.Errorf("syntagmatic function requires at least one addressed lexeme")}
	}
	if len(entries) > MaxNodesInSentence {
		return nil, &ierr.StructuralError{Cause: fmt.Errorf("sentence has %d addressed lexemes, exceeds MaxNodesInSentence (%d)", len(entries), MaxNodesInSentence)}
	}

	topGroups, err := groupByTopRole(entries)
	if err != nil {
		return nil, err
	}

	f := &SyntagmaticFunction{index: map[string]interface{}{}}

	switch intended {
	case FunctionProcess:
		actants := make([]*Actant, 0, len(topGroups))
		motorCount := 0
		for _, role := range processRoles {
			group, ok := topGroups[role]
			if !ok {
				continue
			}
			actant, err := assembleActant(role, group, Address{role}, f.index)
			if err != nil {
				return nil, err
			}
			actants = append(actants, actant)
			if motorRoles[role] {
				motorCount++
			}
		}
		for role := range topGroups {
			if !isProcessRole(role) {
				return nil, &ierr.StructuralError{Cause: fmt.Errorf("role %s cannot appear at process top level", role)}
			}
		}
		valence, err := valenceScriptFor(motorCount)
		if err != nil {
			return nil, &ierr.StructuralError{Cause: err}
		}
		actorPm, err := NewPolymorpheme([]*script.Script{valence}, nil, func(*script.Script) bool { return true })
		if err != nil {
			return nil, err
		}
		actorLexeme, err := NewLexeme(nil, actorPm)
		if err != nil {
			return nil, err
		}
		f.Process = &Process{Actor: actorLexeme, Actants: actants}
		return f, nil

	case FunctionActant:
		if len(topGroups) != 1 {
			return nil, &ierr.StructuralError{Cause: fmt.Errorf("a bare actant requires every address to share one top-level role, got %d distinct roles", len(topGroups))}
		}
		for role, group := range topGroups {
			actant, err := assembleActant(role, group, Address{role}, f.index)
			if err != nil {
				return nil, err
			}
			f.Actant = actant
			return f, nil
		}
	}
	return nil, &ierr.StructuralError{Cause: fmt.Errorf("unknown function type %d", intended)}
}

func isProcessRole(r Role) bool {
	for _, pr := range processRoles {
		if pr == r {
			return true
		}
	}
	return false
}

// groupByTopRole partitions entries by the first segment of their
// address, rejecting an address with no segments at all.
func groupByTopRole(entries []AddressedLexeme) (map[Role][]AddressedLexeme, error) {
	out := map[Role][]AddressedLexeme{}
	for _, e := range entries {
		if len(e.Address) == 0 {
			return nil, &ierr.StructuralError{Cause: fmt.Errorf("addressed lexeme has an empty address")}
		}
		out[e.Address[0]] = append(out[e.Address[0]], e)
	}
	return out, nil
}

// assembleActant builds the Actant at role from entries whose address
// begins with role, indexing it (and everything nested inside it) into
// index under its full address.
func assembleActant(role Role, entries []AddressedLexeme, fullAddr Address, index map[string]interface{}) (*Actant, error) {
	var ownActor *Lexeme
	var dependantEntries []AddressedLexeme
	var independantEntries []AddressedLexeme

	for _, e := range entries {
		residual := e.Address[1:]
		switch {
		case len(residual) == 0:
			if ownActor != nil {
				return nil, &ierr.StructuralError{Cause: fmt.Errorf("role %s has more than one direct actor", role)}
			}
			ownActor = e.Actor
		case residual[0] == RoleDependantQuality:
			dependantEntries = append(dependantEntries, AddressedLexeme{Address: residual[1:], Actor: e.Actor})
		case residual[0] == RoleIndependantQuality:
			independantEntries = append(independantEntries, AddressedLexeme{Address: residual[1:], Actor: e.Actor})
		default:
			return nil, &ierr.StructuralError{Cause: fmt.Errorf("role %s: unexpected nested address segment %s", role, residual[0])}
		}
	}
	if ownActor == nil {
		return nil, &ierr.StructuralError{Cause: fmt.Errorf("role %s has no direct actor", role)}
	}

	actant := &Actant{Actor: ownActor, Role: role}
	index[fullAddr.String()] = actant

	if len(dependantEntries) > 0 {
		// Recurse: the dependant chain may itself carry further
		// dependants/independants, addressed relative to the
		// DEPENDANT_QUALITY segment already stripped above.
		dep, err := assembleActant(RoleDependantQuality, prefixEach(dependantEntries, RoleDependantQuality), append(append(Address{}, fullAddr...), RoleDependantQuality), index)
		if err != nil {
			return nil, err
		}
		actant.Dependant = dep
	}

	if len(independantEntries) > 1 {
		return nil, &ierr.StructuralError{Cause: fmt.Errorf("role %s has more than one independant quality", role)}
	}
	if len(independantEntries) == 1 {
		e := independantEntries[0]
		if len(e.Address) != 0 {
			return nil, &ierr.StructuralError{Cause: fmt.Errorf("role %s: independent quality address must terminate at INDEPENDANT_QUALITY", role)}
		}
		iq := &IndependantQuality{Actor: e.Actor}
		actant.Independants = append(actant.Independants, iq)
		iqAddr := append(append(Address{}, fullAddr...), RoleIndependantQuality)
		index[iqAddr.String()] = iq
	}

	return actant, nil
}

func prefixEach(entries []AddressedLexeme, role Role) []AddressedLexeme {
	out := make([]AddressedLexeme, len(entries))
	for i, e := range entries {
		addr := append(Address{role}, e.Address...)
		out[i] = AddressedLexeme{Address: addr, Actor: e.Actor}
	}
	return out
}
