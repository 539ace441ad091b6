// Package usl implements the L2 compositional layer: polymorphemes,
// lexemes and syntagmatic functions built on top of dictionary
// morphemes (script.Script values admitted to a dictionary.Dictionary).
package usl

import (
	"fmt"
	"sort"
	"strings"

	ierr "github.com/ieml-core/ieml/error"
	"github.com/ieml-core/ieml/script"
)

// Group is one multiplicity group of a Polymorpheme: m of the given
// morpheme set must be chosen. Cardinal contribution is C(len(Members), m).
type Group struct {
	Multiplicity int
	Members      []*script.Script
}

// Polymorpheme is a multiset of morphemes partitioned into a constant
// sequence and zero or more groups (spec.md §3).
type Polymorpheme struct {
	Constant []*script.Script
	Groups   []Group

	cardinal int
	class    script.Class
}

// NewPolymorpheme validates and builds a Polymorpheme. isMorpheme is
// supplied by the caller (typically dictionary.Dictionary.Term) so this
// package never depends on dictionary directly; every constant and group
// member must satisfy it.
func NewPolymorpheme(constant []*script.Script, groups []Group, isMorpheme func(*script.Script) bool) (*Polymorpheme, error) {
	for _, m := range constant {
		if !isMorpheme(m) {
			return nil, &ierr.StructuralError{Cause: fmt.Errorf("%s is not a dictionary morpheme", m)}
		}
	}
	cardinal := 1
	for gi, g := range groups {
		if g.Multiplicity < 0 || g.Multiplicity > len(g.Members) {
			return nil, &ierr.StructuralError{Cause: fmt.Errorf("group %d: multiplicity %d out of range for %d members", gi, g.Multiplicity, len(g.Members))}
		}
		for _, m := range g.Members {
			if !isMorpheme(m) {
				return nil, &ierr.StructuralError{Cause: fmt.Errorf("%s is not a dictionary morpheme", m)}
			}
		}
		cardinal *= binomial(len(g.Members), g.Multiplicity)
	}

	pm := &Polymorpheme{
		Constant: append([]*script.Script(nil), constant...),
		Groups:   append([]Group(nil), groups...),
		cardinal: cardinal,
		class:    classOf(constant, groups),
	}
	return pm, nil
}

func classOf(constant []*script.Script, groups []Group) script.Class {
	best := script.ClassAuxiliary
	bump := func(c script.Class) {
		if c > best {
			best = c
		}
	}
	for _, m := range constant {
		bump(m.Class())
	}
	for _, g := range groups {
		for _, m := range g.Members {
			bump(m.Class())
		}
	}
	return best
}

func binomial(n, k int) int {
	if k < 0 || k > n {
		return 0
	}
	if k > n-k {
		k = n - k
	}
	result := 1
	for i := 0; i < k; i++ {
		result = result * (n - i) / (i + 1)
	}
	return result
}

// Cardinal returns the number of singular variants this polymorpheme
// denotes: the product of C(|group|, m) across every group.
func (p *Polymorpheme) Cardinal() int {
	return p.cardinal
}

// Class returns the grammatical class of the polymorpheme: the maximum
// class over every morpheme it contains.
func (p *Polymorpheme) Class() script.Class {
	return p.class
}

// IsSingular reports whether every group's multiplicity equals its
// member count, i.e. the polymorpheme denotes exactly one variant.
func (p *Polymorpheme) IsSingular() bool {
	for _, g := range p.Groups {
		if g.Multiplicity != len(g.Members) {
			return false
		}
	}
	return true
}

// String renders the constant sequence followed by each group's
// `mK(morpheme morpheme ...)` expression, per spec.md §4.3.
func (p *Polymorpheme) String() string {
	var b strings.Builder
	for _, c := range p.Constant {
		b.WriteString(c.String())
	}
	for _, g := range p.Groups {
		fmt.Fprintf(&b, "m%d(", g.Multiplicity)
		members := append([]*script.Script(nil), g.Members...)
		sort.Slice(members, func(i, j int) bool { return script.Less(members[i], members[j]) })
		for i, m := range members {
			if i > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(m.String())
		}
		b.WriteString(")")
	}
	return b.String()
}

// SingularVariants enumerates every singular (constant, chosen-subset)
// combination this polymorpheme denotes. It is used by the L3 table
// projector to walk a paradigmatic axis. Group members are chosen in
// canonical script order for determinism.
func (p *Polymorpheme) SingularVariants() ([]*Polymorpheme, error) {
	combosPerGroup := make([][][]*script.Script, len(p.Groups))
	for gi, g := range p.Groups {
		sorted := append([]*script.Script(nil), g.Members...)
		sort.Slice(sorted, func(i, j int) bool { return script.Less(sorted[i], sorted[j]) })
		combosPerGroup[gi] = combinations(sorted, g.Multiplicity)
	}

	total := 1
	for _, combos := range combosPerGroup {
		total *= len(combos)
	}
	if total == 0 {
		total = 1
	}

	results := make([]*Polymorpheme, 0, total)
	indices := make([]int, len(combosPerGroup))
	for {
		groups := make([]Group, len(combosPerGroup))
		for gi, combos := range combosPerGroup {
			chosen := combos[indices[gi]]
			groups[gi] = Group{Multiplicity: len(chosen), Members: chosen}
		}
		variant := &Polymorpheme{
			Constant: append([]*script.Script(nil), p.Constant...),
			Groups:   groups,
			cardinal: 1,
			class:    classOf(p.Constant, groups),
		}
		results = append(results, variant)

		idx := len(indices) - 1
		for idx >= 0 {
			indices[idx]++
			if indices[idx] < len(combosPerGroup[idx]) {
				break
			}
			indices[idx] = 0
			idx--
		}
		if idx < 0 {
			break
		}
	}
	return results, nil
}

func combinations(items []*script.Script, k int) [][]*script.Script {
	if k == 0 {
		return [][]*script.Script{{}}
	}
	if k > len(items) {
		return nil
	}
	var out [][]*script.Script
	var pick func(start int, chosen []*script.Script)
	pick = func(start int, chosen []*script.Script) {
		if len(chosen) == k {
			out = append(out, append([]*script.Script(nil), chosen...))
			return
		}
		for i := start; i < len(items); i++ {
			pick(i+1, append(chosen, items[i]))
		}
	}
	pick(0, nil)
	return out
}
