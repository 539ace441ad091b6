package dictionary

import (
	ierr "github.com/ieml-core/ieml/error"
	"github.com/ieml-core/ieml/script"
)

// Relation kind canonical keys, per spec.md §6's fixed label/key bijection.
const (
	KindCrossed    = "crossed"
	KindAssociated = "associated"
	KindTwin       = "twin"
	KindOpposed    = "opposed"

	KindFatherSubstance = "father.substance"
	KindFatherAttribute = "father.attribute"
	KindFatherMode      = "father.mode"

	KindChildSubstance = "child.substance"
	KindChildAttribute = "child.attribute"
	KindChildMode      = "child.mode"

	KindContains = "contains"
	KindContained = "contained"
	KindRoot      = "ROOT"
)

// RelationNames is the bijective lookup between human-readable relation
// labels and their canonical keys (spec.md §6, supplemented feature #2:
// a first-class replacement for the source's relation_name_table bidict).
type RelationNames struct {
	labelToKey map[string]string
	keyToLabel map[string]string
}

// NewRelationNames builds the fixed bijection once; both the dictionary
// package and a CLI front end share this single table.
func NewRelationNames() *RelationNames {
	pairs := [][2]string{
		{"Crossed siblings", KindCrossed},
		{"Associated siblings", KindAssociated},
		{"Twin siblings", KindTwin},
		{"Opposed siblings", KindOpposed},
		{"Ancestors in substance", KindFatherSubstance},
		{"Ancestors in attribute", KindFatherAttribute},
		{"Ancestors in mode", KindFatherMode},
		{"Descendents in substance", KindChildSubstance},
		{"Descendents in attribute", KindChildAttribute},
		{"Descendents in mode", KindChildMode},
		{"Contained in", KindContained},
		{"Contains", KindContains},
		{"Belongs to Paradigm", KindRoot},
	}
	rn := &RelationNames{labelToKey: map[string]string{}, keyToLabel: map[string]string{}}
	for _, p := range pairs {
		rn.labelToKey[p[0]] = p[1]
		rn.keyToLabel[p[1]] = p[0]
	}
	return rn
}

// Key returns the canonical key for a human-readable label.
func (rn *RelationNames) Key(label string) (string, bool) {
	k, ok := rn.labelToKey[label]
	return k, ok
}

// Label returns the human-readable label for a canonical key.
func (rn *RelationNames) Label(key string) (string, bool) {
	l, ok := rn.keyToLabel[key]
	return l, ok
}

// relationIndex is the full relation computation result: a containment
// bitset plus, per term, the list of related terms for every kind.
type relationIndex struct {
	contains  *bitset // contains.get(i,j) true iff i != j and index[i] ⊇ index[j]
	byKind    []map[string][]*Term
	termIndex map[*Term]int
}

// bitset is a packed |terms|² bit matrix, row-major, one bit per
// containment fact (design note in spec.md §9: replaces a numpy matrix).
type bitset struct {
	n    int
	bits []uint64
}

func newBitset(n int) *bitset {
	return &bitset{n: n, bits: make([]uint64, (n*n+63)/64)}
}

func (b *bitset) set(i, j int) {
	idx := i*b.n + j
	b.bits[idx/64] |= 1 << uint(idx%64)
}

func (b *bitset) get(i, j int) bool {
	idx := i*b.n + j
	return b.bits[idx/64]&(1<<uint(idx%64)) != 0
}

func buildRelationIndex(index []*Term) (*relationIndex, error) {
	n := len(index)
	termIndex := make(map[*Term]int, n)
	scriptToTerm := make(map[*script.Script]*Term, n)
	for i, t := range index {
		termIndex[t] = i
		scriptToTerm[t.Script] = t
	}

	contains := newBitset(n)
	for i, a := range index {
		for j, b := range index {
			if i == j {
				continue
			}
			ok, err := a.Script.Contains(b.Script)
			if err != nil {
				return nil, &ierr.DictionaryError{Cause: err, Term: a.Script.String()}
			}
			if ok {
				contains.set(i, j)
			}
		}
	}

	byKind := make([]map[string][]*Term, n)
	for i := range byKind {
		byKind[i] = map[string][]*Term{}
	}

	for i, t := range index {
		for j, other := range index {
			if i == j {
				continue
			}
			if contains.get(i, j) {
				byKind[i][KindContains] = append(byKind[i][KindContains], other)
			}
			if contains.get(j, i) {
				byKind[i][KindContained] = append(byKind[i][KindContained], other)
			}
		}
		if t.Root != nil {
			byKind[i][KindRoot] = []*Term{t.Root}
		}

		addFatherChild(t, i, byKind, scriptToTerm, termIndex)
	}

	for i, t := range index {
		for j, other := range index {
			if i == j || t.Root != other.Root {
				continue
			}
			kind, ok := siblingKind(t.Script, other.Script)
			if ok {
				byKind[i][kind] = append(byKind[i][kind], other)
			}
		}
	}

	return &relationIndex{contains: contains, byKind: byKind, termIndex: termIndex}, nil
}

// addFatherChild records the father.{substance,attribute,mode} relation
// from t to whichever of its three multiplicative children is itself a
// registered term, and the reciprocal child.* relation on that term.
// This is the "ancestors reachable by a single projection" rule of
// spec.md §4.2.
func addFatherChild(t *Term, i int, byKind []map[string][]*Term, scriptToTerm map[*script.Script]*Term, termIndex map[*Term]int) {
	if !t.Script.IsMultiplicative() || t.Script.Layer() == 0 {
		return
	}
	projections := []struct {
		child      *script.Script
		fatherKind string
		childKind  string
	}{
		{t.Script.Substance(), KindFatherSubstance, KindChildSubstance},
		{t.Script.Attribute(), KindFatherAttribute, KindChildAttribute},
		{t.Script.Mode(), KindFatherMode, KindChildMode},
	}
	for _, p := range projections {
		father, ok := scriptToTerm[p.child]
		if !ok || father == t {
			continue
		}
		byKind[i][p.fatherKind] = append(byKind[i][p.fatherKind], father)
		fi := termIndex[father]
		byKind[fi][p.childKind] = append(byKind[fi][p.childKind], t)
	}
}

// siblingKind classifies two same-layer, same-root multiplicative
// scripts by which pair of their three child positions is swapped
// relative to the other, matching spec.md §4.2's "defined purely on
// the multiplicative child positions":
//   - associated: same substance and attribute, different mode
//   - crossed: substance and attribute swapped, same mode
//   - twin: substance and mode swapped, same attribute
//   - opposed: attribute and mode swapped, same substance
func siblingKind(a, b *script.Script) (string, bool) {
	if !a.IsMultiplicative() || !b.IsMultiplicative() || a.Layer() != b.Layer() || a.Layer() == 0 {
		return "", false
	}
	as, aa, am := a.Substance(), a.Attribute(), a.Mode()
	bs, ba, bm := b.Substance(), b.Attribute(), b.Mode()

	switch {
	case as == bs && aa == ba && am != bm:
		return KindAssociated, true
	case as == ba && aa == bs && am == bm:
		return KindCrossed, true
	case as == bm && am == bs && aa == ba:
		return KindTwin, true
	case aa == bm && am == ba && as == bs:
		return KindOpposed, true
	}
	return "", false
}

// Relations returns the related terms for a single kind.
func (d *Dictionary) Relations(t *Term, kind string) ([]*Term, error) {
	if d.relations == nil {
		return nil, &ierr.DictionaryError{Cause: errNotComputed, Term: t.Script.String()}
	}
	i, ok := d.relations.termIndex[t]
	if !ok {
		return nil, &ierr.DictionaryError{Cause: errTermNotFound, Term: t.Script.String()}
	}
	return d.relations.byKind[i][kind], nil
}

// AllRelations returns every relation kind computed for t, keyed by
// canonical relation key.
func (d *Dictionary) AllRelations(t *Term) (map[string][]*Term, error) {
	if d.relations == nil {
		return nil, &ierr.DictionaryError{Cause: errNotComputed, Term: t.Script.String()}
	}
	i, ok := d.relations.termIndex[t]
	if !ok {
		return nil, &ierr.DictionaryError{Cause: errTermNotFound, Term: t.Script.String()}
	}
	out := make(map[string][]*Term, len(d.relations.byKind[i]))
	for k, v := range d.relations.byKind[i] {
		out[k] = v
	}
	return out, nil
}

// VisibleRelations is supplemented feature #1: AllRelations filtered by
// t's Inhibitions, leaving the underlying index untouched. Mirrors
// handlers/dictionary/relations.py's get_relations.
func (d *Dictionary) VisibleRelations(t *Term) (map[string][]*Term, error) {
	all, err := d.AllRelations(t)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]*Term, len(all))
	for k, v := range all {
		if t.Inhibits(k) {
			continue
		}
		out[k] = v
	}
	return out, nil
}
