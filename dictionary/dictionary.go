package dictionary

import (
	"sort"

	ierr "github.com/ieml-core/ieml/error"
	"github.com/ieml-core/ieml/script"
)

// Dictionary is a set of Terms partitioned into root paradigms. It is
// mutable only during the load phase; Dictionary.ComputeRelations locks
// in the index and rejects any further AddTerm call, mirroring the
// source's load -> add_term* -> compute_relations -> read-only
// lifecycle (spec.md §5).
type Dictionary struct {
	roots    []*Term
	byScript map[*script.Script]*Term
	index    []*Term // sorted by script.Less once ComputeRelations has run

	relations *relationIndex
	closed    bool
}

// New returns an empty, loadable Dictionary.
func New() *Dictionary {
	return &Dictionary{
		byScript: map[*script.Script]*Term{},
	}
}

// Term returns the Term registered for s, if any.
func (d *Dictionary) Term(s *script.Script) (*Term, bool) {
	t, ok := d.byScript[s]
	return t, ok
}

// Terms returns every term in the dictionary. Before ComputeRelations
// has run the order is unspecified; afterwards it is the canonical
// script.Less order used to assign Term.Index.
func (d *Dictionary) Terms() []*Term {
	if d.index != nil {
		out := make([]*Term, len(d.index))
		copy(out, d.index)
		return out
	}
	out := make([]*Term, 0, len(d.byScript))
	for _, t := range d.byScript {
		out = append(out, t)
	}
	return out
}

// Roots returns every root paradigm, in admission order.
func (d *Dictionary) Roots() []*Term {
	out := make([]*Term, len(d.roots))
	copy(out, d.roots)
	return out
}

// AddTerm admits s into the dictionary. If root is true, s must be a
// paradigm (cardinal > 1) and its singular sequences must be disjoint
// from every existing root's; it becomes a fresh root with no members
// yet. If root is false, AddTerm finds the unique existing root whose
// script contains s and rejects admission if zero or more than one root
// qualifies. Translations are validated against every other term
// already admitted: two terms can never share a translation string in
// the same language.
func (d *Dictionary) AddTerm(s *script.Script, root bool, inhibitions []string, translations map[string]string) (*Term, error) {
	if d.closed {
		return nil, &ierr.DictionaryError{Cause: errAlreadyClosed, Term: s.String()}
	}
	if _, exists := d.byScript[s]; exists {
		return nil, &ierr.DictionaryError{Cause: errDuplicateTerm, Term: s.String()}
	}
	if err := d.checkTranslations(translations); err != nil {
		return nil, err
	}

	t := &Term{
		Script:       s,
		Translations: copyTranslations(translations),
		Inhibitions:  toSet(inhibitions),
	}

	if root {
		if !s.Paradigm() {
			return nil, &ierr.DictionaryError{Cause: errRootNotParadigm, Term: s.String()}
		}
		for _, r := range d.roots {
			disjoint, err := disjointSequences(s, r.Script)
			if err != nil {
				return nil, &ierr.DictionaryError{Cause: err, Term: s.String()}
			}
			if !disjoint {
				return nil, &ierr.DictionaryError{Cause: errRootCollision, Term: s.String()}
			}
		}
		if !s.Paradigm() {
			return nil, &ierr.DictionaryError{Cause: errRootNotParadigm, Term: s.String()}
		}
		t.Root = t
		d.roots = append(d.roots, t)
	} else {
		var owner *Term
		for _, r := range d.roots {
			contains, err := r.Script.Contains(s)
			if err != nil {
				return nil, &ierr.DictionaryError{Cause: err, Term: s.String()}
			}
			if contains {
				if owner != nil {
					return nil, &ierr.DictionaryError{Cause: errAmbiguousRoot, Term: s.String()}
				}
				owner = r
			}
		}
		if owner == nil {
			return nil, &ierr.DictionaryError{Cause: errNoRoot, Term: s.String()}
		}
		t.Root = owner
	}

	d.byScript[s] = t
	return t, nil
}

func disjointSequences(a, b *script.Script) (bool, error) {
	aSeqs, err := a.SingularSequences()
	if err != nil {
		return false, err
	}
	bSeqs, err := b.SingularSequences()
	if err != nil {
		return false, err
	}
	seen := make(map[*script.Script]bool, len(aSeqs))
	for _, s := range aSeqs {
		seen[s] = true
	}
	for _, s := range bSeqs {
		if seen[s] {
			return false, nil
		}
	}
	return true, nil
}

func (d *Dictionary) checkTranslations(translations map[string]string) error {
	for lang, text := range translations {
		for _, existing := range d.byScript {
			if other, ok := existing.Translations[lang]; ok && other == text {
				return &ierr.DictionaryError{Cause: errDuplicateTranslation, Term: existing.Script.String()}
			}
		}
	}
	return nil
}

func copyTranslations(in map[string]string) map[string]string {
	out := make(map[string]string, len(in))
	for k, v := range in {
		out[k] = v
	}
	return out
}

func toSet(in []string) map[string]bool {
	out := make(map[string]bool, len(in))
	for _, s := range in {
		out[s] = true
	}
	return out
}

// ComputeRelations locks the dictionary, assigns each term's Index in
// canonical script order, and builds the full relation index described
// in spec.md §4.2. It is an error to call AddTerm afterwards.
func (d *Dictionary) ComputeRelations() error {
	index := make([]*Term, 0, len(d.byScript))
	for _, t := range d.byScript {
		index = append(index, t)
	}
	sort.Slice(index, func(i, j int) bool { return script.Less(index[i].Script, index[j].Script) })
	for i, t := range index {
		t.Index = i
		t.defined = true
	}
	d.index = index
	d.closed = true

	rel, err := buildRelationIndex(index)
	if err != nil {
		return err
	}
	d.relations = rel
	return nil
}
