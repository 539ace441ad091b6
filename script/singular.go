package script

import "sort"

// IsSingular reports whether s denotes exactly one singular sequence,
// i.e. contains no additive node anywhere in its tree. Because
// NewAdditive always collapses a single-child union down to that child,
// an Additive node always has two or more children and therefore a
// cardinal of at least two, so this reduces to a cardinal check.
func (s *Script) IsSingular() bool {
	return s.cardinal == 1
}

// SingularSequences enumerates every singular sequence s denotes, in
// canonical order. The cardinal was already checked against
// MaxSingularSequences when s was constructed, so this only re-checks
// defensively before allocating the result slice.
func (s *Script) SingularSequences() ([]*Script, error) {
	if s.cardinal > MaxSingularSequences {
		return nil, &TooManySingularSequencesError{Cardinal: s.cardinal}
	}
	out := s.singularSequences()
	sortScripts(out)
	return out, nil
}

func (s *Script) singularSequences() []*Script {
	switch s.kind {
	case kindNull:
		return []*Script{s}
	case kindMultiplicative:
		if s.layer == 0 {
			return []*Script{s}
		}
		subs := s.substance.singularSequences()
		atts := s.attribute.singularSequences()
		modes := s.mode.singularSequences()
		out := make([]*Script, 0, len(subs)*len(atts)*len(modes))
		for _, sub := range subs {
			for _, att := range atts {
				for _, mod := range modes {
					ss, err := NewMultiplicative(sub, att, mod)
					if err != nil {
						continue
					}
					out = append(out, ss)
				}
			}
		}
		return out
	case kindAdditive:
		out := make([]*Script, 0, s.cardinal)
		for _, c := range s.children {
			out = append(out, c.singularSequences()...)
		}
		return out
	}
	return nil
}

func sortScripts(ss []*Script) {
	sort.Slice(ss, func(i, j int) bool { return Less(ss[i], ss[j]) })
}

// Contains reports whether every singular sequence of other is also a
// singular sequence of s (invariant 6: a ∈ b iff sing(a) ⊆ sing(b)).
// Hash-consing means singular sequences of either side are comparable by
// pointer identity, so this is a set-membership scan rather than a
// structural comparison.
func (s *Script) Contains(other *Script) (bool, error) {
	supersetSeqs, err := s.SingularSequences()
	if err != nil {
		return false, err
	}
	subsetSeqs, err := other.SingularSequences()
	if err != nil {
		return false, err
	}
	superset := make(map[*Script]bool, len(supersetSeqs))
	for _, ss := range supersetSeqs {
		superset[ss] = true
	}
	for _, ss := range subsetSeqs {
		if !superset[ss] {
			return false, nil
		}
	}
	return true, nil
}
