package script

import "bytes"

// Less defines the strict total order over scripts used for dictionary
// indexing and for canonicalizing additive operand order. It compares,
// in sequence: layer, cardinal (number of singular sequences), at layer
// 0 the primitive's bit value, the order-key bytes (primitive values,
// not the printed text), at layer > 0 the children pairwise, a kind
// tie-break (Null < Multiplicative < Additive), and finally the
// canonical text.
func Less(a, b *Script) bool {
	if a == b {
		return false
	}
	if a.layer != b.layer {
		return a.layer < b.layer
	}
	ca, cb := a.Cardinal(), b.Cardinal()
	if ca != cb {
		return ca < cb
	}
	if a.layer == 0 {
		pa, pb := primitiveValue[a.primitive], primitiveValue[b.primitive]
		if pa != pb {
			return pa < pb
		}
	}
	if c := bytes.Compare(a.orderKey, b.orderKey); c != 0 {
		return c < 0
	}
	if a.layer > 0 {
		if c := compareChildren(a, b); c != 0 {
			return c < 0
		}
	}
	if a.kind != b.kind {
		// A multiplicative has fewer additive degrees of freedom than an
		// additive with the same order key, so it sorts first.
		return a.kind < b.kind
	}
	return a.text < b.text
}

// compareChildren breaks ties between same-layer, same-cardinal,
// same-order-key scripts by comparing their children pairwise: a
// multiplicative's (substance, attribute, mode) in order, or an
// additive's sorted children in order. It returns <0, 0, or >0.
func compareChildren(a, b *Script) int {
	aKids := scriptChildren(a)
	bKids := scriptChildren(b)
	for i := 0; i < len(aKids) && i < len(bKids); i++ {
		if aKids[i] == bKids[i] {
			continue
		}
		if Less(aKids[i], bKids[i]) {
			return -1
		}
		return 1
	}
	return len(aKids) - len(bKids)
}

func scriptChildren(s *Script) []*Script {
	switch s.kind {
	case kindMultiplicative:
		if s.layer == 0 {
			return nil
		}
		return []*Script{s.substance, s.attribute, s.mode}
	case kindAdditive:
		return s.children
	default:
		return nil
	}
}
