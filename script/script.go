// Package script implements the layered algebra of IEML scripts: the
// Null/Multiplicative/Additive tree type, its canonical textual form,
// its total order, and the enumeration of the singular sequences a
// script denotes. Every Script is hash-consed: two calls that build the
// same canonical text always return the same *Script pointer, so
// identity comparison (==) is equivalent to value equality.
package script

import (
	"bytes"
	"fmt"
	"sort"
)

// Script is an immutable node in the IEML script algebra. The zero value
// is not valid; every Script in circulation was built by Parse, Null,
// NewPrimitive, NewMultiplicative or NewAdditive and interned.
type Script struct {
	kind  kind
	layer int

	// primitive is set only for kind == kindMultiplicative at layer 0,
	// holding one of E, U, A, S, B, T.
	primitive byte

	// substance, attribute, mode are set only for kind == kindMultiplicative
	// at layer > 0; each is a layer-(n-1) Script.
	substance *Script
	attribute *Script
	mode      *Script

	// children holds the additive operands, sorted in canonical order,
	// for kind == kindAdditive. All children share the same layer.
	children []*Script

	// text is the canonical printable form and the hash-consing key.
	text string

	// orderKey is the byte sequence used for the total order, distinct
	// from text: it encodes primitive values rather than remarkable
	// abbreviations, so two scripts that print differently because one
	// used a remarkable code still compare the way their expansion would.
	orderKey []byte

	class    Class
	cardinal int

	// empty is true if s is built entirely out of the E primitive,
	// following the source's notion of an "empty" subtree used to decide
	// how much of a multiplicative's mode/attribute gets rendered.
	empty bool
}

// Cardinal returns the number of singular sequences s denotes.
func (s *Script) Cardinal() int {
	return s.cardinal
}

// Layer returns the script's layer, 0 through MaxLayer.
func (s *Script) Layer() int {
	return s.layer
}

// IsNull reports whether s is the degenerate empty value of its layer.
// At layer 0, Null and the primitive E coincide (both render "E:"), so
// this also matches the bare E primitive.
func (s *Script) IsNull() bool {
	return s.kind == kindNull || (s.layer == 0 && s.primitive == 'E')
}

// IsMultiplicative reports whether s is a substance/attribute/mode triple
// (or a bare layer-0 primitive).
func (s *Script) IsMultiplicative() bool {
	return s.kind == kindMultiplicative
}

// IsAdditive reports whether s is a set-union of same-layer children.
func (s *Script) IsAdditive() bool {
	return s.kind == kindAdditive
}

// Primitive returns the layer-0 alphabet symbol and true if s is a bare
// primitive multiplicative (layer 0, no substance/attribute/mode).
func (s *Script) Primitive() (byte, bool) {
	if s.kind == kindMultiplicative && s.layer == 0 {
		return s.primitive, true
	}
	return 0, false
}

// Substance, Attribute, Mode return the three children of a layer>0
// multiplicative script. They are nil if s is not such a script.
func (s *Script) Substance() *Script { return s.substance }
func (s *Script) Attribute() *Script { return s.attribute }
func (s *Script) Mode() *Script      { return s.mode }

// Children returns the additive operands of s in canonical order. It
// returns nil if s is not additive.
func (s *Script) Children() []*Script {
	if s.kind != kindAdditive {
		return nil
	}
	out := make([]*Script, len(s.children))
	copy(out, s.children)
	return out
}

// Class reports whether s behaves as an AUXILIARY, VERB, or NOUN.
func (s *Script) Class() Class {
	return s.class
}

// Paradigm reports whether s denotes more than one singular sequence.
func (s *Script) Paradigm() bool {
	return s.cardinal > 1
}

// Empty reports whether s is built entirely out of the E primitive.
func (s *Script) Empty() bool {
	return s.empty
}

// Canonical returns the raw order key bytes used by Less, exposed for
// callers (dictionary containment matrices, tests) that want to compare
// scripts without going through String().
func (s *Script) Canonical() []byte {
	out := make([]byte, len(s.orderKey))
	copy(out, s.orderKey)
	return out
}

// String returns the canonical textual form of s. It is cheap: the
// form is computed once at construction time and cached.
func (s *Script) String() string {
	return s.text
}

// classOfPrimitive implements the layer-0 class assignment: E is the sole
// AUXILIARY primitive, {U,A} are VERB, {S,B,T} are NOUN.
func classOfPrimitive(p byte) Class {
	switch p {
	case 'E':
		return ClassAuxiliary
	case 'U', 'A':
		return ClassVerb
	default:
		return ClassNoun
	}
}

// classOfSet implements the additive class-propagation rule: the class
// of a union is the maximum (NOUN > VERB > AUXILIARY) of its members'.
func classOfSet(cs ...*Script) Class {
	best := ClassAuxiliary
	for _, c := range cs {
		if c != nil && c.class > best {
			best = c.class
		}
	}
	return best
}

// newNull builds (or fetches from the intern table) the Null script of
// the given layer. At layer 0, Null and the primitive E share a
// canonical form ("E:"), so this returns the same kind of node
// NewPrimitive('E') would, keeping Primitive() meaningful on it
// regardless of which constructor happens to run first.
func newNull(layer int) *Script {
	if layer == 0 {
		return intern(&Script{
			kind:      kindMultiplicative,
			layer:     0,
			primitive: 'E',
			text:      "E" + string(layerMarks[0]),
			orderKey:  []byte{primitiveValue['E']},
			class:     ClassAuxiliary,
			cardinal:  1,
			empty:     true,
		})
	}
	return intern(&Script{
		kind:     kindNull,
		layer:    layer,
		text:     nullText(layer),
		orderKey: bytes.Repeat([]byte{primitiveValue['E']}, pow3(layer)),
		class:    ClassAuxiliary,
		cardinal: 1,
		empty:    true,
	})
}

func pow3(n int) int {
	p := 1
	for i := 0; i < n; i++ {
		p *= 3
	}
	return p
}

// nullText renders the canonical text of the Null script at the given
// layer: the primitive 'E' followed by one layer mark per layer from 0
// up to and including layer. A layer-2 Null is thus "E" + mark(0) +
// mark(1) + mark(2).
func nullText(layer int) string {
	b := make([]byte, 0, layer+2)
	b = append(b, 'E')
	for l := 0; l <= layer; l++ {
		b = append(b, layerMarks[l])
	}
	return string(b)
}

// Null returns the Null script of the given layer, the degenerate value
// every layer above 0 collapses to when no sibling exists.
func Null(layer int) *Script {
	return newNull(layer)
}

// NewMultiplicative builds the layer-(n+1) multiplicative script whose
// substance, attribute and mode are the given layer-n children (mode may
// be nil, meaning Null(n)). It normalizes degenerate triples (all-Null
// collapses to Null(n+1)), detects the 25 remarkable two-primitive
// abbreviations, and interns the result.
func NewMultiplicative(substance, attribute, mode *Script) (*Script, error) {
	if substance == nil || attribute == nil {
		return nil, fmt.Errorf("script: multiplicative requires substance and attribute")
	}
	if substance.layer != attribute.layer {
		return nil, &IncompatibleLayersError{Want: substance.layer, Got: attribute.layer}
	}
	layer := substance.layer
	if mode == nil {
		mode = newNull(layer)
	} else if mode.layer != layer {
		return nil, &IncompatibleLayersError{Want: layer, Got: mode.layer}
	}
	if layer+1 > MaxLayer {
		return nil, &InvalidScriptError{Reason: fmt.Sprintf("would exceed max layer %d", MaxLayer)}
	}
	if substance.IsNull() && attribute.IsNull() && mode.IsNull() {
		return newNull(layer + 1), nil
	}
	cardinal := substance.cardinal * attribute.cardinal * mode.cardinal
	if cardinal > MaxSingularSequences {
		return nil, &TooManySingularSequencesError{Cardinal: cardinal}
	}
	return internMultiplicative(substance, attribute, mode, layer+1, cardinal), nil
}

func internMultiplicative(substance, attribute, mode *Script, layer, cardinal int) *Script {
	rendered := renderTriple(substance, attribute, mode)
	text := rendered + string(layerMarks[layer])
	if layer == 1 {
		if sp, ok := substance.Primitive(); ok {
			if ap, ok := attribute.Primitive(); ok && mode.IsNull() {
				if code, ok := remarkableMultiplication[[2]byte{sp, ap}]; ok {
					text = code + string(layerMarks[1])
				}
			}
		}
	}
	return intern(&Script{
		kind:      kindMultiplicative,
		layer:     layer,
		substance: substance,
		attribute: attribute,
		mode:      mode,
		text:      text,
		orderKey:  concatBytes(substance.orderKey, attribute.orderKey, mode.orderKey),
		class:     substance.class,
		cardinal:  cardinal,
		empty:     substance.empty && attribute.empty && mode.empty,
	})
}

// renderTriple prints a multiplicative's components, omitting trailing
// Null children: a paren prints 1-3 components (grammar §4.1), and a
// Null in trailing position carries no information a parser couldn't
// reconstruct from the layer mark alone. A Null mode is always dropped;
// attribute can only be dropped if mode is also dropped (a paren's
// components are positional, not named), so a non-Null mode forces
// attribute's text to be printed even when attribute itself is Null.
func renderTriple(substance, attribute, mode *Script) string {
	if mode.IsNull() {
		if attribute.IsNull() {
			return substance.text
		}
		return substance.text + attribute.text
	}
	return substance.text + attribute.text + mode.text
}

func concatBytes(bs ...[]byte) []byte {
	n := 0
	for _, b := range bs {
		n += len(b)
	}
	out := make([]byte, 0, n)
	for _, b := range bs {
		out = append(out, b...)
	}
	return out
}

// NewPrimitive builds the layer-0 multiplicative script for one of the
// six alphabet symbols.
func NewPrimitive(p byte) (*Script, error) {
	if !isPrimitive(p) {
		return nil, &InvalidCharacterError{Char: p}
	}
	return intern(&Script{
		kind:      kindMultiplicative,
		layer:     0,
		primitive: p,
		text:      string(p) + string(layerMarks[0]),
		orderKey:  []byte{primitiveValue[p]},
		class:     classOfPrimitive(p),
		cardinal:  1,
		empty:     p == 'E',
	}), nil
}

// NewAdditive builds the additive set-union of the given same-layer
// children, deduplicating and sorting them into canonical order. A
// single child collapses to that child; zero children is an error. At
// layer 0, a child set matching one of the four remarkable additions
// (O, M, F, I) renders as that single letter instead of a '+'-joined
// expansion.
func NewAdditive(children ...*Script) (*Script, error) {
	if len(children) == 0 {
		return nil, fmt.Errorf("script: additive requires at least one child")
	}
	layer := children[0].layer
	seen := map[string]*Script{}
	for _, c := range children {
		if c.layer != layer {
			return nil, &IncompatibleLayersError{Want: layer, Got: c.layer}
		}
		// Flatten nested additives, matching the source's set semantics:
		// an addition of additions is the union of their members.
		if c.IsAdditive() {
			for _, gc := range c.children {
				seen[gc.text] = gc
			}
			continue
		}
		seen[c.text] = c
	}
	flat := make([]*Script, 0, len(seen))
	for _, c := range seen {
		flat = append(flat, c)
	}
	if len(flat) == 1 {
		return flat[0], nil
	}
	sort.Slice(flat, func(i, j int) bool { return Less(flat[i], flat[j]) })
	cardinal := 0
	for _, c := range flat {
		cardinal += c.cardinal
	}
	if cardinal > MaxSingularSequences {
		return nil, &TooManySingularSequencesError{Cardinal: cardinal}
	}

	text := joinText(flat)
	var orderKey []byte
	allEmpty := true
	if layer == 0 {
		var value byte
		for _, c := range flat {
			if p, ok := c.Primitive(); ok {
				value |= primitiveValue[p]
			}
			allEmpty = allEmpty && c.empty
		}
		orderKey = []byte{value}
		if letter, ok := matchRemarkableAddition(flat); ok {
			text = string(letter) + string(layerMarks[0])
		}
	} else {
		parts := make([][]byte, len(flat))
		for i, c := range flat {
			parts[i] = c.orderKey
			allEmpty = allEmpty && c.empty
		}
		orderKey = concatBytes(parts...)
	}

	return intern(&Script{
		kind:     kindAdditive,
		layer:    layer,
		children: flat,
		text:     text,
		orderKey: orderKey,
		class:    classOfSet(flat...),
		cardinal: cardinal,
		empty:    allEmpty,
	}), nil
}

func joinText(ss []*Script) string {
	parts := make([]string, len(ss))
	for i, s := range ss {
		parts[i] = s.text
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += "+" + p
	}
	return out
}

// matchRemarkableAddition reports whether the given sorted, layer-0
// children are exactly the primitive set of one of the four remarkable
// additions, returning its letter code.
func matchRemarkableAddition(children []*Script) (byte, bool) {
	set := map[byte]bool{}
	for _, c := range children {
		p, ok := c.Primitive()
		if !ok {
			return 0, false
		}
		set[p] = true
	}
	for _, letter := range remarkableAdditionOrder {
		members := remarkableAddition[letter]
		if len(members) != len(set) {
			continue
		}
		match := true
		for i := 0; i < len(members); i++ {
			if !set[members[i]] {
				match = false
				break
			}
		}
		if match {
			return letter, true
		}
	}
	return 0, false
}
