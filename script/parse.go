package script

import "strings"

// parser walks a script's textual form left to right. It never backtracks
// across a layer mark: once a mul has consumed its closing mark, the
// position it leaves behind is final, which is what lets Parse run in
// linear time over the input.
type parser struct {
	text string
	pos  int
}

// Parse builds the canonical Script denoted by s, accepting either form of
// every remarkable abbreviation and an optional pair of enclosing '['
// ']'. It returns an *IncompatibleLayersError, *InvalidCharacterError,
// *InvalidScriptError or *TooManySingularSequencesError (see errors.go) on
// malformed input; no partial Script is interned on failure.
func Parse(s string) (*Script, error) {
	text := s
	if strings.HasPrefix(text, "[") {
		if !strings.HasSuffix(text, "]") {
			return nil, &InvalidScriptError{Text: s, Reason: "unterminated '['"}
		}
		text = text[1 : len(text)-1]
	}
	if text == "" {
		return nil, &InvalidScriptError{Text: s, Reason: "empty script"}
	}
	p := &parser{text: text}
	root, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	if p.pos != len(p.text) {
		return nil, &InvalidScriptError{Text: s, Reason: "trailing input after a complete script"}
	}
	return root, nil
}

func (p *parser) eof() bool {
	return p.pos >= len(p.text)
}

func (p *parser) at(i int) (byte, bool) {
	if p.pos+i >= len(p.text) {
		return 0, false
	}
	return p.text[p.pos+i], true
}

// parseAdd parses the grammar's `add := mul ('+' mul)*`, folding the
// result through NewAdditive so a chain of mul's at the same layer
// canonicalizes into one Additive script.
func (p *parser) parseAdd() (*Script, error) {
	first, err := p.parseMul()
	if err != nil {
		return nil, err
	}
	children := []*Script{first}
	for {
		c, ok := p.at(0)
		if !ok || c != '+' {
			break
		}
		p.pos++
		next, err := p.parseMul()
		if err != nil {
			return nil, err
		}
		children = append(children, next)
	}
	if len(children) == 1 {
		return children[0], nil
	}
	combined, err := NewAdditive(children...)
	if err != nil {
		return nil, err
	}
	return combined, nil
}

// parseMul parses the grammar's `mul := (prim | paren) layer-mark`. It
// tries, in order: a two-letter remarkable multiplication code, a
// one-letter remarkable multiplication code, a one-letter remarkable
// addition code, a bare primitive character, and finally falls back to
// a paren of 1-3 nested `add` productions.
func (p *parser) parseMul() (*Script, error) {
	if p.eof() {
		return nil, &InvalidScriptError{Text: p.text, Reason: "unexpected end of input"}
	}

	if c1, ok := p.at(0); ok {
		if c2, ok2 := p.at(1); ok2 {
			if pair, ok3 := remarkableMultiplicationByCode2[string([]byte{c1, c2})]; ok3 {
				if mark, ok4 := p.at(2); ok4 && mark == layerMarks[1] {
					sub, err := NewPrimitive(pair[0])
					if err != nil {
						return nil, err
					}
					att, err := NewPrimitive(pair[1])
					if err != nil {
						return nil, err
					}
					mult, err := NewMultiplicative(sub, att, nil)
					if err != nil {
						return nil, err
					}
					p.pos += 3
					return mult, nil
				}
			}
		}
		if pair, ok3 := remarkableMultiplicationByCode1[string([]byte{c1})]; ok3 {
			if mark, ok4 := p.at(1); ok4 && mark == layerMarks[1] {
				sub, err := NewPrimitive(pair[0])
				if err != nil {
					return nil, err
				}
				att, err := NewPrimitive(pair[1])
				if err != nil {
					return nil, err
				}
				mult, err := NewMultiplicative(sub, att, nil)
				if err != nil {
					return nil, err
				}
				p.pos += 2
				return mult, nil
			}
		}
		if members, ok3 := remarkableAddition[c1]; ok3 {
			if mark, ok4 := p.at(1); ok4 && mark == layerMarks[0] {
				children := make([]*Script, len(members))
				for i := 0; i < len(members); i++ {
					prim, err := NewPrimitive(members[i])
					if err != nil {
						return nil, err
					}
					children[i] = prim
				}
				add, err := NewAdditive(children...)
				if err != nil {
					return nil, err
				}
				p.pos += 2
				return add, nil
			}
		}
		if isPrimitive(c1) {
			if mark, ok4 := p.at(1); ok4 && mark == layerMarks[0] {
				prim, err := NewPrimitive(c1)
				if err != nil {
					return nil, err
				}
				p.pos += 2
				return prim, nil
			}
		}
	}

	return p.parseParen()
}

// parseParen parses 1-3 nested `add` productions that must all share a
// layer, followed by that layer's closing mark, and builds the
// layer+1 multiplicative they denote.
func (p *parser) parseParen() (*Script, error) {
	c1, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	layer := c1.layer
	if layer+1 > MaxLayer {
		return nil, &InvalidScriptError{Text: p.text, Reason: "would exceed max layer"}
	}
	mark := layerMarks[layer+1]

	if b, ok := p.at(0); ok && b == mark {
		p.pos++
		return NewMultiplicative(c1, newNull(layer), newNull(layer))
	}

	c2, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	if c2.layer != layer {
		return nil, &IncompatibleLayersError{Want: layer, Got: c2.layer}
	}
	if b, ok := p.at(0); ok && b == mark {
		p.pos++
		return NewMultiplicative(c1, c2, newNull(layer))
	}

	c3, err := p.parseAdd()
	if err != nil {
		return nil, err
	}
	if c3.layer != layer {
		return nil, &IncompatibleLayersError{Want: layer, Got: c3.layer}
	}
	b, ok := p.at(0)
	if !ok || b != mark {
		got := byte(0)
		if ok {
			got = b
		}
		return nil, &InvalidScriptError{Text: p.text, Reason: "expected layer mark " + string(mark) + ", got " + string(got)}
	}
	p.pos++
	return NewMultiplicative(c1, c2, c3)
}
