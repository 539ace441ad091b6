// Package table implements the L3 layer: the 2-D paradigm table
// projector that walks a USL across two paradigmatic axes.
package table

import (
	"fmt"
	"strings"

	ierr "github.com/ieml-core/ieml/error"
	"github.com/ieml-core/ieml/usl"
)

// Path is an address of the shape ">role>R>subkey" (spec.md §4.4):
// a sequence of segments, each interpreted as a role or polymorpheme
// slot while walking a USL tree.
type Path []string

// ParsePath splits the textual address form ">role>R>subkey" into its
// segments.
func ParsePath(s string) (Path, error) {
	if !strings.HasPrefix(s, ">") {
		return nil, &ierr.PathError{Cause: fmt.Errorf("path must start with '>'"), Path: s}
	}
	parts := strings.Split(s, ">")[1:]
	if len(parts) == 0 {
		return nil, &ierr.PathError{Cause: fmt.Errorf("empty path"), Path: s}
	}
	return Path(parts), nil
}

func (p Path) String() string {
	return ">" + strings.Join([]string(p), ">")
}

// resolve walks u along p and returns the Polymorpheme addressed there.
// Into a usl.SyntagmaticFunction, the first segment names a top-level
// role (looked up in its role-address index); the next segment,
// "flexion" or "content", selects that actor's polymorpheme, and a
// missing subkey selects content. Any other subkey is a PathError.
func resolve(u usl.USL, p Path) (*usl.Polymorpheme, error) {
	switch v := u.(type) {
	case *usl.Polymorpheme:
		return v, nil
	case *usl.Lexeme:
		return resolveLexemeSubkey(v, p)
	case *usl.SyntagmaticFunction:
		return resolveFunction(v, p)
	default:
		return nil, &ierr.PathError{Cause: fmt.Errorf("unsupported USL shape %T for path resolution", u), Path: p.String()}
	}
}

func resolveLexemeSubkey(l *usl.Lexeme, p Path) (*usl.Polymorpheme, error) {
	if len(p) == 0 {
		return l.Content, nil
	}
	switch p[0] {
	case "flexion":
		return l.Flexion, nil
	case "content":
		return l.Content, nil
	default:
		return nil, &ierr.PathError{Cause: fmt.Errorf("lexeme has no subkey %q", p[0]), Path: p.String()}
	}
}

func resolveFunction(f *usl.SyntagmaticFunction, p Path) (*usl.Polymorpheme, error) {
	if len(p) == 0 {
		return nil, &ierr.PathError{Cause: fmt.Errorf("path does not reach a lexeme")}
	}
	role := usl.Role(p[0])
	sub, ok := f.Lookup(usl.Address{role})
	if !ok {
		return nil, &ierr.PathError{Cause: fmt.Errorf("no sub-function addressed by role %s", role), Path: p.String()}
	}
	rest := p[1:]
	switch v := sub.(type) {
	case *usl.Actant:
		return resolveLexemeSubkey(v.Actor, rest)
	case *usl.IndependantQuality:
		return resolveLexemeSubkey(v.Actor, rest)
	default:
		return nil, &ierr.PathError{Cause: fmt.Errorf("unexpected sub-function shape %T", sub), Path: p.String()}
	}
}

// UslTable2D is the matrix projection of u across row_path and
// col_path: row_path and col_path are deferenced against u to obtain
// two Polymorphemes, whose singular-sequence enumerations become the
// table's rows and columns.
type UslTable2D struct {
	Rows  []*usl.Polymorpheme
	Cols  []*usl.Polymorpheme
	Cells [][]usl.USL
}

// NewUslTable2D builds the table. It guarantees rectangularity: every
// row has len(Cols) cells, and dimensions equal
// (rowPath.cardinal, colPath.cardinal), per spec.md §4.4 and the
// testable property in spec.md §8.10.
func NewUslTable2D(u usl.USL, rowPath, colPath Path) (*UslTable2D, error) {
	rowPm, err := resolve(u, rowPath)
	if err != nil {
		return nil, err
	}
	colPm, err := resolve(u, colPath)
	if err != nil {
		return nil, err
	}

	rows, err := rowPm.SingularVariants()
	if err != nil {
		return nil, err
	}
	cols, err := colPm.SingularVariants()
	if err != nil {
		return nil, err
	}

	cells := make([][]usl.USL, len(rows))
	for i, r := range rows {
		row := make([]usl.USL, len(cols))
		for j, c := range cols {
			cell, err := substitute(u, rowPath, r, colPath, c)
			if err != nil {
				return nil, err
			}
			row[j] = cell
		}
		cells[i] = row
	}

	return &UslTable2D{Rows: rows, Cols: cols, Cells: cells}, nil
}

// substitute returns u with row_path's addressed polymorpheme replaced
// by rowVal and col_path's by colVal. Because the USL tree here is
// built from immutable, hash-consed values, substitution is a
// reconstruction of the path's owning node rather than an in-place
// mutation.
func substitute(u usl.USL, rowPath Path, rowVal *usl.Polymorpheme, colPath Path, colVal *usl.Polymorpheme) (usl.USL, error) {
	switch v := u.(type) {
	case *usl.Polymorpheme:
		if len(rowPath) == 0 {
			return rowVal, nil
		}
		if len(colPath) == 0 {
			return colVal, nil
		}
		return v, nil
	case *usl.Lexeme:
		return substituteLexeme(v, rowPath, rowVal, colPath, colVal)
	case *usl.SyntagmaticFunction:
		return substituteFunction(v, rowPath, rowVal, colPath, colVal)
	default:
		return nil, &ierr.PathError{Cause: fmt.Errorf("unsupported USL shape %T for substitution", u)}
	}
}

func substituteLexeme(l *usl.Lexeme, rowPath Path, rowVal *usl.Polymorpheme, colPath Path, colVal *usl.Polymorpheme) (usl.USL, error) {
	flexion, content := l.Flexion, l.Content
	if matchesSubkey(rowPath, "flexion") {
		flexion = rowVal
	} else if matchesSubkey(rowPath, "content") || len(rowPath) == 0 {
		content = rowVal
	}
	if matchesSubkey(colPath, "flexion") {
		flexion = colVal
	} else if matchesSubkey(colPath, "content") || len(colPath) == 0 {
		content = colVal
	}
	return usl.NewLexeme(flexion, content)
}

func matchesSubkey(p Path, key string) bool {
	return len(p) == 1 && p[0] == key
}

func substituteFunction(f *usl.SyntagmaticFunction, rowPath Path, rowVal *usl.Polymorpheme, colPath Path, colVal *usl.Polymorpheme) (usl.USL, error) {
	entries := collectEntries(f)
	entries, err := applySubstitution(entries, rowPath, rowVal)
	if err != nil {
		return nil, err
	}
	entries, err = applySubstitution(entries, colPath, colVal)
	if err != nil {
		return nil, err
	}
	if f.Process != nil {
		return usl.FromList(entries, usl.FunctionProcess)
	}
	return usl.FromList(entries, usl.FunctionActant)
}

// collectEntries flattens a SyntagmaticFunction back into the
// AddressedLexeme list FromList builds it from, the inverse of
// assembly, so substitution can rebuild the tree with one lexeme
// replaced.
func collectEntries(f *usl.SyntagmaticFunction) []usl.AddressedLexeme {
	var out []usl.AddressedLexeme
	if f.Process != nil {
		for _, a := range f.Process.Actants {
			out = append(out, collectActant(a, usl.Address{a.Role})...)
		}
		return out
	}
	if f.Actant != nil {
		out = append(out, collectActant(f.Actant, usl.Address{f.Actant.Role})...)
	}
	return out
}

func collectActant(a *usl.Actant, addr usl.Address) []usl.AddressedLexeme {
	out := []usl.AddressedLexeme{{Address: append(usl.Address{}, addr...), Actor: a.Actor}}
	if a.Dependant != nil {
		depAddr := append(append(usl.Address{}, addr...), usl.RoleDependantQuality)
		out = append(out, collectActant(a.Dependant, depAddr)...)
	}
	for _, iq := range a.Independants {
		iqAddr := append(append(usl.Address{}, addr...), usl.RoleIndependantQuality)
		out = append(out, usl.AddressedLexeme{Address: iqAddr, Actor: iq.Actor})
	}
	return out
}

// applySubstitution replaces the lexeme addressed by path with one
// whose flexion/content carries newVal, leaving every other entry as is.
func applySubstitution(entries []usl.AddressedLexeme, path Path, newVal *usl.Polymorpheme) ([]usl.AddressedLexeme, error) {
	if len(path) == 0 {
		return entries, nil
	}
	targetAddr := usl.Address{}
	for _, seg := range path[:len(path)-1] {
		targetAddr = append(targetAddr, usl.Role(seg))
	}
	subkey := path[len(path)-1]
	if subkey != "flexion" && subkey != "content" {
		targetAddr = append(targetAddr, usl.Role(subkey))
		subkey = "content"
	}

	found := false
	out := make([]usl.AddressedLexeme, len(entries))
	for i, e := range entries {
		out[i] = e
		if addressEqual(e.Address, targetAddr) {
			lex, err := substituteLexemeSubkey(e.Actor, subkey, newVal)
			if err != nil {
				return nil, err
			}
			out[i].Actor = lex
			found = true
		}
	}
	if !found {
		return nil, &ierr.PathError{Cause: fmt.Errorf("no entry addressed by %s", path), Path: path.String()}
	}
	return out, nil
}

func substituteLexemeSubkey(l *usl.Lexeme, subkey string, val *usl.Polymorpheme) (*usl.Lexeme, error) {
	if subkey == "flexion" {
		return usl.NewLexeme(val, l.Content)
	}
	return usl.NewLexeme(l.Flexion, val)
}

func addressEqual(a, b usl.Address) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
