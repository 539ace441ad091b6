package script

import "fmt"

// InvalidCharacterError reports a byte that is not one of the six
// alphabet symbols where a primitive was expected (see NewPrimitive).
type InvalidCharacterError struct {
	Char   byte
	Offset int
}

func (e *InvalidCharacterError) Error() string {
	return fmt.Sprintf("invalid character %q at offset %d", e.Char, e.Offset)
}

// InvalidScriptError reports a syntactically well-formed but
// algebraically malformed script: an unbalanced group, a reduce with
// the wrong number or layer of operands, or trailing input.
type InvalidScriptError struct {
	Text   string
	Reason string
}

func (e *InvalidScriptError) Error() string {
	return fmt.Sprintf("invalid script %q: %s", e.Text, e.Reason)
}

// IncompatibleLayersError reports an attempt to combine scripts from
// different layers where the algebra requires them to match.
type IncompatibleLayersError struct {
	Want, Got int
}

func (e *IncompatibleLayersError) Error() string {
	return fmt.Sprintf("incompatible layers: want %d, got %d", e.Want, e.Got)
}

// TooManySingularSequencesError reports that a script's cardinal would
// exceed MaxSingularSequences.
type TooManySingularSequencesError struct {
	Cardinal int
}

func (e *TooManySingularSequencesError) Error() string {
	return fmt.Sprintf("script denotes %d singular sequences, exceeding the limit of %d", e.Cardinal, MaxSingularSequences)
}
