package dictionary

import "errors"

var (
	errAlreadyClosed       = errors.New("dictionary is read-only after ComputeRelations")
	errDuplicateTerm       = errors.New("script already admitted")
	errRootNotParadigm     = errors.New("root term must be a paradigm")
	errRootCollision       = errors.New("root's singular sequences intersect an existing root")
	errAmbiguousRoot       = errors.New("script is contained in more than one root")
	errNoRoot              = errors.New("script is not contained in any root")
	errDuplicateTranslation = errors.New("translation already used by another term in this language")
	errTermNotFound        = errors.New("no term registered for script")
	errNotComputed         = errors.New("relations have not been computed yet")
)
