package dictionary

import (
	"sort"

	ierr "github.com/ieml-core/ieml/error"
	"github.com/ieml-core/ieml/script"
	"gopkg.in/yaml.v3"
)

// ParadigmDocument is the minimal persistence shape for a non-root
// member term, per spec.md §6.
type ParadigmDocument struct {
	Paradigm    string            `yaml:"paradigm"`
	Translation map[string]string `yaml:"translation"`
}

// RootDocument is the keyed document persisted per root paradigm, per
// spec.md §6: `{ translation, inhibitions, paradigms }`.
type RootDocument struct {
	Translation map[string]string  `yaml:"translation"`
	Inhibitions []string           `yaml:"inhibitions"`
	Paradigms   []ParadigmDocument `yaml:"paradigms"`
}

// Document is the full on-disk shape: one RootDocument per root
// paradigm script, keyed by that script's canonical text.
type Document map[string]RootDocument

// MarshalYAML renders d as the persistence shape of spec.md §6. Disk
// format (this file's bytes vs. JSON or anything else) is left to the
// host; this only defines the in-memory shape YAML round-trips.
func (d *Dictionary) MarshalYAML() (Document, error) {
	doc := Document{}
	for _, root := range d.roots {
		members := make([]ParadigmDocument, 0)
		for _, t := range d.byScript {
			if t.Root == root && t != root {
				members = append(members, ParadigmDocument{
					Paradigm:    t.Script.String(),
					Translation: t.Translations,
				})
			}
		}
		sort.Slice(members, func(i, j int) bool { return members[i].Paradigm < members[j].Paradigm })
		doc[root.Script.String()] = RootDocument{
			Translation: root.Translations,
			Inhibitions: inhibitionList(root.Inhibitions),
			Paradigms:   members,
		}
	}
	return doc, nil
}

func inhibitionList(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// SaveYAML serializes the dictionary to the spec.md §6 shape.
func (d *Dictionary) SaveYAML() ([]byte, error) {
	doc, err := d.MarshalYAML()
	if err != nil {
		return nil, err
	}
	return yaml.Marshal(doc)
}

// LoadYAML parses the spec.md §6 shape and admits every root it
// describes, in sorted order of the roots' script texts, each followed
// by its members in document order, then leaves the dictionary open for
// further AddTerm calls (the caller decides when to ComputeRelations).
func LoadYAML(data []byte) (*Dictionary, error) {
	var doc Document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, &ierr.DictionaryError{Cause: err}
	}

	rootTexts := make([]string, 0, len(doc))
	for k := range doc {
		rootTexts = append(rootTexts, k)
	}
	sort.Strings(rootTexts)

	d := New()
	for _, rootText := range rootTexts {
		rd := doc[rootText]
		rootScript, err := script.Parse(rootText)
		if err != nil {
			return nil, &ierr.DictionaryError{Cause: err, Term: rootText}
		}
		if _, err := d.AddTerm(rootScript, true, rd.Inhibitions, rd.Translation); err != nil {
			return nil, err
		}
		for _, pd := range rd.Paradigms {
			memberScript, err := script.Parse(pd.Paradigm)
			if err != nil {
				return nil, &ierr.DictionaryError{Cause: err, Term: pd.Paradigm}
			}
			if _, err := d.AddTerm(memberScript, false, nil, pd.Translation); err != nil {
				return nil, err
			}
		}
	}
	return d, nil
}
