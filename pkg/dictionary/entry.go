// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dictionary

import "github.com/pdiddy/dicom-dict/pkg/vr"

// Entry describes one attribute in a data dictionary.
type Entry struct {
	// Tag is the attribute tag or tag range.
	Tag TagRange `json:"tag" yaml:"tag"`

	// Alias is the keyword of the attribute, with no spaces, usually in
	// UpperCamelCase (e.g. "PatientName").
	Alias string `json:"alias" yaml:"alias"`

	// VR is the typical value representation. Some attributes admit more
	// than one; this is the first listed by the standard.
	VR vr.VR `json:"vr" yaml:"vr"`
}

// DataDictionary converts aliases to tags and back. Absence is reported
// through the boolean, never as an error.
type DataDictionary interface {
	// ByName fetches an entry by its alias (e.g. "SOPInstanceUID").
	// Aliases are case sensitive.
	ByName(name string) (Entry, bool)

	// ByTag fetches an entry by its tag.
	ByTag(tag Tag) (Entry, bool)
}

// TagByName resolves an alias to the tag of its entry in d.
func TagByName(d DataDictionary, name string) (Tag, bool) {
	e, ok := d.ByName(name)
	if !ok {
		return Tag{}, false
	}
	return e.Tag.Inner(), true
}

// Chain returns a dictionary that consults each of dicts in order and
// returns the first hit. It is typically used to put a private dictionary
// in front of the standard one.
func Chain(dicts ...DataDictionary) DataDictionary {
	return chain(dicts)
}

type chain []DataDictionary

func (c chain) ByName(name string) (Entry, bool) {
	for _, d := range c {
		if e, ok := d.ByName(name); ok {
			return e, true
		}
	}
	return Entry{}, false
}

func (c chain) ByTag(tag Tag) (Entry, bool) {
	for _, d := range c {
		if e, ok := d.ByTag(tag); ok {
			return e, true
		}
	}
	return Entry{}, false
}
