// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types holds configuration and record types shared across stages.
package types

// RetiredMarker is the notes-column text for retired attributes.
const RetiredMarker = "RET"

// RawRecord is one unclassified row of the data element registry table.
// Optional columns are nil when the cell carried no text.
type RawRecord struct {
	// Tag is the tag text as printed, e.g. "(0010,0010)" or "(60xx,3000)".
	Tag string `json:"tag" yaml:"tag"`

	// Name is the attribute name, e.g. "Patient's Name".
	Name *string `json:"name" yaml:"name"`

	// Alias is the keyword, e.g. "PatientName".
	Alias *string `json:"alias" yaml:"alias"`

	// VR is the value representation column, e.g. "PN" or "OB or OW".
	VR *string `json:"vr" yaml:"vr"`

	// VM is the value multiplicity column, e.g. "1-n".
	VM *string `json:"vm" yaml:"vm"`

	// Obs holds the notes column, e.g. "RET". It is omitted when absent.
	Obs *string `json:"obs,omitempty" yaml:"obs,omitempty"`
}

// Retired reports whether the notes column carries the retired marker.
func (r RawRecord) Retired() bool {
	return r.Obs != nil && *r.Obs == RetiredMarker
}
