// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"regexp"
	"strings"

	"github.com/pdiddy/dicom-dict/pkg/dictionary"
	"github.com/pdiddy/dicom-dict/pkg/types"
	"github.com/pdiddy/dicom-dict/pkg/vr"
)

// Skip says why a record produced no output.
type Skip int

const (
	// SkipNone means the record is kept.
	SkipNone Skip = iota
	// SkipNoAlias marks rows without a keyword (headings, decorative rows).
	SkipNoAlias
	// SkipRetired marks retired attributes when they are excluded.
	SkipRetired
	// SkipUnsupportedTag marks tags that are not a bracketed single,
	// group-wildcard or element-wildcard form.
	SkipUnsupportedTag
)

func (s Skip) String() string {
	switch s {
	case SkipNone:
		return "kept"
	case SkipNoAlias:
		return "no alias"
	case SkipRetired:
		return "retired"
	case SkipUnsupportedTag:
		return "unsupported tag"
	default:
		return "unknown"
	}
}

// seeNote is the VR column text of attributes whose VR depends on context.
const seeNote = "See Note"

// tagPattern accepts (HHHH,HHHH) where the last two digits of either
// component may be "xx". Dual wildcards are rejected after matching.
var tagPattern = regexp.MustCompile(`^\([0-9A-F]{2}(?:[0-9A-F]{2}|xx),[0-9A-F]{2}(?:[0-9A-F]{2}|xx)\)$`)

// Classified is a record that survived classification.
type Classified struct {
	// Record is the row as extracted.
	Record types.RawRecord

	// Entry is the dictionary entry derived from Record.
	Entry dictionary.Entry

	// Annotation is the part of the VR column that did not fit Entry.VR,
	// e.g. "or OW" for "OB or OW".
	Annotation string
}

// Classify turns a raw record into a dictionary entry, or reports why the
// record is dropped.
func Classify(rec types.RawRecord, includeRetired bool) (Classified, Skip) {
	if rec.Alias == nil {
		return Classified{}, SkipNoAlias
	}
	if rec.Retired() && !includeRetired {
		return Classified{}, SkipRetired
	}
	tag, ok := ClassifyTag(rec.Tag)
	if !ok {
		return Classified{}, SkipUnsupportedTag
	}

	var vrText string
	if rec.VR != nil {
		vrText = *rec.VR
	}
	code, annotation := NormalizeVR(vrText)

	return Classified{
		Record:     rec,
		Entry:      dictionary.Entry{Tag: tag, Alias: *rec.Alias, VR: code},
		Annotation: annotation,
	}, SkipNone
}

// ClassifyTag parses tag text in the bracketed form printed by the
// standard. Anything else, including dual wildcards, is rejected.
func ClassifyTag(text string) (dictionary.TagRange, bool) {
	if !tagPattern.MatchString(text) {
		return dictionary.TagRange{}, false
	}
	r, err := dictionary.ParseTagRange(text)
	if err != nil {
		return dictionary.TagRange{}, false
	}
	return r, true
}

// NormalizeVR splits a VR column into its primary code and an annotation.
// "See Note" and unrecognized codes map to UN with the original text as
// the annotation.
func NormalizeVR(text string) (vr.VR, string) {
	text = strings.TrimSpace(text)
	if text == seeNote || len(text) < 2 {
		return vr.UN, text
	}
	code, ok := vr.Parse(text[:2])
	if !ok {
		return vr.UN, text
	}
	return code, strings.TrimSpace(text[2:])
}
