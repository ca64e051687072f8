// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dicom-dict/pkg/dictionary"
	"github.com/pdiddy/dicom-dict/pkg/types"
	"github.com/pdiddy/dicom-dict/pkg/vr"
)

func str(s string) *string { return &s }

func record(tag, alias, vrText string, obs *string) types.RawRecord {
	rec := types.RawRecord{Tag: tag, Obs: obs}
	if alias != "" {
		rec.Alias = str(alias)
	}
	if vrText != "" {
		rec.VR = str(vrText)
	}
	return rec
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name           string
		rec            types.RawRecord
		includeRetired bool
		wantSkip       Skip
		wantEntry      dictionary.Entry
		wantAnnotation string
	}{
		{
			name:      "single tag",
			rec:       record("(0010,0010)", "PatientName", "PN", nil),
			wantEntry: dictionary.Entry{Tag: dictionary.Single(0x0010, 0x0010), Alias: "PatientName", VR: vr.PN},
		},
		{
			name:           "group wildcard with alternative VR",
			rec:            record("(60xx,3000)", "OverlayData", "OB or OW", nil),
			wantEntry:      dictionary.Entry{Tag: dictionary.GroupWildcard(0x6000, 0x3000), Alias: "OverlayData", VR: vr.OB},
			wantAnnotation: "or OW",
		},
		{
			name:           "element wildcard kept when retired included",
			rec:            record("(0020,31xx)", "SourceImageIDs", "CS", str("RET")),
			includeRetired: true,
			wantEntry:      dictionary.Entry{Tag: dictionary.ElementWildcard(0x0020, 0x3100), Alias: "SourceImageIDs", VR: vr.CS},
		},
		{
			name:     "retired excluded",
			rec:      record("(0020,31xx)", "SourceImageIDs", "CS", str("RET")),
			wantSkip: SkipRetired,
		},
		{
			name:      "other notes are not retired",
			rec:       record("(0008,0016)", "SOPClassUID", "UI", str("DICOS")),
			wantEntry: dictionary.Entry{Tag: dictionary.Single(0x0008, 0x0016), Alias: "SOPClassUID", VR: vr.UI},
		},
		{
			name:     "no alias",
			rec:      record("(0018,9445)", "", "", nil),
			wantSkip: SkipNoAlias,
		},
		{
			name:     "no alias wins over retired",
			rec:      record("(0018,9445)", "", "", str("RET")),
			wantSkip: SkipNoAlias,
		},
		{
			name:     "dual wildcard",
			rec:      record("(60xx,30xx)", "Impossible", "OB", nil),
			wantSkip: SkipUnsupportedTag,
		},
		{
			name:           "inner wildcard digit",
			rec:            record("(1000,xxx0)", "EscapeTriplet", "US", str("RET")),
			includeRetired: true,
			wantSkip:       SkipUnsupportedTag,
		},
		{
			name:           "see note",
			rec:            record("(0028,0106)", "SmallestImagePixelValue", "See Note", nil),
			wantEntry:      dictionary.Entry{Tag: dictionary.Single(0x0028, 0x0106), Alias: "SmallestImagePixelValue", VR: vr.UN},
			wantAnnotation: "See Note",
		},
		{
			name:      "missing VR",
			rec:       record("(FFFE,E000)", "Item", "", nil),
			wantEntry: dictionary.Entry{Tag: dictionary.Single(0xFFFE, 0xE000), Alias: "Item", VR: vr.UN},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, skip := Classify(tt.rec, tt.includeRetired)
			require.Equal(t, tt.wantSkip, skip, skip.String())
			if skip != SkipNone {
				return
			}
			assert.Equal(t, tt.wantEntry, c.Entry)
			assert.Equal(t, tt.wantAnnotation, c.Annotation)
			assert.Equal(t, tt.rec, c.Record)
		})
	}
}

func TestClassifyTag(t *testing.T) {
	valid := map[string]dictionary.TagRange{
		"(0010,0010)": dictionary.Single(0x0010, 0x0010),
		"(7FE0,0010)": dictionary.Single(0x7FE0, 0x0010),
		"(50xx,0005)": dictionary.GroupWildcard(0x5000, 0x0005),
		"(0020,31xx)": dictionary.ElementWildcard(0x0020, 0x3100),
	}
	for text, want := range valid {
		got, ok := ClassifyTag(text)
		require.True(t, ok, text)
		assert.Equal(t, want, got, text)
	}

	for _, text := range []string{
		"",
		"0010,0010",
		"(0010,001a)",
		"(0010, 0010)",
		"(0010,0010) ",
		"(00100,0010)",
		"(60xx,30xx)",
		"(1000,xxx0)",
		"(XX10,0010)",
		"(0010;0010)",
	} {
		_, ok := ClassifyTag(text)
		assert.False(t, ok, "%q", text)
	}
}

func TestNormalizeVR(t *testing.T) {
	tests := []struct {
		in             string
		wantVR         vr.VR
		wantAnnotation string
	}{
		{"PN", vr.PN, ""},
		{" UL ", vr.UL, ""},
		{"OB or OW", vr.OB, "or OW"},
		{"US or SS or OW", vr.US, "or SS or OW"},
		{"See Note", vr.UN, "See Note"},
		{"", vr.UN, ""},
		{"X", vr.UN, "X"},
		{"ZZ", vr.UN, "ZZ"},
	}
	for _, tt := range tests {
		got, annotation := NormalizeVR(tt.in)
		assert.Equal(t, tt.wantVR, got, "%q", tt.in)
		assert.Equal(t, tt.wantAnnotation, annotation, "%q", tt.in)
	}
}

func TestSkipString(t *testing.T) {
	assert.Equal(t, "kept", SkipNone.String())
	assert.Equal(t, "no alias", SkipNoAlias.String())
	assert.Equal(t, "retired", SkipRetired.String())
	assert.Equal(t, "unsupported tag", SkipUnsupportedTag.String())
	assert.Equal(t, "unknown", Skip(42).String())
}
