// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"bytes"
	"go/parser"
	"go/token"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dicom-dict/pkg/types"
)

func mustClassify(t *testing.T, includeRetired bool, recs ...types.RawRecord) []Classified {
	t.Helper()
	var out []Classified
	for _, rec := range recs {
		c, skip := Classify(rec, includeRetired)
		require.Equal(t, SkipNone, skip, rec.Tag)
		out = append(out, c)
	}
	return out
}

func TestWriteGoTable(t *testing.T) {
	entries := mustClassify(t, true,
		record("(0010,0010)", "PatientName", "PN", nil),
		record("(0020,31xx)", "SourceImageIDs", "CS", str("RET")),
		record("(60xx,3000)", "OverlayData", "OB or OW", nil),
		record("(0008,0010)", "RecognitionCode", "SH", str("RET")),
	)

	var buf bytes.Buffer
	require.NoError(t, WriteGoTable(&buf, entries, "", ""))
	src := buf.String()

	assert.True(t, strings.HasPrefix(src, "// Code generated by dicom-dict build. DO NOT EDIT.\n"))
	assert.Contains(t, src, "package std\n")
	assert.Contains(t, src, `"github.com/pdiddy/dicom-dict/pkg/dictionary"`)
	assert.Contains(t, src, `"github.com/pdiddy/dicom-dict/pkg/vr"`)
	assert.Contains(t, src, "var entries = []dictionary.Entry{")

	lines := []string{
		`{Tag: dictionary.Single(0x0010, 0x0010), Alias: "PatientName", VR: vr.PN},`,
		`{Tag: dictionary.ElementWildcard(0x0020, 0x3100), Alias: "SourceImageIDs", VR: vr.CS},`,
		`{Tag: dictionary.GroupWildcard(0x6000, 0x3000), Alias: "OverlayData", VR: vr.OB /* or OW */},`,
		`{Tag: dictionary.Single(0x0008, 0x0010), Alias: "RecognitionCode", VR: vr.SH},`,
	}
	last := -1
	for _, line := range lines {
		i := strings.Index(src, line)
		require.GreaterOrEqual(t, i, 0, line)
		assert.Greater(t, i, last, "source order: %s", line)
		last = i
	}
	assert.Equal(t, 2, strings.Count(src, "// RET"))

	_, err := parser.ParseFile(token.NewFileSet(), "entries.go", src, parser.ParseComments)
	assert.NoError(t, err)
}

func TestWriteGoTableNames(t *testing.T) {
	entries := mustClassify(t, false, record("(0009,0010)", "PrivateCreator", "LO", nil))

	var buf bytes.Buffer
	require.NoError(t, WriteGoTable(&buf, entries, "private", "vendorEntries"))
	assert.Contains(t, buf.String(), "package private\n")
	assert.Contains(t, buf.String(), "var vendorEntries = []dictionary.Entry{")
}

func TestWriteGoTableEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteGoTable(&buf, nil, "", ""))
	_, err := parser.ParseFile(token.NewFileSet(), "entries.go", buf.String(), 0)
	assert.NoError(t, err)
}

func TestWriteGoTableInvalidPackage(t *testing.T) {
	var buf bytes.Buffer
	err := WriteGoTable(&buf, nil, "not a name", "")
	assert.Error(t, err)
	assert.Zero(t, buf.Len())
}

func TestVRCommentEscapes(t *testing.T) {
	assert.Equal(t, "", vrComment(""))
	assert.Equal(t, " /* or OW */", vrComment("or OW"))
	assert.Equal(t, " /* a * / b */", vrComment("a */ b"))
}
