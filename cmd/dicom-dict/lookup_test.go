// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dicom-dict/pkg/dictionary"
	"github.com/pdiddy/dicom-dict/pkg/dictionary/std"
	"github.com/pdiddy/dicom-dict/pkg/vr"
)

func TestLookup(t *testing.T) {
	results := lookup(std.StandardDictionary{}, []string{
		"PatientName",
		"(0010,0010)",
		"7fe0,0010",
		"(60xx,3000)",
		"NoSuchKeyword",
	})
	require.Len(t, results, 5)

	assert.True(t, results[0].Found)
	assert.Equal(t, dictionary.Single(0x0010, 0x0010), results[0].Entry.Tag)

	assert.True(t, results[1].Found)
	assert.Equal(t, "PatientName", results[1].Entry.Alias)

	assert.True(t, results[2].Found)
	assert.Equal(t, "PixelData", results[2].Entry.Alias)

	assert.True(t, results[3].Found)
	assert.Equal(t, "OverlayData", results[3].Entry.Alias)

	assert.False(t, results[4].Found)
	assert.Nil(t, results[4].Entry)
}

func TestLookupChained(t *testing.T) {
	private := dictionary.NewRegistry([]dictionary.Entry{
		{Tag: dictionary.Single(0x0010, 0x0010), Alias: "PatientsName", VR: vr.LO},
		{Tag: dictionary.Single(0x0009, 0x0010), Alias: "VendorCreator", VR: vr.LO},
	})
	d := dictionary.Chain(private, std.StandardDictionary{})

	results := lookup(d, []string{"(0010,0010)", "VendorCreator", "Modality"})
	require.Len(t, results, 3)
	assert.Equal(t, "PatientsName", results[0].Entry.Alias)
	assert.True(t, results[1].Found)
	assert.True(t, results[2].Found)
	assert.Equal(t, vr.CS, results[2].Entry.VR)
}

func TestWriteLookupTable(t *testing.T) {
	results := lookup(std.StandardDictionary{}, []string{"PatientName", "Bogus"})

	var buf bytes.Buffer
	require.NoError(t, writeLookup(&buf, results, false))
	out := buf.String()
	assert.Contains(t, out, "(0010,0010)")
	assert.Contains(t, out, "PN")
	assert.Contains(t, out, "not found")
}

func TestWriteLookupJSON(t *testing.T) {
	results := lookup(std.StandardDictionary{}, []string{"(60xx,3000)", "Bogus"})

	var buf bytes.Buffer
	require.NoError(t, writeLookup(&buf, results, true))

	var decoded []map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 2)

	entry := decoded[0]["entry"].(map[string]any)
	assert.Equal(t, "(60xx,3000)", entry["tag"])
	assert.Equal(t, "OverlayData", entry["alias"])
	assert.Equal(t, "OB", entry["vr"])
	assert.NotContains(t, decoded[1], "entry")
}
