// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package std

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pdiddy/dicom-dict/pkg/dictionary"
	"github.com/pdiddy/dicom-dict/pkg/vr"
)

// Compile-time check that the standard dictionary satisfies the contract.
var _ dictionary.DataDictionary = StandardDictionary{}

func TestSmoke(t *testing.T) {
	var dict StandardDictionary

	e, ok := dict.ByName("PatientName")
	require.True(t, ok)
	assert.Equal(t, dictionary.Entry{Tag: dictionary.Single(0x0010, 0x0010), Alias: "PatientName", VR: vr.PN}, e)

	e, ok = dict.ByName("Modality")
	require.True(t, ok)
	assert.Equal(t, dictionary.Single(0x0008, 0x0060), e.Tag)
	assert.Equal(t, vr.CS, e.VR)

	pixelData, ok := dict.ByTag(dictionary.Tag{Group: 0x7FE0, Element: 0x0010})
	require.True(t, ok, "Pixel Data attribute should exist")
	assert.Equal(t, dictionary.Single(0x7FE0, 0x0010), pixelData.Tag)
	assert.Equal(t, "PixelData", pixelData.Alias)
	assert.True(t, pixelData.VR == vr.OB || pixelData.VR == vr.OW)
}

func TestMetaEntries(t *testing.T) {
	var dict StandardDictionary
	for _, m := range metaEntries {
		e, ok := dict.ByTag(m.Tag.Inner())
		require.True(t, ok, m.Alias)
		assert.Equal(t, m, e)
	}

	tag, ok := dictionary.TagByName(dict, "TransferSyntaxUID")
	require.True(t, ok)
	assert.Equal(t, dictionary.Tag{Group: 0x0002, Element: 0x0010}, tag)
}

func TestWildcardEntries(t *testing.T) {
	var dict StandardDictionary

	e, ok := dict.ByName("OverlayData")
	require.True(t, ok)
	assert.Equal(t, dictionary.KindGroupWildcard, e.Tag.Kind())
	assert.True(t, e.Tag.Contains(dictionary.Tag{Group: 0x6002, Element: 0x3000}))

	e, ok = dict.ByName("SourceImageIDs")
	require.True(t, ok)
	assert.Equal(t, dictionary.ElementWildcard(0x0020, 0x3100), e.Tag)
}

func TestEntriesAreWellFormed(t *testing.T) {
	seen := make(map[dictionary.Tag]string)
	for i, e := range entries {
		assert.NotEmpty(t, e.Alias, "entry %d", i)
		assert.NotContains(t, e.Alias, " ", e.Alias)
		assert.True(t, e.VR.Valid(), e.Alias)
		if prev, dup := seen[e.Tag.Inner()]; dup {
			t.Errorf("tag %v used by both %s and %s", e.Tag, prev, e.Alias)
		}
		seen[e.Tag.Inner()] = e.Alias
		if i > 0 {
			assert.Equal(t, -1, entries[i-1].Tag.Inner().Compare(e.Tag.Inner()),
				"entries out of order at %s", e.Alias)
		}
	}
}

func TestRegistryIsSingleton(t *testing.T) {
	const n = 32
	got := make([]*dictionary.Registry, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			got[i] = Registry()
		}(i)
	}
	wg.Wait()

	for i := 1; i < n; i++ {
		assert.Same(t, got[0], got[i])
	}
	assert.Equal(t, len(entries)+len(metaEntries), got[0].Len())
}

func TestString(t *testing.T) {
	assert.Equal(t, "Standard DICOM Data Dictionary", fmt.Sprint(StandardDictionary{}))
}
