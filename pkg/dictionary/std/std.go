// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package std provides the standard DICOM data dictionary (PS3.6).
//
// The attribute table in entries.go is generated by `dicom-dict build`
// (see `mage generate`). The registry over it is built once, on first
// use, and shared by the whole process.
package std

import (
	"sync"

	"github.com/pdiddy/dicom-dict/pkg/dictionary"
	"github.com/pdiddy/dicom-dict/pkg/vr"
)

// File meta information attributes (PS3.10 § 7.1). They are indexed after
// the main table so they win any alias or tag collision.
var metaEntries = []dictionary.Entry{
	{Tag: dictionary.Single(0x0002, 0x0000), Alias: "FileMetaInformationGroupLength", VR: vr.UL},
	{Tag: dictionary.Single(0x0002, 0x0001), Alias: "FileMetaInformationVersion", VR: vr.OB},
	{Tag: dictionary.Single(0x0002, 0x0002), Alias: "MediaStorageSOPClassUID", VR: vr.UI},
	{Tag: dictionary.Single(0x0002, 0x0003), Alias: "MediaStorageSOPInstanceUID", VR: vr.UI},
	{Tag: dictionary.Single(0x0002, 0x0010), Alias: "TransferSyntaxUID", VR: vr.UI},
	{Tag: dictionary.Single(0x0002, 0x0012), Alias: "ImplementationClassUID", VR: vr.UI},
	{Tag: dictionary.Single(0x0002, 0x0013), Alias: "ImplementationVersionName", VR: vr.SH},
	{Tag: dictionary.Single(0x0002, 0x0016), Alias: "SourceApplicationEntityTitle", VR: vr.AE},
	{Tag: dictionary.Single(0x0002, 0x0017), Alias: "SendingApplicationEntityTitle", VR: vr.AE},
	{Tag: dictionary.Single(0x0002, 0x0018), Alias: "ReceivingApplicationEntityTitle", VR: vr.AE},
	{Tag: dictionary.Single(0x0002, 0x0100), Alias: "PrivateInformationCreatorUID", VR: vr.UI},
	{Tag: dictionary.Single(0x0002, 0x0102), Alias: "PrivateInformation", VR: vr.OB},
}

var registry = sync.OnceValue(func() *dictionary.Registry {
	return dictionary.NewRegistry(entries, metaEntries)
})

// Registry returns the process-wide standard registry, building it on the
// first call. Concurrent first callers block until the build completes.
func Registry() *dictionary.Registry {
	return registry()
}

// StandardDictionary is a DataDictionary backed by Registry. The zero
// value is ready to use.
type StandardDictionary struct{}

// ByName implements dictionary.DataDictionary.
func (StandardDictionary) ByName(name string) (dictionary.Entry, bool) {
	return registry().ByName(name)
}

// ByTag implements dictionary.DataDictionary.
func (StandardDictionary) ByTag(tag dictionary.Tag) (dictionary.Entry, bool) {
	return registry().ByTag(tag)
}

func (StandardDictionary) String() string {
	return "Standard DICOM Data Dictionary"
}
