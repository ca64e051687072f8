// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"bytes"
	"fmt"
	"go/format"
	"io"
	"strings"

	"github.com/pdiddy/dicom-dict/pkg/dictionary"
)

const (
	dictionaryImport = "github.com/pdiddy/dicom-dict/pkg/dictionary"
	vrImport         = "github.com/pdiddy/dicom-dict/pkg/vr"

	// DefaultPackage and DefaultVarName match pkg/dictionary/std.
	DefaultPackage = "std"
	DefaultVarName = "entries"
)

// WriteGoTable writes a gofmt-ed Go source file declaring the entries as
// a []dictionary.Entry in the order given.
func WriteGoTable(w io.Writer, entries []Classified, pkg, varName string) error {
	if pkg == "" {
		pkg = DefaultPackage
	}
	if varName == "" {
		varName = DefaultVarName
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "// Code generated by dicom-dict build. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)
	fmt.Fprintf(&buf, "import (\n\t%q\n\t%q\n)\n\n", dictionaryImport, vrImport)
	fmt.Fprintf(&buf, "var %s = []dictionary.Entry{\n", varName)
	for _, c := range entries {
		fmt.Fprintf(&buf, "\t{Tag: %s, Alias: %q, VR: vr.%s%s},%s\n",
			rangeExpr(c.Entry.Tag), c.Entry.Alias, c.Entry.VR, vrComment(c.Annotation), obsComment(c.Record.Obs))
	}
	fmt.Fprintf(&buf, "}\n")

	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("formatting generated table: %w", err)
	}
	_, err = w.Write(src)
	return err
}

func rangeExpr(r dictionary.TagRange) string {
	var ctor string
	switch r.Kind() {
	case dictionary.KindGroupWildcard:
		ctor = "GroupWildcard"
	case dictionary.KindElementWildcard:
		ctor = "ElementWildcard"
	default:
		ctor = "Single"
	}
	t := r.Inner()
	return fmt.Sprintf("dictionary.%s(0x%04X, 0x%04X)", ctor, t.Group, t.Element)
}

func vrComment(annotation string) string {
	if annotation == "" {
		return ""
	}
	return " /* " + strings.ReplaceAll(annotation, "*/", "* /") + " */"
}

func obsComment(obs *string) string {
	if obs == nil {
		return ""
	}
	return " // " + *obs
}
