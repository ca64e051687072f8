// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package emit

import (
	"encoding/json"
	"fmt"
	"io"

	"go.yaml.in/yaml/v3"

	"github.com/pdiddy/dicom-dict/pkg/types"
)

// keyed indexes records by their tag text. A later record with the same
// tag text replaces an earlier one.
func keyed(entries []Classified) map[string]types.RawRecord {
	m := make(map[string]types.RawRecord, len(entries))
	for _, c := range entries {
		m[c.Record.Tag] = c.Record
	}
	return m
}

// WriteJSON writes the records as one JSON object keyed by tag text.
// encoding/json sorts map keys, so output is ordered by key.
func WriteJSON(w io.Writer, entries []Classified) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(keyed(entries)); err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	return nil
}

// WriteYAML writes the records as one YAML mapping keyed by tag text,
// ordered by key.
func WriteYAML(w io.Writer, entries []Classified) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(keyed(entries)); err != nil {
		return fmt.Errorf("encoding YAML: %w", err)
	}
	return enc.Close()
}

// ReadData loads a structured data file written by WriteJSON or WriteYAML.
func ReadData(r io.Reader, format types.OutputFormat) (map[string]types.RawRecord, error) {
	var m map[string]types.RawRecord
	var err error
	switch format {
	case types.FormatJSON:
		err = json.NewDecoder(r).Decode(&m)
	case types.FormatYAML:
		err = yaml.NewDecoder(r).Decode(&m)
	default:
		return nil, fmt.Errorf("format %q is not a structured data format", format)
	}
	if err != nil {
		return nil, fmt.Errorf("decoding %s: %w", format, err)
	}
	return m, nil
}
