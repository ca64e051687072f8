// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

import "time"

// DefaultSource is the DocBook rendition of PS3.6 published by NEMA.
const DefaultSource = "http://dicom.nema.org/medical/dicom/current/source/docbook/part06/part06.xml"

// DefaultTableID is the xml:id of the "Registry of DICOM Data Elements" table.
const DefaultTableID = "table_6-1"

// HTTPConfig holds settings for fetching the source document over HTTP.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout" mapstructure:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "dicom-dict/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent" mapstructure:"user_agent"`

	// MaxRetries bounds retries on HTTP 429 and 503 (default 5).
	MaxRetries int `json:"max_retries" yaml:"max_retries" mapstructure:"max_retries"`
}

// OutputFormat selects the shape of the generated artifact.
type OutputFormat string

const (
	// FormatGo writes a Go source file holding the entry table in source order.
	FormatGo OutputFormat = "go"
	// FormatJSON writes a JSON object keyed by tag text.
	FormatJSON OutputFormat = "json"
	// FormatYAML writes a YAML mapping keyed by tag text.
	FormatYAML OutputFormat = "yaml"
	// FormatSQLite writes an SQLite database with one row per tag text.
	FormatSQLite OutputFormat = "sqlite"
)

// Formats lists every supported output format.
var Formats = []OutputFormat{FormatGo, FormatJSON, FormatYAML, FormatSQLite}

// Valid reports whether f is a supported format.
func (f OutputFormat) Valid() bool {
	for _, v := range Formats {
		if f == v {
			return true
		}
	}
	return false
}

// DefaultOutput returns the output path used when none is configured.
func (f OutputFormat) DefaultOutput() string {
	switch f {
	case FormatGo:
		return "entries.go"
	case FormatSQLite:
		return "entries.db"
	default:
		return "entries." + string(f)
	}
}

// BuildConfig holds settings for building a dictionary artifact from the
// standard document.
type BuildConfig struct {
	// Source is a local path or an http(s) URL of the PS3.6 DocBook XML.
	Source string `json:"source" yaml:"source" mapstructure:"source"`

	// Output is the destination path of the artifact.
	Output string `json:"output" yaml:"output" mapstructure:"output"`

	// Format selects the artifact shape.
	Format OutputFormat `json:"format" yaml:"format" mapstructure:"format"`

	// IncludeRetired keeps attributes the standard marks as retired.
	IncludeRetired bool `json:"include_retired" yaml:"include_retired" mapstructure:"include_retired"`

	// TableID is the xml:id of the table to extract.
	TableID string `json:"table_id" yaml:"table_id" mapstructure:"table_id"`

	// CellElement is the element counted as one table column.
	CellElement string `json:"cell_element" yaml:"cell_element" mapstructure:"cell_element"`

	// Package and VarName name the Go package and variable of a generated
	// table (FormatGo only).
	Package string `json:"package" yaml:"package" mapstructure:"package"`
	VarName string `json:"var_name" yaml:"var_name" mapstructure:"var_name"`
}

// LogConfig selects the log level and handler.
type LogConfig struct {
	// Level is one of debug, info, warn, error (default info).
	Level string `json:"level" yaml:"level" mapstructure:"level"`

	// Format is text or json (default text).
	Format string `json:"format" yaml:"format" mapstructure:"format"`
}
