// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package emit classifies extracted records and writes them out as a Go
// table, a JSON or YAML document, or an SQLite database.
package emit

import (
	"context"
	"fmt"
	"io"
	"iter"
	"os"
	"path/filepath"

	"github.com/pdiddy/dicom-dict/internal/logging"
	"github.com/pdiddy/dicom-dict/internal/store"
	"github.com/pdiddy/dicom-dict/pkg/types"
)

// Options controls classification and the output shape.
type Options struct {
	Format         types.OutputFormat
	IncludeRetired bool

	// Package and VarName apply to types.FormatGo.
	Package string
	VarName string
}

// Summary counts what happened to each record read.
type Summary struct {
	Read        int `json:"read"`
	Emitted     int `json:"emitted"`
	NoAlias     int `json:"no_alias"`
	Retired     int `json:"retired"`
	Unsupported int `json:"unsupported"`
}

// Skipped returns the number of records that produced no output.
func (s Summary) Skipped() int {
	return s.NoAlias + s.Retired + s.Unsupported
}

func (s *Summary) count(skip Skip) {
	switch skip {
	case SkipNone:
		s.Emitted++
	case SkipNoAlias:
		s.NoAlias++
	case SkipRetired:
		s.Retired++
	case SkipUnsupportedTag:
		s.Unsupported++
	}
}

// ClassifyAll drains records, keeping the ones that classify. The first read
// error stops the walk and is returned with the summary so far.
func ClassifyAll(ctx context.Context, records iter.Seq2[types.RawRecord, error], includeRetired bool) ([]Classified, Summary, error) {
	var (
		kept []Classified
		sum  Summary
	)
	logger := logging.FromContext(ctx)
	for rec, err := range records {
		if err != nil {
			return kept, sum, fmt.Errorf("reading records: %w", err)
		}
		if err := ctx.Err(); err != nil {
			return kept, sum, err
		}
		sum.Read++
		c, skip := Classify(rec, includeRetired)
		sum.count(skip)
		if skip != SkipNone {
			logger.Debug("skipping record", "tag", rec.Tag, "reason", skip.String())
			continue
		}
		kept = append(kept, c)
	}
	return kept, sum, nil
}

// Emit classifies records and writes the kept ones to path in the chosen
// format. Nothing is written at path unless every record was read and the
// whole artifact was produced.
func Emit(ctx context.Context, records iter.Seq2[types.RawRecord, error], path string, opts Options) (Summary, error) {
	if !opts.Format.Valid() {
		return Summary{}, fmt.Errorf("unsupported output format %q", opts.Format)
	}

	kept, sum, err := ClassifyAll(ctx, records, opts.IncludeRetired)
	if err != nil {
		return sum, err
	}

	switch opts.Format {
	case types.FormatSQLite:
		err = writeDatabase(ctx, path, kept)
	default:
		err = WriteFileAtomic(path, func(w io.Writer) error {
			return Write(w, kept, opts)
		})
	}
	if err != nil {
		return sum, err
	}

	logging.FromContext(ctx).Info("dictionary written",
		"path", path,
		"format", string(opts.Format),
		"read", sum.Read,
		"emitted", sum.Emitted,
		"skipped", sum.Skipped(),
	)
	return sum, nil
}

// Write renders entries to w in a stream format (go, json or yaml).
func Write(w io.Writer, entries []Classified, opts Options) error {
	switch opts.Format {
	case types.FormatGo:
		return WriteGoTable(w, entries, opts.Package, opts.VarName)
	case types.FormatJSON:
		return WriteJSON(w, entries)
	case types.FormatYAML:
		return WriteYAML(w, entries)
	default:
		return fmt.Errorf("format %q cannot be streamed", opts.Format)
	}
}

// WriteFileAtomic writes path through a temporary file in the same
// directory that is renamed into place once write succeeds.
func WriteFileAtomic(path string, write func(io.Writer) error) error {
	tmpPath, err := tempSibling(path)
	if err != nil {
		return err
	}
	f, err := os.OpenFile(tmpPath, os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("opening temp file: %w", err)
	}

	writeErr := write(f)
	closeErr := f.Close()
	if writeErr != nil {
		os.Remove(tmpPath)
		return writeErr
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}
	return commit(tmpPath, path)
}

func writeDatabase(ctx context.Context, path string, entries []Classified) error {
	tmpPath, err := tempSibling(path)
	if err != nil {
		return err
	}

	db, err := store.Open(tmpPath)
	if err != nil {
		os.Remove(tmpPath)
		return err
	}
	rows := make([]store.Row, len(entries))
	for i, c := range entries {
		rows[i] = store.Row{Record: c.Record, Entry: c.Entry}
	}
	putErr := db.Put(ctx, rows)
	closeErr := db.Close()
	if putErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("storing entries: %w", putErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing database: %w", closeErr)
	}
	return commit(tmpPath, path)
}

// tempSibling creates an empty temporary file next to path.
func tempSibling(path string) (string, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating directory %s: %w", dir, err)
	}
	f, err := os.CreateTemp(dir, ".emit-*.tmp")
	if err != nil {
		return "", fmt.Errorf("creating temp file: %w", err)
	}
	name := f.Name()
	if err := f.Chmod(0o644); err != nil {
		f.Close()
		os.Remove(name)
		return "", fmt.Errorf("setting temp file mode: %w", err)
	}
	if err := f.Close(); err != nil {
		os.Remove(name)
		return "", fmt.Errorf("closing temp file: %w", err)
	}
	return name, nil
}

func commit(tmpPath, path string) error {
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}
