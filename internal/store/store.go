// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package store persists classified dictionary rows in SQLite and loads
// them back as a dictionary.Registry, so a built dictionary (standard or
// private) can be shipped as a single database file.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/pdiddy/dicom-dict/pkg/dictionary"
	"github.com/pdiddy/dicom-dict/pkg/types"
	"github.com/pdiddy/dicom-dict/pkg/vr"
)

// Row is one dictionary row: the record as extracted and the entry
// derived from it.
type Row struct {
	Record types.RawRecord
	Entry  dictionary.Entry
}

// Store manages a dictionary database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the database at path and creates the schema if
// it does not exist.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS entries (
			tag TEXT PRIMARY KEY,
			seq INTEGER NOT NULL,
			kind INTEGER NOT NULL,
			grp INTEGER NOT NULL,
			elem INTEGER NOT NULL,
			alias TEXT NOT NULL,
			vr_code TEXT NOT NULL,
			name TEXT,
			vr TEXT,
			vm TEXT,
			obs TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_alias ON entries(alias)`,
		`CREATE INDEX IF NOT EXISTS idx_entries_tag ON entries(grp, elem)`,
	}
	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// Put stores rows in one transaction. Rows are keyed by tag text; a row
// whose tag text is already stored replaces it and moves to the end of
// the table order.
func (s *Store) Put(ctx context.Context, rows []Row) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	var seq int64
	if err := tx.QueryRowContext(ctx, `SELECT COALESCE(MAX(seq), 0) FROM entries`).Scan(&seq); err != nil {
		return fmt.Errorf("reading sequence: %w", err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO entries (tag, seq, kind, grp, elem, alias, vr_code, name, vr, vm, obs)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		 ON CONFLICT(tag) DO UPDATE SET
			seq=excluded.seq, kind=excluded.kind, grp=excluded.grp, elem=excluded.elem,
			alias=excluded.alias, vr_code=excluded.vr_code, name=excluded.name,
			vr=excluded.vr, vm=excluded.vm, obs=excluded.obs`)
	if err != nil {
		return fmt.Errorf("preparing insert: %w", err)
	}
	defer stmt.Close()

	for _, r := range rows {
		seq++
		inner := r.Entry.Tag.Inner()
		_, err := stmt.ExecContext(ctx,
			r.Record.Tag, seq, int(r.Entry.Tag.Kind()), inner.Group, inner.Element,
			r.Entry.Alias, r.Entry.VR.String(),
			r.Record.Name, r.Record.VR, r.Record.VM, r.Record.Obs,
		)
		if err != nil {
			return fmt.Errorf("inserting %s: %w", r.Record.Tag, err)
		}
	}

	return tx.Commit()
}

// Count returns the number of stored rows.
func (s *Store) Count(ctx context.Context) (int, error) {
	var n int
	if err := s.db.QueryRowContext(ctx, `SELECT count(*) FROM entries`).Scan(&n); err != nil {
		return 0, fmt.Errorf("counting entries: %w", err)
	}
	return n, nil
}

// Entries returns the stored entries in table order.
func (s *Store) Entries(ctx context.Context) ([]dictionary.Entry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT tag, kind, grp, elem, alias, vr_code FROM entries ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("querying entries: %w", err)
	}
	defer rows.Close()

	var entries []dictionary.Entry
	for rows.Next() {
		var (
			tag, alias, code string
			kind             int
			grp, elem        uint16
		)
		if err := rows.Scan(&tag, &kind, &grp, &elem, &alias, &code); err != nil {
			return nil, fmt.Errorf("scanning entry: %w", err)
		}
		r, err := tagRange(dictionary.RangeKind(kind), grp, elem)
		if err != nil {
			return nil, fmt.Errorf("entry %s: %w", tag, err)
		}
		v, ok := vr.Parse(code)
		if !ok {
			return nil, fmt.Errorf("entry %s: unknown VR %q", tag, code)
		}
		entries = append(entries, dictionary.Entry{Tag: r, Alias: alias, VR: v})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating entries: %w", err)
	}
	return entries, nil
}

// Registry loads every stored entry into an in-memory registry.
func (s *Store) Registry(ctx context.Context) (*dictionary.Registry, error) {
	entries, err := s.Entries(ctx)
	if err != nil {
		return nil, err
	}
	return dictionary.NewRegistry(entries), nil
}

func tagRange(kind dictionary.RangeKind, grp, elem uint16) (dictionary.TagRange, error) {
	switch kind {
	case dictionary.KindSingle:
		return dictionary.Single(grp, elem), nil
	case dictionary.KindGroupWildcard:
		return dictionary.GroupWildcard(grp, elem), nil
	case dictionary.KindElementWildcard:
		return dictionary.ElementWildcard(grp, elem), nil
	default:
		return dictionary.TagRange{}, fmt.Errorf("unknown range kind %d", kind)
	}
}
