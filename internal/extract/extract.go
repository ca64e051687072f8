// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract streams attribute rows out of the DocBook rendition of
// PS3.6. It walks the XML token stream once, tracking only a reading state
// and the text of the current row, so memory use does not grow with the
// size of the document.
package extract

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"iter"
	"strings"

	"github.com/pdiddy/dicom-dict/pkg/types"
)

// DefaultCellElement is the element that opens a table cell in DocBook.
const DefaultCellElement = "td"

const (
	tableElement = "table"
	bodyElement  = "tbody"
	rowElement   = "tr"
	idAttr       = "id"
	xmlNamespace = "http://www.w3.org/XML/1998/namespace"

	zeroWidthSpace = "\u200b"
)

// Options configures which table is read.
type Options struct {
	// TableID is the xml:id of the target table (default types.DefaultTableID).
	TableID string

	// CellElement is the local name of the element that starts a new
	// column (default DefaultCellElement).
	CellElement string
}

func (o Options) withDefaults() Options {
	if o.TableID == "" {
		o.TableID = types.DefaultTableID
	}
	if o.CellElement == "" {
		o.CellElement = DefaultCellElement
	}
	return o
}

type state int

const (
	stateOff state = iota
	stateInTableHead
	stateInTable
	stateInCellTag
	stateInCellName
	stateInCellKeyword
	stateInCellVR
	stateInCellVM
	stateInCellObs
	stateInCellUnknown
)

var stateNames = [...]string{
	stateOff:           "Off",
	stateInTableHead:   "InTableHead",
	stateInTable:       "InTable",
	stateInCellTag:     "InCellTag",
	stateInCellName:    "InCellName",
	stateInCellKeyword: "InCellKeyword",
	stateInCellVR:      "InCellVR",
	stateInCellVM:      "InCellVM",
	stateInCellObs:     "InCellObs",
	stateInCellUnknown: "InCellUnknown",
}

func (s state) String() string {
	if int(s) < len(stateNames) {
		return stateNames[s]
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// column returns the index of the cell captured in s, or -1.
func (s state) column() int {
	if s >= stateInCellTag && s <= stateInCellObs {
		return int(s - stateInCellTag)
	}
	return -1
}

// inBody reports whether s is inside the table body.
func (s state) inBody() bool {
	return s >= stateInTable
}

const numColumns = int(stateInCellObs-stateInCellTag) + 1

// Reader yields one RawRecord per body row of the target table. It is
// single-use: once it has returned io.EOF or an error, every later call
// to Next returns the same result.
type Reader struct {
	dec   *xml.Decoder
	opts  Options
	state state

	depth     int
	bodyDepth int

	cells [numColumns]strings.Builder
	seen  [numColumns]bool

	err error
}

// NewReader returns a Reader over the XML document in r.
func NewReader(r io.Reader, opts Options) *Reader {
	dec := xml.NewDecoder(r)
	dec.Entity = xml.HTMLEntity
	return &Reader{dec: dec, opts: opts.withDefaults()}
}

// Next returns the next record. It returns io.EOF when the table body has
// ended or the document contains no matching table. A document that ends
// inside the table yields io.ErrUnexpectedEOF.
func (r *Reader) Next() (types.RawRecord, error) {
	if r.err != nil {
		return types.RawRecord{}, r.err
	}
	for {
		tok, err := r.dec.Token()
		if err != nil {
			r.err = r.tokenError(err)
			return types.RawRecord{}, r.err
		}

		switch t := tok.(type) {
		case xml.StartElement:
			r.depth++
			r.start(t)

		case xml.EndElement:
			name := t.Name.Local
			depth := r.depth
			r.depth--
			if !r.state.inBody() {
				continue
			}
			if name == bodyElement && depth == r.bodyDepth {
				r.err = io.EOF
				return types.RawRecord{}, r.err
			}
			if name == rowElement {
				rec, ok := r.endRow()
				if ok {
					return rec, nil
				}
			}

		case xml.CharData:
			if col := r.state.column(); col >= 0 {
				r.cells[col].WriteString(strings.ReplaceAll(string(t), zeroWidthSpace, ""))
				r.seen[col] = true
			}
		}
	}
}

// All returns an iterator over the remaining records. Iteration stops
// after the first error, which is yielded with a zero record.
func (r *Reader) All() iter.Seq2[types.RawRecord, error] {
	return func(yield func(types.RawRecord, error) bool) {
		for {
			rec, err := r.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if !yield(rec, err) || err != nil {
				return
			}
		}
	}
}

// Records is shorthand for NewReader(rd, opts).All().
func Records(rd io.Reader, opts Options) iter.Seq2[types.RawRecord, error] {
	return NewReader(rd, opts).All()
}

func (r *Reader) start(t xml.StartElement) {
	name := t.Name.Local
	switch r.state {
	case stateOff:
		if name == tableElement && r.isTarget(t) {
			r.state = stateInTableHead
		}
	case stateInTableHead:
		if name == bodyElement {
			r.state = stateInTable
			r.bodyDepth = r.depth
		}
	case stateInCellUnknown:
		// extra columns are ignored
	default:
		if name == r.opts.CellElement {
			r.state++
		}
	}
}

func (r *Reader) isTarget(t xml.StartElement) bool {
	for _, a := range t.Attr {
		if a.Name.Local != idAttr {
			continue
		}
		switch a.Name.Space {
		case "", "xml", xmlNamespace:
			if a.Value == r.opts.TableID {
				return true
			}
		}
	}
	return false
}

// endRow closes the current row, returning its record when a tag was
// captured. Scratch fields are cleared either way.
func (r *Reader) endRow() (types.RawRecord, bool) {
	var fields [numColumns]*string
	for i := range r.cells {
		if r.seen[i] {
			fields[i] = normalize(r.cells[i].String())
		}
		r.cells[i].Reset()
		r.seen[i] = false
	}
	r.state = stateInTable

	tag := fields[stateInCellTag.column()]
	if tag == nil {
		return types.RawRecord{}, false
	}
	return types.RawRecord{
		Tag:   *tag,
		Name:  fields[stateInCellName.column()],
		Alias: fields[stateInCellKeyword.column()],
		VR:    fields[stateInCellVR.column()],
		VM:    fields[stateInCellVM.column()],
		Obs:   fields[stateInCellObs.column()],
	}, true
}

// normalize collapses runs of whitespace. It returns nil for blank text.
func normalize(s string) *string {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" {
		return nil
	}
	return &s
}

func (r *Reader) tokenError(err error) error {
	if errors.Is(err, io.EOF) {
		if r.state == stateOff {
			return io.EOF
		}
		return fmt.Errorf("document ended in state %s: %w", r.state, io.ErrUnexpectedEOF)
	}
	line, col := r.dec.InputPos()
	return fmt.Errorf("reading XML at %d:%d: %w", line, col, err)
}
