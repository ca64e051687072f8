// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package dictionary models DICOM data dictionaries: attribute tags, tag
// ranges, dictionary entries, and the lookup contract shared by the
// standard dictionary and any private or composite dictionary.
package dictionary

import (
	"cmp"
	"fmt"
)

// Tag identifies one attribute by its (group, element) pair.
// Tags are comparable and can be used as map keys.
type Tag struct {
	Group   uint16
	Element uint16
}

// Compare orders tags by group, then element. It returns -1, 0 or +1.
func (t Tag) Compare(o Tag) int {
	if c := cmp.Compare(t.Group, o.Group); c != 0 {
		return c
	}
	return cmp.Compare(t.Element, o.Element)
}

// String renders the tag as "(GGGG,EEEE)" in upper-case hexadecimal.
func (t Tag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.Group, t.Element)
}

// MarshalText implements encoding.TextMarshaler.
func (t Tag) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *Tag) UnmarshalText(text []byte) error {
	p, err := ParseTag(string(text))
	if err != nil {
		return err
	}
	*t = p
	return nil
}

// ParseTag parses an exact tag in "(GGGG,EEEE)" or "GGGG,EEEE" form.
// Wildcard forms are rejected with ErrUnsupportedRange.
func ParseTag(s string) (Tag, error) {
	r, err := ParseTagRange(s)
	if err != nil {
		return Tag{}, err
	}
	if r.Kind() != KindSingle {
		return Tag{}, &ParseError{Input: s, Err: ErrUnsupportedRange}
	}
	return r.Inner(), nil
}
