// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dictionary

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// RangeKind identifies the shape of a TagRange.
type RangeKind uint8

const (
	// KindSingle matches exactly one tag.
	KindSingle RangeKind = iota
	// KindGroupWildcard leaves the two low hex digits of the group open: (GGxx,EEEE).
	KindGroupWildcard
	// KindElementWildcard leaves the two low hex digits of the element open: (GGGG,EExx).
	KindElementWildcard
)

func (k RangeKind) String() string {
	switch k {
	case KindSingle:
		return "single"
	case KindGroupWildcard:
		return "group-wildcard"
	case KindElementWildcard:
		return "element-wildcard"
	default:
		return fmt.Sprintf("RangeKind(%d)", uint8(k))
	}
}

// TagRange is an exact tag or a family of tags with one wildcard byte.
// A range with both the group and the element wildcarded is not
// representable. The zero value is Single((0000,0000)).
type TagRange struct {
	kind  RangeKind
	inner Tag
}

// Single returns the range matching exactly (group, element).
func Single(group, element uint16) TagRange {
	return TagRange{kind: KindSingle, inner: Tag{group, element}}
}

// GroupWildcard returns the range (GGxx,EEEE). The low byte of group is
// a placeholder and is cleared.
func GroupWildcard(group, element uint16) TagRange {
	return TagRange{kind: KindGroupWildcard, inner: Tag{group &^ 0x00FF, element}}
}

// ElementWildcard returns the range (GGGG,EExx). The low byte of element
// is a placeholder and is cleared.
func ElementWildcard(group, element uint16) TagRange {
	return TagRange{kind: KindElementWildcard, inner: Tag{group, element &^ 0x00FF}}
}

// Kind returns the shape of the range.
func (r TagRange) Kind() RangeKind { return r.kind }

// Inner returns the tag wrapped by the range. For wildcard ranges the
// placeholder byte is zero.
func (r TagRange) Inner() Tag { return r.inner }

// Contains reports whether tag falls within the range.
func (r TagRange) Contains(tag Tag) bool {
	switch r.kind {
	case KindGroupWildcard:
		return r.inner.Group>>8 == tag.Group>>8 && r.inner.Element == tag.Element
	case KindElementWildcard:
		return r.inner.Group == tag.Group && r.inner.Element>>8 == tag.Element>>8
	default:
		return r.inner == tag
	}
}

// String renders the range as "(GGGG,EEEE)", with "xx" in place of the
// wildcard byte.
func (r TagRange) String() string {
	switch r.kind {
	case KindGroupWildcard:
		return fmt.Sprintf("(%02Xxx,%04X)", r.inner.Group>>8, r.inner.Element)
	case KindElementWildcard:
		return fmt.Sprintf("(%04X,%02Xxx)", r.inner.Group, r.inner.Element>>8)
	default:
		return r.inner.String()
	}
}

// MarshalText implements encoding.TextMarshaler.
func (r TagRange) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *TagRange) UnmarshalText(text []byte) error {
	p, err := ParseTagRange(string(text))
	if err != nil {
		return err
	}
	*r = p
	return nil
}

// Causes of a tag range parse failure.
var (
	ErrComponentCount   = errors.New("expected exactly two components `group,element`")
	ErrComponentLength  = errors.New("tag component has an invalid length, must be 4")
	ErrInvalidHex       = errors.New("tag component is not hexadecimal")
	ErrUnsupportedRange = errors.New("unsupported tag range")
)

// ParseError reports a malformed tag range. Err is one of the Err*
// sentinels above.
type ParseError struct {
	Input string
	Err   error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing tag range %q: %v", e.Input, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

const wildcard = "xx"

// ParseTagRange parses "(GGGG,EEEE)" or "GGGG,EEEE". The last two
// characters of at most one component may be "xx".
func ParseTagRange(s string) (TagRange, error) {
	body := s
	if strings.HasPrefix(body, "(") && strings.HasSuffix(body, ")") && len(body) >= 2 {
		body = body[1 : len(body)-1]
	}

	parts := strings.Split(body, ",")
	if len(parts) != 2 {
		return TagRange{}, &ParseError{Input: s, Err: ErrComponentCount}
	}
	group, elem := parts[0], parts[1]
	if len(group) != 4 || len(elem) != 4 {
		return TagRange{}, &ParseError{Input: s, Err: ErrComponentLength}
	}

	groupOpen := group[2:] == wildcard
	elemOpen := elem[2:] == wildcard

	switch {
	case groupOpen && elemOpen:
		return TagRange{}, &ParseError{Input: s, Err: ErrUnsupportedRange}
	case groupOpen:
		g, err := parseHex(s, group[:2])
		if err != nil {
			return TagRange{}, err
		}
		e, err := parseHex(s, elem)
		if err != nil {
			return TagRange{}, err
		}
		return GroupWildcard(g<<8, e), nil
	case elemOpen:
		g, err := parseHex(s, group)
		if err != nil {
			return TagRange{}, err
		}
		e, err := parseHex(s, elem[:2])
		if err != nil {
			return TagRange{}, err
		}
		return ElementWildcard(g, e<<8), nil
	default:
		g, err := parseHex(s, group)
		if err != nil {
			return TagRange{}, err
		}
		e, err := parseHex(s, elem)
		if err != nil {
			return TagRange{}, err
		}
		return Single(g, e), nil
	}
}

func parseHex(input, digits string) (uint16, error) {
	// base 16 rejects signs, "0x" prefixes and underscores.
	v, err := strconv.ParseUint(digits, 16, 16)
	if err != nil {
		return 0, &ParseError{Input: input, Err: ErrInvalidHex}
	}
	return uint16(v), nil
}
