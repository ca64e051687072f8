// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package dictionary

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTagRange(t *testing.T) {
	tests := []struct {
		in   string
		want TagRange
	}{
		{"(1234,5678)", Single(0x1234, 0x5678)},
		{"1234,5678", Single(0x1234, 0x5678)},
		{"12xx,5678", GroupWildcard(0x1200, 0x5678)},
		{"1234,56xx", ElementWildcard(0x1234, 0x5600)},
		{"(60xx,3000)", GroupWildcard(0x6000, 0x3000)},
		{"(0020,31xx)", ElementWildcard(0x0020, 0x3100)},
		{"(7fe0,0010)", Single(0x7FE0, 0x0010)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTagRange(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseTagRangeErrors(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want error
	}{
		{"two character group", "12,5678", ErrComponentLength},
		{"five character element", "1234,56789", ErrComponentLength},
		{"non-hex group", "12G4,5678", ErrInvalidHex},
		{"non-hex element", "(1234,56Z8)", ErrInvalidHex},
		{"non-hex before wildcard", "1Gxx,5678", ErrInvalidHex},
		{"signed component", "+123,5678", ErrInvalidHex},
		{"both wildcards", "12xx,56xx", ErrUnsupportedRange},
		{"no comma", "12345678", ErrComponentCount},
		{"three components", "1234,5678,9ABC", ErrComponentCount},
		{"empty", "", ErrComponentCount},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseTagRange(tt.in)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, tt.in, pe.Input)
		})
	}
}

func TestTagRangeRoundTrip(t *testing.T) {
	ranges := []TagRange{
		Single(0, 0),
		Single(0xFFFF, 0xFFFF),
		Single(0x0010, 0x0010),
		GroupWildcard(0x5000, 0x0005),
		GroupWildcard(0x60AB, 0x3000),
		ElementWildcard(0x0020, 0x3100),
		ElementWildcard(0x1234, 0x56FF),
	}
	for _, r := range ranges {
		t.Run(r.String(), func(t *testing.T) {
			back, err := ParseTagRange(r.String())
			require.NoError(t, err)
			assert.Equal(t, r, back)
		})
	}
}

func TestTagRangeString(t *testing.T) {
	assert.Equal(t, "(0010,0010)", Single(0x0010, 0x0010).String())
	assert.Equal(t, "(60xx,3000)", GroupWildcard(0x6000, 0x3000).String())
	assert.Equal(t, "(0020,31xx)", ElementWildcard(0x0020, 0x3100).String())
}

func TestWildcardConstructorsClearPlaceholder(t *testing.T) {
	assert.Equal(t, Tag{0x6000, 0x3000}, GroupWildcard(0x6042, 0x3000).Inner())
	assert.Equal(t, Tag{0x0020, 0x3100}, ElementWildcard(0x0020, 0x31AB).Inner())
}

func TestContainsSingle(t *testing.T) {
	tags := []Tag{{0, 0}, {0x0010, 0x0010}, {0x7FE0, 0x0010}, {0xFFFF, 0xFFFF}}
	for _, a := range tags {
		r := Single(a.Group, a.Element)
		for _, b := range tags {
			assert.Equal(t, a == b, r.Contains(b), "%v contains %v", r, b)
		}
	}
}

func TestContainsGroupWildcard(t *testing.T) {
	r := GroupWildcard(0x6000, 0x3000)
	for low := 0; low <= 0xFF; low++ {
		assert.True(t, r.Contains(Tag{uint16(0x6000 | low), 0x3000}))
	}
	assert.False(t, r.Contains(Tag{0x6100, 0x3000}))
	assert.False(t, r.Contains(Tag{0x5F00, 0x3000}))
	assert.False(t, r.Contains(Tag{0x6002, 0x3001}))
}

func TestContainsElementWildcard(t *testing.T) {
	r := ElementWildcard(0x0020, 0x3100)
	assert.True(t, r.Contains(Tag{0x0020, 0x3100}))
	assert.True(t, r.Contains(Tag{0x0020, 0x31FF}))
	assert.False(t, r.Contains(Tag{0x0020, 0x3200}))
	assert.False(t, r.Contains(Tag{0x0021, 0x3100}))
}

func TestParseTag(t *testing.T) {
	tag, err := ParseTag("(7FE0,0010)")
	require.NoError(t, err)
	assert.Equal(t, Tag{0x7FE0, 0x0010}, tag)

	_, err = ParseTag("(60xx,3000)")
	assert.ErrorIs(t, err, ErrUnsupportedRange)
}

func TestTagCompare(t *testing.T) {
	assert.Equal(t, 0, Tag{1, 2}.Compare(Tag{1, 2}))
	assert.Equal(t, -1, Tag{1, 0xFFFF}.Compare(Tag{2, 0}))
	assert.Equal(t, 1, Tag{1, 3}.Compare(Tag{1, 2}))
}

func TestTextMarshaling(t *testing.T) {
	data, err := json.Marshal(struct {
		Tag   Tag      `json:"tag"`
		Range TagRange `json:"range"`
	}{Tag{0x0008, 0x0060}, GroupWildcard(0x5000, 0x0005)})
	require.NoError(t, err)
	assert.JSONEq(t, `{"tag":"(0008,0060)","range":"(50xx,0005)"}`, string(data))

	var r TagRange
	require.NoError(t, r.UnmarshalText([]byte("(0020,31xx)")))
	assert.Equal(t, ElementWildcard(0x0020, 0x3100), r)
	assert.Error(t, r.UnmarshalText([]byte("(60xx,30xx)")))
}
