// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package vr defines the DICOM value representations (PS3.5 § 6.2).
package vr

import "fmt"

// VR is the two-character code naming the expected type and encoding of
// an attribute value. The zero value is not a valid VR.
type VR uint8

const (
	AE VR = iota + 1
	AS
	AT
	CS
	DA
	DS
	DT
	FD
	FL
	IS
	LO
	LT
	OB
	OD
	OF
	OL
	OV
	OW
	PN
	SH
	SL
	SQ
	SS
	ST
	SV
	TM
	UC
	UI
	UL
	UN
	UR
	US
	UT
	UV
)

var names = [...]string{
	AE: "AE", AS: "AS", AT: "AT", CS: "CS", DA: "DA", DS: "DS", DT: "DT",
	FD: "FD", FL: "FL", IS: "IS", LO: "LO", LT: "LT", OB: "OB", OD: "OD",
	OF: "OF", OL: "OL", OV: "OV", OW: "OW", PN: "PN", SH: "SH", SL: "SL",
	SQ: "SQ", SS: "SS", ST: "ST", SV: "SV", TM: "TM", UC: "UC", UI: "UI",
	UL: "UL", UN: "UN", UR: "UR", US: "US", UT: "UT", UV: "UV",
}

var byName = func() map[string]VR {
	m := make(map[string]VR, len(names))
	for i, n := range names {
		if n != "" {
			m[n] = VR(i)
		}
	}
	return m
}()

// Parse returns the VR for a two-character code. Codes are case sensitive.
func Parse(s string) (VR, bool) {
	v, ok := byName[s]
	return v, ok
}

// Valid reports whether v is one of the defined codes.
func (v VR) Valid() bool {
	return int(v) < len(names) && names[v] != ""
}

// String returns the two-character code, or "VR(n)" for undefined values.
func (v VR) String() string {
	if v.Valid() {
		return names[v]
	}
	return fmt.Sprintf("VR(%d)", uint8(v))
}

// MarshalText implements encoding.TextMarshaler.
func (v VR) MarshalText() ([]byte, error) {
	if !v.Valid() {
		return nil, fmt.Errorf("invalid value representation %d", uint8(v))
	}
	return []byte(names[v]), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (v *VR) UnmarshalText(text []byte) error {
	p, ok := Parse(string(text))
	if !ok {
		return fmt.Errorf("unknown value representation %q", text)
	}
	*v = p
	return nil
}
