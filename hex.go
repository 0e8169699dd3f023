package srgb

import (
	"fmt"
	"strings"
)

// ParseHex parses a hex color string. Supported forms are "RGB" and
// "RRGGBB", case-insensitive, with an optional leading '#' and
// surrounding whitespace. The short form expands each nibble over 15,
// so "#F80" is (1, 8/15, 0), not "#FF8800".
//
// Malformed input is not a domain error; ParseHex reports it as an
// absent result with ok == false.
func ParseHex(s string) (c Color, ok bool) {
	s = strings.TrimSpace(s)
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}

	switch len(s) {
	case 3:
		r, ok1 := hexNibble(s[0])
		g, ok2 := hexNibble(s[1])
		b, ok3 := hexNibble(s[2])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return Color{
			R: float64(r) / 15,
			G: float64(g) / 15,
			B: float64(b) / 15,
		}, true
	case 6:
		r, ok1 := hexByte(s[0], s[1])
		g, ok2 := hexByte(s[2], s[3])
		b, ok3 := hexByte(s[4], s[5])
		if !ok1 || !ok2 || !ok3 {
			return Color{}, false
		}
		return Color{
			R: float64(r) / 255,
			G: float64(g) / 255,
			B: float64(b) / 255,
		}, true
	}
	return Color{}, false
}

// Hex renders the color as "#RRGGBB" with uppercase digits, always in
// the 6-digit form.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R8(), c.G8(), c.B8())
}

func hexNibble(b byte) (uint8, bool) {
	switch {
	case '0' <= b && b <= '9':
		return b - '0', true
	case 'a' <= b && b <= 'f':
		return b - 'a' + 10, true
	case 'A' <= b && b <= 'F':
		return b - 'A' + 10, true
	}
	return 0, false
}

func hexByte(hi, lo byte) (uint8, bool) {
	h, ok1 := hexNibble(hi)
	l, ok2 := hexNibble(lo)
	return h<<4 | l, ok1 && ok2
}
