package srgb

import (
	"strings"

	"golang.org/x/image/colornames"
)

// ByName looks up an SVG 1.1 color name ("red", "rebeccapurple", ...).
// The lookup is case-insensitive and trims surrounding whitespace.
// Unknown names report absence, like ParseHex.
func ByName(name string) (Color, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Color{}, false
	}
	return FromColor(c), true
}

// Names lists the recognized color names in alphabetical order.
func Names() []string {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	return names
}
