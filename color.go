package srgb

import (
	"image/color"
	"math"
)

// Color is a gamma-encoded sRGB color with red, green, and blue
// components. Each component is conceptually in [0, 1]; the fields are
// plain float64s, and every constructor except FromChannels clamps
// into range. HWB mixing works on transiently out-of-range channel
// values before its final blend, which is why the fields are not
// Channel-typed.
type Color struct {
	R, G, B float64
}

// FromChannels builds a Color from three validated channel values.
// It cannot fail: the Channel constructors already guarantee range.
func FromChannels(r, g, b Channel) Color {
	return Color{R: float64(r), G: float64(g), B: float64(b)}
}

// New builds a Color from raw component values, clamping each to
// [0, 1].
func New(r, g, b float64) Color {
	return Color{R: clamp01(r), G: clamp01(g), B: clamp01(b)}
}

// Gray builds an achromatic Color with all three channels set to v,
// clamped to [0, 1].
func Gray(v float64) Color {
	v = clamp01(v)
	return Color{R: v, G: v, B: v}
}

// From8Bit builds a Color from 8-bit channel values, so (255, 128, 0)
// is orange.
func From8Bit(r, g, b uint8) Color {
	return Color{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}
}

// FromColor converts a standard color.Color, discarding alpha.
func FromColor(c color.Color) Color {
	r, g, b, _ := c.RGBA()
	return Color{
		R: float64(r) / 65535,
		G: float64(g) / 65535,
		B: float64(b) / 65535,
	}
}

// round8 maps a [0, 1] component to an 8-bit value, rounding to
// nearest and clamping to [0, 255].
func round8(v float64) uint8 {
	r := math.Round(v * 255)
	if r < 0 {
		return 0
	}
	if r > 255 {
		return 255
	}
	return uint8(r)
}

// R8 returns the red channel as an 8-bit value.
func (c Color) R8() uint8 { return round8(c.R) }

// G8 returns the green channel as an 8-bit value.
func (c Color) G8() uint8 { return round8(c.G) }

// B8 returns the blue channel as an 8-bit value.
func (c Color) B8() uint8 { return round8(c.B) }

// RGBA implements the standard color.Color interface. The color is
// always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	return uint32(clamp01(c.R) * 65535),
		uint32(clamp01(c.G) * 65535),
		uint32(clamp01(c.B) * 65535),
		65535
}

// Linear decodes each channel through the sRGB transfer function,
// producing the color in linear light.
func (c Color) Linear() Linear {
	return Linear{
		R: decodeChannel(c.R),
		G: decodeChannel(c.G),
		B: decodeChannel(c.B),
	}
}

// Lerp performs linear interpolation between two colors.
func (c Color) Lerp(other Color, t float64) Color {
	return Color{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// Common colors
var (
	Black   = Color{0, 0, 0}
	White   = Color{1, 1, 1}
	Red     = Color{1, 0, 0}
	Green   = Color{0, 1, 0}
	Blue    = Color{0, 0, 1}
	Cyan    = Color{0, 1, 1}
	Magenta = Color{1, 0, 1}
	Yellow  = Color{1, 1, 0}
)
