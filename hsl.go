package srgb

import "math"

// HSL is a color in the hue/saturation/lightness cylindrical model.
// Saturation is 0 exactly when the color is achromatic (r == g == b).
type HSL struct {
	H Hue
	S Saturation
	L Lightness
}

// NewHSL builds an HSL color from validated components.
func NewHSL(h Hue, s Saturation, l Lightness) HSL {
	return HSL{H: h, S: s, L: l}
}

// HSLFrom converts an sRGB color to HSL.
func HSLFrom(c Color) HSL {
	h, s, l := c.HSLValues()
	return HSL{H: NormHue(h), S: ClampSaturation(s), L: ClampLightness(l)}
}

// HSL converts the color to the hue/saturation/lightness model.
func (c Color) HSL() HSL { return HSLFrom(c) }

// HSLValues returns the raw hue (degrees), saturation, and lightness
// of the color. Achromatic colors report hue 0 and saturation 0.
func (c Color) HSLValues() (h, s, l float64) {
	maxC := math.Max(c.R, math.Max(c.G, c.B))
	minC := math.Min(c.R, math.Min(c.G, c.B))
	delta := maxC - minC

	l = (maxC + minC) / 2
	if delta == 0 {
		return 0, 0, l
	}

	if l > 0.5 {
		s = delta / (2 - maxC - minC)
	} else {
		s = delta / (maxC + minC)
	}

	switch maxC {
	case c.R:
		h = 60 * math.Mod((c.G-c.B)/delta, 6)
	case c.G:
		h = 60 * ((c.B-c.R)/delta + 2)
	default:
		h = 60 * ((c.R-c.G)/delta + 4)
	}
	if h < 0 {
		h += 360
	}
	return h, s, l
}

// SRGB converts the color back to sRGB. Zero saturation
// short-circuits to gray at the given lightness.
func (c HSL) SRGB() Color {
	s := float64(c.S)
	l := float64(c.L)
	if s == 0 {
		return Gray(l)
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	h := float64(c.H) / 360
	return New(
		hueToChannel(p, q, h+1.0/3),
		hueToChannel(p, q, h),
		hueToChannel(p, q, h-1.0/3),
	)
}

// HWB converts to the hue/whiteness/blackness model, routed through
// sRGB.
func (c HSL) HWB() HWB { return HWBFrom(c.SRGB()) }

// Values returns the raw hue (degrees), saturation, and lightness.
func (c HSL) Values() (h, s, l float64) {
	return float64(c.H), float64(c.S), float64(c.L)
}

// hueToChannel evaluates one channel of the HSL cylinder. t is the
// normalized hue plus a per-channel phase offset, wrapped into [0, 1].
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	}
	return p
}
