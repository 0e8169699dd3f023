package srgb

import "math"

// HWB is a color in the hue/whiteness/blackness cylindrical model: a
// pure hue mixed toward white and toward black. When whiteness and
// blackness sum to 1 or more the hue no longer contributes and the
// color is gray.
type HWB struct {
	H Hue
	W Whiteness
	B Blackness
}

// NewHWB builds an HWB color from validated components.
func NewHWB(h Hue, w Whiteness, b Blackness) HWB {
	return HWB{H: h, W: w, B: b}
}

// HWBFrom converts an sRGB color to HWB.
func HWBFrom(c Color) HWB {
	h, w, b := c.HWBValues()
	return HWB{H: NormHue(h), W: ClampWhiteness(w), B: ClampBlackness(b)}
}

// HWBFromHSL converts an HSL color to HWB, routed through sRGB.
func HWBFromHSL(c HSL) HWB { return HWBFrom(c.SRGB()) }

// HWB converts the color to the hue/whiteness/blackness model.
func (c Color) HWB() HWB { return HWBFrom(c) }

// HWBValues returns the raw hue (degrees), whiteness, and blackness of
// the color. The hue is the same angle HSL reports; whiteness is the
// smallest channel and blackness the distance of the largest channel
// from full.
func (c Color) HWBValues() (h, w, b float64) {
	h, _, _ = c.HSLValues()
	w = math.Min(c.R, math.Min(c.G, c.B))
	b = 1 - math.Max(c.R, math.Max(c.G, c.B))
	return h, w, b
}

// SRGB converts the color back to sRGB: the pure hue at full
// saturation and half lightness, blended toward white by the
// whiteness and scaled down by the blackness. If whiteness and
// blackness sum to 1 or more they are renormalized by their sum
// first, which forces an achromatic result.
func (c HWB) SRGB() Color {
	w := float64(c.W)
	b := float64(c.B)
	if sum := w + b; sum >= 1 {
		w /= sum
		b /= sum
	}

	base := HSL{H: c.H, S: 1, L: 0.5}.SRGB()
	scale := 1 - w - b
	return New(
		base.R*scale+w,
		base.G*scale+w,
		base.B*scale+w,
	)
}

// HSL converts to the hue/saturation/lightness model, routed through
// sRGB.
func (c HWB) HSL() HSL { return HSLFrom(c.SRGB()) }

// Values returns the raw hue (degrees), whiteness, and blackness.
func (c HWB) Values() (h, w, b float64) {
	return float64(c.H), float64(c.W), float64(c.B)
}
