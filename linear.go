package srgb

// Linear is a color in linear light, the algebraic inverse of Color
// under the sRGB transfer function (modulo floating-point rounding).
// Blending and lighting math should happen here, not on the
// gamma-encoded values.
type Linear struct {
	R, G, B LinearLight
}

// NewLinear builds a Linear color from validated intensities.
func NewLinear(r, g, b LinearLight) Linear {
	return Linear{R: r, G: g, B: b}
}

// ClampLinear builds a Linear color from raw values, clamping each to
// [0, 1].
func ClampLinear(r, g, b float64) Linear {
	return Linear{
		R: ClampLinearLight(r),
		G: ClampLinearLight(g),
		B: ClampLinearLight(b),
	}
}

// SRGB gamma-encodes the color back into sRGB.
func (l Linear) SRGB() Color {
	return New(
		LinearToSRGB(float64(l.R)),
		LinearToSRGB(float64(l.G)),
		LinearToSRGB(float64(l.B)),
	)
}
