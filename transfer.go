package srgb

import "math"

// The sRGB transfer function per IEC 61966-2-1. The piecewise curve
// has a short linear segment near black and a 2.4-exponent power
// curve above it. The branch thresholds differ between directions
// because each tests in its own domain: 0.0031308 in linear light,
// 0.04045 in encoded values. The two are the same point on the curve
// and must not be unified.

// LinearToSRGB gamma-encodes a linear light value (OETF).
// Input and output are in [0, 1].
func LinearToSRGB(l float64) float64 {
	if l <= 0.0031308 {
		return l * 12.92
	}
	return 1.055*math.Pow(l, 1/2.4) - 0.055
}

// SRGBToLinear decodes a gamma-encoded value to linear light (EOTF).
// Input and output are in [0, 1].
func SRGBToLinear(s float64) float64 {
	if s <= 0.04045 {
		return s / 12.92
	}
	return math.Pow((s+0.055)/1.055, 2.4)
}

// decodeChannel decodes one encoded channel into a LinearLight,
// clamping the result so rounding at the domain edges cannot escape
// [0, 1].
func decodeChannel(s float64) LinearLight {
	return ClampLinearLight(SRGBToLinear(s))
}
