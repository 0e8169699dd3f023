// Package srgb implements colorimetric value types for the sRGB color
// space per IEC 61966-2-1.
//
// # Overview
//
// srgb is a pure-value color math library for the GoGPU ecosystem. It
// provides typed, range-validated scalar components (Hue, Saturation,
// Channel, LinearLight, ...), composite color types (Color, Linear,
// HSL, HWB), and the conversions between them: the sRGB transfer
// function for linear light, and the cylindrical HSL/HWB models.
//
// # Quick Start
//
//	import "github.com/gogpu/srgb"
//
//	// Parse a hex color and inspect it.
//	c, ok := srgb.ParseHex("#FF8000")
//	if ok {
//	    hsl := c.HSL()
//	    fmt.Println(hsl.H, hsl.S, hsl.L)
//	}
//
//	// Convert to linear light and back.
//	lin := c.Linear()
//	back := lin.SRGB()
//
// # Validation model
//
// Every scalar component has two construction paths. Strict
// constructors (NewHue, NewSaturation, ...) return a *RangeError when
// the input is outside the component's domain; the error carries the
// rejected value and the valid bounds and matches ErrOutOfRange with
// errors.Is. Clamping constructors (ClampSaturation, NormHue, ...)
// never fail: they saturate to the nearest bound, or for the circular
// Hue wrap modulo 360.
//
// Hex parsing and named-color lookup are the one exception: malformed
// input is not a domain violation, so ParseHex and ByName report
// absence with a comma-ok boolean instead of an error.
//
// # Concurrency
//
// All types are immutable values and all conversions are pure
// functions; everything here is safe for concurrent use without
// synchronization.
package srgb
