package srgb

import (
	"math"
	"strconv"
)

// Hue is an angle on the color wheel in degrees, held in [0, 360).
// The zero value is pure red's hue.
type Hue float64

// NewHue returns a validated hue. Degrees outside [0, 360), including
// 360 itself, are rejected; use NormHue for wrapping behavior.
func NewHue(degrees float64) (Hue, error) {
	if !(degrees >= 0 && degrees < 360) {
		return 0, &RangeError{
			Component: "hue",
			Value:     degrees,
			Min:       0,
			Max:       360,
			MaxOpen:   true,
		}
	}
	return Hue(degrees), nil
}

// NormHue wraps degrees into [0, 360) and never fails. Negative angles
// wrap upward, so NormHue(-10) == 350. NaN pins to 0.
func NormHue(degrees float64) Hue {
	if math.IsNaN(degrees) {
		return 0
	}
	d := math.Mod(degrees, 360)
	if d < 0 {
		d += 360
	}
	// Mod can return exactly 360 after the negative re-wrap when the
	// input is a tiny negative value that rounds up.
	return Hue(math.Mod(d, 360))
}

// NewHueFromTurns converts a fraction of a full rotation to degrees
// and validates it, so 0.5 turns is 180°.
func NewHueFromTurns(turns float64) (Hue, error) {
	return NewHue(turns * 360)
}

// NewHueFromRadians converts radians to degrees and validates.
func NewHueFromRadians(radians float64) (Hue, error) {
	return NewHue(radians * 180 / math.Pi)
}

// NewHueFromGradians converts gradians to degrees and validates, so
// 400 gradians is a full turn.
func NewHueFromGradians(gradians float64) (Hue, error) {
	return NewHue(gradians * 0.9)
}

// Degrees returns the hue angle in degrees.
func (h Hue) Degrees() float64 { return float64(h) }

// Turns returns the hue as a fraction of a full rotation.
func (h Hue) Turns() float64 { return float64(h) / 360 }

// Radians returns the hue angle in radians.
func (h Hue) Radians() float64 { return float64(h) * math.Pi / 180 }

// Gradians returns the hue angle in gradians.
func (h Hue) Gradians() float64 { return float64(h) / 0.9 }

func (h Hue) String() string {
	return strconv.FormatFloat(float64(h), 'g', -1, 64) + "°"
}
