package srgb

import (
	"math"
	"strconv"
)

// The unit-interval scalar components. Each is a defined float64 type
// whose constructors guarantee the value lies in [0, 1]. Values are
// immutable, comparable, and usable as map keys.
type (
	// Channel is a gamma-encoded red, green, or blue channel value.
	Channel float64
	// Saturation is the S component of the HSL model.
	Saturation float64
	// Lightness is the L component of the HSL model.
	Lightness float64
	// Whiteness is the W component of the HWB model.
	Whiteness float64
	// Blackness is the B component of the HWB model.
	Blackness float64
	// LinearLight is a scene-referred light intensity, prior to gamma
	// encoding.
	LinearLight float64
)

// checkUnit validates v against [0, 1], reporting failures under the
// given component name. The comparison is written so that NaN fails.
func checkUnit(name string, v float64) (float64, error) {
	if !(v >= 0 && v <= 1) {
		return 0, &RangeError{Component: name, Value: v, Min: 0, Max: 1}
	}
	return v, nil
}

// clamp01 saturates v to [0, 1]. NaN pins to 0 so the total
// constructors stay total over every float64 input.
func clamp01(v float64) float64 {
	switch {
	case math.IsNaN(v):
		return 0
	case v < 0:
		return 0
	case v > 1:
		return 1
	}
	return v
}

// percentString renders a unit-interval value as a percentage, e.g.
// 0.4 → "40%".
func percentString(v float64) string {
	return strconv.FormatFloat(v*100, 'g', -1, 64) + "%"
}

// NewChannel returns a validated channel value in [0, 1].
func NewChannel(v float64) (Channel, error) {
	u, err := checkUnit("channel", v)
	return Channel(u), err
}

// NewRed validates a red channel value. Identical to NewChannel except
// that the error names the red component.
func NewRed(v float64) (Channel, error) {
	u, err := checkUnit("red", v)
	return Channel(u), err
}

// NewGreen validates a green channel value.
func NewGreen(v float64) (Channel, error) {
	u, err := checkUnit("green", v)
	return Channel(u), err
}

// NewBlue validates a blue channel value.
func NewBlue(v float64) (Channel, error) {
	u, err := checkUnit("blue", v)
	return Channel(u), err
}

// ClampChannel saturates v to [0, 1] and never fails.
func ClampChannel(v float64) Channel { return Channel(clamp01(v)) }

// Float returns the channel value as a plain float64.
func (c Channel) Float() float64 { return float64(c) }

func (c Channel) String() string { return percentString(float64(c)) }

// NewSaturation returns a validated saturation in [0, 1].
func NewSaturation(v float64) (Saturation, error) {
	u, err := checkUnit("saturation", v)
	return Saturation(u), err
}

// NewSaturationFromPercent validates p/100, so 40 → 0.4.
func NewSaturationFromPercent(p float64) (Saturation, error) {
	return NewSaturation(p / 100)
}

// ClampSaturation saturates v to [0, 1] and never fails.
func ClampSaturation(v float64) Saturation { return Saturation(clamp01(v)) }

// Float returns the saturation as a plain float64.
func (s Saturation) Float() float64 { return float64(s) }

func (s Saturation) String() string { return percentString(float64(s)) }

// NewLightness returns a validated lightness in [0, 1].
func NewLightness(v float64) (Lightness, error) {
	u, err := checkUnit("lightness", v)
	return Lightness(u), err
}

// NewLightnessFromPercent validates p/100.
func NewLightnessFromPercent(p float64) (Lightness, error) {
	return NewLightness(p / 100)
}

// ClampLightness saturates v to [0, 1] and never fails.
func ClampLightness(v float64) Lightness { return Lightness(clamp01(v)) }

// Float returns the lightness as a plain float64.
func (l Lightness) Float() float64 { return float64(l) }

func (l Lightness) String() string { return percentString(float64(l)) }

// NewWhiteness returns a validated whiteness in [0, 1].
func NewWhiteness(v float64) (Whiteness, error) {
	u, err := checkUnit("whiteness", v)
	return Whiteness(u), err
}

// NewWhitenessFromPercent validates p/100.
func NewWhitenessFromPercent(p float64) (Whiteness, error) {
	return NewWhiteness(p / 100)
}

// ClampWhiteness saturates v to [0, 1] and never fails.
func ClampWhiteness(v float64) Whiteness { return Whiteness(clamp01(v)) }

// Float returns the whiteness as a plain float64.
func (w Whiteness) Float() float64 { return float64(w) }

func (w Whiteness) String() string { return percentString(float64(w)) }

// NewBlackness returns a validated blackness in [0, 1].
func NewBlackness(v float64) (Blackness, error) {
	u, err := checkUnit("blackness", v)
	return Blackness(u), err
}

// NewBlacknessFromPercent validates p/100.
func NewBlacknessFromPercent(p float64) (Blackness, error) {
	return NewBlackness(p / 100)
}

// ClampBlackness saturates v to [0, 1] and never fails.
func ClampBlackness(v float64) Blackness { return Blackness(clamp01(v)) }

// Float returns the blackness as a plain float64.
func (b Blackness) Float() float64 { return float64(b) }

func (b Blackness) String() string { return percentString(float64(b)) }

// NewLinearLight returns a validated linear intensity in [0, 1].
func NewLinearLight(v float64) (LinearLight, error) {
	u, err := checkUnit("linear light", v)
	return LinearLight(u), err
}

// ClampLinearLight saturates v to [0, 1] and never fails.
func ClampLinearLight(v float64) LinearLight { return LinearLight(clamp01(v)) }

// Float returns the intensity as a plain float64.
func (l LinearLight) Float() float64 { return float64(l) }

func (l LinearLight) String() string { return percentString(float64(l)) }
