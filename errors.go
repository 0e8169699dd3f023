package srgb

import (
	"errors"
	"fmt"
)

// ErrOutOfRange reports that a value passed to a strict constructor
// lies outside the component's valid domain. Errors returned by the
// strict constructors match ErrOutOfRange with errors.Is; use
// errors.As with *RangeError to recover the rejected value and bounds.
var ErrOutOfRange = errors.New("srgb: value out of valid domain")

// RangeError is the error returned by strict scalar constructors. It
// carries the component name, the rejected value, and the valid
// bounds. Min is inclusive; Max is inclusive except for Hue, whose
// domain is the half-open [0, 360).
type RangeError struct {
	Component string
	Value     float64
	Min, Max  float64
	// MaxOpen marks Max as exclusive (circular domains).
	MaxOpen bool
}

func (e *RangeError) Error() string {
	hi := "]"
	if e.MaxOpen {
		hi = ")"
	}
	return fmt.Sprintf("srgb: %s %v out of valid domain [%v, %v%s",
		e.Component, e.Value, e.Min, e.Max, hi)
}

// Is makes RangeError values match the ErrOutOfRange sentinel.
func (e *RangeError) Is(target error) bool { return target == ErrOutOfRange }
