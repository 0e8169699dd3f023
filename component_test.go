package srgb

import (
	"errors"
	"math"
	"testing"
)

func TestStrictConstructors_InDomain(t *testing.T) {
	values := []float64{0, 1e-12, 0.25, 0.5, 0.999999, 1}
	for _, v := range values {
		s, err := NewSaturation(v)
		if err != nil {
			t.Fatalf("NewSaturation(%v) unexpected error: %v", v, err)
		}
		if s.Float() != v {
			t.Errorf("NewSaturation(%v).Float() = %v, want %v", v, s.Float(), v)
		}
	}
}

func TestStrictConstructors_OutOfDomain(t *testing.T) {
	tests := []struct {
		name string
		new  func(float64) error
		v    float64
	}{
		{"saturation below", func(v float64) error { _, err := NewSaturation(v); return err }, -0.001},
		{"saturation above", func(v float64) error { _, err := NewSaturation(v); return err }, 1.001},
		{"lightness above", func(v float64) error { _, err := NewLightness(v); return err }, 2},
		{"whiteness below", func(v float64) error { _, err := NewWhiteness(v); return err }, -1},
		{"blackness above", func(v float64) error { _, err := NewBlackness(v); return err }, 100},
		{"channel below", func(v float64) error { _, err := NewChannel(v); return err }, -0.5},
		{"linear light above", func(v float64) error { _, err := NewLinearLight(v); return err }, 1.5},
		{"saturation NaN", func(v float64) error { _, err := NewSaturation(v); return err }, math.NaN()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.new(tt.v)
			if err == nil {
				t.Fatalf("expected error for %v, got nil", tt.v)
			}
			if !errors.Is(err, ErrOutOfRange) {
				t.Errorf("error %v should match ErrOutOfRange", err)
			}
			var re *RangeError
			if !errors.As(err, &re) {
				t.Fatalf("error %v should be a *RangeError", err)
			}
			if !math.IsNaN(tt.v) && re.Value != tt.v {
				t.Errorf("RangeError.Value = %v, want %v", re.Value, tt.v)
			}
			if re.Min != 0 || re.Max != 1 {
				t.Errorf("RangeError bounds = [%v, %v], want [0, 1]", re.Min, re.Max)
			}
		})
	}
}

func TestChannelConstructors_ErrorNames(t *testing.T) {
	tests := []struct {
		name string
		new  func(float64) (Channel, error)
		want string
	}{
		{"red", NewRed, "srgb: red 2 out of valid domain [0, 1]"},
		{"green", NewGreen, "srgb: green 2 out of valid domain [0, 1]"},
		{"blue", NewBlue, "srgb: blue 2 out of valid domain [0, 1]"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.new(2)
			if err == nil || err.Error() != tt.want {
				t.Errorf("error = %v, want %q", err, tt.want)
			}
		})
	}
}

func TestClampConstructors(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want float64
	}{
		{"in range", 0.5, 0.5},
		{"lower bound", 0, 0},
		{"upper bound", 1, 1},
		{"just below", -1e-9, 0},
		{"just above", 1 + 1e-9, 1},
		{"far below", -1e9, 0},
		{"far above", 1e9, 1},
		{"negative infinity", math.Inf(-1), 0},
		{"positive infinity", math.Inf(1), 1},
		{"NaN pins to zero", math.NaN(), 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampSaturation(tt.v).Float(); got != tt.want {
				t.Errorf("ClampSaturation(%v) = %v, want %v", tt.v, got, tt.want)
			}
			if got := ClampChannel(tt.v).Float(); got != tt.want {
				t.Errorf("ClampChannel(%v) = %v, want %v", tt.v, got, tt.want)
			}
			if got := ClampLinearLight(tt.v).Float(); got != tt.want {
				t.Errorf("ClampLinearLight(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestPercentConstructors(t *testing.T) {
	s, err := NewSaturationFromPercent(40)
	if err != nil {
		t.Fatalf("NewSaturationFromPercent(40) error: %v", err)
	}
	if s.Float() != 0.4 {
		t.Errorf("NewSaturationFromPercent(40) = %v, want 0.4", s.Float())
	}

	if _, err := NewLightnessFromPercent(101); err == nil {
		t.Error("NewLightnessFromPercent(101) should fail")
	}
	if _, err := NewWhitenessFromPercent(-1); err == nil {
		t.Error("NewWhitenessFromPercent(-1) should fail")
	}
	b, err := NewBlacknessFromPercent(100)
	if err != nil || b.Float() != 1 {
		t.Errorf("NewBlacknessFromPercent(100) = %v, %v; want 1, nil", b, err)
	}
}

func TestComponentString(t *testing.T) {
	tests := []struct {
		v    Saturation
		want string
	}{
		{0, "0%"},
		{0.4, "40%"},
		{1, "100%"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("Saturation(%v).String() = %q, want %q", float64(tt.v), got, tt.want)
		}
	}
	if got := Lightness(0.5).String(); got != "50%" {
		t.Errorf("Lightness(0.5).String() = %q, want \"50%%\"", got)
	}
}

func TestComponents_Comparable(t *testing.T) {
	// Components are plain value types: usable as map keys.
	m := map[Saturation]bool{0.5: true}
	if !m[ClampSaturation(0.5)] {
		t.Error("equal saturations should hash to the same key")
	}
}
