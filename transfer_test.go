package srgb

import (
	"math"
	"testing"
)

func TestTransferRoundTrip(t *testing.T) {
	// Values on both sides of the 0.0031308 linear-segment threshold.
	values := []float64{
		0, 0.0001, 0.001, 0.0031308, 0.004, 0.01, 0.1, 0.18, 0.5, 0.75, 1,
	}
	const tolerance = 1e-9

	for _, l := range values {
		got := SRGBToLinear(LinearToSRGB(l))
		if math.Abs(got-l) > tolerance {
			t.Errorf("SRGBToLinear(LinearToSRGB(%v)) = %v, diff %v", l, got, math.Abs(got-l))
		}
	}
	for _, s := range values {
		got := LinearToSRGB(SRGBToLinear(s))
		if math.Abs(got-s) > tolerance {
			t.Errorf("LinearToSRGB(SRGBToLinear(%v)) = %v, diff %v", s, got, math.Abs(got-s))
		}
	}
}

func TestTransferKnownValues(t *testing.T) {
	tests := []struct {
		name      string
		linear    float64
		encoded   float64
		tolerance float64
	}{
		{"black", 0, 0, 0},
		{"white", 1, 1, 1e-15},
		{"linear segment", 0.001, 0.01292, 1e-12},
		{"threshold", 0.0031308, 0.040449936, 1e-6},
		{"mid gray", 0.21404114048223255, 0.5, 1e-6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LinearToSRGB(tt.linear); math.Abs(got-tt.encoded) > tt.tolerance {
				t.Errorf("LinearToSRGB(%v) = %v, want %v", tt.linear, got, tt.encoded)
			}
			if got := SRGBToLinear(tt.encoded); math.Abs(got-tt.linear) > tt.tolerance {
				t.Errorf("SRGBToLinear(%v) = %v, want %v", tt.encoded, got, tt.linear)
			}
		})
	}
}

func TestTransferBranchContinuity(t *testing.T) {
	// The curve must be continuous across both branch thresholds.
	const eps = 1e-9
	lo := LinearToSRGB(0.0031308 - eps)
	hi := LinearToSRGB(0.0031308 + eps)
	if math.Abs(hi-lo) > 1e-6 {
		t.Errorf("encode discontinuity at threshold: %v vs %v", lo, hi)
	}
	lo = SRGBToLinear(0.04045 - eps)
	hi = SRGBToLinear(0.04045 + eps)
	if math.Abs(hi-lo) > 1e-6 {
		t.Errorf("decode discontinuity at threshold: %v vs %v", lo, hi)
	}
}

func TestDecodeChannelClamps(t *testing.T) {
	// decodeChannel guards the LinearLight domain even for channel
	// values outside [0, 1].
	if got := decodeChannel(1.5); got != 1 {
		t.Errorf("decodeChannel(1.5) = %v, want 1", got)
	}
	if got := decodeChannel(-0.5); got != 0 {
		t.Errorf("decodeChannel(-0.5) = %v, want 0", got)
	}
}
