package util

import (
	"math"
	"testing"
)

func TestGenerateLut(t *testing.T) {
	square := func(v float64) float64 { return v * v }

	lut := GenerateLut(square, 5)
	want := []float64{0, 0.0625, 0.25, 0.5625, 1}
	if len(lut) != len(want) {
		t.Fatalf("got %d samples, want %d", len(lut), len(want))
	}
	for i := range want {
		if math.Abs(lut[i]-want[i]) > 1e-9 {
			t.Errorf("lut[%d] = %v, want %v", i, lut[i], want[i])
		}
	}
}

func TestGenerateLutEndpoints(t *testing.T) {
	identity := func(v float64) float64 { return v }

	lut := GenerateLut(identity, 16)
	if lut[0] != 0 || lut[len(lut)-1] != 1 {
		t.Errorf("endpoints = %v, %v, want 0 and 1", lut[0], lut[len(lut)-1])
	}
}

func TestGenerateLutDegenerateLength(t *testing.T) {
	identity := func(v float64) float64 { return v }

	for _, length := range []int{-1, 0, 1} {
		if lut := GenerateLut(identity, length); lut != nil {
			t.Errorf("GenerateLut(_, %d) = %v, want nil", length, lut)
		}
	}
}
