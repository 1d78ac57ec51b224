package preset

import (
	"math"
	"testing"
)

func TestCurveNamed(t *testing.T) {
	tests := []struct {
		spec string
		in   float64
		want float64
	}{
		{"", 0.5, 0.5},
		{"linear", 0.25, 0.25},
		{"ease-in", 0.5, 0.25},
		{"ease-out", 0.5, 0.75},
		{"ease-in-out", 0.5, 0.5},
	}

	for _, tt := range tests {
		t.Run(tt.spec, func(t *testing.T) {
			got := Curve(tt.spec)(tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Curve(%q)(%v) = %v, want %v", tt.spec, tt.in, got, tt.want)
			}
		})
	}
}

func TestCurveCubicBezier(t *testing.T) {
	// Control points on the diagonal reproduce the identity curve.
	linear := Curve("cubic-bezier(0.5, 0.5, 0.5, 0.5)")
	for _, in := range []float64{0, 0.2, 0.5, 0.8, 1} {
		if got := linear(in); math.Abs(got-in) > 1e-3 {
			t.Errorf("diagonal bezier at %v = %v, want %v", in, got, in)
		}
	}

	curve := Curve("cubic-bezier(.75,.05,.86,.08)")
	if got := curve(0); got != 0 {
		t.Errorf("curve(0) = %v, want 0", got)
	}
	if got := curve(1); got != 1 {
		t.Errorf("curve(1) = %v, want 1", got)
	}
	if got := curve(0.5); got >= 0.5 {
		t.Errorf("accelerating curve at 0.5 = %v, want < 0.5", got)
	}
}

func TestCurveFallsBackToLinear(t *testing.T) {
	for _, spec := range []string{"bounce", "cubic-bezier(1,2,3)", "cubic-bezier(a,b,c,d)", "cubic-bezier(.2,.6,0,1"} {
		if got := Curve(spec)(0.3); got != 0.3 {
			t.Errorf("Curve(%q)(0.3) = %v, want linear fallback", spec, got)
		}
	}
}
