package preset

import (
	"math"
	"strconv"
	"strings"

	"github.com/fogleman/ease"
)

// A CurveFunc maps linear progress in [0,1] to eased progress.
type CurveFunc func(t float64) float64

// Curve resolves an easing identifier to a curve function. An empty or
// unknown identifier resolves to linear, matching the descriptor default.
func Curve(spec string) CurveFunc {
	switch spec {
	case "", "linear":
		return ease.Linear
	case "ease-in":
		return ease.InQuad
	case "ease-out":
		return ease.OutQuad
	case "ease-in-out":
		return ease.InOutQuad
	case "ease":
		return cubicBezier(0.25, 0.1, 0.25, 1)
	}

	if f := parseCubicBezier(spec); f != nil {
		return f
	}
	return ease.Linear
}

func parseCubicBezier(spec string) CurveFunc {
	if !strings.HasPrefix(spec, "cubic-bezier(") || !strings.HasSuffix(spec, ")") {
		return nil
	}

	args := strings.TrimSuffix(strings.TrimPrefix(spec, "cubic-bezier("), ")")
	parts := strings.Split(args, ",")
	if len(parts) != 4 {
		return nil
	}

	var p [4]float64
	for i, s := range parts {
		v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil
		}
		p[i] = v
	}

	return cubicBezier(p[0], p[1], p[2], p[3])
}

// cubicBezier evaluates the timing curve defined by control points
// (x1,y1) and (x2,y2) with fixed endpoints at (0,0) and (1,1), solving
// x(t) = progress by bisection.
func cubicBezier(x1, y1, x2, y2 float64) CurveFunc {
	sample := func(a, b, t float64) float64 {
		return 3*a*t*(1-t)*(1-t) + 3*b*t*t*(1-t) + t*t*t
	}

	return func(progress float64) float64 {
		if progress <= 0 {
			return 0
		}
		if progress >= 1 {
			return 1
		}

		lo, hi := 0.0, 1.0
		t := progress
		for i := 0; i < 32; i++ {
			x := sample(x1, x2, t)
			if math.Abs(x-progress) < 1e-6 {
				break
			}
			if x < progress {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}

		return sample(y1, y2, t)
	}
}
