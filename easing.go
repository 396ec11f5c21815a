package flip

import "math"

// Easing maps linear progress in [0, 1] to eased progress.
type Easing func(float64) float64

// Linear leaves progress unchanged.
func Linear(p float64) float64 { return p }

// The CSS named timing functions.
var (
	Ease      = CubicBezier(0.25, 0.1, 0.25, 1)
	EaseIn    = CubicBezier(0.42, 0, 1, 1)
	EaseOut   = CubicBezier(0, 0, 0.58, 1)
	EaseInOut = CubicBezier(0.42, 0, 0.58, 1)
)

// CubicBezier returns the easing defined by a cubic Bézier curve from (0,0)
// to (1,1) with control points (x1, y1) and (x2, y2), as in CSS
// cubic-bezier(). x1 and x2 must lie in [0, 1].
func CubicBezier(x1, y1, x2, y2 float64) Easing {
	// Polynomial coefficients for B(t) = ((a*t + b)*t + c)*t per axis.
	cx := 3 * x1
	bx := 3*(x2-x1) - cx
	ax := 1 - cx - bx
	cy := 3 * y1
	by := 3*(y2-y1) - cy
	ay := 1 - cy - by

	sampleX := func(t float64) float64 { return ((ax*t+bx)*t + cx) * t }
	sampleY := func(t float64) float64 { return ((ay*t+by)*t + cy) * t }
	slopeX := func(t float64) float64 { return (3*ax*t+2*bx)*t + cx }

	const epsilon = 1e-7

	solve := func(x float64) float64 {
		// Newton-Raphson first, it converges in a few steps for most curves.
		t := x
		for range 8 {
			d := sampleX(t) - x
			if math.Abs(d) < epsilon {
				return t
			}
			s := slopeX(t)
			if math.Abs(s) < 1e-6 {
				break
			}
			t -= d / s
		}

		// Bisection fallback for flat slopes.
		lo, hi := 0.0, 1.0
		t = x
		for range 64 {
			v := sampleX(t)
			if math.Abs(v-x) < epsilon {
				break
			}
			if v < x {
				lo = t
			} else {
				hi = t
			}
			t = (lo + hi) / 2
		}
		return t
	}

	return func(p float64) float64 {
		if p <= 0 {
			return 0
		}
		if p >= 1 {
			return 1
		}
		return sampleY(solve(p))
	}
}
