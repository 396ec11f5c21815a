package flip

import (
	"fmt"
	"math"
	"time"
)

// Transform is a 2D translation in terminal cells.
type Transform struct {
	X, Y float64
}

// Identity is the zero translation.
var Identity = Transform{}

// Translate returns a Transform moving by (x, y) cells.
func Translate(x, y int) Transform {
	return Transform{X: float64(x), Y: float64(y)}
}

// Lerp interpolates between t and to; progress 0 yields t, 1 yields to.
func (t Transform) Lerp(to Transform, progress float64) Transform {
	return Transform{
		X: t.X + (to.X-t.X)*progress,
		Y: t.Y + (to.Y-t.Y)*progress,
	}
}

// Round snaps the translation to whole cells.
func (t Transform) Round() Point {
	return Point{X: int(math.Round(t.X)), Y: int(math.Round(t.Y))}
}

// IsIdentity reports whether the transform moves nothing.
func (t Transform) IsIdentity() bool {
	return t == Identity
}

// String renders the transform in CSS notation, e.g. "translate(200px, 0px)".
func (t Transform) String() string {
	return fmt.Sprintf("translate(%gpx, %gpx)", t.X, t.Y)
}

// Keyframes describes a two-stop translate animation.
type Keyframes struct {
	From Transform
	To   Transform
}

// Timing controls how long an animation runs and how progress is eased.
type Timing struct {
	Duration time.Duration
	// Easing maps linear progress to eased progress. Nil means Linear.
	Easing Easing
}

// progress returns the eased progress for elapsed time and whether the
// animation has reached its end.
func (t Timing) progress(elapsed time.Duration) (float64, bool) {
	if t.Duration <= 0 || elapsed >= t.Duration {
		return 1, true
	}
	if elapsed <= 0 {
		return 0, false
	}
	p := float64(elapsed) / float64(t.Duration)
	if t.Easing != nil {
		p = t.Easing(p)
	}
	return p, false
}
