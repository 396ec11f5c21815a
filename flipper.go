package flip

import (
	"time"

	"go.uber.org/zap"

	"github.com/grindlemire/go-flip/internal/debug"
)

// Flipper captures the rects of one container's direct children and
// animates them from their captured position to their current one.
//
// Children are matched to identity keys by position: ids[i] names the i-th
// child. A Flipper owns its capture map and its active-animation map;
// Capture and Animate are the only operations that mutate them. Not safe for
// concurrent use.
type Flipper struct {
	ref      *Ref
	duration time.Duration
	easing   Easing
	logger   *zap.Logger

	rects map[any]Rect
	anims map[any]Animation
}

// FlipperOption configures a Flipper.
type FlipperOption func(*Flipper)

// WithDuration sets the animation duration. Default is DefaultFlipDuration.
func WithDuration(d time.Duration) FlipperOption {
	return func(f *Flipper) {
		f.duration = d
	}
}

// WithEasing sets the timing curve. Default is EaseOut.
func WithEasing(e Easing) FlipperOption {
	return func(f *Flipper) {
		f.easing = e
	}
}

// WithFlipperLogger sets the flipper's logger.
func WithFlipperLogger(l *zap.Logger) FlipperOption {
	return func(f *Flipper) {
		f.logger = l
	}
}

// NewFlipper creates a Flipper for the container behind ref.
func NewFlipper(ref *Ref, opts ...FlipperOption) *Flipper {
	f := &Flipper{
		ref:      ref,
		duration: DefaultFlipDuration,
		easing:   EaseOut,
		logger:   debug.Logger(),
		rects:    make(map[any]Rect),
		anims:    make(map[any]Animation),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Capture records the current rect of every child, keyed by ids in the
// children's current order.
//
// Every running animation is cancelled first so no rect is read while a
// transform is still displacing it, and the previous capture is dropped
// whole. Children beyond len(ids) are not captured.
func (f *Flipper) Capture(ids []any) {
	for _, a := range f.anims {
		a.Cancel()
	}
	f.anims = make(map[any]Animation)
	f.rects = make(map[any]Rect, len(ids))

	target := f.ref.Get()
	if target == nil {
		f.logger.Debug("capture skipped, container not mounted")
		return
	}

	nodes := target.Nodes()
	for i, n := range nodes {
		if i >= len(ids) {
			break
		}
		f.rects[ids[i]] = n.Bounds()
	}
	f.logger.Debug("captured",
		zap.Int("children", len(nodes)),
		zap.Int("rects", len(f.rects)))
}

// Animate starts an animation for every child whose rect moved since the
// last Capture. ids lists the identity keys in the children's new order.
// Children with no captured rect, or that did not move, are left alone. A
// child still animating from an earlier Animate is cancelled first, so each
// id has at most one animation in flight.
func (f *Flipper) Animate(ids []any) {
	target := f.ref.Get()
	if target == nil {
		f.logger.Debug("animate skipped, container not mounted")
		return
	}

	timing := Timing{Duration: f.duration, Easing: f.easing}
	for i, n := range target.Nodes() {
		if i >= len(ids) {
			break
		}
		id := ids[i]
		before, ok := f.rects[id]
		if !ok {
			continue
		}
		// A second Animate before the next Capture supersedes the handle;
		// the old one must stop before the new position is read.
		if prev, ok := f.anims[id]; ok {
			prev.Cancel()
			delete(f.anims, id)
		}
		after := n.Bounds()
		delta := before.Delta(after)
		if delta.IsZero() {
			continue
		}

		a := n.Animate(Keyframes{From: Translate(delta.X, delta.Y), To: Identity}, timing)
		f.anims[id] = a
		release := func() { f.release(id, a) }
		a.OnFinish(release)
		a.OnCancel(release)

		f.logger.Debug("animating",
			zap.Any("id", id),
			zap.Int("dx", delta.X),
			zap.Int("dy", delta.Y))
	}
}

// release drops id from the active set if it still maps to a. A handle that
// was already superseded or removed leaves the map untouched.
func (f *Flipper) release(id any, a Animation) {
	if cur, ok := f.anims[id]; ok && cur == a {
		delete(f.anims, id)
	}
}

// SetDuration changes the duration used by subsequent animations.
func (f *Flipper) SetDuration(d time.Duration) {
	f.duration = d
}

// Duration returns the animation duration.
func (f *Flipper) Duration() time.Duration {
	return f.duration
}

// Captured returns the rect captured for id by the last Capture.
func (f *Flipper) Captured(id any) (Rect, bool) {
	r, ok := f.rects[id]
	return r, ok
}

// Animating reports whether id has an animation in flight.
func (f *Flipper) Animating(id any) bool {
	_, ok := f.anims[id]
	return ok
}

// Animation returns the in-flight animation for id, if any.
func (f *Flipper) Animation(id any) (Animation, bool) {
	a, ok := f.anims[id]
	return a, ok
}

// Active returns the number of animations in flight.
func (f *Flipper) Active() int {
	return len(f.anims)
}
