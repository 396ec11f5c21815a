package flip

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestFlipper(target Target, opts ...FlipperOption) *Flipper {
	opts = append([]FlipperOption{WithFlipperLogger(zap.NewNop())}, opts...)
	return NewFlipper(refTo(target), opts...)
}

func TestFlipper_EndToEndReverse(t *testing.T) {
	target := newFakeTarget(abc()...)
	f := newTestFlipper(target)

	f.Capture(ids("A", "B", "C"))
	a, b, c := target.nodes[0], target.nodes[1], target.nodes[2]

	// DOM now renders C, B, A.
	target.reorder([]int{2, 1, 0}, abc()...)
	f.Animate(ids("C", "B", "A"))

	require.Len(t, c.anims, 1)
	assert.Equal(t, Keyframes{From: Translate(200, 0), To: Identity}, c.last().Keyframes())
	assert.Equal(t, "translate(200px, 0px)", c.last().Keyframes().From.String())

	require.Len(t, a.anims, 1)
	assert.Equal(t, Translate(-200, 0), a.last().Keyframes().From)

	assert.Empty(t, b.anims, "B did not move")
	assert.Equal(t, 2, f.Active())
	assert.True(t, f.Animating("A"))
	assert.False(t, f.Animating("B"))
	assert.True(t, f.Animating("C"))
}

func TestFlipper_Animate(t *testing.T) {
	type tc struct {
		before     []Rect
		captureIDs []any
		after      []Rect
		order      []int
		animateIDs []any
		wantFrom   map[string]Transform
	}

	tests := map[string]tc{
		"no movement creates no animation": {
			before:     abc(),
			captureIDs: ids("A", "B", "C"),
			after:      abc(),
			order:      []int{0, 1, 2},
			animateIDs: ids("A", "B", "C"),
			wantFrom:   map[string]Transform{},
		},
		"delta is before minus after": {
			before:     []Rect{NewRect(200, 0, 100, 1)},
			captureIDs: ids("C"),
			after:      []Rect{NewRect(0, 0, 100, 1)},
			order:      []int{0},
			animateIDs: ids("C"),
			wantFrom:   map[string]Transform{"C": Translate(200, 0)},
		},
		"vertical move": {
			before:     []Rect{NewRect(0, 0, 10, 2), NewRect(0, 3, 10, 2)},
			captureIDs: ids("A", "B"),
			after:      []Rect{NewRect(0, 0, 10, 2), NewRect(0, 3, 10, 2)},
			order:      []int{1, 0},
			animateIDs: ids("B", "A"),
			wantFrom: map[string]Transform{
				"B": Translate(0, 3),
				"A": Translate(0, -3),
			},
		},
		"resize without move is not animated": {
			before:     []Rect{NewRect(5, 5, 10, 2)},
			captureIDs: ids("A"),
			after:      []Rect{NewRect(5, 5, 20, 4)},
			order:      []int{0},
			animateIDs: ids("A"),
			wantFrom:   map[string]Transform{},
		},
		"unknown id is skipped": {
			before:     abc()[:2],
			captureIDs: ids("A", "B"),
			after:      abc(),
			order:      []int{0, 1, 0},
			animateIDs: ids("N", "A", "B"),
			wantFrom: map[string]Transform{
				"A": Translate(-100, 0),
				"B": Translate(-100, 0),
			},
		},
		"short capture ids leave trailing children uncaptured": {
			before:     abc(),
			captureIDs: ids("A"),
			after:      abc(),
			order:      []int{2, 1, 0},
			animateIDs: ids("C", "B", "A"),
			wantFrom:   map[string]Transform{"A": Translate(-200, 0)},
		},
		"short animate ids leave trailing children alone": {
			before:     abc(),
			captureIDs: ids("A", "B", "C"),
			after:      abc(),
			order:      []int{2, 1, 0},
			animateIDs: ids("C"),
			wantFrom:   map[string]Transform{"C": Translate(200, 0)},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			target := newFakeTarget(tt.before...)
			f := newTestFlipper(target)
			f.Capture(tt.captureIDs)

			// Duplicate old indexes stand for newly rendered nodes.
			next := make([]*fakeNode, len(tt.order))
			seen := map[int]bool{}
			for i, j := range tt.order {
				if seen[j] {
					next[i] = &fakeNode{owner: target}
				} else {
					next[i] = target.nodes[j]
					seen[j] = true
				}
				next[i].rect = tt.after[i]
			}
			target.nodes = next

			require.NotPanics(t, func() { f.Animate(tt.animateIDs) })

			assert.Equal(t, len(tt.wantFrom), f.Active())
			for i, n := range target.nodes {
				if i >= len(tt.animateIDs) {
					assert.Empty(t, n.anims)
					continue
				}
				id := tt.animateIDs[i].(string)
				want, ok := tt.wantFrom[id]
				if !ok {
					assert.Empty(t, n.anims, "id %s", id)
					continue
				}
				require.Len(t, n.anims, 1, "id %s", id)
				assert.Equal(t, want, n.last().Keyframes().From, "id %s", id)
				assert.Equal(t, Identity, n.last().Keyframes().To, "id %s", id)
			}
		})
	}
}

func TestFlipper_TimingFromOptions(t *testing.T) {
	target := newFakeTarget(abc()...)
	f := newTestFlipper(target, WithDuration(350*time.Millisecond), WithEasing(Linear))

	f.Capture(ids("A", "B", "C"))
	target.reorder([]int{2, 1, 0}, abc()...)
	f.Animate(ids("C", "B", "A"))

	timing := target.nodes[0].last().timing
	assert.Equal(t, 350*time.Millisecond, timing.Duration)
	assert.InDelta(t, 0.3, timing.Easing(0.3), 1e-9)

	f.SetDuration(time.Second)
	assert.Equal(t, time.Second, f.Duration())
}

func TestFlipper_DefaultTiming(t *testing.T) {
	f := NewFlipper(NewRef())
	assert.Equal(t, DefaultFlipDuration, f.Duration())
	assert.Equal(t, 200*time.Millisecond, f.Duration())
}

func TestFlipper_CaptureCancelsEverything(t *testing.T) {
	target := newFakeTarget(abc()...)
	f := newTestFlipper(target)

	f.Capture(ids("A", "B", "C"))
	target.reorder([]int{2, 1, 0}, abc()...)
	f.Animate(ids("C", "B", "A"))
	require.Equal(t, 2, f.Active())

	c, a := target.nodes[0].last(), target.nodes[2].last()

	f.Capture(ids("C", "B", "A"))

	// Empty before any callback is delivered.
	assert.Equal(t, 0, f.Active())
	assert.False(t, f.Animating("A"))
	assert.False(t, f.Animating("C"))
	assert.Equal(t, 1, c.cancels)
	assert.Equal(t, 1, a.cancels)
	assert.True(t, c.Done())

	target.flush()
	assert.Equal(t, 0, f.Active())
}

func TestFlipper_CaptureReplaces(t *testing.T) {
	target := newFakeTarget(abc()...)
	f := newTestFlipper(target)

	f.Capture(ids("A", "B", "C"))
	_, ok := f.Captured("A")
	require.True(t, ok)

	f.Capture(ids("X", "Y", "Z"))

	for _, id := range ids("A", "B", "C") {
		_, ok := f.Captured(id)
		assert.False(t, ok, "id %v should be gone", id)
	}
	r, ok := f.Captured("Z")
	require.True(t, ok)
	assert.Equal(t, NewRect(200, 0, 100, 1), r)
}

func TestFlipper_AnimateDoesNotTouchCapture(t *testing.T) {
	target := newFakeTarget(abc()...)
	f := newTestFlipper(target)

	f.Capture(ids("A", "B", "C"))
	target.reorder([]int{2, 1, 0}, abc()...)
	f.Animate(ids("C", "B", "A"))

	r, ok := f.Captured("A")
	require.True(t, ok)
	assert.Equal(t, NewRect(0, 0, 100, 1), r)
}

func TestFlipper_AnimateWithoutCapture(t *testing.T) {
	target := newFakeTarget(abc()...)
	f := newTestFlipper(target)

	f.Animate(ids("A", "B", "C"))

	assert.Equal(t, 0, f.Active())
	for _, n := range target.nodes {
		assert.Empty(t, n.anims)
	}
}

func TestFlipper_CleanupRemovesOnce(t *testing.T) {
	type tc struct {
		settle func(f *Flipper, target *fakeTarget, a *fakeAnim)
	}

	tests := map[string]tc{
		"natural finish": {
			settle: func(f *Flipper, target *fakeTarget, a *fakeAnim) {
				a.finish()
				target.flush()
			},
		},
		"cancelled by capture": {
			settle: func(f *Flipper, target *fakeTarget, a *fakeAnim) {
				f.Capture(ids("C", "B", "A"))
				target.flush()
			},
		},
		"finished then cancelled": {
			settle: func(f *Flipper, target *fakeTarget, a *fakeAnim) {
				a.finish()
				target.flush()
				a.Cancel()
				target.flush()
			},
		},
		"finish callback delivered twice": {
			settle: func(f *Flipper, target *fakeTarget, a *fakeAnim) {
				a.finish()
				target.flush()
				for _, fn := range a.onFinish {
					fn()
				}
			},
		},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			target := newFakeTarget(abc()...)
			f := newTestFlipper(target)
			f.Capture(ids("A", "B", "C"))
			target.reorder([]int{2, 1, 0}, abc()...)
			f.Animate(ids("C", "B", "A"))
			require.True(t, f.Animating("C"))

			c := target.nodes[0].last()
			require.NotPanics(t, func() { tt.settle(f, target, c) })
			assert.False(t, f.Animating("C"))
		})
	}
}

func TestFlipper_LateCancelKeepsNewerHandle(t *testing.T) {
	target := newFakeTarget(abc()...)
	f := newTestFlipper(target)

	f.Capture(ids("A", "B", "C"))
	target.reorder([]int{2, 1, 0}, abc()...)
	f.Animate(ids("C", "B", "A"))
	first := target.nodes[0].last()

	// Second cycle before the first cycle's cancel callbacks arrive.
	f.Capture(ids("C", "B", "A"))
	target.reorder([]int{2, 1, 0}, abc()...)
	f.Animate(ids("A", "B", "C"))
	require.True(t, f.Animating("C"))

	cur, ok := f.Animation("C")
	require.True(t, ok)
	require.NotSame(t, first, cur)

	// The stale cancel callback for the first handle must not evict the
	// second one.
	target.flush()
	assert.True(t, f.Animating("C"))
	assert.True(t, f.Animating("A"))
}

func TestFlipper_UnmountedContainer(t *testing.T) {
	ref := NewRef()
	f := NewFlipper(ref, WithFlipperLogger(zap.NewNop()))

	require.NotPanics(t, func() {
		f.Capture(ids("A", "B"))
		f.Animate(ids("B", "A"))
	})
	_, ok := f.Captured("A")
	assert.False(t, ok)

	// Mount later and the same flipper works.
	target := newFakeTarget(abc()...)
	ref.Set(target)
	f.Capture(ids("A", "B", "C"))
	_, ok = f.Captured("A")
	assert.True(t, ok)

	// Unmount mid-cycle: animate is skipped, capture survives.
	ref.Clear()
	f.Animate(ids("C", "B", "A"))
	assert.Equal(t, 0, f.Active())
	_, ok = f.Captured("A")
	assert.True(t, ok)
}

func TestFlipper_UnmountedCaptureStillCancels(t *testing.T) {
	target := newFakeTarget(abc()...)
	ref := refTo(target)
	f := NewFlipper(ref, WithFlipperLogger(zap.NewNop()))

	f.Capture(ids("A", "B", "C"))
	target.reorder([]int{2, 1, 0}, abc()...)
	f.Animate(ids("C", "B", "A"))
	require.Equal(t, 2, f.Active())

	ref.Clear()
	f.Capture(ids("C", "B", "A"))
	assert.Equal(t, 0, f.Active())
	assert.Equal(t, 1, target.nodes[0].last().cancels)
}
