package flip

import (
	"time"

	"github.com/zoobzio/clockz"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flip/internal/debug"
)

// translatable is anything a Timeline can move.
type translatable interface {
	setOffset(Transform)
}

// Timeline runs translate animations. It plays the part of a compositor:
// animations advance when Step is called, and finish and cancel callbacks
// are delivered from Step, never from inside Cancel.
//
// A Timeline is not safe for concurrent use. Drive it from one loop, for
// example by registering Ticker with a Loop.
type Timeline struct {
	clock   clockz.Clock
	logger  *zap.Logger
	running []*animation
	pending []func()
}

// TimelineOption configures a Timeline.
type TimelineOption func(*Timeline)

// WithClock sets the clock animations are timed against.
// Use this with clockz.FakeClock for deterministic tests.
func WithClock(clock clockz.Clock) TimelineOption {
	return func(t *Timeline) {
		t.clock = clock
	}
}

// WithTimelineLogger sets the logger for animation lifecycle messages.
func WithTimelineLogger(l *zap.Logger) TimelineOption {
	return func(t *Timeline) {
		t.logger = l
	}
}

// NewTimeline creates an empty Timeline on the real clock.
func NewTimeline(opts ...TimelineOption) *Timeline {
	t := &Timeline{
		clock:  clockz.RealClock,
		logger: debug.Logger(),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Running returns the number of animations in flight.
func (t *Timeline) Running() int {
	return len(t.running)
}

// Idle reports whether there is nothing left to advance or deliver.
func (t *Timeline) Idle() bool {
	return len(t.running) == 0 && len(t.pending) == 0
}

// start begins animating target. The From transform is applied right away
// so the next frame already shows the inverted position.
func (t *Timeline) start(target translatable, kf Keyframes, timing Timing) *animation {
	a := &animation{
		timeline: t,
		target:   target,
		kf:       kf,
		timing:   timing,
		started:  t.clock.Now(),
	}
	target.setOffset(kf.From)
	t.running = append(t.running, a)
	t.logger.Debug("animation started",
		zap.Stringer("from", kf.From),
		zap.Duration("duration", timing.Duration))
	return a
}

// Step delivers callbacks queued since the previous step, advances every
// running animation to the clock's current time and settles those that
// reached their end. It reports whether anything changed on screen or is
// still in flight, which is the caller's cue to redraw.
func (t *Timeline) Step() bool {
	pending := t.pending
	t.pending = nil
	for _, fn := range pending {
		fn()
	}

	if len(t.running) == 0 {
		return len(pending) > 0
	}

	now := t.clock.Now()
	var done []*animation
	still := t.running[:0:0]
	for _, a := range t.running {
		if a.state != animRunning {
			continue
		}
		p, finished := a.timing.progress(now.Sub(a.started))
		a.target.setOffset(a.kf.From.Lerp(a.kf.To, p))
		if finished {
			a.state = animFinished
			done = append(done, a)
			continue
		}
		still = append(still, a)
	}
	t.running = still

	for _, a := range done {
		t.logger.Debug("animation finished", zap.Stringer("from", a.kf.From))
		a.fire()
	}
	return true
}

// Ticker returns a Watcher that steps the timeline every interval on the
// loop it is registered with.
func (t *Timeline) Ticker(interval time.Duration) Watcher {
	return &timerWatcher{
		clock:    t.clock,
		interval: interval,
		handler:  func() { t.Step() },
	}
}

func (t *Timeline) remove(a *animation) {
	for i, r := range t.running {
		if r == a {
			t.running = append(t.running[:i:i], t.running[i+1:]...)
			return
		}
	}
}

func (t *Timeline) queue(fn func()) {
	t.pending = append(t.pending, fn)
}

type animState uint8

const (
	animRunning animState = iota
	animFinished
	animCancelled
)

// animation is the Timeline's Animation handle.
type animation struct {
	timeline *Timeline
	target   translatable
	kf       Keyframes
	timing   Timing
	started  time.Time
	state    animState
	fired    bool

	onFinish []func()
	onCancel []func()
}

var _ Animation = (*animation)(nil)

func (a *animation) Cancel() {
	if a.state != animRunning {
		return
	}
	a.state = animCancelled
	a.target.setOffset(Identity)
	a.timeline.remove(a)
	a.timeline.logger.Debug("animation cancelled", zap.Stringer("from", a.kf.From))
	a.timeline.queue(a.fire)
}

func (a *animation) OnFinish(fn func()) {
	a.onFinish = append(a.onFinish, fn)
	if a.fired && a.state == animFinished {
		fn()
	}
}

func (a *animation) OnCancel(fn func()) {
	a.onCancel = append(a.onCancel, fn)
	if a.fired && a.state == animCancelled {
		fn()
	}
}

func (a *animation) Keyframes() Keyframes { return a.kf }

func (a *animation) Done() bool { return a.state != animRunning }

// fire runs the callbacks matching the settled state exactly once.
func (a *animation) fire() {
	if a.fired {
		return
	}
	a.fired = true
	fns := a.onFinish
	if a.state == animCancelled {
		fns = a.onCancel
	}
	for _, fn := range fns {
		fn()
	}
}

// settled is the handle returned when a node has no Timeline to run on:
// the move is applied instantly and the animation counts as finished.
type settled struct {
	kf Keyframes
}

var _ Animation = settled{}

func (settled) Cancel()                {}
func (settled) OnFinish(fn func())     { fn() }
func (settled) OnCancel(func())        {}
func (s settled) Keyframes() Keyframes { return s.kf }
func (settled) Done() bool             { return true }
