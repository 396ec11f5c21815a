package keyboard

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	flip "github.com/grindlemire/go-flip"
	"github.com/grindlemire/go-flip/internal/debug"
)

// DragDisabledOption is the Config.Extra key that, when true, stops items
// from being picked up.
const DragDisabledOption = "dragDisabled"

var (
	ErrNilTarget     = errors.New("keyboard: nil target")
	ErrDestroyed     = errors.New("keyboard: session destroyed")
	ErrDisabled      = errors.New("keyboard: dragging disabled")
	ErrAlreadyPicked = errors.New("keyboard: an item is already picked up")
)

var (
	_ flip.Engine  = (*Engine)(nil)
	_ flip.Session = (*Session)(nil)
)

// Engine starts keyboard sessions on containers.
type Engine struct {
	logger *zap.Logger
	active *Session
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the engine's logger.
func WithLogger(l *zap.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine.
func New(opts ...Option) *Engine {
	e := &Engine{logger: debug.Logger()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Init starts a session on target.
func (e *Engine) Init(target flip.Target, cfg flip.Config) (flip.Session, error) {
	if target == nil {
		return nil, ErrNilTarget
	}
	s := &Session{
		engine: e,
		target: target,
		picked: -1,
	}
	s.Update(cfg)
	e.active = s
	e.logger.Debug("keyboard session started", zap.Int("items", len(cfg.Items)))
	return s, nil
}

// Active returns the most recently started session that is still alive.
func (e *Engine) Active() *Session {
	return e.active
}

// Session is a keyboard engine running on one container.
type Session struct {
	engine    *Engine
	target    flip.Target
	cfg       flip.Config
	items     []any
	picked    int
	origin    int
	destroyed bool
}

// Update takes the host's current items and options. If the picked item
// is no longer in range the pick is dropped silently; a cancel slot past the
// end of a shorter list moves to the last slot.
func (s *Session) Update(cfg flip.Config) {
	s.cfg = cfg
	s.items = slices.Clone(cfg.Items)
	if s.picked >= len(s.items) {
		s.picked = -1
		return
	}
	s.origin = min(s.origin, len(s.items)-1)
}

// Destroy ends the session. Further calls return ErrDestroyed or do nothing.
func (s *Session) Destroy() {
	s.destroyed = true
	s.picked = -1
	if s.engine.active == s {
		s.engine.active = nil
	}
}

// Items returns the session's view of the item order.
func (s *Session) Items() []any {
	return slices.Clone(s.items)
}

// Picked returns the index of the picked item.
func (s *Session) Picked() (int, bool) {
	return s.picked, s.picked >= 0
}

// Pick lifts the item at index and emits a dragStarted consider.
func (s *Session) Pick(index int) error {
	switch {
	case s.destroyed:
		return ErrDestroyed
	case s.disabled():
		return ErrDisabled
	case s.picked >= 0:
		return ErrAlreadyPicked
	case index < 0 || index >= len(s.items):
		return fmt.Errorf("keyboard: pick index %d out of range [0, %d)", index, len(s.items))
	}
	s.picked = index
	s.origin = index
	s.emit(flip.EventConsider, flip.TriggerDragStarted)
	return nil
}

// Move shifts the picked item by delta slots, clamped to the list, and
// emits a draggedOverIndex consider. It reports whether the item moved.
func (s *Session) Move(delta int) bool {
	if s.destroyed || s.picked < 0 {
		return false
	}
	to := min(max(s.picked+delta, 0), len(s.items)-1)
	if to == s.picked {
		return false
	}
	s.relocate(s.picked, to)
	s.picked = to
	s.emit(flip.EventConsider, flip.TriggerDraggedOverIndex)
	return true
}

// Drop puts the picked item down where it is and emits a droppedIntoZone
// finalize. It reports whether an item was picked.
func (s *Session) Drop() bool {
	if s.destroyed || s.picked < 0 {
		return false
	}
	s.emit(flip.EventFinalize, flip.TriggerDroppedIntoZone)
	s.picked = -1
	return true
}

// Cancel returns the picked item to where it was picked from and emits a
// dragStopped finalize. It reports whether an item was picked.
func (s *Session) Cancel() bool {
	if s.destroyed || s.picked < 0 {
		return false
	}
	s.relocate(s.picked, s.origin)
	s.picked = s.origin
	s.emit(flip.EventFinalize, flip.TriggerDragStopped)
	s.picked = -1
	return true
}

func (s *Session) relocate(from, to int) {
	it := s.items[from]
	s.items = slices.Delete(s.items, from, from+1)
	s.items = slices.Insert(s.items, to, it)
}

func (s *Session) disabled() bool {
	v, _ := s.cfg.Extra[DragDisabledOption].(bool)
	return v
}

func (s *Session) emit(kind flip.EventKind, trigger flip.Trigger) {
	info := flip.Info{
		Trigger: trigger,
		ID:      flip.ItemID(s.items[s.picked], s.cfg.KeyName()),
		Source:  flip.SourceKeyboard,
	}
	s.engine.logger.Debug("keyboard reorder",
		zap.Stringer("kind", kind),
		zap.String("trigger", string(trigger)),
		zap.Any("id", info.ID))
	s.target.Dispatch(flip.Event{
		Kind:   kind,
		Detail: flip.Detail{Items: slices.Clone(s.items), Info: info},
	})
}
