package flip

import (
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/grindlemire/go-flip/internal/debug"
)

var (
	// ErrAlreadyAttached is returned when a zone is attached to a Ref that
	// another zone still holds.
	ErrAlreadyAttached = errors.New("flip: container already has an attached zone")
	// ErrNilRef is returned when Attach is given no Ref.
	ErrNilRef = errors.New("flip: nil container ref")
	// ErrNilEngine is returned when Attach is given no Engine.
	ErrNilEngine = errors.New("flip: nil reorder engine")
	// ErrNilHandler is returned when a reorder handler is nil.
	ErrNilHandler = errors.New("flip: nil reorder handler")
)

// ZoneState is the attachment state of a Zone.
type ZoneState int

const (
	Unattached ZoneState = iota
	Attached
)

// String returns the state name.
func (s ZoneState) String() string {
	if s == Attached {
		return "attached"
	}
	return "unattached"
}

// Zone binds a Flipper to a reorder engine on one container.
//
// The zone captures child rects when the engine emits a notification,
// before the caller's handler gets the chance to change the items, and
// animates once the caller reports through Committed that the new order is
// laid out. The caller drives the two hooks of each render:
//
//	zone.Update(cfg) // before mutating the container
//	// ... rebuild children in the new order and lay them out ...
//	zone.Committed() // after the new order is on screen
type Zone struct {
	ref        *Ref
	engine     Engine
	onConsider Handler
	onFinalize Handler
	easing     Easing
	logger     *zap.Logger

	state   ZoneState
	idKey   string
	cfg     Config
	session Session
	flipper *Flipper
	scope   *listenerScope

	// committed is the id order animated to by the last Committed.
	committed []any
	// captured is set when a notification captured rects that no
	// Committed has animated from yet.
	captured bool
}

// Attach starts a zone on the container behind ref: it builds a Flipper,
// subscribes to the container's reorder events and starts engine on it.
// onConsider receives provisional reorders; finalize notifications go to the
// handler given with WithFinalize, or to onConsider.
//
// If ref is not set yet the zone is attached but idle; it binds to the
// container on the first Update or Committed that finds it mounted. A Ref
// can hold only one zone at a time.
func Attach(ref *Ref, engine Engine, cfg Config, onConsider Handler, opts ...ZoneOption) (*Zone, error) {
	if ref == nil {
		return nil, ErrNilRef
	}
	if engine == nil {
		return nil, ErrNilEngine
	}
	if onConsider == nil {
		return nil, ErrNilHandler
	}

	z := &Zone{
		ref:        ref,
		engine:     engine,
		onConsider: onConsider,
		easing:     EaseOut,
		logger:     debug.Logger(),
	}
	for _, opt := range opts {
		if err := opt(z); err != nil {
			return nil, fmt.Errorf("configure zone: %w", err)
		}
	}
	if z.onFinalize == nil {
		z.onFinalize = onConsider
	}

	z.idKey = cfg.IDKey
	if z.idKey == "" {
		z.idKey = DefaultIDKeyName()
	}
	z.cfg = cfg.withDefaults(z.idKey)

	if !ref.claim() {
		return nil, ErrAlreadyAttached
	}
	z.state = Attached

	if _, err := z.bind(); err != nil {
		ref.unclaim()
		z.state = Unattached
		return nil, err
	}
	return z, nil
}

// bind connects the zone to the mounted container. It reports whether it
// bound just now; binding an already bound zone or an unmounted container
// does nothing.
func (z *Zone) bind() (bool, error) {
	if z.session != nil {
		return false, nil
	}
	target := z.ref.Get()
	if target == nil {
		z.logger.Debug("zone waiting for container to mount")
		return false, nil
	}

	scope := &listenerScope{}
	bound := false
	defer func() {
		if !bound {
			scope.close()
		}
	}()

	flipper := NewFlipper(z.ref,
		WithDuration(z.cfg.FlipDuration),
		WithEasing(z.easing),
		WithFlipperLogger(z.logger))

	scope.add(target.Listen(EventConsider, z.handle(flipper, EventConsider)))
	scope.add(target.Listen(EventFinalize, z.handle(flipper, EventFinalize)))

	session, err := z.engine.Init(target, z.cfg)
	if err != nil {
		return false, fmt.Errorf("init reorder engine: %w", err)
	}

	z.flipper = flipper
	z.session = session
	z.scope = scope
	z.committed = z.ids()
	z.captured = false
	bound = true

	z.logger.Debug("zone attached",
		zap.Int("items", len(z.cfg.Items)),
		zap.String("idKey", z.idKey))
	return true, nil
}

// handle builds the listener for one notification kind. Rects are captured
// from the current configured order before the caller sees the new one.
func (z *Zone) handle(f *Flipper, kind EventKind) func(Event) {
	return func(ev Event) {
		f.Capture(z.ids())
		z.captured = true
		z.logger.Debug("reorder notification",
			zap.Stringer("kind", kind),
			zap.String("trigger", string(ev.Detail.Info.Trigger)))

		if kind == EventFinalize {
			z.onFinalize(ev.Detail)
			return
		}
		z.onConsider(ev.Detail)
	}
}

// Update is the before-mutation hook. It stores cfg, merged with the
// defaults, and hands it to the engine. It never captures or animates.
func (z *Zone) Update(cfg Config) {
	if z.state != Attached {
		return
	}
	z.cfg = cfg.withDefaults(z.idKey)

	fresh, err := z.bind()
	if err != nil {
		z.logger.Debug("zone bind failed", zap.Error(err))
		return
	}
	if z.session == nil || fresh {
		return
	}
	z.session.Update(z.cfg)
	z.flipper.SetDuration(z.cfg.FlipDuration)
}

// Committed is the after-mutation hook. Call it once the container shows
// the items of the last Update in their new order. It animates every child
// that moved since the last notification captured its rect.
func (z *Zone) Committed() {
	if z.state != Attached {
		return
	}
	if _, err := z.bind(); err != nil {
		z.logger.Debug("zone bind failed", zap.Error(err))
		return
	}
	if z.flipper == nil {
		return
	}

	ids := z.ids()
	if !z.captured && slices.Equal(ids, z.committed) {
		return
	}
	z.flipper.Animate(ids)
	z.committed = ids
	z.captured = false
}

// Detach releases the container: listeners are removed, the engine session
// is destroyed and the Flipper is dropped. Animations in flight are left to
// finish. Detach is idempotent.
func (z *Zone) Detach() {
	if z.state != Attached {
		return
	}
	if z.scope != nil {
		z.scope.close()
	}
	if z.session != nil {
		z.session.Destroy()
	}
	z.scope = nil
	z.session = nil
	z.flipper = nil
	z.committed = nil
	z.state = Unattached
	z.ref.unclaim()
	z.logger.Debug("zone detached")
}

// State returns whether the zone is attached.
func (z *Zone) State() ZoneState {
	return z.state
}

// Bound reports whether the zone has found its container and started the
// engine on it.
func (z *Zone) Bound() bool {
	return z.session != nil
}

// Config returns the current merged configuration.
func (z *Zone) Config() Config {
	return z.cfg
}

// Flipper returns the zone's Flipper, or nil while unbound or detached.
func (z *Zone) Flipper() *Flipper {
	return z.flipper
}

func (z *Zone) ids() []any {
	return z.cfg.IDs()
}
