package flip

import "sync"

// EventKind identifies a reorder notification.
type EventKind int

const (
	// EventConsider is a provisional reorder while a drag is in progress.
	EventConsider EventKind = iota
	// EventFinalize is a committed reorder.
	EventFinalize
)

// String returns the event name as the reorder engine spells it.
func (k EventKind) String() string {
	switch k {
	case EventConsider:
		return "consider"
	case EventFinalize:
		return "finalize"
	default:
		return "unknown"
	}
}

// Trigger names what caused a reorder notification.
type Trigger string

const (
	TriggerDragStarted         Trigger = "dragStarted"
	TriggerDraggedEntered      Trigger = "draggedEntered"
	TriggerDraggedOverIndex    Trigger = "draggedOverIndex"
	TriggerDraggedLeft         Trigger = "draggedLeft"
	TriggerDroppedIntoZone     Trigger = "droppedIntoZone"
	TriggerDroppedIntoAnother  Trigger = "droppedIntoAnother"
	TriggerDroppedOutsideOfAny Trigger = "droppedOutsideOfAny"
	TriggerDragStopped         Trigger = "dragStopped"
)

// Source names the input device driving a reorder.
type Source string

const (
	SourcePointer  Source = "pointer"
	SourceKeyboard Source = "keyboard"
)

// Info describes the circumstances of a reorder notification.
type Info struct {
	Trigger Trigger
	// ID is the identity key of the dragged item.
	ID     any
	Source Source
}

// Detail is the payload of a reorder notification: the items in their new
// order plus what happened.
type Detail struct {
	Items []any
	Info  Info
}

// Event is a reorder notification delivered on a Target.
type Event struct {
	Kind   EventKind
	Detail Detail
}

// Handler receives reorder notifications forwarded by a Zone.
type Handler func(Detail)

// listener wraps a callback so registrations can be removed by identity.
type listener struct {
	fn func(Event)
}

// listenerSet is a per-target event registry. It is the node-level
// counterpart of an event bus: listeners are keyed by kind and removed
// through the release function returned from listen.
type listenerSet struct {
	mu     sync.RWMutex
	byKind map[EventKind][]*listener
}

func (s *listenerSet) listen(kind EventKind, fn func(Event)) func() {
	l := &listener{fn: fn}
	s.mu.Lock()
	if s.byKind == nil {
		s.byKind = make(map[EventKind][]*listener)
	}
	s.byKind[kind] = append(s.byKind[kind], l)
	s.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() { s.remove(kind, l) })
	}
}

func (s *listenerSet) remove(kind EventKind, l *listener) {
	s.mu.Lock()
	defer s.mu.Unlock()
	ls := s.byKind[kind]
	for i, c := range ls {
		if c == l {
			// Copy so a dispatch iterating the old slice is unaffected.
			next := make([]*listener, 0, len(ls)-1)
			next = append(next, ls[:i]...)
			s.byKind[kind] = append(next, ls[i+1:]...)
			return
		}
	}
}

func (s *listenerSet) dispatch(ev Event) {
	s.mu.RLock()
	ls := s.byKind[ev.Kind]
	s.mu.RUnlock()

	for _, l := range ls {
		l.fn(ev)
	}
}

func (s *listenerSet) count(kind EventKind) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byKind[kind])
}

// listenerScope owns a group of listener registrations and releases all of
// them together.
type listenerScope struct {
	releases []func()
}

func (s *listenerScope) add(release func()) {
	s.releases = append(s.releases, release)
}

// close releases every registration in reverse order. Safe to call twice.
func (s *listenerScope) close() {
	for i := len(s.releases) - 1; i >= 0; i-- {
		s.releases[i]()
	}
	s.releases = nil
}
