package flip

var (
	_ Target = (*Element)(nil)
	_ Node   = (*Element)(nil)
)

// Element is a node in a terminal element tree. Containers stack their
// children with a LayoutStyle; every element carries a translate offset
// that animations drive and that Bounds reports.
type Element struct {
	// Tree structure (single source of truth)
	children []*Element
	parent   *Element

	// Layout properties
	style  LayoutStyle
	width  int
	height int
	rect   Rect

	// Visual translation applied on top of rect
	offset Transform

	// Content
	text string
	data any

	// Animation runtime; inherited from the nearest ancestor when nil
	timeline *Timeline

	listeners listenerSet
}

// New creates a new Element with the given options.
// By default an Element is a zero-sized, non-wrapping row.
func New(opts ...Option) *Element {
	e := &Element{
		style: DefaultLayoutStyle(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Nodes returns the children as Nodes, in render order.
func (e *Element) Nodes() []Node {
	nodes := make([]Node, len(e.children))
	for i, c := range e.children {
		nodes[i] = c
	}
	return nodes
}

// Rect returns the rect assigned by the last Layout, without any offset.
func (e *Element) Rect() Rect {
	return e.rect
}

// Bounds returns where the element is drawn right now: its layout rect
// moved by the current translate offset, rounded to whole cells.
func (e *Element) Bounds() Rect {
	off := e.offset.Round()
	return e.rect.Translate(off.X, off.Y)
}

// Offset returns the current translate offset.
func (e *Element) Offset() Transform {
	return e.offset
}

func (e *Element) setOffset(t Transform) {
	e.offset = t
}

// Animate starts a translate animation on the element's timeline. An
// element outside any timeline jumps straight to the final transform and
// returns an already finished handle.
func (e *Element) Animate(kf Keyframes, timing Timing) Animation {
	tl := e.Timeline()
	if tl == nil {
		e.setOffset(kf.To)
		return settled{kf: kf}
	}
	return tl.start(e, kf, timing)
}

// Timeline returns the timeline animating this element, inherited from the
// closest ancestor that has one.
func (e *Element) Timeline() *Timeline {
	for el := e; el != nil; el = el.parent {
		if el.timeline != nil {
			return el.timeline
		}
	}
	return nil
}

// Listen registers fn for reorder events of the given kind.
func (e *Element) Listen(kind EventKind, fn func(Event)) func() {
	return e.listeners.listen(kind, fn)
}

// Dispatch delivers ev to this element's listeners.
func (e *Element) Dispatch(ev Event) {
	e.listeners.dispatch(ev)
}

// ListenerCount returns how many listeners are registered for kind.
func (e *Element) ListenerCount(kind EventKind) int {
	return e.listeners.count(kind)
}

// Size returns the element's fixed size.
func (e *Element) Size() Size {
	return Size{Width: e.width, Height: e.height}
}

// Text returns the element's text content.
func (e *Element) Text() string {
	return e.text
}

// SetText sets the element's text content.
func (e *Element) SetText(text string) {
	e.text = text
}

// Data returns the value attached with WithData or SetData, typically the
// list item the element renders.
func (e *Element) Data() any {
	return e.data
}

// SetData attaches a value to the element.
func (e *Element) SetData(v any) {
	e.data = v
}

// Style returns the element's layout style.
func (e *Element) Style() LayoutStyle {
	return e.style
}
