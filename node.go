package flip

// Node is a rendered item whose geometry can be read and animated.
type Node interface {
	// Bounds returns the node's current on-screen rect, including any
	// translate animation in flight.
	Bounds() Rect

	// Animate starts a translate animation on the node and returns its
	// handle. The From transform is applied immediately.
	Animate(kf Keyframes, timing Timing) Animation
}

// Container exposes the direct children of a list or grid in render order.
type Container interface {
	Nodes() []Node
}

// Target is a container that reorder notifications are delivered on.
type Target interface {
	Container

	// Listen registers fn for events of the given kind and returns the
	// function that removes the registration. Calling it more than once is
	// a no-op.
	Listen(kind EventKind, fn func(Event)) (release func())

	// Dispatch delivers ev to the listeners registered for ev.Kind.
	Dispatch(ev Event)
}

// Animation is a handle to one running translate animation. A handle is
// never reused: once finished or cancelled it stays that way.
type Animation interface {
	// Cancel stops the animation and removes its effect immediately.
	// Cancel callbacks run on a later loop turn. Cancelling a settled
	// animation does nothing.
	Cancel()

	// OnFinish registers fn to run when the animation completes naturally.
	OnFinish(fn func())

	// OnCancel registers fn to run when the animation is cancelled.
	OnCancel(fn func())

	// Keyframes returns the transforms the animation runs between.
	Keyframes() Keyframes

	// Done reports whether the animation has finished or been cancelled.
	Done() bool
}
