package flip

import "time"

// fakeAnim is an Animation whose callbacks are delivered only when the
// owning fakeTarget flushes, mimicking a compositor that reports back on a
// later loop turn.
type fakeAnim struct {
	owner    *fakeTarget
	kf       Keyframes
	timing   Timing
	state    animState
	onFinish []func()
	onCancel []func()
	cancels  int
}

func (a *fakeAnim) Cancel() {
	a.cancels++
	if a.state != animRunning {
		return
	}
	a.state = animCancelled
	a.owner.pending = append(a.owner.pending, func() {
		for _, fn := range a.onCancel {
			fn()
		}
	})
}

// finish completes the animation naturally; callbacks run on flush.
func (a *fakeAnim) finish() {
	if a.state != animRunning {
		return
	}
	a.state = animFinished
	a.owner.pending = append(a.owner.pending, func() {
		for _, fn := range a.onFinish {
			fn()
		}
	})
}

func (a *fakeAnim) OnFinish(fn func())   { a.onFinish = append(a.onFinish, fn) }
func (a *fakeAnim) OnCancel(fn func())   { a.onCancel = append(a.onCancel, fn) }
func (a *fakeAnim) Keyframes() Keyframes { return a.kf }
func (a *fakeAnim) Done() bool           { return a.state != animRunning }

type fakeNode struct {
	owner *fakeTarget
	rect  Rect
	anims []*fakeAnim
}

func (n *fakeNode) Bounds() Rect { return n.rect }

func (n *fakeNode) Animate(kf Keyframes, timing Timing) Animation {
	a := &fakeAnim{owner: n.owner, kf: kf, timing: timing}
	n.anims = append(n.anims, a)
	return a
}

// last returns the node's most recent animation, or nil.
func (n *fakeNode) last() *fakeAnim {
	if len(n.anims) == 0 {
		return nil
	}
	return n.anims[len(n.anims)-1]
}

type fakeTarget struct {
	nodes     []*fakeNode
	pending   []func()
	listeners listenerSet
}

var _ Target = (*fakeTarget)(nil)

// newFakeTarget creates one node per rect, in order.
func newFakeTarget(rects ...Rect) *fakeTarget {
	t := &fakeTarget{}
	for _, r := range rects {
		t.nodes = append(t.nodes, &fakeNode{owner: t, rect: r})
	}
	return t
}

func (t *fakeTarget) Nodes() []Node {
	out := make([]Node, len(t.nodes))
	for i, n := range t.nodes {
		out[i] = n
	}
	return out
}

func (t *fakeTarget) Listen(kind EventKind, fn func(Event)) func() {
	return t.listeners.listen(kind, fn)
}

func (t *fakeTarget) Dispatch(ev Event) { t.listeners.dispatch(ev) }

// reorder rearranges nodes to the given old indexes and lays them out again
// on the given rects, like a re-render of a keyed list.
func (t *fakeTarget) reorder(order []int, rects ...Rect) {
	next := make([]*fakeNode, len(order))
	for i, j := range order {
		next[i] = t.nodes[j]
		next[i].rect = rects[i]
	}
	t.nodes = next
}

// flush delivers queued animation callbacks.
func (t *fakeTarget) flush() {
	pending := t.pending
	t.pending = nil
	for _, fn := range pending {
		fn()
	}
}

func refTo(t Target) *Ref {
	r := NewRef()
	r.Set(t)
	return r
}

// abc lays out three 100-wide cells at left 0, 100 and 200.
func abc() []Rect {
	return []Rect{
		NewRect(0, 0, 100, 1),
		NewRect(100, 0, 100, 1),
		NewRect(200, 0, 100, 1),
	}
}

func ids(vs ...string) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = v
	}
	return out
}

type item struct {
	ID    string
	Label string
}

func items(vs ...string) []any {
	out := make([]any, len(vs))
	for i, v := range vs {
		out[i] = item{ID: v, Label: "item " + v}
	}
	return out
}

func durationOf(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}
