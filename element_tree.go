package flip

import "github.com/grindlemire/go-flip/internal/layout"

// AddChild appends children to this Element.
func (e *Element) AddChild(children ...*Element) {
	for _, child := range children {
		if child.parent != nil && child.parent != e {
			child.parent.RemoveChild(child)
		}
		child.parent = e
		e.children = append(e.children, child)
	}
}

// RemoveChild removes a child from this Element, keeping the order of the
// remaining children. Returns true if the child was found and removed.
func (e *Element) RemoveChild(child *Element) bool {
	for i, c := range e.children {
		if c == child {
			e.children = append(e.children[:i:i], e.children[i+1:]...)
			child.parent = nil
			return true
		}
	}
	return false
}

// RemoveAllChildren removes all children from this Element.
func (e *Element) RemoveAllChildren() {
	for _, child := range e.children {
		child.parent = nil
	}
	e.children = nil
}

// SetChildren replaces the children with the given elements in the given
// order. Elements already present are moved rather than recreated, which
// is what lets their geometry be matched across a reorder.
func (e *Element) SetChildren(children ...*Element) {
	keep := make(map[*Element]bool, len(children))
	for _, c := range children {
		keep[c] = true
	}
	for _, c := range e.children {
		if !keep[c] {
			c.parent = nil
		}
	}
	e.children = make([]*Element, 0, len(children))
	for _, c := range children {
		if c.parent != nil && c.parent != e {
			c.parent.RemoveChild(c)
		}
		c.parent = e
		e.children = append(e.children, c)
	}
}

// Children returns the child elements.
func (e *Element) Children() []*Element {
	return e.children
}

// Parent returns the parent element, or nil if this is the root.
func (e *Element) Parent() *Element {
	return e.parent
}

// Layout assigns bounds to this element and stacks its children inside it,
// recursively. Offsets are left untouched: a running animation keeps
// drawing relative to the new layout position.
func (e *Element) Layout(bounds Rect) {
	e.rect = bounds
	if len(e.children) == 0 {
		return
	}
	sizes := make([]Size, len(e.children))
	for i, c := range e.children {
		sizes[i] = c.Size()
	}
	for i, r := range layout.Stack(bounds, e.style, sizes) {
		e.children[i].Layout(r)
	}
}

// Walk calls fn for this element and every descendant, depth first.
func (e *Element) Walk(fn func(*Element)) {
	fn(e)
	for _, c := range e.children {
		c.Walk(fn)
	}
}
