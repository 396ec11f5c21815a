package flip

// Option configures an Element.
type Option func(*Element)

// --- Dimension Options ---

// WithWidth sets a fixed width in terminal cells.
func WithWidth(cells int) Option {
	return func(e *Element) {
		e.width = cells
	}
}

// WithHeight sets a fixed height in terminal cells.
func WithHeight(cells int) Option {
	return func(e *Element) {
		e.height = cells
	}
}

// WithSize sets both width and height in terminal cells.
func WithSize(width, height int) Option {
	return func(e *Element) {
		e.width = width
		e.height = height
	}
}

// --- Layout Options ---

// WithDirection sets the main axis children are stacked along.
func WithDirection(d Direction) Option {
	return func(e *Element) {
		e.style.Direction = d
	}
}

// WithGap sets the spacing between children and between wrapped lines.
func WithGap(cells int) Option {
	return func(e *Element) {
		e.style.Gap = cells
	}
}

// WithPadding insets children from every edge.
func WithPadding(cells int) Option {
	return func(e *Element) {
		e.style.Padding = cells
	}
}

// WithWrap lets children flow onto further lines, forming a grid.
func WithWrap() Option {
	return func(e *Element) {
		e.style.Wrap = true
	}
}

// WithLayoutStyle replaces the whole layout style.
func WithLayoutStyle(s LayoutStyle) Option {
	return func(e *Element) {
		e.style = s
	}
}

// --- Content Options ---

// WithText sets the element's text content.
func WithText(text string) Option {
	return func(e *Element) {
		e.text = text
	}
}

// WithData attaches a value to the element.
func WithData(v any) Option {
	return func(e *Element) {
		e.data = v
	}
}

// --- Animation Options ---

// WithTimeline sets the timeline that runs animations for this element and
// its descendants.
func WithTimeline(t *Timeline) Option {
	return func(e *Element) {
		e.timeline = t
	}
}
