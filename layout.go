// layout.go re-exports layout types from internal/layout.
// Any changes to internal/layout types must be mirrored here.
package flip

import "github.com/grindlemire/go-flip/internal/layout"

// Direction specifies the main axis for laying out children.
type Direction = layout.Direction

const (
	Row    = layout.Row
	Column = layout.Column
)

// Rect represents a rectangle with position and dimensions.
type Rect = layout.Rect

// Point represents an x/y coordinate.
type Point = layout.Point

// Size represents a width/height pair.
type Size = layout.Size

// LayoutStyle holds the stacking properties of a container.
type LayoutStyle = layout.Style

// NewRect creates a new Rect with the given position and dimensions.
func NewRect(x, y, width, height int) Rect {
	return layout.NewRect(x, y, width, height)
}

// DefaultLayoutStyle returns a non-wrapping row with no gap or padding.
func DefaultLayoutStyle() LayoutStyle {
	return layout.DefaultStyle()
}
