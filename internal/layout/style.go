package layout

// Direction specifies the main axis for laying out children.
type Direction uint8

const (
	Row    Direction = iota // Children laid out left-to-right
	Column                  // Children laid out top-to-bottom
)

// String returns the direction name.
func (d Direction) String() string {
	switch d {
	case Row:
		return "row"
	case Column:
		return "column"
	default:
		return "unknown"
	}
}

// Size represents a width/height pair.
type Size struct {
	Width, Height int
}

// Style contains the stacking properties of a container.
type Style struct {
	Direction Direction
	// Gap is the spacing between siblings and between wrapped lines.
	Gap int
	// Padding insets the children from every edge of the container.
	Padding int
	// Wrap starts a new line when the next child would overflow the
	// container's main axis.
	Wrap bool
}

// DefaultStyle returns a non-wrapping row with no gap or padding.
func DefaultStyle() Style {
	return Style{Direction: Row}
}
