package layout

// Stack places children of the given sizes inside bounds and returns one
// rect per child, in the same order.
//
// Children are packed from the start of the main axis. With Wrap set, a child
// that would cross the far edge starts a new line; a child that is wider
// than the whole line is still placed alone on its own line. Children that
// end up outside bounds keep their computed position: clipping is the
// renderer's concern.
func Stack(bounds Rect, style Style, sizes []Size) []Rect {
	rects := make([]Rect, len(sizes))
	if len(sizes) == 0 {
		return rects
	}

	inner := Rect{
		X:      bounds.X + style.Padding,
		Y:      bounds.Y + style.Padding,
		Width:  bounds.Width - 2*style.Padding,
		Height: bounds.Height - 2*style.Padding,
	}

	// main/cross are offsets from inner's origin along each axis.
	main, cross, line := 0, 0, 0
	for i, s := range sizes {
		mainSize, crossSize := s.Width, s.Height
		limit := inner.Width
		if style.Direction == Column {
			mainSize, crossSize = s.Height, s.Width
			limit = inner.Height
		}

		if style.Wrap && main > 0 && main+mainSize > limit {
			main = 0
			cross += line + style.Gap
			line = 0
		}

		if style.Direction == Column {
			rects[i] = NewRect(inner.X+cross, inner.Y+main, s.Width, s.Height)
		} else {
			rects[i] = NewRect(inner.X+main, inner.Y+cross, s.Width, s.Height)
		}

		main += mainSize + style.Gap
		line = max(line, crossSize)
	}
	return rects
}
