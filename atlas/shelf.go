package atlas

// shelfCursor packs rectangles into a fixed bitmap using shelf (row)
// packing: glyphs fill the current row left-to-right, a glyph that does not
// fit horizontally starts a new row below, and a row that does not fit
// vertically ends packing.
//
// The cursor is deliberately sequential, with no per-shelf free lists:
// glyphs arrive in ascending codepoint order exactly once, and reproducing
// the same positions for the same inputs matters more than tight packing.
type shelfCursor struct {
	width   int // total atlas width
	height  int // total atlas height
	padding int // padding after each glyph, in both axes

	x         int // next free x on the current row
	y         int // top of the current row
	rowHeight int // height of the current row (tallest glyph so far + padding)
}

// newShelfCursor creates a cursor for a width×height bitmap.
func newShelfCursor(width, height, padding int) *shelfCursor {
	return &shelfCursor{width: width, height: height, padding: padding}
}

// place finds space for a w×h rectangle.
// Returns the top-left position and true, or false when the rectangle does
// not fit vertically; the caller stops packing at that point.
func (s *shelfCursor) place(w, h int) (x, y int, ok bool) {
	// Wrap to a new row when the glyph does not fit horizontally.
	if s.x+w > s.width {
		s.x = 0
		s.y += s.rowHeight
		s.rowHeight = 0
	}

	// Out of rows: packing stops here.
	if s.y+h > s.height {
		return 0, 0, false
	}

	x, y = s.x, s.y
	s.x += w + s.padding
	if h+s.padding > s.rowHeight {
		s.rowHeight = h + s.padding
	}
	return x, y, true
}

// bottom returns the furthest-used row bottom.
func (s *shelfCursor) bottom() int {
	return s.y + s.rowHeight
}

// utilization returns the used fraction of the atlas height, in [0, 1].
// This measures row consumption, not per-pixel coverage.
func (s *shelfCursor) utilization() float64 {
	if s.height <= 0 {
		return 0
	}
	u := float64(s.bottom()) / float64(s.height)
	if u > 1 {
		u = 1
	}
	return u
}
