package vtscreen

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// MoveTo sets the cursor to an absolute position. If REL_ORIGIN is
// set, y is relative to marginTop and clamped at marginBottom; else
// it is clamped at sizeY-1. x is always clamped at sizeX-1.
func (s *Screen) MoveTo(x, y int) {
	g := s.grid
	if g.flags&FlagRelOrigin != 0 {
		y = clampInt(y+g.marginTop, g.marginTop, g.marginBottom)
	} else {
		y = clampInt(y, 0, g.sizeY-1)
	}
	g.cursorX = clampInt(x, 0, g.sizeX-1)
	g.cursorY = y
}

// MoveUp moves the cursor up n rows. The boundary is marginTop if the
// cursor currently sits at or below it, else 0. If n exceeds the gap
// and scroll is true, the excess triggers ScrollDown; the cursor
// sticks at the boundary either way.
func (s *Screen) MoveUp(n int, scroll bool) {
	g := s.grid
	boundary := 0
	if g.cursorY >= g.marginTop {
		boundary = g.marginTop
	}
	gap := g.cursorY - boundary
	if n <= gap {
		g.cursorY -= n
		return
	}
	excess := n - gap
	g.cursorY = boundary
	if scroll {
		s.ScrollDown(excess)
	}
}

// MoveDown is MoveUp's mirror: the boundary is marginBottom if the
// cursor sits at or above it, else sizeY-1, and excess triggers
// ScrollUp.
func (s *Screen) MoveDown(n int, scroll bool) {
	g := s.grid
	boundary := g.sizeY - 1
	if g.cursorY <= g.marginBottom {
		boundary = g.marginBottom
	}
	gap := boundary - g.cursorY
	if n <= gap {
		g.cursorY += n
		return
	}
	excess := n - gap
	g.cursorY = boundary
	if scroll {
		s.ScrollUp(excess)
	}
}

// MoveLeft moves the cursor left n columns. If cursor_x is currently
// pending-wrap (== sizeX), it first snaps to sizeX-1.
func (s *Screen) MoveLeft(n int) {
	g := s.grid
	if g.cursorX >= g.sizeX {
		g.cursorX = g.sizeX - 1
	}
	g.cursorX = clampInt(g.cursorX-n, 0, g.sizeX-1)
}

// MoveRight moves the cursor right n columns, clamped at sizeX-1.
func (s *Screen) MoveRight(n int) {
	g := s.grid
	g.cursorX = clampInt(g.cursorX+n, 0, g.sizeX-1)
}

// MoveLineHome moves the cursor to column 0.
func (s *Screen) MoveLineHome() { s.grid.cursorX = 0 }

// MoveLineEnd moves the cursor to the last column.
func (s *Screen) MoveLineEnd() { s.grid.cursorX = s.grid.sizeX - 1 }

// TabRight advances the cursor to the next enabled tab stop strictly
// right of the cursor, n times, clamping at sizeX-1. Never triggers
// wrap.
func (s *Screen) TabRight(n int) {
	g := s.grid
	for ; n > 0; n-- {
		next := -1
		for x := g.cursorX + 1; x < g.sizeX; x++ {
			if g.tabRuler[x] {
				next = x
				break
			}
		}
		if next < 0 {
			g.cursorX = g.sizeX - 1
			return
		}
		g.cursorX = next
	}
}

// TabLeft is TabRight's mirror, stopping at column 0.
func (s *Screen) TabLeft(n int) {
	g := s.grid
	for ; n > 0; n-- {
		prev := -1
		for x := g.cursorX - 1; x >= 0; x-- {
			if g.tabRuler[x] {
				prev = x
				break
			}
		}
		if prev < 0 {
			g.cursorX = 0
			return
		}
		g.cursorX = prev
	}
}
