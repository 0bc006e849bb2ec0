package vtscreen

// Write places one cell at the cursor and advances the cursor,
// implementing spec §4.E's write algorithm: pending-wrap resolution,
// scroll-on-overflow, INSERT_MODE shifting, and wide-glyph
// continuation cells.
//
// width must be 1 or 2. A width-2 write occupies the cursor column
// and the column to its right with a continuation cell (Width 0, Ch
// 0) that the draw traversal skips over.
func (s *Screen) Write(ch SymbolID, attr Attr, width int) {
	if err := s.guardMutation("Write"); err != nil {
		return
	}
	if width != 1 && width != 2 {
		width = 1
	}
	g := s.grid

	inRegion := g.cursorY >= g.marginTop && g.cursorY <= g.marginBottom
	lastRow := g.sizeY - 1
	if inRegion {
		lastRow = g.marginBottom
	}

	// Resolve a pending wrap (cursorX == sizeX) left by the previous
	// write before placing this glyph.
	if g.cursorX >= g.sizeX {
		if g.flags&FlagAutoWrap != 0 {
			g.cursorX = 0
			if g.cursorY >= lastRow {
				s.ScrollUp(1)
				g.cursorY = lastRow
			} else {
				g.cursorY++
			}
		} else {
			g.cursorX = g.sizeX - 1
		}
	}

	// A wide glyph that would split across the right edge instead
	// wraps (or is clamped) as if the row were already full.
	if width == 2 && g.cursorX == g.sizeX-1 {
		if g.flags&FlagAutoWrap != 0 {
			g.cursorX = 0
			if g.cursorY >= lastRow {
				s.ScrollUp(1)
				g.cursorY = lastRow
			} else {
				g.cursorY++
			}
		}
	}

	if g.cursorY > lastRow {
		s.ScrollUp(g.cursorY - lastRow)
		g.cursorY = lastRow
	}

	l := g.line(g.cursorY)
	if l == nil {
		return
	}

	if g.flags&FlagInsertMode != 0 {
		s.insertCellsAt(l, g.cursorX, width)
	}

	l.cells[g.cursorX] = Cell{Ch: ch, Width: uint8(width), Attr: attr}
	if width == 2 && g.cursorX+1 < l.size() {
		l.cells[g.cursorX+1] = Cell{Ch: 0, Width: 0, Attr: attr}
	}

	g.cursorX += width
}

// insertCellsAt shifts cells at and after x right by n within l,
// discarding whatever falls off the visible grid width. l may be
// allocated wider than the grid (lines are grow-only across a
// width-shrinking Resize, see line.go's resize); using the grid's
// width rather than l.size() keeps columns beyond sizeX hidden
// instead of shifting them into view.
func (s *Screen) insertCellsAt(l *Line, x, n int) {
	width := s.grid.sizeX
	if x >= width {
		return
	}
	if n > width-x {
		n = width - x
	}
	copy(l.cells[x+n:width], l.cells[x:width-n])
	for i := x; i < x+n; i++ {
		cellInit(&l.cells[i], s.grid.defAttr)
	}
}

// WriteRune is a convenience wrapper around Write for callers driving
// the screen from decoded Unicode text rather than pre-resolved
// SymbolID handles: the rune itself becomes the SymbolID and its
// column width is resolved via runeWidth.
func (s *Screen) WriteRune(r rune, attr Attr) {
	w := runeWidth(r)
	if w < 1 {
		w = 1
	}
	s.Write(SymbolID(r), attr, w)
}
