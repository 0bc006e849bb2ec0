package vtscreen

// EraseRegion resets cells in rows [y1, y2] to the default attribute.
// On the first row only columns x1..sizeX-1 are cleared; on the last
// row only columns 0..x2 are cleared; any rows strictly between them
// are cleared in full. Cells whose Attr.Protect is set are skipped
// when protect is true.
func (s *Screen) EraseRegion(x1, y1, x2, y2 int, protect bool) {
	if err := s.guardMutation("EraseRegion"); err != nil {
		return
	}
	g := s.grid
	if y1 < 0 {
		y1 = 0
	}
	if y2 > g.sizeY-1 {
		y2 = g.sizeY - 1
	}
	for y := y1; y <= y2; y++ {
		l := g.line(y)
		if l == nil {
			continue
		}
		startCol := 0
		endCol := g.sizeX
		if y == y1 {
			startCol = x1
		}
		if y == y2 {
			endCol = x2 + 1
			if endCol > g.sizeX {
				endCol = g.sizeX
			}
		}
		l.eraseRange(startCol, endCol, g.defAttr, protect)
	}
}

// EraseCursor erases the single cell under the cursor.
func (s *Screen) EraseCursor() {
	g := s.grid
	s.EraseRegion(g.cursorX, g.cursorY, g.cursorX, g.cursorY, false)
}

// EraseChars erases n cells starting at the cursor, on the cursor's
// row only.
func (s *Screen) EraseChars(n int) {
	g := s.grid
	if n < 1 {
		return
	}
	end := g.cursorX + n - 1
	if end > g.sizeX-1 {
		end = g.sizeX - 1
	}
	s.EraseRegion(g.cursorX, g.cursorY, end, g.cursorY, false)
}

// EraseCursorToEnd erases from the cursor to the end of its row.
func (s *Screen) EraseCursorToEnd(protect bool) {
	g := s.grid
	s.EraseRegion(g.cursorX, g.cursorY, g.sizeX-1, g.cursorY, protect)
}

// EraseHomeToCursor erases from the start of the cursor's row through
// the cursor.
func (s *Screen) EraseHomeToCursor(protect bool) {
	g := s.grid
	s.EraseRegion(0, g.cursorY, g.cursorX, g.cursorY, protect)
}

// EraseCurrentLine erases the cursor's entire row.
func (s *Screen) EraseCurrentLine(protect bool) {
	g := s.grid
	s.EraseRegion(0, g.cursorY, g.sizeX-1, g.cursorY, protect)
}

// EraseScreenToCursor erases from the top of the screen through the
// cursor.
func (s *Screen) EraseScreenToCursor(protect bool) {
	g := s.grid
	s.EraseRegion(0, 0, g.cursorX, g.cursorY, protect)
}

// EraseCursorToScreen erases from the cursor through the bottom of
// the screen.
func (s *Screen) EraseCursorToScreen(protect bool) {
	g := s.grid
	s.EraseRegion(g.cursorX, g.cursorY, g.sizeX-1, g.sizeY-1, protect)
}

// EraseScreen erases the entire visible grid.
func (s *Screen) EraseScreen(protect bool) {
	g := s.grid
	s.EraseRegion(0, 0, g.sizeX-1, g.sizeY-1, protect)
}
