package vtscreen

// InsertLines inserts n blank lines at the cursor row, pushing the
// rows below it (down to the bottom margin) down and discarding
// whatever rows fall off the bottom of the region. A no-op if the
// cursor sits outside the scrolling margins. Unlike ScrollDown this
// never touches rows above the cursor.
func (s *Screen) InsertLines(n int) {
	if err := s.guardMutation("InsertLines"); err != nil {
		return
	}
	g := s.grid
	if g.cursorY < g.marginTop || g.cursorY > g.marginBottom {
		return
	}
	regionSize := g.marginBottom - g.cursorY + 1
	if n < 0 {
		n = 0
	}
	if n > regionSize {
		n = regionSize
	}
	for i := 0; i < n; i++ {
		bottom := g.lines[g.marginBottom]
		copy(g.lines[g.cursorY+1:g.marginBottom+1], g.lines[g.cursorY:g.marginBottom])
		bottom.reset(g.defAttr)
		g.lines[g.cursorY] = bottom
	}
}

// DeleteLines deletes n lines starting at the cursor row, pulling the
// rows below it up and appending blank lines at the bottom margin. A
// no-op if the cursor sits outside the scrolling margins.
func (s *Screen) DeleteLines(n int) {
	if err := s.guardMutation("DeleteLines"); err != nil {
		return
	}
	g := s.grid
	if g.cursorY < g.marginTop || g.cursorY > g.marginBottom {
		return
	}
	regionSize := g.marginBottom - g.cursorY + 1
	if n < 0 {
		n = 0
	}
	if n > regionSize {
		n = regionSize
	}
	for i := 0; i < n; i++ {
		top := g.lines[g.cursorY]
		copy(g.lines[g.cursorY:g.marginBottom], g.lines[g.cursorY+1:g.marginBottom+1])
		top.reset(g.defAttr)
		g.lines[g.marginBottom] = top
	}
}

// InsertChars shifts the cells from the cursor column rightward on the
// cursor's row by n, discarding whatever falls off the right edge and
// filling the opened gap with defAttr-initialized empty cells.
func (s *Screen) InsertChars(n int) {
	if err := s.guardMutation("InsertChars"); err != nil {
		return
	}
	g := s.grid
	l := g.line(g.cursorY)
	if l == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	width := g.sizeX
	if n > width-g.cursorX {
		n = width - g.cursorX
	}
	if n == 0 {
		return
	}
	copy(l.cells[g.cursorX+n:width], l.cells[g.cursorX:width-n])
	for x := g.cursorX; x < g.cursorX+n; x++ {
		cellInit(&l.cells[x], g.defAttr)
	}
}

// DeleteChars removes n cells starting at the cursor column on the
// cursor's row, shifting the remainder of the row left and filling the
// vacated columns at the right edge with defAttr-initialized empty
// cells.
func (s *Screen) DeleteChars(n int) {
	if err := s.guardMutation("DeleteChars"); err != nil {
		return
	}
	g := s.grid
	l := g.line(g.cursorY)
	if l == nil {
		return
	}
	if n < 0 {
		n = 0
	}
	width := g.sizeX
	if n > width-g.cursorX {
		n = width - g.cursorX
	}
	if n == 0 {
		return
	}
	copy(l.cells[g.cursorX:width-n], l.cells[g.cursorX+n:width])
	for x := width - n; x < width; x++ {
		cellInit(&l.cells[x], g.defAttr)
	}
}
