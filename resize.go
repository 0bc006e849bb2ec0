package vtscreen

// Resize changes the viewport's visible dimensions in place. Widening
// grows existing lines and leaves new columns at defAttr. Narrowing
// only affects how many columns are visible; underlying lines keep
// their wider allocation per spec §4.A so a later widen is allocation
// free.
//
// Growing the row count pulls lines back out of scrollback (newest
// first) to refill the top of the grid, falling back to blank lines
// once scrollback is exhausted. Shrinking the row count retires lines
// off the top into scrollback, the same destination a live scroll
// would use. Margins always reset to the full new height; the tab
// ruler rebuilds to the default every-8th-column pattern at the new
// width.
func (s *Screen) Resize(newX, newY int) error {
	if newX < 1 || newY < 1 {
		return ErrInvalidArg
	}
	if err := s.guardMutation("Resize"); err != nil {
		return err
	}
	g := s.grid
	fixedPos := g.flags&FlagFixedPos != 0

	if newX > g.sizeX {
		for _, l := range g.lines {
			l.resize(newX, g.defAttr)
			l.eraseRange(g.sizeX, newX, g.defAttr, false)
		}
	}
	g.tabRuler = defaultTabRuler(newX)
	g.sizeX = newX

	switch {
	case newY > g.sizeY:
		grow := newY - g.sizeY
		restored := make([]*Line, grow)
		for i := 0; i < grow; i++ {
			l := s.sb.popFromScrollback(fixedPos)
			if l == nil {
				fresh, err := newLine(newX, g.defAttr)
				if err != nil {
					s.logf("Resize", SevWarning, "line allocation failed while growing")
					fresh = &Line{cells: make([]Cell, 0)}
					fresh.resize(newX, g.defAttr)
				}
				l = fresh
			} else if l.size() < newX {
				l.resize(newX, g.defAttr)
			}
			// popFromScrollback yields newest-first; the newest retired
			// line belongs immediately above the old top row, so we
			// fill the restored slice back to front.
			restored[grow-1-i] = l
		}
		g.lines = append(restored, g.lines...)
		g.cursorY += grow
		s.patchSelectionScrollDown(grow)
		for i, l := range restored {
			for _, ep := range []*endpoint{&s.sel.start, &s.sel.end} {
				if ep.kind == endpointScrollback && ep.line == l {
					*ep = endpoint{kind: endpointViewport, x: ep.x, y: i}
				}
			}
		}

	case newY < g.sizeY:
		shrink := g.sizeY - newY
		for i := 0; i < shrink; i++ {
			top := g.lines[0]
			s.sb.linkToScrollback(top, fixedPos)
			g.lines = g.lines[1:]
		}
		s.patchSelectionScrollUp(shrink)
		g.cursorY -= shrink
	}

	g.sizeY = newY
	g.marginTop = 0
	g.marginBottom = newY - 1
	g.cursorX = clampInt(g.cursorX, 0, newX-1)
	g.cursorY = clampInt(g.cursorY, 0, newY-1)
	return nil
}
