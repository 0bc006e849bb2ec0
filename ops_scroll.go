package vtscreen

// ScrollUp shifts the scrolling-margin region up by n rows: the top n
// rows of the region are retired into scrollback (oldest first) and n
// fresh rows appear at the bottom. Selection endpoints are patched to
// track the shift. n is clamped to the region's height.
//
// Each retired row tries a fresh-line allocation first so the old row
// can be linked into scrollback by reference (spec §4.C); if
// allocation fails the old row is reused in place via Line.reset and
// the scroll still completes, it is simply not retained in history.
func (s *Screen) ScrollUp(n int) {
	if err := s.guardMutation("ScrollUp"); err != nil {
		return
	}
	g := s.grid
	regionSize := g.marginBottom - g.marginTop + 1
	if n < 0 {
		n = 0
	}
	if n > regionSize {
		n = regionSize
	}
	if n == 0 {
		return
	}
	fixedPos := g.flags&FlagFixedPos != 0

	for i := 0; i < n; i++ {
		top := g.lines[g.marginTop]
		fresh, err := newLine(g.sizeX, g.defAttr)

		copy(g.lines[g.marginTop:g.marginBottom], g.lines[g.marginTop+1:g.marginBottom+1])

		if err != nil {
			s.logf("ScrollUp", SevWarning, "line allocation failed, reusing in place")
			top.reset(g.defAttr)
			g.lines[g.marginBottom] = top
			continue
		}
		g.lines[g.marginBottom] = fresh
		s.sb.linkToScrollback(top, fixedPos)
	}

	s.patchSelectionScrollUp(n)
}

// ScrollDown shifts the scrolling-margin region down by n rows: n
// fresh blank rows appear at the top and the bottom n rows of the
// region are discarded. Scrollback is never involved. n is clamped to
// the region's height.
func (s *Screen) ScrollDown(n int) {
	if err := s.guardMutation("ScrollDown"); err != nil {
		return
	}
	g := s.grid
	regionSize := g.marginBottom - g.marginTop + 1
	if n < 0 {
		n = 0
	}
	if n > regionSize {
		n = regionSize
	}
	if n == 0 {
		return
	}

	for i := 0; i < n; i++ {
		bottom := g.lines[g.marginBottom]
		copy(g.lines[g.marginTop+1:g.marginBottom+1], g.lines[g.marginTop:g.marginBottom])
		bottom.reset(g.defAttr)
		g.lines[g.marginTop] = bottom
	}

	s.patchSelectionScrollDown(n)
}

// SetMargins sets the scrolling region to [top, bottom] (0-based,
// inclusive), clamped to the grid and rejecting an inverted or
// degenerate range by leaving the margins unchanged.
func (s *Screen) SetMargins(top, bottom int) {
	g := s.grid
	if top < 0 {
		top = 0
	}
	if bottom > g.sizeY-1 {
		bottom = g.sizeY - 1
	}
	if top >= bottom {
		return
	}
	g.marginTop = top
	g.marginBottom = bottom
}
