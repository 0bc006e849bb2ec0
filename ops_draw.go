package vtscreen

// PrepareFunc is called once before a Draw traversal begins, giving
// the caller a chance to set up a frame (e.g. clear a backing
// surface). A non-nil return aborts the traversal before any cell is
// drawn and before renderCb runs.
type PrepareFunc func(user any) error

// DrawFunc is called once per visible cell, in row-major order, top
// row first. attr already has selection/cursor/global inversion
// folded in; the callback only needs to render. An error return is
// logged and counted toward Draw's failure-suppression threshold but
// never aborts the traversal.
type DrawFunc func(user any, x, y int, ch SymbolID, width int, attr Attr) error

// RenderFunc is called once after every cell has been drawn, giving
// the caller a chance to present the frame.
type RenderFunc func(user any)

// maxLoggedDrawFailures caps how many DrawFunc errors get logged in a
// single traversal; the traversal itself always runs to completion.
const maxLoggedDrawFailures = 3

// Draw walks every visible row - scrollback history currently
// scrolled into view, followed by the live grid - and invokes drawCb
// once per cell. Selection (spec §4.D) and cursor inversion are
// applied to the cell's Attr before the callback sees it, along with
// the viewport's global FlagInverse. Draw guards against reentrant
// mutation: while it runs, Write, Resize and the erase, insert/delete
// and scroll operations log the attempt and return without acting
// (Resize also returns ErrReentrant). Cursor motion, flag, margin,
// tab-stop, scrollback and selection calls are not guarded.
func (s *Screen) Draw(prepareCb PrepareFunc, drawCb DrawFunc, renderCb RenderFunc, user any) {
	if s.drawing {
		s.logf("Draw", SevErr, "reentrant Draw call ignored")
		return
	}
	s.drawing = true
	defer func() { s.drawing = false }()

	if prepareCb != nil {
		if err := prepareCb(user); err != nil {
			s.logf("Draw", SevErr, "prepareCb failed, aborting traversal: %v", err)
			return
		}
	}

	var loRow, hiRow row
	selActive := s.sel.active
	var lo, hi endpoint
	if selActive {
		lo, hi = s.orderedEndpoints()
		loRow = s.rowForEndpoint(lo)
		hiRow = s.rowForEndpoint(hi)
	}

	r := row{y: 0}
	if s.sb.pos != nil {
		r = row{sbLine: s.sb.pos}
	}

	failures := 0
	for y := 0; y < s.grid.sizeY; y++ {
		startCol, endCol, rowSelected := -1, -1, false
		if selActive {
			afterLo := !s.rowBefore(r, loRow)
			beforeHi := !s.rowBefore(hiRow, r)
			if afterLo && beforeHi {
				rowSelected = true
				startCol = 0
				if sameRow(r, loRow) && lo.kind != endpointTop {
					startCol = lo.x
				}
				endCol = s.grid.sizeX - 1
				if sameRow(r, hiRow) && hi.kind != endpointTop {
					endCol = hi.x
				}
			}
		}

		cursorActive := s.grid.flags&FlagHideCursor == 0 && r.sbLine == nil && r.y == s.grid.cursorY

		for x := 0; x < s.grid.sizeX; x++ {
			var c Cell
			if r.sbLine != nil {
				c = r.sbLine.cellAt(x)
			} else {
				c = s.grid.cell(x, r.y)
			}
			if c.Width == 0 {
				continue // continuation cell of a wide glyph to its left
			}

			attr := c.Attr
			if rowSelected && x >= startCol && x <= endCol {
				attr.Inverse = !attr.Inverse
			}
			if cursorActive && x == s.grid.cursorX {
				attr.Inverse = !attr.Inverse
			}
			if s.grid.flags&FlagInverse != 0 {
				attr.Inverse = !attr.Inverse
			}

			width := int(c.Width)
			if width == 0 {
				width = 1
			}
			if drawCb != nil {
				if err := drawCb(user, x, y, c.Ch, width, attr); err != nil {
					failures++
					if failures <= maxLoggedDrawFailures {
						s.logf("Draw", SevWarning, "drawCb error at (%d,%d): %v", x, y, err)
					}
				}
			}
		}

		next, ok := s.nextRow(r)
		if !ok {
			break
		}
		r = next
	}

	if renderCb != nil {
		renderCb(user)
	}
}

// rowBefore reports whether a renders strictly before b in traversal
// order, reusing compareEndpoints by converting each row to its
// equivalent zero-column endpoint (column only breaks ties within the
// same row, so it is irrelevant here).
func (s *Screen) rowBefore(a, b row) bool {
	return s.compareEndpoints(s.rowEndpoint(a), s.rowEndpoint(b)) < 0
}

func (s *Screen) rowEndpoint(r row) endpoint {
	if r.sbLine != nil {
		return endpoint{kind: endpointScrollback, line: r.sbLine}
	}
	return endpoint{kind: endpointViewport, y: r.y}
}
