package vtscreen

// endpointKind distinguishes the three ways a selection endpoint can
// be anchored, replacing the source's overloaded null-pointer +
// negative-y encoding (spec §9 design note) with a tagged union.
type endpointKind int

const (
	endpointTop endpointKind = iota // scrolled off the oldest end
	endpointScrollback
	endpointViewport
)

// endpoint is one end of a selection.
type endpoint struct {
	kind endpointKind
	line *Line // valid when kind == endpointScrollback
	x    int
	y    int // valid when kind == endpointViewport; row in [0, sizeY)
}

var topEndpoint = endpoint{kind: endpointTop}

// Selection tracks the two endpoints of the user's current text
// selection. Endpoints stay valid across scroll, trim, and resize by
// being patched in place by the operations that invalidate them.
type Selection struct {
	active bool
	start  endpoint
	end    endpoint
}

// SelectionReset clears the active selection.
func (s *Screen) SelectionReset() {
	s.sel.active = false
}

// SelectionActive reports whether a selection is currently active.
func (s *Screen) SelectionActive() bool {
	return s.sel.active
}

// SelectionStart begins a new selection at viewport coordinate (x, y),
// resolved against the current scrollback viewing position.
func (s *Screen) SelectionStart(x, y int) {
	ep := s.resolveSelectionPoint(x, y)
	s.sel.active = true
	s.sel.start = ep
	s.sel.end = ep
}

// SelectionTarget moves the active selection's end endpoint. No-op if
// no selection is active.
func (s *Screen) SelectionTarget(x, y int) {
	if !s.sel.active {
		return
	}
	s.sel.end = s.resolveSelectionPoint(x, y)
}

// resolveSelectionPoint implements spec §4.D's selection_start/target
// resolution rule: if the viewport is currently showing scrollback
// (sb.pos != nil), walk forward from sb.pos by y lines; once that
// walk exits into the live grid, switch to viewport coordinates with
// the remaining offset. Otherwise resolve directly to viewport
// coordinates.
func (s *Screen) resolveSelectionPoint(x, y int) endpoint {
	if s.sb.pos == nil {
		return endpoint{kind: endpointViewport, x: x, y: y}
	}

	line := s.sb.pos
	remaining := y
	for remaining > 0 && line.next != nil {
		line = line.next
		remaining--
	}
	if remaining == 0 {
		return endpoint{kind: endpointScrollback, line: line, x: x}
	}
	// Walk exhausted scrollback before reaching y; continue into the
	// live grid starting at row 0 with what's left of the offset.
	return endpoint{kind: endpointViewport, x: x, y: remaining - 1}
}

// compareEndpoints returns -1 if a renders before b, 1 if after, 0 if
// equal, per spec §4.D's ordering rule.
func (s *Screen) compareEndpoints(a, b endpoint) int {
	if a.kind == endpointTop && b.kind == endpointTop {
		return 0
	}
	if a.kind == endpointTop {
		return -1
	}
	if b.kind == endpointTop {
		return 1
	}

	if a.kind == endpointScrollback && b.kind == endpointScrollback {
		switch {
		case a.line.sbID < b.line.sbID:
			return -1
		case a.line.sbID > b.line.sbID:
			return 1
		default:
			return compareInt(a.x, b.x)
		}
	}

	// A scrollback endpoint always precedes a viewport endpoint: any
	// endpoint this Screen resolves into endpointScrollback refers to
	// a line strictly above whatever the viewport is currently
	// showing (resolveSelectionPoint only produces a scrollback
	// endpoint when the walk from sb.pos stayed inside history).
	if a.kind == endpointScrollback && b.kind == endpointViewport {
		return -1
	}
	if a.kind == endpointViewport && b.kind == endpointScrollback {
		return 1
	}

	// Both viewport: compare by row, then column.
	switch {
	case a.y < b.y:
		return -1
	case a.y > b.y:
		return 1
	default:
		return compareInt(a.x, b.x)
	}
}

func compareInt(a, b int) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// orderedEndpoints returns the selection's endpoints in render order.
func (s *Screen) orderedEndpoints() (lo, hi endpoint) {
	if s.compareEndpoints(s.sel.start, s.sel.end) <= 0 {
		return s.sel.start, s.sel.end
	}
	return s.sel.end, s.sel.start
}

// row identifies one logical row during a top-to-bottom walk of
// scrollback-then-viewport, the same traversal order Draw uses.
type row struct {
	sbLine *Line // non-nil while walking scrollback
	y      int   // viewport row, valid once sbLine == nil
}

func (s *Screen) rowForEndpoint(ep endpoint) row {
	switch ep.kind {
	case endpointScrollback:
		return row{sbLine: ep.line}
	case endpointViewport:
		return row{y: ep.y}
	default: // endpointTop: start from whatever is oldest right now
		if s.sb.first != nil {
			return row{sbLine: s.sb.first}
		}
		return row{y: 0}
	}
}

func sameRow(a, b row) bool {
	if a.sbLine != nil || b.sbLine != nil {
		return a.sbLine == b.sbLine
	}
	return a.y == b.y
}

// nextRow advances to the next row in traversal order, returning ok
// == false once the live grid is exhausted.
func (s *Screen) nextRow(r row) (row, bool) {
	if r.sbLine != nil {
		if r.sbLine.next != nil {
			return row{sbLine: r.sbLine.next}, true
		}
		return row{y: 0}, true
	}
	if r.y+1 >= s.grid.sizeY {
		return row{}, false
	}
	return row{y: r.y + 1}, true
}

// rowText returns the row's content as runes, one per display column
// across the grid's full width, with empty cells rendered as spaces.
func (s *Screen) rowText(r row) []rune {
	width := s.grid.sizeX
	out := make([]rune, width)
	for x := 0; x < width; x++ {
		var c Cell
		if r.sbLine != nil {
			c = r.sbLine.cellAt(x)
		} else {
			c = s.grid.cell(x, r.y)
		}
		if c.Ch == 0 {
			out[x] = ' '
		} else {
			out[x] = rune(c.Ch)
		}
	}
	return out
}

// SelectionCopy traverses the active selection in render order and
// returns its text, one line per row joined with '\n'. Trailing
// spaces are trimmed from every row's selected segment, except on the
// final row when the selection reaches that row's last column.
// Returns ErrNotActive if no selection is active.
func (s *Screen) SelectionCopy() (string, error) {
	if !s.sel.active {
		return "", ErrNotActive
	}
	lo, hi := s.orderedEndpoints()

	r := s.rowForEndpoint(lo)
	hiRow := s.rowForEndpoint(hi)

	var out []rune
	for first := true; ; first = false {
		text := s.rowText(r)
		width := len(text)

		startCol := 0
		if first && lo.kind != endpointTop {
			startCol = lo.x
		}
		endCol := width
		last := sameRow(r, hiRow)
		if last && hi.kind != endpointTop {
			endCol = hi.x + 1
			if endCol > width {
				endCol = width
			}
		}
		if startCol > width {
			startCol = width
		}
		if startCol > endCol {
			startCol = endCol
		}

		segment := append([]rune(nil), text[startCol:endCol]...)
		if !(last && endCol == width) {
			segment = trimTrailingSpaceRunes(segment)
		}

		if !first {
			out = append(out, '\n')
		}
		out = append(out, segment...)

		if last {
			break
		}
		next, ok := s.nextRow(r)
		if !ok {
			break
		}
		r = next
	}

	return string(out), nil
}

func trimTrailingSpaceRunes(r []rune) []rune {
	end := len(r)
	for end > 0 && r[end-1] == ' ' {
		end--
	}
	return r[:end]
}

// patchSelectionScrollUp implements spec §4.D's scroll_up rule: a
// viewport-pinned endpoint has y decremented by n; if that goes
// negative, walk that many lines back into scrollback from the
// newest end. If the walk exhausts scrollback, the endpoint becomes
// Top.
func (s *Screen) patchSelectionScrollUp(n int) {
	s.sel.start = s.patchEndpointScrollUp(s.sel.start, n)
	s.sel.end = s.patchEndpointScrollUp(s.sel.end, n)
}

func (s *Screen) patchEndpointScrollUp(ep endpoint, n int) endpoint {
	if ep.kind != endpointViewport {
		return ep
	}
	newY := ep.y - n
	if newY >= 0 {
		return endpoint{kind: endpointViewport, x: ep.x, y: newY}
	}

	// Walk |newY| lines back into scrollback from the newest line.
	steps := -newY
	line := s.sb.last
	if line == nil {
		return topEndpoint
	}
	for steps > 1 {
		if line.prev == nil {
			return topEndpoint
		}
		line = line.prev
		steps--
	}
	return endpoint{kind: endpointScrollback, line: line, x: ep.x}
}

// patchSelectionScrollDown implements spec §4.D's scroll_down rule: a
// viewport-pinned endpoint has y incremented by n, with no bound (it
// may leave the visible area and render off-screen).
func (s *Screen) patchSelectionScrollDown(n int) {
	if s.sel.start.kind == endpointViewport {
		s.sel.start.y += n
	}
	if s.sel.end.kind == endpointViewport {
		s.sel.end.y += n
	}
}

// patchSelectionTrim converts any endpoint referencing the trimmed
// line to Top. Registered as the Scrollback's onTrim callback.
func (s *Screen) patchSelectionTrim(trimmed *Line) {
	if s.sel.start.kind == endpointScrollback && s.sel.start.line == trimmed {
		s.sel.start = topEndpoint
	}
	if s.sel.end.kind == endpointScrollback && s.sel.end.line == trimmed {
		s.sel.end = topEndpoint
	}
}

// patchSelectionClear converts any scrollback-line-referenced
// endpoint to Top, used by clear_sb.
func (s *Screen) patchSelectionClear() {
	if s.sel.start.kind == endpointScrollback {
		s.sel.start = topEndpoint
	}
	if s.sel.end.kind == endpointScrollback {
		s.sel.end = topEndpoint
	}
}
