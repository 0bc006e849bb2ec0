package vtscreen

// Scrollback is a doubly linked list of retired lines with a bounded
// capacity, a monotonically increasing per-line id, and a "viewport
// position" (pos) used when the caller has scrolled up to view
// history instead of the live grid.
type Scrollback struct {
	first, last *Line
	count       int
	max         int
	lastID      uint64

	// pos is non-nil when rendering should start from this scrollback
	// line instead of from the live grid's row 0 ("user scrolled up").
	pos *Line

	// onTrim is invoked with the line being evicted from the oldest
	// end, after it has left the list but before its sbID and links
	// are cleared, so the selection tracker can react
	// per spec §4.D ("link_to_scrollback trim").
	onTrim func(trimmed *Line)
}

// newScrollback creates an empty scrollback with the given capacity.
func newScrollback(max int) *Scrollback {
	return &Scrollback{max: max}
}

// Len returns the number of lines currently retained.
func (sb *Scrollback) Len() int { return sb.count }

// Max returns the current capacity.
func (sb *Scrollback) Max() int { return sb.max }

// Pos returns the current viewport-position line, or nil if showing
// the live grid.
func (sb *Scrollback) Pos() *Line { return sb.pos }

// linkToScrollback appends line to the tail, assigning it the next
// sb_id. If the list is at capacity the oldest line is evicted first;
// if max == 0 the line is discarded immediately instead of linked.
// fixedPos controls how Pos is adjusted when the oldest line is the
// one evicted (spec §4.C trim rules).
func (sb *Scrollback) linkToScrollback(line *Line, fixedPos bool) {
	if sb.max == 0 {
		// Still run the normal eviction bookkeeping against an
		// imaginary newest line so Pos/selection react identically to
		// the max==0 case the spec calls out explicitly.
		sb.notifyTrim(line)
		line.sbID = 0
		return
	}

	sb.lastID++
	line.sbID = sb.lastID
	line.prev = sb.last
	line.next = nil
	if sb.last != nil {
		sb.last.next = line
	}
	sb.last = line
	if sb.first == nil {
		sb.first = line
	}
	sb.count++

	if sb.count > sb.max {
		sb.trimOldest(fixedPos)
	}
}

// trimOldest evicts sb.first, applying the viewport-position rules of
// spec §4.C.
func (sb *Scrollback) trimOldest(fixedPos bool) {
	oldest := sb.first
	if oldest == nil {
		return
	}

	next := oldest.next
	sb.first = next
	if next != nil {
		next.prev = nil
	} else {
		sb.last = nil
	}
	sb.count--

	sb.adjustPosOnTrim(oldest, fixedPos)

	if sb.onTrim != nil {
		sb.onTrim(oldest)
	}

	oldest.sbID = 0
	oldest.prev = nil
	oldest.next = nil
}

// notifyTrim runs the same Pos/selection reaction as trimOldest for
// the max==0 "discarded immediately" path, where there is no oldest
// list member but the newly produced line still needs to push a
// stale Pos/selection endpoint off the top.
func (sb *Scrollback) notifyTrim(line *Line) {
	if sb.pos == line {
		sb.pos = nil
	}
	if sb.onTrim != nil {
		sb.onTrim(line)
	}
}

// adjustPosOnTrim implements spec §4.C's four viewport-position rules
// for the line being trimmed from the oldest end.
func (sb *Scrollback) adjustPosOnTrim(trimmed *Line, fixedPos bool) {
	switch {
	case sb.pos == trimmed && trimmed.next != nil:
		sb.pos = trimmed.next
	case sb.pos == trimmed:
		// No successor: the list is now empty, which only happens when
		// setMax lowers the cap to 0 (a trim from linkToScrollback
		// always leaves the newly appended line as the successor).
		// Fall back to the live view.
		sb.pos = nil
	case sb.pos != trimmed && fixedPos:
		// leave unchanged
	case sb.pos != nil:
		sb.pos = sb.pos.next
	}
}

// popFromScrollback detaches and returns the newest line, used when a
// resize grows the viewport and retired content should be restored.
// Returns nil if scrollback is empty. The returned line's sbID is
// reset to zero.
func (sb *Scrollback) popFromScrollback(fixedPos bool) *Line {
	line := sb.last
	if line == nil {
		return nil
	}

	prev := line.prev
	sb.last = prev
	if prev != nil {
		prev.next = nil
	} else {
		sb.first = nil
	}
	sb.count--

	if sb.pos == line {
		if fixedPos {
			// unchanged: pos stays nil-equivalent to "at the line
			// that no longer exists"; since the grid is what it will
			// be drawn from now, clear it so rendering falls back to
			// the live grid.
			sb.pos = nil
		} else {
			sb.pos = prev
		}
	}

	line.sbID = 0
	line.prev = nil
	line.next = nil
	return line
}

// setMax immediately trims oldest lines beyond max.
func (sb *Scrollback) setMax(max int, fixedPos bool) {
	sb.max = max
	for sb.count > sb.max {
		sb.trimOldest(fixedPos)
	}
}

// clear drops all lines and resets pos. It returns nothing and does
// not touch the selection; Screen.ClearScrollback patches selection
// endpoints separately.
func (sb *Scrollback) clear() {
	sb.first = nil
	sb.last = nil
	sb.count = 0
	sb.pos = nil
}

// up moves pos n lines toward older history, stopping at the oldest
// line. If pos is nil, starts from the newest retained line.
func (sb *Scrollback) up(n int) {
	if sb.count == 0 {
		return
	}
	if sb.pos == nil {
		sb.pos = sb.last
		n--
	}
	for ; n > 0 && sb.pos.prev != nil; n-- {
		sb.pos = sb.pos.prev
	}
}

// down moves pos n lines toward the present. Once it would move past
// the newest line, pos is reset to nil (live view).
func (sb *Scrollback) down(n int) {
	for ; n > 0 && sb.pos != nil; n-- {
		sb.pos = sb.pos.next
	}
}

// reset returns to the live view (pos = nil).
func (sb *Scrollback) reset() {
	sb.pos = nil
}

// lineAt walks forward from the oldest line, returning the line at
// logical index idx (0 = oldest), or nil if out of range.
func (sb *Scrollback) lineAt(idx int) *Line {
	if idx < 0 || idx >= sb.count {
		return nil
	}
	l := sb.first
	for ; idx > 0; idx-- {
		l = l.next
	}
	return l
}
