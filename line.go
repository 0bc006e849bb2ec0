package vtscreen

// Line owns a contiguous row of cells, at least as wide as the grid
// that currently displays it. Lines may be overallocated: shrinking
// the grid never shrinks a line, so later growth can be allocation
// free. sbID is non-zero exactly while the line is linked into
// scrollback (spec invariant 6).
type Line struct {
	cells []Cell
	sbID  uint64

	// scrollback list linkage; nil while the line lives in the grid.
	prev, next *Line
}

// newLine allocates a line of the given width, pre-initialized to the
// empty glyph with defAttr. width must be >= 1.
func newLine(width int, defAttr Attr) (*Line, error) {
	if width < 1 {
		return nil, ErrInvalidArg
	}
	l := &Line{cells: make([]Cell, width)}
	for i := range l.cells {
		cellInit(&l.cells[i], defAttr)
	}
	return l, nil
}

// size returns the line's allocated cell count.
func (l *Line) size() int {
	return len(l.cells)
}

// resize grows the line's cell array to at least newWidth, never
// shrinking it. New cells are initialized from defAttr.
func (l *Line) resize(newWidth int, defAttr Attr) {
	if newWidth <= len(l.cells) {
		return
	}
	grown := make([]Cell, newWidth)
	copy(grown, l.cells)
	for i := len(l.cells); i < newWidth; i++ {
		cellInit(&grown[i], defAttr)
	}
	l.cells = grown
}

// cellAt returns the cell at column x, or emptyCell() if x is past
// the line's allocated width (spec §4.E draw traversal's "empty
// sentinel" rule).
func (l *Line) cellAt(x int) Cell {
	if x < 0 || x >= len(l.cells) {
		return emptyCell()
	}
	return l.cells[x]
}

// reset re-initializes every cell in the line from defAttr, in place.
// Used when scroll_up must reuse a line instead of allocating fresh
// (the OOM-never-loses-a-scroll fallback).
func (l *Line) reset(defAttr Attr) {
	for i := range l.cells {
		cellInit(&l.cells[i], defAttr)
	}
}

// eraseRange resets cells [from, to) to defAttr, honoring protect.
func (l *Line) eraseRange(from, to int, defAttr Attr, protect bool) {
	if from < 0 {
		from = 0
	}
	if to > len(l.cells) {
		to = len(l.cells)
	}
	for i := from; i < to; i++ {
		if protect && l.cells[i].Attr.Protect {
			continue
		}
		cellInit(&l.cells[i], defAttr)
	}
}
