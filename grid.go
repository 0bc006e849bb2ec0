package vtscreen

// Flags is the viewport's behavior bitset.
type Flags uint16

const (
	FlagInsertMode Flags = 1 << iota
	FlagAutoWrap
	FlagRelOrigin
	FlagInverse
	FlagHideCursor
	FlagFixedPos
	// FlagAlternate is reserved for alt-screen routing; the core never
	// acts on it, per spec §6 ("callers implementing alt-screen must
	// swap screen instances externally").
	FlagAlternate
)

// grid is the currently visible size_x x size_y array of line handles
// plus cursor, margins, tab ruler, and mode flags (spec §3, subsystem
// B). The backing lines slice holds exactly sizeY lines; Resize keeps
// no spare tail, so growing the row count restores lines from
// scrollback or allocates new ones.
type grid struct {
	lines []*Line // len(lines) == sizeY

	sizeX, sizeY int
	cursorX      int
	cursorY      int
	marginTop    int
	marginBottom int

	tabRuler []bool // len == sizeX

	flags   Flags
	defAttr Attr
}

func newGrid(sizeX, sizeY int) (*grid, error) {
	if sizeX < 1 || sizeY < 1 {
		return nil, ErrInvalidArg
	}
	g := &grid{
		sizeX:        sizeX,
		sizeY:        sizeY,
		marginTop:    0,
		marginBottom: sizeY - 1,
		defAttr:      DefaultAttr,
		flags:        FlagAutoWrap,
	}
	g.lines = make([]*Line, sizeY)
	for i := range g.lines {
		l, err := newLine(sizeX, g.defAttr)
		if err != nil {
			return nil, err
		}
		g.lines[i] = l
	}
	g.tabRuler = defaultTabRuler(sizeX)
	return g, nil
}

func defaultTabRuler(width int) []bool {
	ruler := make([]bool, width)
	for i := 0; i < width; i += 8 {
		ruler[i] = true
	}
	return ruler
}

func (g *grid) getWidth() int  { return g.sizeX }
func (g *grid) getHeight() int { return g.sizeY }
func (g *grid) getCursorX() int { return g.cursorX }
func (g *grid) getCursorY() int { return g.cursorY }
func (g *grid) getFlags() Flags { return g.flags }

// setFlags ORs mask into the flag set. 0 is a no-op.
func (g *grid) setFlags(mask Flags) { g.flags |= mask }

// resetFlags AND-NOTs mask out of the flag set. 0 is a no-op.
func (g *grid) resetFlags(mask Flags) { g.flags &^= mask }

func (g *grid) setDefAttr(a Attr) { g.defAttr = a }

// setTabstop toggles a tab at the current cursor column on; a cursor
// out of [0, sizeX) is ignored.
func (g *grid) setTabstop() {
	if g.cursorX >= 0 && g.cursorX < g.sizeX {
		g.tabRuler[g.cursorX] = true
	}
}

// resetTabstop toggles the tab at the current cursor column off.
func (g *grid) resetTabstop() {
	if g.cursorX >= 0 && g.cursorX < g.sizeX {
		g.tabRuler[g.cursorX] = false
	}
}

func (g *grid) resetAllTabstops() {
	for i := range g.tabRuler {
		g.tabRuler[i] = false
	}
}

// reset clears flags (re-enabling auto-wrap, matching the teacher's
// default-on wrap behavior), restores whole-screen margins, and
// rebuilds the default every-8th-column tab ruler.
func (g *grid) reset() {
	g.flags = FlagAutoWrap
	g.marginTop = 0
	g.marginBottom = g.sizeY - 1
	g.tabRuler = defaultTabRuler(g.sizeX)
}

// line returns the live grid line at visible row y (0-based), or nil
// if out of range.
func (g *grid) line(y int) *Line {
	if y < 0 || y >= len(g.lines) {
		return nil
	}
	return g.lines[y]
}

// cell reads the cell at (x, y) in the live grid, using the empty
// sentinel if x is past the line's allocated width.
func (g *grid) cell(x, y int) Cell {
	l := g.line(y)
	if l == nil {
		return emptyCell()
	}
	return l.cellAt(x)
}
