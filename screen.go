package vtscreen

// Screen is the composite terminal screen core: a viewport grid
// (subsystem B), a scrollback ring (C), a selection tracker (D), and
// the cursor/erase/scroll/write/draw operations (E) that an external
// escape-sequence interpreter drives against them.
//
// Screen is not safe for concurrent use by multiple goroutines on the
// same instance (spec §5): the caller is expected to serialize calls
// the same way a single-threaded VT100 state machine would. The only
// protection Screen enforces itself is against an escape-sequence
// driver mutating the screen from inside a Draw callback; see
// ErrReentrant.
type Screen struct {
	grid *grid
	sb   *Scrollback
	sel  Selection

	log LogFunc

	drawing bool // re-entrance guard for Draw (spec §5)
}

// Option configures a Screen during construction, mirroring the
// teacher's functional-options style (terminal.go's Option/WithSize).
type Option func(*Screen)

// WithLog installs the logging sink. A nil LogFunc (the default)
// disables logging.
func WithLog(fn LogFunc) Option {
	return func(s *Screen) { s.log = fn }
}

// WithScrollbackMax sets the scrollback capacity at construction
// time. Defaults to 0 (no scrollback retained).
func WithScrollbackMax(max int) Option {
	return func(s *Screen) { s.sb.max = max }
}

// New creates a Screen with the given visible dimensions. Both
// dimensions must be >= 1, else ErrInvalidArg.
func New(sizeX, sizeY int, opts ...Option) (*Screen, error) {
	g, err := newGrid(sizeX, sizeY)
	if err != nil {
		return nil, err
	}

	s := &Screen{
		grid: g,
		sb:   newScrollback(0),
	}
	s.sb.onTrim = s.patchSelectionTrim

	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

func (s *Screen) guardMutation(fn string) error {
	if s.drawing {
		s.logf(fn, SevErr, "mutating call during draw traversal")
		return ErrReentrant
	}
	return nil
}

// --- Viewport grid accessors (spec §4.B) ---

func (s *Screen) GetWidth() int   { return s.grid.getWidth() }
func (s *Screen) GetHeight() int  { return s.grid.getHeight() }
func (s *Screen) GetCursorX() int { return s.grid.getCursorX() }
func (s *Screen) GetCursorY() int { return s.grid.getCursorY() }
func (s *Screen) GetFlags() Flags { return s.grid.getFlags() }

// SetFlags ORs mask into the flag set. Passing 0 is a no-op.
func (s *Screen) SetFlags(mask Flags) { s.grid.setFlags(mask) }

// ResetFlags AND-NOTs mask out of the flag set. Passing 0 is a no-op.
func (s *Screen) ResetFlags(mask Flags) { s.grid.resetFlags(mask) }

// SetDefAttr sets the attributes applied to newly initialized cells.
func (s *Screen) SetDefAttr(a Attr) { s.grid.setDefAttr(a) }

// SetTabstop toggles a tab stop on at the current cursor column.
func (s *Screen) SetTabstop() { s.grid.setTabstop() }

// ResetTabstop toggles the tab stop off at the current cursor column.
func (s *Screen) ResetTabstop() { s.grid.resetTabstop() }

// ResetAllTabstops clears the entire tab ruler.
func (s *Screen) ResetAllTabstops() { s.grid.resetAllTabstops() }

// Reset sets the flags back to FlagAutoWrap alone (every other flag is
// cleared), resets margins to the whole screen, and restores the
// default every-8th-column tab ruler.
func (s *Screen) Reset() { s.grid.reset() }

// --- Scrollback (spec §4.C) ---

// ScrollbackLen returns the number of lines currently retained.
func (s *Screen) ScrollbackLen() int { return s.sb.Len() }

// ScrollbackMax returns the current scrollback capacity.
func (s *Screen) ScrollbackMax() int { return s.sb.Max() }

// SetMaxScrollback immediately trims oldest lines beyond max.
func (s *Screen) SetMaxScrollback(max int) {
	s.sb.setMax(max, s.grid.flags&FlagFixedPos != 0)
}

// ClearScrollback frees all scrollback lines, resets the viewport
// position, and invalidates any selection endpoint referencing them.
func (s *Screen) ClearScrollback() {
	s.sb.clear()
	s.patchSelectionClear()
}

// ScrollbackUp moves the viewport position n lines toward older
// history, stopping at the oldest line ("user scrolled up").
func (s *Screen) ScrollbackUp(n int) { s.sb.up(n) }

// ScrollbackDown moves the viewport position n lines toward the
// present.
func (s *Screen) ScrollbackDown(n int) { s.sb.down(n) }

// ScrollbackPageUp moves the viewport position up by n full pages.
func (s *Screen) ScrollbackPageUp(n int) { s.sb.up(n * s.grid.sizeY) }

// ScrollbackPageDown moves the viewport position down by n full pages.
func (s *Screen) ScrollbackPageDown(n int) { s.sb.down(n * s.grid.sizeY) }

// ScrollbackReset returns to the live view.
func (s *Screen) ScrollbackReset() { s.sb.reset() }

// ScrollbackLine returns the text of scrollback line idx (0 = oldest),
// with trailing blanks trimmed, or ErrRange if idx is out of bounds.
func (s *Screen) ScrollbackLine(idx int) (string, error) {
	l := s.sb.lineAt(idx)
	if l == nil {
		return "", ErrRange
	}
	r := row{sbLine: l}
	return string(trimTrailingSpaceRunes(s.rowText(r))), nil
}
