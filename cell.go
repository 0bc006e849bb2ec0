package vtscreen

// SymbolID is an opaque handle identifying a cell's glyph content.
//
// Zero means empty. A non-zero value is either a scalar Unicode code
// point or a synthetic key into an external symbol table (base glyph
// plus combining marks); the core never interprets which and only
// ever compares it for equality with zero. Lifetime of whatever a
// non-zero handle resolves to is the caller's responsibility.
type SymbolID uint32

// Attr is the exact wire-compatible cell attribute layout: foreground
// and background as either a palette index (>= 0) or literal RGB
// (when the code is negative), plus four independent style flags.
type Attr struct {
	FgCode int8
	BgCode int8
	Fr, Fg, Fb byte
	Br, Bg, Bb byte
	Bold      bool
	Underline bool
	Inverse   bool
	Protect   bool
}

// DefaultAttr is the attribute applied to cells with no explicit style:
// both codes negative (use RGB fields), RGB fields carrying the
// default foreground/background colors.
var DefaultAttr = Attr{
	FgCode: -1, BgCode: -1,
	Fr: DefaultForeground.R, Fg: DefaultForeground.G, Fb: DefaultForeground.B,
	Br: DefaultBackground.R, Bg: DefaultBackground.G, Bb: DefaultBackground.B,
}

// ResolveFg returns the effective foreground RGB, resolving a palette
// index through DefaultPalette when FgCode >= 0.
func (a Attr) ResolveFg() (r, g, b byte) {
	if a.FgCode >= 0 {
		c := DefaultPalette[uint8(a.FgCode)]
		return c.R, c.G, c.B
	}
	return a.Fr, a.Fg, a.Fb
}

// ResolveBg returns the effective background RGB, resolving a palette
// index through DefaultPalette when BgCode >= 0.
func (a Attr) ResolveBg() (r, g, b byte) {
	if a.BgCode >= 0 {
		c := DefaultPalette[uint8(a.BgCode)]
		return c.R, c.G, c.B
	}
	return a.Br, a.Bg, a.Bb
}

// Cell is one character position: a symbol handle, its display width,
// and its attributes.
type Cell struct {
	Ch    SymbolID
	Width uint8 // 1 or 2; 2 marks the first column of a wide glyph, 0 the continuation column to its right
	Attr  Attr
}

// emptyCell is what a freshly allocated or erased cell looks like
// before def_attr is applied.
func emptyCell() Cell {
	return Cell{Width: 1}
}

// cellInit resets c in place to the empty glyph carrying defAttr, per
// spec §4.A's cell_init contract.
func cellInit(c *Cell, defAttr Attr) {
	c.Ch = 0
	c.Width = 1
	c.Attr = defAttr
}

// IsEmpty reports whether the cell holds no glyph.
func (c Cell) IsEmpty() bool {
	return c.Ch == 0
}
