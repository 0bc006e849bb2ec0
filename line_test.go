package vtscreen

import "testing"

func TestNewLine(t *testing.T) {
	l, err := newLine(10, DefaultAttr)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if l.size() != 10 {
		t.Errorf("expected size 10, got %d", l.size())
	}
	for x := 0; x < 10; x++ {
		if !l.cellAt(x).IsEmpty() {
			t.Errorf("expected cell %d to be empty", x)
		}
	}
}

func TestNewLineRejectsZeroWidth(t *testing.T) {
	if _, err := newLine(0, DefaultAttr); err != ErrInvalidArg {
		t.Errorf("expected ErrInvalidArg, got %v", err)
	}
}

func TestLineCellAtOutOfRange(t *testing.T) {
	l, _ := newLine(5, DefaultAttr)
	if !l.cellAt(-1).IsEmpty() || !l.cellAt(5).IsEmpty() {
		t.Error("expected out-of-range reads to return the empty sentinel")
	}
}

func TestLineResizeGrowsOnly(t *testing.T) {
	l, _ := newLine(5, DefaultAttr)
	l.cells[2] = Cell{Ch: 'x', Width: 1}

	l.resize(8, DefaultAttr)
	if l.size() != 8 {
		t.Errorf("expected size 8, got %d", l.size())
	}
	if l.cellAt(2).Ch != 'x' {
		t.Error("expected existing content preserved after grow")
	}

	l.resize(3, DefaultAttr)
	if l.size() != 8 {
		t.Error("expected resize to never shrink the backing array")
	}
}

func TestLineReset(t *testing.T) {
	l, _ := newLine(4, DefaultAttr)
	l.cells[0] = Cell{Ch: 'A', Width: 1}
	l.cells[1] = Cell{Ch: 'B', Width: 1}

	l.reset(DefaultAttr)
	for x := 0; x < 4; x++ {
		if !l.cellAt(x).IsEmpty() {
			t.Errorf("expected cell %d cleared after reset", x)
		}
	}
}

func TestLineEraseRange(t *testing.T) {
	l, _ := newLine(5, DefaultAttr)
	for x := 0; x < 5; x++ {
		l.cells[x] = Cell{Ch: SymbolID('a' + rune(x)), Width: 1}
	}

	l.eraseRange(1, 3, DefaultAttr, false)

	if l.cellAt(0).Ch != 'a' {
		t.Error("expected column 0 untouched")
	}
	if !l.cellAt(1).IsEmpty() || !l.cellAt(2).IsEmpty() {
		t.Error("expected columns 1,2 erased")
	}
	if l.cellAt(3).Ch != 'd' {
		t.Error("expected column 3 untouched (erase range is half-open)")
	}
}

func TestLineEraseRangeHonorsProtect(t *testing.T) {
	l, _ := newLine(3, DefaultAttr)
	l.cells[1] = Cell{Ch: 'p', Width: 1, Attr: Attr{Protect: true}}

	l.eraseRange(0, 3, DefaultAttr, true)

	if l.cellAt(1).Ch != 'p' {
		t.Error("expected protected cell to survive a protected erase")
	}
	if !l.cellAt(0).IsEmpty() || !l.cellAt(2).IsEmpty() {
		t.Error("expected unprotected cells erased")
	}
}
