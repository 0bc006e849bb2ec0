package vtscreen

import "testing"

type recordedCell struct {
	x, y  int
	ch    SymbolID
	width int
	attr  Attr
}

func collectDraw(s *Screen) []recordedCell {
	var cells []recordedCell
	s.Draw(nil, func(user any, x, y int, ch SymbolID, width int, attr Attr) error {
		cells = append(cells, recordedCell{x, y, ch, width, attr})
		return nil
	}, nil, nil)
	return cells
}

func TestDrawVisitsEveryCell(t *testing.T) {
	s, _ := New(3, 2)
	cells := collectDraw(s)
	if len(cells) != 6 {
		t.Errorf("expected 6 cells visited, got %d", len(cells))
	}
}

func TestDrawSkipsWideContinuationCell(t *testing.T) {
	s, _ := New(3, 1)
	s.Write('中', DefaultAttr, 2)
	cells := collectDraw(s)
	if len(cells) != 2 {
		t.Errorf("expected 2 cells visited (leading glyph + trailing empty), got %d", len(cells))
	}
	if cells[0].width != 2 {
		t.Errorf("expected the leading cell to report width 2, got %d", cells[0].width)
	}
}

func TestDrawInvertsUnderSelection(t *testing.T) {
	s, _ := New(5, 1)
	writeString(s, "hello")
	s.SelectionStart(1, 0)
	s.SelectionTarget(3, 0)

	cells := collectDraw(s)
	for _, c := range cells {
		want := c.x >= 1 && c.x <= 3
		if c.attr.Inverse != want {
			t.Errorf("cell x=%d: expected inverse=%v, got %v", c.x, want, c.attr.Inverse)
		}
	}
}

func TestDrawInvertsCursorCell(t *testing.T) {
	s, _ := New(5, 1)
	s.MoveTo(2, 0)
	cells := collectDraw(s)
	if !cells[2].attr.Inverse {
		t.Error("expected the cursor's cell to be drawn inverted")
	}
	if cells[1].attr.Inverse {
		t.Error("expected a non-cursor cell to be drawn normally")
	}
}

func TestDrawHidesCursorWhenFlagSet(t *testing.T) {
	s, _ := New(5, 1)
	s.MoveTo(2, 0)
	s.SetFlags(FlagHideCursor)
	cells := collectDraw(s)
	if cells[2].attr.Inverse {
		t.Error("expected no cursor inversion when FlagHideCursor is set")
	}
}

func TestDrawGuardsReentrantMutation(t *testing.T) {
	s, _ := New(5, 1)
	var gotErr error
	s.Draw(nil, func(user any, x, y int, ch SymbolID, width int, attr Attr) error {
		if x == 0 && y == 0 {
			gotErr = s.guardMutation("probe")
		}
		return nil
	}, nil, nil)

	if gotErr != ErrReentrant {
		t.Errorf("expected ErrReentrant during Draw, got %v", gotErr)
	}
}

func TestDrawPrepareAndRenderCallbacks(t *testing.T) {
	s, _ := New(3, 1)
	var prepared, rendered bool
	s.Draw(
		func(user any) error { prepared = true; return nil },
		func(user any, x, y int, ch SymbolID, width int, attr Attr) error { return nil },
		func(user any) { rendered = true },
		nil,
	)
	if !prepared || !rendered {
		t.Error("expected both prepare and render callbacks invoked")
	}
}

func TestDrawAbortsOnPrepareFailure(t *testing.T) {
	s, _ := New(3, 1)
	var drawn, rendered bool
	s.Draw(
		func(user any) error { return ErrNotSupported },
		func(user any, x, y int, ch SymbolID, width int, attr Attr) error { drawn = true; return nil },
		func(user any) { rendered = true },
		nil,
	)
	if drawn || rendered {
		t.Error("expected a failing prepareCb to abort before drawCb or renderCb run")
	}
}
