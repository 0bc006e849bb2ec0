package vtscreen

import "testing"

func TestScrollUpRetiresTopIntoScrollback(t *testing.T) {
	s, _ := New(5, 3, WithScrollbackMax(10))
	writeString(s, "top")

	s.ScrollUp(1)

	if s.ScrollbackLen() != 1 {
		t.Fatalf("expected 1 retired line, got %d", s.ScrollbackLen())
	}
	text, err := s.ScrollbackLine(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "top" {
		t.Errorf("expected retired line %q, got %q", "top", text)
	}
}

func TestScrollUpAppendsBlankAtBottom(t *testing.T) {
	s, _ := New(5, 3)
	s.MoveTo(0, 2)
	writeString(s, "bot")

	s.ScrollUp(1)

	if !s.grid.line(2).cellAt(0).IsEmpty() {
		t.Error("expected a fresh blank line at the bottom of the region")
	}
}

func TestScrollUpClampsToRegionSize(t *testing.T) {
	s, _ := New(5, 3, WithScrollbackMax(10))
	s.ScrollUp(100)
	if s.ScrollbackLen() != 3 {
		t.Errorf("expected scroll clamped to the 3-row region, got %d retired", s.ScrollbackLen())
	}
}

func TestScrollUpHonorsMargins(t *testing.T) {
	s, _ := New(5, 5, WithScrollbackMax(10))
	s.SetMargins(1, 3)
	s.ScrollUp(10)
	if s.ScrollbackLen() != 3 {
		t.Errorf("expected only the 3-row margin region retired, got %d", s.ScrollbackLen())
	}
}

func TestScrollDownDoesNotTouchScrollback(t *testing.T) {
	s, _ := New(5, 3, WithScrollbackMax(10))
	s.ScrollDown(2)
	if s.ScrollbackLen() != 0 {
		t.Error("expected ScrollDown to never populate scrollback")
	}
}

func TestScrollDownDiscardsBottomRows(t *testing.T) {
	s, _ := New(5, 3)
	writeString(s, "top")
	s.MoveTo(0, 2)
	writeString(s, "bot")

	s.ScrollDown(1)

	if !s.grid.line(0).cellAt(0).IsEmpty() {
		t.Error("expected a fresh blank line at the top of the region")
	}
	text := string(s.rowText(row{y: 1}))
	if text[:3] != "top" {
		t.Errorf("expected row 0's content shifted to row 1, got %q", text)
	}
}

func TestSetMarginsRejectsInverted(t *testing.T) {
	s, _ := New(10, 10)
	s.SetMargins(5, 5)
	if s.grid.marginTop != 0 || s.grid.marginBottom != 9 {
		t.Error("expected a degenerate margin request to be rejected")
	}
}

func TestSetMarginsClamps(t *testing.T) {
	s, _ := New(10, 10)
	s.SetMargins(-5, 100)
	if s.grid.marginTop != 0 || s.grid.marginBottom != 9 {
		t.Errorf("expected margins clamped to [0,9], got [%d,%d]", s.grid.marginTop, s.grid.marginBottom)
	}
}
