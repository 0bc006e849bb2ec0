package vtscreen

import "testing"

func TestNewScreen(t *testing.T) {
	s, err := New(80, 24)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.GetWidth() != 80 || s.GetHeight() != 24 {
		t.Errorf("expected 80x24, got %dx%d", s.GetWidth(), s.GetHeight())
	}
	if s.GetCursorX() != 0 || s.GetCursorY() != 0 {
		t.Error("expected cursor to start at origin")
	}
}

func TestNewScreenRejectsInvalidDims(t *testing.T) {
	if _, err := New(0, 10); err != ErrInvalidArg {
		t.Errorf("expected ErrInvalidArg, got %v", err)
	}
}

func TestWithScrollbackMax(t *testing.T) {
	s, _ := New(10, 5, WithScrollbackMax(50))
	if s.ScrollbackMax() != 50 {
		t.Errorf("expected scrollback max 50, got %d", s.ScrollbackMax())
	}
}

func TestWithLog(t *testing.T) {
	var got string
	s, _ := New(10, 5, WithLog(func(file string, line int, fn, subsystem string, sev Severity, format string, args ...any) {
		got = fn
	}))

	s.drawing = true
	s.guardMutation("Probe")

	if got != "Probe" {
		t.Errorf("expected log sink to observe fn name %q, got %q", "Probe", got)
	}
}

func TestSetGetFlags(t *testing.T) {
	s, _ := New(10, 5)
	s.SetFlags(FlagInsertMode)
	if s.GetFlags()&FlagInsertMode == 0 {
		t.Error("expected InsertMode set")
	}
	s.ResetFlags(FlagInsertMode)
	if s.GetFlags()&FlagInsertMode != 0 {
		t.Error("expected InsertMode cleared")
	}
}

func TestScreenReset(t *testing.T) {
	s, _ := New(10, 5)
	s.SetFlags(FlagInsertMode)
	s.Reset()
	if s.GetFlags() != FlagAutoWrap {
		t.Errorf("expected flags reset to AutoWrap, got %v", s.GetFlags())
	}
}

func TestScrollbackLifecycle(t *testing.T) {
	s, _ := New(5, 2, WithScrollbackMax(10))
	if s.ScrollbackLen() != 0 {
		t.Errorf("expected empty scrollback, got %d", s.ScrollbackLen())
	}

	s.ScrollUp(1)
	if s.ScrollbackLen() != 1 {
		t.Errorf("expected 1 retired line, got %d", s.ScrollbackLen())
	}

	s.ClearScrollback()
	if s.ScrollbackLen() != 0 {
		t.Error("expected ClearScrollback to empty the ring")
	}
}

func TestScrollbackLineRange(t *testing.T) {
	s, _ := New(5, 2, WithScrollbackMax(10))
	writeString(s, "ab")
	s.ScrollUp(1)

	if _, err := s.ScrollbackLine(99); err != ErrRange {
		t.Errorf("expected ErrRange for an out-of-bounds index, got %v", err)
	}

	text, err := s.ScrollbackLine(0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "ab" {
		t.Errorf("expected %q, got %q", "ab", text)
	}
}
