package vtscreen

import "testing"

func TestSelectionStartActivates(t *testing.T) {
	s, _ := New(10, 5)
	if s.SelectionActive() {
		t.Error("expected no active selection initially")
	}
	s.SelectionStart(2, 1)
	if !s.SelectionActive() {
		t.Error("expected selection active after SelectionStart")
	}
}

func TestSelectionResetDeactivates(t *testing.T) {
	s, _ := New(10, 5)
	s.SelectionStart(0, 0)
	s.SelectionReset()
	if s.SelectionActive() {
		t.Error("expected selection inactive after reset")
	}
}

func TestSelectionTargetNoopWhenInactive(t *testing.T) {
	s, _ := New(10, 5)
	s.SelectionTarget(3, 3)
	if s.SelectionActive() {
		t.Error("expected SelectionTarget to be a no-op without an active selection")
	}
}

func TestSelectionCopySingleRow(t *testing.T) {
	s, _ := New(10, 3)
	writeString(s, "hello")

	s.SelectionStart(0, 0)
	s.SelectionTarget(4, 0)

	got, err := s.SelectionCopy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hello" {
		t.Errorf("expected %q, got %q", "hello", got)
	}
}

func TestSelectionCopyTrimsTrailingSpace(t *testing.T) {
	s, _ := New(10, 1)
	writeString(s, "hi")

	s.SelectionStart(0, 0)
	s.SelectionTarget(8, 0)

	got, err := s.SelectionCopy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "hi" {
		t.Errorf("expected trailing spaces trimmed, got %q", got)
	}
}

func TestSelectionCopyMultiRow(t *testing.T) {
	s, _ := New(5, 2)
	writeString(s, "ab")
	s.MoveTo(0, 1)
	writeString(s, "cd")

	s.SelectionStart(0, 0)
	s.SelectionTarget(1, 1)

	got, err := s.SelectionCopy()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "ab\ncd" {
		t.Errorf("expected %q, got %q", "ab\ncd", got)
	}
}

func TestSelectionCopyErrNotActive(t *testing.T) {
	s, _ := New(5, 5)
	if _, err := s.SelectionCopy(); err != ErrNotActive {
		t.Errorf("expected ErrNotActive, got %v", err)
	}
}

func TestSelectionPatchScrollUpConvertsToTop(t *testing.T) {
	s, _ := New(5, 3)
	s.SelectionStart(0, 0)
	s.SelectionTarget(0, 0)

	s.patchSelectionScrollUp(10)

	if s.sel.start.kind != endpointTop {
		t.Error("expected start endpoint converted to Top after scrolling past empty scrollback")
	}
}

func TestSelectionPatchTrimConvertsToTop(t *testing.T) {
	s, err := New(5, 3, WithScrollbackMax(1))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	first := mustLine(t, 5)
	s.sb.linkToScrollback(first, false)

	s.sel.active = true
	s.sel.start = endpoint{kind: endpointScrollback, line: first}
	s.sel.end = s.sel.start

	// Linking a second line over capacity 1 evicts first, invoking
	// patchSelectionTrim through the registered onTrim callback.
	s.sb.linkToScrollback(mustLine(t, 5), false)

	if s.sel.start.kind != endpointTop {
		t.Error("expected endpoint referencing the trimmed line to become Top")
	}
}

// writeString is a test helper writing plain ASCII without touching
// the margin/scroll machinery under test elsewhere.
func writeString(s *Screen, str string) {
	for _, r := range str {
		s.WriteRune(r, DefaultAttr)
	}
}
