package buffer

import (
	"errors"
	"testing"

	"github.com/iw2rmb/wisereader/styled"
)

func TestStore_AccessorsUseVisualColumns(t *testing.T) {
	s := NewStore([]styled.Line{
		styled.NewLine("\x1b[34mhello\x1b[0m"),
		styled.NewLine(""),
	}, 7)

	if s.Len() != 2 || s.Generation() != 7 {
		t.Fatalf("len/gen: got %d/%d, want 2/7", s.Len(), s.Generation())
	}
	if got := s.Plain(0); got != "hello" {
		t.Fatalf("plain: got %q, want %q", got, "hello")
	}
	if got := s.VisualLen(0); got != 5 {
		t.Fatalf("visual len: got %d, want 5", got)
	}
	if got := s.VisualLen(5); got != 0 {
		t.Fatalf("out of range visual len: got %d, want 0", got)
	}
}

func TestStore_NilIsEmpty(t *testing.T) {
	var s *Store
	if s.Len() != 0 || s.Generation() != 0 || s.Plain(0) != "" || s.Lines() != nil {
		t.Fatalf("nil store should behave as empty")
	}
	if got := Apply(s, Pos{Line: 3, Col: 3}, MotionDown, 1); got != (Pos{}) {
		t.Fatalf("motion on empty store: got %v", got)
	}
}

func TestRebuild_UsesRenderer(t *testing.T) {
	s, err := Rebuild(fakeRenderer{prefix: "> "}, "a\nb", 20, 3)
	if err != nil {
		t.Fatalf("rebuild: %v", err)
	}
	if s.Len() != 2 || s.Plain(1) != "> b" || s.Generation() != 3 {
		t.Fatalf("rebuilt store: len=%d line1=%q gen=%d", s.Len(), s.Plain(1), s.Generation())
	}
}

func TestRebuild_RendererFailureFallsBackToPlainText(t *testing.T) {
	boom := errors.New("boom")
	s, err := Rebuild(fakeRenderer{err: boom}, "abcdef\ngh", 4, 2)
	if !errors.Is(err, boom) {
		t.Fatalf("warning: got %v, want %v", err, boom)
	}
	if s == nil || s.Len() != 3 {
		t.Fatalf("fallback store lines: got %d, want 3", s.Len())
	}
	if s.Plain(0) != "abcd" || s.Plain(1) != "ef" || s.Plain(2) != "gh" {
		t.Fatalf("fallback wrap: %q %q %q", s.Plain(0), s.Plain(1), s.Plain(2))
	}
}
