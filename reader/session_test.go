package reader

import (
	"fmt"
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/wisereader/buffer"
	"github.com/iw2rmb/wisereader/styled"
)

func TestApplyKey_RepeatCount(t *testing.T) {
	s := sessionOf(numberedLines(50), 40, 10)

	s = keys(s, "1", "2", "j")
	if got := s.Cursor(); got.Line != 12 {
		t.Fatalf("12j: got line %d, want 12", got.Line)
	}
	if got := s.PendingCount(); got != "" {
		t.Fatalf("pending after motion: got %q, want empty", got)
	}

	s = keys(s, "0", "k")
	if got := s.Cursor().Line; got != 11 {
		t.Fatalf("0k: got line %d, want 11", got)
	}

	s = keys(s, "5", "x", "k")
	if got := s.Cursor().Line; got != 10 {
		t.Fatalf("count dropped by other key: got line %d, want 10", got)
	}
}

func TestClearCount_DropsPendingDigits(t *testing.T) {
	s := sessionOf(numberedLines(50), 40, 10)

	s = keys(s, "5")
	if got := s.PendingCount(); got != "5" {
		t.Fatalf("pending: got %q, want \"5\"", got)
	}
	s = keys(s.ClearCount(), "j")
	if got := s.Cursor().Line; got != 1 {
		t.Fatalf("j after clear: got line %d, want 1", got)
	}
}

func TestApplyKey_Results(t *testing.T) {
	s := sessionOf("ab\ncd", 10, 5)

	s, res := s.ApplyKey("3")
	if !res.Consumed || res.Motion != buffer.MotionNone {
		t.Fatalf("digit: got %+v", res)
	}
	s, res = s.ApplyKey("down")
	if !res.Consumed || res.Motion != buffer.MotionDown || res.Count != 3 || !res.Moved {
		t.Fatalf("3↓: got %+v", res)
	}
	s, res = s.ApplyKey("j")
	if !res.Consumed || res.Moved {
		t.Fatalf("j at last line: got %+v", res)
	}
	_, res = s.ApplyKey("q")
	if res.Consumed {
		t.Fatalf("q: got consumed")
	}
}

func TestApplyKey_ViewportFollowsCursor(t *testing.T) {
	s := sessionOf(numberedLines(100), 40, 10)

	s = keys(s, "G")
	if got := s.Viewport().Top; got != 90 {
		t.Fatalf("G: top got %d, want 90", got)
	}
	s = keys(s, "g")
	if got := s.Viewport().Top; got != 0 {
		t.Fatalf("g: top got %d, want 0", got)
	}
	s = keys(s, "2", "0", "j")
	if got := s.Viewport().Top; got != 15 {
		t.Fatalf("20j: top got %d, want 15", got)
	}
}

func TestSetStore_RefusesOtherGenerations(t *testing.T) {
	s := NewSession(DefaultKeyMap())
	s, g1 := s.NextGeneration()
	s, g2 := s.NextGeneration()

	if _, ok := s.SetStore(buffer.NewStore(styled.Lines("old"), g1)); ok {
		t.Fatalf("store for generation %d accepted while %d is current", g1, g2)
	}
	s, ok := s.SetStore(buffer.NewStore(styled.Lines("new"), g2))
	if !ok {
		t.Fatalf("current generation refused")
	}
	if got := s.Store().Plain(0); got != "new" {
		t.Fatalf("store: got %q, want %q", got, "new")
	}
}

func TestSetStore_ClampsCursorOnReflow(t *testing.T) {
	s := sessionOf("first line\nsecond line that is long\nthird", 40, 2)
	s = keys(s, "j", "2", "0", "l")
	if got := s.Cursor(); got != (buffer.Pos{Line: 1, Col: 20}) {
		t.Fatalf("setup cursor: got %v", got)
	}

	s, gen := s.NextGeneration()
	s, _ = s.SetStore(buffer.NewStore(styled.Lines("first\nsecond"), gen))
	if got := s.Cursor(); got != (buffer.Pos{Line: 1, Col: 5}) {
		t.Fatalf("cursor after reflow: got %v, want (1,5)", got)
	}
	if got := s.Viewport().Top; got != 0 {
		t.Fatalf("top after reflow: got %d, want 0", got)
	}
}

func TestRenderVisible_HighlightsAndCrops(t *testing.T) {
	s := sessionOf("0123456789abc\nxy\n\nz", 5, 3)
	s = keys(s, "1", "1", "l")

	lines, err := s.RenderVisible()
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	want := []string{"789ab", "", ""}
	if fmt.Sprintf("%q", plain(lines)) != fmt.Sprintf("%q", want) {
		t.Fatalf("visible: got %q, want %q", plain(lines), want)
	}
	if !strings.HasPrefix(lines[0], "789a"+styled.CursorOn+"b"+styled.CursorOff) {
		t.Fatalf("cursor cell: got %q", lines[0])
	}

	s = keys(s, "2", "j")
	lines = s.VisibleLines()
	if !strings.HasPrefix(lines[2], styled.CursorOn+" "+styled.CursorOff) {
		t.Fatalf("cursor on empty line: got %q", lines[2])
	}
}

func TestRenderVisible_WideGlyphsFitWidth(t *testing.T) {
	s := sessionOf("世界世界世界世界\nabcdefgh", 5, 3)
	s = keys(s, "5", "l")

	if got := s.Viewport().Left; got != 4 {
		t.Fatalf("left: got %d, want 4", got)
	}
	lines := s.VisibleLines()
	for i, l := range lines {
		if w := ansi.StringWidth(l); w > 5 {
			t.Fatalf("line %d: got %d cells, want at most 5", i, w)
		}
	}
	if got := plain(lines)[0]; got != "世界" {
		t.Fatalf("cursor line: got %q, want \"世界\"", got)
	}
	if !strings.Contains(lines[0], styled.CursorOn+"界"+styled.CursorOff) {
		t.Fatalf("cursor cell not visible: got %q", lines[0])
	}

	s = keys(s, "5", "h")
	if got := s.Viewport().Left; got != 0 {
		t.Fatalf("left after 5h: got %d, want 0", got)
	}
}

func TestLinksAtCursorAndStatus(t *testing.T) {
	s := sessionOf("intro\nClick [here](http://x.com/y) now", 80, 5)
	if links := s.LinksAtCursor(); len(links) != 0 {
		t.Fatalf("links on intro: got %v", links)
	}

	s = keys(s, "j", "w")
	links := s.LinksAtCursor()
	if len(links) != 1 || links[0].URL != "http://x.com/y" {
		t.Fatalf("links at (1,7): got %v", links)
	}

	if got := s.Status().String(); got != "Ln 2/2 (100%) Col 8" {
		t.Fatalf("status: got %q", got)
	}
}

func TestSession_EmptyIsInert(t *testing.T) {
	s := NewSession(KeyMap{})
	s = keys(s, "5", "j", "G", "w")
	if got := s.Cursor(); got != (buffer.Pos{}) {
		t.Fatalf("cursor without store: got %v", got)
	}
	if got := s.VisibleLines(); got != nil {
		t.Fatalf("visible without store: got %q", got)
	}
	if got := s.Status().String(); got != "Ln 1/0 (0%) Col 1" {
		t.Fatalf("status without store: got %q", got)
	}
}
