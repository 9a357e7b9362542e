package styled

import (
	"strings"
	"testing"

	"pgregory.net/rapid"
)

var styledPieces = []string{
	"a", "b", " ", "-", "é", "世", "_", "7",
	"\x1b[31m", "\x1b[1;4m", "\x1b[0m", "\x1b[m",
	"\x1b]8;;http://x.com\x1b\\", "\x1b]8;;\x1b\\",
}

func genLine(t *rapid.T) Line {
	parts := rapid.SliceOfN(rapid.SampledFrom(styledPieces), 0, 24).Draw(t, "parts")
	return NewLine(strings.Join(parts, ""))
}

func TestProp_SliceConcatenationPreservesText(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := genLine(t)
		k := rapid.IntRange(0, l.VisualLen+2).Draw(t, "k")

		head, err := Slice(l, 0, k)
		if err != nil {
			t.Fatalf("head: %v", err)
		}
		tail, err := Slice(l, k, -1)
		if err != nil {
			t.Fatalf("tail: %v", err)
		}
		if got, want := head.Plain()+tail.Plain(), l.Plain(); got != want {
			t.Fatalf("plain concat: got %q, want %q", got, want)
		}
		if head.VisualLen+tail.VisualLen != l.VisualLen {
			t.Fatalf("len split: %d+%d != %d", head.VisualLen, tail.VisualLen, l.VisualLen)
		}
		if _, err := Tokenize(head.Raw); err != nil {
			t.Fatalf("head not well formed: %q", head.Raw)
		}
	})
}

func TestProp_HighlightKeepsOtherClusters(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		l := genLine(t)
		col := rapid.IntRange(0, l.VisualLen+3).Draw(t, "col")

		got, err := Highlight(l, col)
		if err != nil {
			t.Fatalf("highlight: %v", err)
		}
		plain := l.Plain()
		if col >= l.VisualLen {
			if got.Plain() != plain+" " || got.VisualLen != l.VisualLen+1 {
				t.Fatalf("eol marker: got %q", got.Plain())
			}
			return
		}
		if got.Plain() != plain || got.VisualLen != l.VisualLen {
			t.Fatalf("highlight changed text: got %q, want %q", got.Plain(), plain)
		}
	})
}
