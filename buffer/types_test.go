package buffer

import "testing"

func TestComparePos(t *testing.T) {
	t.Run("line", func(t *testing.T) {
		if got := ComparePos(Pos{Line: 0, Col: 0}, Pos{Line: 1, Col: 0}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
		if got := ComparePos(Pos{Line: 2, Col: 0}, Pos{Line: 1, Col: 999}); got <= 0 {
			t.Fatalf("expected > 0, got %d", got)
		}
	})

	t.Run("col", func(t *testing.T) {
		if got := ComparePos(Pos{Line: 1, Col: 0}, Pos{Line: 1, Col: 1}); got >= 0 {
			t.Fatalf("expected < 0, got %d", got)
		}
	})

	t.Run("equal", func(t *testing.T) {
		if got := ComparePos(Pos{Line: 3, Col: 4}, Pos{Line: 3, Col: 4}); got != 0 {
			t.Fatalf("expected 0, got %d", got)
		}
	})
}

func TestClampPos(t *testing.T) {
	lens := []int{3, 0, 1}
	lineLen := func(line int) int { return lens[line] }

	cases := []struct {
		in, want Pos
	}{
		{Pos{Line: -4, Col: -1}, Pos{Line: 0, Col: 0}},
		{Pos{Line: 0, Col: 99}, Pos{Line: 0, Col: 2}},
		{Pos{Line: 1, Col: 5}, Pos{Line: 1, Col: 0}},
		{Pos{Line: 9, Col: 9}, Pos{Line: 2, Col: 0}},
	}
	for _, tc := range cases {
		if got := ClampPos(tc.in, len(lens), lineLen); got != tc.want {
			t.Fatalf("ClampPos(%v): got %v, want %v", tc.in, got, tc.want)
		}
	}

	if got := ClampPos(Pos{Line: 3, Col: 3}, 0, nil); got != (Pos{}) {
		t.Fatalf("ClampPos on empty doc: got %v, want zero", got)
	}
}
