package grapheme

import "testing"

const family = "\U0001F468\u200d\U0001F469\u200d\U0001F467"

func TestSplitAndCount_MultiRuneGraphemes(t *testing.T) {
	text := "a" + "é" + family + "b"
	got := Split(text)
	if len(got) != 4 {
		t.Fatalf("split len=%d, want %d", len(got), 4)
	}
	if got[1] != "é" {
		t.Fatalf("split[1]=%q, want %q", got[1], "é")
	}
	if got[2] != family {
		t.Fatalf("split[2]=%q, want family emoji", got[2])
	}
	if c := Count(text); c != 4 {
		t.Fatalf("count=%d, want %d", c, 4)
	}
}

func TestClassifiers(t *testing.T) {
	cases := []struct {
		cluster string
		want    bool
	}{
		{"a", true},
		{"Z", true},
		{"7", true},
		{"_", true},
		{"é", true},
		{"é", true},
		{"-", false},
		{" ", false},
		{"(", false},
		{"", false},
	}
	for _, tc := range cases {
		if got := IsWordChar(tc.cluster); got != tc.want {
			t.Fatalf("IsWordChar(%q): got %v, want %v", tc.cluster, got, tc.want)
		}
	}
}

func TestWidth_WideAndNarrow(t *testing.T) {
	if got := Width("a"); got != 1 {
		t.Fatalf("width(a)=%d, want 1", got)
	}
	if got := Width("世"); got != 2 {
		t.Fatalf("width(CJK)=%d, want 2", got)
	}
}
