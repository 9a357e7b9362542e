// Package grapheme holds the grapheme cluster helpers shared by the line
// and cursor code.
package grapheme

import (
	"unicode"

	"github.com/mattn/go-runewidth"
	"github.com/rivo/uniseg"
)

// Split returns grapheme clusters for text in visual order.
func Split(text string) []string {
	if text == "" {
		return nil
	}
	g := uniseg.NewGraphemes(text)
	out := make([]string, 0, len(text))
	for g.Next() {
		out = append(out, g.Str())
	}
	return out
}

// Count returns the number of grapheme clusters in text.
func Count(text string) int {
	if text == "" {
		return 0
	}
	g := uniseg.NewGraphemes(text)
	n := 0
	for g.Next() {
		n++
	}
	return n
}

// Width returns the terminal cell width of a single cluster.
func Width(cluster string) int {
	w := runewidth.StringWidth(cluster)
	if w <= 0 {
		w = uniseg.StringWidth(cluster)
	}
	if w < 0 {
		return 0
	}
	return w
}

// IsWordChar reports whether cluster starts with a letter, a digit or '_'.
// Combining marks ride along with their base rune.
func IsWordChar(cluster string) bool {
	for _, r := range cluster {
		return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
	}
	return false
}
