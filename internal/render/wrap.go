package render

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/wisereader/styled"
)

// Wrap word-wraps s at width, then hard-wraps words that still do not fit.
// A width of zero or less leaves s unchanged.
func Wrap(s string, width int) string {
	if width <= 0 {
		return s
	}
	return ansi.Hardwrap(ansi.Wordwrap(s, width, ""), width, true)
}

// trimRight drops trailing blank columns, keeping the line's styling intact.
func trimRight(l styled.Line) styled.Line {
	plain := []rune(l.Plain())
	n := 0
	for i := len(plain) - 1; i >= 0 && plain[i] == ' '; i-- {
		n++
	}
	if n == 0 {
		return l
	}
	out, err := styled.Slice(l, 0, l.VisualLen-n)
	if err != nil {
		return l
	}
	return out
}

// trimBlankEdges removes blank lines at the start and end of lines.
func trimBlankEdges(lines []styled.Line) []styled.Line {
	blank := func(l styled.Line) bool { return strings.TrimSpace(l.Plain()) == "" }
	for len(lines) > 0 && blank(lines[0]) {
		lines = lines[1:]
	}
	for len(lines) > 0 && blank(lines[len(lines)-1]) {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return []styled.Line{{}}
	}
	return lines
}
