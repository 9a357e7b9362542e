package styled

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/wisereader/internal/grapheme"
)

// Line is one rendered terminal line.
//
// Raw may contain escape sequences; VisualLen is the number of grapheme
// clusters left after stripping them.
type Line struct {
	Raw       string
	VisualLen int
}

// NewLine measures raw and returns it as a Line.
func NewLine(raw string) Line {
	return Line{Raw: raw, VisualLen: visualLen(raw)}
}

// Lines splits rendered output on '\n' and measures every line.
func Lines(rendered string) []Line {
	parts := strings.Split(rendered, "\n")
	out := make([]Line, 0, len(parts))
	for _, p := range parts {
		out = append(out, NewLine(p))
	}
	return out
}

// Split is Lines for output whose styles span line breaks: the style open
// at the end of a line is closed there and re-applied at the start of the
// next one, so every line renders correctly on its own.
func Split(rendered string) []Line {
	parts := strings.Split(rendered, "\n")
	out := make([]Line, 0, len(parts))
	var pen penState
	for _, p := range parts {
		toks, err := Tokenize(p)
		if err != nil {
			out = append(out, NewLine(p))
			pen = penState{}
			continue
		}
		head := pen.prefix()
		for _, tok := range toks {
			if tok.Kind != TokenText {
				pen.apply(tok)
			}
		}
		out = append(out, NewLine(head+p+pen.suffix()))
	}
	return out
}

// Plain returns the line text with all escape sequences removed.
func (l Line) Plain() string { return Strip(l.Raw) }

// ColumnCells returns the terminal cell width of every visual column. Wide
// glyphs take two cells but one column.
func (l Line) ColumnCells() []int {
	cs := Clusters(l.Raw)
	out := make([]int, len(cs))
	for i, c := range cs {
		out[i] = grapheme.Width(c)
	}
	return out
}

// Strip removes escape sequences from raw.
//
// Malformed input is stripped by the lenient x/ansi parser instead.
func Strip(raw string) string {
	toks, err := Tokenize(raw)
	if err != nil {
		return ansi.Strip(raw)
	}
	var sb strings.Builder
	sb.Grow(len(raw))
	for _, tok := range toks {
		if tok.Kind == TokenText {
			sb.WriteString(tok.Text)
		}
	}
	return sb.String()
}

// Clusters returns the visible grapheme clusters of raw, one per visual
// column.
func Clusters(raw string) []string {
	toks, err := Tokenize(raw)
	if err != nil {
		return grapheme.Split(ansi.Strip(raw))
	}
	out := make([]string, 0, len(toks))
	for _, tok := range toks {
		if tok.Kind == TokenText {
			out = append(out, tok.Text)
		}
	}
	return out
}

func visualLen(raw string) int {
	toks, err := Tokenize(raw)
	if err != nil {
		return grapheme.Count(ansi.Strip(raw))
	}
	n := 0
	for _, tok := range toks {
		if tok.Kind == TokenText {
			n++
		}
	}
	return n
}
