package styled

import "strings"

// Cursor attribute toggles. Reverse-off is used instead of a full reset so
// the surrounding style survives the cursor cell.
const (
	CursorOn  = "\x1b[7m"
	CursorOff = "\x1b[27m"
)

// Highlight renders the cluster at col inverted. When col is at or past the
// end of the line a single inverted space is appended as the end-of-line
// cursor marker.
//
// On malformed input the original line is returned with ErrMalformed.
func Highlight(l Line, col int) (Line, error) {
	toks, err := Tokenize(l.Raw)
	if err != nil {
		return l, err
	}
	if col < 0 {
		col = 0
	}

	n := 0
	for _, tok := range toks {
		if tok.Kind == TokenText {
			n++
		}
	}
	if col >= n {
		return Line{Raw: l.Raw + CursorOn + " " + CursorOff, VisualLen: n + 1}, nil
	}

	var (
		pen penState
		sb  strings.Builder
		i   int
	)
	sb.Grow(len(l.Raw) + len(CursorOn) + len(CursorOff))
	for _, tok := range toks {
		if tok.Kind != TokenText {
			pen.apply(tok)
			sb.WriteString(tok.Text)
			continue
		}
		if i == col {
			sb.WriteString(CursorOn)
			sb.WriteString(tok.Text)
			sb.WriteString(CursorOff)
			if len(pen.sgr) > 0 {
				// An inherited reverse attribute was just turned off.
				sb.WriteString(pen.prefixSGR())
			}
		} else {
			sb.WriteString(tok.Text)
		}
		i++
	}
	return Line{Raw: sb.String(), VisualLen: n}, nil
}

func (p penState) prefixSGR() string {
	return strings.Join(p.sgr, "")
}
