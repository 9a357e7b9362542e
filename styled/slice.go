package styled

import "strings"

// Slice returns the visual columns [start, end) of l. A negative end slices
// to the end of the line.
//
// The style active at start is re-applied at the head of the fragment and
// closed at its tail. On malformed input the original line is returned
// together with ErrMalformed, which callers treat as a warning.
func Slice(l Line, start, end int) (Line, error) {
	toks, err := Tokenize(l.Raw)
	if err != nil {
		return l, err
	}
	if start < 0 {
		start = 0
	}
	if end >= 0 && end <= start {
		return Line{}, nil
	}

	var (
		pen     penState
		sb      strings.Builder
		col     int
		n       int
		started bool
	)
	for _, tok := range toks {
		if tok.Kind != TokenText {
			pen.apply(tok)
			if started {
				sb.WriteString(tok.Text)
			}
			continue
		}
		if end >= 0 && col >= end {
			break
		}
		if col >= start {
			if !started {
				sb.WriteString(pen.prefix())
				started = true
			}
			sb.WriteString(tok.Text)
			n++
		}
		col++
	}
	if !started {
		return Line{}, nil
	}
	sb.WriteString(pen.suffix())
	return Line{Raw: sb.String(), VisualLen: n}, nil
}

// CropCells is Slice for a window measured in terminal cells: it keeps the
// columns from left on that fit in cells. A negative cells keeps the rest
// of the line.
func CropCells(l Line, left, cells int) (Line, error) {
	if cells < 0 {
		return Slice(l, left, -1)
	}
	if left < 0 {
		left = 0
	}
	widths := l.ColumnCells()
	end, used := left, 0
	for end < len(widths) && used+widths[end] <= cells {
		used += widths[end]
		end++
	}
	return Slice(l, left, end)
}
