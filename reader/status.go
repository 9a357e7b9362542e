package reader

import (
	"fmt"
	"math"
)

// Status summarizes the cursor position for the status line. Line and Col
// are one-based.
type Status struct {
	Line    int
	Total   int
	Percent int
	Col     int
}

func (s Status) String() string {
	return fmt.Sprintf("Ln %d/%d (%d%%) Col %d", s.Line, s.Total, s.Percent, s.Col)
}

func newStatus(line, col, total int) Status {
	st := Status{Line: line + 1, Total: total, Col: col + 1}
	if total > 0 {
		st.Percent = int(math.Round(float64(line+1) / float64(total) * 100))
		if st.Percent > 100 {
			st.Percent = 100
		}
	}
	return st
}
