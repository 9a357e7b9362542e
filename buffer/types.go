package buffer

// Pos points into the rendered document by (line, col) in visual columns.
type Pos struct {
	Line int
	Col  int
}

func ComparePos(a, b Pos) int {
	if a.Line < b.Line {
		return -1
	}
	if a.Line > b.Line {
		return 1
	}
	if a.Col < b.Col {
		return -1
	}
	if a.Col > b.Col {
		return 1
	}
	return 0
}

func clampInt(v, min, max int) int {
	if max < min {
		return min
	}
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}

// MaxCol returns the last column the cursor may occupy on a line of the
// given visual length.
func MaxCol(visualLen int) int {
	if visualLen <= 1 {
		return 0
	}
	return visualLen - 1
}

// ClampPos clamps p into document bounds described by lineCount and lineLen.
//
// The returned Pos always satisfies:
// - 0 <= Line < lineCount (Line is 0 when lineCount is 0)
// - 0 <= Col <= max(0, lineLen(Line)-1)
func ClampPos(p Pos, lineCount int, lineLen func(line int) int) Pos {
	if lineCount <= 0 {
		return Pos{}
	}
	line := clampInt(p.Line, 0, lineCount-1)

	maxCol := 0
	if lineLen != nil {
		maxCol = MaxCol(lineLen(line))
	}
	return Pos{Line: line, Col: clampInt(p.Col, 0, maxCol)}
}

// Clamp clamps p into the bounds of s.
func (s *Store) Clamp(p Pos) Pos {
	return ClampPos(p, s.Len(), s.VisualLen)
}
