package buffer

import "github.com/iw2rmb/wisereader/internal/grapheme"

// Motion is a cursor movement understood by the reader.
type Motion int

const (
	MotionNone Motion = iota
	MotionLeft
	MotionRight
	MotionUp
	MotionDown
	MotionWordForward
	MotionWordBackward
	MotionTop
	MotionBottom
)

var motionNames = [...]string{
	MotionNone:         "none",
	MotionLeft:         "left",
	MotionRight:        "right",
	MotionUp:           "up",
	MotionDown:         "down",
	MotionWordForward:  "wordForward",
	MotionWordBackward: "wordBackward",
	MotionTop:          "top",
	MotionBottom:       "bottom",
}

func (m Motion) String() string {
	if m < 0 || int(m) >= len(motionNames) {
		return "unknown"
	}
	return motionNames[m]
}

// Apply moves p by motion, count times, inside s and returns the clamped
// result. Motions that hit a document edge stop there; leftover repeats are
// dropped.
func Apply(s *Store, p Pos, m Motion, count int) Pos {
	if s.Len() == 0 {
		return Pos{}
	}
	if count < 1 {
		count = 1
	}
	p = s.Clamp(p)

	switch m {
	case MotionLeft:
		p = s.moveLeft(p, count)
	case MotionRight:
		p = s.moveRight(p, count)
	case MotionUp:
		p.Line -= count
	case MotionDown:
		p.Line += count
	case MotionWordForward:
		p = s.wordForward(p, count)
	case MotionWordBackward:
		p = s.wordBackward(p, count)
	case MotionTop:
		p.Line = 0
	case MotionBottom:
		p.Line = s.Len() - 1
	}
	return s.Clamp(p)
}

func (s *Store) moveLeft(p Pos, n int) Pos {
	next := p.Col - n
	if next < 0 && p.Line > 0 {
		prev := p.Line - 1
		return Pos{Line: prev, Col: MaxCol(s.VisualLen(prev))}
	}
	return Pos{Line: p.Line, Col: maxInt(next, 0)}
}

func (s *Store) moveRight(p Pos, n int) Pos {
	next := p.Col + n
	if next >= s.VisualLen(p.Line) && p.Line < s.Len()-1 {
		return Pos{Line: p.Line + 1, Col: 0}
	}
	return Pos{Line: p.Line, Col: minInt(next, MaxCol(s.VisualLen(p.Line)))}
}

// wordForward implements w: each jump leaves the current word, skips the
// separators after it and stops on the next word start. Running off the end
// of a line moves to the next line and skips its leading separators.
func (s *Store) wordForward(p Pos, jumps int) Pos {
	line, col := p.Line, p.Col
	last := s.Len() - 1

	for jumps > 0 {
		cl := s.Clusters(line)
		if col >= len(cl)-1 {
			if line >= last {
				break
			}
			line++
			col = 0
			cl = s.Clusters(line)
			for col < len(cl) && !grapheme.IsWordChar(cl[col]) {
				col++
			}
			jumps--
			continue
		}

		if grapheme.IsWordChar(cl[col]) {
			for col < len(cl) && grapheme.IsWordChar(cl[col]) {
				col++
			}
		}
		for col < len(cl) && !grapheme.IsWordChar(cl[col]) {
			col++
		}
		if col >= len(cl) {
			// The rest of the line held no word start; the line break
			// consumes this jump on the next pass.
			continue
		}
		jumps--
	}
	return Pos{Line: line, Col: col}
}

// wordBackward implements b: step back at least one column, skip
// separators backwards, then walk back to the start of the word.
func (s *Store) wordBackward(p Pos, jumps int) Pos {
	line, col := p.Line, p.Col

	for jumps > 0 {
		if col <= 0 {
			if line == 0 {
				break
			}
			line--
			col = s.VisualLen(line)
		}
		cl := s.Clusters(line)
		if col > 0 {
			col--
		}
		for col > 0 && !grapheme.IsWordChar(cl[col]) {
			col--
		}
		for col > 0 && grapheme.IsWordChar(cl[col-1]) {
			col--
		}
		jumps--
	}
	return Pos{Line: line, Col: col}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
