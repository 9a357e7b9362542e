package reader

import "github.com/iw2rmb/wisereader/buffer"

// Viewport is the visible window over the rendered lines.
//
// Top and Left are the first visible line and column. Height and Width are
// the size of the body in lines and columns.
type Viewport struct {
	Top    int
	Left   int
	Height int
	Width  int
}

// MaxTop returns the largest valid Top for a document of lineCount lines.
func MaxTop(lineCount, height int) int {
	if height < 0 {
		height = 0
	}
	if lineCount <= height {
		return 0
	}
	return lineCount - height
}

// Clamp enforces 0 <= Top <= MaxTop and Left >= 0.
func Clamp(v Viewport, lineCount int) Viewport {
	if v.Height < 0 {
		v.Height = 0
	}
	if v.Width < 0 {
		v.Width = 0
	}
	v.Top = clampInt(v.Top, 0, MaxTop(lineCount, v.Height))
	if v.Left < 0 {
		v.Left = 0
	}
	return v
}

// Follow scrolls v so the cursor stays visible.
//
// Vertically the cursor line is held on the middle row: when it sits below
// or above Top+Height/2, Top becomes the cursor line minus Height/2,
// clamped to the document. Near the document edges the clamp lets the
// cursor leave the middle row. Horizontally the viewport moves the minimum
// needed.
func Follow(cursor buffer.Pos, v Viewport, lineCount int) Viewport {
	v = Clamp(v, lineCount)

	if v.Height > 0 && lineCount > 0 {
		half := v.Height / 2
		if mid := v.Top + half; cursor.Line != mid {
			v.Top = clampInt(cursor.Line-half, 0, MaxTop(lineCount, v.Height))
		}
	}

	if v.Width > 0 {
		switch {
		case cursor.Col >= v.Left+v.Width:
			v.Left = cursor.Col - v.Width + 1
		case cursor.Col < v.Left:
			v.Left = cursor.Col
		}
	}
	if v.Left < 0 {
		v.Left = 0
	}
	return v
}

// FitCells moves v.Left right until the columns from Left through the
// cursor column fit in v.Width terminal cells. widths holds the cell width
// of every column of the cursor line.
func FitCells(widths []int, cursorCol int, v Viewport) Viewport {
	if v.Width <= 0 || cursorCol < v.Left || cursorCol >= len(widths) {
		return v
	}
	cells := 0
	for i := v.Left; i <= cursorCol; i++ {
		cells += widths[i]
	}
	for cells > v.Width && v.Left < cursorCol {
		cells -= widths[v.Left]
		v.Left++
	}
	return v
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
