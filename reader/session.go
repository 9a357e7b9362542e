package reader

import (
	"github.com/iw2rmb/wisereader/buffer"
	"github.com/iw2rmb/wisereader/styled"
)

// Session is the navigation state of one reader: the current line store,
// the cursor, the viewport and the pending repeat count.
//
// Session is a value. Every transition returns the next state and leaves
// the receiver untouched.
type Session struct {
	keys   KeyMap
	store  *buffer.Store
	cursor buffer.Pos
	view   Viewport
	repeat buffer.RepeatBuffer

	// gen is the latest requested rebuild generation.
	gen uint64
}

// KeyResult reports what ApplyKey did with a key.
type KeyResult struct {
	// Consumed is false for keys the session does not handle; the caller
	// may act on them.
	Consumed bool
	// Motion is the motion that was applied, MotionNone for digits.
	Motion buffer.Motion
	Count  int
	Moved  bool
}

func NewSession(keys KeyMap) Session {
	if keys.isZero() {
		keys = DefaultKeyMap()
	}
	return Session{keys: keys}
}

// ApplyKey advances the session by one key.
//
// Digits accumulate into the repeat count. A motion key consumes the count,
// moves the cursor and lets the viewport follow. Any other key discards a
// pending count and is reported as not consumed.
func (s Session) ApplyKey(name string) (Session, KeyResult) {
	if s.repeat.Push(name) {
		return s, KeyResult{Consumed: true}
	}

	m, ok := s.keys.Motion(name)
	if !ok {
		s.repeat.Reset()
		return s, KeyResult{}
	}

	count := s.repeat.Count()
	s.repeat.Reset()

	prev := s.cursor
	s.cursor = buffer.Apply(s.store, s.cursor, m, count)
	s.view = s.follow()
	return s, KeyResult{Consumed: true, Motion: m, Count: count, Moved: buffer.ComparePos(s.cursor, prev) != 0}
}

// follow returns the viewport moved to keep the cursor visible, measuring
// the horizontal window in terminal cells.
func (s Session) follow() Viewport {
	v := Follow(s.cursor, s.view, s.store.Len())
	return FitCells(s.store.Line(s.cursor.Line).ColumnCells(), s.cursor.Col, v)
}

// NextGeneration stamps a new rebuild request. Stores built for any earlier
// generation are refused by SetStore from now on.
func (s Session) NextGeneration() (Session, uint64) {
	s.gen++
	return s, s.gen
}

// Generation returns the latest requested rebuild generation.
func (s Session) Generation() uint64 { return s.gen }

// SetStore installs a rebuilt store. It reports false, leaving the session
// unchanged, when the store answers an outdated request.
//
// Cursor and viewport are clamped to the new store immediately.
func (s Session) SetStore(store *buffer.Store) (Session, bool) {
	if store == nil || store.Generation() != s.gen {
		return s, false
	}
	s.store = store
	s.cursor = store.Clamp(s.cursor)
	s.view = s.follow()
	return s, true
}

// Reset moves the cursor and viewport back to the document start and drops
// any pending count. The current store is kept until a new one arrives.
func (s Session) Reset() Session {
	s.cursor = buffer.Pos{}
	s.view.Top, s.view.Left = 0, 0
	s.repeat.Reset()
	return s
}

// Resize sets the body size in columns and lines.
func (s Session) Resize(width, height int) Session {
	s.view.Width = width
	s.view.Height = height
	s.view = s.follow()
	return s
}

func (s Session) Store() *buffer.Store { return s.store }
func (s Session) Cursor() buffer.Pos   { return s.cursor }
func (s Session) Viewport() Viewport   { return s.view }

// PendingCount returns the digits typed so far.
func (s Session) PendingCount() string { return s.repeat.Pending() }

// ClearCount drops a pending repeat count. Hosts call it for keys they
// handle before the session sees them.
func (s Session) ClearCount() Session {
	s.repeat.Reset()
	return s
}

// SetCursor moves the cursor to p, clamped, and lets the viewport follow.
func (s Session) SetCursor(p buffer.Pos) Session {
	s.cursor = s.store.Clamp(p)
	s.view = s.follow()
	return s
}

// RenderVisible returns the raw text of the visible lines: the cursor cell
// highlighted, then cut to the vertical window, then cropped to the
// horizontal one. The horizontal window is Width terminal cells, so wide
// glyphs never push a line past it.
//
// A compositor failure leaves the affected line unstyled by the cursor and
// is returned as a warning next to the usable lines.
func (s Session) RenderVisible() ([]string, error) {
	n := s.store.Len()
	if n == 0 {
		return nil, nil
	}
	end := n
	if s.view.Height > 0 && s.view.Top+s.view.Height < n {
		end = s.view.Top + s.view.Height
	}

	width := s.view.Width
	if width <= 0 {
		width = -1
	}

	var warning error
	out := make([]string, 0, end-s.view.Top)
	for i := s.view.Top; i < end; i++ {
		l := s.store.Line(i)
		if i == s.cursor.Line {
			hl, err := styled.Highlight(l, s.cursor.Col)
			if err != nil && warning == nil {
				warning = err
			}
			l = hl
		}
		cropped, err := styled.CropCells(l, s.view.Left, width)
		if err != nil && warning == nil {
			warning = err
		}
		out = append(out, cropped.Raw)
	}
	return out, warning
}

// VisibleLines is RenderVisible without the warning.
func (s Session) VisibleLines() []string {
	lines, _ := s.RenderVisible()
	return lines
}

// LinksAtCursor returns the links under the cursor, in line order.
func (s Session) LinksAtCursor() []Link {
	if s.store.Len() == 0 {
		return nil
	}
	return FindLinks(s.store.Line(s.cursor.Line), s.cursor.Col)
}

// Status returns the cursor position summary.
func (s Session) Status() Status {
	return newStatus(s.cursor.Line, s.cursor.Col, s.store.Len())
}
