package buffer

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/wisereader/styled"
)

// Renderer turns document content into styled lines wrapped at width.
type Renderer interface {
	Render(content string, width int) ([]styled.Line, error)
}

// Store is the ordered set of rendered lines for one document at one width.
// It is rebuilt as a whole, never patched.
type Store struct {
	lines    []styled.Line
	clusters [][]string
	gen      uint64
}

// NewStore wraps already rendered lines. gen tags the rebuild request the
// lines answer.
func NewStore(lines []styled.Line, gen uint64) *Store {
	s := &Store{
		lines:    lines,
		clusters: make([][]string, len(lines)),
		gen:      gen,
	}
	for i, l := range lines {
		s.clusters[i] = styled.Clusters(l.Raw)
	}
	return s
}

// Rebuild renders content at width into a new Store.
//
// A renderer failure is not fatal: the returned store holds the content as
// plain wrapped text and the renderer error is returned as a warning.
func Rebuild(r Renderer, content string, width int, gen uint64) (*Store, error) {
	if r == nil {
		return NewStore(PlainLines(content, width), gen), nil
	}
	lines, err := r.Render(content, width)
	if err != nil {
		return NewStore(PlainLines(content, width), gen), err
	}
	return NewStore(lines, gen), nil
}

// PlainLines is the unstyled fallback rendering: content split on newlines
// and hard-wrapped at width.
func PlainLines(content string, width int) []styled.Line {
	text := ansi.Strip(strings.ReplaceAll(content, "\r\n", "\n"))
	if width > 0 {
		text = ansi.Hardwrap(text, width, true)
	}
	return styled.Lines(text)
}

func (s *Store) Len() int {
	if s == nil {
		return 0
	}
	return len(s.lines)
}

func (s *Store) Generation() uint64 {
	if s == nil {
		return 0
	}
	return s.gen
}

// Lines returns the stored lines. The slice must not be modified.
func (s *Store) Lines() []styled.Line {
	if s == nil {
		return nil
	}
	return s.lines
}

func (s *Store) Line(i int) styled.Line {
	if s == nil || i < 0 || i >= len(s.lines) {
		return styled.Line{}
	}
	return s.lines[i]
}

// Clusters returns the visible clusters of line i, one per column.
func (s *Store) Clusters(i int) []string {
	if s == nil || i < 0 || i >= len(s.clusters) {
		return nil
	}
	return s.clusters[i]
}

// Plain returns the style-stripped text of line i.
func (s *Store) Plain(i int) string {
	return strings.Join(s.Clusters(i), "")
}

func (s *Store) VisualLen(i int) int {
	return len(s.Clusters(i))
}
