package reader

import (
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/iw2rmb/wisereader/buffer"
	"github.com/iw2rmb/wisereader/styled"
)

// sessionOf returns a session over text with the given body size.
func sessionOf(text string, width, height int) Session {
	s, gen := NewSession(DefaultKeyMap()).NextGeneration()
	s = s.Resize(width, height)
	s, _ = s.SetStore(buffer.NewStore(styled.Lines(text), gen))
	return s
}

func keys(s Session, names ...string) Session {
	for _, n := range names {
		s, _ = s.ApplyKey(n)
	}
	return s
}

func plain(lines []string) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = strings.TrimRight(ansi.Strip(l), " ")
	}
	return out
}

func numberedLines(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString("line ")
		sb.WriteString(strings.Repeat("x", i%7))
	}
	return sb.String()
}

type memClipboard struct {
	s   string
	err error
}

func (c *memClipboard) WriteText(s string) error {
	if c.err != nil {
		return c.err
	}
	c.s = s
	return nil
}

type failingRenderer struct{ err error }

func (r failingRenderer) Render(string, int) ([]styled.Line, error) { return nil, r.err }
