package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/iw2rmb/wisereader/styled"
)

// Markdown renders Markdown through glamour.
//
// Style is a glamour standard style name ("dark", "light", "notty",
// "dracula", "pink"), a path to a JSON style file, or "auto"/"" to pick one
// from the terminal background.
type Markdown struct {
	Style string
}

func (m Markdown) Render(content string, width int) ([]styled.Line, error) {
	opts := []glamour.TermRendererOption{glamour.WithWordWrap(width)}
	switch style := strings.ToLower(strings.TrimSpace(m.Style)); style {
	case "", "auto":
		opts = append(opts, glamour.WithAutoStyle())
	case "dark", "light", "notty", "dracula", "pink", "ascii", "tokyo-night":
		opts = append(opts, glamour.WithStylePath(style))
	default:
		if _, err := os.Stat(m.Style); err == nil {
			opts = append(opts, glamour.WithStylesFromJSONFile(m.Style))
		} else {
			opts = append(opts, glamour.WithAutoStyle())
		}
	}

	r, err := glamour.NewTermRenderer(opts...)
	if err != nil {
		return nil, fmt.Errorf("render: markdown renderer: %w", err)
	}
	out, err := r.Render(content)
	if err != nil {
		return nil, fmt.Errorf("render: markdown: %w", err)
	}

	lines := styled.Split(strings.TrimRight(out, "\n"))
	for i, l := range lines {
		lines[i] = trimRight(l)
	}
	return trimBlankEdges(lines), nil
}
