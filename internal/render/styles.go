package render

import "github.com/charmbracelet/lipgloss"

// Styles controls how HTML elements are drawn.
type Styles struct {
	Heading1 lipgloss.Style
	Heading2 lipgloss.Style
	Heading3 lipgloss.Style

	Strong    lipgloss.Style
	Emphasis  lipgloss.Style
	Link      lipgloss.Style
	Code      lipgloss.Style
	CodeBlock lipgloss.Style
	Quote     lipgloss.Style
	Image     lipgloss.Style
	Rule      lipgloss.Style
}

func DefaultStyles() Styles { return NewStyles(lipgloss.DefaultRenderer()) }

// NewStyles builds the default styles on r, so callers and tests can pin a
// color profile.
func NewStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Heading1: r.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color("13")),
		Heading2: r.NewStyle().Bold(true).Foreground(lipgloss.Color("13")),
		Heading3: r.NewStyle().Bold(true),

		Strong:    r.NewStyle().Bold(true),
		Emphasis:  r.NewStyle().Italic(true),
		Link:      r.NewStyle().Foreground(lipgloss.Color("4")),
		Code:      r.NewStyle().Foreground(lipgloss.Color("3")),
		CodeBlock: r.NewStyle().Foreground(lipgloss.Color("3")),
		Quote:     r.NewStyle().Foreground(lipgloss.Color("8")),
		Image:     r.NewStyle().Foreground(lipgloss.Color("5")),
		Rule:      r.NewStyle().Foreground(lipgloss.Color("8")),
	}
}

func (s Styles) heading(level int) lipgloss.Style {
	switch level {
	case 1:
		return s.Heading1
	case 2:
		return s.Heading2
	default:
		return s.Heading3
	}
}
