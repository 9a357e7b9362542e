package reader

import "github.com/charmbracelet/lipgloss"

// Style controls the reader chrome. Document text keeps the styling the
// renderer produced.
type Style struct {
	Title   lipgloss.Style
	Body    lipgloss.Style
	Status  lipgloss.Style
	Message lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Title:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		Body:    lipgloss.NewStyle(),
		Status:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
		Message: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
