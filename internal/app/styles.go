package app

import "github.com/charmbracelet/lipgloss"

// Styles controls the shell chrome.
type Styles struct {
	App       lipgloss.Style
	Header    lipgloss.Style
	Subtle    lipgloss.Style
	Error     lipgloss.Style
	Menu      lipgloss.Style
	MenuTitle lipgloss.Style
	Selected  lipgloss.Style
	Item      lipgloss.Style
	Spinner   lipgloss.Style
}

func DefaultStyles() Styles {
	return Styles{
		App:       lipgloss.NewStyle().Padding(1, 1),
		Header:    lipgloss.NewStyle().Bold(true).Background(lipgloss.Color("6")).Foreground(lipgloss.Color("15")).Padding(0, 1),
		Subtle:    lipgloss.NewStyle().Foreground(lipgloss.Color("8")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
		Menu:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("6")).Padding(0, 1),
		MenuTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6")),
		Selected:  lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true),
		Item:      lipgloss.NewStyle(),
		Spinner:   lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	}
}
