package app

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the shell bindings. Reader motions live in reader.KeyMap.
type KeyMap struct {
	Quit      key.Binding
	ForceQuit key.Binding

	Open    key.Binding
	Refresh key.Binding

	Back    key.Binding
	Archive key.Binding
	Menu    key.Binding

	MenuUp   key.Binding
	MenuDown key.Binding
	Select   key.Binding
	Cancel   key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit:      key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),

		Open:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),

		Back:    key.NewBinding(key.WithKeys("esc", "left"), key.WithHelp("esc/←", "back")),
		Archive: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "archive")),
		Menu:    key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "menu")),

		MenuUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		MenuDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Select:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Cancel:   key.NewBinding(key.WithKeys("q", "esc"), key.WithHelp("q/esc", "cancel")),
	}
}

// readerHelp is the help.KeyMap shown under the reader.
type readerHelp struct {
	app    KeyMap
	reader []key.Binding
}

func (h readerHelp) ShortHelp() []key.Binding {
	return append([]key.Binding{h.app.Back, h.app.Archive, h.app.Menu}, append(h.reader, h.app.Quit)...)
}

func (h readerHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }

// menuHelp is the help.KeyMap shown inside a menu.
type menuHelp KeyMap

func (h menuHelp) ShortHelp() []key.Binding {
	return []key.Binding{h.MenuUp, h.MenuDown, h.Select, h.Cancel}
}

func (h menuHelp) FullHelp() [][]key.Binding { return [][]key.Binding{h.ShortHelp()} }
