package reader

import (
	"github.com/charmbracelet/bubbles/key"

	"github.com/iw2rmb/wisereader/buffer"
)

// KeyMap defines the reader key bindings.
//
// Motion bindings are matched against key names (tea.KeyMsg.String()) so
// Session can be driven without Bubble Tea.
type KeyMap struct {
	Left, Right, Up, Down key.Binding
	WordForward, WordBack key.Binding
	Top, Bottom           key.Binding

	OpenLink key.Binding
	Yank     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Left:  key.NewBinding(key.WithKeys("h", "left"), key.WithHelp("h/←", "left")),
		Right: key.NewBinding(key.WithKeys("l", "right"), key.WithHelp("l/→", "right")),
		Up:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
		Down:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),

		WordForward: key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "next word")),
		WordBack:    key.NewBinding(key.WithKeys("b"), key.WithHelp("b", "previous word")),

		Top:    key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "top")),
		Bottom: key.NewBinding(key.WithKeys("G"), key.WithHelp("G", "bottom")),

		OpenLink: key.NewBinding(key.WithKeys("O"), key.WithHelp("O", "open link")),
		Yank:     key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy link")),
	}
}

// Motion returns the motion bound to the named key.
func (km KeyMap) Motion(name string) (buffer.Motion, bool) {
	for _, b := range []struct {
		binding key.Binding
		motion  buffer.Motion
	}{
		{km.Left, buffer.MotionLeft},
		{km.Right, buffer.MotionRight},
		{km.Up, buffer.MotionUp},
		{km.Down, buffer.MotionDown},
		{km.WordForward, buffer.MotionWordForward},
		{km.WordBack, buffer.MotionWordBackward},
		{km.Top, buffer.MotionTop},
		{km.Bottom, buffer.MotionBottom},
	} {
		if !b.binding.Enabled() {
			continue
		}
		for _, k := range b.binding.Keys() {
			if k == name {
				return b.motion, true
			}
		}
	}
	return buffer.MotionNone, false
}

// ShortHelp implements help.KeyMap.
func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.WordForward, km.WordBack, km.Top, km.Bottom, km.OpenLink, km.Yank}
}

// FullHelp implements help.KeyMap.
func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Left, km.Right, km.Up, km.Down},
		{km.WordForward, km.WordBack, km.Top, km.Bottom},
		{km.OpenLink, km.Yank},
	}
}

func (km KeyMap) isZero() bool {
	return len(km.Down.Keys()) == 0 && len(km.Up.Keys()) == 0 && len(km.WordForward.Keys()) == 0
}
