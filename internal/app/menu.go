package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/muesli/reflow/truncate"
	overlay "github.com/rmhubbert/bubbletea-overlay"
)

type menuKind int

const (
	actionMenu menuKind = iota
	openMenu
)

// Action menu values.
const (
	actionLater   = "later"
	actionArchive = "archive"
	actionDelete  = "delete"
)

type menuItem struct {
	label string
	value string
}

// menu is a modal list drawn over the current view.
type menu struct {
	kind   menuKind
	title  string
	items  []menuItem
	cursor int
}

func newActionMenu() *menu {
	return &menu{
		kind:  actionMenu,
		title: "Actions",
		items: []menuItem{
			{label: "Move to Later", value: actionLater},
			{label: "Move to Archive", value: actionArchive},
			{label: "Delete", value: actionDelete},
		},
	}
}

// newOpenMenu lists the source URL first, then each link found at the
// cursor.
func newOpenMenu(source string, urls []string) *menu {
	m := &menu{kind: openMenu, title: "Open Link"}
	if source != "" {
		m.items = append(m.items, menuItem{label: "Source: " + source, value: source})
	}
	for _, u := range urls {
		m.items = append(m.items, menuItem{label: "Link: " + u, value: u})
	}
	return m
}

func (m *menu) move(delta int) {
	if len(m.items) == 0 {
		return
	}
	m.cursor = (m.cursor + delta + len(m.items)) % len(m.items)
}

func (m *menu) selected() (menuItem, bool) {
	if m.cursor < 0 || m.cursor >= len(m.items) {
		return menuItem{}, false
	}
	return m.items[m.cursor], true
}

// handleKey reports whether the menu is done and, when an item was chosen,
// which one.
func (m *menu) handleKey(keys KeyMap, msg tea.KeyMsg) (done bool, chosen *menuItem) {
	switch {
	case key.Matches(msg, keys.Cancel):
		return true, nil
	case key.Matches(msg, keys.MenuUp):
		m.move(-1)
	case key.Matches(msg, keys.MenuDown):
		m.move(1)
	case key.Matches(msg, keys.Select):
		it, ok := m.selected()
		if !ok {
			return true, nil
		}
		return true, &it
	}
	return false, nil
}

func (m *menu) render(st Styles, keys KeyMap, width int) string {
	inner := width - st.Menu.GetHorizontalFrameSize() - 2
	if inner < 10 {
		inner = 10
	}
	rows := []string{st.MenuTitle.Render(m.title), ""}
	for i, it := range m.items {
		label := truncate.StringWithTail(it.label, uint(inner), "...")
		if i == m.cursor {
			rows = append(rows, st.Selected.Render("> "+label))
		} else {
			rows = append(rows, st.Item.Render("  "+label))
		}
	}
	h := help.New()
	h.Width = inner
	rows = append(rows, "", h.View(menuHelp(keys)))
	return st.Menu.Render(strings.Join(rows, "\n"))
}

// overlayMenu centres the rendered menu over base.
func overlayMenu(fg, base string) string {
	return overlay.New(frame(fg), frame(base), overlay.Center, overlay.Center, 0, 0).View()
}

// frame is an already rendered view handed to the overlay as a model.
type frame string

func (f frame) Init() tea.Cmd                       { return nil }
func (f frame) Update(tea.Msg) (tea.Model, tea.Cmd) { return f, nil }
func (f frame) View() string                        { return string(f) }
