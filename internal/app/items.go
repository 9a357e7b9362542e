package app

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/muesli/reflow/truncate"

	"github.com/iw2rmb/wisereader/internal/readwise"
)

const maxTitleWidth = 75

// item adapts a document to list.DefaultItem.
type item struct {
	doc readwise.Document
}

func (i item) Title() string { return displayTitle(i.doc.Title) }

func (i item) Description() string {
	var parts []string
	for _, s := range []string{i.doc.Author, i.doc.SiteName} {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}
	return strings.Join(parts, " · ")
}

func (i item) FilterValue() string { return i.doc.Title }

// displayTitle is the list label for a document title: "Untitled" when
// empty, cut to maxTitleWidth cells with a trailing "...".
func displayTitle(title string) string {
	title = strings.Join(strings.Fields(title), " ")
	if title == "" {
		return "Untitled"
	}
	return truncate.StringWithTail(title, maxTitleWidth, "...")
}

func toItems(docs []readwise.Document) []list.Item {
	items := make([]list.Item, len(docs))
	for i, d := range docs {
		items[i] = item{doc: d}
	}
	return items
}

func newList(styles Styles, keys KeyMap) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = false
	delegate.SetSpacing(0)

	l := list.New(nil, delegate, 0, 0)
	l.Title = "WiseReader Inbox"
	l.Styles.Title = styles.Header
	l.SetStatusBarItemName("document", "documents")
	l.DisableQuitKeybindings()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Open, keys.Refresh}
	}
	return l
}
