package app

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/wisereader/internal/readwise"
	"github.com/iw2rmb/wisereader/reader"
)

type view int

const (
	viewToken view = iota
	viewList
	viewReader
	viewError
)

func (v view) String() string {
	switch v {
	case viewToken:
		return "token"
	case viewList:
		return "list"
	case viewReader:
		return "reader"
	case viewError:
		return "error"
	default:
		return "unknown"
	}
}

const tokenURL = "https://readwise.io/access_token"

// Model is the root Bubble Tea model.
type Model struct {
	opts   Options
	keys   KeyMap
	styles Styles

	view view
	// loading replaces the current view with a spinner.
	loading     bool
	loadingText string

	list    list.Model
	reader  reader.Model
	token   textinput.Model
	spinner spinner.Model
	help    help.Model

	docs []readwise.Document
	doc  readwise.Document
	menu *menu

	err    error
	notice string

	width, height int
}

func New(opts Options) Model {
	if opts.Location == "" {
		opts.Location = readwise.LocationNew
	}
	if opts.OpenURL == nil {
		opts.OpenURL = OpenURL
	}

	styles := DefaultStyles()
	keys := DefaultKeyMap()

	ti := textinput.New()
	ti.Placeholder = "access token"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.Width = 48

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = styles.Spinner

	m := Model{
		opts:    opts,
		keys:    keys,
		styles:  styles,
		list:    newList(styles, keys),
		token:   ti,
		spinner: sp,
		help:    help.New(),
		reader: reader.New(reader.Config{
			Renderer:  opts.Renderer,
			KeyMap:    reader.DefaultKeyMap(),
			Style:     reader.DefaultStyle(),
			Clipboard: opts.Clipboard,
		}),
	}
	if opts.Source == nil || opts.PromptOnly {
		m.view = viewToken
		m.token.Focus()
	} else {
		m.view = viewList
		m.loading = true
		m.loadingText = "Loading your Inbox..."
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.view == viewToken {
		return textinput.Blink
	}
	return tea.Batch(m.spinner.Tick, m.loadDocs())
}

// ActiveView names the view on screen.
func (m Model) ActiveView() string { return m.view.String() }

func (m Model) Loading() bool        { return m.loading }
func (m Model) Err() error           { return m.err }
func (m Model) Notice() string       { return m.notice }
func (m Model) Reader() reader.Model { return m.reader }

// Documents returns the listed documents.
func (m Model) Documents() []readwise.Document { return m.docs }

func (m Model) startLoading(text string, cmd tea.Cmd) (Model, tea.Cmd) {
	m.loading = true
	m.loadingText = text
	return m, tea.Batch(m.spinner.Tick, cmd)
}

func (m Model) loadDocs() tea.Cmd {
	src, opts := m.opts.Source, m.opts
	return func() tea.Msg {
		ctx, cancel := opts.context()
		defer cancel()
		docs, err := src.List(ctx, opts.Location)
		return docsLoadedMsg{docs: docs, err: err}
	}
}

func (m Model) fetchDoc(id string) tea.Cmd {
	src, opts := m.opts.Source, m.opts
	return func() tea.Msg {
		ctx, cancel := opts.context()
		defer cancel()
		doc, err := src.Get(ctx, id)
		return docFetchedMsg{doc: doc, err: err}
	}
}

func (m Model) markSeen(id string) tea.Cmd {
	src, opts := m.opts.Source, m.opts
	return func() tea.Msg {
		ctx, cancel := opts.context()
		defer cancel()
		return markedSeenMsg{id: id, err: src.Move(ctx, id, readwise.LocationFeed)}
	}
}

func (m Model) runAction(action, id string) tea.Cmd {
	src, opts := m.opts.Source, m.opts
	return func() tea.Msg {
		ctx, cancel := opts.context()
		defer cancel()
		var err error
		switch action {
		case actionLater:
			err = src.Move(ctx, id, readwise.LocationLater)
		case actionArchive:
			err = src.Move(ctx, id, readwise.LocationArchive)
		case actionDelete:
			err = src.Delete(ctx, id)
		default:
			err = fmt.Errorf("unknown action %q", action)
		}
		return actionDoneMsg{action: action, id: id, err: err}
	}
}

func (m Model) openURL(url string) tea.Cmd {
	open := m.opts.OpenURL
	return func() tea.Msg { return openedMsg{url: url, err: open(url)} }
}

func (m Model) login(token string) tea.Cmd {
	login := m.opts.Login
	return func() tea.Msg {
		if login == nil {
			return loggedInMsg{err: errors.New("token login is not configured")}
		}
		src, err := login(token)
		return loggedInMsg{src: src, err: err}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.resize(msg.Width, msg.Height)

	case spinner.TickMsg:
		if !m.loading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case loggedInMsg:
		m.loading = false
		if msg.err != nil {
			m.notice = "could not save token: " + msg.err.Error()
			return m, nil
		}
		if m.opts.PromptOnly {
			return m, tea.Quit
		}
		m.opts.Source = msg.src
		m.notice = ""
		m.view = viewList
		m.token.Blur()
		return m.startLoading("Loading your Inbox...", m.loadDocs())

	case docsLoadedMsg:
		m.loading = false
		if msg.err != nil {
			return m.fail(msg.err)
		}
		m.docs = msg.docs
		m.err = nil
		m.view = viewList
		cmd := m.list.SetItems(toItems(msg.docs))
		return m, cmd

	case docFetchedMsg:
		m.loading = false
		if msg.err != nil {
			log.Printf("app: fetch failed: %v", msg.err)
			return m.fail(errors.New("failed to load document content"))
		}
		return m.openReader(msg.doc)

	case markedSeenMsg:
		if msg.err != nil {
			log.Printf("app: mark seen failed id=%s: %v", msg.id, msg.err)
		}
		return m, nil

	case actionDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.view = viewList
			return m.fail(fmt.Errorf("action failed: %w", msg.err))
		}
		log.Printf("app: %s id=%s", msg.action, msg.id)
		m.view = viewList
		m.doc = readwise.Document{}
		return m.startLoading("Loading your Inbox...", m.loadDocs())

	case openedMsg:
		if msg.err != nil {
			log.Printf("app: open failed url=%s: %v", msg.url, msg.err)
			m.notice = "could not open " + msg.url
		}
		return m, nil

	case reader.OpenLinksMsg:
		if len(msg.Links) == 0 {
			if msg.SourceURL == "" {
				m.notice = "no link here"
				return m, nil
			}
			return m, m.openURL(msg.SourceURL)
		}
		urls := make([]string, len(msg.Links))
		for i, l := range msg.Links {
			urls[i] = l.URL
		}
		m.menu = newOpenMenu(msg.SourceURL, urls)
		return m, nil

	case reader.RebuiltMsg, reader.YankedMsg:
		var cmd tea.Cmd
		m.reader, cmd = m.reader.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		return m.updateKey(msg)
	}

	if m.view == viewToken {
		var cmd tea.Cmd
		m.token, cmd = m.token.Update(msg)
		return m, cmd
	}
	if m.view == viewList {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	return m, nil
}

// fail shows err. A rejected token sends the user back to the prompt.
func (m Model) fail(err error) (Model, tea.Cmd) {
	if readwise.IsUnauthorized(err) || errors.Is(err, readwise.ErrNoToken) {
		m.view = viewToken
		m.notice = "token rejected, enter a new one"
		return m, m.token.Focus()
	}
	m.err = err
	m.view = viewError
	return m, nil
}

func (m Model) openReader(doc readwise.Document) (Model, tea.Cmd) {
	m.doc = doc
	m.view = viewReader
	m.notice = ""
	content := doc.HTMLContent
	if strings.TrimSpace(content) == "" {
		content = doc.Summary
	}

	// SetDocument's rebuild supersedes any reflow from SetSize.
	w, h := readerSize(m.width, m.height)
	m.reader, _ = m.reader.SetSize(w, h)
	var docCmd tea.Cmd
	m.reader, docCmd = m.reader.SetDocument(reader.Document{
		ID:        doc.ID,
		Title:     doc.Title,
		Author:    doc.Author,
		SourceURL: doc.SourceURL,
		Content:   content,
	})
	return m, tea.Batch(docCmd, m.markSeen(doc.ID))
}

// readerSize is the reader's outer size for a terminal of cols x rows: a
// body of max(5, rows-12) lines and max(10, cols-4) columns plus its
// status line.
func readerSize(cols, rows int) (int, int) {
	return max(10, cols-4), max(5, rows-12) + 1
}

func (m Model) resize(width, height int) (Model, tea.Cmd) {
	m.width, m.height = width, height
	m.help.Width = width
	fw, fh := m.styles.App.GetFrameSize()
	m.list.SetSize(max(0, width-fw), max(3, height-fh))

	var cmd tea.Cmd
	w, h := readerSize(width, height)
	m.reader, cmd = m.reader.SetSize(w, h)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}
	if m.menu != nil {
		return m.updateMenu(msg)
	}
	if m.loading {
		if key.Matches(msg, m.keys.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}

	switch m.view {
	case viewToken:
		return m.updateToken(msg)
	case viewList:
		return m.updateList(msg)
	case viewReader:
		return m.updateReader(msg)
	case viewError:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Refresh), key.Matches(msg, m.keys.Back):
			m.err = nil
			m.view = viewList
			return m.startLoading("Loading your Inbox...", m.loadDocs())
		}
	}
	return m, nil
}

func (m Model) updateToken(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		token := strings.TrimSpace(m.token.Value())
		if token == "" {
			m.notice = "token is empty"
			return m, nil
		}
		m.notice = ""
		return m.startLoading("Saving token...", m.login(token))
	}
	var cmd tea.Cmd
	m.token, cmd = m.token.Update(msg)
	return m, cmd
}

func (m Model) updateList(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.list.SettingFilter() {
		var cmd tea.Cmd
		m.list, cmd = m.list.Update(msg)
		return m, cmd
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Refresh):
		return m.startLoading("Loading your Inbox...", m.loadDocs())
	case key.Matches(msg, m.keys.Open):
		it, ok := m.list.SelectedItem().(item)
		if !ok {
			return m, nil
		}
		return m.startLoading("Fetching content...", m.fetchDoc(it.doc.ID))
	}
	var cmd tea.Cmd
	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) updateReader(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.shellKey(msg) {
		// A count typed before a shell key must not carry over.
		m.reader = m.reader.ClearCount()
	}
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Back):
		m.view = viewList
		m.doc = readwise.Document{}
		m.notice = ""
		return m, nil
	case key.Matches(msg, m.keys.Archive):
		return m.startLoading("Archiving...", m.runAction(actionArchive, m.doc.ID))
	case key.Matches(msg, m.keys.Menu):
		m.menu = newActionMenu()
		return m, nil
	}
	m.notice = ""
	var cmd tea.Cmd
	m.reader, cmd = m.reader.Update(msg)
	return m, cmd
}

// shellKey reports whether msg is handled by the shell while the reader
// is showing.
func (m Model) shellKey(msg tea.KeyMsg) bool {
	return key.Matches(msg, m.keys.Quit, m.keys.Back, m.keys.Archive, m.keys.Menu)
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.view == viewReader {
		m.reader = m.reader.ClearCount()
	}
	done, chosen := m.menu.handleKey(m.keys, msg)
	if !done {
		return m, nil
	}
	kind := m.menu.kind
	m.menu = nil
	if chosen == nil {
		return m, nil
	}
	if kind == openMenu {
		return m, m.openURL(chosen.value)
	}
	return m.startLoading("Updating...", m.runAction(chosen.value, m.doc.ID))
}

func (m Model) View() string {
	var body string
	switch {
	case m.loading:
		body = m.spinner.View() + " " + m.loadingText
	case m.view == viewToken:
		body = m.tokenView()
	case m.view == viewError:
		body = m.errorView()
	case m.view == viewReader:
		body = m.readerView()
	default:
		body = m.listView()
	}
	base := m.styles.App.Render(body)
	if m.menu != nil {
		return overlayMenu(m.menu.render(m.styles, m.keys, m.width), base)
	}
	return base
}

func (m Model) tokenView() string {
	rows := []string{
		m.styles.MenuTitle.Render("WiseReader Configuration"),
		"",
		"Enter your Readwise Access Token: " + m.token.View(),
		"",
		m.styles.Subtle.Render("Find your token at: " + tokenURL),
		m.styles.Subtle.Render("Press Enter to save"),
	}
	if m.notice != "" {
		rows = append(rows, "", m.styles.Error.Render(m.notice))
	}
	return strings.Join(rows, "\n")
}

func (m Model) errorView() string {
	msg := "unknown error"
	if m.err != nil {
		msg = m.err.Error()
	}
	return strings.Join([]string{
		m.styles.Error.Render("Error: " + msg),
		"Check your Readwise token (wisereader config).",
		m.styles.Subtle.Render("Press 'r' to retry, 'q' to quit"),
	}, "\n")
}

func (m Model) listView() string {
	if len(m.docs) == 0 {
		return strings.Join([]string{
			m.styles.Header.Render("WiseReader Inbox"),
			"",
			m.styles.Subtle.Italic(true).Render("Your inbox is empty!"),
			"",
			m.styles.Subtle.Render("[r] Refresh | [q] Quit"),
		}, "\n")
	}
	return m.list.View()
}

func (m Model) readerView() string {
	title := m.doc.Title
	if title == "" {
		title = "Untitled"
	}
	header := m.styles.Header.Render(title)
	if m.doc.Author != "" {
		header += m.styles.Subtle.Render(" by " + m.doc.Author)
	}
	rows := []string{lipgloss.NewStyle().MaxWidth(max(10, m.width-2)).Render(header), "", m.reader.View(), ""}
	if m.notice != "" {
		rows = append(rows, m.styles.Error.Render(m.notice))
	}
	km := m.reader.KeyMap()
	rows = append(rows, m.help.View(readerHelp{app: m.keys, reader: []key.Binding{km.OpenLink, km.Yank}}))
	return strings.Join(rows, "\n")
}
