package reader

import (
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/wisereader/buffer"
)

// Document is the part of a fetched document the reader displays.
type Document struct {
	ID        string
	Title     string
	Author    string
	SourceURL string
	Content   string
}

// RebuiltMsg delivers the result of a rebuild request. Warning is set when
// the renderer failed and Store holds the plain text fallback.
type RebuiltMsg struct {
	Gen     uint64
	Store   *buffer.Store
	Warning error
}

// OpenLinksMsg asks the host to open one of Links, or SourceURL when there
// are none.
type OpenLinksMsg struct {
	Links     []Link
	SourceURL string
}

// YankedMsg reports the result of copying a link to the clipboard.
type YankedMsg struct {
	URL string
	Err error
}

// Model is a Bubble Tea component that displays one document.
type Model struct {
	cfg     Config
	doc     Document
	loaded  bool
	session Session

	width, height int

	// lines caches the visible lines for View.
	lines   []string
	message string

	// warned is the last generation a render warning was logged for.
	warned uint64
}

func New(cfg Config) Model {
	if cfg.KeyMap.isZero() {
		cfg.KeyMap = DefaultKeyMap()
	}
	return Model{
		cfg:     cfg,
		session: NewSession(cfg.KeyMap),
	}
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Document() Document { return m.doc }
func (m Model) Session() Session   { return m.session }
func (m Model) KeyMap() KeyMap     { return m.cfg.KeyMap }

// SetDocument shows doc from its first line and returns the command that
// renders it.
func (m Model) SetDocument(doc Document) (Model, tea.Cmd) {
	m.doc = doc
	m.loaded = true
	m.message = ""
	m.session = m.session.Reset()
	return m.requestRebuild()
}

// SetSize sets the outer size of the component. A width change reflows the
// document.
func (m Model) SetSize(width, height int) (Model, tea.Cmd) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	reflow := width != m.width
	m.width, m.height = width, height

	m.session = m.session.Resize(width, m.bodyHeight())
	m.refresh()
	if reflow && m.loaded {
		return m.requestRebuild()
	}
	return m, nil
}

func (m Model) bodyHeight() int {
	h := m.height
	if !m.cfg.HideStatus {
		h--
	}
	if m.cfg.ShowTitle {
		h -= 2
	}
	if h < 1 {
		h = 1
	}
	return h
}

func (m Model) requestRebuild() (Model, tea.Cmd) {
	var gen uint64
	m.session, gen = m.session.NextGeneration()
	r, content, width := m.cfg.Renderer, m.doc.Content, m.width
	return m, func() tea.Msg {
		store, err := buffer.Rebuild(r, content, width, gen)
		return RebuiltMsg{Gen: gen, Store: store, Warning: err}
	}
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.SetSize(msg.Width, msg.Height)

	case RebuiltMsg:
		next, ok := m.session.SetStore(msg.Store)
		if !ok {
			return m, nil
		}
		m.session = next
		if msg.Warning != nil {
			m.warn(msg.Warning)
		}
		m.refresh()
		return m, nil

	case YankedMsg:
		if msg.Err != nil {
			m.message = "copy failed: " + msg.Err.Error()
		} else {
			m.message = "copied " + msg.URL
		}
		return m, nil

	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	next, res := m.session.ApplyKey(msg.String())
	m.session = next
	if res.Consumed {
		if res.Motion != buffer.MotionNone {
			m.message = ""
		}
		m.refresh()
		return m, nil
	}

	switch {
	case key.Matches(msg, m.cfg.KeyMap.OpenLink):
		links := m.session.LinksAtCursor()
		source := m.doc.SourceURL
		return m, func() tea.Msg { return OpenLinksMsg{Links: links, SourceURL: source} }

	case key.Matches(msg, m.cfg.KeyMap.Yank):
		url := m.doc.SourceURL
		if links := m.session.LinksAtCursor(); len(links) > 0 {
			url = links[0].URL
		}
		if url == "" {
			m.message = "nothing to copy"
			return m, nil
		}
		cb := m.cfg.Clipboard
		if cb == nil {
			m.message = "clipboard disabled"
			return m, nil
		}
		return m, func() tea.Msg { return YankedMsg{URL: url, Err: cb.WriteText(url)} }
	}
	return m, nil
}

// refresh recomputes the visible lines after a state change.
func (m *Model) refresh() {
	lines, err := m.session.RenderVisible()
	if err != nil {
		m.warn(err)
	}
	m.lines = lines
}

// warn logs a render fault once per rebuild generation.
func (m *Model) warn(err error) {
	gen := m.session.Generation()
	if m.warned == gen {
		return
	}
	m.warned = gen
	log.Printf("reader: render fallback doc=%s gen=%d: %v", m.doc.ID, gen, err)
}

// Status returns the cursor summary shown on the status line.
func (m Model) Status() Status { return m.session.Status() }

// ClearCount drops a pending repeat count.
func (m Model) ClearCount() Model {
	m.session = m.session.ClearCount()
	return m
}

func (m Model) View() string {
	if m.height <= 0 {
		return ""
	}

	var sections []string
	if m.cfg.ShowTitle {
		title := m.doc.Title
		if m.doc.Author != "" {
			title += " by " + m.doc.Author
		}
		sections = append(sections, m.cfg.Style.Title.MaxWidth(m.width).Render(title), "")
	}

	h := m.bodyHeight()
	body := make([]string, h)
	copy(body, m.lines)
	sections = append(sections, m.cfg.Style.Body.MaxWidth(m.width).Render(strings.Join(body, "\n")))

	if !m.cfg.HideStatus {
		sections = append(sections, m.statusLine())
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) statusLine() string {
	var line string
	if m.loaded {
		line = m.cfg.Style.Status.Render(" " + m.session.Status().String() + " ")
	}
	if p := m.session.PendingCount(); p != "" {
		line += m.cfg.Style.Message.Render(" " + p)
	}
	if m.message != "" {
		line += m.cfg.Style.Message.Render(" " + m.message)
	}
	return lipgloss.NewStyle().MaxWidth(m.width).Render(line)
}
