package render

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"golang.org/x/net/html"

	"github.com/iw2rmb/wisereader/styled"
)

// HTML renders article HTML as styled text.
type HTML struct {
	Styles Styles
}

func NewHTML() HTML { return HTML{Styles: DefaultStyles()} }

// Render extracts the article body of content and lays it out at width.
// Links are drawn as [text](href) so they stay visible and can be opened
// from the reader.
func (h HTML) Render(content string, width int) ([]styled.Line, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(content))
	if err != nil {
		return nil, fmt.Errorf("render: parse html: %w", err)
	}

	root := contentRoot(doc)
	w := &writer{st: h.Styles}
	for _, n := range root.Nodes {
		w.blocks(n, &frame{width: width})
	}
	return trimBlankEdges(w.lines), nil
}

func contentRoot(doc *goquery.Document) *goquery.Selection {
	for _, sel := range []string{"article", "main", "body"} {
		if found := doc.Find(sel).First(); found.Length() > 0 {
			return found
		}
	}
	return doc.Selection
}

var skipTags = map[string]bool{
	"script": true, "style": true, "noscript": true, "head": true, "template": true,
	"svg": true, "iframe": true, "form": true, "button": true, "input": true,
	"select": true, "textarea": true, "canvas": true, "nav": true,
}

var blockTags = map[string]bool{
	"p": true, "h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"ul": true, "ol": true, "li": true, "blockquote": true, "pre": true, "hr": true,
	"table": true, "thead": true, "tbody": true, "tfoot": true, "tr": true,
	"div": true, "section": true, "article": true, "main": true, "header": true,
	"footer": true, "figure": true, "figcaption": true, "aside": true,
	"dl": true, "dt": true, "dd": true, "details": true, "summary": true, "address": true,
}

// frame is the layout context of a block: the prefixes for its first and
// following lines and the columns left for text.
type frame struct {
	first, rest string
	width       int
	// tight frames do not separate their blocks with blank lines.
	tight bool
}

func (f *frame) prefix() string {
	p := f.first
	f.first = f.rest
	return p
}

// nest returns the frame for a child block indented by first/rest. The
// parent's first-line prefix is used up by the child.
func (f *frame) nest(first, rest string, tight bool) *frame {
	c := &frame{
		first: f.first + first,
		rest:  f.rest + rest,
		width: f.width,
		tight: tight,
	}
	if c.width > 0 {
		c.width -= ansi.StringWidth(rest)
		if c.width < 1 {
			c.width = 1
		}
	}
	f.first = f.rest
	return c
}

type writer struct {
	st    Styles
	lines []styled.Line
	blank bool
}

func (w *writer) emit(f *frame, text string) {
	for _, l := range styled.Split(text) {
		w.lines = append(w.lines, styled.NewLine(f.prefix()+l.Raw))
	}
	w.blank = false
}

// sep starts a new block with one blank line unless f is tight.
func (w *writer) sep(f *frame) {
	if f.tight || w.blank || len(w.lines) == 0 {
		return
	}
	w.lines = append(w.lines, styled.NewLine(strings.TrimRight(f.rest, " ")))
	w.blank = true
}

func (w *writer) paragraph(f *frame, text string) {
	if strings.TrimSpace(ansi.Strip(text)) == "" {
		return
	}
	w.sep(f)
	w.emit(f, Wrap(text, f.width))
}

// blocks lays out the children of n. Runs of inline content between block
// elements become paragraphs.
func (w *writer) blocks(n *html.Node, f *frame) {
	in := newInline(w.st)
	flush := func() {
		w.paragraph(f, in.render())
		in = newInline(w.st)
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			if skipTags[c.Data] {
				continue
			}
			if blockTags[c.Data] {
				flush()
				w.block(c, f)
				continue
			}
		}
		in.node(c, lipgloss.NewStyle())
	}
	flush()
}

func (w *writer) block(n *html.Node, f *frame) {
	switch n.Data {
	case "h1", "h2", "h3", "h4", "h5", "h6":
		level, _ := strconv.Atoi(n.Data[1:])
		in := newInline(w.st)
		in.children(n, w.st.heading(level))
		w.paragraph(f, in.render())

	case "blockquote":
		w.sep(f)
		bar := w.st.Quote.Render("│") + " "
		w.blocks(n, f.nest(bar, bar, false))

	case "ul", "ol":
		w.list(n, f, n.Data == "ol")

	case "li":
		w.sep(f)
		w.item(n, f, "• ")

	case "pre":
		w.code(n, f)

	case "hr":
		width := f.width
		if width <= 0 || width > 40 {
			width = 40
		}
		w.sep(f)
		w.emit(f, w.st.Rule.Render(strings.Repeat("─", width)))

	case "tr":
		var cells []string
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.ElementNode && (c.Data == "td" || c.Data == "th") {
				in := newInline(w.st)
				style := lipgloss.NewStyle()
				if c.Data == "th" {
					style = w.st.Strong
				}
				in.children(c, style)
				cells = append(cells, in.render())
			}
		}
		if len(cells) > 0 {
			w.emit(f, Wrap(strings.Join(cells, " │ "), f.width))
		}

	case "table":
		w.sep(f)
		w.blocks(n, f.nest("", "", true))

	default:
		w.blocks(n, f)
	}
}

func (w *writer) list(n *html.Node, f *frame, ordered bool) {
	w.sep(f)
	num := 1
	if ordered {
		if start, err := strconv.Atoi(attr(n, "start")); err == nil {
			num = start
		}
	}
	lf := f.nest("", "", true)
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type != html.ElementNode || c.Data != "li" {
			continue
		}
		marker := "• "
		if ordered {
			marker = strconv.Itoa(num) + ". "
			num++
		}
		w.item(c, lf, marker)
	}
}

func (w *writer) item(n *html.Node, f *frame, marker string) {
	pad := strings.Repeat(" ", ansi.StringWidth(marker))
	w.blocks(n, f.nest(marker, pad, true))
}

func (w *writer) code(n *html.Node, f *frame) {
	text := strings.Trim(textOf(n), "\n")
	if text == "" {
		return
	}
	w.sep(f)
	cf := f.nest("  ", "  ", true)
	for _, line := range strings.Split(text, "\n") {
		line = strings.ReplaceAll(line, "\t", "    ")
		w.emit(cf, w.st.CodeBlock.Render(Wrap(line, cf.width)))
	}
}

// inline collects styled runs of text with HTML whitespace collapsing.
type inline struct {
	st    Styles
	runs  []run
	space bool
}

type run struct {
	text  string
	style lipgloss.Style
}

func newInline(st Styles) *inline { return &inline{st: st, space: true} }

func (in *inline) text(s string, style lipgloss.Style) {
	var sb strings.Builder
	for _, r := range s {
		if unicode.IsSpace(r) {
			if !in.space {
				sb.WriteByte(' ')
				in.space = true
			}
			continue
		}
		sb.WriteRune(r)
		in.space = false
	}
	if sb.Len() > 0 {
		in.runs = append(in.runs, run{text: sb.String(), style: style})
	}
}

func (in *inline) literal(s string, style lipgloss.Style) {
	in.runs = append(in.runs, run{text: s, style: style})
	in.space = false
}

func (in *inline) children(n *html.Node, style lipgloss.Style) {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		in.node(c, style)
	}
}

func (in *inline) node(n *html.Node, style lipgloss.Style) {
	switch n.Type {
	case html.TextNode:
		in.text(n.Data, style)
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.Data {
	case "a":
		href := strings.TrimSpace(attr(n, "href"))
		if !isWebURL(href) {
			in.children(n, style)
			return
		}
		label := collapse(textOf(n))
		if label == "" {
			label = href
		}
		label = strings.NewReplacer("[", "", "]", "").Replace(label)
		in.literal("["+label+"]("+href+")", in.st.Link.Inherit(style))
	case "strong", "b":
		in.children(n, in.st.Strong.Inherit(style))
	case "em", "i", "cite":
		in.children(n, in.st.Emphasis.Inherit(style))
	case "code", "kbd", "samp":
		in.text(textOf(n), in.st.Code.Inherit(style))
	case "br":
		in.runs = append(in.runs, run{text: "\n"})
		in.space = true
	case "img":
		alt := collapse(attr(n, "alt"))
		label := "[image]"
		if alt != "" {
			label = "[image: " + alt + "]"
		}
		in.literal(label, in.st.Image.Inherit(style))
	default:
		if skipTags[n.Data] {
			return
		}
		in.children(n, style)
	}
}

// render joins the runs with their styles, trimming the paragraph edges.
func (in *inline) render() string {
	runs := in.runs
	for len(runs) > 0 {
		runs[0].text = strings.TrimLeft(runs[0].text, " \n")
		if runs[0].text != "" {
			break
		}
		runs = runs[1:]
	}
	for len(runs) > 0 {
		last := &runs[len(runs)-1]
		last.text = strings.TrimRight(last.text, " \n")
		if last.text != "" {
			break
		}
		runs = runs[:len(runs)-1]
	}

	var sb strings.Builder
	for _, r := range runs {
		if r.text == "\n" {
			sb.WriteString("\n")
			continue
		}
		sb.WriteString(r.style.Render(r.text))
	}
	return sb.String()
}

func isWebURL(s string) bool {
	return strings.HasPrefix(s, "http://") || strings.HasPrefix(s, "https://")
}

func collapse(s string) string { return strings.Join(strings.Fields(s), " ") }

func textOf(n *html.Node) string {
	var sb strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return sb.String()
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}
