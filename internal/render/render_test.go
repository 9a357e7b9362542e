package render

import (
	"io"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/iw2rmb/wisereader/styled"
)

func stylesFor(p termenv.Profile) Styles {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(p)
	return NewStyles(r)
}

func plainLines(lines []styled.Line) []string {
	out := make([]string, len(lines))
	for i, l := range lines {
		out[i] = l.Plain()
	}
	return out
}

const article = `<html><head><title>T</title><script>var x = 1</script></head><body>
<nav>menu</nav>
<article>
<h1>Title</h1>
<p>Hello
   <a href="http://x.com/y">here</a> now.</p>
<ul><li>one</li><li>two <b>bold</b></li></ul>
<ol start="3"><li>three</li></ol>
<blockquote><p>quoted</p></blockquote>
<pre>a  b
c</pre>
<hr>
<p><img src="x.png" alt="cat"> and <a href="/rel">rel</a></p>
</article></body></html>`

func TestHTML_Blocks(t *testing.T) {
	h := HTML{Styles: stylesFor(termenv.Ascii)}
	lines, err := h.Render(article, 40)
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	want := []string{
		"Title",
		"",
		"Hello [here](http://x.com/y) now.",
		"",
		"• one",
		"• two bold",
		"",
		"3. three",
		"",
		"│ quoted",
		"",
		"  a  b",
		"  c",
		"",
		strings.Repeat("─", 40),
		"",
		"[image: cat] and rel",
	}
	got := plainLines(lines)
	if strings.Join(got, "\n") != strings.Join(want, "\n") {
		t.Fatalf("unexpected lines:\n got: %q\nwant: %q", got, want)
	}
}

func TestHTML_WordWrap(t *testing.T) {
	h := HTML{Styles: stylesFor(termenv.Ascii)}
	text := "The quick brown fox jumps over the lazy dog again and again"
	lines, err := h.Render("<p>"+text+"</p>", 10)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(lines) < 6 {
		t.Fatalf("lines: got %d, want at least 6", len(lines))
	}
	for i, l := range lines {
		if l.VisualLen > 10 {
			t.Fatalf("line %d too wide: %q", i, l.Plain())
		}
	}
	got := strings.Fields(strings.Join(plainLines(lines), " "))
	if strings.Join(got, " ") != text {
		t.Fatalf("words changed: got %q", strings.Join(got, " "))
	}
}

func TestHTML_HardWrapsLongLinks(t *testing.T) {
	h := HTML{Styles: stylesFor(termenv.Ascii)}
	lines, err := h.Render(`<p><a href="https://example.com/a/very/long/path">x</a></p>`, 12)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	for i, l := range lines {
		if l.VisualLen > 12 {
			t.Fatalf("line %d too wide: %q", i, l.Plain())
		}
	}
	if got := strings.Join(plainLines(lines), ""); got != "[x](https://example.com/a/very/long/path)" {
		t.Fatalf("joined: got %q", got)
	}
}

func TestHTML_LinksAreBlue(t *testing.T) {
	h := HTML{Styles: stylesFor(termenv.TrueColor)}
	lines, err := h.Render(`<p>go <a href="http://x.com/y">here</a></p>`, 80)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(lines) != 1 || !strings.Contains(lines[0].Raw, "\x1b[34m[here](http://x.com/y)") {
		t.Fatalf("link style: got %q", lines)
	}
}

func TestHTML_StyleCarriesAcrossWrappedLines(t *testing.T) {
	h := HTML{Styles: stylesFor(termenv.TrueColor)}
	lines, err := h.Render(`<p><a href="http://c.de/ffffffffff">bbbbbbbbbb</a></p>`, 12)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(lines) < 3 {
		t.Fatalf("lines: got %d, want at least 3", len(lines))
	}
	for i, l := range lines {
		if !strings.HasPrefix(l.Raw, "\x1b[34m") {
			t.Fatalf("line %d lost link style: %q", i, l.Raw)
		}
		if l.VisualLen > 12 {
			t.Fatalf("line %d too wide: %q", i, l.Plain())
		}
	}
}

func TestHTML_EmptyDocument(t *testing.T) {
	lines, err := HTML{Styles: stylesFor(termenv.Ascii)}.Render("", 10)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if len(lines) != 1 || lines[0].VisualLen != 0 {
		t.Fatalf("empty document: got %q", plainLines(lines))
	}
}

func TestMarkdown_Render(t *testing.T) {
	lines, err := Markdown{Style: "notty"}.Render("# Title\n\nSome words with a [link](http://x.y/z).", 60)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	joined := strings.Join(plainLines(lines), "\n")
	if !strings.Contains(joined, "Title") || !strings.Contains(joined, "http://x.y/z") {
		t.Fatalf("markdown output: %q", joined)
	}
	if strings.TrimSpace(lines[0].Plain()) == "" {
		t.Fatalf("leading blank line kept")
	}
	for i, l := range lines {
		if p := l.Plain(); strings.TrimRight(p, " ") != p {
			t.Fatalf("line %d has trailing blanks: %q", i, p)
		}
	}
}

func TestLooksLikeHTML(t *testing.T) {
	cases := map[string]bool{
		"<p>x</p>":                true,
		"  <!DOCTYPE html><html>": true,
		"<div class=a>x</div>":    true,
		"# heading":               false,
		"<not a tag":              false,
		"plain <b>text</b>":       false,
	}
	for in, want := range cases {
		if got := LooksLikeHTML(in); got != want {
			t.Fatalf("LooksLikeHTML(%q): got %v, want %v", in, got, want)
		}
	}
}

func TestAuto_PicksRenderer(t *testing.T) {
	a := Auto{HTML: HTML{Styles: stylesFor(termenv.Ascii)}, Markdown: Markdown{Style: "notty"}}
	lines, err := a.Render("<p>hi <b>there</b></p>", 20)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if got := plainLines(lines); len(got) != 1 || got[0] != "hi there" {
		t.Fatalf("html via auto: got %q", got)
	}
}

func TestWrap_ZeroWidthIsIdentity(t *testing.T) {
	if got := Wrap("a b c", 0); got != "a b c" {
		t.Fatalf("Wrap width 0: got %q", got)
	}
}
