package reader

import (
	"regexp"
	"sort"
	"strings"

	"github.com/iw2rmb/wisereader/internal/grapheme"
	"github.com/iw2rmb/wisereader/styled"
)

// Link is a hyperlink found in one rendered line. SpanStart and SpanEnd are
// visual columns, half-open.
type Link struct {
	Label     string
	URL       string
	SpanStart int
	SpanEnd   int
}

var (
	markdownLinkRe = regexp.MustCompile(`\[([^\[\]]*)\]\((https?://[^\s)]+)\)`)
	bareURLRe      = regexp.MustCompile(`https?://[^\s)\]>"']+`)
)

// Sentence punctuation that is almost never part of a bare URL.
const urlTrailingPunct = ".,;:!?"

// ScanLinks returns every link in the plain text of one line, left to right.
// Markdown links win over the bare URL they contain.
func ScanLinks(text string) []Link {
	if !strings.Contains(text, "http") {
		return nil
	}

	var spans []linkSpan
	for _, m := range markdownLinkRe.FindAllStringSubmatchIndex(text, -1) {
		spans = append(spans, linkSpan{
			start: m[0],
			end:   m[1],
			label: text[m[2]:m[3]],
			url:   text[m[4]:m[5]],
		})
	}
	for _, m := range bareURLRe.FindAllStringIndex(text, -1) {
		start, end := m[0], m[1]
		for end > start && strings.IndexByte(urlTrailingPunct, text[end-1]) >= 0 {
			end--
		}
		if overlapsAny(start, end, spans) {
			continue
		}
		u := text[start:end]
		spans = append(spans, linkSpan{start: start, end: end, label: u, url: u})
	}
	if len(spans) == 0 {
		return nil
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	offsets := clusterOffsets(text)
	out := make([]Link, 0, len(spans))
	for _, s := range spans {
		out = append(out, Link{
			Label:     s.label,
			URL:       s.url,
			SpanStart: sort.SearchInts(offsets, s.start+1) - 1,
			SpanEnd:   sort.SearchInts(offsets, s.end),
		})
	}
	return out
}

// linkSpan is a link candidate in byte offsets of the plain text.
type linkSpan struct {
	start, end int
	label, url string
}

func overlapsAny(start, end int, spans []linkSpan) bool {
	for _, s := range spans {
		if start < s.end && s.start < end {
			return true
		}
	}
	return false
}

// FindLinks returns the links of l whose span contains col, allowing the
// cursor to sit one column past the end of a span.
func FindLinks(l styled.Line, col int) []Link {
	var out []Link
	for _, link := range ScanLinks(l.Plain()) {
		if link.SpanStart <= col && col <= link.SpanEnd {
			out = append(out, link)
		}
	}
	return out
}

// clusterOffsets returns the byte offset at which each grapheme cluster of
// text starts.
func clusterOffsets(text string) []int {
	clusters := grapheme.Split(text)
	offsets := make([]int, len(clusters))
	off := 0
	for i, c := range clusters {
		offsets[i] = off
		off += len(c)
	}
	return offsets
}
