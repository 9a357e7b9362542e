package render

import (
	"regexp"
	"strings"

	"github.com/iw2rmb/wisereader/styled"
)

var htmlTagRe = regexp.MustCompile(`(?i)<(!doctype|html|head|body|article|main|section|div|p|h[1-6]|ul|ol|li|a|br|span|img|pre|blockquote|table)[\s>/]`)

// LooksLikeHTML reports whether content appears to be HTML rather than
// Markdown or plain text.
func LooksLikeHTML(content string) bool {
	head := strings.TrimSpace(content)
	if len(head) > 4096 {
		head = head[:4096]
	}
	return strings.HasPrefix(head, "<") && htmlTagRe.MatchString(head)
}

// Auto renders HTML with HTML and anything else with Markdown.
type Auto struct {
	HTML     HTML
	Markdown Markdown
}

// NewAuto returns an Auto renderer with default HTML styles and the given
// Markdown style.
func NewAuto(markdownStyle string) Auto {
	return Auto{HTML: NewHTML(), Markdown: Markdown{Style: markdownStyle}}
}

func (a Auto) Render(content string, width int) ([]styled.Line, error) {
	if LooksLikeHTML(content) {
		return a.HTML.Render(content, width)
	}
	return a.Markdown.Render(content, width)
}
