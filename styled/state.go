package styled

import "strings"

const (
	sgrReset  = "\x1b[0m"
	linkClose = "\x1b]8;;\x1b\\"
)

// penState is the style in effect at some point of a line: the SGR
// sequences seen since the last reset and the open hyperlink, if any.
type penState struct {
	sgr  []string
	link string
}

func (p *penState) apply(tok Token) {
	switch tok.Kind {
	case TokenSGR:
		params := tok.Text[2 : len(tok.Text)-1]
		if params == "" || params == "0" || strings.HasPrefix(params, "0;") {
			p.sgr = p.sgr[:0]
			if params == "" || params == "0" {
				return
			}
		}
		p.sgr = append(p.sgr, tok.Text)
	case TokenHyperlink:
		if isLinkClose(tok.Text) {
			p.link = ""
			return
		}
		p.link = tok.Text
	}
}

// prefix re-creates the state at the start of a fragment.
func (p penState) prefix() string {
	var sb strings.Builder
	if p.link != "" {
		sb.WriteString(p.link)
	}
	for _, s := range p.sgr {
		sb.WriteString(s)
	}
	return sb.String()
}

// suffix closes whatever the state still has open.
func (p penState) suffix() string {
	var sb strings.Builder
	if len(p.sgr) > 0 {
		sb.WriteString(sgrReset)
	}
	if p.link != "" {
		sb.WriteString(linkClose)
	}
	return sb.String()
}

// isLinkClose reports whether an OSC 8 sequence has an empty URI.
func isLinkClose(seq string) bool {
	body := strings.TrimPrefix(seq, "\x1b]8;")
	body = strings.TrimSuffix(body, "\x1b\\")
	body = strings.TrimSuffix(body, "\a")
	i := strings.IndexByte(body, ';')
	if i < 0 {
		return true
	}
	return body[i+1:] == ""
}
