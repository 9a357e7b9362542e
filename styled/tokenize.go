package styled

import (
	"errors"
	"strings"

	"github.com/rivo/uniseg"
)

// ErrMalformed reports an escape sequence that never terminates.
var ErrMalformed = errors.New("styled: malformed escape sequence")

const (
	esc = 0x1b
	bel = 0x07
)

// TokenKind classifies a Token.
type TokenKind uint8

const (
	// TokenText is a single grapheme cluster of visible text.
	TokenText TokenKind = iota
	// TokenSGR is a CSI ... m sequence (colors and attributes).
	TokenSGR
	// TokenHyperlink is an OSC 8 sequence (opens or closes a link).
	TokenHyperlink
	// TokenControl is any other escape sequence. It has no visual width.
	TokenControl
)

// Token is one unit of a raw line: a cluster or a whole escape sequence.
type Token struct {
	Kind TokenKind
	Text string
}

// Tokenize splits raw into grapheme clusters and escape sequences.
//
// Sequences are never split. An ESC that does not start a complete sequence
// yields ErrMalformed.
func Tokenize(raw string) ([]Token, error) {
	if raw == "" {
		return nil, nil
	}
	out := make([]Token, 0, len(raw))
	for i := 0; i < len(raw); {
		if raw[i] == esc {
			n, kind, err := sequenceLen(raw[i:])
			if err != nil {
				return nil, err
			}
			out = append(out, Token{Kind: kind, Text: raw[i : i+n]})
			i += n
			continue
		}

		j := strings.IndexByte(raw[i:], esc)
		if j < 0 {
			j = len(raw)
		} else {
			j += i
		}
		g := uniseg.NewGraphemes(raw[i:j])
		for g.Next() {
			out = append(out, Token{Kind: TokenText, Text: g.Str()})
		}
		i = j
	}
	return out, nil
}

// sequenceLen returns the byte length of the escape sequence at the start of s.
func sequenceLen(s string) (int, TokenKind, error) {
	if len(s) < 2 {
		return 0, 0, ErrMalformed
	}
	switch s[1] {
	case '[':
		for i := 2; i < len(s); i++ {
			c := s[i]
			switch {
			case c >= 0x20 && c <= 0x3f:
				continue
			case c >= 0x40 && c <= 0x7e:
				if c == 'm' {
					return i + 1, TokenSGR, nil
				}
				return i + 1, TokenControl, nil
			default:
				return 0, 0, ErrMalformed
			}
		}
		return 0, 0, ErrMalformed
	case ']', 'P', 'X', '^', '_':
		for i := 2; i < len(s); i++ {
			switch {
			case s[i] == bel:
				return i + 1, stringSeqKind(s), nil
			case s[i] == esc && i+1 < len(s) && s[i+1] == '\\':
				return i + 2, stringSeqKind(s), nil
			case s[i] == esc:
				return 0, 0, ErrMalformed
			}
		}
		return 0, 0, ErrMalformed
	default:
		if s[1] < 0x20 || s[1] > 0x7e {
			return 0, 0, ErrMalformed
		}
		return 2, TokenControl, nil
	}
}

func stringSeqKind(s string) TokenKind {
	if strings.HasPrefix(s, "\x1b]8;") {
		return TokenHyperlink
	}
	return TokenControl
}
