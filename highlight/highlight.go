// Package highlight renders fenced code blocks with language-aware syntax
// highlighting. Language tags are resolved against chroma's lexer registry
// (case-insensitive, common aliases) and styled spans are emitted as
// truecolor escape sequences.
package highlight

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

const (
	indent = "  "
	reset  = "\x1b[0m"
)

// Highlighter renders code blocks with a fixed color style. It is read-only
// after construction and reused across all segments of a render.
type Highlighter struct {
	style *chroma.Style
}

// New returns a Highlighter using the built-in chroma style named by
// styleName. An unknown name falls back to chroma's default style.
func New(styleName string) *Highlighter {
	return &Highlighter{style: styles.Get(styleName)}
}

// Block renders one code block: a blank line, each body line highlighted and
// prefixed with a two-space indent, then a terminal reset followed by a
// blank line. An unrecognized language falls back to plain text; a line that
// fails to tokenize is printed unstyled. Block never fails.
func (h *Highlighter) Block(body, language string) string {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	var b strings.Builder
	b.WriteString("\n")
	for _, line := range strings.Split(body, "\n") {
		b.WriteString(indent)
		b.WriteString(h.line(lexer, line))
		b.WriteString("\n")
	}
	// Reset unconditionally so no styling leaks into subsequent output,
	// whatever happened during highlighting.
	b.WriteString(reset)
	b.WriteString("\n")
	return b.String()
}

// line tokenizes a single line into styled spans. Tokenizer errors degrade
// to the unstyled line.
func (h *Highlighter) line(lexer chroma.Lexer, line string) string {
	it, err := lexer.Tokenise(nil, line)
	if err != nil {
		return line
	}
	var b strings.Builder
	for _, token := range it.Tokens() {
		b.WriteString(h.span(token))
	}
	return b.String()
}

// span converts one token into a truecolor foreground (and background, if
// the style specifies one) escape sequence around the token text. Lexers
// may append a trailing newline to the final token; it is stripped so line
// layout stays under Block's control.
func (h *Highlighter) span(token chroma.Token) string {
	value := strings.TrimSuffix(token.Value, "\n")
	if value == "" {
		return ""
	}
	entry := h.style.Get(token.Type)
	var b strings.Builder
	if entry.Colour.IsSet() {
		fmt.Fprintf(&b, "\x1b[38;2;%d;%d;%dm", entry.Colour.Red(), entry.Colour.Green(), entry.Colour.Blue())
	}
	if entry.Background.IsSet() {
		fmt.Fprintf(&b, "\x1b[48;2;%d;%d;%dm", entry.Background.Red(), entry.Background.Green(), entry.Background.Blue())
	}
	b.WriteString(value)
	if entry.Colour.IsSet() || entry.Background.IsSet() {
		b.WriteString(reset)
	}
	return b.String()
}
