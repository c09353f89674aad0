// Package render composes the document pipeline: raw cheatsheet text is
// split into prose and code segments, each segment is rendered by its own
// strategy, and the results are reassembled in source order.
package render

import (
	"strings"

	"github.com/cheetsheet/cheet"
	"github.com/cheetsheet/cheet/highlight"
	"github.com/cheetsheet/cheet/markdown"
)

// Document renders content to a single ANSI-styled string. Prose segments
// are rendered as styled markdown wrapped to width; code segments are
// syntax-highlighted. Document is total: every input produces output
// without error, and empty input produces no output at all.
func Document(content string, width int, theme cheet.Theme) string {
	segments := cheet.Split(content)
	if len(segments) == 0 {
		return ""
	}

	hl := highlight.New(theme.CodeStyle)
	var b strings.Builder
	for _, segment := range segments {
		switch s := segment.(type) {
		case cheet.TextSegment:
			prose := markdown.Render(s.Content, width, theme)
			if prose != "" {
				b.WriteString(prose)
				b.WriteString("\n")
			}
		case cheet.CodeSegment:
			b.WriteString(hl.Block(s.Body, s.Language))
		}
	}
	return b.String()
}
