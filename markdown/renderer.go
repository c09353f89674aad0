package markdown

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cheetsheet/cheet"
	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
)

// ansiRenderer maps markdown elements to lipgloss styles per the fixed
// styling profile: headings get the accent color (bold for the first two
// levels), bold text the accent color, italic the secondary accent, inline
// code a distinct foreground/background pair, tables the tertiary accent,
// and block-level code a neutral dark background.
type ansiRenderer struct {
	heading    lipgloss.Style
	subheading lipgloss.Style
	bold       lipgloss.Style
	italic     lipgloss.Style
	inlineCode lipgloss.Style
	blockCode  lipgloss.Style
	table      lipgloss.Style
	tableHead  lipgloss.Style
	muted      lipgloss.Style
	underline  lipgloss.Style
	parser     parser.Parser
}

func newRenderer(theme cheet.Theme) *ansiRenderer {
	return &ansiRenderer{
		heading:    lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		subheading: lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)),
		bold:       lipgloss.NewStyle().Foreground(ansiColor(theme.Accent)).Bold(true),
		italic:     lipgloss.NewStyle().Foreground(ansiColor(theme.Secondary)).Italic(true),
		inlineCode: lipgloss.NewStyle().Foreground(ansiColor(theme.CodeFg)).Background(ansiColor(theme.CodeBg)),
		blockCode:  lipgloss.NewStyle().Background(ansiColor(theme.BlockBg)),
		table:      lipgloss.NewStyle().Foreground(ansiColor(theme.Tertiary)),
		tableHead:  lipgloss.NewStyle().Foreground(ansiColor(theme.Tertiary)).Bold(true),
		muted:      lipgloss.NewStyle().Foreground(ansiColor(theme.Muted)).Faint(true),
		underline:  lipgloss.NewStyle().Underline(true),
		parser:     goldmark.New(goldmark.WithExtensions(extension.Table)).Parser(),
	}
}

func ansiColor(index int) lipgloss.TerminalColor {
	if index < 0 {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(strconv.Itoa(index))
}

func (r *ansiRenderer) render(source []byte, width int) string {
	reader := text.NewReader(source)
	doc := r.parser.Parse(reader)

	var buf bytes.Buffer
	r.walkBlock(doc, source, width, &buf)
	return strings.TrimRight(buf.String(), "\n")
}

func (r *ansiRenderer) walkBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderBlock(c, source, width, buf)
	}
}

func (r *ansiRenderer) renderBlock(node ast.Node, source []byte, width int, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Paragraph:
		inline := r.collectInline(n, source)
		wrapped := lipgloss.NewStyle().Width(width).Render(inline)
		buf.WriteString(wrapped)
		buf.WriteString("\n")
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.Heading:
		style := r.subheading
		if n.Level <= 2 {
			style = r.heading
		}
		inline := r.collectInline(n, source)
		wrapped := lipgloss.NewStyle().Width(width).Render(style.Render(inline))
		buf.WriteString(wrapped)
		buf.WriteString("\n")
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.FencedCodeBlock:
		// Fenced blocks are normally extracted before prose reaches this
		// renderer; goldmark still sees one when an unclosed fence was
		// degraded to literal text. Fall back to the neutral block style.
		lang := string(n.Language(source))
		if lang != "" {
			buf.WriteString(r.muted.Render(lang))
			buf.WriteString("\n")
		}
		r.renderCodeLines(n, source, buf)
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.CodeBlock:
		r.renderCodeLines(n, source, buf)
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *east.Table:
		r.renderTable(n, source, buf)
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.List:
		r.renderList(n, source, width, buf, 0)
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.ThematicBreak:
		buf.WriteString("---\n")
		if n.NextSibling() != nil {
			buf.WriteString("\n")
		}

	case *ast.HTMLBlock:
		lines := n.Lines()
		for i := 0; i < lines.Len(); i++ {
			line := lines.At(i)
			buf.Write(line.Value(source))
		}

	default:
		// Blockquotes and other unrecognized blocks: recurse into children.
		r.walkBlock(node, source, width, buf)
	}
}

// renderCodeLines writes block code with a two-space indent and the neutral
// dark background, one line at a time and without reflow.
func (r *ansiRenderer) renderCodeLines(node ast.Node, source []byte, buf *bytes.Buffer) {
	lines := node.Lines()
	for i := 0; i < lines.Len(); i++ {
		line := lines.At(i)
		content := strings.TrimRight(string(line.Value(source)), "\n")
		buf.WriteString("  " + r.blockCode.Render(content))
		buf.WriteString("\n")
	}
}

// renderTable writes a table with columns padded to their widest cell.
// Cell text is collected unstyled so display widths can be measured, then
// the tertiary accent is applied per cell (bold for the header row).
func (r *ansiRenderer) renderTable(node *east.Table, source []byte, buf *bytes.Buffer) {
	var rows [][]string
	headerRows := 0
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch row := c.(type) {
		case *east.TableHeader:
			rows = append(rows, tableCells(row, source))
			headerRows = len(rows)
		case *east.TableRow:
			rows = append(rows, tableCells(row, source))
		}
	}
	if len(rows) == 0 {
		return
	}

	var widths []int
	for _, row := range rows {
		for i, cell := range row {
			w := runewidth.StringWidth(cell)
			if i >= len(widths) {
				widths = append(widths, w)
			} else if w > widths[i] {
				widths[i] = w
			}
		}
	}

	for ri, row := range rows {
		style := r.table
		if ri < headerRows {
			style = r.tableHead
		}
		var cells []string
		for i, cell := range row {
			padded := cell + strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell))
			cells = append(cells, style.Render(padded))
		}
		buf.WriteString(strings.TrimRight(strings.Join(cells, "  "), " "))
		buf.WriteString("\n")
		if ri == headerRows-1 {
			var dashes []string
			for _, w := range widths {
				dashes = append(dashes, strings.Repeat("-", w))
			}
			buf.WriteString(r.muted.Render(strings.Join(dashes, "  ")))
			buf.WriteString("\n")
		}
	}
}

// tableCells collects the plain text of each cell in a header or body row.
func tableCells(row ast.Node, source []byte) []string {
	var cells []string
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		if cell, ok := c.(*east.TableCell); ok {
			cells = append(cells, plainInline(cell, source))
		}
	}
	return cells
}

// plainInline collects inline text content without any styling.
func plainInline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		switch n := c.(type) {
		case *ast.Text:
			buf.Write(n.Segment.Value(source))
			if n.SoftLineBreak() || n.HardLineBreak() {
				buf.WriteByte(' ')
			}
		case *ast.String:
			buf.Write(n.Value)
		default:
			buf.WriteString(plainInline(c, source))
		}
	}
	return buf.String()
}

func (r *ansiRenderer) renderList(node *ast.List, source []byte, width int, buf *bytes.Buffer, depth int) {
	ordered := node.IsOrdered()
	start := node.Start
	itemNum := 0

	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		indent := strings.Repeat("  ", depth)
		var marker string
		if ordered {
			itemNum++
			marker = fmt.Sprintf("%d. ", start+itemNum-1)
		} else {
			marker = "- "
		}

		// Collect item content.
		var itemBuf bytes.Buffer
		for ic := item.FirstChild(); ic != nil; ic = ic.NextSibling() {
			switch in := ic.(type) {
			case *ast.Paragraph, *ast.TextBlock:
				inline := r.collectInline(in, source)
				itemBuf.WriteString(inline)
			case *ast.List:
				if itemBuf.Len() > 0 {
					r.writeListItem(buf, indent, marker, itemBuf.String(), width)
					itemBuf.Reset()
				}
				r.renderList(in, source, width, buf, depth+1)
				marker = strings.Repeat(" ", len(marker))
			default:
				r.renderBlock(ic, source, width, &itemBuf)
			}
		}

		if itemBuf.Len() > 0 {
			r.writeListItem(buf, indent, marker, itemBuf.String(), width)
		}
	}
}

// writeListItem writes a list item with proper continuation-line indentation.
func (r *ansiRenderer) writeListItem(buf *bytes.Buffer, indent, marker, content string, width int) {
	prefix := indent + marker
	itemWidth := width - len(prefix)
	if itemWidth < 10 {
		itemWidth = 10
	}
	wrapped := lipgloss.NewStyle().Width(itemWidth).Render(content)
	lines := strings.Split(wrapped, "\n")
	continuation := strings.Repeat(" ", len(prefix))
	for i, line := range lines {
		if i == 0 {
			buf.WriteString(prefix + line + "\n")
		} else {
			buf.WriteString(continuation + line + "\n")
		}
	}
}

// collectInline recursively collects styled inline text from a node's children.
func (r *ansiRenderer) collectInline(node ast.Node, source []byte) string {
	var buf bytes.Buffer
	for c := node.FirstChild(); c != nil; c = c.NextSibling() {
		r.renderInline(c, source, &buf)
	}
	return buf.String()
}

func (r *ansiRenderer) renderInline(node ast.Node, source []byte, buf *bytes.Buffer) {
	switch n := node.(type) {
	case *ast.Text:
		buf.Write(n.Segment.Value(source))
		if n.SoftLineBreak() {
			buf.WriteByte(' ')
		}
		if n.HardLineBreak() {
			buf.WriteByte('\n')
		}

	case *ast.String:
		buf.Write(n.Value)

	case *ast.Emphasis:
		inner := r.collectInline(n, source)
		switch n.Level {
		case 1:
			buf.WriteString(r.italic.Render(inner))
		default:
			// Level 2 = bold. Goldmark represents ***bold italic*** as
			// nested Emphasis nodes, so level 3+ is not reachable.
			buf.WriteString(r.bold.Render(inner))
		}

	case *ast.CodeSpan:
		inner := r.collectInline(n, source)
		buf.WriteString(r.inlineCode.Render(inner))

	case *ast.Link:
		inner := r.collectInline(n, source)
		url := string(n.Destination)
		buf.WriteString(r.underline.Render(inner))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + url + ")"))

	case *ast.AutoLink:
		url := string(n.URL(source))
		buf.WriteString(r.underline.Render(url))

	case *ast.Image:
		alt := r.collectInline(n, source)
		url := string(n.Destination)
		buf.WriteString(r.underline.Render(alt))
		buf.WriteString(" ")
		buf.WriteString(r.muted.Render("(" + url + ")"))

	case *ast.RawHTML:
		for i := 0; i < n.Segments.Len(); i++ {
			seg := n.Segments.At(i)
			buf.Write(seg.Value(source))
		}

	default:
		// Recurse for any unrecognized inline.
		for c := node.FirstChild(); c != nil; c = c.NextSibling() {
			r.renderInline(c, source, buf)
		}
	}
}
