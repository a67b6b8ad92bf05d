// Package term displays an mdv node tree as themed ANSI text for
// terminals. It is a presentation layer only: it consumes the tree the
// core produced and never feeds anything back into it.
package term

import (
	"bytes"
	"io"
	"strconv"
	"strings"

	"github.com/alecthomas/chroma/v2/quick"
	"github.com/mattn/go-runewidth"
	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/wordwrap"

	"pkt.systems/mdv"
)

const (
	reset           = "\x1b[0m"
	osc8Terminator  = "\x1b\\"
	defaultWidth    = 80
	minContentWidth = 10
)

// Renderer writes display node trees to an io.Writer.
type Renderer struct {
	w      io.Writer
	width  int
	styles Styles
	cfg    renderConfig
}

// New creates a renderer for the given writer, wrap width and theme. A
// nil theme falls back to the default theme; a non-positive width falls
// back to 80 columns.
func New(w io.Writer, width int, theme Theme, opts ...Option) *Renderer {
	cfg := renderConfig{highlightStyle: "monokai"}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	if width <= 0 {
		width = defaultWidth
	}
	return &Renderer{w: w, width: width, styles: theme.Styles(), cfg: cfg}
}

// Render writes the node tree, one blank line between top-level blocks.
func (r *Renderer) Render(nodes []mdv.Node) error {
	var out bytes.Buffer
	r.blocks(&out, nodes, "")
	_, err := r.w.Write(out.Bytes())
	return err
}

func (r *Renderer) blocks(out *bytes.Buffer, nodes []mdv.Node, indent string) {
	for i, n := range nodes {
		if i > 0 {
			out.WriteByte('\n')
		}
		r.block(out, n, indent)
	}
}

func (r *Renderer) block(out *bytes.Buffer, n mdv.Node, indent string) {
	switch n.Kind {
	case mdv.NodeHeading:
		level := n.Level
		if level < 1 {
			level = 1
		}
		if level > 6 {
			level = 6
		}
		line := strings.Repeat("#", level) + " " + inlinePlain(n.Children)
		r.writeLine(out, indent, r.styled(r.styles.Heading[level-1], line))
	case mdv.NodeParagraph, mdv.NodeSpan:
		r.wrapInto(out, r.inline(n.Children), indent)
	case mdv.NodeBlockquote:
		bar := r.styled(r.styles.Quote, ">") + " "
		r.blocks(out, n.Children, indent+bar)
	case mdv.NodeList:
		r.list(out, n, indent)
	case mdv.NodeCode:
		r.code(out, n, indent)
	case mdv.NodeRule:
		width := r.contentWidth(indent)
		r.writeLine(out, indent, r.styled(r.styles.Rule, strings.Repeat("─", width)))
	case mdv.NodeRaw:
		// Verbatim passthrough; written as-is, never reinterpreted.
		for _, line := range splitLines(n.Text) {
			r.writeLine(out, indent, line)
		}
	case mdv.NodeTable:
		r.table(out, n.Table, indent)
	default:
		r.wrapInto(out, r.inline([]mdv.Node{n}), indent)
	}
}

func (r *Renderer) list(out *bytes.Buffer, n mdv.Node, indent string) {
	next := n.Start
	if n.Ordered && next < 1 {
		next = 1
	}
	for _, item := range n.Children {
		marker := "- "
		if n.Ordered {
			marker = strconv.Itoa(next) + ". "
			next++
		}
		hang := strings.Repeat(" ", len(marker))
		lead, rest := splitItem(item.Children)

		text := r.inline(lead)
		if text == "" && len(rest) == 0 {
			r.writeLine(out, indent, r.styled(r.styles.ListMarker, marker))
			continue
		}
		if text != "" {
			lines := r.wrapLines(text, indent+hang)
			for i, line := range lines {
				if i == 0 {
					r.writeLine(out, indent, r.styled(r.styles.ListMarker, marker)+line)
				} else {
					r.writeLine(out, indent+hang, line)
				}
			}
		} else {
			r.writeLine(out, indent, r.styled(r.styles.ListMarker, marker))
		}
		if len(rest) > 0 {
			r.blocks(out, rest, indent+hang)
		}
	}
}

// splitItem separates a list item's leading inline run from its trailing
// block children.
func splitItem(children []mdv.Node) (lead, rest []mdv.Node) {
	for i, c := range children {
		if isBlockKind(c.Kind) {
			return children[:i], children[i:]
		}
	}
	return children, nil
}

func isBlockKind(k mdv.NodeKind) bool {
	switch k {
	case mdv.NodeParagraph, mdv.NodeHeading, mdv.NodeBlockquote, mdv.NodeList,
		mdv.NodeItem, mdv.NodeCode, mdv.NodeRule, mdv.NodeTable:
		return true
	}
	return false
}

func (r *Renderer) code(out *bytes.Buffer, n mdv.Node, indent string) {
	if n.Code == nil {
		return
	}
	lang := n.Code.Lang()
	text := n.Code.Text()
	r.writeLine(out, indent, r.styled(r.styles.LinkURL, lang))

	body := ""
	if r.cfg.highlight && lang != mdv.DefaultLang {
		var hl bytes.Buffer
		if err := quick.Highlight(&hl, text, lang, "terminal256", r.cfg.highlightStyle); err == nil && hl.Len() > 0 {
			body = hl.String()
		}
	}
	if body == "" {
		var b strings.Builder
		for _, line := range splitLines(text) {
			b.WriteString(r.styled(r.styles.CodeBlock, line))
			b.WriteByte('\n')
		}
		body = b.String()
	}
	for _, line := range splitLines(body) {
		r.writeLine(out, indent+"  ", line)
	}
}

func (r *Renderer) table(out *bytes.Buffer, m *mdv.TableModel, indent string) {
	if m == nil {
		return
	}
	cols := m.Columns()
	if len(cols) == 0 {
		return
	}
	widths := make([]int, len(cols))
	for i, c := range cols {
		widths[i] = runewidth.StringWidth(c.Title)
	}
	for row := 0; row < m.RowCount(); row++ {
		for col := range cols {
			if w := runewidth.StringWidth(m.CellText(row, col)); w > widths[col] {
				widths[col] = w
			}
		}
	}

	bar := r.styled(r.styles.TableBorder, "|")
	var line strings.Builder
	for col, c := range cols {
		if col == 0 {
			line.WriteString(bar)
		}
		cell := padCell(r.styled(r.styles.TableHeader, c.Title), runewidth.StringWidth(c.Title), widths[col], c.Align)
		line.WriteString(" " + cell + " " + bar)
	}
	r.writeLine(out, indent, line.String())

	line.Reset()
	for col := range cols {
		if col == 0 {
			line.WriteString(bar)
		}
		line.WriteString(r.styled(r.styles.TableBorder, strings.Repeat("-", widths[col]+2)))
		line.WriteString(bar)
	}
	r.writeLine(out, indent, line.String())

	for row := 0; row < m.RowCount(); row++ {
		line.Reset()
		for col := range cols {
			if col == 0 {
				line.WriteString(bar)
			}
			content := r.inline(m.Cell(row, col))
			cell := padCell(content, ansi.PrintableRuneWidth(content), widths[col], cols[col].Align)
			line.WriteString(" " + cell + " " + bar)
		}
		r.writeLine(out, indent, line.String())
	}
}

func padCell(content string, printable, width int, align mdv.Alignment) string {
	gap := width - printable
	if gap <= 0 {
		return content
	}
	switch align {
	case mdv.AlignRight:
		return strings.Repeat(" ", gap) + content
	case mdv.AlignCenter:
		left := gap / 2
		return strings.Repeat(" ", left) + content + strings.Repeat(" ", gap-left)
	default:
		return content + strings.Repeat(" ", gap)
	}
}

func (r *Renderer) inline(nodes []mdv.Node) string {
	var b strings.Builder
	r.inlineInto(&b, nodes, "")
	return b.String()
}

func (r *Renderer) inlineInto(b *strings.Builder, nodes []mdv.Node, prefix string) {
	for _, n := range nodes {
		switch n.Kind {
		case mdv.NodeText:
			r.writeStyled(b, prefix, n.Text)
		case mdv.NodeSpan:
			r.inlineInto(b, n.Children, prefix)
		case mdv.NodeBold:
			r.inlineInto(b, n.Children, prefix+r.styles.Strong.Prefix)
		case mdv.NodeItalic:
			r.inlineInto(b, n.Children, prefix+r.styles.Emphasis.Prefix)
		case mdv.NodeStrike:
			r.inlineInto(b, n.Children, prefix+r.styles.Strike.Prefix)
		case mdv.NodeCodespan:
			r.writeStyled(b, prefix+r.styles.CodeInline.Prefix, n.Text)
		case mdv.NodeLink:
			r.link(b, n, prefix)
		case mdv.NodeImage:
			alt := n.Alt
			if alt == "" {
				alt = "image"
			}
			r.writeStyled(b, prefix+r.styles.LinkText.Prefix, "["+alt+"]")
			if n.Src != "" {
				r.writeStyled(b, r.styles.LinkURL.Prefix, " ("+fitURL(n.Src, r.width)+")")
			}
		case mdv.NodeBreak:
			b.WriteByte('\n')
		case mdv.NodeRaw:
			b.WriteString(n.Text)
		default:
			r.inlineInto(b, n.Children, prefix)
		}
	}
}

func (r *Renderer) link(b *strings.Builder, n mdv.Node, prefix string) {
	var label strings.Builder
	r.inlineInto(&label, n.Children, prefix+r.styles.LinkText.Prefix)
	if n.Href == "" {
		b.WriteString(label.String())
		return
	}
	if r.cfg.osc8 {
		b.WriteString(osc8Start + n.Href + osc8Terminator)
		b.WriteString(label.String())
		b.WriteString(osc8End)
		return
	}
	b.WriteString(label.String())
	if inlinePlain(n.Children) != n.Href {
		r.writeStyled(b, r.styles.LinkURL.Prefix, " ("+fitURL(n.Href, r.width)+")")
	}
}

func (r *Renderer) writeStyled(b *strings.Builder, prefix, text string) {
	if text == "" {
		return
	}
	if prefix == "" {
		b.WriteString(text)
		return
	}
	b.WriteString(prefix)
	b.WriteString(text)
	b.WriteString(reset)
}

func (r *Renderer) styled(s Style, text string) string {
	if s.Prefix == "" || text == "" {
		return text
	}
	return s.Prefix + text + reset
}

func (r *Renderer) wrapInto(out *bytes.Buffer, text string, indent string) {
	for _, line := range r.wrapLines(text, indent) {
		r.writeLine(out, indent, line)
	}
}

func (r *Renderer) wrapLines(text, indent string) []string {
	if text == "" {
		return nil
	}
	wrapped := wordwrap.String(text, r.contentWidth(indent))
	return splitLines(wrapped)
}

func (r *Renderer) contentWidth(indent string) int {
	width := r.width - ansi.PrintableRuneWidth(indent)
	if width < minContentWidth {
		width = minContentWidth
	}
	return width
}

func (r *Renderer) writeLine(out *bytes.Buffer, indent, line string) {
	out.WriteString(indent)
	out.WriteString(line)
	out.WriteByte('\n')
}

// inlinePlain flattens inline nodes to unstyled text.
func inlinePlain(nodes []mdv.Node) string {
	var b strings.Builder
	plainInto(&b, nodes)
	return b.String()
}

func plainInto(b *strings.Builder, nodes []mdv.Node) {
	for _, n := range nodes {
		switch n.Kind {
		case mdv.NodeText, mdv.NodeCodespan, mdv.NodeRaw:
			b.WriteString(n.Text)
		case mdv.NodeImage:
			b.WriteString(n.Alt)
		case mdv.NodeBreak:
			b.WriteByte(' ')
		default:
			plainInto(b, n.Children)
		}
	}
}

func splitLines(text string) []string {
	text = strings.TrimRight(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}
