// Package gfm adapts goldmark's GitHub Flavored Markdown parser to the mdv
// token model. It is the token source collaborator: Parse owns the only
// error-returning boundary in the pipeline, and everything it emits is a
// tree mdv.Render accepts.
package gfm

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	east "github.com/yuin/goldmark/extension/ast"
	"github.com/yuin/goldmark/text"

	"pkt.systems/mdv"
)

// Option configures parsing behavior.
type Option func(*config)

type config struct {
	keepFrontMatter bool
}

// WithFrontMatter keeps a leading front matter block in the document
// instead of stripping it.
func WithFrontMatter(keep bool) Option {
	return func(cfg *config) {
		cfg.keepFrontMatter = keep
	}
}

// Parse converts Markdown source into mdv tokens. Input must be valid
// UTF-8 text; a leading YAML/TOML/JSON front matter block is stripped
// unless WithFrontMatter(true) is given.
func Parse(src []byte, opts ...Option) ([]mdv.Token, error) {
	cfg := config{}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if err := ValidateInput(src); err != nil {
		return nil, err
	}
	if !cfg.keepFrontMatter {
		src = StripFrontMatter(src)
	}
	md := goldmark.New(goldmark.WithExtensions(extension.Table, extension.Strikethrough))
	doc := md.Parser().Parse(text.NewReader(src))
	return convertChildren(doc, src), nil
}

func convertChildren(parent ast.Node, src []byte) []mdv.Token {
	var out []mdv.Token
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, convertBlock(c, src)...)
	}
	return out
}

func convertBlock(n ast.Node, src []byte) []mdv.Token {
	switch t := n.(type) {
	case *ast.Heading:
		return []mdv.Token{mdv.Heading{Depth: t.Level, Content: convertInlines(t, src)}}
	case *ast.Paragraph:
		return []mdv.Token{mdv.Paragraph{Content: convertInlines(t, src)}}
	case *ast.TextBlock:
		// Tight list items carry their inline run as a bare text block.
		return []mdv.Token{mdv.FormattedText{Children: convertInlines(t, src)}}
	case *ast.Blockquote:
		return []mdv.Token{mdv.Blockquote{Children: convertChildren(t, src)}}
	case *ast.List:
		return []mdv.Token{convertList(t, src)}
	case *ast.FencedCodeBlock:
		return []mdv.Token{mdv.Code{Text: linesText(t, src), Lang: string(t.Language(src))}}
	case *ast.CodeBlock:
		return []mdv.Token{mdv.Code{Text: linesText(t, src)}}
	case *ast.ThematicBreak:
		return []mdv.Token{mdv.Rule{}}
	case *ast.HTMLBlock:
		return []mdv.Token{mdv.HTML{Raw: htmlBlockText(t, src)}}
	case *east.Table:
		return []mdv.Token{convertTable(t, src)}
	default:
		return []mdv.Token{mdv.Unknown{Kind: n.Kind().String(), Raw: linesText(n, src)}}
	}
}

func convertList(list *ast.List, src []byte) mdv.List {
	out := mdv.List{Ordered: list.IsOrdered()}
	if out.Ordered {
		out.Start = list.Start
	}
	for c := list.FirstChild(); c != nil; c = c.NextSibling() {
		item, ok := c.(*ast.ListItem)
		if !ok {
			continue
		}
		out.Items = append(out.Items, mdv.ListItem{Children: convertChildren(item, src)})
	}
	return out
}

func convertTable(table *east.Table, src []byte) mdv.Table {
	out := mdv.Table{}
	for _, a := range table.Alignments {
		out.Align = append(out.Align, convertAlignment(a))
	}
	for c := table.FirstChild(); c != nil; c = c.NextSibling() {
		switch row := c.(type) {
		case *east.TableHeader:
			out.Header = convertRow(row, src)
		case *east.TableRow:
			out.Rows = append(out.Rows, convertRow(row, src))
		}
	}
	return out
}

func convertAlignment(a east.Alignment) mdv.Alignment {
	switch a {
	case east.AlignLeft:
		return mdv.AlignLeft
	case east.AlignCenter:
		return mdv.AlignCenter
	case east.AlignRight:
		return mdv.AlignRight
	default:
		return mdv.AlignNone
	}
}

func convertRow(row ast.Node, src []byte) []mdv.Cell {
	var cells []mdv.Cell
	for c := row.FirstChild(); c != nil; c = c.NextSibling() {
		cell, ok := c.(*east.TableCell)
		if !ok {
			continue
		}
		cells = append(cells, mdv.Cell{Content: convertInlines(cell, src)})
	}
	return cells
}

func convertInlines(parent ast.Node, src []byte) []mdv.Token {
	var out []mdv.Token
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, convertInline(c, src)...)
	}
	return out
}

func convertInline(n ast.Node, src []byte) []mdv.Token {
	switch t := n.(type) {
	case *ast.Text:
		return convertText(t, src)
	case *ast.String:
		return []mdv.Token{mdv.PlainText{Text: string(t.Value)}}
	case *ast.CodeSpan:
		return []mdv.Token{mdv.Codespan{Text: literalText(t, src)}}
	case *ast.Emphasis:
		children := convertInlines(t, src)
		if t.Level >= 2 {
			return []mdv.Token{mdv.Strong{Children: children}}
		}
		return []mdv.Token{mdv.Em{Children: children}}
	case *east.Strikethrough:
		return []mdv.Token{mdv.Del{Children: convertInlines(t, src)}}
	case *ast.Link:
		return []mdv.Token{mdv.Link{
			Href:  string(t.Destination),
			Title: string(t.Title),
			Label: convertInlines(t, src),
		}}
	case *ast.AutoLink:
		return []mdv.Token{convertAutoLink(t, src)}
	case *ast.Image:
		return []mdv.Token{mdv.Image{
			Src:   string(t.Destination),
			Alt:   literalText(t, src),
			Title: string(t.Title),
		}}
	case *ast.RawHTML:
		return []mdv.Token{mdv.Unknown{Kind: n.Kind().String(), Raw: segmentsText(t.Segments, src)}}
	default:
		return []mdv.Token{mdv.Unknown{Kind: n.Kind().String()}}
	}
}

// convertText maps one goldmark text node. Soft line breaks become a
// single space; hard breaks become an explicit break token.
func convertText(t *ast.Text, src []byte) []mdv.Token {
	s := string(t.Segment.Value(src))
	if t.HardLineBreak() {
		return []mdv.Token{mdv.PlainText{Text: s}, mdv.Break{}}
	}
	if t.SoftLineBreak() {
		s += " "
	}
	return []mdv.Token{mdv.PlainText{Text: s}}
}

func convertAutoLink(t *ast.AutoLink, src []byte) mdv.Token {
	url := string(t.URL(src))
	href := url
	if t.AutoLinkType == ast.AutoLinkEmail && !bytes.HasPrefix(t.URL(src), []byte("mailto:")) {
		href = "mailto:" + url
	}
	return mdv.Link{Href: href, Label: []mdv.Token{mdv.PlainText{Text: string(t.Label(src))}}}
}

// literalText concatenates the text segments under an inline node, used
// for code spans and image alt text.
func literalText(parent ast.Node, src []byte) string {
	var buf bytes.Buffer
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		switch t := c.(type) {
		case *ast.Text:
			buf.Write(t.Segment.Value(src))
		case *ast.String:
			buf.Write(t.Value)
		default:
			buf.WriteString(literalText(c, src))
		}
	}
	return buf.String()
}

func linesText(n ast.Node, src []byte) string {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}

func htmlBlockText(n *ast.HTMLBlock, src []byte) string {
	raw := linesText(n, src)
	if n.HasClosure() {
		raw += string(n.ClosureLine.Value(src))
	}
	return raw
}

func segmentsText(segs *text.Segments, src []byte) string {
	if segs == nil {
		return ""
	}
	var buf bytes.Buffer
	for i := 0; i < segs.Len(); i++ {
		seg := segs.At(i)
		buf.Write(seg.Value(src))
	}
	return buf.String()
}
