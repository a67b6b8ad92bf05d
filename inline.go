package mdv

// RenderInline transforms an ordered run of inline tokens into display
// nodes, preserving order and recursing through nested formatting. Like
// Render it never fails; unrecognized kinds pass their raw text through or
// vanish without leaving a key gap.
func RenderInline(tokens []Token) []Node {
	out := make([]Node, 0, len(tokens))
	for _, tok := range tokens {
		if n, ok := renderSpan(tok, len(out)); ok {
			out = append(out, n)
		}
	}
	return out
}

func renderSpan(tok Token, key int) (Node, bool) {
	switch t := tok.(type) {
	case PlainText:
		return Node{Kind: NodeText, Key: key, Text: t.Text}, true
	case FormattedText:
		return Node{Kind: NodeSpan, Key: key, Children: RenderInline(t.Children)}, true
	case Strong:
		return Node{Kind: NodeBold, Key: key, Children: RenderInline(t.Children)}, true
	case Em:
		return Node{Kind: NodeItalic, Key: key, Children: RenderInline(t.Children)}, true
	case Del:
		return Node{Kind: NodeStrike, Key: key, Children: RenderInline(t.Children)}, true
	case Codespan:
		return Node{Kind: NodeCodespan, Key: key, Text: t.Text}, true
	case Link:
		return Node{
			Kind:     NodeLink,
			Key:      key,
			Href:     t.Href,
			Title:    t.Title,
			Children: RenderInline(t.Label),
		}, true
	case Image:
		return Node{Kind: NodeImage, Key: key, Src: t.Src, Alt: t.Alt, Title: t.Title}, true
	case Escape:
		// Already decoded by the parser; emit the literal character.
		return Node{Kind: NodeText, Key: key, Text: t.Char}, true
	case Break:
		return Node{Kind: NodeBreak, Key: key}, true
	default:
		if raw, ok := rawText(tok); ok {
			return Node{Kind: NodeRaw, Key: key, Text: raw}, true
		}
		return Node{}, false
	}
}

// plainText flattens a token run to its unstyled text. Used for table
// column labels and for width measurement by display layers.
func plainText(tokens []Token) string {
	var b []byte
	for _, tok := range tokens {
		b = appendPlainText(b, tok)
	}
	return string(b)
}

func appendPlainText(b []byte, tok Token) []byte {
	switch t := tok.(type) {
	case PlainText:
		return append(b, t.Text...)
	case FormattedText:
		for _, c := range t.Children {
			b = appendPlainText(b, c)
		}
	case Strong:
		for _, c := range t.Children {
			b = appendPlainText(b, c)
		}
	case Em:
		for _, c := range t.Children {
			b = appendPlainText(b, c)
		}
	case Del:
		for _, c := range t.Children {
			b = appendPlainText(b, c)
		}
	case Link:
		for _, c := range t.Label {
			b = appendPlainText(b, c)
		}
	case Codespan:
		return append(b, t.Text...)
	case Escape:
		return append(b, t.Char...)
	case Image:
		return append(b, t.Alt...)
	case Unknown:
		return append(b, t.Raw...)
	}
	return b
}
