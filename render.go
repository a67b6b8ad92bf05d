package mdv

// Render transforms a document's top-level tokens into display nodes. Every
// token except Space yields exactly one node, in input order. Render never
// fails: malformed payloads degrade to empty content and unrecognized kinds
// fall back to verbatim passthrough or are skipped.
func Render(tokens []Token) []Node {
	return renderBlocks(nil, tokens)
}

func renderBlocks(dst []Node, tokens []Token) []Node {
	if dst == nil {
		dst = make([]Node, 0, len(tokens))
	}
	for _, tok := range tokens {
		if n, ok := renderBlock(tok, len(dst)); ok {
			dst = append(dst, n)
		}
	}
	return dst
}

func renderBlock(tok Token, key int) (Node, bool) {
	switch t := tok.(type) {
	case Space:
		return Node{}, false
	case Heading:
		return Node{
			Kind:     NodeHeading,
			Key:      key,
			Level:    clampDepth(t.Depth),
			Children: RenderInline(t.Content),
		}, true
	case Paragraph:
		return Node{Kind: NodeParagraph, Key: key, Children: RenderInline(t.Content)}, true
	case Blockquote:
		return Node{Kind: NodeBlockquote, Key: key, Children: renderBlocks(nil, t.Children)}, true
	case Code:
		return Node{Kind: NodeCode, Key: key, Code: NewCodeView(t.Text, t.Lang)}, true
	case HTML:
		return Node{Kind: NodeRaw, Key: key, Text: t.Raw}, true
	case Rule:
		return Node{Kind: NodeRule, Key: key}, true
	case List:
		n := Node{Kind: NodeList, Key: key, Ordered: t.Ordered}
		if t.Ordered {
			n.Start = t.Start
		}
		n.Children = make([]Node, 0, len(t.Items))
		for _, item := range t.Items {
			n.Children = append(n.Children, renderItem(item, len(n.Children)))
		}
		return n, true
	case Table:
		return Node{Kind: NodeTable, Key: key, Table: NewTableModel(t.Header, t.Align, t.Rows)}, true
	default:
		return renderFallback(tok, key)
	}
}

// renderItem renders one list item. A tight item arrives with its inline
// run as a bare FormattedText first child; that run is inline-rendered
// directly rather than re-wrapped in an implicit paragraph. Everything
// else takes the ordinary recursive block path.
func renderItem(item ListItem, key int) Node {
	n := Node{Kind: NodeItem, Key: key}
	rest := item.Children
	if len(rest) > 0 {
		if ft, ok := rest[0].(FormattedText); ok && len(ft.Children) > 0 {
			n.Children = RenderInline(ft.Children)
			rest = rest[1:]
		}
	}
	n.Children = renderBlocks(n.Children, rest)
	return n
}

// renderFallback handles tokens the block dispatcher does not model,
// including inline kinds surfacing at block level and Unknown. Kinds with
// recoverable source text pass it through; the rest are dropped without
// disturbing sibling ordering.
func renderFallback(tok Token, key int) (Node, bool) {
	if raw, ok := rawText(tok); ok {
		return Node{Kind: NodeRaw, Key: key, Text: raw}, true
	}
	if ft, ok := tok.(FormattedText); ok {
		return Node{Kind: NodeSpan, Key: key, Children: RenderInline(ft.Children)}, true
	}
	return Node{}, false
}

func rawText(tok Token) (string, bool) {
	switch t := tok.(type) {
	case Unknown:
		return t.Raw, t.Raw != ""
	case PlainText:
		return t.Text, t.Text != ""
	case Codespan:
		return t.Text, t.Text != ""
	case Escape:
		return t.Char, t.Char != ""
	default:
		return "", false
	}
}

func clampDepth(depth int) int {
	if depth < 1 {
		return 1
	}
	if depth > 6 {
		return 6
	}
	return depth
}
