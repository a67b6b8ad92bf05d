package mdv

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

// cmpOpts makes Node trees comparable: CodeView and TableModel carry
// unexported state, so compare them through their accessors.
func cmpOpts() []cmp.Option {
	return []cmp.Option{
		cmp.Comparer(func(a, b *CodeView) bool {
			if a == nil || b == nil {
				return a == b
			}
			return a.Text() == b.Text() && a.Lang() == b.Lang()
		}),
		cmp.Comparer(func(a, b *TableModel) bool {
			if a == nil || b == nil {
				return a == b
			}
			if !cmp.Equal(a.Columns(), b.Columns()) || a.RowCount() != b.RowCount() {
				return false
			}
			for r := 0; r < a.RowCount(); r++ {
				for c := range a.Columns() {
					if a.CellText(r, c) != b.CellText(r, c) {
						return false
					}
				}
			}
			return true
		}),
	}
}

func TestRenderOneNodePerToken(t *testing.T) {
	tokens := []Token{
		Heading{Depth: 1, Content: []Token{PlainText{Text: "Title"}}},
		Space{},
		Paragraph{Content: []Token{PlainText{Text: "body"}}},
		Space{},
		Rule{},
	}
	nodes := Render(tokens)
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	wantKinds := []NodeKind{NodeHeading, NodeParagraph, NodeRule}
	for i, n := range nodes {
		if n.Kind != wantKinds[i] {
			t.Fatalf("node %d: kind %d, want %d", i, n.Kind, wantKinds[i])
		}
		if n.Key != i {
			t.Fatalf("node %d: key %d, want contiguous keys", i, n.Key)
		}
	}
}

func TestRenderIdempotent(t *testing.T) {
	tokens := []Token{
		Heading{Depth: 2, Content: []Token{PlainText{Text: "Usage"}}},
		Paragraph{Content: []Token{
			PlainText{Text: "call "},
			Codespan{Text: "Render"},
			Strong{Children: []Token{PlainText{Text: "once"}}},
		}},
		Blockquote{Children: []Token{
			Paragraph{Content: []Token{PlainText{Text: "quoted"}}},
		}},
		List{Ordered: true, Start: 3, Items: []ListItem{
			{Children: []Token{FormattedText{Children: []Token{PlainText{Text: "a"}}}}},
			{Children: []Token{Paragraph{Content: []Token{PlainText{Text: "b"}}}}},
		}},
		Code{Text: "x := 1\n", Lang: "go"},
		Table{
			Header: []Cell{{Content: []Token{PlainText{Text: "K"}}}, {Content: []Token{PlainText{Text: "V"}}}},
			Align:  []Alignment{AlignLeft, AlignRight},
			Rows:   [][]Cell{{{Content: []Token{PlainText{Text: "k1"}}}, {Content: []Token{PlainText{Text: "v1"}}}}},
		},
	}
	first := Render(tokens)
	second := Render(tokens)
	if diff := cmp.Diff(first, second, cmpOpts()...); diff != "" {
		t.Fatalf("renders of the same tree differ (-first +second):\n%s", diff)
	}
}

func TestHeadingDepthMapsOneToOne(t *testing.T) {
	for depth := 1; depth <= 6; depth++ {
		nodes := Render([]Token{Heading{Depth: depth, Content: []Token{PlainText{Text: "h"}}}})
		if len(nodes) != 1 || nodes[0].Kind != NodeHeading {
			t.Fatalf("depth %d: unexpected nodes %+v", depth, nodes)
		}
		if nodes[0].Level != depth {
			t.Fatalf("depth %d mapped to level %d", depth, nodes[0].Level)
		}
	}
}

func TestHeadingDepthOutOfRangeDegrades(t *testing.T) {
	nodes := Render([]Token{
		Heading{Depth: 0, Content: []Token{PlainText{Text: "low"}}},
		Heading{Depth: 9, Content: []Token{PlainText{Text: "high"}}},
	})
	if nodes[0].Level != 1 || nodes[1].Level != 6 {
		t.Fatalf("out-of-range depths not clamped: %d, %d", nodes[0].Level, nodes[1].Level)
	}
}

func TestTightListItemNotRewrapped(t *testing.T) {
	inline := []Token{Em{Children: []Token{PlainText{Text: "b"}}}}
	nodes := Render([]Token{List{Items: []ListItem{
		{Children: []Token{FormattedText{Children: inline}}},
	}}})
	if len(nodes) != 1 || len(nodes[0].Children) != 1 {
		t.Fatalf("unexpected list shape: %+v", nodes)
	}
	item := nodes[0].Children[0]
	want := RenderInline(inline)
	if diff := cmp.Diff(want, item.Children, cmpOpts()...); diff != "" {
		t.Fatalf("tight item content differs from direct inline render:\n%s", diff)
	}
	for _, c := range item.Children {
		if c.Kind == NodeParagraph {
			t.Fatalf("tight item content wrapped in an implicit paragraph")
		}
	}
}

func TestLooseListItemTakesBlockPath(t *testing.T) {
	nodes := Render([]Token{List{Items: []ListItem{
		{Children: []Token{Paragraph{Content: []Token{PlainText{Text: "b"}}}}},
	}}})
	item := nodes[0].Children[0]
	if len(item.Children) != 1 || item.Children[0].Kind != NodeParagraph {
		t.Fatalf("loose item should render its paragraph: %+v", item.Children)
	}
}

func TestTightItemWithTrailingBlocks(t *testing.T) {
	nodes := Render([]Token{List{Items: []ListItem{
		{Children: []Token{
			FormattedText{Children: []Token{PlainText{Text: "lead"}}},
			List{Items: []ListItem{{Children: []Token{FormattedText{Children: []Token{PlainText{Text: "nested"}}}}}}},
		}},
	}}})
	item := nodes[0].Children[0]
	if len(item.Children) != 2 {
		t.Fatalf("expected inline lead plus nested list, got %d children", len(item.Children))
	}
	if item.Children[0].Kind != NodeText || item.Children[1].Kind != NodeList {
		t.Fatalf("unexpected item shape: %+v", item.Children)
	}
	if item.Children[1].Key != 1 {
		t.Fatalf("trailing block key %d, want 1", item.Children[1].Key)
	}
}

func TestOrderedListStart(t *testing.T) {
	nodes := Render([]Token{
		List{Ordered: true, Start: 4, Items: []ListItem{{}}},
		List{Ordered: false, Start: 4, Items: []ListItem{{}}},
	})
	if !nodes[0].Ordered || nodes[0].Start != 4 {
		t.Fatalf("ordered list lost start offset: %+v", nodes[0])
	}
	if nodes[1].Ordered || nodes[1].Start != 0 {
		t.Fatalf("unordered list must not carry a start offset: %+v", nodes[1])
	}
}

func TestUnknownKindPassthrough(t *testing.T) {
	nodes := Render([]Token{
		Paragraph{Content: []Token{PlainText{Text: "a"}}},
		Unknown{Kind: "footnote", Raw: "X"},
		Unknown{Kind: "directive"},
		Paragraph{Content: []Token{PlainText{Text: "b"}}},
	})
	if len(nodes) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(nodes))
	}
	if nodes[1].Kind != NodeRaw || nodes[1].Text != "X" {
		t.Fatalf("raw passthrough mismatch: %+v", nodes[1])
	}
	// The raw-less unknown vanished without shifting sibling keys.
	for i, n := range nodes {
		if n.Key != i {
			t.Fatalf("key gap after skipped token: node %d has key %d", i, n.Key)
		}
	}
}

func TestHTMLPassthroughVerbatim(t *testing.T) {
	raw := "<div class=\"x\"><b>kept as-is</b></div>"
	nodes := Render([]Token{HTML{Raw: raw}})
	if nodes[0].Kind != NodeRaw || nodes[0].Text != raw {
		t.Fatalf("html not passed through verbatim: %+v", nodes[0])
	}
}

func TestMalformedTokensDegrade(t *testing.T) {
	// Empty payloads must yield empty content, never a panic or a
	// dropped document.
	nodes := Render([]Token{
		Heading{},
		Paragraph{},
		Blockquote{},
		List{},
		Table{},
		Code{},
	})
	if len(nodes) != 6 {
		t.Fatalf("degraded tokens should still emit nodes, got %d", len(nodes))
	}
	if nodes[5].Code.Lang() != DefaultLang {
		t.Fatalf("empty code lang should fall back to %q", DefaultLang)
	}
}
