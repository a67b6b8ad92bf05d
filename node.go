package mdv

// NodeKind identifies what a display node represents.
type NodeKind uint8

const (
	// NodeText is a plain text span.
	NodeText NodeKind = iota
	// NodeParagraph is a paragraph of inline children.
	NodeParagraph
	// NodeHeading is a heading at Level 1..6.
	NodeHeading
	// NodeBlockquote wraps nested block children.
	NodeBlockquote
	// NodeList is an ordered or unordered list of NodeItem children.
	NodeList
	// NodeItem is one list item.
	NodeItem
	// NodeCode is a code block; Code carries its view.
	NodeCode
	// NodeRule is a horizontal divider with no content.
	NodeRule
	// NodeRaw is verbatim markup or unknown-token passthrough.
	NodeRaw
	// NodeTable is tabular content; Table carries its model.
	NodeTable
	// NodeBold is bold inline children.
	NodeBold
	// NodeItalic is italic inline children.
	NodeItalic
	// NodeStrike is struck-through inline children.
	NodeStrike
	// NodeSpan is a neutral inline container for mixed-format text.
	NodeSpan
	// NodeCodespan is inline code text.
	NodeCodespan
	// NodeLink is a hyperlink with inline children as its label.
	NodeLink
	// NodeImage is an image reference.
	NodeImage
	// NodeBreak is a hard line break.
	NodeBreak
)

// Node is one node of the produced display tree. A render pass builds the
// tree fresh and never touches it again; consumers may keep or discard it
// freely.
//
// Key is the node's position among its emitted siblings. Suppressed tokens
// (Space, unknown kinds without raw text) do not occupy keys, so keys are
// always contiguous from zero.
type Node struct {
	Kind NodeKind
	Key  int

	// Text is the primitive content of NodeText, NodeCodespan and NodeRaw.
	Text string

	// Level is the heading depth, 1..6.
	Level int

	// Ordered and Start describe a NodeList. Start is set only for
	// ordered lists.
	Ordered bool
	Start   int

	// Href, Title, Src and Alt describe NodeLink and NodeImage.
	Href  string
	Title string
	Src   string
	Alt   string

	// Code is the presenter for a NodeCode block.
	Code *CodeView

	// Table is the column-indexed model for a NodeTable.
	Table *TableModel

	Children []Node
}
