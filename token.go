package mdv

// Token is one node of an externally parsed document tree. The parser owns
// the tree; mdv only reads it. The set of concrete types below is closed:
// a parser kind outside it must be mapped to Unknown at the parser boundary
// so that dispatch in this package stays exhaustive.
type Token interface {
	token()
}

// Alignment positions a table column's content.
type Alignment uint8

const (
	// AlignLeft is the default when a column carries no alignment.
	AlignLeft Alignment = iota
	// AlignCenter centers column content.
	AlignCenter
	// AlignRight right-aligns column content.
	AlignRight
	// AlignNone marks a column whose source declared no alignment at all.
	AlignNone
)

// Space is a blank-line separator between blocks. It is visually
// meaningless and produces no output node.
type Space struct{}

// Heading is a section heading with depth 1 through 6.
type Heading struct {
	Depth   int
	Content []Token
}

// Paragraph is a run of inline content.
type Paragraph struct {
	Content []Token
}

// Blockquote wraps nested block content.
type Blockquote struct {
	Children []Token
}

// List is an ordered or unordered list. Start is the first ordered marker
// and is meaningful only when Ordered is true.
type List struct {
	Ordered bool
	Start   int
	Items   []ListItem
}

// ListItem holds one item's block children. A tight item's first child is a
// FormattedText carrying the item's inline run directly; a loose item's is
// a Paragraph.
type ListItem struct {
	Children []Token
}

// Code is a fenced or indented code block. Lang may be empty.
type Code struct {
	Text string
	Lang string
}

// HTML is raw markup passed through verbatim. mdv performs no
// sanitization; the producer of the token tree owns that trust boundary.
type HTML struct {
	Raw string
}

// Rule is a thematic break.
type Rule struct{}

// Table is tabular content. Align and every Row are nominally as long as
// Header; mismatches are tolerated at render time.
type Table struct {
	Header []Cell
	Align  []Alignment
	Rows   [][]Cell
}

// Cell holds one table cell's inline content.
type Cell struct {
	Content []Token
}

// PlainText is a leaf text run with no nested formatting.
type PlainText struct {
	Text string
}

// FormattedText is a text run that owns nested inline tokens, such as the
// mixed-format body of a tight list item.
type FormattedText struct {
	Children []Token
}

// Strong is bold inline content.
type Strong struct {
	Children []Token
}

// Em is italic inline content.
type Em struct {
	Children []Token
}

// Del is struck-through inline content.
type Del struct {
	Children []Token
}

// Codespan is inline code.
type Codespan struct {
	Text string
}

// Link is a hyperlink. Title may be empty.
type Link struct {
	Href  string
	Title string
	Label []Token
}

// Image is an inline image reference. Title may be empty.
type Image struct {
	Src   string
	Alt   string
	Title string
}

// Escape is a backslash-escaped character, already decoded.
type Escape struct {
	Char string
}

// Break is a hard line break.
type Break struct{}

// Unknown is any parser kind this package does not model. Raw, when
// non-empty, is the token's source text and is passed through verbatim.
type Unknown struct {
	Kind string
	Raw  string
}

func (Space) token()         {}
func (Heading) token()       {}
func (Paragraph) token()     {}
func (Blockquote) token()    {}
func (List) token()          {}
func (Code) token()          {}
func (HTML) token()          {}
func (Rule) token()          {}
func (Table) token()         {}
func (PlainText) token()     {}
func (FormattedText) token() {}
func (Strong) token()        {}
func (Em) token()            {}
func (Del) token()           {}
func (Codespan) token()      {}
func (Link) token()          {}
func (Image) token()         {}
func (Escape) token()        {}
func (Break) token()         {}
func (Unknown) token()       {}
