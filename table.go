package mdv

// Column describes one table column: its header label as plain text and
// its content alignment.
type Column struct {
	Title string
	Align Alignment
}

// TableModel is a column-indexed view over tabular tokens. The column
// count is fixed by the header; cell content is rendered on demand through
// Cell, so modeling a large table costs nothing until its cells are shown.
// Row identity is the row index.
type TableModel struct {
	cols []Column
	rows [][]Cell
}

// NewTableModel builds a model with exactly one column per header cell.
// Alignment entries beyond the header length are ignored and missing
// entries default to left. Rows keep their source shape; Cell pads and
// truncates at access time.
func NewTableModel(header []Cell, align []Alignment, rows [][]Cell) *TableModel {
	cols := make([]Column, len(header))
	for i, h := range header {
		a := AlignLeft
		if i < len(align) {
			a = align[i]
		}
		cols[i] = Column{Title: plainText(h.Content), Align: a}
	}
	return &TableModel{cols: cols, rows: rows}
}

// Columns returns the column descriptors in order.
func (m *TableModel) Columns() []Column {
	return m.cols
}

// RowCount returns the number of body rows.
func (m *TableModel) RowCount() int {
	return len(m.rows)
}

// Cell renders the content of body cell (row, col). A missing cell
// renders empty, whether the coordinates are out of range or the row is
// simply short. Cells beyond the column count are unreachable.
func (m *TableModel) Cell(row, col int) []Node {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.cols) {
		return nil
	}
	cells := m.rows[row]
	if col >= len(cells) {
		return nil
	}
	return RenderInline(cells[col].Content)
}

// CellText renders cell (row, col) flattened to plain text.
func (m *TableModel) CellText(row, col int) string {
	if row < 0 || row >= len(m.rows) || col < 0 || col >= len(m.cols) {
		return ""
	}
	cells := m.rows[row]
	if col >= len(cells) {
		return ""
	}
	return plainText(cells[col].Content)
}
