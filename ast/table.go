package ast

import "strings"

// Table is a block grid of rows. Row and cell joining is the table's own
// formatting rule; cell contents still render through Render.
type Table struct {
	BaseNode
}

// NewTable creates an empty table; append table-row children to fill it.
func NewTable(id string) *Table {
	t := &Table{}
	t.init(t, id, KindTable)
	return t
}

func (t *Table) rows() []*TableRow {
	var rows []*TableRow
	for _, c := range t.children {
		if r, ok := c.(*TableRow); ok {
			rows = append(rows, r)
		}
	}
	return rows
}

func (t *Table) columnCount() int {
	max := 0
	for _, r := range t.rows() {
		if n := len(r.Children()); n > max {
			max = n
		}
	}
	return max
}

// LaTeX renders a tabular environment with one column spec per column.
func (t *Table) LaTeX(o *Options) string {
	var sb strings.Builder
	sb.WriteString("\\begin{tabular}{" + strings.Repeat("c", t.columnCount()) + "}\n")
	rows := t.rows()
	for i, r := range rows {
		sb.WriteString(r.LaTeX(o))
		if i < len(rows)-1 {
			sb.WriteString(" \\\\\n")
		}
	}
	sb.WriteString("\n\\end{tabular}")
	return sb.String()
}

// Markdown renders a pipe table; the first row doubles as the header.
func (t *Table) Markdown(o *Options) string {
	var sb strings.Builder
	for i, r := range t.rows() {
		sb.WriteString(r.Markdown(o))
		sb.WriteString("\n")
		if i == 0 {
			sb.WriteString("|")
			for range r.Children() {
				sb.WriteString(" --- |")
			}
			sb.WriteString("\n")
		}
	}
	return strings.TrimSuffix(sb.String(), "\n")
}

// CopyText renders tab-separated rows.
func (t *Table) CopyText(o *Options) string {
	var lines []string
	for _, r := range t.rows() {
		lines = append(lines, r.CopyText(o))
	}
	return strings.Join(lines, "\n")
}

// TableRow is one row of a table.
type TableRow struct {
	BaseNode
}

// NewTableRow creates an empty row; append table-cell children to fill it.
func NewTableRow(id string) *TableRow {
	r := &TableRow{}
	r.init(r, id, KindTableRow)
	return r
}

// LaTeX joins the cells with column separators.
func (r *TableRow) LaTeX(o *Options) string {
	parts := make([]string, 0, len(r.children))
	for _, c := range r.children {
		parts = append(parts, c.LaTeX(o))
	}
	return strings.Join(parts, " & ")
}

// Markdown renders a pipe-delimited row with newlines flattened away.
func (r *TableRow) Markdown(o *Options) string {
	var sb strings.Builder
	sb.WriteString("|")
	for _, c := range r.children {
		text := strings.ReplaceAll(c.Markdown(o), "\n", " ")
		sb.WriteString(" " + text + " |")
	}
	return sb.String()
}

// CopyText joins the cells with tabs.
func (r *TableRow) CopyText(o *Options) string {
	parts := make([]string, 0, len(r.children))
	for _, c := range r.children {
		parts = append(parts, c.CopyText(o))
	}
	return strings.Join(parts, "\t")
}

// TableCell is one cell of a table row; its children are the cell content.
type TableCell struct {
	BaseNode
	RowSpan int
	ColSpan int
}

// NewTableCell creates an empty cell spanning one row and column.
func NewTableCell(id string) *TableCell {
	c := &TableCell{RowSpan: 1, ColSpan: 1}
	c.init(c, id, KindTableCell)
	return c
}

// Data converts the node back to its tagged source form.
func (c *TableCell) Data() NodeData {
	d := c.baseData()
	d.RowSpan = c.RowSpan
	d.ColSpan = c.ColSpan
	return d
}
