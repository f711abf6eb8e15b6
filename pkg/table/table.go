// Package table is a minimal tabular value for liveout: ordered string
// columns, string rows, a plain text rendering. It exists so the
// structural affordances backends recognize (Tabular, Styler) have a
// concrete carrier; anything fancier belongs to the caller.
package table

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/arthur-debert/liveout/pkg/types"
)

// Table is an ordered grid of strings with named columns.
type Table struct {
	columns []string
	rows    [][]string
}

var (
	_ types.Tabular = (*Table)(nil)
	_ fmt.Stringer  = (*Table)(nil)
)

// New creates a table with the given column names.
func New(columns ...string) *Table {
	return &Table{columns: columns}
}

// Append adds a row. Missing cells are padded with empty strings,
// extra cells are dropped, so the grid stays rectangular.
func (t *Table) Append(cells ...string) *Table {
	row := make([]string, len(t.columns))
	copy(row, cells)
	t.rows = append(t.rows, row)
	return t
}

// Rows returns the number of data rows.
func (t *Table) Rows() int {
	return len(t.rows)
}

// Cols returns the number of columns.
func (t *Table) Cols() int {
	return len(t.columns)
}

// Columns returns a copy of the column names.
func (t *Table) Columns() []string {
	out := make([]string, len(t.columns))
	copy(out, t.columns)
	return out
}

// Cell returns the cell at the given row and column.
func (t *Table) Cell(row, col int) string {
	return t.rows[row][col]
}

// String renders the table as a plain text grid: header row, data
// rows, columns padded to their widest cell with a two-space gutter.
func (t *Table) String() string {
	if len(t.columns) == 0 {
		return ""
	}

	widths := t.widths()
	var b strings.Builder
	b.WriteString(renderRow(t.columns, widths))
	for _, row := range t.rows {
		b.WriteString("\n")
		b.WriteString(renderRow(row, widths))
	}
	return b.String()
}

// widths returns the display width of each column, accounting for
// wide runes in headers and cells.
func (t *Table) widths() []int {
	widths := make([]int, len(t.columns))
	for i, col := range t.columns {
		widths[i] = runewidth.StringWidth(col)
	}
	for _, row := range t.rows {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}
	return widths
}

func renderRow(cells []string, widths []int) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		if i == len(cells)-1 {
			parts[i] = cell
			continue
		}
		parts[i] = runewidth.FillRight(cell, widths[i])
	}
	return strings.TrimRight(strings.Join(parts, "  "), " ")
}
