package table

import (
	"fmt"
	"strings"

	"github.com/beevik/etree"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/arthur-debert/liveout/pkg/logging"
	"github.com/arthur-debert/liveout/pkg/style"
	"github.com/arthur-debert/liveout/pkg/types"
)

// Styled wraps a Table with terminal presentation. It is the reference
// Styler: backends that cannot run the styled rendering unwrap it with
// Data or ask for the markup form with HTML.
type Styled struct {
	table  *Table
	header lipgloss.Style
	cell   lipgloss.Style
}

var (
	_ types.Styler = (*Styled)(nil)
	_ fmt.Stringer = (*Styled)(nil)
)

// Option adjusts a Styled table.
type Option func(*Styled)

// WithHeaderStyle overrides the header row style.
func WithHeaderStyle(s lipgloss.Style) Option {
	return func(st *Styled) { st.header = s }
}

// WithCellStyle overrides the data cell style.
func WithCellStyle(s lipgloss.Style) Option {
	return func(st *Styled) { st.cell = s }
}

// NewStyled wraps t with the theme's table styles.
func NewStyled(t *Table, opts ...Option) *Styled {
	st := &Styled{
		table:  t,
		header: style.GetStyle("table.header"),
		cell:   style.GetStyle("table.cell"),
	}
	for _, opt := range opts {
		opt(st)
	}
	return st
}

// Data returns the wrapped plain table.
func (s *Styled) Data() types.Tabular {
	return s.table
}

// String renders the styled terminal form: the same grid as the plain
// table with header and cell styles applied after padding, so the
// columns stay aligned whatever the styles add.
func (s *Styled) String() string {
	if len(s.table.columns) == 0 {
		return ""
	}

	widths := s.table.widths()
	var b strings.Builder
	b.WriteString(s.renderRow(s.table.columns, widths, s.header))
	for _, row := range s.table.rows {
		b.WriteString("\n")
		b.WriteString(s.renderRow(row, widths, s.cell))
	}
	return b.String()
}

func (s *Styled) renderRow(cells []string, widths []int, sty lipgloss.Style) string {
	parts := make([]string, len(cells))
	for i, cell := range cells {
		padded := cell
		if i < len(cells)-1 {
			padded = runewidth.FillRight(cell, widths[i])
		}
		parts[i] = sty.Render(padded)
	}
	return strings.Join(parts, "  ")
}

// HTML renders the table as a markup document for surfaces that accept
// markup but cannot run the terminal rendering.
func (s *Styled) HTML() types.HTML {
	doc := etree.NewDocument()
	tbl := doc.CreateElement("table")

	thead := tbl.CreateElement("thead")
	headRow := thead.CreateElement("tr")
	for _, col := range s.table.columns {
		headRow.CreateElement("th").SetText(col)
	}

	tbody := tbl.CreateElement("tbody")
	for _, row := range s.table.rows {
		dataRow := tbody.CreateElement("tr")
		for _, cell := range row {
			dataRow.CreateElement("td").SetText(cell)
		}
	}

	doc.Indent(2)
	markup, err := doc.WriteToString()
	if err != nil {
		logging.GetLogger("table").Warn().Err(err).Msg("markup rendering failed")
		return ""
	}
	return types.HTML(markup)
}
