package output

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// Table collects rows for listing output. On a terminal it renders with
// lipgloss borders; otherwise it renders tab-separated lines so the output
// can be piped into cut or awk.
type Table struct {
	headers []string
	rows    [][]string
	plain   bool
}

// NewTable creates a table with the given headers. Plain rendering is
// chosen automatically when stdout is not a terminal.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		plain:   !IsTTY(),
	}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// Plain forces tab-separated rendering on or off.
func (t *Table) Plain(plain bool) *Table {
	t.plain = plain
	return t
}

// Len returns the number of rows.
func (t *Table) Len() int {
	return len(t.rows)
}

// String renders the table.
func (t *Table) String() string {
	if t.plain {
		return t.plainString()
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(ColorHeader).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorDimGray)).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}

func (t *Table) plainString() string {
	var sb strings.Builder
	sb.WriteString(strings.Join(t.headers, "\t"))
	sb.WriteString("\n")
	for _, row := range t.rows {
		sb.WriteString(strings.Join(row, "\t"))
		sb.WriteString("\n")
	}
	return sb.String()
}
