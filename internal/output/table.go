package output

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// TableStyle defines the style for table output.
type TableStyle struct {
	Border      lipgloss.Border
	BorderColor lipgloss.Color
	HeaderStyle lipgloss.Style
	CellStyle   lipgloss.Style
}

// DefaultTableStyle returns the default table style.
func DefaultTableStyle() TableStyle {
	return TableStyle{
		Border:      lipgloss.NormalBorder(),
		BorderColor: ColorDimGray,
		HeaderStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
		CellStyle:   lipgloss.NewStyle(),
	}
}

// Table represents a styled table.
type Table struct {
	headers []string
	rows    [][]string
	style   TableStyle
}

// NewTable creates a new table with the given headers.
func NewTable(headers ...string) *Table {
	return &Table{
		headers: headers,
		rows:    make([][]string, 0),
		style:   DefaultTableStyle(),
	}
}

// Row adds a row to the table.
func (t *Table) Row(cells ...string) *Table {
	t.rows = append(t.rows, cells)
	return t
}

// String renders the table as a string.
func (t *Table) String() string {
	tbl := table.New().
		Border(t.style.Border).
		BorderStyle(lipgloss.NewStyle().Foreground(t.style.BorderColor)).
		Headers(t.headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return t.style.HeaderStyle
			}
			return t.style.CellStyle
		})

	for _, row := range t.rows {
		tbl.Row(row...)
	}

	return tbl.String()
}

// PackageSummary is one row of the batch summary table.
type PackageSummary struct {
	Path        string
	BundleName  string
	Version     string
	APIWindow   string
	Permissions int
	Status      string
	Message     string
}

// RenderSummaryTable renders one row per parsed package.
func RenderSummaryTable(rows []PackageSummary) string {
	t := NewTable("PACKAGE", "BUNDLE", "VERSION", "API", "PERMS", "STATUS", "MESSAGE")
	for _, r := range rows {
		t.Row(r.Path, r.BundleName, r.Version, r.APIWindow, strconv.Itoa(r.Permissions),
			StatusStyle(r.Status).Render(r.Status), r.Message)
	}
	return t.String()
}
