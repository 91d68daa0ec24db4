package host

import (
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	countStyle  = cellStyle.Align(lipgloss.Right)
)

// RenderTable renders normalized strings and term counts of grouped rows.
// Returns empty string if there are no grouped rows.
func RenderTable(rows []Row) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Normalized", "Terms").
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col == 1:
				return countStyle
			default:
				return cellStyle
			}
		})

	n := 0
	for _, r := range rows {
		if r.Grouped {
			t.Row(r.Normalized, strconv.Itoa(len(r.Terms)))
			n++
		}
	}
	if n == 0 {
		return ""
	}
	return t.Render()
}
