package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// renderFilterRow renders the source-type filter chips. Callers skip this row
// entirely when the catalog is empty (including after a failed catalog load).
func (m Model) renderFilterRow() string {
	styles := m.theme.Styles()

	parts := []string{styles.MutedText.Render(" Sources:")}
	for i, option := range m.catalog {
		mark := "[ ]"
		style := styles.FaintText
		if m.filters.IsSelected(option.Value) {
			mark = "[x]"
			style = styles.AccentText
		}
		chip := mark + " " + option.Label
		if m.focus == focusFilters && i == m.filterCursor {
			chip = styles.Selected.Render(chip)
		} else {
			chip = style.Render(chip)
		}
		parts = append(parts, chip)
	}

	row := strings.Join(parts, "  ")
	return lipgloss.NewStyle().Width(m.width).Render(row)
}
