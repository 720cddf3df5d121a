package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type helpItem struct {
	key  string
	desc string
}

type helpSection struct {
	title string
	items []helpItem
}

// renderHelp renders the help overlay.
func (m Model) renderHelp() string {
	styles := m.theme.Styles()

	sections := []helpSection{
		{
			title: "Search",
			items: []helpItem{
				{"enter", "Submit the claim or question"},
				{"tab/shift+tab", "Cycle focus (query/filters/results)"},
				{"esc", "Back to the query box"},
			},
		},
		{
			title: "Filters",
			items: []helpItem{
				{"←/→ or h/l", "Move between source types"},
				{"space", "Toggle the highlighted filter"},
			},
		},
		{
			title: "Results",
			items: []helpItem{
				{"j/k", "Select next/previous card"},
				{"g/G", "Jump to top/bottom"},
				{"ctrl+d/u", "Scroll half a page"},
			},
		},
		{
			title: "General",
			items: []helpItem{
				{"ctrl+t", "Cycle theme"},
				{"f1", "Toggle help"},
				{"ctrl+c", "Quit"},
			},
		},
	}

	var b strings.Builder

	b.WriteString(styles.Text.Bold(true).Render("Keyboard Shortcuts"))
	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render(strings.Repeat("─", 30)))
	b.WriteString("\n\n")

	for i, section := range sections {
		b.WriteString(styles.AccentText.Bold(true).Render(section.title))
		b.WriteString("\n")
		for _, item := range section.items {
			key := styles.WarningText.Render(padRight(item.key, 14))
			b.WriteString("  " + key + styles.MutedText.Render(item.desc))
			b.WriteString("\n")
		}
		if i < len(sections)-1 {
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	b.WriteString(styles.FaintText.Render("Press any key to close"))

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, b.String())
}

func padRight(value string, width int) string {
	if len(value) >= width {
		return value
	}
	return value + strings.Repeat(" ", width-len(value))
}
