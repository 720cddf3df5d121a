package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitfield/sleuth/internal/session"
)

// renderHeader renders the top status bar.
func (m Model) renderHeader() string {
	styles := m.theme.Styles()

	parts := []string{styles.Logo.Render("sleuth"), styles.FaintText.Render("evidence finder")}

	if m.healthKnown {
		if m.apiReachable {
			parts = append(parts, styles.SuccessText.Render("● API"))
		} else {
			parts = append(parts, styles.DangerText.Render("● API unreachable"))
		}
	}

	state := m.session.State()
	switch state.Phase {
	case session.PhaseLoading:
		parts = append(parts, styles.WarningText.Render("Searching "+fmt.Sprintf("%q", truncate(state.Query, 40))))
	case session.PhaseSuccess:
		if state.Result != nil {
			parts = append(parts, styles.MutedText.Render(fmt.Sprintf("%d results for %q",
				state.Result.TotalResults, truncate(state.Query, 40))))
		}
	case session.PhaseError:
		parts = append(parts, styles.DangerText.Render("Last search failed"))
	}

	return styles.Header.Width(m.width).Render(strings.Join(parts, "  "))
}

// renderQueryBox renders the bordered query input.
func (m Model) renderQueryBox() string {
	borderColor := m.theme.Border
	if m.focus == focusQuery {
		borderColor = m.theme.BorderFocus
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(m.width-2).
		Padding(0, 1)

	return box.Render(m.queryInput.View())
}

// renderFooter renders the key-hint bar, varying with focus.
func (m Model) renderFooter() string {
	styles := m.theme.Styles()

	hints := []string{"enter search", "tab focus"}
	switch m.focus {
	case focusFilters:
		hints = []string{"←/→ move", "space toggle", "tab focus"}
	case focusResults:
		hints = []string{"j/k move", "g/G top/bottom", "tab focus", "q quit"}
	}
	hints = append(hints, "ctrl+t theme", "f1 help", "ctrl+c quit")

	return styles.Footer.Width(m.width).Render(strings.Join(hints, "  ·  "))
}
