package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/mwhitfield/sleuth/internal/finder"
)

// renderResults renders the success state: a count line plus the card list
// viewport. Exactly len(evidence_cards) cards are rendered; total_results is
// display-only and may disagree with the card count.
func (m Model) renderResults(height int) string {
	styles := m.theme.Styles()
	state := m.session.State()
	result := state.Result

	if result == nil || len(result.EvidenceCards) == 0 {
		notice := styles.MutedText.Render("No evidence found for " + fmt.Sprintf("%q", state.Query) + ".")
		hint := styles.FaintText.Render("Try rephrasing the claim or clearing source filters.")
		return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
			lipgloss.JoinVertical(lipgloss.Center, notice, "", hint))
	}

	count := fmt.Sprintf("%d evidence cards", len(result.EvidenceCards))
	if result.TotalResults != len(result.EvidenceCards) {
		count = fmt.Sprintf("%d evidence cards (%d results reported)", len(result.EvidenceCards), result.TotalResults)
	}
	countLine := styles.MutedText.Render(" " + count)

	return lipgloss.JoinVertical(lipgloss.Left, countLine, m.resultsViewport.View())
}

// renderCardList builds the viewport content for all cards and the first
// content line of each card, used to keep the selection visible.
func (m Model) renderCardList(width int) (string, []int) {
	cards := m.cards()
	if len(cards) == 0 {
		return "", nil
	}

	var b strings.Builder
	offsets := make([]int, 0, len(cards))
	line := 0

	for i, card := range cards {
		block := m.renderCard(card, width, i == m.selectedCard)
		offsets = append(offsets, line)
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(block)
		line += strings.Count(block, "\n") + 2 // block lines + separator
	}

	return b.String(), offsets
}

// renderCard renders one evidence card.
func (m Model) renderCard(card finder.EvidenceCard, width int, selected bool) string {
	styles := m.theme.Styles()

	gutterColor := m.theme.BorderMuted
	if selected {
		gutterColor = m.theme.BorderFocus
	}
	gutter := lipgloss.NewStyle().Foreground(lipgloss.Color(gutterColor)).Render("▌ ")
	inner := width - 2
	if inner < 20 {
		inner = 20
	}

	var b strings.Builder

	// Title line: relation marker, title, relevance percentage.
	pct := fmt.Sprintf("%d%%", scorePercent(card.RelevanceScore))
	icon := styles.RelationStyle(card.RelationToClaim).Render(relationIcon(card.RelationToClaim))
	titleWidth := inner - lipgloss.Width(pct) - 4
	titleStyle := styles.Text.Bold(true)
	if selected {
		titleStyle = styles.Selected.Bold(true)
	}
	title := titleStyle.Render(truncate(firstLine(card.Title), titleWidth))
	pad := inner - 2 - lipgloss.Width(title) - lipgloss.Width(pct)
	if pad < 1 {
		pad = 1
	}
	b.WriteString(gutter + icon + " " + title + strings.Repeat(" ", pad) + styles.AccentText.Render(pct))
	b.WriteString("\n")

	// Source line: domain plus source-type badge.
	domain := styles.FaintText.Render(domainOf(card.Link))
	badge := styles.SourceBadge(card.SourceType).Render(strings.ToUpper(card.SourceType))
	b.WriteString(gutter + "  " + domain + "  " + badge)
	b.WriteString("\n")

	// Relation label as returned by the service, colored by classification.
	if rel := strings.TrimSpace(card.RelationToClaim); rel != "" {
		b.WriteString(gutter + "  " + styles.RelationStyle(rel).Render(truncate(rel, inner-2)))
		b.WriteString("\n")
	}

	// Snippet, then the longer analysis description.
	textWidth := inner - 2
	if snippet := strings.TrimSpace(card.Snippet); snippet != "" {
		b.WriteString(prefixLines(styles.MutedText.Width(textWidth).Render(snippet), gutter+"  "))
		b.WriteString("\n")
	}
	if desc := strings.TrimSpace(card.Description); desc != "" {
		b.WriteString(prefixLines(styles.Text.Width(textWidth).Render(desc), gutter+"  "))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// prefixLines prepends prefix to every line of block.
func prefixLines(block, prefix string) string {
	lines := strings.Split(block, "\n")
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return strings.Join(lines, "\n")
}

// renderWelcome fills the content area before the first search.
func (m Model) renderWelcome(height int) string {
	styles := m.theme.Styles()

	lines := []string{
		styles.Text.Bold(true).Render("Find evidence for any claim"),
		"",
		styles.MutedText.Render("Type a claim or question above and press enter."),
		styles.MutedText.Render("Evidence cards show how each source relates to it."),
		"",
		styles.FaintText.Render(`Try: "Is coffee healthy?" or "Remote work increases productivity"`),
	}

	return lipgloss.Place(m.width, height, lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center, lines...))
}
