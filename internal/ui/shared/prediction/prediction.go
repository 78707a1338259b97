// Package prediction renders the dashboard's prediction card: a
// question, yes/no split with a bar, and the pool size.
package prediction

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"

	"github.com/castdeck/castdeck/internal/ui/styles"
)

// Card is the content shown on the prediction card.
type Card struct {
	Question   string
	Detail     string
	YesPercent int // 0..100; No gets the remainder
	Pool       string
}

// Model holds the card state.
type Model struct {
	card        Card
	width       int
	highlighted bool
}

// New creates a prediction card view.
func New(card Card) Model {
	return Model{card: card}
}

// SetWidth updates the card width.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// SetHighlighted toggles the highlight accent. The dashboard only
// enables it while streamer mode is on.
func (m Model) SetHighlighted(on bool) Model {
	m.highlighted = on
	return m
}

// Highlighted reports the highlight state.
func (m Model) Highlighted() bool {
	return m.highlighted
}

// View renders the card.
func (m Model) View() string {
	inner := m.width - 6
	if inner < 16 {
		inner = 16
	}

	questionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.TextPrimaryColor)

	detailStyle := lipgloss.NewStyle().
		Foreground(styles.TextDescriptionColor)

	yes := m.card.YesPercent
	if yes < 0 {
		yes = 0
	}
	if yes > 100 {
		yes = 100
	}
	no := 100 - yes

	yesStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.YesColor)
	noStyle := lipgloss.NewStyle().Bold(true).Foreground(styles.NoColor)
	split := yesStyle.Render(fmt.Sprintf("YES %d%%", yes)) +
		lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("  /  ") +
		noStyle.Render(fmt.Sprintf("NO %d%%", no))

	sections := []string{
		questionStyle.Render(wordwrap.String(m.card.Question, inner)),
	}
	if m.card.Detail != "" {
		sections = append(sections, detailStyle.Render(wordwrap.String(m.card.Detail, inner)))
	}
	sections = append(sections, split, renderBar(yes, inner))
	if m.card.Pool != "" {
		sections = append(sections,
			lipgloss.NewStyle().Foreground(styles.TextMutedColor).Render("Pool: "+m.card.Pool))
	}

	borderColor := styles.BorderDefaultColor
	if m.highlighted {
		borderColor = styles.AccentColor
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(borderColor).
		Padding(1, 2).
		Width(m.width).
		Render(strings.Join(sections, "\n\n"))
}

// renderBar draws the yes/no ratio as a filled bar.
func renderBar(yesPercent, width int) string {
	if width < 2 {
		width = 2
	}
	filled := width * yesPercent / 100

	yesPart := lipgloss.NewStyle().Foreground(styles.YesColor).
		Render(strings.Repeat("█", filled))
	noPart := lipgloss.NewStyle().Foreground(styles.NoColor).
		Render(strings.Repeat("░", width-filled))
	return yesPart + noPart
}
