// Package header renders the dashboard's navigation header bar.
package header

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/castdeck/castdeck/internal/ui/styles"
)

// Model holds the header state.
type Model struct {
	brand   string
	items   []string
	width   int
	profile string // Display name shown on the right
	live    bool
}

// New creates a header with the given brand mark and nav items.
func New(brand string, items []string) Model {
	return Model{brand: brand, items: items}
}

// SetWidth updates the render width.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// SetProfile updates the display name shown on the right edge.
func (m Model) SetProfile(name string) Model {
	m.profile = name
	return m
}

// SetLive toggles the live indicator.
func (m Model) SetLive(live bool) Model {
	m.live = live
	return m
}

// View renders the header bar.
func (m Model) View() string {
	brandStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.AccentColor)

	itemStyle := lipgloss.NewStyle().
		Foreground(styles.TextSecondaryColor).
		Padding(0, 1)

	left := brandStyle.Render(m.brand)
	for _, item := range m.items {
		left += itemStyle.Render(item)
	}

	var right string
	if m.live {
		right += lipgloss.NewStyle().Bold(true).Foreground(styles.LiveColor).Render("● LIVE") + "  "
	}
	if m.profile != "" {
		right += lipgloss.NewStyle().Foreground(styles.TextPrimaryColor).Render(m.profile)
	}

	gap := m.width - lipgloss.Width(left) - lipgloss.Width(right)
	if gap < 1 {
		gap = 1
	}

	bar := left + strings.Repeat(" ", gap) + right
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		BorderForeground(styles.BorderDefaultColor).
		Width(m.width).
		Render(bar)
}
