// Package countdown renders a ticking countdown toward a target time.
package countdown

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/castdeck/castdeck/internal/ui/styles"
)

// TickMsg advances the countdown display.
type TickMsg struct {
	Now time.Time
}

// Model holds the countdown state.
type Model struct {
	label  string
	target time.Time
	now    time.Time
}

// New creates a countdown toward target.
func New(label string, target time.Time) Model {
	return Model{label: label, target: target, now: time.Now()}
}

// Init starts the per-second tick.
func (m Model) Init() tea.Cmd {
	return tick()
}

// Update handles tick messages and keeps the ticker running.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if t, ok := msg.(TickMsg); ok {
		m.now = t.Now
		return m, tick()
	}
	return m, nil
}

// Live reports whether the target has passed.
func (m Model) Live() bool {
	return !m.now.Before(m.target)
}

// Remaining returns the time left, floored at zero.
func (m Model) Remaining() time.Duration {
	d := m.target.Sub(m.now)
	if d < 0 {
		return 0
	}
	return d
}

// View renders the countdown as DD:HH:MM:SS, or the live state once
// the target has passed.
func (m Model) View() string {
	labelStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor)

	if m.Live() {
		live := lipgloss.NewStyle().Bold(true).Foreground(styles.LiveColor)
		return labelStyle.Render(m.label) + " " + live.Render("LIVE NOW")
	}

	d := m.Remaining()
	days := int(d.Hours()) / 24
	hours := int(d.Hours()) % 24
	mins := int(d.Minutes()) % 60
	secs := int(d.Seconds()) % 60

	digits := lipgloss.NewStyle().Bold(true).Foreground(styles.TextPrimaryColor)
	return labelStyle.Render(m.label) + " " +
		digits.Render(fmt.Sprintf("%02d:%02d:%02d:%02d", days, hours, mins, secs))
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Now: t}
	})
}
