// Package toaster renders transient notification toasts. Toasts are
// requested by other components (e.g. a successful profile save) and
// expire on their own after a short interval.
package toaster

import (
	"time"

	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/castdeck/castdeck/internal/ui/styles"
)

// DefaultDuration is how long a toast stays visible.
const DefaultDuration = 3 * time.Second

// Style selects the toast accent.
type Style int

const (
	StyleInfo Style = iota
	StyleSuccess
	StyleError
)

// ExpireMsg dismisses the toast identified by Seq.
type ExpireMsg struct {
	Seq int
}

// Model holds the toaster state. Only the most recent toast is shown;
// a new toast supersedes the current one.
type Model struct {
	title    string
	message  string
	style    Style
	visible  bool
	seq      int
	duration time.Duration
}

// New creates an empty toaster.
func New() Model {
	return Model{duration: DefaultDuration}
}

// SetDuration overrides the visibility interval (used in tests).
func (m Model) SetDuration(d time.Duration) Model {
	m.duration = d
	return m
}

// Show displays a toast and returns the command that expires it.
func (m Model) Show(title, message string, style Style) (Model, tea.Cmd) {
	m.title = title
	m.message = message
	m.style = style
	m.visible = true
	m.seq++

	seq := m.seq
	d := m.duration
	return m, tea.Tick(d, func(time.Time) tea.Msg {
		return ExpireMsg{Seq: seq}
	})
}

// Update handles expiry. An ExpireMsg for a superseded toast is
// ignored so a fresh toast keeps its full duration.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if expire, ok := msg.(ExpireMsg); ok && expire.Seq == m.seq {
		m.visible = false
	}
	return m, nil
}

// Visible reports whether a toast is currently shown.
func (m Model) Visible() bool {
	return m.visible
}

// View renders the toast, or an empty string when none is visible.
func (m Model) View() string {
	if !m.visible {
		return ""
	}

	accent := styles.AccentColor
	switch m.style {
	case StyleSuccess:
		accent = styles.StatusSuccessColor
	case StyleError:
		accent = styles.StatusErrorColor
	}

	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(accent)
	messageStyle := lipgloss.NewStyle().Foreground(styles.TextDescriptionColor)

	content := titleStyle.Render(m.title)
	if m.message != "" {
		content = lipgloss.JoinVertical(lipgloss.Left, content, messageStyle.Render(m.message))
	}

	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent).
		Padding(0, 1).
		Render(content)
}
