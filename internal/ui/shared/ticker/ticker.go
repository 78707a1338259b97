// Package ticker renders a scrolling news banner. Headlines are joined
// into a loop and a window of it advances one cell per tick.
package ticker

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/castdeck/castdeck/internal/ui/styles"
)

// DefaultInterval is the marquee advance rate.
const DefaultInterval = 250 * time.Millisecond

const separator = "   •   "

// TickMsg advances the marquee by one cell.
type TickMsg struct{}

// Model holds the ticker state.
type Model struct {
	loop     []rune
	offset   int
	width    int
	interval time.Duration
}

// New creates a ticker over the given headlines.
func New(headlines []string) Model {
	var joined string
	if len(headlines) > 0 {
		joined = strings.Join(headlines, separator) + separator
	}
	return Model{loop: []rune(joined), interval: DefaultInterval}
}

// SetWidth updates the visible window width.
func (m Model) SetWidth(width int) Model {
	m.width = width
	return m
}

// SetInterval overrides the advance rate (used in tests).
func (m Model) SetInterval(d time.Duration) Model {
	m.interval = d
	return m
}

// Init starts the marquee when there is anything to scroll.
func (m Model) Init() tea.Cmd {
	if len(m.loop) == 0 {
		return nil
	}
	return m.tick()
}

// Update advances the marquee on each tick.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if _, ok := msg.(TickMsg); ok {
		if len(m.loop) > 0 {
			m.offset = (m.offset + 1) % len(m.loop)
		}
		return m, m.tick()
	}
	return m, nil
}

// Window returns the currently visible slice of the loop, wrapped
// around and clipped to the render width in display cells.
func (m Model) Window() string {
	if len(m.loop) == 0 || m.width <= 0 {
		return ""
	}

	var b strings.Builder
	cells := 0
	// The loop bound guards against zero-width runes never filling the
	// window.
	for i := 0; cells < m.width && i < len(m.loop)*8; i++ {
		r := m.loop[(m.offset+i)%len(m.loop)]
		w := runewidth.RuneWidth(r)
		if cells+w > m.width {
			break
		}
		b.WriteRune(r)
		cells += w
	}
	return b.String()
}

// View renders the banner row.
func (m Model) View() string {
	tag := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.StatusWarningColor).
		Render("NEWS ")

	body := lipgloss.NewStyle().
		Foreground(styles.TextSecondaryColor).
		Render(m.Window())

	return tag + body
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.interval, func(time.Time) tea.Msg {
		return TickMsg{}
	})
}
