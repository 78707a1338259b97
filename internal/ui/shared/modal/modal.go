// Package modal provides a generic confirm/cancel modal component used
// as the base for purpose-built modals like quitmodal.
package modal

import (
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/castdeck/castdeck/internal/ui/shared/overlay"
	"github.com/castdeck/castdeck/internal/ui/styles"
)

// ButtonVariant selects the confirm button styling.
type ButtonVariant int

const (
	ButtonDefault ButtonVariant = iota
	ButtonDanger
)

// SubmitMsg is sent when the user confirms.
type SubmitMsg struct{}

// CancelMsg is sent when the user cancels.
type CancelMsg struct{}

// Config controls modal content and appearance.
type Config struct {
	Title          string
	Message        string
	ConfirmLabel   string // Defaults to "Confirm"
	CancelLabel    string // Defaults to "Cancel"
	ConfirmVariant ButtonVariant
}

// Model is the confirm modal state.
type Model struct {
	config        Config
	focusedButton int // 0 = confirm, 1 = cancel
	width, height int
}

// New creates a modal with the given configuration. Focus starts on the
// cancel button so a stray Enter never confirms a destructive action.
func New(cfg Config) Model {
	if cfg.ConfirmLabel == "" {
		cfg.ConfirmLabel = "Confirm"
	}
	if cfg.CancelLabel == "" {
		cfg.CancelLabel = "Cancel"
	}
	return Model{config: cfg, focusedButton: 1}
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}

// SetSize updates viewport dimensions for overlay centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles key messages. Enter resolves according to button
// focus; Esc always cancels.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch keyMsg.String() {
	case "esc":
		return m, func() tea.Msg { return CancelMsg{} }

	case "enter":
		if m.focusedButton == 0 {
			return m, func() tea.Msg { return SubmitMsg{} }
		}
		return m, func() tea.Msg { return CancelMsg{} }

	case "left", "h", "shift+tab":
		m.focusedButton = 0

	case "right", "l", "tab":
		m.focusedButton = 1
	}

	return m, nil
}

// View renders the modal surface.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor)

	messageStyle := lipgloss.NewStyle().
		Foreground(styles.TextDescriptionColor)

	confirmColor := styles.AccentColor
	if m.config.ConfirmVariant == ButtonDanger {
		confirmColor = styles.StatusErrorColor
	}

	confirm := renderButton(m.config.ConfirmLabel, confirmColor, m.focusedButton == 0)
	cancel := renderButton(m.config.CancelLabel, styles.TextMutedColor, m.focusedButton == 1)
	buttons := lipgloss.JoinHorizontal(lipgloss.Top, confirm, "  ", cancel)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		titleStyle.Render(m.config.Title),
		"",
		messageStyle.Render(m.config.Message),
		"",
		buttons,
	)

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(1, 3)

	return boxStyle.Render(content)
}

// Overlay renders the modal centered on top of the given background.
func (m Model) Overlay(bg string) string {
	return overlay.Composite(m.View(), bg, m.width, m.height)
}

func renderButton(label string, color lipgloss.TerminalColor, focused bool) string {
	style := lipgloss.NewStyle().Padding(0, 2).Foreground(color)
	if focused {
		style = style.Reverse(true).Bold(true)
	}
	return style.Render(label)
}
