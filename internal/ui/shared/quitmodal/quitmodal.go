// Package quitmodal provides the quit confirmation modal for the
// dashboard. It wraps modal.Model with visibility management and a
// Result enum so the caller decides its own exit behavior.
package quitmodal

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/castdeck/castdeck/internal/ui/shared/modal"
)

// Result indicates the outcome of modal interaction.
type Result int

const (
	ResultNone   Result = iota // No action needed (modal still visible or not visible)
	ResultQuit                 // User confirmed quit
	ResultCancel               // User cancelled/dismissed
)

// Model represents the quit confirmation modal state.
type Model struct {
	modal   modal.Model
	visible bool
	width   int
	height  int
}

// New creates a quit modal. It starts hidden; call Show to display it.
func New() Model {
	return Model{
		modal: modal.New(modal.Config{
			Title:          "Leave castdeck?",
			Message:        "The dashboard will close.",
			ConfirmLabel:   "Quit",
			ConfirmVariant: modal.ButtonDanger,
		}),
	}
}

// Show makes the modal visible and applies cached dimensions.
func (m *Model) Show() {
	m.visible = true
	m.modal.SetSize(m.width, m.height)
}

// Hide dismisses the modal.
func (m *Model) Hide() {
	m.visible = false
}

// IsVisible returns whether the modal is currently displayed.
func (m Model) IsVisible() bool {
	return m.visible
}

// SetSize updates viewport dimensions for overlay centering.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	if m.visible {
		m.modal.SetSize(width, height)
	}
}

// Update processes messages and reports the interaction result.
// Ctrl+C force-quits while the modal is visible; Esc dismisses.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd, Result) {
	if !m.visible {
		return m, nil, ResultNone
	}

	switch msg.(type) {
	case modal.SubmitMsg:
		m.visible = false
		return m, nil, ResultQuit
	case modal.CancelMsg:
		m.visible = false
		return m, nil, ResultCancel
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.Type {
		case tea.KeyCtrlC:
			m.visible = false
			return m, nil, ResultQuit
		case tea.KeyEscape:
			m.visible = false
			return m, nil, ResultCancel
		}
	}

	var cmd tea.Cmd
	m.modal, cmd = m.modal.Update(msg)
	return m, cmd, ResultNone
}

// Overlay renders the modal on top of the given background.
func (m Model) Overlay(bg string) string {
	return m.modal.Overlay(bg)
}

// Init returns the initial command.
func (m Model) Init() tea.Cmd {
	return nil
}
