// Package formmodal provides a modal form component with focus cycling,
// per-field inline errors, and change notifications, used by the
// profile editor.
package formmodal

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/castdeck/castdeck/internal/ui/shared/overlay"
)

// SubmitMsg is sent on submit when no OnSubmit hook is configured.
// Values contains all field values keyed by FieldConfig.Key: string for
// text fields, bool for toggles.
type SubmitMsg struct {
	Values map[string]any
}

// CancelMsg is sent when the form is cancelled (Esc or the Cancel
// button) and no OnCancel hook is configured.
type CancelMsg struct{}

// ChangeMsg is sent after a field edit when no OnChange hook is
// configured.
type ChangeMsg struct {
	Key   string
	Value any
}

// FormConfig describes the form.
type FormConfig struct {
	Title       string
	Fields      []FieldConfig
	SubmitLabel string // Defaults to "Save"
	MinWidth    int

	// OnChange produces a custom message after a field edit.
	OnChange func(key string, value any) tea.Msg
	// OnSubmit produces a custom message when the form is submitted.
	OnSubmit func(values map[string]any) tea.Msg
	// OnCancel produces a custom message when the form is cancelled.
	OnCancel func() tea.Msg
}

// Model is the form modal state. All methods return a new Model rather
// than modifying the receiver.
type Model struct {
	config        FormConfig
	fields        []fieldState
	focusedIndex  int // Index into fields (-1 = on buttons)
	focusedButton int // 0 = submit, 1 = cancel (when focusedIndex == -1)
	errors        map[string]string
	width, height int
}

// New creates a form modal. Focus starts on the first field, or the
// submit button when there are none.
func New(cfg FormConfig) Model {
	if cfg.SubmitLabel == "" {
		cfg.SubmitLabel = "Save"
	}
	m := Model{
		config: cfg,
		fields: make([]fieldState, len(cfg.Fields)),
		errors: make(map[string]string),
	}

	for i, fieldCfg := range cfg.Fields {
		m.fields[i] = newFieldState(fieldCfg)
	}

	if len(m.fields) > 0 && m.fields[0].config.Type == FieldTypeText {
		m.fields[0].textInput.Focus()
	}
	if len(m.fields) == 0 {
		m.focusedIndex = -1
	}

	return m
}

// Init returns a cursor blink command when the first focused field is a
// text input.
func (m Model) Init() tea.Cmd {
	return m.blinkCmd()
}

// SetSize sets viewport dimensions for overlay centering.
func (m Model) SetSize(w, h int) Model {
	m.width = w
	m.height = h
	return m
}

// SetErrors replaces the per-field error set wholesale (after a failed
// submit).
func (m Model) SetErrors(errs map[string]string) Model {
	m.errors = make(map[string]string, len(errs))
	for k, v := range errs {
		m.errors[k] = v
	}
	return m
}

// ClearError removes the error for one field.
func (m Model) ClearError(key string) Model {
	delete(m.errors, key)
	return m
}

// Values returns all field values keyed by FieldConfig.Key.
func (m Model) Values() map[string]any {
	values := make(map[string]any, len(m.fields))
	for i := range m.fields {
		values[m.fields[i].config.Key] = m.fields[i].value()
	}
	return values
}

// SurfaceRect returns the placement of the rendered modal within the
// viewport, for backdrop hit-testing.
func (m Model) SurfaceRect() overlay.Rect {
	view := m.View()
	return overlay.Center(lipgloss.Width(view), lipgloss.Height(view), m.width, m.height)
}

// Update handles messages for the form modal.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	}

	// Forward non-key messages (blink ticks) to the focused text input.
	if fs := m.focusedText(); fs != nil {
		var cmd tea.Cmd
		fs.textInput, cmd = fs.textInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg processes keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m, m.cancelCmd()

	case "tab", "ctrl+n":
		m = m.nextField()
		return m, m.blinkCmd()

	case "shift+tab", "ctrl+p":
		m = m.prevField()
		return m, m.blinkCmd()

	case "enter":
		return m.handleEnter()

	case "left", "right":
		if m.focusedIndex == -1 {
			m.focusedButton = 1 - m.focusedButton
			return m, nil
		}

	case " ":
		if m.focusedIndex >= 0 && m.fields[m.focusedIndex].config.Type == FieldTypeToggle {
			return m.toggleFocused()
		}
	}

	// Forward to focused text input for character input.
	if fs := m.focusedText(); fs != nil {
		before := fs.textInput.Value()
		var cmd tea.Cmd
		fs.textInput, cmd = fs.textInput.Update(msg)
		if fs.textInput.Value() != before {
			return m, tea.Batch(cmd, m.changeCmd(fs.config.Key, fs.textInput.Value()))
		}
		return m, cmd
	}
	return m, nil
}

// handleEnter toggles, advances, or resolves the buttons.
func (m Model) handleEnter() (Model, tea.Cmd) {
	if m.focusedIndex >= 0 {
		if m.fields[m.focusedIndex].config.Type == FieldTypeToggle {
			return m.toggleFocused()
		}
		m = m.nextField()
		return m, m.blinkCmd()
	}

	switch m.focusedButton {
	case 0:
		return m.submit()
	case 1:
		return m, m.cancelCmd()
	}
	return m, nil
}

// submit hands the current values to the submit hook. Validation is the
// caller's concern; errors come back through SetErrors.
func (m Model) submit() (Model, tea.Cmd) {
	values := m.Values()
	if m.config.OnSubmit != nil {
		return m, func() tea.Msg { return m.config.OnSubmit(values) }
	}
	return m, func() tea.Msg { return SubmitMsg{Values: values} }
}

func (m Model) toggleFocused() (Model, tea.Cmd) {
	fs := &m.fields[m.focusedIndex]
	fs.on = !fs.on
	return m, m.changeCmd(fs.config.Key, fs.on)
}

func (m Model) cancelCmd() tea.Cmd {
	if m.config.OnCancel != nil {
		return func() tea.Msg { return m.config.OnCancel() }
	}
	return func() tea.Msg { return CancelMsg{} }
}

func (m Model) changeCmd(key string, value any) tea.Cmd {
	if m.config.OnChange != nil {
		return func() tea.Msg { return m.config.OnChange(key, value) }
	}
	return func() tea.Msg { return ChangeMsg{Key: key, Value: value} }
}

// focusedText returns the focused field's text input, or nil.
func (m *Model) focusedText() *fieldState {
	if m.focusedIndex >= 0 && m.focusedIndex < len(m.fields) {
		fs := &m.fields[m.focusedIndex]
		if fs.config.Type == FieldTypeText {
			return fs
		}
	}
	return nil
}

// nextField moves focus to the next field or button.
func (m Model) nextField() Model {
	if m.focusedIndex >= 0 {
		if fs := m.focusedText(); fs != nil {
			fs.textInput.Blur()
		}
		if m.focusedIndex < len(m.fields)-1 {
			m.focusedIndex++
			if fs := m.focusedText(); fs != nil {
				fs.textInput.Focus()
			}
		} else {
			m.focusedIndex = -1
			m.focusedButton = 0
		}
		return m
	}

	if m.focusedButton == 0 {
		m.focusedButton = 1
	} else if len(m.fields) > 0 {
		m.focusedIndex = 0
		if fs := m.focusedText(); fs != nil {
			fs.textInput.Focus()
		}
	} else {
		m.focusedButton = 0
	}
	return m
}

// prevField moves focus to the previous field or button.
func (m Model) prevField() Model {
	if m.focusedIndex >= 0 {
		if fs := m.focusedText(); fs != nil {
			fs.textInput.Blur()
		}
		if m.focusedIndex > 0 {
			m.focusedIndex--
			if fs := m.focusedText(); fs != nil {
				fs.textInput.Focus()
			}
		} else {
			m.focusedIndex = -1
			m.focusedButton = 1
		}
		return m
	}

	if m.focusedButton == 1 {
		m.focusedButton = 0
	} else if len(m.fields) > 0 {
		m.focusedIndex = len(m.fields) - 1
		if fs := m.focusedText(); fs != nil {
			fs.textInput.Focus()
		}
	} else {
		m.focusedButton = 1
	}
	return m
}

// blinkCmd returns the blink command when the focused field is a text
// input.
func (m Model) blinkCmd() tea.Cmd {
	if m.focusedText() != nil {
		return textinput.Blink
	}
	return nil
}
