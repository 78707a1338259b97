package formmodal

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func textForm() Model {
	return New(FormConfig{
		Title: "Test Form",
		Fields: []FieldConfig{
			{Key: "field1", Type: FieldTypeText, Label: "Field 1"},
			{Key: "field2", Type: FieldTypeText, Label: "Field 2"},
		},
	})
}

// --- Focus Cycling Tests ---

func TestFocusCycling_Forward(t *testing.T) {
	m := textForm()

	if m.focusedIndex != 0 {
		t.Errorf("expected focused index 0, got %d", m.focusedIndex)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedIndex != 1 {
		t.Errorf("expected focused index 1, got %d", m.focusedIndex)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedIndex != -1 || m.focusedButton != 0 {
		t.Errorf("expected submit button focus, got index %d button %d", m.focusedIndex, m.focusedButton)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedButton != 1 {
		t.Errorf("expected cancel button focus, got %d", m.focusedButton)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	if m.focusedIndex != 0 {
		t.Errorf("expected wrap to first field, got %d", m.focusedIndex)
	}
}

func TestFocusCycling_Reverse(t *testing.T) {
	m := textForm()

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focusedIndex != -1 || m.focusedButton != 1 {
		t.Errorf("expected cancel button focus, got index %d button %d", m.focusedIndex, m.focusedButton)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focusedButton != 0 {
		t.Errorf("expected submit button focus, got %d", m.focusedButton)
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if m.focusedIndex != 1 {
		t.Errorf("expected focused index 1, got %d", m.focusedIndex)
	}
}

func TestFirstFieldFocusedOnOpen(t *testing.T) {
	m := textForm()
	if !m.fields[0].textInput.Focused() {
		t.Error("expected first text input to be focused on open")
	}
}

// --- Value and Change Tests ---

func TestTyping_UpdatesValueAndEmitsChange(t *testing.T) {
	m := textForm()

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("N")})
	if got := m.Values()["field1"].(string); got != "N" {
		t.Errorf("expected field1 = %q, got %q", "N", got)
	}
	if cmd == nil {
		t.Fatal("expected a change command after typing")
	}

	found := false
	collectMsgs(cmd(), func(msg tea.Msg) {
		if change, ok := msg.(ChangeMsg); ok {
			found = true
			if change.Key != "field1" || change.Value.(string) != "N" {
				t.Errorf("unexpected ChangeMsg: %+v", change)
			}
		}
	})
	if !found {
		t.Error("expected ChangeMsg in command output")
	}
}

func TestToggle_FlipsAndEmitsChange(t *testing.T) {
	m := New(FormConfig{
		Title: "Toggles",
		Fields: []FieldConfig{
			{Key: "mode", Type: FieldTypeToggle, Label: "Mode", InitialOn: false},
		},
	})

	m, cmd := m.Update(tea.KeyMsg{Type: tea.KeySpace})
	if !m.Values()["mode"].(bool) {
		t.Error("expected toggle on after space")
	}
	if cmd == nil {
		t.Fatal("expected change command after toggle")
	}

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if m.Values()["mode"].(bool) {
		t.Error("expected toggle off after enter")
	}
}

// --- Submit / Cancel Tests ---

func TestSubmit_EmitsValuesThroughHook(t *testing.T) {
	var got map[string]any
	m := New(FormConfig{
		Title: "Hooked",
		Fields: []FieldConfig{
			{Key: "name", Type: FieldTypeText, Label: "Name", InitialValue: "Nova"},
		},
		OnSubmit: func(values map[string]any) tea.Msg {
			got = values
			return nil
		},
	})

	// Tab to submit button, press enter.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected submit command")
	}
	cmd()

	if got == nil {
		t.Fatal("expected OnSubmit to receive values")
	}
	if got["name"].(string) != "Nova" {
		t.Errorf("expected name Nova, got %v", got["name"])
	}
}

func TestEscape_Cancels(t *testing.T) {
	m := textForm()

	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatal("expected cancel command")
	}
	if _, ok := cmd().(CancelMsg); !ok {
		t.Errorf("expected CancelMsg, got %T", cmd())
	}
}

// --- Error Rendering Tests ---

func TestSetErrors_RendersInlineMessages(t *testing.T) {
	m := New(FormConfig{
		Title: "Errors",
		Fields: []FieldConfig{
			{Key: "name", Type: FieldTypeText, Label: "Name"},
		},
	})

	m = m.SetErrors(map[string]string{"name": "Name cannot be empty."})
	view := m.View()
	if !strings.Contains(view, "Name cannot be empty.") {
		t.Error("expected error message in view")
	}

	m = m.ClearError("name")
	if strings.Contains(m.View(), "Name cannot be empty.") {
		t.Error("expected error message cleared from view")
	}
}

// collectMsgs walks a possibly-batched command result.
func collectMsgs(msg tea.Msg, fn func(tea.Msg)) {
	if batch, ok := msg.(tea.BatchMsg); ok {
		for _, c := range batch {
			if c != nil {
				collectMsgs(c(), fn)
			}
		}
		return
	}
	fn(msg)
}
