package formmodal

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/castdeck/castdeck/internal/ui/shared/overlay"
	"github.com/castdeck/castdeck/internal/ui/styles"
)

// View renders the form surface.
func (m Model) View() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(styles.OverlayTitleColor)

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.config.Title))
	b.WriteString("\n")

	for i := range m.fields {
		b.WriteString("\n")
		b.WriteString(m.renderField(i))
	}

	b.WriteString("\n")
	b.WriteString(m.renderButtons())

	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(styles.OverlayBorderColor).
		Padding(1, 2)
	if m.config.MinWidth > 0 {
		boxStyle = boxStyle.Width(m.config.MinWidth)
	}

	return boxStyle.Render(b.String())
}

// Overlay renders the form centered on top of the given background.
func (m Model) Overlay(bg string) string {
	return overlay.Composite(m.View(), bg, m.width, m.height)
}

func (m Model) renderField(i int) string {
	fs := &m.fields[i]
	focused := m.focusedIndex == i

	labelStyle := styles.FieldLabelStyle
	if focused {
		labelStyle = labelStyle.Foreground(styles.BorderFocusColor)
	}

	var body string
	switch fs.config.Type {
	case FieldTypeText:
		body = fs.textInput.View()
	case FieldTypeToggle:
		body = renderToggle(fs.on, focused)
	}

	line := labelStyle.Render(fs.config.Label) + "  " + body

	if msg, ok := m.errors[fs.config.Key]; ok {
		line += "\n" + styles.FieldErrorStyle.Render(msg)
	} else if fs.config.Hint != "" && focused {
		line += "\n" + styles.HintStyle.Render(fs.config.Hint)
	}

	return line
}

func (m Model) renderButtons() string {
	submit := renderButton(m.config.SubmitLabel, styles.AccentColor,
		m.focusedIndex == -1 && m.focusedButton == 0)
	cancel := renderButton("Cancel", styles.TextMutedColor,
		m.focusedIndex == -1 && m.focusedButton == 1)
	return lipgloss.JoinHorizontal(lipgloss.Top, submit, "  ", cancel)
}

func renderToggle(on, focused bool) string {
	style := lipgloss.NewStyle().Foreground(styles.TextMutedColor)
	label := "off"
	if on {
		style = style.Foreground(styles.StatusSuccessColor)
		label = "on"
	}
	if focused {
		style = style.Bold(true)
	}
	return style.Render("[" + label + "]")
}

func renderButton(label string, color lipgloss.TerminalColor, focused bool) string {
	style := lipgloss.NewStyle().Padding(0, 2).Foreground(color)
	if focused {
		style = style.Reverse(true).Bold(true)
	}
	return style.Render(label)
}
