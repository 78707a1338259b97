// Package styles defines the shared lipgloss color palette and common
// styles for the castdeck TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Text colors.
var (
	TextPrimaryColor     = lipgloss.AdaptiveColor{Light: "#1A1A2E", Dark: "#EAEAEA"}
	TextSecondaryColor   = lipgloss.AdaptiveColor{Light: "#3D3D5C", Dark: "#B8B8D0"}
	TextDescriptionColor = lipgloss.AdaptiveColor{Light: "#555577", Dark: "#9999B5"}
	TextMutedColor       = lipgloss.AdaptiveColor{Light: "#8888A0", Dark: "#666680"}
)

// Accent and status colors.
var (
	AccentColor        = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#9D79FF"}
	StatusSuccessColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	StatusErrorColor   = lipgloss.AdaptiveColor{Light: "#D94A4A", Dark: "#FF6B6B"}
	StatusWarningColor = lipgloss.AdaptiveColor{Light: "#C7A500", Dark: "#F5D973"}
	LiveColor          = lipgloss.AdaptiveColor{Light: "#D94A4A", Dark: "#FF5C5C"}
)

// Prediction card colors.
var (
	YesColor = lipgloss.AdaptiveColor{Light: "#43BF6D", Dark: "#73F59F"}
	NoColor  = lipgloss.AdaptiveColor{Light: "#D94A4A", Dark: "#FF6B6B"}
)

// Border and overlay colors.
var (
	BorderDefaultColor  = lipgloss.AdaptiveColor{Light: "#C5C5D6", Dark: "#44445A"}
	BorderFocusColor    = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#9D79FF"}
	OverlayBorderColor  = lipgloss.AdaptiveColor{Light: "#7D56F4", Dark: "#9D79FF"}
	OverlayTitleColor   = lipgloss.AdaptiveColor{Light: "#1A1A2E", Dark: "#EAEAEA"}
	SelectionBackground = lipgloss.AdaptiveColor{Light: "#E8E0FF", Dark: "#2E2E48"}
)

// Common styles.
var (
	ErrorStyle = lipgloss.NewStyle().Foreground(StatusErrorColor)

	FieldLabelStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Bold(true)

	FieldErrorStyle = lipgloss.NewStyle().
			Foreground(StatusErrorColor).
			Italic(true)

	HintStyle = lipgloss.NewStyle().
			Foreground(TextMutedColor).
			Italic(true)

	StatusBarStyle = lipgloss.NewStyle().
			Foreground(TextSecondaryColor).
			Background(SelectionBackground)
)
