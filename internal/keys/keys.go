// Package keys defines the keybindings used across castdeck modes.
package keys

import "github.com/charmbracelet/bubbles/key"

// CommonKeyMap holds bindings shared by every mode.
type CommonKeyMap struct {
	Quit key.Binding
}

// Common is the shared keymap instance.
var Common = CommonKeyMap{
	Quit: key.NewBinding(
		key.WithKeys("q", "ctrl+c"),
		key.WithHelp("q", "quit"),
	),
}

// DashboardKeyMap holds bindings for the dashboard view.
type DashboardKeyMap struct {
	OpenProfile     key.Binding
	ToggleHighlight key.Binding
}

// Dashboard is the dashboard keymap instance.
var Dashboard = DashboardKeyMap{
	OpenProfile: key.NewBinding(
		key.WithKeys("p"),
		key.WithHelp("p", "profile settings"),
	),
	ToggleHighlight: key.NewBinding(
		key.WithKeys("h"),
		key.WithHelp("h", "highlight card"),
	),
}

// EditorKeyMap holds bindings the profile editor intercepts before the
// form sees them. Field navigation and toggling live inside formmodal.
type EditorKeyMap struct {
	Save    key.Binding
	Preview key.Binding
	Dismiss key.Binding
}

// Editor is the profile editor keymap instance.
var Editor = EditorKeyMap{
	Save: key.NewBinding(
		key.WithKeys("ctrl+s"),
		key.WithHelp("ctrl+s", "save"),
	),
	Preview: key.NewBinding(
		key.WithKeys("ctrl+u"),
		key.WithHelp("ctrl+u", "preview avatar"),
	),
	Dismiss: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "close"),
	),
}
