// Package profileeditor provides the profile-settings editor modal. It
// wires the formmodal component to the profile core: field edits flow
// into the controller (error clearing, debounced draft writes), save
// runs validation and commit, and every dismissal path tears the
// session down exactly once.
package profileeditor

import (
	"time"

	"github.com/charmbracelet/bubbles/key"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/castdeck/castdeck/internal/keys"
	"github.com/castdeck/castdeck/internal/profile"
	"github.com/castdeck/castdeck/internal/ui/shared/formmodal"
)

// Phase is the editor's modal lifecycle state.
type Phase int

const (
	PhaseClosed Phase = iota
	PhaseOpening
	PhaseOpen
	PhaseClosing
)

// ClosedMsg tells the host to dismiss the editor. It is emitted exactly
// once per session, whatever the close path.
type ClosedMsg struct{}

// NotifyMsg asks the host to render a notification toast.
type NotifyMsg struct {
	Notification profile.Notification
}

// Internal messages.
type (
	openedMsg      struct{}
	fieldChangeMsg struct {
		key   string
		value any
	}
	saveMsg    struct{}
	dismissMsg struct{}
)

// Options configures the editor session.
type Options struct {
	// Defaults are host-supplied initial values; a restorable draft
	// overlays them on open.
	Defaults profile.Values

	// Store persists the draft. Required.
	Store *profile.Store

	// Resources manages the avatar preview. Required.
	Resources *profile.ResourceManager

	// Debounce overrides the controller's draft-write debounce.
	Debounce time.Duration
}

// sink collects controller callbacks fired synchronously during Update
// so they can be re-emitted as Bubble Tea messages.
type sink struct {
	closed bool
	notes  []profile.Notification
}

// Model holds the editor state.
type Model struct {
	ctrl  *profile.Controller
	form  formmodal.Model
	sink  *sink
	phase Phase

	avatarPath string // Pending path typed into the avatar field
}

// New opens an editor session: the controller merges defaults with the
// stored draft, and the form starts with focus on the name field.
func New(opts Options) Model {
	s := &sink{}
	ctrl := profile.NewController(profile.Options{
		Defaults:  opts.Defaults,
		Store:     opts.Store,
		Resources: opts.Resources,
		Debounce:  opts.Debounce,
		OnClose:   func() { s.closed = true },
		Notify:    func(n profile.Notification) { s.notes = append(s.notes, n) },
	})
	ctrl.Start()
	v := ctrl.Values()

	avatarHint := "current: none · ctrl+u to preview"
	if v.AvatarHandle != "" {
		avatarHint = "current: " + string(v.AvatarHandle) + " · ctrl+u to preview"
	}

	form := formmodal.New(formmodal.FormConfig{
		Title:    "Profile Settings",
		MinWidth: 56,
		Fields: []formmodal.FieldConfig{
			{
				Key:          profile.FieldName,
				Type:         formmodal.FieldTypeText,
				Label:        "Name",
				Placeholder:  "Display name",
				InitialValue: v.Name,
			},
			{
				Key:          profile.FieldBio,
				Type:         formmodal.FieldTypeText,
				Label:        "Bio",
				Placeholder:  "A line about you",
				MaxLength:    profile.BioMaxLen,
				InitialValue: v.Bio,
			},
			{
				Key:          profile.FieldSocialLink,
				Type:         formmodal.FieldTypeText,
				Label:        "Link",
				Placeholder:  "https://x.com/you",
				InitialValue: v.SocialLink,
			},
			{
				Key:   "avatar",
				Type:  formmodal.FieldTypeText,
				Label: "Avatar",
				Hint:  avatarHint,
			},
			{
				Key:       "streamerMode",
				Type:      formmodal.FieldTypeToggle,
				Label:     "Streamer mode",
				Hint:      "space to toggle",
				InitialOn: v.StreamerMode,
			},
		},
		SubmitLabel: "Save",
		OnChange: func(key string, value any) tea.Msg {
			return fieldChangeMsg{key: key, value: value}
		},
		OnSubmit: func(map[string]any) tea.Msg { return saveMsg{} },
		OnCancel: func() tea.Msg { return dismissMsg{} },
	})

	return Model{
		ctrl:  ctrl,
		form:  form,
		sink:  s,
		phase: PhaseOpening,
	}
}

// Init completes the open transition and starts the cursor blink.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.form.Init(), func() tea.Msg { return openedMsg{} })
}

// Phase returns the lifecycle phase.
func (m Model) Phase() Phase {
	return m.phase
}

// Controller exposes the underlying form state controller.
func (m Model) Controller() *profile.Controller {
	return m.ctrl
}

// SetSize sets viewport dimensions for overlay centering.
func (m Model) SetSize(width, height int) Model {
	m.form = m.form.SetSize(width, height)
	return m
}

// Update handles messages. While the editor is open it owns every
// input event; the host must not deliver them elsewhere.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if m.phase == PhaseClosed || m.phase == PhaseClosing {
		return m, nil
	}

	switch msg := msg.(type) {
	case openedMsg:
		if m.phase == PhaseOpening {
			m.phase = PhaseOpen
		}
		return m, nil

	case fieldChangeMsg:
		m.applyChange(msg)
		m.form = m.form.ClearError(msg.key)
		return m, nil

	case saveMsg:
		errs := m.ctrl.Save()
		if !errs.Empty() {
			m.form = m.form.SetErrors(errs)
			return m, nil
		}
		return m.drain()

	case dismissMsg:
		m.ctrl.RequestClose()
		return m.drain()

	case tea.MouseMsg:
		// A press outside the modal surface dismisses it.
		if msg.Action == tea.MouseActionPress && !m.form.SurfaceRect().Contains(msg.X, msg.Y) {
			m.ctrl.RequestClose()
			return m.drain()
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Editor.Save):
			return m.Update(saveMsg{})
		case key.Matches(msg, keys.Editor.Preview):
			return m.replaceAvatar()
		case key.Matches(msg, keys.Editor.Dismiss):
			return m.Update(dismissMsg{})
		}
	}

	var cmd tea.Cmd
	m.form, cmd = m.form.Update(msg)
	return m, cmd
}

// applyChange routes a form edit into the controller.
func (m *Model) applyChange(msg fieldChangeMsg) {
	switch msg.key {
	case profile.FieldName:
		m.ctrl.SetName(msg.value.(string))
	case profile.FieldBio:
		m.ctrl.SetBio(msg.value.(string))
	case profile.FieldSocialLink:
		m.ctrl.SetSocialLink(msg.value.(string))
	case "streamerMode":
		m.ctrl.SetStreamerMode(msg.value.(bool))
	case "avatar":
		m.avatarPath = msg.value.(string)
	}
}

// replaceAvatar swaps the preview for the typed path. On failure the
// prior preview stays and the avatar field shows an inline error.
func (m Model) replaceAvatar() (Model, tea.Cmd) {
	if m.avatarPath == "" {
		return m, nil
	}
	if err := m.ctrl.ReplaceAvatar(m.avatarPath); err != nil {
		m.form = m.form.SetErrors(map[string]string{"avatar": "Could not load that image."})
		return m, nil
	}
	m.form = m.form.ClearError("avatar")
	return m, nil
}

// drain turns controller callbacks into host messages. The close
// transition runs at most once: it stops the controller (cancelling
// the pending draft write and releasing the session preview) before
// telling the host.
func (m Model) drain() (Model, tea.Cmd) {
	var cmds []tea.Cmd
	for _, n := range m.sink.notes {
		note := n
		cmds = append(cmds, func() tea.Msg { return NotifyMsg{Notification: note} })
	}
	m.sink.notes = nil

	if m.sink.closed && m.phase != PhaseClosing {
		m.phase = PhaseClosing
		m.ctrl.Stop()
		cmds = append(cmds, func() tea.Msg { return ClosedMsg{} })
	}
	return m, tea.Batch(cmds...)
}

// Teardown releases the session unconditionally, for hosts unmounting
// the editor without a dismissal signal.
func (m Model) Teardown() Model {
	m.ctrl.Stop()
	m.phase = PhaseClosed
	return m
}

// View renders the editor surface.
func (m Model) View() string {
	return m.form.View()
}

// Overlay renders the editor on top of a background view.
func (m Model) Overlay(background string) string {
	return m.form.Overlay(background)
}
