// Package dashboard implements the root castdeck model: the header,
// countdown, news ticker, and prediction card widgets, plus the profile
// editor and quit modals layered on top.
//
// While a modal is visible every input event is routed to it first and
// the background widgets receive none; only animation ticks keep
// flowing. That gives the editor capture semantics for Esc and pointer
// events and suspends background interaction for its visible lifetime.
package dashboard

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/castdeck/castdeck/internal/config"
	"github.com/castdeck/castdeck/internal/keys"
	"github.com/castdeck/castdeck/internal/profile"
	"github.com/castdeck/castdeck/internal/ui/modals/profileeditor"
	"github.com/castdeck/castdeck/internal/ui/shared/countdown"
	"github.com/castdeck/castdeck/internal/ui/shared/header"
	"github.com/castdeck/castdeck/internal/ui/shared/prediction"
	"github.com/castdeck/castdeck/internal/ui/shared/quitmodal"
	"github.com/castdeck/castdeck/internal/ui/shared/ticker"
	"github.com/castdeck/castdeck/internal/ui/shared/toaster"
	"github.com/castdeck/castdeck/internal/ui/styles"
)

// Model is the dashboard state.
type Model struct {
	cfg      config.Config
	store    *profile.Store
	previews profile.ResourceSource

	header     header.Model
	countdown  countdown.Model
	ticker     ticker.Model
	prediction prediction.Model
	toaster    toaster.Model
	quit       quitmodal.Model

	editor  *profileeditor.Model
	current profile.Values // Values shown by background widgets
	width   int
	height  int
}

// New creates the dashboard.
func New(cfg config.Config, store *profile.Store, previews profile.ResourceSource) Model {
	m := Model{
		cfg:      cfg,
		store:    store,
		previews: previews,
		header:   header.New("castdeck", []string{"Markets", "News", "Schedule"}),
		countdown: countdown.New(
			cfg.Countdown.Label,
			cfg.CountdownTarget(),
		),
		ticker: ticker.New(cfg.News),
		prediction: prediction.New(prediction.Card{
			Question:   cfg.Prediction.Question,
			Detail:     cfg.Prediction.Detail,
			YesPercent: cfg.Prediction.YesPercent,
			Pool:       cfg.Prediction.Pool,
		}),
		toaster: toaster.New(),
		quit:    quitmodal.New(),
	}
	m.current = m.defaults().Merged(store.Read())
	return m
}

// defaults maps the configured profile defaults to editor values.
func (m Model) defaults() profile.Values {
	d := m.cfg.Defaults
	return profile.Values{
		AvatarHandle: profile.Handle(d.AvatarURL),
		Name:         d.Name,
		Bio:          d.Bio,
		SocialLink:   d.TwitterLink,
		StreamerMode: d.StreamerMode,
	}
}

// Init starts the widget tickers.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.countdown.Init(), m.ticker.Init())
}

// EditorOpen reports whether the profile editor is visible.
func (m Model) EditorOpen() bool {
	return m.editor != nil
}

// Update handles messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.setSize(msg.Width, msg.Height), nil

	// Animation ticks keep flowing regardless of modal state.
	case countdown.TickMsg:
		var cmd tea.Cmd
		m.countdown, cmd = m.countdown.Update(msg)
		m.header = m.header.SetLive(m.countdown.Live())
		return m, cmd

	case ticker.TickMsg:
		var cmd tea.Cmd
		m.ticker, cmd = m.ticker.Update(msg)
		return m, cmd

	case toaster.ExpireMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Update(msg)
		return m, cmd

	case profileeditor.NotifyMsg:
		var cmd tea.Cmd
		m.toaster, cmd = m.toaster.Show(
			msg.Notification.Title, msg.Notification.Description, toaster.StyleSuccess)
		return m, cmd

	case profileeditor.ClosedMsg:
		m.editor = nil
		// Pick up whatever the session left in the store.
		m.current = m.defaults().Merged(m.store.Read())
		m.header = m.header.SetProfile(m.current.Name)
		if !m.current.StreamerMode {
			m.prediction = m.prediction.SetHighlighted(false)
		}
		return m, nil
	}

	// Topmost surface first: quit modal, then the editor.
	if m.quit.IsVisible() {
		var cmd tea.Cmd
		var result quitmodal.Result
		m.quit, cmd, result = m.quit.Update(msg)
		switch result {
		case quitmodal.ResultQuit:
			return m, tea.Quit
		case quitmodal.ResultCancel:
			return m, nil
		}
		return m, cmd
	}

	if m.editor != nil {
		editor, cmd := m.editor.Update(msg)
		m.editor = &editor
		return m, cmd
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		return m.handleKey(keyMsg)
	}
	return m, nil
}

// handleKey processes dashboard-level keys (no modal visible).
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Common.Quit):
		m.quit.Show()
		return m, nil

	case key.Matches(msg, keys.Dashboard.OpenProfile):
		return m.openEditor()

	case key.Matches(msg, keys.Dashboard.ToggleHighlight):
		if m.current.StreamerMode {
			m.prediction = m.prediction.SetHighlighted(!m.prediction.Highlighted())
		}
		return m, nil
	}
	return m, nil
}

// openEditor starts a profile editor session over the dashboard.
func (m Model) openEditor() (tea.Model, tea.Cmd) {
	editor := profileeditor.New(profileeditor.Options{
		Defaults:  m.defaults(),
		Store:     m.store,
		Resources: profile.NewResourceManager(m.previews),
		Debounce:  m.cfg.Debounce(),
	}).SetSize(m.width, m.height)
	m.editor = &editor
	return m, editor.Init()
}

func (m Model) setSize(width, height int) Model {
	m.width = width
	m.height = height
	m.header = m.header.SetWidth(width).SetProfile(m.current.Name)
	m.ticker = m.ticker.SetWidth(width - 6)
	m.prediction = m.prediction.SetWidth(min(width-4, 64))
	m.quit.SetSize(width, height)
	if m.editor != nil {
		editor := m.editor.SetSize(width, height)
		m.editor = &editor
	}
	return m
}

// View renders the dashboard with any modal overlaid.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	rows := []string{m.header.View()}

	if m.toaster.Visible() {
		rows = append(rows, m.toaster.View())
	}

	rows = append(rows,
		"",
		lipgloss.NewStyle().PaddingLeft(2).Render(m.countdown.View()),
		"",
		lipgloss.NewStyle().PaddingLeft(2).Render(m.prediction.View()),
		"",
		m.ticker.View(),
		styles.HintStyle.Render("  p profile · h highlight · q quit"),
	)

	bg := lipgloss.JoinVertical(lipgloss.Left, rows...)

	if m.editor != nil {
		return m.editor.Overlay(bg)
	}
	if m.quit.IsVisible() {
		return m.quit.Overlay(bg)
	}
	return bg
}
