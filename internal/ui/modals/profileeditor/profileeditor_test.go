package profileeditor

import (
	"errors"
	"fmt"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/castdeck/castdeck/internal/profile"
)

// stubSource is an in-memory resource source recording releases.
type stubSource struct {
	next     int
	released []profile.Handle
	fail     bool
}

func (s *stubSource) Create(string) (profile.Handle, error) {
	if s.fail {
		return "", errors.New("create failed")
	}
	s.next++
	return profile.Handle(fmt.Sprintf("%sstub-%d", profile.HandleScheme, s.next)), nil
}

func (s *stubSource) Release(h profile.Handle) {
	s.released = append(s.released, h)
}

type fixture struct {
	kv     *profile.MemKV
	store  *profile.Store
	source *stubSource
	editor Model
}

func newFixture(t *testing.T, defaults profile.Values) *fixture {
	t.Helper()
	f := &fixture{kv: profile.NewMemKV(), source: &stubSource{}}
	f.store = profile.NewStore(f.kv)
	f.editor = New(Options{
		Defaults:  defaults,
		Store:     f.store,
		Resources: profile.NewResourceManager(f.source),
		Debounce:  10 * time.Millisecond,
	}).SetSize(80, 24)
	return f
}

// runCmd executes a command tree and returns the flattened messages.
func runCmd(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	var out []tea.Msg
	var walk func(tea.Msg)
	walk = func(msg tea.Msg) {
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				if c != nil {
					walk(c())
				}
			}
			return
		}
		if msg != nil {
			out = append(out, msg)
		}
	}
	walk(cmd())
	return out
}

func countClosed(msgs []tea.Msg) int {
	n := 0
	for _, msg := range msgs {
		if _, ok := msg.(ClosedMsg); ok {
			n++
		}
	}
	return n
}

func TestNew_MergesDraftOverDefaults(t *testing.T) {
	kv := profile.NewMemKV()
	store := profile.NewStore(kv)
	store.Write(profile.Values{Name: "Drafted", Bio: "wip"})

	editor := New(Options{
		Defaults:  profile.Values{Name: "Host", SocialLink: "https://x.com/host"},
		Store:     store,
		Resources: profile.NewResourceManager(&stubSource{}),
	})
	defer editor.Teardown()

	v := editor.Controller().Values()
	require.Equal(t, "Drafted", v.Name)
	require.Equal(t, "https://x.com/host", v.SocialLink)
}

func TestLifecycle_OpeningToOpen(t *testing.T) {
	f := newFixture(t, profile.Values{})
	require.Equal(t, PhaseOpening, f.editor.Phase())

	for _, msg := range runCmd(f.editor.Init()) {
		f.editor, _ = f.editor.Update(msg)
	}
	require.Equal(t, PhaseOpen, f.editor.Phase())
}

func TestDismiss_ClosesExactlyOnce(t *testing.T) {
	f := newFixture(t, profile.Values{})

	var cmd tea.Cmd
	f.editor, cmd = f.editor.Update(dismissMsg{})
	require.Equal(t, PhaseClosing, f.editor.Phase())
	require.Equal(t, 1, countClosed(runCmd(cmd)))

	// Repeated dismissal signals after the first are ignored.
	f.editor, cmd = f.editor.Update(dismissMsg{})
	require.Empty(t, runCmd(cmd))
}

func TestSave_EmptyName_ShowsErrorAndStaysOpen(t *testing.T) {
	f := newFixture(t, profile.Values{})

	var cmd tea.Cmd
	f.editor, cmd = f.editor.Update(saveMsg{})

	require.NotEqual(t, PhaseClosing, f.editor.Phase(), "modal must remain open")
	require.Empty(t, runCmd(cmd))
	require.Contains(t, f.editor.View(), "Name cannot be empty.")
}

func TestSave_Success_NotifiesAndCloses(t *testing.T) {
	f := newFixture(t, profile.Values{})

	f.editor, _ = f.editor.Update(fieldChangeMsg{key: profile.FieldName, value: "Nova"})

	var cmd tea.Cmd
	f.editor, cmd = f.editor.Update(saveMsg{})
	msgs := runCmd(cmd)

	require.Equal(t, 1, countClosed(msgs))
	var notified bool
	for _, msg := range msgs {
		if n, ok := msg.(NotifyMsg); ok {
			notified = true
			require.Equal(t, "Profile updated", n.Notification.Title)
		}
	}
	require.True(t, notified, "successful save must request a notification")

	d := f.store.Read()
	require.True(t, d.Present)
	require.Equal(t, "Nova", *d.Name)
}

func TestBackdropClick_Dismisses(t *testing.T) {
	f := newFixture(t, profile.Values{})

	var cmd tea.Cmd
	f.editor, cmd = f.editor.Update(tea.MouseMsg{
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 0, Y: 0,
	})

	require.Equal(t, PhaseClosing, f.editor.Phase())
	require.Equal(t, 1, countClosed(runCmd(cmd)))
}

func TestSurfaceClick_DoesNotDismiss(t *testing.T) {
	f := newFixture(t, profile.Values{})

	rect := f.editor.form.SurfaceRect()
	var cmd tea.Cmd
	f.editor, cmd = f.editor.Update(tea.MouseMsg{
		Action: tea.MouseActionPress, Button: tea.MouseButtonLeft,
		X: rect.X + 1, Y: rect.Y + 1,
	})

	require.NotEqual(t, PhaseClosing, f.editor.Phase())
	require.Empty(t, runCmd(cmd))
}

func TestEditClearsFieldError(t *testing.T) {
	f := newFixture(t, profile.Values{})

	f.editor, _ = f.editor.Update(saveMsg{})
	require.Contains(t, f.editor.View(), "Name cannot be empty.")

	f.editor, _ = f.editor.Update(fieldChangeMsg{key: profile.FieldName, value: "N"})
	require.NotContains(t, f.editor.View(), "Name cannot be empty.")
}

func TestAvatarPreview_ReplaceAndTeardown(t *testing.T) {
	f := newFixture(t, profile.Values{})

	f.editor, _ = f.editor.Update(fieldChangeMsg{key: "avatar", value: "face.png"})
	f.editor, _ = f.editor.Update(tea.KeyMsg{Type: tea.KeyCtrlU})

	h := f.editor.Controller().Values().AvatarHandle
	require.True(t, h.Owned())

	f.editor = f.editor.Teardown()
	f.editor = f.editor.Teardown()
	require.Equal(t, []profile.Handle{h}, f.source.released, "teardown releases exactly once")
}

func TestAvatarPreview_FailureKeepsPrior(t *testing.T) {
	f := newFixture(t, profile.Values{})

	f.editor, _ = f.editor.Update(fieldChangeMsg{key: "avatar", value: "face.png"})
	f.editor, _ = f.editor.Update(tea.KeyMsg{Type: tea.KeyCtrlU})
	prior := f.editor.Controller().Values().AvatarHandle

	f.source.fail = true
	f.editor, _ = f.editor.Update(fieldChangeMsg{key: "avatar", value: "bad.png"})
	f.editor, _ = f.editor.Update(tea.KeyMsg{Type: tea.KeyCtrlU})

	require.Equal(t, prior, f.editor.Controller().Values().AvatarHandle,
		"failed preview creation keeps the prior handle displayed")
	require.Contains(t, f.editor.View(), "Could not load that image.")
}
