package profile

import (
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// countingKV wraps MemKV and counts Set calls, for debounce assertions.
type countingKV struct {
	*MemKV
	mu   sync.Mutex
	sets int
}

func newCountingKV() *countingKV {
	return &countingKV{MemKV: NewMemKV()}
}

func (c *countingKV) Set(key, value string) error {
	c.mu.Lock()
	c.sets++
	c.mu.Unlock()
	return c.MemKV.Set(key, value)
}

func (c *countingKV) Sets() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.sets
}

type harness struct {
	kv       *countingKV
	store    *Store
	source   *fakeSource
	ctrl     *Controller
	closes   int
	notified []Notification
}

// newHarness builds a started controller with a short debounce for
// timing tests. Closes over the harness so callbacks record into it.
func newHarness(t *testing.T, defaults Values) *harness {
	t.Helper()
	h := &harness{kv: newCountingKV(), source: &fakeSource{}}
	h.store = NewStore(h.kv)
	h.ctrl = NewController(Options{
		Defaults:  defaults,
		Store:     h.store,
		Resources: NewResourceManager(h.source),
		Debounce:  30 * time.Millisecond,
		OnClose:   func() { h.closes++ },
		Notify:    func(n Notification) { h.notified = append(h.notified, n) },
	})
	h.ctrl.Start()
	t.Cleanup(h.ctrl.Stop)
	return h
}

func TestController_StartMergesDraftOverDefaults(t *testing.T) {
	kv := NewMemKV()
	store := NewStore(kv)
	store.Write(Values{Name: "Drafted", Bio: "wip bio"})

	ctrl := NewController(Options{
		Defaults:  Values{Name: "Host", Bio: "host bio", SocialLink: "https://x.com/host"},
		Store:     store,
		Resources: NewResourceManager(&fakeSource{}),
		OnClose:   func() {},
	})
	ctrl.Start()
	defer ctrl.Stop()

	v := ctrl.Values()
	require.Equal(t, "Drafted", v.Name, "draft should win over host defaults")
	require.Equal(t, "wip bio", v.Bio)
	require.Equal(t, "https://x.com/host", v.SocialLink)
}

func TestController_StartTruncatesOverlongDraftBio(t *testing.T) {
	kv := NewMemKV()
	store := NewStore(kv)
	store.Write(Values{Name: "Nova", Bio: strings.Repeat("x", 140)})

	ctrl := NewController(Options{
		Store:     store,
		Resources: NewResourceManager(&fakeSource{}),
		OnClose:   func() {},
	})
	ctrl.Start()
	defer ctrl.Stop()

	require.Len(t, []rune(ctrl.Values().Bio), 100, "initial state must have bio truncated to exactly 100")
}

func TestController_DebounceCoalescesBurst(t *testing.T) {
	h := newHarness(t, Values{})

	// Rapid edits, each well inside the debounce window of the last.
	for _, name := range []string{"N", "No", "Nov", "Nova"} {
		h.ctrl.SetName(name)
		time.Sleep(5 * time.Millisecond)
	}

	// No write may land mid-burst.
	require.Equal(t, 0, h.kv.Sets(), "trailing-edge debounce must not write mid-burst")

	// After the quiet period, exactly one write with the final state.
	require.Eventually(t, func() bool { return h.kv.Sets() == 1 },
		500*time.Millisecond, 5*time.Millisecond)

	d := h.store.Read()
	require.True(t, d.Present)
	require.Equal(t, "Nova", *d.Name, "persisted snapshot must be the state after the last edit")

	// And it stays at one; no second write follows.
	time.Sleep(60 * time.Millisecond)
	require.Equal(t, 1, h.kv.Sets())
}

func TestController_StopCancelsPendingWrite(t *testing.T) {
	h := newHarness(t, Values{})

	h.ctrl.SetName("Nova")
	h.ctrl.Stop()

	time.Sleep(60 * time.Millisecond)
	require.Equal(t, 0, h.kv.Sets(), "teardown must cancel the pending debounce")
}

func TestController_SetFieldClearsOnlyThatError(t *testing.T) {
	h := newHarness(t, Values{Name: "", Bio: strings.Repeat("b", 101)})

	errs := h.ctrl.Save()
	require.Contains(t, errs, FieldName)
	require.Contains(t, errs, FieldBio)

	h.ctrl.SetName("Nova")

	remaining := h.ctrl.FieldErrors()
	require.NotContains(t, remaining, FieldName, "editing a field clears its error")
	require.Contains(t, remaining, FieldBio, "other fields keep their errors")
}

func TestController_SaveEmptyName_BlocksCommit(t *testing.T) {
	h := newHarness(t, Values{Name: "", Bio: "", SocialLink: "", StreamerMode: false})

	errs := h.ctrl.Save()

	require.Equal(t, Errors{FieldName: "Name cannot be empty."}, errs)
	require.Equal(t, 0, h.closes, "modal must remain open on validation failure")
	require.Empty(t, h.notified)
	require.Equal(t, 0, h.kv.Sets(), "failed save must not persist")
}

func TestController_SaveScenario_BioTooLongThenRetry(t *testing.T) {
	h := newHarness(t, Values{})

	h.ctrl.SetName("Nova")
	h.ctrl.SetBio(strings.Repeat("b", 105))
	h.ctrl.SetSocialLink("https://x.com/nova")

	errs := h.ctrl.Save()
	require.Equal(t, Errors{FieldBio: "Bio must be ≤100 characters."}, errs, "error only on bio")
	require.Equal(t, 0, h.closes)

	h.ctrl.SetBio(strings.Repeat("b", 100))
	errs = h.ctrl.Save()
	require.True(t, errs.Empty())

	d := h.store.Read()
	require.True(t, d.Present)
	require.Len(t, []rune(*d.Bio), 100)
	require.Equal(t, "Nova", *d.Name)
	require.Equal(t, 1, h.closes, "close callback invoked exactly once")
	require.Len(t, h.notified, 1, "exactly one success notification per save")
}

func TestController_SaveTrimsNameAndLink(t *testing.T) {
	h := newHarness(t, Values{})

	h.ctrl.SetName("  Nova  ")
	h.ctrl.SetSocialLink("  https://x.com/nova  ")

	errs := h.ctrl.Save()
	require.True(t, errs.Empty())

	v := h.ctrl.Values()
	require.Equal(t, "Nova", v.Name)
	require.Equal(t, "https://x.com/nova", v.SocialLink)
}

func TestController_DraftSurvivesSave(t *testing.T) {
	h := newHarness(t, Values{})

	h.ctrl.SetName("Nova")
	require.True(t, h.ctrl.Save().Empty())
	h.ctrl.Stop()

	// The draft slot is never deleted; the next session resumes from it.
	d := h.store.Read()
	require.True(t, d.Present)
	require.Equal(t, "Nova", *d.Name)
}

func TestController_RequestCloseIdempotent(t *testing.T) {
	h := newHarness(t, Values{})

	h.ctrl.RequestClose()
	h.ctrl.RequestClose()

	require.Equal(t, 1, h.closes, "repeated dismissal signals after the first are ignored")
}

func TestController_SaveAfterCloseDoesNotCloseAgain(t *testing.T) {
	h := newHarness(t, Values{Name: "Nova"})

	h.ctrl.RequestClose()
	require.True(t, h.ctrl.Save().Empty())

	require.Equal(t, 1, h.closes)
}

func TestController_ReplaceAvatar_UpdatesValuesAndReleasesOnStop(t *testing.T) {
	h := newHarness(t, Values{})

	require.NoError(t, h.ctrl.ReplaceAvatar("face.png"))
	first := h.ctrl.Values().AvatarHandle
	require.True(t, first.Owned())

	require.NoError(t, h.ctrl.ReplaceAvatar("other.png"))
	second := h.ctrl.Values().AvatarHandle
	require.Equal(t, []Handle{first}, h.source.released)

	h.ctrl.Stop()
	h.ctrl.Stop()
	require.Equal(t, []Handle{first, second}, h.source.released, "stop releases the live handle exactly once")
}

func TestController_StopNeverReleasesRestoredHandle(t *testing.T) {
	h := newHarness(t, Values{AvatarHandle: "https://cdn.example/avatar.png"})

	h.ctrl.Stop()

	require.Empty(t, h.source.released, "a handle from initial values is not session-owned")
}

func TestController_EditsAfterStopIgnored(t *testing.T) {
	h := newHarness(t, Values{})

	h.ctrl.Stop()
	h.ctrl.SetName("late")

	time.Sleep(60 * time.Millisecond)
	require.Equal(t, 0, h.kv.Sets())
}

func TestController_ReplaceAvatarAfterStopCreatesNothing(t *testing.T) {
	h := newHarness(t, Values{})

	h.ctrl.Stop()
	require.NoError(t, h.ctrl.ReplaceAvatar("late.png"))

	require.Empty(t, h.source.created, "teardown already ran; a new handle would leak")
	require.Empty(t, h.source.released)
}
