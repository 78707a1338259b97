package profile

import (
	"strings"
	"sync"
	"time"
)

// DefaultDebounce is the quiet period after the last field edit before
// the draft is persisted. Rapid successive edits coalesce into a single
// write at the end of the burst.
const DefaultDebounce = 150 * time.Millisecond

// Notification is a success message the host renders (a toast); the
// controller only requests it.
type Notification struct {
	Title       string
	Description string
}

// Options configures a Controller.
type Options struct {
	// Defaults are the host-supplied initial values. A restorable
	// draft overlays them field-by-field on Start.
	Defaults Values

	// Store persists the draft. Required.
	Store *Store

	// Resources manages the session's avatar preview handle. Required.
	Resources *ResourceManager

	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration

	// OnClose is invoked exactly once when the editor should be
	// dismissed (successful save or an explicit dismissal). Required.
	OnClose func()

	// Notify receives the success notification on save. Optional.
	Notify func(Notification)
}

// Controller is the form state controller: it merges defaults with the
// restorable draft, tracks field edits and per-field validation errors,
// debounces draft persistence, and runs validation + commit on save.
//
// The mutex only guards against the debounce timer goroutine; all other
// calls are expected from the single UI event loop.
type Controller struct {
	opts     Options
	debounce time.Duration

	mu        sync.Mutex
	values    Values
	errors    Errors
	timer     *time.Timer
	started   bool
	stopped   bool
	closeSent bool
}

// NewController creates a controller. Call Start before use and Stop on
// teardown.
func NewController(opts Options) *Controller {
	d := opts.Debounce
	if d <= 0 {
		d = DefaultDebounce
	}
	return &Controller{
		opts:     opts,
		debounce: d,
		errors:   make(Errors),
	}
}

// Start initializes state from (defaults ⊕ restorable draft) and
// truncates an over-long bio before the first read. Idempotent.
func (c *Controller) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.started {
		return
	}
	c.started = true
	c.values = c.opts.Defaults.Merged(c.opts.Store.Read())
}

// Stop cancels any pending debounced write and releases the
// session-owned preview handle exactly once. Safe to call repeatedly
// and regardless of whether save succeeded.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	c.opts.Resources.Teardown()
}

// Values returns the current values snapshot.
func (c *Controller) Values() Values {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values
}

// FieldErrors returns a copy of the current validation errors.
func (c *Controller) FieldErrors() Errors {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(Errors, len(c.errors))
	for k, v := range c.errors {
		out[k] = v
	}
	return out
}

// SetName updates the name field.
func (c *Controller) SetName(v string) { c.setField(FieldName, func(p *Values) { p.Name = v }) }

// SetBio updates the bio field.
func (c *Controller) SetBio(v string) { c.setField(FieldBio, func(p *Values) { p.Bio = v }) }

// SetSocialLink updates the social link field.
func (c *Controller) SetSocialLink(v string) {
	c.setField(FieldSocialLink, func(p *Values) { p.SocialLink = v })
}

// SetStreamerMode updates the streamer mode toggle.
func (c *Controller) SetStreamerMode(v bool) {
	c.setField("", func(p *Values) { p.StreamerMode = v })
}

// ReplaceAvatar swaps the avatar preview for one referencing src. The
// superseded session handle is released by the resource manager before
// the new one exists. On creation failure the prior preview stays.
func (c *Controller) ReplaceAvatar(src string) error {
	c.mu.Lock()
	stopped := c.stopped
	c.mu.Unlock()
	if stopped {
		// Teardown already ran; a handle created now would never be
		// released.
		return nil
	}
	h, err := c.opts.Resources.Replace(src)
	if err != nil {
		return err
	}
	c.setField("", func(p *Values) { p.AvatarHandle = h })
	return nil
}

// setField applies a mutation, clears the named field's error only, and
// (re)starts the debounced draft write.
func (c *Controller) setField(field string, mutate func(*Values)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stopped {
		return
	}
	mutate(&c.values)
	if field != "" {
		delete(c.errors, field)
	}
	c.scheduleWriteLocked()
}

// scheduleWriteLocked restarts the trailing-edge debounce. Only the
// snapshot current when the quiet period elapses is ever written;
// earlier snapshots in the same burst are superseded.
func (c *Controller) scheduleWriteLocked() {
	if c.timer != nil {
		c.timer.Stop()
	}
	c.timer = time.AfterFunc(c.debounce, c.flush)
}

// flush persists the current snapshot. Runs on the timer goroutine.
func (c *Controller) flush() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	snapshot := c.values
	c.timer = nil
	c.mu.Unlock()

	c.opts.Store.Write(snapshot)
}

// Save validates the current values. On failure it records the errors
// and commits nothing; the editor stays open. On success it finalizes
// the values (trimmed name and link, truncated bio), persists them
// immediately, requests the success notification, and invokes the close
// transition exactly once.
func (c *Controller) Save() Errors {
	c.mu.Lock()
	errs := Validate(c.values)
	c.errors = errs
	if !errs.Empty() {
		c.mu.Unlock()
		return errs
	}

	c.values.Name = strings.TrimSpace(c.values.Name)
	c.values.SocialLink = strings.TrimSpace(c.values.SocialLink)
	c.values.Bio = TruncateBio(c.values.Bio)
	final := c.values

	// The immediate write supersedes any pending debounced one.
	if c.timer != nil {
		c.timer.Stop()
		c.timer = nil
	}
	c.mu.Unlock()

	c.opts.Store.Write(final)

	if c.opts.Notify != nil {
		c.opts.Notify(Notification{
			Title:       "Profile updated",
			Description: "Your settings have been saved.",
		})
	}
	c.RequestClose()
	return errs
}

// RequestClose invokes the host's close callback. Repeated dismissal
// signals after the first are ignored.
func (c *Controller) RequestClose() {
	c.mu.Lock()
	if c.closeSent {
		c.mu.Unlock()
		return
	}
	c.closeSent = true
	c.mu.Unlock()

	if c.opts.OnClose != nil {
		c.opts.OnClose()
	}
}
