package profile

import "strings"

// HandleScheme marks handles created during this editor session. Only
// handles carrying the marker are owned, and therefore released, by the
// ResourceManager; anything else (a persisted avatar URL, a host-supplied
// reference) belongs to someone else and is never released here.
const HandleScheme = "preview://"

// Handle is an opaque reference to an ephemeral, releasable resource
// (the avatar preview). The zero value means "no avatar".
type Handle string

// Owned reports whether the handle was created in this session.
func (h Handle) Owned() bool {
	return strings.HasPrefix(string(h), HandleScheme)
}

// ResourceSource creates and releases preview resources. Create must
// return a handle carrying HandleScheme; Release invalidates it.
type ResourceSource interface {
	Create(source string) (Handle, error)
	Release(h Handle)
}

// ResourceManager owns at most one session-created preview handle at a
// time. A superseded handle is released before the replacement handle
// exists, so two session-owned handles are never live at once.
type ResourceManager struct {
	source ResourceSource
	owned  Handle
}

// NewResourceManager creates a manager backed by the given source.
func NewResourceManager(source ResourceSource) *ResourceManager {
	return &ResourceManager{source: source}
}

// Replace releases the currently-owned handle (if any) and creates a
// new one referencing src. On creation failure no handle is produced
// and the zero Handle is returned with the error; the caller keeps
// whatever it was displaying before.
func (m *ResourceManager) Replace(src string) (Handle, error) {
	if m.owned != "" {
		m.source.Release(m.owned)
		m.owned = ""
	}
	h, err := m.source.Create(src)
	if err != nil {
		return "", err
	}
	m.owned = h
	return h, nil
}

// ReleaseIfOwned releases h only when it is a session-created resource.
// Releasing an externally-supplied handle would prematurely invalidate
// a resource this session does not own.
func (m *ResourceManager) ReleaseIfOwned(h Handle) {
	if !h.Owned() {
		return
	}
	m.source.Release(h)
	if m.owned == h {
		m.owned = ""
	}
}

// Teardown releases the currently-owned handle exactly once. Calling it
// again is a no-op.
func (m *ResourceManager) Teardown() {
	if m.owned == "" {
		return
	}
	m.source.Release(m.owned)
	m.owned = ""
}

// Owned returns the currently-owned handle, or the zero Handle.
func (m *ResourceManager) Owned() Handle {
	return m.owned
}
