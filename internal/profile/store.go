package profile

import "encoding/json"

// DraftKey is the well-known storage key for the single draft slot.
const DraftKey = "castdeck.profile.draft"

// draftSchemaVersion tags the persisted record. Records with an
// unrecognized version are treated as absent.
const draftSchemaVersion = 1

// KV is the host-provided key-value storage capability. Implementations
// must be safe for use from the controller's debounce timer goroutine.
type KV interface {
	Get(key string) (string, bool)
	Set(key, value string) error
}

// Draft is an optionally-present persisted snapshot of Values. Fields
// are pointers so a missing field in the stored record overlays nothing
// when merged onto host-supplied defaults.
type Draft struct {
	Present      bool
	AvatarURL    *string
	Name         *string
	Bio          *string
	SocialLink   *string
	StreamerMode *bool
}

// draftRecord is the wire schema. Unknown fields are ignored, missing
// fields decode to nil.
type draftRecord struct {
	Version      int     `json:"version,omitempty"`
	AvatarURL    *string `json:"avatarUrl"`
	Name         *string `json:"name"`
	Bio          *string `json:"bio"`
	TwitterLink  *string `json:"twitterLink"`
	StreamerMode *bool   `json:"streamerMode"`
}

// Store reads and writes the draft slot. Persistence is best-effort:
// reads tolerate corruption and absence, writes swallow storage
// failures. Drafts are a convenience, never a guarantee.
type Store struct {
	kv KV
}

// NewStore creates a draft store over the given key-value capability.
func NewStore(kv KV) *Store {
	return &Store{kv: kv}
}

// Read returns the stored draft. Absence, corruption, or an
// unrecognized schema version all yield a non-present draft.
func (s *Store) Read() Draft {
	raw, ok := s.kv.Get(DraftKey)
	if !ok {
		return Draft{}
	}

	var rec draftRecord
	if err := json.Unmarshal([]byte(raw), &rec); err != nil {
		return Draft{}
	}
	if rec.Version != 0 && rec.Version != draftSchemaVersion {
		return Draft{}
	}

	return Draft{
		Present:      true,
		AvatarURL:    rec.AvatarURL,
		Name:         rec.Name,
		Bio:          rec.Bio,
		SocialLink:   rec.TwitterLink,
		StreamerMode: rec.StreamerMode,
	}
}

// Write persists a full values snapshot into the draft slot,
// superseding whatever was there. Serialization or storage failures are
// swallowed; the UI must never block or fail on a draft write.
func (s *Store) Write(v Values) {
	var avatar *string
	if v.AvatarHandle != "" {
		url := string(v.AvatarHandle)
		avatar = &url
	}
	rec := draftRecord{
		Version:      draftSchemaVersion,
		AvatarURL:    avatar,
		Name:         &v.Name,
		Bio:          &v.Bio,
		TwitterLink:  &v.SocialLink,
		StreamerMode: &v.StreamerMode,
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return
	}
	_ = s.kv.Set(DraftKey, string(data))
}
