// Package profile implements the profile-settings editor core: the
// canonical values record, field validation, draft persistence, avatar
// preview lifecycle, and the form state controller that ties them
// together. The package is UI-agnostic; the TUI layer in
// internal/ui/modals/profileeditor drives it.
package profile

// BioMaxLen is the maximum bio length in characters. Values loaded from
// a draft that exceed it are truncated on load, not rejected.
const BioMaxLen = 100

// Values is the canonical profile-settings record.
type Values struct {
	AvatarHandle Handle
	Name         string
	Bio          string
	SocialLink   string
	StreamerMode bool
}

// Merged returns v overlaid with the draft. Draft fields win
// field-by-field when present; the bio is truncated afterwards so the
// merged record always satisfies the length invariant.
func (v Values) Merged(d Draft) Values {
	if d.Present {
		if d.AvatarURL != nil {
			v.AvatarHandle = Handle(*d.AvatarURL)
		}
		if d.Name != nil {
			v.Name = *d.Name
		}
		if d.Bio != nil {
			v.Bio = *d.Bio
		}
		if d.SocialLink != nil {
			v.SocialLink = *d.SocialLink
		}
		if d.StreamerMode != nil {
			v.StreamerMode = *d.StreamerMode
		}
	}
	v.Bio = TruncateBio(v.Bio)
	return v
}

// TruncateBio clamps a bio to BioMaxLen runes.
func TruncateBio(bio string) string {
	runes := []rune(bio)
	if len(runes) <= BioMaxLen {
		return bio
	}
	return string(runes[:BioMaxLen])
}
