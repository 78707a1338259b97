package profile

import (
	"net/url"
	"strings"
)

// Field names used as keys in Errors.
const (
	FieldName       = "name"
	FieldBio        = "bio"
	FieldSocialLink = "socialLink"
)

// Validation messages surfaced inline next to the offending field.
const (
	msgNameEmpty   = "Name cannot be empty."
	msgBioTooLong  = "Bio must be ≤100 characters."
	msgInvalidLink = "Enter a valid link."
)

// allowedLinkHosts are the hostnames a social link may point at, after
// stripping a leading "www.".
var allowedLinkHosts = []string{"x.com", "twitter.com"}

// Errors maps a field name to a human-readable message for each field
// currently failing validation.
type Errors map[string]string

// Empty reports whether no field is failing validation.
func (e Errors) Empty() bool { return len(e) == 0 }

// ValidateName fails iff the trimmed value is empty.
func ValidateName(value string) (string, bool) {
	if strings.TrimSpace(value) == "" {
		return msgNameEmpty, false
	}
	return "", true
}

// ValidateBio fails iff the value exceeds BioMaxLen characters.
func ValidateBio(value string) (string, bool) {
	if len([]rune(value)) > BioMaxLen {
		return msgBioTooLong, false
	}
	return "", true
}

// ValidateSocialLink accepts an empty or whitespace-only value (the link
// is optional). A non-empty value must parse as an http(s) URL whose
// host, with a leading "www." stripped, is one of the allowed hosts.
func ValidateSocialLink(value string) (string, bool) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", true
	}

	u, err := url.Parse(trimmed)
	if err != nil {
		return msgInvalidLink, false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return msgInvalidLink, false
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	for _, allowed := range allowedLinkHosts {
		if host == allowed {
			return "", true
		}
	}
	return msgInvalidLink, false
}

// Validate runs all field validators and returns the failing set.
// A commit is permitted only when the result is empty.
func Validate(v Values) Errors {
	errs := make(Errors)
	if msg, ok := ValidateName(v.Name); !ok {
		errs[FieldName] = msg
	}
	if msg, ok := ValidateBio(v.Bio); !ok {
		errs[FieldBio] = msg
	}
	if msg, ok := ValidateSocialLink(v.SocialLink); !ok {
		errs[FieldSocialLink] = msg
	}
	return errs
}
