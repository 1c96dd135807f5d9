package domain

import (
	"regexp"
	"strings"
)

// EmailConstraints is shown when an email address fails validation.
const EmailConstraints = "Emails should be of the form local-part@domain, where the local part uses letters, digits " +
	"and +_.- characters, and the domain is made of dot-separated alphanumeric labels"

var emailRegexp = regexp.MustCompile(`^[A-Za-z0-9+_.-]+@[A-Za-z0-9]+([.-][A-Za-z0-9]+)*$`)

// Email is a validated email address.
type Email struct {
	value string
}

// ParseEmail validates a raw email string.
func ParseEmail(s string) (Email, error) {
	trimmed := strings.TrimSpace(s)
	if !emailRegexp.MatchString(trimmed) {
		return Email{}, formatErr("email", EmailConstraints)
	}
	return Email{value: trimmed}, nil
}

func (e Email) String() string {
	return e.value
}

// IsZero reports whether the email is the unparsed zero value.
func (e Email) IsZero() bool {
	return e.value == ""
}
