package domain

import "strings"

// Description is free-form text about a client. The empty string is never
// stored; callers treat blank input as "clear the description".
type Description struct {
	value string
}

// NewDescription wraps trimmed description text. The returned ok is false when
// the text is blank, meaning there is no description to store.
func NewDescription(s string) (Description, bool) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return Description{}, false
	}
	return Description{value: trimmed}, true
}

func (d Description) String() string {
	return d.value
}
