package domain

import (
	"regexp"
	"strings"
)

// TagConstraints is shown when a tag fails validation.
const TagConstraints = "Tags should be a single alphanumeric word"

var tagRegexp = regexp.MustCompile(`^[A-Za-z0-9]+$`)

// Tag is a short label attached to a client. Clients hold tags with set
// semantics: no duplicates, and ordering carries no meaning.
type Tag struct {
	value string
}

// ParseTag validates a raw tag string.
func ParseTag(s string) (Tag, error) {
	trimmed := strings.TrimSpace(s)
	if !tagRegexp.MatchString(trimmed) {
		return Tag{}, formatErr("tag", TagConstraints)
	}
	return Tag{value: trimmed}, nil
}

func (t Tag) String() string {
	return t.value
}
