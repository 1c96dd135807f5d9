package domain

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NameConstraints is shown when a name fails validation.
const NameConstraints = "Names should contain only letters with single spaces between words, and should not be blank"

var (
	nameRegexp = regexp.MustCompile(`^[A-Za-z]+( [A-Za-z]+)*$`)
	titleCaser = cases.Title(language.English)
)

// Name is a client's validated, title-cased full name.
type Name struct {
	value string
}

// ParseName validates and normalizes a raw name string.
// Leading and trailing whitespace is trimmed and words are title-cased,
// so "john doe" and "John Doe" parse to the same Name.
func ParseName(s string) (Name, error) {
	trimmed := strings.TrimSpace(s)
	if !nameRegexp.MatchString(trimmed) {
		return Name{}, formatErr("name", NameConstraints)
	}
	return Name{value: titleCaser.String(trimmed)}, nil
}

func (n Name) String() string {
	return n.value
}

// IsZero reports whether the name is the unparsed zero value.
func (n Name) IsZero() bool {
	return n.value == ""
}
