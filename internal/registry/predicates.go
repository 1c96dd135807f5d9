package registry

import (
	"strings"

	"github.com/andy/clienthub/internal/domain"
)

// MatchAll includes every client.
func MatchAll(domain.Client) bool {
	return true
}

// KeywordMatch builds the find predicate: true when any keyword
// case-insensitively equals a whole word of the client's name, any of its
// tags, or its product preference label.
func KeywordMatch(keywords []string) Predicate {
	lowered := make([]string, len(keywords))
	for i, kw := range keywords {
		lowered[i] = strings.ToLower(kw)
	}
	return func(c domain.Client) bool {
		words := strings.Fields(strings.ToLower(c.Name().String()))
		for _, t := range c.Tags() {
			words = append(words, strings.ToLower(t.String()))
		}
		if pref, ok := c.Preference(); ok {
			words = append(words, strings.Fields(strings.ToLower(pref.Label()))...)
		}
		for _, kw := range lowered {
			for _, w := range words {
				if w == kw {
					return true
				}
			}
		}
		return false
	}
}

// PreferenceContains builds the filter predicate matching clients whose
// product preference label contains keyword, case-insensitively.
func PreferenceContains(keyword string) Predicate {
	lowered := strings.ToLower(keyword)
	return func(c domain.Client) bool {
		pref, ok := c.Preference()
		if !ok {
			return false
		}
		return strings.Contains(strings.ToLower(pref.Label()), lowered)
	}
}

// PriorityIs builds the filter predicate matching clients with exactly the
// given priority level.
func PriorityIs(level domain.Priority) Predicate {
	return func(c domain.Client) bool {
		p, ok := c.Priority()
		return ok && p == level
	}
}
