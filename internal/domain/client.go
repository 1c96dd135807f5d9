package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Client is an immutable client record. The identity fields are Name, Phone
// and Address; two clients with the same identity are considered the same
// client regardless of their other fields. Editing a client always builds a
// new instance.
type Client struct {
	name    Name
	phone   Phone
	email   Email
	address Address

	tags        []Tag // sorted, deduplicated
	preference  *ProductPreference
	description *Description
	priority    *Priority

	// derived from preference, never set independently
	totalPurchase int
}

// NewClient constructs a client record. Name, phone, email and address must be
// parsed values; the zero value for any of them is a programming defect and is
// rejected. Tags may be empty but the stored set is never nil. Preference,
// description and priority are independently optional.
func NewClient(name Name, phone Phone, email Email, address Address, tags []Tag,
	preference *ProductPreference, description *Description, priority *Priority) (Client, error) {

	if name.IsZero() || phone.IsZero() || email.IsZero() || address.IsZero() {
		return Client{}, errors.New("client requires name, phone, email and address")
	}

	c := Client{
		name:    name,
		phone:   phone,
		email:   email,
		address: address,
		tags:    normalizeTags(tags),
	}
	if preference != nil {
		p := *preference
		c.preference = &p
		c.totalPurchase = int(p.Frequency())
	}
	if description != nil {
		d := *description
		c.description = &d
	}
	if priority != nil {
		p := *priority
		c.priority = &p
	}
	return c, nil
}

// normalizeTags copies, deduplicates and sorts so that tag sets compare
// order-independently.
func normalizeTags(tags []Tag) []Tag {
	out := make([]Tag, 0, len(tags))
	seen := make(map[Tag]struct{}, len(tags))
	for _, t := range tags {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].value < out[j].value })
	return out
}

// Name returns the client's name.
func (c Client) Name() Name { return c.name }

// Phone returns the client's phone number.
func (c Client) Phone() Phone { return c.phone }

// Email returns the client's email address.
func (c Client) Email() Email { return c.email }

// Address returns the client's postal address.
func (c Client) Address() Address { return c.address }

// Tags returns a copy of the client's tag set.
func (c Client) Tags() []Tag {
	out := make([]Tag, len(c.tags))
	copy(out, c.tags)
	return out
}

// Preference returns the client's product preference, if any.
func (c Client) Preference() (ProductPreference, bool) {
	if c.preference == nil {
		return ProductPreference{}, false
	}
	return *c.preference, true
}

// Description returns the client's description, if any.
func (c Client) Description() (Description, bool) {
	if c.description == nil {
		return Description{}, false
	}
	return *c.description, true
}

// Priority returns the client's priority, if any.
func (c Client) Priority() (Priority, bool) {
	if c.priority == nil {
		return 0, false
	}
	return *c.priority, true
}

// TotalPurchase is the derived purchase count: the preference's frequency when
// a preference exists, 0 otherwise.
func (c Client) TotalPurchase() int {
	return c.totalPurchase
}

// SameIdentity reports whether other refers to the same client, comparing only
// the identity fields. This is the weaker notion of equality used for
// duplicate detection.
func (c Client) SameIdentity(other Client) bool {
	return c.name == other.name && c.phone == other.phone && c.address == other.address
}

// Equal reports whether every field of both clients matches, tag order
// ignored. This is the stronger notion of equality used for collection
// comparisons in tests.
func (c Client) Equal(other Client) bool {
	if !c.SameIdentity(other) || c.email != other.email {
		return false
	}
	if len(c.tags) != len(other.tags) {
		return false
	}
	for i := range c.tags {
		if c.tags[i] != other.tags[i] {
			return false
		}
	}
	return optEqual(c.preference, other.preference) &&
		optEqual(c.description, other.description) &&
		optEqual(c.priority, other.priority)
}

func optEqual[T comparable](a, b *T) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// String formats the full record on one line, in the style
// "Name; Phone: ...; Email: ...".
func (c Client) String() string {
	var b strings.Builder
	b.WriteString(c.name.String())
	fmt.Fprintf(&b, "; Phone: %s; Email: %s; Address: %s", c.phone, c.email, c.address)
	if len(c.tags) > 0 {
		b.WriteString("; Tags: ")
		for i, t := range c.tags {
			if i > 0 {
				b.WriteString(" ")
			}
			fmt.Fprintf(&b, "[%s]", t)
		}
	}
	if c.preference != nil {
		fmt.Fprintf(&b, "; Preference: %s", c.preference)
	}
	if c.description != nil {
		fmt.Fprintf(&b, "; Description: %s", c.description)
	}
	if c.priority != nil {
		fmt.Fprintf(&b, "; Priority: %s", c.priority)
	}
	return b.String()
}
