package command

import "github.com/andy/clienthub/internal/domain"

// Descriptor is an immutable partial update built once from parsed input.
// Mandatory fields are either replaced (non-nil) or kept; the optional fields
// use the tri-state Field so "leave untouched" and "erase" stay distinct.
type Descriptor struct {
	Name    *domain.Name
	Phone   *domain.Phone
	Email   *domain.Email
	Address *domain.Address

	Tags        Field[[]domain.Tag] // Clear empties the whole set
	Preference  Field[domain.ProductPreference]
	Description Field[domain.Description]
	Priority    Field[domain.Priority]
}

// Empty reports whether the descriptor mentions no field at all.
func (d Descriptor) Empty() bool {
	return d.Name == nil && d.Phone == nil && d.Email == nil && d.Address == nil &&
		d.Tags.IsUnset() && d.Preference.IsUnset() && d.Description.IsUnset() && d.Priority.IsUnset()
}

// Apply merges the descriptor over an existing client and returns the edited
// record. For every field: a Set value replaces, Clear erases, Unset keeps the
// existing value. The derived total purchase is recomputed by the client
// constructor.
func (d Descriptor) Apply(c domain.Client) (domain.Client, error) {
	name := c.Name()
	if d.Name != nil {
		name = *d.Name
	}
	phone := c.Phone()
	if d.Phone != nil {
		phone = *d.Phone
	}
	email := c.Email()
	if d.Email != nil {
		email = *d.Email
	}
	address := c.Address()
	if d.Address != nil {
		address = *d.Address
	}

	tags := c.Tags()
	if d.Tags.IsClear() {
		tags = nil
	} else if replacement, ok := d.Tags.Get(); ok {
		tags = replacement
	}

	var preference *domain.ProductPreference
	if existing, ok := c.Preference(); ok {
		preference = &existing
	}
	if d.Preference.IsClear() {
		preference = nil
	} else if p, ok := d.Preference.Get(); ok {
		preference = &p
	}

	var description *domain.Description
	if existing, ok := c.Description(); ok {
		description = &existing
	}
	if d.Description.IsClear() {
		description = nil
	} else if v, ok := d.Description.Get(); ok {
		description = &v
	}

	var priority *domain.Priority
	if existing, ok := c.Priority(); ok {
		priority = &existing
	}
	if d.Priority.IsClear() {
		priority = nil
	} else if p, ok := d.Priority.Get(); ok {
		priority = &p
	}

	return domain.NewClient(name, phone, email, address, tags, preference, description, priority)
}
