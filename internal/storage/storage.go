// Package storage persists the client registry. Stores are collaborators of
// the core: they either yield a fully valid set of clients or nothing at all,
// so corrupt data never reaches the registry. Save failures are reported to
// the caller and must not affect in-memory state.
package storage

import (
	"context"
	"fmt"

	"github.com/andy/clienthub/internal/domain"
)

// Store loads and saves the full client registry.
type Store interface {
	Load(ctx context.Context) ([]domain.Client, error)
	Save(ctx context.Context, clients []domain.Client) error
}

// Record is the persisted shape of one client.
type Record struct {
	Name              string            `json:"name"`
	Phone             string            `json:"phone"`
	Email             string            `json:"email"`
	Address           string            `json:"address"`
	Tags              []string          `json:"tags"`
	ProductPreference *PreferenceRecord `json:"productPreference,omitempty"`
	Description       *string           `json:"description,omitempty"`
	Priority          *int              `json:"priority,omitempty"`
}

// PreferenceRecord is the persisted shape of a product preference.
type PreferenceRecord struct {
	Label     string `json:"label"`
	Frequency int    `json:"frequency"`
}

// encodeRecord converts a client into its persisted shape.
func encodeRecord(c domain.Client) Record {
	rec := Record{
		Name:    c.Name().String(),
		Phone:   c.Phone().String(),
		Email:   c.Email().String(),
		Address: c.Address().String(),
		Tags:    make([]string, 0),
	}
	for _, t := range c.Tags() {
		rec.Tags = append(rec.Tags, t.String())
	}
	if pref, ok := c.Preference(); ok {
		rec.ProductPreference = &PreferenceRecord{
			Label:     pref.Label(),
			Frequency: int(pref.Frequency()),
		}
	}
	if desc, ok := c.Description(); ok {
		s := desc.String()
		rec.Description = &s
	}
	if prio, ok := c.Priority(); ok {
		n := int(prio)
		rec.Priority = &n
	}
	return rec
}

// decodeRecord rebuilds a client from its persisted shape, re-running every
// field through the domain parsers so invalid data is caught here.
func decodeRecord(rec Record) (domain.Client, error) {
	name, err := domain.ParseName(rec.Name)
	if err != nil {
		return domain.Client{}, fmt.Errorf("name %q: %w", rec.Name, err)
	}
	phone, err := domain.ParsePhone(rec.Phone)
	if err != nil {
		return domain.Client{}, fmt.Errorf("phone %q: %w", rec.Phone, err)
	}
	email, err := domain.ParseEmail(rec.Email)
	if err != nil {
		return domain.Client{}, fmt.Errorf("email %q: %w", rec.Email, err)
	}
	address, err := domain.ParseAddress(rec.Address)
	if err != nil {
		return domain.Client{}, fmt.Errorf("address %q: %w", rec.Address, err)
	}

	var tags []domain.Tag
	for _, raw := range rec.Tags {
		tag, err := domain.ParseTag(raw)
		if err != nil {
			return domain.Client{}, fmt.Errorf("tag %q: %w", raw, err)
		}
		tags = append(tags, tag)
	}

	var preference *domain.ProductPreference
	if rec.ProductPreference != nil {
		if rec.ProductPreference.Frequency < 0 {
			return domain.Client{}, fmt.Errorf("frequency %d: %s",
				rec.ProductPreference.Frequency, domain.FrequencyConstraints)
		}
		freq := domain.Frequency(rec.ProductPreference.Frequency)
		pref, err := domain.NewProductPreference(rec.ProductPreference.Label, &freq)
		if err != nil {
			return domain.Client{}, fmt.Errorf("preference %q: %w", rec.ProductPreference.Label, err)
		}
		preference = &pref
	}

	var description *domain.Description
	if rec.Description != nil {
		if desc, ok := domain.NewDescription(*rec.Description); ok {
			description = &desc
		}
	}

	var priority *domain.Priority
	if rec.Priority != nil {
		prio, err := domain.NewPriority(*rec.Priority)
		if err != nil {
			return domain.Client{}, fmt.Errorf("priority %d: %w", *rec.Priority, err)
		}
		priority = &prio
	}

	return domain.NewClient(name, phone, email, address, tags, preference, description, priority)
}

func encodeAll(clients []domain.Client) []Record {
	records := make([]Record, len(clients))
	for i, c := range clients {
		records[i] = encodeRecord(c)
	}
	return records
}

func decodeAll(records []Record) ([]domain.Client, error) {
	clients := make([]domain.Client, len(records))
	for i, rec := range records {
		c, err := decodeRecord(rec)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}
		clients[i] = c
	}
	return clients, nil
}
