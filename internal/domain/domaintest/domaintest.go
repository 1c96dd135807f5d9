// Package domaintest builds fully-formed domain values for tests. All helpers
// panic on invalid input so test fixtures stay one-liners.
package domaintest

import (
	"fmt"

	"github.com/andy/clienthub/internal/domain"
)

// Option customizes a client built by New.
type Option func(*spec)

type spec struct {
	tags        []domain.Tag
	preference  *domain.ProductPreference
	description *domain.Description
	priority    *domain.Priority
}

// WithTags attaches tags to the client.
func WithTags(tags ...string) Option {
	return func(s *spec) {
		for _, raw := range tags {
			s.tags = append(s.tags, MustTag(raw))
		}
	}
}

// WithPreference attaches a product preference with an explicit frequency.
func WithPreference(label string, frequency int) Option {
	return func(s *spec) {
		f := domain.Frequency(frequency)
		p, err := domain.NewProductPreference(label, &f)
		if err != nil {
			panic(err)
		}
		s.preference = &p
	}
}

// WithDefaultPreference attaches a product preference without a frequency.
func WithDefaultPreference(label string) Option {
	return func(s *spec) {
		p, err := domain.NewProductPreference(label, nil)
		if err != nil {
			panic(err)
		}
		s.preference = &p
	}
}

// WithDescription attaches a description.
func WithDescription(text string) Option {
	return func(s *spec) {
		d, ok := domain.NewDescription(text)
		if !ok {
			panic(fmt.Sprintf("blank description %q", text))
		}
		s.description = &d
	}
}

// WithPriority attaches a priority level.
func WithPriority(level int) Option {
	return func(s *spec) {
		p, err := domain.NewPriority(level)
		if err != nil {
			panic(err)
		}
		s.priority = &p
	}
}

// New builds a client from raw field strings.
func New(name, phone, email, address string, opts ...Option) domain.Client {
	var s spec
	for _, opt := range opts {
		opt(&s)
	}
	c, err := domain.NewClient(
		MustName(name), MustPhone(phone), MustEmail(email), MustAddress(address),
		s.tags, s.preference, s.description, s.priority,
	)
	if err != nil {
		panic(err)
	}
	return c
}

// MustName parses a name or panics.
func MustName(s string) domain.Name {
	n, err := domain.ParseName(s)
	if err != nil {
		panic(err)
	}
	return n
}

// MustPhone parses a phone or panics.
func MustPhone(s string) domain.Phone {
	p, err := domain.ParsePhone(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MustEmail parses an email or panics.
func MustEmail(s string) domain.Email {
	e, err := domain.ParseEmail(s)
	if err != nil {
		panic(err)
	}
	return e
}

// MustAddress parses an address or panics.
func MustAddress(s string) domain.Address {
	a, err := domain.ParseAddress(s)
	if err != nil {
		panic(err)
	}
	return a
}

// MustTag parses a tag or panics.
func MustTag(s string) domain.Tag {
	t, err := domain.ParseTag(s)
	if err != nil {
		panic(err)
	}
	return t
}

// Alice, Bob and Carol are the typical fixture clients.
func Alice() domain.Client {
	return New("Alice Pauline", "94351253", "alice@example.com", "123 Jurong West Ave 6",
		WithTags("friends"), WithPreference("Shampoo", 7))
}

func Bob() domain.Client {
	return New("Bob Choo", "82345678", "bob@example.com", "Blk 45 Aljunied Street 85",
		WithTags("regular", "friends"), WithDefaultPreference("Tea"), WithPriority(2))
}

func Carol() domain.Client {
	return New("Carol Heinz", "63334444", "carol@example.com", "10 Downing Street")
}
