// Package registry holds the in-memory client collection and the filtered,
// sorted view derived from it.
package registry

import (
	"errors"

	"github.com/andy/clienthub/internal/domain"
)

// ErrDuplicateClient reports an operation that would leave two clients with
// the same identity in the registry. Commands pre-check for duplicates, so a
// surfacing ErrDuplicateClient indicates a logic defect upstream.
var ErrDuplicateClient = errors.New("a client with the same identity already exists")

// ErrClientNotFound reports an operation whose target client is not in the
// registry.
var ErrClientNotFound = errors.New("client not found in the registry")

// Registry is an ordered sequence of clients with no two elements sharing an
// identity. Mutations bump a version counter so observers can detect change
// without the registry depending on any UI type.
type Registry struct {
	clients []domain.Client
	version uint64
}

// New returns an empty registry.
func New() *Registry {
	return &Registry{}
}

// Contains reports whether some element shares c's identity.
func (r *Registry) Contains(c domain.Client) bool {
	return r.indexOf(c) >= 0
}

// indexOf returns the position of the first element weakly equal to c, or -1.
func (r *Registry) indexOf(c domain.Client) int {
	for i, existing := range r.clients {
		if existing.SameIdentity(c) {
			return i
		}
	}
	return -1
}

// Add appends c. Fails with ErrDuplicateClient if an element with the same
// identity is already present.
func (r *Registry) Add(c domain.Client) error {
	if r.Contains(c) {
		return ErrDuplicateClient
	}
	r.clients = append(r.clients, c)
	r.version++
	return nil
}

// Replace substitutes edited at target's position. target must be present;
// if edited has a different identity than target, that identity must not be
// taken by any other element.
func (r *Registry) Replace(target, edited domain.Client) error {
	idx := r.indexOf(target)
	if idx < 0 {
		return ErrClientNotFound
	}
	if !target.SameIdentity(edited) {
		for i, existing := range r.clients {
			if i != idx && existing.SameIdentity(edited) {
				return ErrDuplicateClient
			}
		}
	}
	r.clients[idx] = edited
	r.version++
	return nil
}

// Remove deletes the first element sharing c's identity.
func (r *Registry) Remove(c domain.Client) error {
	idx := r.indexOf(c)
	if idx < 0 {
		return ErrClientNotFound
	}
	r.clients = append(r.clients[:idx], r.clients[idx+1:]...)
	r.version++
	return nil
}

// ReplaceAll swaps the whole contents for cs. Fails with ErrDuplicateClient,
// leaving the registry untouched, if cs contains two clients with the same
// identity.
func (r *Registry) ReplaceAll(cs []domain.Client) error {
	for i := range cs {
		for j := i + 1; j < len(cs); j++ {
			if cs[i].SameIdentity(cs[j]) {
				return ErrDuplicateClient
			}
		}
	}
	r.clients = make([]domain.Client, len(cs))
	copy(r.clients, cs)
	r.version++
	return nil
}

// Clients returns a snapshot of the contents in insertion order.
func (r *Registry) Clients() []domain.Client {
	out := make([]domain.Client, len(r.clients))
	copy(out, r.clients)
	return out
}

// Len returns the number of clients.
func (r *Registry) Len() int {
	return len(r.clients)
}

// Version returns a counter incremented on every successful mutation.
func (r *Registry) Version() uint64 {
	return r.version
}
