package registry_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy/clienthub/internal/domain"
	"github.com/andy/clienthub/internal/domain/domaintest"
	"github.com/andy/clienthub/internal/registry"
)

func TestAddRejectsDuplicateIdentity(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Add(domaintest.Alice()))

	// same identity, different data fields
	variant := domaintest.New("Alice Pauline", "94351253", "other@example.com", "123 Jurong West Ave 6",
		domaintest.WithTags("vip"))
	err := reg.Add(variant)
	require.ErrorIs(t, err, registry.ErrDuplicateClient)

	// the failed add left the registry unchanged
	assert.Equal(t, 1, reg.Len())
	assert.True(t, reg.Clients()[0].Equal(domaintest.Alice()))
}

func TestContains(t *testing.T) {
	reg := registry.New()
	assert.False(t, reg.Contains(domaintest.Alice()))

	require.NoError(t, reg.Add(domaintest.Alice()))
	assert.True(t, reg.Contains(domaintest.Alice()))

	// weak equality: identity match is enough
	variant := domaintest.New("Alice Pauline", "94351253", "other@example.com", "123 Jurong West Ave 6")
	assert.True(t, reg.Contains(variant))
	assert.False(t, reg.Contains(domaintest.Bob()))
}

func TestReplacePreservesPosition(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Add(domaintest.Alice()))
	require.NoError(t, reg.Add(domaintest.Bob()))
	require.NoError(t, reg.Add(domaintest.Carol()))

	edited := domaintest.New("Bobby Choo", "82345678", "bob@example.com", "Blk 45 Aljunied Street 85")
	require.NoError(t, reg.Replace(domaintest.Bob(), edited))

	clients := reg.Clients()
	require.Len(t, clients, 3)
	assert.True(t, clients[1].Equal(edited), "edited client should occupy the target's slot")
}

func TestReplaceErrors(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Add(domaintest.Alice()))
	require.NoError(t, reg.Add(domaintest.Bob()))

	// target absent
	err := reg.Replace(domaintest.Carol(), domaintest.Carol())
	require.ErrorIs(t, err, registry.ErrClientNotFound)

	// edited collides with another client's identity
	err = reg.Replace(domaintest.Alice(), domaintest.Bob())
	require.ErrorIs(t, err, registry.ErrDuplicateClient)

	// replacing a client with an same-identity edit is always allowed
	edited := domaintest.New("Alice Pauline", "94351253", "new@example.com", "123 Jurong West Ave 6")
	require.NoError(t, reg.Replace(domaintest.Alice(), edited))
}

func TestRemove(t *testing.T) {
	reg := registry.New()
	require.ErrorIs(t, reg.Remove(domaintest.Alice()), registry.ErrClientNotFound)

	require.NoError(t, reg.Add(domaintest.Alice()))
	require.NoError(t, reg.Add(domaintest.Bob()))
	require.NoError(t, reg.Remove(domaintest.Alice()))

	clients := reg.Clients()
	require.Len(t, clients, 1)
	assert.True(t, clients[0].Equal(domaintest.Bob()))
}

func TestReplaceAll(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Add(domaintest.Carol()))

	require.NoError(t, reg.ReplaceAll([]domain.Client{domaintest.Alice(), domaintest.Bob()}))
	assert.Equal(t, 2, reg.Len())

	// a self-colliding incoming sequence is rejected and nothing changes
	variant := domaintest.New("Alice Pauline", "94351253", "other@example.com", "123 Jurong West Ave 6")
	err := reg.ReplaceAll([]domain.Client{domaintest.Alice(), variant})
	require.ErrorIs(t, err, registry.ErrDuplicateClient)
	assert.Equal(t, 2, reg.Len())
}

func TestSnapshotIsDetached(t *testing.T) {
	reg := registry.New()
	require.NoError(t, reg.Add(domaintest.Alice()))

	snapshot := reg.Clients()
	snapshot[0] = domaintest.Bob()
	assert.True(t, reg.Clients()[0].Equal(domaintest.Alice()))
}

func TestVersionBumpsOnMutation(t *testing.T) {
	reg := registry.New()
	v0 := reg.Version()

	require.NoError(t, reg.Add(domaintest.Alice()))
	v1 := reg.Version()
	assert.Greater(t, v1, v0)

	// failed mutation must not bump the version
	err := reg.Add(domaintest.Alice())
	require.Error(t, err)
	assert.Equal(t, v1, reg.Version())

	require.NoError(t, reg.Remove(domaintest.Alice()))
	assert.Greater(t, reg.Version(), v1)
}

func TestUniquenessUnderAddSequences(t *testing.T) {
	reg := registry.New()
	fixtures := []domain.Client{
		domaintest.Alice(), domaintest.Bob(), domaintest.Alice(),
		domaintest.Carol(), domaintest.Bob(),
	}
	for _, c := range fixtures {
		_ = reg.Add(c)
	}

	clients := reg.Clients()
	for i := range clients {
		for j := i + 1; j < len(clients); j++ {
			assert.False(t, clients[i].SameIdentity(clients[j]),
				"registry must never hold two weakly-equal clients")
		}
	}
	assert.Equal(t, 3, reg.Len())
}
