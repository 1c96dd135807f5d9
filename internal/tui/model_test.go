package tui

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andy/clienthub/internal/app"
	"github.com/andy/clienthub/internal/domain"
	"github.com/andy/clienthub/internal/domain/domaintest"
	"github.com/andy/clienthub/internal/registry"
)

type captureStore struct {
	mu    sync.Mutex
	saved [][]domain.Client
}

func (s *captureStore) Load(ctx context.Context) ([]domain.Client, error) {
	return nil, nil
}

func (s *captureStore) Save(ctx context.Context, clients []domain.Client) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.saved = append(s.saved, clients)
	return nil
}

func newTestModel(t *testing.T, store *captureStore) (Model, *registry.Registry) {
	t.Helper()
	reg := registry.New()
	require.NoError(t, reg.Add(domaintest.Alice()))
	a := &app.App{Store: store, Registry: reg, View: registry.NewView(reg)}
	return New(a), reg
}

func TestSaveSnapshotsRegistryBeforeBackgroundWrite(t *testing.T) {
	store := &captureStore{}
	m, reg := newTestModel(t, store)

	cmd := m.save()
	// a mutation after the command is built must not leak into the pending save
	require.NoError(t, reg.Add(domaintest.Bob()))

	msg := cmd()
	saved, ok := msg.(savedMsg)
	require.True(t, ok)
	assert.NoError(t, saved.err)

	require.Len(t, store.saved, 1)
	require.Len(t, store.saved[0], 1)
	assert.True(t, store.saved[0][0].Equal(domaintest.Alice()))
}

func TestBackgroundSaveRunsConcurrentlyWithMutations(t *testing.T) {
	store := &captureStore{}
	m, reg := newTestModel(t, store)

	cmd := m.save()
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		cmd()
	}()
	// the update loop keeps mutating while the write runs
	require.NoError(t, reg.Add(domaintest.Bob()))
	require.NoError(t, reg.Add(domaintest.Carol()))
	wg.Wait()

	require.Len(t, store.saved, 1)
	assert.Len(t, store.saved[0], 1)
}

func TestSaveAndQuitWritesSnapshotThenQuits(t *testing.T) {
	store := &captureStore{}
	m, _ := newTestModel(t, store)

	msg := m.saveAndQuit()()
	_, ok := msg.(quitMsg)
	require.True(t, ok)
	require.Len(t, store.saved, 1)
	assert.Len(t, store.saved[0], 1)
}
