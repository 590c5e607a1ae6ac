package appstate

import (
	"context"
	"errors"
	"testing"

	"github.com/evgsol/eventhub/internal/appstate/ports/mocks"
	"github.com/evgsol/eventhub/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestStore(t *testing.T) (*Store, *mocks.MockBackend, *Session) {
	t.Helper()
	backend := mocks.NewMockBackend(t)
	session := NewSession()
	return NewStore(backend, session, newTestLogger(t)), backend, session
}

func TestStore_LoadEvents_ReplacesWholesale(t *testing.T) {
	store, backend, _ := newTestStore(t)

	backend.EXPECT().ListEvents(mock.Anything, "").
		Return([]*domain.Event{{ID: "e1"}, {ID: "e2"}}, nil).Once()
	store.LoadEvents(context.Background())
	require.Len(t, store.Events(), 2)

	backend.EXPECT().ListEvents(mock.Anything, "").
		Return([]*domain.Event{{ID: "e3"}}, nil).Once()
	store.LoadEvents(context.Background())

	events := store.Events()
	require.Len(t, events, 1)
	assert.Equal(t, "e3", events[0].ID)
}

func TestStore_LoadEvents_LoadingFlag(t *testing.T) {
	store, backend, _ := newTestStore(t)

	backend.EXPECT().ListEvents(mock.Anything, "").
		RunAndReturn(func(context.Context, string) ([]*domain.Event, error) {
			assert.True(t, store.Loading())
			return nil, nil
		})

	store.LoadEvents(context.Background())

	assert.False(t, store.Loading())
}

func TestStore_LoadEvents_FailureKeepsStaleData(t *testing.T) {
	store, backend, _ := newTestStore(t)

	backend.EXPECT().ListEvents(mock.Anything, "").
		Return([]*domain.Event{{ID: "e1"}}, nil).Once()
	store.LoadEvents(context.Background())

	backend.EXPECT().ListEvents(mock.Anything, "").
		Return(nil, errors.New("backend down")).Once()
	store.LoadEvents(context.Background())

	// failures are logged only; the stale collection stays visible
	assert.Len(t, store.Events(), 1)
	assert.False(t, store.Loading())
}

func TestStore_LoadEvents_PassesViewer(t *testing.T) {
	store, backend, session := newTestStore(t)
	session.Login(&domain.User{ID: "u7", Name: "Bob", Email: "bob@example.com"})

	backend.EXPECT().ListEvents(mock.Anything, "u7").Return(nil, nil).Once()

	store.LoadEvents(context.Background())
}

func TestStore_LoadApplications_FailureKeepsStaleData(t *testing.T) {
	store, backend, _ := newTestStore(t)

	backend.EXPECT().ListApplications(mock.Anything).
		Return([]*domain.Application{{ID: "a1"}}, nil).Once()
	store.LoadApplications(context.Background())

	backend.EXPECT().ListApplications(mock.Anything).
		Return(nil, errors.New("backend down")).Once()
	store.LoadApplications(context.Background())

	assert.Len(t, store.Applications(), 1)
}

func TestStore_SnapshotsAreCopies(t *testing.T) {
	store, backend, _ := newTestStore(t)

	backend.EXPECT().ListEvents(mock.Anything, "").
		Return([]*domain.Event{{ID: "e1", Title: "Concert"}}, nil).Once()
	store.LoadEvents(context.Background())

	snapshot := store.Events()
	snapshot[0].Title = "mutated"

	fresh, ok := store.EventByID("e1")
	require.True(t, ok)
	assert.Equal(t, "Concert", fresh.Title)
}
