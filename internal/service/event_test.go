package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
	"github.com/evgsol/eventhub/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newEventService(t *testing.T) (*EventService, *mocks.MockEventRepo, *mocks.MockAnnouncer) {
	t.Helper()
	repo := mocks.NewMockEventRepo(t)
	announcer := mocks.NewMockAnnouncer(t)
	svc := NewEventService(repo, announcer, newTestLogger(t), 3*time.Hour, 720*time.Hour)
	return svc, repo, announcer
}

func TestEventService_CreateEvent(t *testing.T) {
	svc, repo, _ := newEventService(t)

	form := domain.EventForm{
		Title:     "Launch Party",
		EventDate: time.Now().UTC().Add(24 * time.Hour),
		Category:  "Networking",
		Capacity:  50,
	}
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(context.Background(), form)

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Launch Party", event.Title)
	assert.Equal(t, domain.EventStatusUpcoming, event.Status)
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	svc, _, _ := newEventService(t)

	tests := []struct {
		name string
		form domain.EventForm
	}{
		{"missing title", domain.EventForm{EventDate: time.Now().Add(time.Hour)}},
		{"missing date", domain.EventForm{Title: "Concert"}},
		{"negative capacity", domain.EventForm{Title: "Concert", EventDate: time.Now().Add(time.Hour), Capacity: -1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.CreateEvent(context.Background(), tt.form)
			require.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_StatusFor(t *testing.T) {
	svc, _, _ := newEventService(t)
	now := time.Now().UTC()

	tests := []struct {
		name string
		date time.Time
		want domain.EventStatus
	}{
		{"ended yesterday", now.Add(-24 * time.Hour), domain.EventStatusCompleted},
		{"started an hour ago", now.Add(-time.Hour), domain.EventStatusOngoing},
		{"next week", now.Add(7 * 24 * time.Hour), domain.EventStatusUpcoming},
		{"next year", now.Add(365 * 24 * time.Hour), domain.EventStatusFuture},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, svc.statusFor(tt.date))
		})
	}
}

func TestEventService_Reschedule(t *testing.T) {
	svc, repo, announcer := newEventService(t)

	old := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)
	next := old.AddDate(0, 0, 7)

	repo.EXPECT().GetByID(mock.Anything, "e1").
		Return(&domain.Event{ID: "e1", Title: "Concert", EventDate: old}, nil)
	repo.EXPECT().UpdateDate(mock.Anything, "e1", next).Return(nil)
	announcer.EXPECT().AnnounceEventRescheduled(mock.Anything, mock.Anything, old).Return()

	event, err := svc.Reschedule(context.Background(), "e1", next)

	require.NoError(t, err)
	assert.Equal(t, next, event.EventDate)
	time.Sleep(50 * time.Millisecond) // goroutine announce
}

func TestEventService_Reschedule_NotFound(t *testing.T) {
	svc, repo, _ := newEventService(t)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Reschedule(context.Background(), "missing", time.Now().Add(time.Hour))

	require.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_Delete(t *testing.T) {
	svc, repo, _ := newEventService(t)

	repo.EXPECT().Delete(mock.Anything, "e1").Return(nil)

	require.NoError(t, svc.Delete(context.Background(), "e1"))
}

func TestEventService_Delete_NotFound(t *testing.T) {
	svc, repo, _ := newEventService(t)

	repo.EXPECT().Delete(mock.Anything, "missing").Return(domain.ErrEventNotFound)

	err := svc.Delete(context.Background(), "missing")

	require.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestEventService_List_PassesViewer(t *testing.T) {
	svc, repo, _ := newEventService(t)

	repo.EXPECT().List(mock.Anything, "u1").
		Return([]*domain.Event{{ID: "e1"}}, nil)

	events, err := svc.List(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, events, 1)
}

func TestEventService_RefreshStatuses(t *testing.T) {
	svc, repo, _ := newEventService(t)

	changed := []*domain.Event{{ID: "e1", Status: domain.EventStatusCompleted}}
	repo.EXPECT().RefreshStatuses(mock.Anything, 3*time.Hour, 720*time.Hour).Return(changed, nil)

	got, err := svc.RefreshStatuses(context.Background())

	require.NoError(t, err)
	assert.Equal(t, changed, got)
}

func TestEventService_RefreshStatuses_Error(t *testing.T) {
	svc, repo, _ := newEventService(t)

	repo.EXPECT().RefreshStatuses(mock.Anything, 3*time.Hour, 720*time.Hour).
		Return(nil, errors.New("db error"))

	_, err := svc.RefreshStatuses(context.Background())

	require.Error(t, err)
}
