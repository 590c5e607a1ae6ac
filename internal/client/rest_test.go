package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
	"github.com/evgsol/eventhub/internal/handler/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(handler http.HandlerFunc) (*REST, *httptest.Server) {
	srv := httptest.NewServer(handler)
	return New(srv.URL, 5*time.Second), srv
}

func TestREST_ListEvents(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/events", r.URL.Path)
		assert.Equal(t, "u1", r.URL.Query().Get("viewer_id"))

		json.NewEncoder(w).Encode([]*domain.Event{
			{ID: "e1", Title: "Concert", RegistrationStatus: domain.RegistrationPending},
		})
	})
	defer srv.Close()

	events, err := c.ListEvents(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, events, 1)
	assert.Equal(t, domain.RegistrationPending, events[0].RegistrationStatus)
}

func TestREST_ListEvents_NoViewerParam(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.False(t, r.URL.Query().Has("viewer_id"))
		json.NewEncoder(w).Encode([]*domain.Event{})
	})
	defer srv.Close()

	_, err := c.ListEvents(context.Background(), "")

	require.NoError(t, err)
}

func TestREST_CreateEvent(t *testing.T) {
	date := time.Date(2026, 9, 1, 18, 0, 0, 0, time.UTC)

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/events", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req dto.CreateEventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Launch Party", req.Title)
		assert.Equal(t, date.Format(time.RFC3339), req.EventDate)

		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(&domain.Event{ID: "e1", Title: req.Title, EventDate: date})
	})
	defer srv.Close()

	event, err := c.CreateEvent(context.Background(), domain.EventForm{
		Title:     "Launch Party",
		EventDate: date,
	})

	require.NoError(t, err)
	assert.Equal(t, "e1", event.ID)
}

func TestREST_AdminLogin_RemembersKey(t *testing.T) {
	var sawKey string

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/admin/login":
			w.WriteHeader(http.StatusNoContent)
		case "/api/events/e1":
			sawKey = r.Header.Get("X-Admin-Key")
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	})
	defer srv.Close()

	require.NoError(t, c.AdminLogin(context.Background(), "s3cret"))
	require.NoError(t, c.DeleteEvent(context.Background(), "e1"))

	assert.Equal(t, "s3cret", sawKey)
}

func TestREST_AdminLogin_Rejected(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "invalid admin key"})
	})
	defer srv.Close()

	err := c.AdminLogin(context.Background(), "wrong")

	require.ErrorIs(t, err, domain.ErrInvalidAdminKey)
}

func TestREST_Register_Conflict(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusConflict)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "already applied"})
	})
	defer srv.Close()

	err := c.Register(context.Background(), "e1", domain.Contact{
		UserID: "u1", Name: "Alice", Email: "alice@example.com",
	})

	require.ErrorIs(t, err, domain.ErrAlreadyApplied)
}

func TestREST_DeleteEvent_NotFound(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "event not found"})
	})
	defer srv.Close()

	err := c.DeleteEvent(context.Background(), "missing")

	require.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestREST_UpdateApplicationStatus_NotFound(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/applications/missing", r.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})
	defer srv.Close()

	err := c.UpdateApplicationStatus(context.Background(), "missing", domain.ApplicationStatusConfirmed)

	require.ErrorIs(t, err, domain.ErrApplicationNotFound)
}

func TestREST_ValidationErrorCarriesMessage(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		json.NewEncoder(w).Encode(dto.ErrorResponse{Error: "title is required"})
	})
	defer srv.Close()

	_, err := c.CreateEvent(context.Background(), domain.EventForm{})

	require.ErrorIs(t, err, domain.ErrValidation)
	assert.Contains(t, err.Error(), "title is required")
}

func TestREST_RescheduleEvent(t *testing.T) {
	next := time.Date(2026, 9, 8, 18, 0, 0, 0, time.UTC)

	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/api/events/e1", r.URL.Path)

		var req dto.RescheduleEventRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, next.Format(time.RFC3339), req.EventDate)

		json.NewEncoder(w).Encode(&domain.Event{ID: "e1", EventDate: next})
	})
	defer srv.Close()

	require.NoError(t, c.RescheduleEvent(context.Background(), "e1", next))
}

func TestREST_ListApplications(t *testing.T) {
	c, srv := newTestClient(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/applications", r.URL.Path)
		json.NewEncoder(w).Encode([]*domain.Application{
			{ID: "a1", Status: domain.ApplicationStatusPending},
		})
	})
	defer srv.Close()

	apps, err := c.ListApplications(context.Background())

	require.NoError(t, err)
	require.Len(t, apps, 1)
	assert.Equal(t, domain.ApplicationStatusPending, apps[0].Status)
}
