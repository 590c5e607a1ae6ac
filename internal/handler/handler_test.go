package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
	"github.com/evgsol/eventhub/internal/handler/dto"
	hmocks "github.com/evgsol/eventhub/internal/handler/mocks"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wb-go/wbf/ginext"
)

const testAdminKey = "test-admin-key"

func setupRouter(t *testing.T) (*hmocks.MockEventSvc, *hmocks.MockRegistrationSvc, http.Handler) {
	t.Helper()
	eventSvc := hmocks.NewMockEventSvc(t)
	registrationSvc := hmocks.NewMockRegistrationSvc(t)

	h := NewHandler(eventSvc, registrationSvc, testAdminKey)

	r := ginext.New("test")
	api := r.Group("/api")
	{
		api.GET("/events", h.ListEvents)
		api.POST("/events", h.CreateEvent)
		api.DELETE("/events/:id", h.DeleteEvent)
		api.PATCH("/events/:id", h.RescheduleEvent)
		api.POST("/events/:id/register", h.Register)
		api.GET("/applications", h.ListApplications)
		api.PATCH("/applications/:id", h.UpdateApplicationStatus)
		api.POST("/admin/login", h.AdminLogin)
	}

	return eventSvc, registrationSvc, r
}

// --- Events ---

func TestHandler_ListEvents_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	events := []*domain.Event{
		{ID: "e1", Title: "Concert", EventDate: time.Now(), CreatedAt: time.Now()},
		{ID: "e2", Title: "Meetup", EventDate: time.Now(), CreatedAt: time.Now()},
	}
	eventSvc.EXPECT().List(mock.Anything, "").Return(events, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 2)
}

func TestHandler_ListEvents_PassesViewer(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().List(mock.Anything, "u1").Return(nil, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events?viewer_id=u1", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_CreateEvent_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	date := time.Now().Add(24 * time.Hour)
	event := &domain.Event{
		ID:        uuid.New().String(),
		Title:     "Launch Party",
		EventDate: date,
		Category:  "Networking",
		CreatedAt: time.Now(),
	}
	eventSvc.EXPECT().CreateEvent(mock.Anything, mock.Anything).Return(event, nil)

	body, _ := json.Marshal(dto.CreateEventRequest{
		Title:     "Launch Party",
		EventDate: date.Format(time.RFC3339),
		Category:  "Networking",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusCreated, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Launch Party", resp.Title)
}

func TestHandler_CreateEvent_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"title":"X","event_date":"not-a-date"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_CreateEvent_BadRequest(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"title":""}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().Delete(mock.Anything, eventID).Return(nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_DeleteEvent_InvalidID(t *testing.T) {
	_, _, r := setupRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/not-a-uuid", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_DeleteEvent_NotFound(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	eventSvc.EXPECT().Delete(mock.Anything, eventID).Return(domain.ErrEventNotFound)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodDelete, "/api/events/"+eventID, nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestHandler_RescheduleEvent_Success(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventID := uuid.New().String()
	next := time.Date(2026, 9, 8, 18, 0, 0, 0, time.UTC)
	event := &domain.Event{ID: eventID, Title: "Concert", EventDate: next, CreatedAt: time.Now()}

	eventSvc.EXPECT().Reschedule(mock.Anything, eventID, next).Return(event, nil)

	body, _ := json.Marshal(dto.RescheduleEventRequest{EventDate: next.Format(time.RFC3339)})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/events/"+eventID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.EventResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, next.Format(time.RFC3339), resp.EventDate)
}

func TestHandler_RescheduleEvent_InvalidDate(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"event_date":"tomorrow"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/events/"+uuid.New().String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

// --- Registrations ---

func TestHandler_Register_Applies(t *testing.T) {
	_, registrationSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	app := &domain.Application{
		ID:        uuid.New().String(),
		EventID:   eventID,
		UserID:    "u1",
		Status:    domain.ApplicationStatusPending,
		CreatedAt: time.Now(),
	}

	registrationSvc.EXPECT().Toggle(mock.Anything, eventID, mock.Anything).Return(app, true, nil)

	body, _ := json.Marshal(dto.RegisterRequest{
		UserID: "u1",
		Name:   "Alice",
		Email:  "alice@example.com",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.True(t, resp.Applied)
	require.NotNil(t, resp.Application)
	assert.Equal(t, "pending", resp.Application.Status)
}

func TestHandler_Register_Cancels(t *testing.T) {
	_, registrationSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	registrationSvc.EXPECT().Toggle(mock.Anything, eventID, mock.Anything).Return(nil, false, nil)

	body, _ := json.Marshal(dto.RegisterRequest{
		UserID: "u1",
		Name:   "Alice",
		Email:  "alice@example.com",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp dto.RegistrationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.False(t, resp.Applied)
	assert.Nil(t, resp.Application)
}

func TestHandler_Register_MissingEmail(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"user_id":"u1","name":"Alice"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+uuid.New().String()+"/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_Register_Conflict(t *testing.T) {
	_, registrationSvc, r := setupRouter(t)

	eventID := uuid.New().String()
	registrationSvc.EXPECT().Toggle(mock.Anything, eventID, mock.Anything).
		Return(nil, false, domain.ErrAlreadyApplied)

	body, _ := json.Marshal(dto.RegisterRequest{
		UserID: "u1",
		Name:   "Alice",
		Email:  "alice@example.com",
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events/"+eventID+"/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

// --- Applications ---

func TestHandler_ListApplications_Success(t *testing.T) {
	_, registrationSvc, r := setupRouter(t)

	apps := []*domain.Application{
		{ID: "a1", EventID: "e1", UserID: "u1", Status: domain.ApplicationStatusPending, CreatedAt: time.Now()},
	}
	registrationSvc.EXPECT().List(mock.Anything).Return(apps, nil)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/applications", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)

	var resp []dto.ApplicationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp, 1)
}

func TestHandler_UpdateApplicationStatus_Success(t *testing.T) {
	_, registrationSvc, r := setupRouter(t)

	appID := uuid.New().String()
	registrationSvc.EXPECT().SetStatus(mock.Anything, appID, domain.ApplicationStatusConfirmed).Return(nil)

	body := []byte(`{"status":"confirmed"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/applications/"+appID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestHandler_UpdateApplicationStatus_UnknownStatus(t *testing.T) {
	_, _, r := setupRouter(t)

	body := []byte(`{"status":"cancelled"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/applications/"+uuid.New().String(), bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_UpdateApplicationStatus_NotFound(t *testing.T) {
	_, registrationSvc, r := setupRouter(t)

	appID := uuid.New().String()
	registrationSvc.EXPECT().SetStatus(mock.Anything, appID, domain.ApplicationStatusRejected).
		Return(domain.ErrApplicationNotFound)

	body := []byte(`{"status":"rejected"}`)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPatch, "/api/applications/"+appID, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

// --- Admin ---

func TestHandler_AdminLogin_Success(t *testing.T) {
	_, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.AdminLoginRequest{Password: testAdminKey})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
}

func TestHandler_AdminLogin_WrongKey(t *testing.T) {
	_, _, r := setupRouter(t)

	body, _ := json.Marshal(dto.AdminLoginRequest{Password: "wrong"})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/admin/login", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestHandler_HandleError_InternalError(t *testing.T) {
	eventSvc, _, r := setupRouter(t)

	eventSvc.EXPECT().List(mock.Anything, "").Return(nil, assert.AnError)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/events", nil)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
