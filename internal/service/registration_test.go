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
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

func newRegistrationService(t *testing.T) (*RegistrationService, *mocks.MockApplicationRepo, *mocks.MockEventRepo, *mocks.MockAnnouncer) {
	t.Helper()
	appRepo := mocks.NewMockApplicationRepo(t)
	eventRepo := mocks.NewMockEventRepo(t)
	announcer := mocks.NewMockAnnouncer(t)
	svc := NewRegistrationService(appRepo, eventRepo, announcer, newTestLogger(t))
	return svc, appRepo, eventRepo, announcer
}

func contact() domain.Contact {
	return domain.Contact{UserID: "u1", Name: "Alice", Email: "alice@example.com"}
}

func TestRegistrationService_Toggle_Applies(t *testing.T) {
	svc, appRepo, eventRepo, _ := newRegistrationService(t)

	event := &domain.Event{ID: "e1", Title: "Concert"}
	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(event, nil)
	appRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").
		Return(nil, domain.ErrApplicationNotFound)
	appRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	app, applied, err := svc.Toggle(context.Background(), "e1", contact())

	require.NoError(t, err)
	assert.True(t, applied)
	require.NotNil(t, app)
	assert.Equal(t, domain.ApplicationStatusPending, app.Status)
	assert.Equal(t, "Concert", app.EventTitle)
	assert.NotEmpty(t, app.ID)
}

func TestRegistrationService_Toggle_CancelsExisting(t *testing.T) {
	svc, appRepo, eventRepo, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	appRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").
		Return(&domain.Application{ID: "a1", Status: domain.ApplicationStatusConfirmed}, nil)
	appRepo.EXPECT().Delete(mock.Anything, "a1").Return(nil)

	app, applied, err := svc.Toggle(context.Background(), "e1", contact())

	require.NoError(t, err)
	assert.False(t, applied)
	assert.Nil(t, app)
}

func TestRegistrationService_Toggle_EventNotFound(t *testing.T) {
	svc, _, eventRepo, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, _, err := svc.Toggle(context.Background(), "missing", contact())

	require.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestRegistrationService_Toggle_MissingContact(t *testing.T) {
	svc, _, _, _ := newRegistrationService(t)

	_, _, err := svc.Toggle(context.Background(), "e1", domain.Contact{UserID: "u1"})

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_SetStatus_ConfirmAnnounces(t *testing.T) {
	svc, appRepo, _, announcer := newRegistrationService(t)

	app := &domain.Application{ID: "a1", EventTitle: "Concert", Name: "Alice", Status: domain.ApplicationStatusConfirmed}
	appRepo.EXPECT().UpdateStatus(mock.Anything, "a1", domain.ApplicationStatusConfirmed).Return(nil)
	appRepo.EXPECT().GetByID(mock.Anything, "a1").Return(app, nil)
	announcer.EXPECT().AnnounceApplicationDecision(mock.Anything, app).Return()

	err := svc.SetStatus(context.Background(), "a1", domain.ApplicationStatusConfirmed)

	require.NoError(t, err)
	time.Sleep(50 * time.Millisecond) // goroutine announce
}

func TestRegistrationService_SetStatus_BackToPendingIsSilent(t *testing.T) {
	svc, appRepo, _, _ := newRegistrationService(t)

	appRepo.EXPECT().UpdateStatus(mock.Anything, "a1", domain.ApplicationStatusPending).Return(nil)
	appRepo.EXPECT().GetByID(mock.Anything, "a1").
		Return(&domain.Application{ID: "a1", Status: domain.ApplicationStatusPending}, nil)

	err := svc.SetStatus(context.Background(), "a1", domain.ApplicationStatusPending)

	require.NoError(t, err)
}

func TestRegistrationService_SetStatus_InvalidStatus(t *testing.T) {
	svc, _, _, _ := newRegistrationService(t)

	err := svc.SetStatus(context.Background(), "a1", domain.ApplicationStatus("cancelled"))

	require.ErrorIs(t, err, domain.ErrValidation)
}

func TestRegistrationService_SetStatus_NotFound(t *testing.T) {
	svc, appRepo, _, _ := newRegistrationService(t)

	appRepo.EXPECT().UpdateStatus(mock.Anything, "missing", domain.ApplicationStatusRejected).
		Return(domain.ErrApplicationNotFound)

	err := svc.SetStatus(context.Background(), "missing", domain.ApplicationStatusRejected)

	require.ErrorIs(t, err, domain.ErrApplicationNotFound)
}

func TestRegistrationService_List(t *testing.T) {
	svc, appRepo, _, _ := newRegistrationService(t)

	appRepo.EXPECT().List(mock.Anything).
		Return([]*domain.Application{{ID: "a1"}, {ID: "a2"}}, nil)

	apps, err := svc.List(context.Background())

	require.NoError(t, err)
	assert.Len(t, apps, 2)
}

func TestRegistrationService_Toggle_CheckError(t *testing.T) {
	svc, appRepo, eventRepo, _ := newRegistrationService(t)

	eventRepo.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.Event{ID: "e1"}, nil)
	appRepo.EXPECT().GetByEventAndUser(mock.Anything, "e1", "u1").
		Return(nil, errors.New("db error"))

	_, _, err := svc.Toggle(context.Background(), "e1", contact())

	require.Error(t, err)
}
