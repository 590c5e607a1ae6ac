package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
	"github.com/evgsol/eventhub/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type RegistrationService struct {
	appRepo   ports.ApplicationRepo
	eventRepo ports.EventRepo
	announcer ports.Announcer
	logger    logger.Logger
}

func NewRegistrationService(
	appRepo ports.ApplicationRepo,
	eventRepo ports.EventRepo,
	announcer ports.Announcer,
	logger logger.Logger,
) *RegistrationService {
	return &RegistrationService{
		appRepo:   appRepo,
		eventRepo: eventRepo,
		announcer: announcer,
		logger:    logger,
	}
}

// Toggle registers the contact for the event when no application exists and
// cancels the existing application otherwise. Returns the created application
// and true on apply, nil and false on cancel.
func (s *RegistrationService) Toggle(ctx context.Context, eventID string, contact domain.Contact) (*domain.Application, bool, error) {
	if contact.UserID == "" {
		return nil, false, fmt.Errorf("%w: user_id is required", domain.ErrValidation)
	}
	if contact.Name == "" || contact.Email == "" {
		return nil, false, fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, eventID)
	if err != nil {
		return nil, false, fmt.Errorf("check event: %w", err)
	}

	existing, err := s.appRepo.GetByEventAndUser(ctx, eventID, contact.UserID)
	switch {
	case err == nil:
		if err = s.appRepo.Delete(ctx, existing.ID); err != nil {
			return nil, false, fmt.Errorf("cancel application: %w", err)
		}

		s.logger.Info("registration cancelled",
			logger.String("application_id", existing.ID),
			logger.String("event_id", eventID),
			logger.String("user_id", contact.UserID),
		)

		return nil, false, nil

	case errors.Is(err, domain.ErrApplicationNotFound):
		app := &domain.Application{
			ID:         uuid.New().String(),
			EventID:    eventID,
			EventTitle: event.Title,
			UserID:     contact.UserID,
			Name:       contact.Name,
			Email:      contact.Email,
			Phone:      contact.Phone,
			Status:     domain.ApplicationStatusPending,
			CreatedAt:  time.Now().UTC(),
		}
		if err = s.appRepo.Create(ctx, app); err != nil {
			return nil, false, fmt.Errorf("create application: %w", err)
		}

		s.logger.Info("registration applied",
			logger.String("application_id", app.ID),
			logger.String("event_id", eventID),
			logger.String("user_id", contact.UserID),
		)

		return app, true, nil

	default:
		return nil, false, fmt.Errorf("check application: %w", err)
	}
}

func (s *RegistrationService) List(ctx context.Context) ([]*domain.Application, error) {
	return s.appRepo.List(ctx)
}

// SetStatus persists an admin decision on an application. Attendee counts are
// derived from confirmed applications, so clients re-read events afterwards.
func (s *RegistrationService) SetStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	if !status.Valid() {
		return fmt.Errorf("%w: unknown status %q", domain.ErrValidation, status)
	}

	if err := s.appRepo.UpdateStatus(ctx, id, status); err != nil {
		return fmt.Errorf("update status: %w", err)
	}

	s.logger.Info("application status updated",
		logger.String("application_id", id),
		logger.String("status", string(status)),
	)

	app, err := s.appRepo.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get application for announcement",
			logger.String("application_id", id),
			logger.String("error", err.Error()),
		)
		return nil
	}

	if status != domain.ApplicationStatusPending {
		go s.announcer.AnnounceApplicationDecision(context.WithoutCancel(ctx), app)
	}

	return nil
}
