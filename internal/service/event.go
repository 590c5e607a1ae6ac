package service

import (
	"context"
	"fmt"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
	"github.com/evgsol/eventhub/internal/service/ports"
	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"
)

type EventService struct {
	repo          ports.EventRepo
	announcer     ports.Announcer
	logger        logger.Logger
	eventDuration time.Duration
	horizon       time.Duration
}

func NewEventService(
	repo ports.EventRepo,
	announcer ports.Announcer,
	logger logger.Logger,
	eventDuration, horizon time.Duration,
) *EventService {
	return &EventService{
		repo:          repo,
		announcer:     announcer,
		logger:        logger,
		eventDuration: eventDuration,
		horizon:       horizon,
	}
}

func (s *EventService) CreateEvent(ctx context.Context, form domain.EventForm) (*domain.Event, error) {
	if form.Title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrValidation)
	}
	if form.EventDate.IsZero() {
		return nil, fmt.Errorf("%w: event_date is required", domain.ErrValidation)
	}
	if form.Capacity < 0 {
		return nil, fmt.Errorf("%w: capacity must not be negative", domain.ErrValidation)
	}

	event := &domain.Event{
		ID:          uuid.New().String(),
		Title:       form.Title,
		Description: form.Description,
		EventDate:   form.EventDate,
		Location:    form.Location,
		Category:    form.Category,
		Capacity:    form.Capacity,
		ImageURL:    form.ImageURL,
		Status:      s.statusFor(form.EventDate),
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event created",
		logger.String("event_id", event.ID),
		logger.String("title", event.Title),
	)

	return event, nil
}

func (s *EventService) List(ctx context.Context, viewerID string) ([]*domain.Event, error) {
	return s.repo.List(ctx, viewerID)
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	s.logger.Info("event deleted", logger.String("event_id", id))

	return nil
}

// Reschedule changes only the event date and announces the change so that
// applicants are informed.
func (s *EventService) Reschedule(ctx context.Context, id string, date time.Time) (*domain.Event, error) {
	event, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	oldDate := event.EventDate

	if err = s.repo.UpdateDate(ctx, id, date); err != nil {
		return nil, fmt.Errorf("update date: %w", err)
	}

	event.EventDate = date

	s.logger.Info("event rescheduled",
		logger.String("event_id", id),
		logger.String("new_date", date.Format(time.RFC3339)),
	)

	go s.announcer.AnnounceEventRescheduled(context.WithoutCancel(ctx), event, oldDate)

	return event, nil
}

func (s *EventService) RefreshStatuses(ctx context.Context) ([]*domain.Event, error) {
	changed, err := s.repo.RefreshStatuses(ctx, s.eventDuration, s.horizon)
	if err != nil {
		return nil, fmt.Errorf("refresh statuses: %w", err)
	}

	return changed, nil
}

func (s *EventService) statusFor(date time.Time) domain.EventStatus {
	now := time.Now().UTC()
	switch {
	case date.Add(s.eventDuration).Before(now):
		return domain.EventStatusCompleted
	case !date.After(now):
		return domain.EventStatusOngoing
	case !date.After(now.Add(s.horizon)):
		return domain.EventStatusUpcoming
	default:
		return domain.EventStatusFuture
	}
}
