package scheduler

import (
	"context"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type statusRefresher interface {
	RefreshStatuses(ctx context.Context) ([]*domain.Event, error)
}

// Scheduler periodically moves events through their lifecycle
// (future -> upcoming -> ongoing -> completed) based on their dates.
type Scheduler struct {
	eventService statusRefresher
	interval     time.Duration
	logger       logger.Logger
}

func New(
	eventService statusRefresher,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	changed, err := s.eventService.RefreshStatuses(ctx)
	if err != nil {
		s.logger.Error("failed to refresh event statuses",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range changed {
		s.logger.Info("event status changed",
			logger.String("event_id", e.ID),
			logger.String("status", string(e.Status)),
		)
	}
}
