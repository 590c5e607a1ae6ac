package ports

import (
	"context"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id string) (*domain.Event, error)
	List(ctx context.Context, viewerID string) ([]*domain.Event, error)
	UpdateDate(ctx context.Context, id string, date time.Time) error
	Delete(ctx context.Context, id string) error
	RefreshStatuses(ctx context.Context, eventDuration, horizon time.Duration) ([]*domain.Event, error)
}
