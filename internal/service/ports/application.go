package ports

import (
	"context"

	"github.com/evgsol/eventhub/internal/domain"
)

type ApplicationRepo interface {
	Create(ctx context.Context, a *domain.Application) error
	GetByID(ctx context.Context, id string) (*domain.Application, error)
	GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Application, error)
	List(ctx context.Context) ([]*domain.Application, error)
	UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
	Delete(ctx context.Context, id string) error
}
