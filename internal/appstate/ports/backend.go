package ports

import (
	"context"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
)

// Backend is the persistence collaborator the application state is
// reconciled against. It is assumed remote and fallible; implementations do
// not retry.
type Backend interface {
	ListEvents(ctx context.Context, viewerID string) ([]*domain.Event, error)
	CreateEvent(ctx context.Context, form domain.EventForm) (*domain.Event, error)
	DeleteEvent(ctx context.Context, id string) error
	RescheduleEvent(ctx context.Context, id string, date time.Time) error
	Register(ctx context.Context, eventID string, contact domain.Contact) error
	ListApplications(ctx context.Context) ([]*domain.Application, error)
	UpdateApplicationStatus(ctx context.Context, id string, status domain.ApplicationStatus) error
	AdminLogin(ctx context.Context, password string) error
}
