package ports

import (
	"context"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
)

type Announcer interface {
	AnnounceEventRescheduled(ctx context.Context, event *domain.Event, oldDate time.Time)
	AnnounceApplicationDecision(ctx context.Context, app *domain.Application)
}
