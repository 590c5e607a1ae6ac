package appstate

import (
	"context"
	"sync"
	"time"

	"github.com/evgsol/eventhub/internal/appstate/ports"
	"github.com/evgsol/eventhub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Store holds the full event and application collections as loaded from the
// backend. Reloads replace a collection wholesale: rather than merging field
// by field, truth is re-derived from the backend whenever certainty is
// required. The mutex only keeps interleaved completions memory-safe; the
// single writer is the Reconciler.
type Store struct {
	mu      sync.Mutex
	backend ports.Backend
	session *Session
	log     logger.Logger

	events       []*domain.Event // newest-first
	applications []*domain.Application
	loading      bool
}

func NewStore(backend ports.Backend, session *Session, log logger.Logger) *Store {
	return &Store{
		backend: backend,
		session: session,
		log:     log,
	}
}

// LoadEvents fetches all events and replaces the local collection. Failures
// are logged, not surfaced: the UI keeps showing whatever it had.
func (s *Store) LoadEvents(ctx context.Context) {
	s.setLoading(true)
	defer s.setLoading(false)

	events, err := s.backend.ListEvents(ctx, s.session.UserID())
	if err != nil {
		s.log.Error("failed to load events",
			logger.String("error", err.Error()),
		)
		return
	}

	s.mu.Lock()
	s.events = events
	s.mu.Unlock()
}

func (s *Store) LoadApplications(ctx context.Context) {
	apps, err := s.backend.ListApplications(ctx)
	if err != nil {
		s.log.Error("failed to load applications",
			logger.String("error", err.Error()),
		)
		return
	}

	s.mu.Lock()
	s.applications = apps
	s.mu.Unlock()
}

func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Events returns a value-copy snapshot, newest-first.
func (s *Store) Events() []domain.Event {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]domain.Event, len(s.events))
	for i, e := range s.events {
		res[i] = *e
	}
	return res
}

func (s *Store) Applications() []domain.Application {
	s.mu.Lock()
	defer s.mu.Unlock()

	res := make([]domain.Application, len(s.applications))
	for i, a := range s.applications {
		res[i] = *a
	}
	return res
}

func (s *Store) EventByID(id string) (domain.Event, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.ID == id {
			return *e, true
		}
	}
	return domain.Event{}, false
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	s.loading = v
	s.mu.Unlock()
}

// Mutators below are speculative or post-commit patches applied by the
// Reconciler only.

func (s *Store) setRegistrationStatus(eventID string, status domain.RegistrationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.ID == eventID {
			e.RegistrationStatus = status
			return
		}
	}
}

func (s *Store) setApplicationStatus(id string, status domain.ApplicationStatus) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, a := range s.applications {
		if a.ID == id {
			a.Status = status
			return
		}
	}
}

func (s *Store) prependEvent(e *domain.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.events = append([]*domain.Event{e}, s.events...)
}

func (s *Store) removeEvent(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, e := range s.events {
		if e.ID == id {
			s.events = append(s.events[:i], s.events[i+1:]...)
			return
		}
	}
}

func (s *Store) patchEventDate(id string, date time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.events {
		if e.ID == id {
			e.EventDate = date
			return
		}
	}
}
