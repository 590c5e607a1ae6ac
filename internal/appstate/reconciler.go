package appstate

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/evgsol/eventhub/internal/appstate/ports"
	"github.com/evgsol/eventhub/internal/domain"
	"github.com/wb-go/wbf/logger"
)

// Reconciler keeps the local collections consistent with backend truth after
// each mutating action, either by optimistic patching with revert-on-failure
// or by committing first and reloading.
//
// Actions against the same entity are not serialized: two in-flight
// registration toggles race and the last settling call wins. Accepted
// behavior, not a guarantee.
type Reconciler struct {
	backend ports.Backend
	store   *Store
	session *Session
	notices *Notifier
	log     logger.Logger

	mu             sync.Mutex
	createFormOpen bool
}

func NewReconciler(
	backend ports.Backend,
	store *Store,
	session *Session,
	notices *Notifier,
	log logger.Logger,
) *Reconciler {
	return &Reconciler{
		backend: backend,
		store:   store,
		session: session,
		notices: notices,
		log:     log,
	}
}

// mutation is the three-phase protocol every action follows: apply the
// speculative local delta, commit against the backend, and on failure apply
// the compensation. always runs after settlement regardless of outcome.
type mutation struct {
	name       string
	speculate  func()
	commit     func(ctx context.Context) error
	onSuccess  func()
	compensate func(ctx context.Context)
	always     func(ctx context.Context)
	successMsg string
	errorMsg   string
}

func (r *Reconciler) run(ctx context.Context, m mutation) error {
	if m.speculate != nil {
		m.speculate()
	}

	err := m.commit(ctx)
	if err == nil {
		if m.onSuccess != nil {
			m.onSuccess()
		}
		if m.successMsg != "" {
			r.notices.Success(m.successMsg)
		}
	} else {
		r.log.Error("mutation failed",
			logger.String("action", m.name),
			logger.String("error", err.Error()),
		)
		if m.compensate != nil {
			m.compensate(ctx)
		}
		if m.errorMsg != "" {
			r.notices.Error(m.errorMsg)
		}
	}

	if m.always != nil {
		m.always(ctx)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", m.name, err)
	}
	return nil
}

// ToggleRegistration applies to an event when the viewer has no registration
// for it and cancels the registration otherwise. The new status is written
// into the local event immediately; a failed commit discards it by reloading
// the whole event collection.
func (r *Reconciler) ToggleRegistration(ctx context.Context, eventID string) error {
	user := r.session.User()
	if user == nil {
		return domain.ErrAuthRequired
	}

	event, ok := r.store.EventByID(eventID)
	if !ok {
		return domain.ErrEventNotFound
	}

	applying := event.RegistrationStatus == "" || event.RegistrationStatus == domain.RegistrationNone

	next := domain.RegistrationNone
	successMsg := "Registration cancelled."
	if applying {
		next = domain.RegistrationPending
		successMsg = "Application submitted. You will be notified once it is reviewed."
	}

	return r.run(ctx, mutation{
		name: "toggle registration",
		speculate: func() {
			r.store.setRegistrationStatus(eventID, next)
		},
		commit: func(ctx context.Context) error {
			return r.backend.Register(ctx, eventID, domain.Contact{
				UserID: user.ID,
				Name:   user.Name,
				Email:  user.Email,
				Phone:  user.Phone,
			})
		},
		compensate: func(ctx context.Context) {
			r.store.LoadEvents(ctx)
		},
		successMsg: successMsg,
		errorMsg:   "Something went wrong. Please try again.",
	})
}

// SetApplicationStatus persists an admin decision, patches the local record
// on success and reloads the event collection in every case: attendee counts
// are recomputed by the backend and only a reload makes them visible.
func (r *Reconciler) SetApplicationStatus(ctx context.Context, applicationID string, status domain.ApplicationStatus) error {
	msg := "Application moved back to pending."
	switch status {
	case domain.ApplicationStatusConfirmed:
		msg = "Application approved."
	case domain.ApplicationStatusRejected:
		msg = "Application rejected."
	}

	return r.run(ctx, mutation{
		name: "set application status",
		commit: func(ctx context.Context) error {
			return r.backend.UpdateApplicationStatus(ctx, applicationID, status)
		},
		onSuccess: func() {
			r.store.setApplicationStatus(applicationID, status)
		},
		always: func(ctx context.Context) {
			r.store.LoadEvents(ctx)
		},
		successMsg: msg,
		errorMsg:   "Failed to update the application. Please try again.",
	})
}

// CreateEvent submits the form; the returned record is prepended so the
// newest event shows first, and the creation form closes. On failure the
// form stays open.
func (r *Reconciler) CreateEvent(ctx context.Context, form domain.EventForm) error {
	var created *domain.Event

	return r.run(ctx, mutation{
		name: "create event",
		commit: func(ctx context.Context) error {
			event, err := r.backend.CreateEvent(ctx, form)
			if err != nil {
				return err
			}
			created = event
			return nil
		},
		onSuccess: func() {
			r.store.prependEvent(created)
			r.CloseCreateForm()
		},
		successMsg: "Event created.",
		errorMsg:   "Failed to create the event. Please try again.",
	})
}

// DeleteEvent is guarded by an explicit confirmation: when declined, no call
// is made and nothing changes.
func (r *Reconciler) DeleteEvent(ctx context.Context, eventID string, confirmed bool) error {
	if !confirmed {
		return nil
	}

	return r.run(ctx, mutation{
		name: "delete event",
		commit: func(ctx context.Context) error {
			return r.backend.DeleteEvent(ctx, eventID)
		},
		onSuccess: func() {
			r.store.removeEvent(eventID)
		},
		successMsg: "Event deleted.",
		errorMsg:   "Failed to delete the event. Please try again.",
	})
}

// RescheduleEvent commits the new date and patches the local record only
// after the backend confirms; the stale date stays in place on failure.
func (r *Reconciler) RescheduleEvent(ctx context.Context, eventID string, date time.Time) error {
	return r.run(ctx, mutation{
		name: "reschedule event",
		commit: func(ctx context.Context) error {
			return r.backend.RescheduleEvent(ctx, eventID, date)
		},
		onSuccess: func() {
			r.store.patchEventDate(eventID, date)
		},
		successMsg: "Event rescheduled. Applicants have been informed.",
		errorMsg:   "Failed to reschedule the event. Please try again.",
	})
}

func (r *Reconciler) OpenCreateForm() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createFormOpen = true
}

func (r *Reconciler) CloseCreateForm() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.createFormOpen = false
}

func (r *Reconciler) CreateFormOpen() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.createFormOpen
}
