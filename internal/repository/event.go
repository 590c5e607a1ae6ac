package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type EventRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewEventRepo(db *dbpg.DB) *EventRepository {
	return &EventRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const eventColumns = `e.id, e.title, e.description, e.event_date, e.location, e.category,
		e.capacity, e.image_url, e.status, e.created_at, e.updated_at,
		(SELECT COUNT(*) FROM applications a
		 WHERE a.event_id = e.id AND a.status = 'confirmed')`

func (r *EventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `INSERT INTO events (id, title, description, event_date, location, category, capacity, image_url, status, created_at, updated_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)`
	now := time.Now().UTC()
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		e.ID, e.Title, e.Description, e.EventDate, e.Location,
		e.Category, e.Capacity, e.ImageURL, e.Status, now, now,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

// List returns all events newest-first. When viewerID is non-empty each event
// carries the viewer's registration status; the column is never persisted.
func (r *EventRepository) List(ctx context.Context, viewerID string) ([]*domain.Event, error) {
	query := `SELECT ` + eventColumns + `,
			  		 COALESCE(v.status, 'none')
			  FROM events e
			  LEFT JOIN applications v ON v.event_id = e.id AND v.user_id = $1
			  ORDER BY e.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, viewerID)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		var reg string
		if err = rows.Scan(
			&e.ID, &e.Title, &e.Description, &e.EventDate, &e.Location, &e.Category,
			&e.Capacity, &e.ImageURL, &e.Status, &e.CreatedAt, &e.UpdatedAt,
			&e.Attendees, &reg,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		if viewerID != "" {
			e.RegistrationStatus = domain.RegistrationStatus(reg)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := `SELECT ` + eventColumns + `
			  FROM events e
			  WHERE e.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.Event
	if err = row.Scan(
		&e.ID, &e.Title, &e.Description, &e.EventDate, &e.Location, &e.Category,
		&e.Capacity, &e.ImageURL, &e.Status, &e.CreatedAt, &e.UpdatedAt,
		&e.Attendees,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) UpdateDate(ctx context.Context, id string, date time.Time) error {
	query := `UPDATE events SET event_date = $2, updated_at = now() WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, date)
	if err != nil {
		return fmt.Errorf("update event date: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

func (r *EventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete event: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("event rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrEventNotFound
	}

	return nil
}

// RefreshStatuses recomputes the lifecycle status of every event from its date
// and returns the events whose status actually changed.
func (r *EventRepository) RefreshStatuses(ctx context.Context, eventDuration, horizon time.Duration) ([]*domain.Event, error) {
	query := `
        UPDATE events e
        SET status = s.next, updated_at = now()
        FROM (
            SELECT id,
                   CASE
                       WHEN event_date + make_interval(secs => $1) < now() THEN 'completed'
                       WHEN event_date <= now() THEN 'ongoing'
                       WHEN event_date <= now() + make_interval(secs => $2) THEN 'upcoming'
                       ELSE 'future'
                   END AS next
            FROM events
        ) s
        WHERE e.id = s.id AND e.status <> s.next
        RETURNING e.id, e.title, e.event_date, e.status`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, eventDuration.Seconds(), horizon.Seconds())
	if err != nil {
		return nil, fmt.Errorf("refresh statuses: %w", err)
	}
	defer rows.Close()

	var res []*domain.Event
	for rows.Next() {
		var e domain.Event
		if err = rows.Scan(&e.ID, &e.Title, &e.EventDate, &e.Status); err != nil {
			return nil, fmt.Errorf("scan refreshed event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
