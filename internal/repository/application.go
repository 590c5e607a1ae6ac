package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/evgsol/eventhub/internal/domain"
	"github.com/lib/pq"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

type ApplicationRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewApplicationRepo(db *dbpg.DB) *ApplicationRepository {
	return &ApplicationRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

const applicationColumns = `a.id, a.event_id, e.title, a.user_id, a.name, a.email, a.phone, a.status, a.created_at`

func (r *ApplicationRepository) Create(ctx context.Context, a *domain.Application) error {
	query := `INSERT INTO applications (id, event_id, user_id, name, email, phone, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.ExecWithRetry(
		ctx, r.strategy, query,
		a.ID, a.EventID, a.UserID, a.Name, a.Email, a.Phone, a.Status, a.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrAlreadyApplied
		}
		return fmt.Errorf("insert application: %w", err)
	}

	return nil
}

func (r *ApplicationRepository) GetByID(ctx context.Context, id string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + `
			  FROM applications a
			  JOIN events e ON e.id = a.event_id
			  WHERE a.id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	return scanApplication(row)
}

func (r *ApplicationRepository) GetByEventAndUser(ctx context.Context, eventID, userID string) (*domain.Application, error) {
	query := `SELECT ` + applicationColumns + `
			  FROM applications a
			  JOIN events e ON e.id = a.event_id
			  WHERE a.event_id = $1 AND a.user_id = $2`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, eventID, userID)
	if err != nil {
		return nil, fmt.Errorf("get application: %w", err)
	}

	return scanApplication(row)
}

func (r *ApplicationRepository) List(ctx context.Context) ([]*domain.Application, error) {
	query := `SELECT ` + applicationColumns + `
			  FROM applications a
			  JOIN events e ON e.id = a.event_id
			  ORDER BY a.created_at DESC`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}
	defer rows.Close()

	var res []*domain.Application
	for rows.Next() {
		var a domain.Application
		if err = rows.Scan(
			&a.ID, &a.EventID, &a.EventTitle, &a.UserID,
			&a.Name, &a.Email, &a.Phone, &a.Status, &a.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan application: %w", err)
		}
		res = append(res, &a)
	}

	return res, rows.Err()
}

func (r *ApplicationRepository) UpdateStatus(ctx context.Context, id string, status domain.ApplicationStatus) error {
	query := `UPDATE applications SET status = $2 WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id, status)
	if err != nil {
		return fmt.Errorf("update application status: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("application rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrApplicationNotFound
	}

	return nil
}

// Delete removes the application entirely. Cancelling a registration is
// modeled as absence, a persisted "none" status does not exist.
func (r *ApplicationRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM applications WHERE id = $1`

	res, err := r.db.ExecWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return fmt.Errorf("delete application: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("application rows affected: %w", err)
	}
	if rows == 0 {
		return domain.ErrApplicationNotFound
	}

	return nil
}

func scanApplication(row *sql.Row) (*domain.Application, error) {
	var a domain.Application
	if err := row.Scan(
		&a.ID, &a.EventID, &a.EventTitle, &a.UserID,
		&a.Name, &a.Email, &a.Phone, &a.Status, &a.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrApplicationNotFound
		}
		return nil, fmt.Errorf("scan application: %w", err)
	}

	return &a, nil
}
