package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const eventColumns = `id, operation_type, name, venue, starts_at, ends_at, status, created_at`

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

func (r *EventRepository) Create(ctx context.Context, e *domain.EventSession) error {
	query := `INSERT INTO events (id, operation_type, name, venue, starts_at, ends_at, status, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Master.ExecContext(
		ctx, query, e.ID, e.OperationType, e.Name,
		e.Venue, e.StartsAt, e.EndsAt, e.Status, e.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("insert event: %w", err)
	}

	return nil
}

func (r *EventRepository) GetByID(ctx context.Context, id string) (*domain.EventSession, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	var e domain.EventSession
	if err = row.Scan(
		&e.ID, &e.OperationType, &e.Name, &e.Venue,
		&e.StartsAt, &e.EndsAt, &e.Status, &e.CreatedAt,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrEventNotFound
		}
		return nil, fmt.Errorf("scan event: %w", err)
	}

	return &e, nil
}

func (r *EventRepository) List(ctx context.Context) ([]*domain.EventSession, error) {
	query := `SELECT ` + eventColumns + ` FROM events ORDER BY starts_at`

	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventSession
	for rows.Next() {
		var e domain.EventSession
		if err = rows.Scan(
			&e.ID, &e.OperationType, &e.Name, &e.Venue,
			&e.StartsAt, &e.EndsAt, &e.Status, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}

// RollStatuses advances UPCOMING sessions whose window has opened and ACTIVE
// sessions whose window has closed, returning everything that moved.
func (r *EventRepository) RollStatuses(ctx context.Context, now time.Time) ([]*domain.EventSession, error) {
	query := `UPDATE events
			  SET status = CASE WHEN ends_at <= $1 THEN $2 ELSE $3 END
			  WHERE (status = $4 AND starts_at <= $1)
				 OR (status = $3 AND ends_at <= $1)
			  RETURNING ` + eventColumns

	rows, err := r.db.QueryWithRetry(
		ctx, r.strategy, query, now,
		domain.EventStatusFinished, domain.EventStatusActive, domain.EventStatusUpcoming,
	)
	if err != nil {
		return nil, fmt.Errorf("roll statuses: %w", err)
	}
	defer rows.Close()

	var res []*domain.EventSession
	for rows.Next() {
		var e domain.EventSession
		if err = rows.Scan(
			&e.ID, &e.OperationType, &e.Name, &e.Venue,
			&e.StartsAt, &e.EndsAt, &e.Status, &e.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan rolled event: %w", err)
		}
		res = append(res, &e)
	}

	return res, rows.Err()
}
