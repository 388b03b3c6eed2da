package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/wb-go/wbf/dbpg"
	"github.com/wb-go/wbf/retry"
)

const ticketColumns = `id, event_id, owner_user_id, code, type, status,
		used_at, used_in_mode, used_by_device_id, metadata_detail, created_at`

type TicketRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewTicketRepo(db *dbpg.DB) *TicketRepository {
	return &TicketRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *TicketRepository) Create(ctx context.Context, t *domain.Ticket) error {
	query := `INSERT INTO tickets (id, event_id, owner_user_id, code, type, status, metadata_detail, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := r.db.Master.ExecContext(
		ctx, query, t.ID, t.EventID, t.OwnerUserID,
		t.Code, t.Type, t.Status, t.MetadataDetail, t.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return domain.ErrCodeTaken
		}
		return fmt.Errorf("insert ticket: %w", err)
	}

	return nil
}

func (r *TicketRepository) GetByCode(ctx context.Context, code string) (*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets WHERE code = $1`

	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, code)
	if err != nil {
		return nil, fmt.Errorf("get ticket by code: %w", err)
	}

	t, err := scanTicket(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrTicketNotFound
		}
		return nil, fmt.Errorf("scan ticket: %w", err)
	}

	return t, nil
}

// Redeem is the compare-and-set commit of the VALID -> USED transition. The
// UPDATE is conditioned on the stored status still being VALID, so of any
// number of concurrent redemptions of one code exactly one wins; the losers
// see zero rows and get the current state classified as an error.
func (r *TicketRepository) Redeem(ctx context.Context, code string, in domain.RedeemInput) (*domain.Ticket, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	query := `UPDATE tickets
			  SET status = $2, used_at = $3, used_in_mode = $4, used_by_device_id = $5
			  WHERE code = $1 AND status = $6`
	res, err := tx.ExecContext(
		ctx, query, code,
		domain.TicketStatusUsed, in.At, in.Mode, in.DeviceID,
		domain.TicketStatusValid,
	)
	if err != nil {
		return nil, fmt.Errorf("redeem ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("redeem rows affected: %w", err)
	}
	if rows == 0 {
		// Lost the race or the ticket was never redeemable. Classify.
		var status domain.TicketStatus
		checkQuery := `SELECT status FROM tickets WHERE code = $1`
		if scanErr := tx.QueryRowContext(ctx, checkQuery, code).Scan(&status); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return nil, domain.ErrTicketNotFound
			}
			return nil, fmt.Errorf("classify failed redeem: %w", scanErr)
		}
		switch status {
		case domain.TicketStatusUsed:
			return nil, domain.ErrTicketUsed
		case domain.TicketStatusBlocked:
			return nil, domain.ErrTicketBlocked
		default:
			return nil, fmt.Errorf("redeem applied no rows for status %q", status)
		}
	}

	row := tx.QueryRowContext(ctx, `SELECT `+ticketColumns+` FROM tickets WHERE code = $1`, code)
	t, err := scanTicket(row.Scan)
	if err != nil {
		return nil, fmt.Errorf("reload redeemed ticket: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit redeem: %w", err)
	}

	return t, nil
}

// Block sets the administrative hold. Blocking an already blocked ticket is a
// no-op; a spent ticket cannot be blocked.
func (r *TicketRepository) Block(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(
		ctx,
		`UPDATE tickets SET status = $2 WHERE id = $1 AND status = $3`,
		id, domain.TicketStatusBlocked, domain.TicketStatusValid,
	)
	if err != nil {
		return fmt.Errorf("block ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("block rows affected: %w", err)
	}
	if rows == 0 {
		var status domain.TicketStatus
		if scanErr := tx.QueryRowContext(ctx, `SELECT status FROM tickets WHERE id = $1`, id).Scan(&status); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrTicketNotFound
			}
			return fmt.Errorf("classify failed block: %w", scanErr)
		}
		if status == domain.TicketStatusUsed {
			return domain.ErrTicketUsed
		}
	}

	return tx.Commit()
}

// Unblock lifts an administrative block, returning the ticket to VALID. A
// spent ticket stays spent; unblocking a VALID ticket is a no-op.
func (r *TicketRepository) Unblock(ctx context.Context, id string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.ExecContext(
		ctx,
		`UPDATE tickets SET status = $2 WHERE id = $1 AND status = $3`,
		id, domain.TicketStatusValid, domain.TicketStatusBlocked,
	)
	if err != nil {
		return fmt.Errorf("unblock ticket: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("unblock rows affected: %w", err)
	}
	if rows == 0 {
		var status domain.TicketStatus
		if scanErr := tx.QueryRowContext(ctx, `SELECT status FROM tickets WHERE id = $1`, id).Scan(&status); scanErr != nil {
			if errors.Is(scanErr, sql.ErrNoRows) {
				return domain.ErrTicketNotFound
			}
			return fmt.Errorf("classify failed unblock: %w", scanErr)
		}
		if status == domain.TicketStatusUsed {
			return domain.ErrTicketUsed
		}
	}

	return tx.Commit()
}

func (r *TicketRepository) ListByOwner(ctx context.Context, ownerUserID string) ([]*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets
			  WHERE owner_user_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, query, ownerUserID)
}

func (r *TicketRepository) ListByEvent(ctx context.Context, eventID string) ([]*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets
			  WHERE event_id = $1
			  ORDER BY created_at DESC`
	return r.list(ctx, query, eventID)
}

func (r *TicketRepository) ListAll(ctx context.Context) ([]*domain.Ticket, error) {
	query := `SELECT ` + ticketColumns + ` FROM tickets ORDER BY created_at DESC`
	return r.list(ctx, query)
}

func (r *TicketRepository) list(ctx context.Context, query string, args ...any) ([]*domain.Ticket, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}
	defer rows.Close()

	var res []*domain.Ticket
	for rows.Next() {
		t, err := scanTicket(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan ticket: %w", err)
		}
		res = append(res, t)
	}

	return res, rows.Err()
}

func scanTicket(scan func(dest ...any) error) (*domain.Ticket, error) {
	var (
		t          domain.Ticket
		usedAt     sql.NullTime
		usedMode   sql.NullString
		usedDevice sql.NullString
		metadata   sql.NullString
	)
	if err := scan(
		&t.ID, &t.EventID, &t.OwnerUserID, &t.Code, &t.Type, &t.Status,
		&usedAt, &usedMode, &usedDevice, &metadata, &t.CreatedAt,
	); err != nil {
		return nil, err
	}

	if usedAt.Valid {
		at := usedAt.Time
		t.UsedAt = &at
	}
	t.UsedInMode = usedMode.String
	t.UsedByDeviceID = usedDevice.String
	t.MetadataDetail = metadata.String

	return &t, nil
}
