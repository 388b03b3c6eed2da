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

const userColumns = `id, name, email, role, pin, is_active,
		allowed_operation_types, allowed_gates, allowed_modes,
		can_switch_profile, can_offline_contingency, created_at`

type UserRepository struct {
	db       *dbpg.DB
	strategy retry.Strategy
}

func NewUserRepo(db *dbpg.DB) *UserRepository {
	return &UserRepository{
		db: db,
		strategy: retry.Strategy{
			Attempts: 3,
			Delay:    500 * time.Millisecond,
			Backoff:  2,
		},
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	query := `INSERT INTO users (id, name, email, role, pin, is_active,
				allowed_operation_types, allowed_gates, allowed_modes,
				can_switch_profile, can_offline_contingency, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)`

	perms := u.Permissions
	if perms == nil {
		perms = &domain.Permissions{}
	}

	_, err := r.db.Master.ExecContext(
		ctx, query, u.ID, u.Name, nullString(u.Email), u.Role, nullString(u.PIN), u.IsActive,
		pq.Array(perms.AllowedOperationTypes), pq.Array(perms.AllowedGates), pq.Array(perms.AllowedModes),
		perms.CanSwitchProfile, perms.CanOfflineContingency, u.CreatedAt,
	)
	if err != nil {
		var pgErr *pq.Error
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			if pgErr.Constraint == "users_pin_key" {
				return domain.ErrPINTaken
			}
			return domain.ErrEmailTaken
		}
		return fmt.Errorf("insert user: %w", err)
	}

	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE id = $1`, id)
}

func (r *UserRepository) GetByPIN(ctx context.Context, pin string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE pin = $1`, pin)
}

func (r *UserRepository) GetByNameEmail(ctx context.Context, name, email string) (*domain.User, error) {
	return r.getOne(ctx, `SELECT `+userColumns+` FROM users WHERE name = $1 AND email = $2`, name, email)
}

func (r *UserRepository) getOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	row, err := r.db.QueryRowWithRetry(ctx, r.strategy, query, args...)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	u, err := scanUser(row.Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrUserNotFound
		}
		return nil, fmt.Errorf("scan user: %w", err)
	}

	return u, nil
}

func (r *UserRepository) List(ctx context.Context) ([]*domain.User, error) {
	rows, err := r.db.QueryWithRetry(ctx, r.strategy, `SELECT `+userColumns+` FROM users ORDER BY created_at`)
	if err != nil {
		return nil, fmt.Errorf("list users: %w", err)
	}
	defer rows.Close()

	var res []*domain.User
	for rows.Next() {
		u, err := scanUser(rows.Scan)
		if err != nil {
			return nil, fmt.Errorf("scan user: %w", err)
		}
		res = append(res, u)
	}

	return res, rows.Err()
}

func scanUser(scan func(dest ...any) error) (*domain.User, error) {
	var (
		u     domain.User
		email sql.NullString
		pin   sql.NullString
		perms domain.Permissions
	)
	if err := scan(
		&u.ID, &u.Name, &email, &u.Role, &pin, &u.IsActive,
		pq.Array(&perms.AllowedOperationTypes), pq.Array(&perms.AllowedGates), pq.Array(&perms.AllowedModes),
		&perms.CanSwitchProfile, &perms.CanOfflineContingency, &u.CreatedAt,
	); err != nil {
		return nil, err
	}

	u.Email = email.String
	u.PIN = pin.String
	if u.Role != domain.RoleAssistant {
		u.Permissions = &perms
	}

	return &u, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
