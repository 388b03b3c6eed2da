package ports

import (
	"context"
	"time"

	"github.com/lucasromanh/TiketeraValidator/internal/domain"
)

type EventRepo interface {
	Create(ctx context.Context, e *domain.EventSession) error
	GetByID(ctx context.Context, id string) (*domain.EventSession, error)
	List(ctx context.Context) ([]*domain.EventSession, error)
	// RollStatuses moves UPCOMING sessions into ACTIVE and ACTIVE ones into
	// FINISHED according to their time window, returning what changed.
	RollStatuses(ctx context.Context, now time.Time) ([]*domain.EventSession, error)
}
