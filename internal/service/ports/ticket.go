package ports

import (
	"context"

	"github.com/lucasromanh/TiketeraValidator/internal/domain"
)

// TicketRepo is the Ticket Store contract. Redeem is the single mutation the
// validation path is allowed to perform and must be a true compare-and-set:
// it applies only while the stored status is still VALID, and a lost race
// surfaces as domain.ErrTicketUsed, never as a bare write.
type TicketRepo interface {
	Create(ctx context.Context, t *domain.Ticket) error
	GetByCode(ctx context.Context, code string) (*domain.Ticket, error)
	ListByOwner(ctx context.Context, ownerUserID string) ([]*domain.Ticket, error)
	ListByEvent(ctx context.Context, eventID string) ([]*domain.Ticket, error)
	ListAll(ctx context.Context) ([]*domain.Ticket, error)
	Redeem(ctx context.Context, code string, in domain.RedeemInput) (*domain.Ticket, error)
	Block(ctx context.Context, id string) error
	Unblock(ctx context.Context, id string) error
}
