package ports

import (
	"context"

	"github.com/lucasromanh/TiketeraValidator/internal/domain"
)

// ValidationRelay is the best-effort broadcast of approved redemptions to
// connected viewers. Fire-and-forget: no acknowledgment, no ordering, and a
// failed notification never rolls back the approval. A missed message is
// corrected by the next sync poll, not by the relay.
type ValidationRelay interface {
	NotifyTicketValidated(ctx context.Context, t *domain.Ticket, sctx domain.SessionContext)
}
