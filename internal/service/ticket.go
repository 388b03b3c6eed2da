package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/lucasromanh/TiketeraValidator/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// TicketService covers provisioning and read paths around the ticket store.
// Redemption itself belongs to the ValidationService alone.
type TicketService struct {
	tickets ports.TicketRepo
	events  ports.EventRepo
	users   ports.UserRepo
	logger  logger.Logger
}

func NewTicketService(
	tickets ports.TicketRepo,
	events ports.EventRepo,
	users ports.UserRepo,
	logger logger.Logger,
) *TicketService {
	return &TicketService{
		tickets: tickets,
		events:  events,
		users:   users,
		logger:  logger,
	}
}

func (s *TicketService) Create(ctx context.Context, input domain.CreateTicketInput) (*domain.Ticket, error) {
	if input.Code == "" {
		return nil, fmt.Errorf("%w: code is required", domain.ErrValidation)
	}
	if _, ok := domain.ParseTicketType(string(input.Type)); !ok {
		return nil, fmt.Errorf("%w: unknown ticket type %q", domain.ErrValidation, input.Type)
	}

	if _, err := s.events.GetByID(ctx, input.EventID); err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}
	if _, err := s.users.GetByID(ctx, input.OwnerUserID); err != nil {
		return nil, fmt.Errorf("check owner: %w", err)
	}

	ticket := &domain.Ticket{
		ID:             uuid.New().String(),
		EventID:        input.EventID,
		OwnerUserID:    input.OwnerUserID,
		Code:           input.Code,
		Type:           input.Type,
		Status:         domain.TicketStatusValid,
		MetadataDetail: input.MetadataDetail,
		CreatedAt:      time.Now().UTC(),
	}

	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, fmt.Errorf("create ticket: %w", err)
	}

	s.logger.Info("ticket provisioned",
		logger.String("ticket_id", ticket.ID),
		logger.String("event_id", ticket.EventID),
		logger.String("type", string(ticket.Type)),
	)

	return ticket, nil
}

// Block puts a ticket under administrative hold so every scan of it is
// rejected until the hold is lifted.
func (s *TicketService) Block(ctx context.Context, id string) error {
	if err := s.tickets.Block(ctx, id); err != nil {
		return fmt.Errorf("block ticket: %w", err)
	}

	s.logger.Info("ticket blocked", logger.String("ticket_id", id))
	return nil
}

// Unblock lifts an administrative hold. Spent tickets stay spent.
func (s *TicketService) Unblock(ctx context.Context, id string) error {
	if err := s.tickets.Unblock(ctx, id); err != nil {
		return fmt.Errorf("unblock ticket: %w", err)
	}

	s.logger.Info("ticket unblocked", logger.String("ticket_id", id))
	return nil
}

// Sync returns the owner's tickets for the poll loop that detects
// externally applied VALID -> USED transitions.
func (s *TicketService) Sync(ctx context.Context, ownerUserID string) ([]*domain.Ticket, error) {
	return s.tickets.ListByOwner(ctx, ownerUserID)
}

// InitialData builds the login-time snapshot: all sessions, plus either the
// user's own tickets (assistant) or every ticket (staff and admin scan
// against the full set).
func (s *TicketService) InitialData(ctx context.Context, userID string) (*domain.InitialData, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	events, err := s.events.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list events: %w", err)
	}

	var tickets []*domain.Ticket
	if user.Role == domain.RoleAssistant {
		tickets, err = s.tickets.ListByOwner(ctx, userID)
	} else {
		tickets, err = s.tickets.ListAll(ctx)
	}
	if err != nil {
		return nil, fmt.Errorf("list tickets: %w", err)
	}

	return &domain.InitialData{Events: events, Tickets: tickets}, nil
}

func (s *TicketService) ListByEvent(ctx context.Context, eventID string) ([]*domain.Ticket, error) {
	return s.tickets.ListByEvent(ctx, eventID)
}
