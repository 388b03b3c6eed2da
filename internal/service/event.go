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

type EventService struct {
	repo   ports.EventRepo
	logger logger.Logger
}

func NewEventService(repo ports.EventRepo, logger logger.Logger) *EventService {
	return &EventService{
		repo:   repo,
		logger: logger,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.EventSession, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if _, ok := domain.ParseOperationType(string(input.OperationType)); !ok {
		return nil, fmt.Errorf("%w: unknown operation type %q", domain.ErrValidation, input.OperationType)
	}
	if !input.EndsAt.After(input.StartsAt) {
		return nil, fmt.Errorf("%w: session must end after it starts", domain.ErrValidation)
	}

	now := time.Now().UTC()
	event := &domain.EventSession{
		ID:            uuid.New().String(),
		OperationType: input.OperationType,
		Name:          input.Name,
		Venue:         input.Venue,
		StartsAt:      input.StartsAt,
		EndsAt:        input.EndsAt,
		Status:        statusAt(input.StartsAt, input.EndsAt, now),
		CreatedAt:     now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	s.logger.Info("event session created",
		logger.String("event_id", event.ID),
		logger.String("operation_type", string(event.OperationType)),
		logger.String("status", string(event.Status)),
	)

	return event, nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.EventSession, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.EventSession, error) {
	return s.repo.List(ctx)
}

// RollStatuses advances session statuses along UPCOMING -> ACTIVE -> FINISHED
// by wall clock and returns the sessions that moved.
func (s *EventService) RollStatuses(ctx context.Context) ([]*domain.EventSession, error) {
	changed, err := s.repo.RollStatuses(ctx, time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("roll event statuses: %w", err)
	}
	return changed, nil
}

func statusAt(start, end, now time.Time) domain.EventStatus {
	switch {
	case now.Before(start):
		return domain.EventStatusUpcoming
	case now.Before(end):
		return domain.EventStatusActive
	default:
		return domain.EventStatusFinished
	}
}
