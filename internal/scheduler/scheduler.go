package scheduler

import (
	"context"
	"time"

	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/wb-go/wbf/logger"
)

type eventRoller interface {
	RollStatuses(ctx context.Context) ([]*domain.EventSession, error)
}

// Scheduler periodically advances event sessions through their lifecycle:
// UPCOMING starts become ACTIVE, passed ends become FINISHED.
type Scheduler struct {
	eventService eventRoller
	interval     time.Duration
	logger       logger.Logger
}

func New(
	eventService eventRoller,
	interval time.Duration,
	logger logger.Logger,
) *Scheduler {
	return &Scheduler{
		eventService: eventService,
		interval:     interval,
		logger:       logger,
	}
}

func (s *Scheduler) Start(ctx context.Context) {
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	s.logger.Info("scheduler started",
		logger.Duration("interval", s.interval),
	)

	for {
		select {
		case <-ctx.Done():
			s.logger.Info("scheduler stopped")
			return
		case <-ticker.C:
			s.tick(ctx)
		}
	}
}

func (s *Scheduler) tick(ctx context.Context) {
	rolled, err := s.eventService.RollStatuses(ctx)
	if err != nil {
		s.logger.Error("failed to roll event statuses",
			logger.String("error", err.Error()),
		)
		return
	}

	for _, e := range rolled {
		s.logger.Info("event status changed",
			logger.String("event_id", e.ID),
			logger.String("name", e.Name),
			logger.String("status", string(e.Status)),
		)
	}
}
