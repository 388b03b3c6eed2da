package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lucasromanh/TiketeraValidator/internal/audit"
	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/lucasromanh/TiketeraValidator/internal/ratelimit"
	"github.com/lucasromanh/TiketeraValidator/internal/service/ports"
	"github.com/wb-go/wbf/logger"
)

// ValidationService is the single authoritative decision procedure for a
// scanned payload. Every expected condition comes back as an Outcome; the
// scanning loop never sees an error from here.
type ValidationService struct {
	tickets   ports.TicketRepo
	probe     ports.ConnectivityProbe
	relay     ports.ValidationRelay
	alerter   ports.SecurityAlerter
	governors *ratelimit.Registry
	audits    *audit.Registry
	logger    logger.Logger
	now       func() time.Time
}

func NewValidationService(
	tickets ports.TicketRepo,
	probe ports.ConnectivityProbe,
	relay ports.ValidationRelay,
	alerter ports.SecurityAlerter,
	governors *ratelimit.Registry,
	audits *audit.Registry,
	logger logger.Logger,
) *ValidationService {
	return &ValidationService{
		tickets:   tickets,
		probe:     probe,
		relay:     relay,
		alerter:   alerter,
		governors: governors,
		audits:    audits,
		logger:    logger,
		now:       time.Now,
	}
}

// Validate runs the decision procedure for one scanned payload. Checks run in
// fixed order: rate limit, connectivity, existence, event match, blocked,
// used, then the commit. The cheap local checks come first so a throttled or
// offline device never touches the store, and the event check precedes the
// status checks so a wrong-event scan never leaks whether that ticket is
// blocked or spent.
func (s *ValidationService) Validate(ctx context.Context, rawPayload string, sctx domain.SessionContext) domain.Outcome {
	code := domain.NormalizeCode(rawPayload)

	outcome := s.decide(ctx, code, sctx)

	s.record(code, outcome, sctx)

	if outcome.Result == domain.ScanApproved {
		s.logger.Info("ticket validated",
			logger.String("ticket_id", outcome.Ticket.ID),
			logger.String("event_id", outcome.Ticket.EventID),
			logger.String("device_id", sctx.DeviceID),
			logger.String("mode", sctx.Mode),
		)
		go s.relay.NotifyTicketValidated(context.WithoutCancel(ctx), outcome.Ticket, sctx)
	}

	return outcome
}

func (s *ValidationService) decide(ctx context.Context, code string, sctx domain.SessionContext) domain.Outcome {
	adm := s.governors.For(sctx.DeviceID).Admit()
	if !adm.OK {
		go s.alerter.AlertRateLimited(context.WithoutCancel(ctx), sctx.DeviceID, adm.RetryAfter)
		return domain.RejectedWithDetails(
			domain.ReasonRateLimit,
			fmt.Sprintf("retry in %s", adm.RetryAfter.Round(time.Second)),
		)
	}

	if !s.probe.Online() {
		return domain.Rejected(domain.ReasonOffline)
	}

	ticket, err := s.tickets.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, domain.ErrTicketNotFound) {
			return domain.Rejected(domain.ReasonNotFound)
		}
		s.logger.Error("ticket lookup failed",
			logger.String("device_id", sctx.DeviceID),
			logger.String("error", err.Error()),
		)
		return domain.Rejected(domain.ReasonNetworkError)
	}

	if ticket.EventID != sctx.SelectedEventID {
		return domain.Rejected(domain.ReasonWrongEvent)
	}

	if ticket.Status == domain.TicketStatusBlocked {
		go s.alerter.AlertBlockedScan(context.WithoutCancel(ctx), domain.HashCode(code), sctx)
		return domain.Rejected(domain.ReasonBlocked)
	}

	if ticket.Status == domain.TicketStatusUsed {
		return domain.RejectedWithDetails(domain.ReasonUsed, usedDetails(ticket))
	}

	redeemed, err := s.tickets.Redeem(ctx, code, domain.RedeemInput{
		At:       s.now().UTC(),
		Mode:     sctx.Mode,
		DeviceID: sctx.DeviceID,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrTicketUsed):
			// Lost the compare-and-set race: some other device committed
			// first. Identical to scanning a spent ticket.
			return domain.Rejected(domain.ReasonUsed)
		case errors.Is(err, domain.ErrTicketBlocked):
			return domain.Rejected(domain.ReasonBlocked)
		case errors.Is(err, domain.ErrTicketNotFound):
			return domain.Rejected(domain.ReasonNotFound)
		default:
			s.logger.Error("redeem commit failed",
				logger.String("device_id", sctx.DeviceID),
				logger.String("error", err.Error()),
			)
			return domain.Rejected(domain.ReasonNetworkError)
		}
	}

	return domain.Approved(redeemed)
}

// record appends exactly one audit entry per decision, whatever the outcome.
func (s *ValidationService) record(code string, outcome domain.Outcome, sctx domain.SessionContext) {
	s.audits.For(sctx.DeviceID).Append(domain.ScanAttempt{
		ID:            uuid.New().String(),
		Timestamp:     s.now().UTC(),
		DeviceID:      sctx.DeviceID,
		StaffUserID:   sctx.StaffUserID,
		CodeHash:      domain.HashCode(code),
		Result:        outcome.Result,
		Reason:        outcome.Reason,
		OperationType: sctx.OperationType,
		Mode:          sctx.Mode,
		Gate:          sctx.Gate,
		EventID:       sctx.SelectedEventID,
	})
}

// Attempts returns the device's scan history, most recent first.
func (s *ValidationService) Attempts(deviceID string) []domain.ScanAttempt {
	return s.audits.For(deviceID).List()
}

// Report aggregates the device's current scan history.
func (s *ValidationService) Report(deviceID string) audit.Report {
	return s.audits.For(deviceID).Report()
}

func usedDetails(t *domain.Ticket) string {
	if t.UsedAt == nil {
		return t.UsedInMode
	}
	return fmt.Sprintf("%s - %s", t.UsedInMode, t.UsedAt.Format(time.RFC3339))
}
