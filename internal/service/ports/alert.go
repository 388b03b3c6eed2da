package ports

import (
	"context"
	"time"

	"github.com/lucasromanh/TiketeraValidator/internal/domain"
)

// SecurityAlerter pushes out-of-band warnings to operators: someone scanning
// a blocked ticket, or a device tripping the rate governor. Best effort.
type SecurityAlerter interface {
	AlertBlockedScan(ctx context.Context, codeHash string, sctx domain.SessionContext)
	AlertRateLimited(ctx context.Context, deviceID string, retryAfter time.Duration)
}
