package connectivity

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/wb-go/wbf/logger"
)

// Pinger is the reachability check, normally the database handle.
type Pinger interface {
	PingContext(ctx context.Context) error
}

const probeTimeout = 2 * time.Second

// Monitor probes the store on an interval and exposes the last known answer.
// Validation reads Online without blocking; a stale answer for one interval is
// acceptable, a probe on the scan path is not.
type Monitor struct {
	pinger   Pinger
	interval time.Duration
	logger   logger.Logger
	online   atomic.Bool
}

func NewMonitor(pinger Pinger, interval time.Duration, logger logger.Logger) *Monitor {
	m := &Monitor{
		pinger:   pinger,
		interval: interval,
		logger:   logger,
	}
	// Assume online until the first probe says otherwise: a fresh device
	// should not deny its first scan while the probe is still in flight.
	m.online.Store(true)
	return m
}

func (m *Monitor) Online() bool {
	return m.online.Load()
}

func (m *Monitor) Start(ctx context.Context) {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.logger.Info("connectivity monitor started",
		logger.Duration("interval", m.interval),
	)

	m.probe(ctx)

	for {
		select {
		case <-ctx.Done():
			m.logger.Info("connectivity monitor stopped")
			return
		case <-ticker.C:
			m.probe(ctx)
		}
	}
}

func (m *Monitor) probe(ctx context.Context) {
	pctx, cancel := context.WithTimeout(ctx, probeTimeout)
	defer cancel()

	err := m.pinger.PingContext(pctx)
	was := m.online.Swap(err == nil)

	switch {
	case err != nil && was:
		m.logger.Error("connectivity lost",
			logger.String("error", err.Error()),
		)
	case err == nil && !was:
		m.logger.Info("connectivity restored")
	}
}
