package ratelimit

import (
	"sync"
	"time"
)

const (
	DefaultThreshold = 10
	DefaultCooldown  = 30 * time.Second
)

// Admission is the governor's answer for one scan attempt. RetryAfter is set
// only on denial and tells the operator how long the cooldown still runs.
type Admission struct {
	OK         bool
	RetryAfter time.Duration
}

// Governor guards a single scanning device against runaway scan loops. After
// threshold admitted scans it denies everything for one cooldown window; the
// window expiring is the only way back, there is no manual override.
type Governor struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration
	now       func() time.Time

	count       int
	coolingDown bool
	coolUntil   time.Time
}

func NewGovernor(threshold int, cooldown time.Duration) *Governor {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	if cooldown <= 0 {
		cooldown = DefaultCooldown
	}
	return &Governor{
		threshold: threshold,
		cooldown:  cooldown,
		now:       time.Now,
	}
}

// Admit must be called before every validation attempt. The cooldown expiry
// is evaluated lazily here rather than by a timer goroutine, which keeps the
// state machine race-free and deterministic under test.
func (g *Governor) Admit() Admission {
	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()

	if g.coolingDown {
		if now.Before(g.coolUntil) {
			return Admission{OK: false, RetryAfter: g.coolUntil.Sub(now)}
		}
		g.coolingDown = false
		g.count = 0
	}

	g.count++
	if g.count > g.threshold {
		g.coolingDown = true
		g.coolUntil = now.Add(g.cooldown)
		return Admission{OK: false, RetryAfter: g.cooldown}
	}

	return Admission{OK: true}
}

// CoolingDown reports whether the governor is currently denying admissions.
func (g *Governor) CoolingDown() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.coolingDown && g.now().Before(g.coolUntil)
}

// Registry hands out one Governor per scanning device. Rate state is scoped
// per device, not per staff identity or per event.
type Registry struct {
	mu        sync.Mutex
	threshold int
	cooldown  time.Duration
	byDevice  map[string]*Governor
}

func NewRegistry(threshold int, cooldown time.Duration) *Registry {
	return &Registry{
		threshold: threshold,
		cooldown:  cooldown,
		byDevice:  make(map[string]*Governor),
	}
}

func (r *Registry) For(deviceID string) *Governor {
	r.mu.Lock()
	defer r.mu.Unlock()

	g, ok := r.byDevice[deviceID]
	if !ok {
		g = NewGovernor(r.threshold, r.cooldown)
		r.byDevice[deviceID] = g
	}
	return g
}
