package audit

import (
	"sync"

	"github.com/lucasromanh/TiketeraValidator/internal/domain"
)

const DefaultCapacity = 50

// Log is a bounded, most-recent-first trail of validation decisions for one
// scanning device. It lives for the process only and is never the system of
// record for ticket state.
type Log struct {
	mu       sync.RWMutex
	capacity int
	entries  []domain.ScanAttempt
}

func NewLog(capacity int) *Log {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Log{
		capacity: capacity,
		entries:  make([]domain.ScanAttempt, 0, capacity),
	}
}

// Append inserts at the head. Once capacity is exceeded the oldest entry
// falls off the tail.
func (l *Log) Append(a domain.ScanAttempt) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.entries = append([]domain.ScanAttempt{a}, l.entries...)
	if len(l.entries) > l.capacity {
		l.entries = l.entries[:l.capacity]
	}
}

// List returns a snapshot of the buffer, most recent first.
func (l *Log) List() []domain.ScanAttempt {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]domain.ScanAttempt, len(l.entries))
	copy(out, l.entries)
	return out
}

// CountBy counts entries matching the predicate. Pure read, no mutation.
func (l *Log) CountBy(match func(domain.ScanAttempt) bool) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, a := range l.entries {
		if match(a) {
			n++
		}
	}
	return n
}

// Report is the aggregate view over the current buffer contents.
type Report struct {
	Total    int                         `json:"total"`
	Approved int                         `json:"approved"`
	Rejected int                         `json:"rejected"`
	ByReason map[domain.RejectReason]int `json:"by_reason"`
}

func (l *Log) Report() Report {
	l.mu.RLock()
	defer l.mu.RUnlock()

	r := Report{
		Total:    len(l.entries),
		ByReason: make(map[domain.RejectReason]int),
	}
	for _, a := range l.entries {
		switch a.Result {
		case domain.ScanApproved:
			r.Approved++
		case domain.ScanRejected:
			r.Rejected++
			r.ByReason[a.Reason]++
		}
	}
	return r
}

// Registry hands out one Log per scanning device.
type Registry struct {
	mu       sync.Mutex
	capacity int
	byDevice map[string]*Log
}

func NewRegistry(capacity int) *Registry {
	return &Registry{
		capacity: capacity,
		byDevice: make(map[string]*Log),
	}
}

func (r *Registry) For(deviceID string) *Log {
	r.mu.Lock()
	defer r.mu.Unlock()

	l, ok := r.byDevice[deviceID]
	if !ok {
		l = NewLog(r.capacity)
		r.byDevice[deviceID] = l
	}
	return l
}
