package connectivity

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/wb-go/wbf/logger"
)

func newTestLogger(t *testing.T) logger.Logger {
	t.Helper()
	log, err := logger.InitLogger("slog", "test", "test", logger.WithLevel(logger.ErrorLevel))
	if err != nil {
		t.Fatalf("init test logger: %v", err)
	}
	return log
}

type fakePinger struct {
	mu    sync.Mutex
	err   error
	calls atomic.Int32
}

func (p *fakePinger) PingContext(ctx context.Context) error {
	p.calls.Add(1)
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.err
}

func (p *fakePinger) set(err error) {
	p.mu.Lock()
	p.err = err
	p.mu.Unlock()
}

func TestMonitor_StartsOnline(t *testing.T) {
	m := NewMonitor(&fakePinger{}, time.Second, newTestLogger(t))

	assert.True(t, m.Online())
}

func TestMonitor_GoesOfflineOnFailedProbe(t *testing.T) {
	p := &fakePinger{}
	p.set(errors.New("connection refused"))

	m := NewMonitor(p, time.Second, newTestLogger(t))
	m.probe(context.Background())

	assert.False(t, m.Online())
}

func TestMonitor_RecoversWhenProbeSucceeds(t *testing.T) {
	p := &fakePinger{}
	p.set(errors.New("connection refused"))

	m := NewMonitor(p, time.Second, newTestLogger(t))
	m.probe(context.Background())
	assert.False(t, m.Online())

	p.set(nil)
	m.probe(context.Background())

	assert.True(t, m.Online())
}

func TestMonitor_ProbesOnInterval(t *testing.T) {
	p := &fakePinger{}
	m := NewMonitor(p, 30*time.Millisecond, newTestLogger(t))

	ctx, cancel := context.WithTimeout(context.Background(), 110*time.Millisecond)
	defer cancel()

	m.Start(ctx)

	assert.GreaterOrEqual(t, p.calls.Load(), int32(3))
}

func TestMonitor_StopsOnContextCancel(t *testing.T) {
	m := NewMonitor(&fakePinger{}, time.Second, newTestLogger(t))

	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		m.Start(ctx)
		close(done)
	}()

	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop on context cancel")
	}
}
