package ratelimit

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time { return c.t }

func (c *fakeClock) advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestGovernor(threshold int, cooldown time.Duration) (*Governor, *fakeClock) {
	clock := &fakeClock{t: time.Date(2024, 6, 15, 23, 30, 0, 0, time.UTC)}
	g := NewGovernor(threshold, cooldown)
	g.now = clock.now
	return g, clock
}

func TestGovernor_AdmitsUpToThreshold(t *testing.T) {
	g, _ := newTestGovernor(10, 30*time.Second)

	for i := 0; i < 10; i++ {
		adm := g.Admit()
		require.True(t, adm.OK, "scan %d should be admitted", i+1)
	}

	assert.False(t, g.CoolingDown())
}

func TestGovernor_DeniesAboveThreshold(t *testing.T) {
	g, _ := newTestGovernor(10, 30*time.Second)

	for i := 0; i < 10; i++ {
		require.True(t, g.Admit().OK)
	}

	adm := g.Admit()
	assert.False(t, adm.OK)
	assert.Equal(t, 30*time.Second, adm.RetryAfter)
	assert.True(t, g.CoolingDown())
}

func TestGovernor_DeniesWhileCoolingDown(t *testing.T) {
	g, clock := newTestGovernor(10, 30*time.Second)

	for i := 0; i < 11; i++ {
		g.Admit()
	}

	clock.advance(10 * time.Second)

	adm := g.Admit()
	assert.False(t, adm.OK)
	assert.Equal(t, 20*time.Second, adm.RetryAfter)
}

func TestGovernor_ResetsAfterCooldown(t *testing.T) {
	g, clock := newTestGovernor(10, 30*time.Second)

	for i := 0; i < 11; i++ {
		g.Admit()
	}
	require.True(t, g.CoolingDown())

	clock.advance(30 * time.Second)

	// Counter is back at 0: a full window of scans is admitted again.
	for i := 0; i < 10; i++ {
		adm := g.Admit()
		require.True(t, adm.OK, "scan %d after cooldown should be admitted", i+1)
	}
	assert.False(t, g.Admit().OK)
}

func TestGovernor_Defaults(t *testing.T) {
	g := NewGovernor(0, 0)

	assert.Equal(t, DefaultThreshold, g.threshold)
	assert.Equal(t, DefaultCooldown, g.cooldown)
}

func TestRegistry_OneGovernorPerDevice(t *testing.T) {
	r := NewRegistry(10, 30*time.Second)

	a := r.For("DEVICE-01")
	b := r.For("DEVICE-02")

	assert.NotSame(t, a, b)
	assert.Same(t, a, r.For("DEVICE-01"))
}

func TestRegistry_DevicesCoolDownIndependently(t *testing.T) {
	r := NewRegistry(2, 30*time.Second)

	a := r.For("DEVICE-01")
	for i := 0; i < 3; i++ {
		a.Admit()
	}
	require.True(t, a.CoolingDown())

	assert.True(t, r.For("DEVICE-02").Admit().OK)
}
