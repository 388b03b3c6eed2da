package audit

import (
	"fmt"
	"testing"
	"time"

	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func attempt(i int, result domain.ScanResult, reason domain.RejectReason) domain.ScanAttempt {
	return domain.ScanAttempt{
		ID:        fmt.Sprintf("a%d", i),
		Timestamp: time.Date(2024, 6, 15, 23, 30, i, 0, time.UTC),
		DeviceID:  "DEVICE-01",
		Result:    result,
		Reason:    reason,
	}
}

func TestLog_ListMostRecentFirst(t *testing.T) {
	l := NewLog(50)

	for i := 0; i < 3; i++ {
		l.Append(attempt(i, domain.ScanApproved, ""))
	}

	got := l.List()
	require.Len(t, got, 3)
	assert.Equal(t, "a2", got[0].ID)
	assert.Equal(t, "a1", got[1].ID)
	assert.Equal(t, "a0", got[2].ID)
}

func TestLog_EvictsOldestBeyondCapacity(t *testing.T) {
	l := NewLog(5)

	for i := 0; i < 8; i++ {
		l.Append(attempt(i, domain.ScanApproved, ""))
	}

	got := l.List()
	require.Len(t, got, 5)
	assert.Equal(t, "a7", got[0].ID)
	assert.Equal(t, "a3", got[4].ID)
}

func TestLog_ListReturnsSnapshot(t *testing.T) {
	l := NewLog(5)
	l.Append(attempt(0, domain.ScanApproved, ""))

	got := l.List()
	got[0].ID = "mutated"

	assert.Equal(t, "a0", l.List()[0].ID)
}

func TestLog_CountBy(t *testing.T) {
	l := NewLog(50)
	l.Append(attempt(0, domain.ScanApproved, ""))
	l.Append(attempt(1, domain.ScanRejected, domain.ReasonUsed))
	l.Append(attempt(2, domain.ScanRejected, domain.ReasonUsed))
	l.Append(attempt(3, domain.ScanRejected, domain.ReasonNotFound))

	used := l.CountBy(func(a domain.ScanAttempt) bool {
		return a.Reason == domain.ReasonUsed
	})

	assert.Equal(t, 2, used)
}

func TestLog_Report(t *testing.T) {
	l := NewLog(50)
	l.Append(attempt(0, domain.ScanApproved, ""))
	l.Append(attempt(1, domain.ScanApproved, ""))
	l.Append(attempt(2, domain.ScanRejected, domain.ReasonUsed))
	l.Append(attempt(3, domain.ScanRejected, domain.ReasonWrongEvent))

	r := l.Report()

	assert.Equal(t, 4, r.Total)
	assert.Equal(t, 2, r.Approved)
	assert.Equal(t, 2, r.Rejected)
	assert.Equal(t, 1, r.ByReason[domain.ReasonUsed])
	assert.Equal(t, 1, r.ByReason[domain.ReasonWrongEvent])
}

func TestRegistry_OneLogPerDevice(t *testing.T) {
	r := NewRegistry(50)

	a := r.For("DEVICE-01")
	a.Append(attempt(0, domain.ScanApproved, ""))

	assert.Empty(t, r.For("DEVICE-02").List())
	assert.Len(t, r.For("DEVICE-01").List(), 1)
}
