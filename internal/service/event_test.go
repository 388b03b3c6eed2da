package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/lucasromanh/TiketeraValidator/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_Create_Success(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	start := time.Now().Add(24 * time.Hour)
	event, err := svc.Create(context.Background(), domain.CreateEventInput{
		OperationType: domain.OperationBoliche,
		Name:          "Fiesta Noche Retro 90s",
		Venue:         "Salta Capital",
		StartsAt:      start,
		EndsAt:        start.Add(6 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusUpcoming, event.Status)
	assert.NotEmpty(t, event.ID)
}

func TestEventService_Create_ActiveWhenInWindow(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, newTestLogger(t))

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.Create(context.Background(), domain.CreateEventInput{
		OperationType: domain.OperationCine,
		Name:          "The Batman: Estreno",
		Venue:         "Cine Hoyts Salta",
		StartsAt:      time.Now().Add(-time.Hour),
		EndsAt:        time.Now().Add(2 * time.Hour),
	})

	require.NoError(t, err)
	assert.Equal(t, domain.EventStatusActive, event.Status)
}

func TestEventService_Create_EmptyName(t *testing.T) {
	svc := NewEventService(nil, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		OperationType: domain.OperationBoliche,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_BadOperationType(t *testing.T) {
	svc := NewEventService(nil, newTestLogger(t))

	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		OperationType: "DISCOTECA",
		Name:          "x",
		StartsAt:      time.Now(),
		EndsAt:        time.Now().Add(time.Hour),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_Create_EndBeforeStart(t *testing.T) {
	svc := NewEventService(nil, newTestLogger(t))

	start := time.Now().Add(time.Hour)
	_, err := svc.Create(context.Background(), domain.CreateEventInput{
		OperationType: domain.OperationEvento,
		Name:          "x",
		StartsAt:      start,
		EndsAt:        start.Add(-time.Minute),
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestEventService_RollStatuses(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, newTestLogger(t))

	changed := []*domain.EventSession{
		{ID: "e1", Status: domain.EventStatusActive},
	}
	repo.EXPECT().RollStatuses(mock.Anything, mock.Anything).Return(changed, nil)

	got, err := svc.RollStatuses(context.Background())

	require.NoError(t, err)
	assert.Len(t, got, 1)
}

func TestEventService_RollStatuses_RepoError(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo, newTestLogger(t))

	repo.EXPECT().RollStatuses(mock.Anything, mock.Anything).Return(nil, errors.New("db error"))

	_, err := svc.RollStatuses(context.Background())

	require.Error(t, err)
}
