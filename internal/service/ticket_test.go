package service

import (
	"context"
	"testing"

	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/lucasromanh/TiketeraValidator/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTicketService(t *testing.T) (*TicketService, *mocks.MockTicketRepo, *mocks.MockEventRepo, *mocks.MockUserRepo) {
	t.Helper()
	tickets := mocks.NewMockTicketRepo(t)
	events := mocks.NewMockEventRepo(t)
	users := mocks.NewMockUserRepo(t)
	return NewTicketService(tickets, events, users, newTestLogger(t)), tickets, events, users
}

func TestTicketService_Create_Success(t *testing.T) {
	svc, tickets, events, users := newTicketService(t)

	events.EXPECT().GetByID(mock.Anything, "e1").Return(&domain.EventSession{ID: "e1"}, nil)
	users.EXPECT().GetByID(mock.Anything, "u1").Return(&domain.User{ID: "u1"}, nil)
	tickets.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	ticket, err := svc.Create(context.Background(), domain.CreateTicketInput{
		EventID:        "e1",
		OwnerUserID:    "u1",
		Code:           "DRK-FERNET-01",
		Type:           domain.TicketTypeDrink,
		MetadataDetail: "FERNET CON COCA",
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TicketStatusValid, ticket.Status)
	assert.NotEmpty(t, ticket.ID)
}

func TestTicketService_Create_UnknownEvent(t *testing.T) {
	svc, _, events, _ := newTicketService(t)

	events.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.Create(context.Background(), domain.CreateTicketInput{
		EventID:     "missing",
		OwnerUserID: "u1",
		Code:        "X-1",
		Type:        domain.TicketTypeEntry,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}

func TestTicketService_Create_BadType(t *testing.T) {
	svc, _, _, _ := newTicketService(t)

	_, err := svc.Create(context.Background(), domain.CreateTicketInput{
		EventID:     "e1",
		OwnerUserID: "u1",
		Code:        "X-1",
		Type:        "COMBO",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestTicketService_Block(t *testing.T) {
	svc, tickets, _, _ := newTicketService(t)

	tickets.EXPECT().Block(mock.Anything, "t1").Return(nil)

	require.NoError(t, svc.Block(context.Background(), "t1"))
}

func TestTicketService_Block_AlreadyUsed(t *testing.T) {
	svc, tickets, _, _ := newTicketService(t)

	tickets.EXPECT().Block(mock.Anything, "t1").Return(domain.ErrTicketUsed)

	err := svc.Block(context.Background(), "t1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketUsed)
}

func TestTicketService_Unblock(t *testing.T) {
	svc, tickets, _, _ := newTicketService(t)

	tickets.EXPECT().Unblock(mock.Anything, "t1").Return(nil)

	require.NoError(t, svc.Unblock(context.Background(), "t1"))
}

func TestTicketService_Unblock_AlreadyUsed(t *testing.T) {
	svc, tickets, _, _ := newTicketService(t)

	tickets.EXPECT().Unblock(mock.Anything, "t1").Return(domain.ErrTicketUsed)

	err := svc.Unblock(context.Background(), "t1")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrTicketUsed)
}

func TestTicketService_InitialData_AssistantSeesOwnTickets(t *testing.T) {
	svc, tickets, events, users := newTicketService(t)

	users.EXPECT().GetByID(mock.Anything, "u1").
		Return(&domain.User{ID: "u1", Role: domain.RoleAssistant}, nil)
	events.EXPECT().List(mock.Anything).Return([]*domain.EventSession{{ID: "e1"}}, nil)
	tickets.EXPECT().ListByOwner(mock.Anything, "u1").
		Return([]*domain.Ticket{{ID: "t1", OwnerUserID: "u1"}}, nil)

	data, err := svc.InitialData(context.Background(), "u1")

	require.NoError(t, err)
	assert.Len(t, data.Events, 1)
	assert.Len(t, data.Tickets, 1)
}

func TestTicketService_InitialData_StaffSeesAllTickets(t *testing.T) {
	svc, tickets, events, users := newTicketService(t)

	users.EXPECT().GetByID(mock.Anything, "s1").
		Return(&domain.User{ID: "s1", Role: domain.RoleStaff}, nil)
	events.EXPECT().List(mock.Anything).Return(nil, nil)
	tickets.EXPECT().ListAll(mock.Anything).
		Return([]*domain.Ticket{{ID: "t1"}, {ID: "t2"}}, nil)

	data, err := svc.InitialData(context.Background(), "s1")

	require.NoError(t, err)
	assert.Len(t, data.Tickets, 2)
}

func TestTicketService_Sync(t *testing.T) {
	svc, tickets, _, _ := newTicketService(t)

	tickets.EXPECT().ListByOwner(mock.Anything, "u1").
		Return([]*domain.Ticket{{ID: "t1", Status: domain.TicketStatusUsed}}, nil)

	got, err := svc.Sync(context.Background(), "u1")

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, domain.TicketStatusUsed, got[0].Status)
}
