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

func TestUserService_Create_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name: "Staff Validador",
		Role: domain.RoleStaff,
		PIN:  "5555",
		Permissions: &domain.Permissions{
			AllowedOperationTypes: []string{"BOLICHE", "EVENTO"},
			AllowedGates:          []string{"GATE A"},
			AllowedModes:          []string{"ENTRY", "VIP", "DRINK"},
		},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.RoleStaff, user.Role)
	assert.True(t, user.IsActive)
	assert.NotEmpty(t, user.ID)
}

func TestUserService_Create_StaffRequiresPIN(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name: "Staff",
		Role: domain.RoleStaff,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_Create_UnknownRole(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		Name: "x",
		Role: "SUPERUSER",
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUserService_LoginPIN_Success(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	staff := &domain.User{ID: "s1", Name: "Staff Validador", Role: domain.RoleStaff, IsActive: true}
	repo.EXPECT().GetByPIN(mock.Anything, "5555").Return(staff, nil)

	user, err := svc.LoginPIN(context.Background(), "5555")

	require.NoError(t, err)
	assert.Equal(t, "s1", user.ID)
}

func TestUserService_LoginPIN_Unknown(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByPIN(mock.Anything, "0000").Return(nil, domain.ErrUserNotFound)

	_, err := svc.LoginPIN(context.Background(), "0000")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadPIN)
}

func TestUserService_LoginPIN_InactiveAccount(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByPIN(mock.Anything, "5555").
		Return(&domain.User{ID: "s1", Role: domain.RoleStaff, IsActive: false}, nil)

	_, err := svc.LoginPIN(context.Background(), "5555")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrBadPIN)
}

func TestUserService_LoginAssistant_Existing(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	assistant := &domain.User{
		ID: "u1", Name: "Celeste Peralta", Email: "celeste@test.com",
		Role: domain.RoleAssistant, IsActive: true,
	}
	repo.EXPECT().GetByNameEmail(mock.Anything, "Celeste Peralta", "celeste@test.com").Return(assistant, nil)

	user, err := svc.LoginAssistant(context.Background(), "Celeste Peralta", "celeste@test.com")

	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
}

func TestUserService_LoginAssistant_CreatesOnFirstContact(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().GetByNameEmail(mock.Anything, "Nueva", "nueva@test.com").Return(nil, domain.ErrUserNotFound)
	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.LoginAssistant(context.Background(), "Nueva", "nueva@test.com")

	require.NoError(t, err)
	assert.Equal(t, domain.RoleAssistant, user.Role)
	assert.True(t, user.IsActive)
}

func TestUserService_LoginAssistant_MissingFields(t *testing.T) {
	svc := NewUserService(nil)

	_, err := svc.LoginAssistant(context.Background(), "", "")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrValidation)
}
