package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lucasromanh/TiketeraValidator/internal/domain"
	"github.com/lucasromanh/TiketeraValidator/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	role, ok := domain.ParseUserRole(string(input.Role))
	if !ok {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrValidation, input.Role)
	}
	if role != domain.RoleAssistant && input.PIN == "" {
		return nil, fmt.Errorf("%w: staff and admin accounts require a pin", domain.ErrValidation)
	}

	user := &domain.User{
		ID:          uuid.New().String(),
		Name:        input.Name,
		Email:       input.Email,
		Role:        role,
		PIN:         input.PIN,
		IsActive:    true,
		Permissions: input.Permissions,
		CreatedAt:   time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// LoginPIN exchanges a staff or admin PIN for the user record. Unknown and
// inactive accounts both come back as ErrBadPIN so the login screen leaks
// nothing about which PINs exist.
func (s *UserService) LoginPIN(ctx context.Context, pin string) (*domain.User, error) {
	if pin == "" {
		return nil, fmt.Errorf("%w: pin is required", domain.ErrValidation)
	}

	user, err := s.repo.GetByPIN(ctx, pin)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			return nil, domain.ErrBadPIN
		}
		return nil, fmt.Errorf("lookup by pin: %w", err)
	}

	if !user.IsActive || user.Role == domain.RoleAssistant {
		return nil, domain.ErrBadPIN
	}

	return user, nil
}

// LoginAssistant resolves a name+email pair to an assistant account, creating
// one on first contact. Assistants carry no PIN and no permissions.
func (s *UserService) LoginAssistant(ctx context.Context, name, email string) (*domain.User, error) {
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", domain.ErrValidation)
	}

	user, err := s.repo.GetByNameEmail(ctx, name, email)
	if err == nil {
		if user.Role != domain.RoleAssistant || !user.IsActive {
			return nil, domain.ErrUserNotFound
		}
		return user, nil
	}
	if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, fmt.Errorf("lookup assistant: %w", err)
	}

	user = &domain.User{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		Role:      domain.RoleAssistant,
		IsActive:  true,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create assistant: %w", err)
	}

	return user, nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
