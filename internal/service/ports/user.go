package ports

import (
	"context"

	"github.com/lucasromanh/TiketeraValidator/internal/domain"
)

type UserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByPIN(ctx context.Context, pin string) (*domain.User, error)
	GetByNameEmail(ctx context.Context, name, email string) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}
