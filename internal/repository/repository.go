package repository

import (
	"context"

	"greenfield-hub-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id string) (*domain.User, error)
}

type TractorRepository interface {
	Create(ctx context.Context, tractor *domain.Tractor) error
	GetByID(ctx context.Context, id string) (*domain.Tractor, error)
	List(ctx context.Context) ([]domain.Tractor, error)
}
