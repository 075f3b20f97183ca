package service

import (
	"context"

	"greenfield-hub-backend/internal/domain"

	"github.com/stretchr/testify/mock"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// MockTractorRepo
type MockTractorRepo struct {
	mock.Mock
}

func (m *MockTractorRepo) Create(ctx context.Context, tractor *domain.Tractor) error {
	args := m.Called(ctx, tractor)
	return args.Error(0)
}
func (m *MockTractorRepo) GetByID(ctx context.Context, id string) (*domain.Tractor, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Tractor), args.Error(1)
}
func (m *MockTractorRepo) List(ctx context.Context) ([]domain.Tractor, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Tractor), args.Error(1)
}

// MockEmailService
type MockEmailService struct {
	mock.Mock
}

func (m *MockEmailService) SendRegistrationEmail(data RegistrationEmailData) error {
	args := m.Called(data)
	return args.Error(0)
}
func (m *MockEmailService) SendRentalConfirmationEmail(data RentalConfirmationEmailData) error {
	args := m.Called(data)
	return args.Error(0)
}
