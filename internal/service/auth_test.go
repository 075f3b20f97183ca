package service

import (
	"context"
	"testing"

	"greenfield-hub-backend/internal/domain"
	"greenfield-hub-backend/internal/security"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
)

const testSecret = "test-secret-0123456789abcdef-0123456789"

func TestAuthService_Signup(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 7)

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Run(func(args mock.Arguments) {
			u := args.Get(1).(*domain.User)
			u.ID = "a2b0c2a8-3f0e-4e5e-8c43-0a39cbe7a001"
			assert.NotEqual(t, "secret", u.PasswordHash)
			assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte("secret")))
		}).Return(nil)

		user, err := svc.Signup(ctx, "Asha", "Asha@Example.com", "secret")
		assert.NoError(t, err)
		assert.NotNil(t, user)
		assert.Equal(t, "asha@example.com", user.Email)
		assert.Equal(t, "Asha", user.Name)
		userRepo.AssertExpectations(t)
	})

	t.Run("Missing Field", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		user, err := svc.Signup(ctx, "Asha", "asha@example.com", "")
		assert.Nil(t, user)
		var validationErr *domain.ValidationError
		assert.ErrorAs(t, err, &validationErr)
		assert.Equal(t, "password", validationErr.Field)
		userRepo.AssertNotCalled(t, "Create")
	})

	t.Run("Duplicate Email", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)

		userRepo.On("Create", ctx, mock.AnythingOfType("*domain.User")).Return(&domain.ConflictError{Field: "email"})

		user, err := svc.Signup(ctx, "Asha", "asha@example.com", "secret")
		assert.Nil(t, user)
		var conflictErr *domain.ConflictError
		assert.ErrorAs(t, err, &conflictErr)
		assert.Equal(t, "email", conflictErr.Field)
	})
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	tokens := security.NewTokenManager(testSecret, 7)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret"), bcrypt.DefaultCost)
	assert.NoError(t, err)
	account := &domain.User{
		ID:           "a2b0c2a8-3f0e-4e5e-8c43-0a39cbe7a001",
		Name:         "Asha",
		Email:        "asha@example.com",
		PasswordHash: string(hash),
	}

	t.Run("Success", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)
		userRepo.On("GetByEmail", ctx, "asha@example.com").Return(account, nil)

		token, user, err := svc.Login(ctx, "asha@example.com", "secret")
		assert.NoError(t, err)
		assert.NotEmpty(t, token)
		assert.Equal(t, account.ID, user.ID)

		claims, err := tokens.ValidateToken(token)
		assert.NoError(t, err)
		assert.Equal(t, account.ID, claims.UserID)
		assert.Equal(t, account.Email, claims.Email)
	})

	t.Run("Wrong Password", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)
		userRepo.On("GetByEmail", ctx, "asha@example.com").Return(account, nil)

		token, user, err := svc.Login(ctx, "asha@example.com", "wrong")
		assert.Empty(t, token)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Unknown Email Yields Same Error", func(t *testing.T) {
		userRepo := new(MockUserRepo)
		svc := NewAuthService(userRepo, tokens)
		userRepo.On("GetByEmail", ctx, "nobody@example.com").Return(nil, &domain.NotFoundError{Resource: "User"})

		token, user, err := svc.Login(ctx, "nobody@example.com", "secret")
		assert.Empty(t, token)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})
}
