package service

import (
	"context"
	"errors"
	"strings"

	"greenfield-hub-backend/internal/domain"
	"greenfield-hub-backend/internal/logger"
	"greenfield-hub-backend/internal/repository"
	"greenfield-hub-backend/internal/security"
	"greenfield-hub-backend/internal/validation"

	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is deliberately the same for an unknown email and a
// wrong password, so callers cannot probe which accounts exist.
var ErrInvalidCredentials = errors.New("invalid email or password")

type signupInput struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginInput struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authService struct {
	userRepo repository.UserRepository
	tokens   security.TokenManager
}

func NewAuthService(userRepo repository.UserRepository, tokens security.TokenManager) AuthService {
	return &authService{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (s *authService) Signup(ctx context.Context, name, email, password string) (*domain.PublicUser, error) {
	logger.EnterMethod("authService.Signup", "email", email)
	input := signupInput{Name: name, Email: email, Password: password}
	if err := validation.Struct(&input); err != nil {
		logger.ExitMethodWithError("authService.Signup", err, "email", email)
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Name:         name,
		Email:        strings.ToLower(email),
		PasswordHash: string(hash),
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		logger.ExitMethodWithError("authService.Signup", err, "email", user.Email)
		return nil, err
	}

	logger.ExitMethod("authService.Signup", "id", user.ID, "email", user.Email)
	pub := user.Public()
	return &pub, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (string, *domain.PublicUser, error) {
	logger.EnterMethod("authService.Login", "email", email)
	input := loginInput{Email: email, Password: password}
	if err := validation.Struct(&input); err != nil {
		return "", nil, err
	}

	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateSessionToken(user.ID, user.Email)
	if err != nil {
		logger.ExitMethodWithError("authService.Login", err, "email", user.Email)
		return "", nil, err
	}

	logger.ExitMethod("authService.Login", "id", user.ID)
	pub := user.Public()
	return token, &pub, nil
}
