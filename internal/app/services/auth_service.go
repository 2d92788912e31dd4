package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/artemn/yatube/internal/app/models"
	"github.com/artemn/yatube/internal/app/repositories"
	"github.com/artemn/yatube/internal/pkg/apperrors"
	"github.com/artemn/yatube/internal/pkg/auth"
	"github.com/artemn/yatube/internal/pkg/logger"
)

// SignupInput carries a validated registration submission.
type SignupInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
}

// AuthService implements account registration and session login.
type AuthService interface {
	SignUp(ctx context.Context, input SignupInput) (*models.User, error)
	// Login verifies the credentials and returns a session token for
	// the cookie. Bad username and bad password are indistinguishable
	// to the caller.
	Login(ctx context.Context, username, password string) (string, *models.User, error)
}

type authService struct {
	userRepo repositories.UserRepository
	sessions *auth.SessionService
}

// NewAuthService creates a new AuthService
func NewAuthService(userRepo repositories.UserRepository, sessions *auth.SessionService) AuthService {
	return &authService{userRepo: userRepo, sessions: sessions}
}

func (s *authService) SignUp(ctx context.Context, input SignupInput) (*models.User, error) {
	hashed, err := auth.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("error hashing password: %w", err)
	}

	user := &models.User{
		Username:  input.Username,
		Email:     input.Email,
		Password:  hashed,
		FirstName: input.FirstName,
		LastName:  input.LastName,
	}
	if _, err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.Info().Str("username", user.Username).Msg("User registered")
	return user, nil
}

func (s *authService) Login(ctx context.Context, username, password string) (string, *models.User, error) {
	user, err := s.userRepo.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return "", nil, apperrors.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if !auth.CheckPassword(user.Password, password) {
		return "", nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.sessions.Issue(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("error issuing session: %w", err)
	}

	return token, user, nil
}
