package service

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"paquexpress/internal/errors"
	"paquexpress/internal/model"
	"paquexpress/internal/repository"
)

const bcryptCost = 10

const (
	defaultUsername = "admin"
	defaultPassword = "admin123"
	defaultFullName = "System administrator"
)

// AuthService handles credential operations. Identity is per-request only:
// no tokens are issued and every subsequent call takes a raw user id.
type AuthService interface {
	Register(ctx context.Context, username, password, fullName string) (*model.User, error)
	Login(ctx context.Context, username, password string) (*model.User, error)
	EnsureDefaultUser(ctx context.Context) error
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register creates a new user with a bcrypt-hashed password.
func (s *authService) Register(ctx context.Context, username, password, fullName string) (*model.User, error) {
	existing, err := s.userRepo.FindByUsername(ctx, username)
	if err == nil && existing != nil {
		return nil, errors.ErrUserAlreadyExists
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return nil, fmt.Errorf("check user existence: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		Username:     username,
		PasswordHash: string(hashed),
		FullName:     fullName,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Login verifies credentials and returns the matching user.
func (s *authService) Login(ctx context.Context, username, password string) (*model.User, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, errors.ErrInvalidCredentials
	}

	return user, nil
}

// EnsureDefaultUser creates the default admin account if it does not exist.
// Safe to call on every bootstrap.
func (s *authService) EnsureDefaultUser(ctx context.Context) error {
	_, err := s.userRepo.FindByUsername(ctx, defaultUsername)
	if err == nil {
		return nil
	}
	if err != gorm.ErrRecordNotFound {
		return fmt.Errorf("look up default user: %w", err)
	}

	if _, err := s.Register(ctx, defaultUsername, defaultPassword, defaultFullName); err != nil {
		return fmt.Errorf("create default user: %w", err)
	}
	return nil
}
