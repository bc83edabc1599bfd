package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	apperrors "dealshare/internal/errors"
	"dealshare/internal/model"
	"dealshare/internal/repository"
)

const bcryptCost = 10

// RegisterInput carries the fields required to create a user.
type RegisterInput struct {
	FirstName  string
	SecondName string
	Username   string
	Email      string
	Password   string
}

// AuthService handles registration, login, and user lookups.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*model.User, error)
	Authenticate(ctx context.Context, username, password string) (uint, error)
	GetUser(ctx context.Context, id uint) (*model.User, error)
}

type authService struct {
	userRepo repository.UserRepository
}

// NewAuthService creates a new authentication service.
func NewAuthService(userRepo repository.UserRepository) AuthService {
	return &authService{userRepo: userRepo}
}

// Register creates a new user with a hashed password and a server-set
// sign-up timestamp. Username and email must both be unused.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*model.User, error) {
	if _, err := s.userRepo.FindByUsername(ctx, in.Username); err == nil {
		return nil, apperrors.ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check username: %w", err)
	}
	if _, err := s.userRepo.FindByEmail(ctx, in.Email); err == nil {
		return nil, apperrors.ErrUserAlreadyExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("check email: %w", err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		FirstName:    in.FirstName,
		SecondName:   in.SecondName,
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: string(hashed),
		SignUpDate:   time.Now().UTC(),
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

// Authenticate looks up the user by username and compares passwords.
// A mismatch or unknown username returns ErrInvalidCredentials, never a
// raw database error.
func (s *authService) Authenticate(ctx context.Context, username, password string) (uint, error) {
	user, err := s.userRepo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.ErrInvalidCredentials
		}
		return 0, fmt.Errorf("find user: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return 0, apperrors.ErrInvalidCredentials
	}

	return user.ID, nil
}

// GetUser returns a single user row.
func (s *authService) GetUser(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}
