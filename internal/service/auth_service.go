package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"nexus/internal/auth"
	"nexus/internal/errors"
	"nexus/internal/model"
	"nexus/internal/repository"
)

const bcryptCost = 10

// ProfileUpdate carries optional profile fields; nil means "leave unchanged".
type ProfileUpdate struct {
	Username *string
	Email    *string
	Bio      *string
	Image    *string
}

// AuthService handles registration, login and profile operations.
type AuthService interface {
	Register(ctx context.Context, username, email, password string) (token string, user *model.User, err error)
	Login(ctx context.Context, email, password string) (token string, user *model.User, err error)
	Profile(ctx context.Context, userID uuid.UUID) (*model.User, error)
	UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileUpdate) (*model.User, error)
}

type authService struct {
	users      repository.UserRepository
	jwtService *auth.JWTService
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, jwtService *auth.JWTService) AuthService {
	return &authService{
		users:      users,
		jwtService: jwtService,
	}
}

// Register creates a new user with a hashed password and issues a session
// token. Username and email uniqueness is checked with a single query over
// both columns before anything is persisted.
func (s *authService) Register(ctx context.Context, username, email, password string) (string, *model.User, error) {
	existing, err := s.users.FindByUsernameOrEmail(ctx, username, email)
	if err == nil && existing != nil {
		return "", nil, errors.ErrDuplicateIdentity
	}
	if err != nil && err != gorm.ErrRecordNotFound {
		return "", nil, fmt.Errorf("check identity: %w", err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcryptCost)
	if err != nil {
		return "", nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           uuid.New(),
		Username:     username,
		Email:        email,
		PasswordHash: string(hashedPassword),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return "", nil, fmt.Errorf("create user: %w", err)
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// Login authenticates by email and password. Unknown email and password
// mismatch return the same error.
func (s *authService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", nil, errors.ErrInvalidCredentials
	}

	token, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		return "", nil, fmt.Errorf("generate token: %w", err)
	}

	return token, user, nil
}

// Profile returns the user for a verified identity.
func (s *authService) Profile(ctx context.Context, userID uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}
	return user, nil
}

// UpdateProfile applies a partial update of username/email/bio/image. When an
// identity field changes, uniqueness is re-checked against other users before
// saving.
func (s *authService) UpdateProfile(ctx context.Context, userID uuid.UUID, input ProfileUpdate) (*model.User, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, fmt.Errorf("find user: %w", err)
	}

	if input.Username != nil || input.Email != nil {
		username := user.Username
		if input.Username != nil {
			username = *input.Username
		}
		email := user.Email
		if input.Email != nil {
			email = *input.Email
		}

		existing, err := s.users.FindByUsernameOrEmail(ctx, username, email)
		if err == nil && existing != nil && existing.ID != user.ID {
			return nil, errors.ErrDuplicateIdentity
		}
		if err != nil && err != gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("check identity: %w", err)
		}

		user.Username = username
		user.Email = email
	}

	if input.Bio != nil {
		user.Bio = *input.Bio
	}
	if input.Image != nil {
		user.Image = *input.Image
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return user, nil
}
