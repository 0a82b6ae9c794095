package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/taskhive/taskhive/internal/domain/entity"
	repo "github.com/taskhive/taskhive/internal/domain/repository"
	"github.com/taskhive/taskhive/pkg/helpers"
)

var (
	ErrEmailTaken         = errors.New("email already registered")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("incorrect password")
)

// AuthService orchestrates registration and login. It holds no state of
// its own; every durable record lives in the user repository and every
// issued token is self-contained.
type AuthService struct {
	Users  repo.UserRepository
	Tokens *helpers.TokenManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, tokens *helpers.TokenManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, Tokens: tokens, Logger: logger}
}

// Register checks email then username for collisions, hashes the
// password and persists the new user. The pre-checks are not atomic with
// the insert; a concurrent registration that slips through them is
// caught by the store's unique indexes and reported as the same
// conflict error the pre-check would have produced.
func (s *AuthService) Register(ctx context.Context, username, email, password string) (string, error) {
	if _, err := s.Users.GetByEmail(ctx, email); err == nil {
		return "", ErrEmailTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return "", err
	}
	if _, err := s.Users.GetByUsername(ctx, username); err == nil {
		return "", ErrUsernameTaken
	} else if !errors.Is(err, repo.ErrNotFound) {
		return "", err
	}

	hash, err := helpers.HashPassword(password)
	if err != nil {
		return "", err
	}

	u := &entity.User{
		ID:           uuid.NewString(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.Users.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateKey) {
			// Lost the race between pre-check and insert.
			if _, e := s.Users.GetByEmail(ctx, email); e == nil {
				return "", ErrEmailTaken
			}
			return "", ErrUsernameTaken
		}
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("username", username).Error("persist user failed")
		}
		return "", err
	}
	return u.ID, nil
}

// Login looks the user up by username (exact, case-sensitive match),
// verifies the password and issues an access token. No session record
// is created; each login is independent.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, time.Time, error) {
	u, err := s.Users.GetByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		return "", time.Time{}, ErrUserNotFound
	}
	if err != nil {
		return "", time.Time{}, err
	}
	if !helpers.CheckPassword(u.PasswordHash, password) {
		return "", time.Time{}, ErrInvalidCredentials
	}

	token, exp, err := s.Tokens.Generate(u.ID, u.Username)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate access token failed")
		}
		return "", time.Time{}, err
	}
	return token, exp, nil
}
