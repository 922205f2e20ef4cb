// Package user manages user identity: registration and lookup. The
// engine trusts the user IDs it is handed; this package is where those
// IDs are minted.
package user

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/pockettrader/pockettrader/internal/domain"
	"github.com/pockettrader/pockettrader/internal/logger"
	"github.com/pockettrader/pockettrader/internal/repository"
)

// Service defines the interface for user operations
type Service interface {
	// Register creates a user for the username, or returns the existing
	// one. Registration is idempotent by username.
	Register(ctx context.Context, username string) (*domain.User, error)
	GetUser(ctx context.Context, userID string) (*domain.User, error)
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type service struct {
	repo  repository.User
	now   func() time.Time
	newID func() string
}

// NewService creates a new user service
func NewService(repo repository.User) Service {
	return &service{
		repo:  repo,
		now:   func() time.Time { return time.Now().UTC() },
		newID: uuid.NewString,
	}
}

func (s *service) Register(ctx context.Context, username string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterCalled, "username", username)

	username = strings.TrimSpace(username)
	if len(username) < MinUsernameLength || len(username) > MaxUsernameLength {
		return nil, fmt.Errorf(ErrMsgUsernameLengthFmt, MinUsernameLength, MaxUsernameLength, domain.ErrInvalidInput)
	}

	existing, err := s.repo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetUserFailed, err)
	}
	if existing != nil {
		log.Info(LogMsgExistingUser, "userID", existing.ID)
		return existing, nil
	}

	user := &domain.User{
		ID:        s.newID(),
		Username:  username,
		CreatedAt: s.now(),
	}
	if err := s.repo.CreateUser(ctx, user); err != nil {
		return nil, fmt.Errorf(ErrMsgCreateUserFailed, err)
	}

	log.Info(LogMsgUserRegistered, "userID", user.ID, "username", username)
	return user, nil
}

func (s *service) GetUser(ctx context.Context, userID string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgGetUserCalled, "userID", userID)

	user, err := s.repo.GetUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgGetUserFailed, err)
	}
	if user == nil {
		return nil, domain.ErrUserNotFound
	}
	return user, nil
}

func (s *service) ListUsers(ctx context.Context) ([]domain.User, error) {
	log := logger.FromContext(ctx)
	log.Debug(LogMsgListUsersCalled)

	users, err := s.repo.ListUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf(ErrMsgListUsersFailed, err)
	}
	return users, nil
}
