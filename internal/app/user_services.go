// Package app wires the domain contracts to their implementations and holds
// the application services behind the HTTP handlers and CLI commands.
package app

import (
	"context"
	"errors"

	"github.com/someilay/QuasarTest/internal/domain/activities"
	"github.com/someilay/QuasarTest/internal/domain/users"
	"github.com/someilay/QuasarTest/internal/pkg/logger"
)

// userService implements the users.UserService interface
type userService struct {
	userRepo     users.UserRepository
	activityRepo activities.ActivityRepository
	logger       logger.Logger
}

// NewUserService creates a new instance of UserService
func NewUserService(
	userRepo users.UserRepository,
	activityRepo activities.ActivityRepository,
	logger logger.Logger,
) (users.UserService, error) {
	return &userService{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		logger:       logger,
	}, nil
}

// Create stores a new user and returns it with its id populated.
func (s *userService) Create(ctx context.Context, user *users.User) (*users.User, error) {
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// GetByID retrieves a user by its id.
func (s *userService) GetByID(ctx context.Context, userID int64) (*users.User, error) {
	return s.userRepo.GetByID(ctx, userID)
}

// Lookup retrieves a single user by username or email; username wins when both are set.
func (s *userService) Lookup(ctx context.Context, username, email string) (*users.User, error) {
	if username != "" {
		return s.userRepo.GetByUsername(ctx, username)
	}
	return s.userRepo.GetByEmail(ctx, email)
}

// List retrieves users ordered by id with pagination applied.
func (s *userService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	return s.userRepo.List(ctx, query)
}

// UpdateByID updates the username and/or email of an existing user.
func (s *userService) UpdateByID(ctx context.Context, userID int64, username, email string) (*users.User, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if username != "" {
		user.Username = username
	}
	if email != "" {
		user.Email = email
	}

	if err := s.userRepo.UpdateByID(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// DeleteByID deletes a user together with its activity events.
func (s *userService) DeleteByID(ctx context.Context, userID int64) error {
	if err := s.activityRepo.DeleteByUserID(ctx, userID); err != nil {
		return err
	}
	return s.userRepo.DeleteByID(ctx, userID)
}

// Delete deletes users matching username or email together with their activity events.
func (s *userService) Delete(ctx context.Context, username, email string) error {
	user, err := s.Lookup(ctx, username, email)
	if err != nil {
		return err
	}

	for {
		if err := s.DeleteByID(ctx, user.ID); err != nil {
			return err
		}

		// Selectors are not unique, keep going until nothing matches
		user, err = s.Lookup(ctx, username, email)
		if err != nil {
			if errors.Is(err, users.ErrNotFound) {
				return nil
			}
			return err
		}
	}
}
