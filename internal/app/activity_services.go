package app

import (
	"context"
	"fmt"
	"time"

	"github.com/someilay/QuasarTest/internal/domain/activities"
	"github.com/someilay/QuasarTest/internal/domain/forecast"
	"github.com/someilay/QuasarTest/internal/domain/users"
	"github.com/someilay/QuasarTest/internal/pkg/logger"
)

// activityService implements the activities.ActivityService interface
type activityService struct {
	activityRepo activities.ActivityRepository
	userRepo     users.UserRepository
	logger       logger.Logger
}

// NewActivityService creates a new instance of ActivityService
func NewActivityService(
	activityRepo activities.ActivityRepository,
	userRepo users.UserRepository,
	logger logger.Logger,
) (activities.ActivityService, error) {
	return &activityService{
		activityRepo: activityRepo,
		userRepo:     userRepo,
		logger:       logger,
	}, nil
}

// Record stores a new activity event for the given user.
func (s *activityService) Record(ctx context.Context, userID int64, date time.Time) (*activities.Activity, error) {
	// The event must belong to an existing user
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	activity := &activities.Activity{
		UserID: userID,
		Date:   date,
	}

	if err := s.activityRepo.Create(ctx, activity); err != nil {
		return nil, fmt.Errorf("failed to record activity: %w", err)
	}

	return activity, nil
}

// RetentionProbability estimates the probability that the user keeps up their
// activity level next month based on the linear trend of monthly visit counts.
func (s *activityService) RetentionProbability(ctx context.Context, userID int64, registeredAt, now time.Time) (float64, error) {
	list, err := s.activityRepo.ListByUserID(ctx, userID)
	if err != nil {
		return 0, err
	}

	events := make([]time.Time, len(list))
	for i, activity := range list {
		events[i] = activity.Date
	}

	counts := forecast.MonthlyCounts(events, registeredAt, now)
	return forecast.RetentionProbability(counts), nil
}
