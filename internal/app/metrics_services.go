package app

import (
	"context"
	"fmt"
	"time"

	"github.com/someilay/QuasarTest/internal/domain/users"
	"github.com/someilay/QuasarTest/internal/pkg/logger"
)

// Defaults applied when a metrics request leaves the parameter out.
const (
	DefaultRegistrationWindowDays = 7
	DefaultLongestNamesTop        = 5
)

// userMetricsService implements the users.UserMetricsService interface
type userMetricsService struct {
	userRepo users.UserRepository
	logger   logger.Logger
}

// NewUserMetricsService creates a new instance of UserMetricsService
func NewUserMetricsService(userRepo users.UserRepository, logger logger.Logger) (users.UserMetricsService, error) {
	return &userMetricsService{
		userRepo: userRepo,
		logger:   logger,
	}, nil
}

// CountRegisteredSince returns the number of users registered within the given
// number of days, boundary inclusive.
func (s *userMetricsService) CountRegisteredSince(ctx context.Context, days int) (int64, error) {
	if days <= 0 {
		days = DefaultRegistrationWindowDays
	}

	since := time.Now().AddDate(0, 0, -days)
	return s.userRepo.CountRegisteredSince(ctx, since)
}

// LongestNames returns the top users ordered by username length descending.
func (s *userMetricsService) LongestNames(ctx context.Context, top int) ([]*users.User, error) {
	if top <= 0 {
		top = DefaultLongestNamesTop
	}

	return s.userRepo.ListByNameLength(ctx, top)
}

// EmailDomainShare returns the fraction of users whose email ends with the
// given domain suffix.
func (s *userMetricsService) EmailDomainShare(ctx context.Context, domain string) (float64, error) {
	if domain == "" {
		return 0, fmt.Errorf("domain must not be empty")
	}

	total, err := s.userRepo.Count(ctx)
	if err != nil {
		return 0, err
	}
	if total == 0 {
		return 0, nil
	}

	matching, err := s.userRepo.CountEmailSuffix(ctx, domain)
	if err != nil {
		return 0, err
	}

	return float64(matching) / float64(total), nil
}
