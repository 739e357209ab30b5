//go:build unit
// +build unit

package v1

import (
	"context"
	"time"

	"github.com/someilay/QuasarTest/internal/domain/activities"
	"github.com/someilay/QuasarTest/internal/domain/users"

	"github.com/stretchr/testify/mock"
)

// MockUserService is a mock implementation of UserService
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) Create(ctx context.Context, user *users.User) (*users.User, error) {
	args := m.Called(ctx, user)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) GetByID(ctx context.Context, userID int64) (*users.User, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) Lookup(ctx context.Context, username, email string) (*users.User, error) {
	args := m.Called(ctx, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) List(ctx context.Context, query *users.UserQuery) ([]*users.User, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUserService) UpdateByID(ctx context.Context, userID int64, username, email string) (*users.User, error) {
	args := m.Called(ctx, userID, username, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*users.User), args.Error(1)
}

func (m *MockUserService) DeleteByID(ctx context.Context, userID int64) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

func (m *MockUserService) Delete(ctx context.Context, username, email string) error {
	args := m.Called(ctx, username, email)
	return args.Error(0)
}

// MockUserMetricsService is a mock implementation of UserMetricsService
type MockUserMetricsService struct {
	mock.Mock
}

func (m *MockUserMetricsService) CountRegisteredSince(ctx context.Context, days int) (int64, error) {
	args := m.Called(ctx, days)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockUserMetricsService) LongestNames(ctx context.Context, top int) ([]*users.User, error) {
	args := m.Called(ctx, top)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*users.User), args.Error(1)
}

func (m *MockUserMetricsService) EmailDomainShare(ctx context.Context, domain string) (float64, error) {
	args := m.Called(ctx, domain)
	return args.Get(0).(float64), args.Error(1)
}

// MockActivityService is a mock implementation of ActivityService
type MockActivityService struct {
	mock.Mock
}

func (m *MockActivityService) Record(ctx context.Context, userID int64, date time.Time) (*activities.Activity, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*activities.Activity), args.Error(1)
}

func (m *MockActivityService) RetentionProbability(ctx context.Context, userID int64, registeredAt, now time.Time) (float64, error) {
	args := m.Called(ctx, userID, registeredAt, now)
	return args.Get(0).(float64), args.Error(1)
}
