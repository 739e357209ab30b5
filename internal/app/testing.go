//go:build integration
// +build integration

package app

import (
	"testing"

	"github.com/someilay/QuasarTest/internal/domain/activities"
	"github.com/someilay/QuasarTest/internal/domain/users"
	"github.com/someilay/QuasarTest/internal/infrastructure/persistence"
	pkgTesting "github.com/someilay/QuasarTest/internal/pkg/testing"

	"github.com/stretchr/testify/require"
)

// TestServices holds all application services and dependencies for testing
type TestServices struct {
	UserService        users.UserService
	UserMetricsService users.UserMetricsService
	ActivityService    activities.ActivityService

	DBContext *persistence.TestContext
}

// SetupTestServices initializes all application services for integration tests
func SetupTestServices(t *testing.T, dbType string) *TestServices {
	t.Helper()

	logger := pkgTesting.SetupTestLogger(t)
	dbContext := persistence.SetupTestDB(t, dbType)

	userService, err := NewUserService(dbContext.UserRepo, dbContext.ActivityRepo, logger)
	require.NoError(t, err, "Failed to create user service")

	metricsService, err := NewUserMetricsService(dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create user metrics service")

	activityService, err := NewActivityService(dbContext.ActivityRepo, dbContext.UserRepo, logger)
	require.NoError(t, err, "Failed to create activity service")

	return &TestServices{
		UserService:        userService,
		UserMetricsService: metricsService,
		ActivityService:    activityService,
		DBContext:          dbContext,
	}
}
