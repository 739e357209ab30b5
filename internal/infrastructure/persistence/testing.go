//go:build integration
// +build integration

package persistence

import (
	"strings"
	"testing"
	"time"

	"github.com/someilay/QuasarTest/internal/domain/activities"
	"github.com/someilay/QuasarTest/internal/domain/users"
	"github.com/someilay/QuasarTest/internal/infrastructure/persistence/models"
	"github.com/someilay/QuasarTest/internal/pkg/config"
	pkgTesting "github.com/someilay/QuasarTest/internal/pkg/testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds test database and repositories
type TestContext struct {
	DB           *gorm.DB
	UserRepo     users.UserRepository
	ActivityRepo activities.ActivityRepository
}

// SetupTestDB initializes test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = db.AutoMigrate(&models.UserModel{}, &models.ActivityModel{})
	require.NoError(t, err, "Failed to migrate schema")

	logger := pkgTesting.SetupTestLogger(t)

	userRepo, err := NewGormUserRepository(db, logger)
	require.NoError(t, err, "Failed to create user repository")

	activityRepo, err := NewGormActivityRepository(db, logger)
	require.NoError(t, err, "Failed to create activity repository")

	return &TestContext{
		DB:           db,
		UserRepo:     userRepo,
		ActivityRepo: activityRepo,
	}
}

// CreateTestUser creates a test user with default values
func CreateTestUser(t *testing.T, username, email string) *users.User {
	t.Helper()

	return &users.User{
		Username:         username,
		Email:            email,
		RegistrationDate: time.Now().Add(-30 * 24 * time.Hour),
	}
}

// CreateTestUserRegisteredAt creates a test user with a fixed registration date
func CreateTestUserRegisteredAt(t *testing.T, username, email string, registeredAt time.Time) *users.User {
	t.Helper()

	return &users.User{
		Username:         username,
		Email:            email,
		RegistrationDate: registeredAt,
	}
}
