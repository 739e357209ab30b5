//go:build integration
// +build integration

package generator

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/someilay/QuasarTest/internal/domain/users"
	"github.com/someilay/QuasarTest/internal/infrastructure/persistence"
	"github.com/someilay/QuasarTest/internal/pkg/config"
	pkgTesting "github.com/someilay/QuasarTest/internal/pkg/testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupGenerator(t *testing.T, seed int64) (DataGenerator, *persistence.TestContext) {
	t.Helper()

	dbContext := persistence.SetupTestDB(t, config.SqliteDbType)
	testLogger := pkgTesting.SetupTestLogger(t)

	gen, err := NewDataGenerator(dbContext.UserRepo, dbContext.ActivityRepo, seed, testLogger)
	require.NoError(t, err)
	return gen, dbContext
}

func listAllUsers(t *testing.T, ctx context.Context, dbContext *persistence.TestContext) []*users.User {
	t.Helper()

	query := users.NewUserQuery()
	query.PerPage = 100
	all, err := dbContext.UserRepo.List(ctx, query)
	require.NoError(t, err)
	return all
}

func TestDataGenerator_Generate(t *testing.T) {
	ctx := context.Background()
	gen, dbContext := setupGenerator(t, 42)

	err := gen.Generate(ctx, Options{Users: 10, MaxActivities: 5})
	require.NoError(t, err)

	count, err := dbContext.UserRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(10), count)

	now := time.Now()
	for _, user := range listAllUsers(t, ctx, dbContext) {
		assert.NotEmpty(t, user.Username)
		assert.Contains(t, user.Email, "@")

		ageDays := int(now.Sub(user.RegistrationDate).Hours() / 24)
		assert.GreaterOrEqual(t, ageDays, 90)
		assert.LessOrEqual(t, ageDays, 730)

		activityCount, err := dbContext.ActivityRepo.CountByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, activityCount, int64(1))
		assert.LessOrEqual(t, activityCount, int64(5))

		events, err := dbContext.ActivityRepo.ListByUserID(ctx, user.ID)
		require.NoError(t, err)
		for _, event := range events {
			assert.False(t, event.Date.Before(user.RegistrationDate))
		}
	}
}

func TestDataGenerator_Generate_Defaults(t *testing.T) {
	ctx := context.Background()
	gen, dbContext := setupGenerator(t, 7)

	err := gen.Generate(ctx, Options{})
	require.NoError(t, err)

	count, err := dbContext.UserRepo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(DefaultUsers), count)
}

func TestDataGenerator_Generate_Reproducible(t *testing.T) {
	ctx := context.Background()

	firstGen, firstContext := setupGenerator(t, 1234)
	require.NoError(t, firstGen.Generate(ctx, Options{Users: 5, MaxActivities: 3}))

	secondGen, secondContext := setupGenerator(t, 1234)
	require.NoError(t, secondGen.Generate(ctx, Options{Users: 5, MaxActivities: 3}))

	firstUsers := listAllUsers(t, ctx, firstContext)
	secondUsers := listAllUsers(t, ctx, secondContext)
	require.Len(t, secondUsers, len(firstUsers))

	for i := range firstUsers {
		assert.Equal(t, firstUsers[i].Username, secondUsers[i].Username)
		assert.Equal(t, firstUsers[i].Email, secondUsers[i].Email)
	}
}

func TestDataGenerator_EmailDomains(t *testing.T) {
	ctx := context.Background()
	gen, dbContext := setupGenerator(t, 99)

	require.NoError(t, gen.Generate(ctx, Options{Users: 30, MaxActivities: 1}))

	common := 0
	for _, user := range listAllUsers(t, ctx, dbContext) {
		for _, domain := range commonDomains {
			if strings.HasSuffix(user.Email, "@"+domain) {
				common++
				break
			}
		}
	}

	// With a 0.8 share over 30 users, seeing none from the common providers
	// would mean the weighting is broken.
	assert.Greater(t, common, 0)
}
