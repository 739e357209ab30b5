package generator

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/someilay/QuasarTest/internal/domain/activities"
	"github.com/someilay/QuasarTest/internal/domain/users"
	"github.com/someilay/QuasarTest/internal/pkg/logger"

	"github.com/brianvoe/gofakeit/v6"
)

const (
	// DefaultUsers is the number of users generated when no count is given.
	DefaultUsers = 50
	// DefaultMaxActivities caps the number of activity events per user.
	DefaultMaxActivities = 100

	minRegistrationAgeDays = 90
	maxRegistrationAgeDays = 730

	commonDomainShare = 0.8
)

// commonDomains are the providers most generated emails fall into.
var commonDomains = []string{"gmail.com", "yandex.ru", "yahoo.com", "mail.ru", "bing.com"}

// Options controls how much synthetic data is produced.
type Options struct {
	Users         int
	MaxActivities int
}

// DataGenerator seeds the database with synthetic users and activity events.
type DataGenerator interface {
	// Generate creates the requested number of users, each with a random
	// registration date and between 1 and MaxActivities activity events.
	Generate(ctx context.Context, options Options) error
}

type dataGenerator struct {
	userRepo     users.UserRepository
	activityRepo activities.ActivityRepository
	faker        *gofakeit.Faker
	logger       logger.Logger
}

// NewDataGenerator creates a DataGenerator. The same seed reproduces the
// same data set.
func NewDataGenerator(userRepo users.UserRepository, activityRepo activities.ActivityRepository, seed int64, logger logger.Logger) (DataGenerator, error) {
	if userRepo == nil {
		return nil, fmt.Errorf("userRepo must not be nil")
	}
	if activityRepo == nil {
		return nil, fmt.Errorf("activityRepo must not be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger must not be nil")
	}

	return &dataGenerator{
		userRepo:     userRepo,
		activityRepo: activityRepo,
		faker:        gofakeit.New(seed),
		logger:       logger,
	}, nil
}

func (g *dataGenerator) Generate(ctx context.Context, options Options) error {
	if options.Users <= 0 {
		options.Users = DefaultUsers
	}
	if options.MaxActivities <= 0 {
		options.MaxActivities = DefaultMaxActivities
	}

	now := time.Now()

	for i := 0; i < options.Users; i++ {
		user, err := g.generateUser(ctx, now)
		if err != nil {
			return fmt.Errorf("generating user %d of %d: %w", i+1, options.Users, err)
		}

		if err := g.generateActivities(ctx, user, options.MaxActivities, now); err != nil {
			return fmt.Errorf("generating activities for user id %d: %w", user.ID, err)
		}
	}

	g.logger.Info(fmt.Sprintf("Generated %d users with activity events", options.Users))
	return nil
}

// generateUser inserts one user with a random identity and a registration
// date between 90 and 730 days in the past.
func (g *dataGenerator) generateUser(ctx context.Context, now time.Time) (*users.User, error) {
	firstName := g.faker.FirstName()
	lastName := g.faker.LastName()
	birthYear := g.faker.Number(1960, 2005)

	username := strings.ToLower(firstName + lastName)
	email := fmt.Sprintf("%s%d@%s", username, birthYear, g.pickDomain())

	ageDays := g.faker.Number(minRegistrationAgeDays, maxRegistrationAgeDays)
	registrationDate := now.AddDate(0, 0, -ageDays)

	user := &users.User{
		Username:         username,
		Email:            email,
		RegistrationDate: registrationDate,
	}
	if err := user.Validate(); err != nil {
		return nil, err
	}

	if err := g.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// generateActivities inserts between 1 and maxActivities events for the user,
// spread uniformly between registration and now.
func (g *dataGenerator) generateActivities(ctx context.Context, user *users.User, maxActivities int, now time.Time) error {
	count := g.faker.Number(1, maxActivities)
	windowHours := int(now.Sub(user.RegistrationDate).Hours())
	if windowHours < 1 {
		windowHours = 1
	}

	batch := make([]*activities.Activity, 0, count)
	for i := 0; i < count; i++ {
		offset := time.Duration(g.faker.Number(0, windowHours)) * time.Hour
		batch = append(batch, &activities.Activity{
			UserID: user.ID,
			Date:   user.RegistrationDate.Add(offset),
		})
	}

	return g.activityRepo.CreateBatch(ctx, batch)
}

// pickDomain returns a common provider most of the time and a random vanity
// domain otherwise.
func (g *dataGenerator) pickDomain() string {
	if g.faker.Float64Range(0, 1) < commonDomainShare {
		return commonDomains[g.faker.Number(0, len(commonDomains)-1)]
	}
	return g.faker.DomainName()
}
