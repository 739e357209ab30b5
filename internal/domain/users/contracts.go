package users

import (
	"context"
	"time"
)

// UserService defines methods for managing users.
type UserService interface {
	// Create stores a new user. When user.ID is zero the database assigns one.
	// It returns the stored user and ErrDuplicateID when an explicit id is taken.
	Create(ctx context.Context, user *User) (*User, error)

	// GetByID retrieves a user by its id.
	// It returns ErrNotFound when no such user exists.
	GetByID(ctx context.Context, userID int64) (*User, error)

	// Lookup retrieves a single user by username or email (username wins when
	// both are set). It returns ErrNotFound when no user matches.
	Lookup(ctx context.Context, username, email string) (*User, error)

	// List retrieves users ordered by id considering the query's pagination.
	List(ctx context.Context, query *UserQuery) ([]*User, error)

	// UpdateByID updates the username and/or email of an existing user.
	// Empty arguments leave the corresponding field unchanged.
	UpdateByID(ctx context.Context, userID int64, username, email string) (*User, error)

	// DeleteByID deletes a user by id together with its activity events.
	DeleteByID(ctx context.Context, userID int64) error

	// Delete deletes users matching username or email.
	// It returns ErrNotFound when neither selector matches anything.
	Delete(ctx context.Context, username, email string) error
}

// UserMetricsService defines aggregate queries over the user table.
type UserMetricsService interface {
	// CountRegisteredSince returns the number of users registered within the
	// given number of days, boundary inclusive.
	CountRegisteredSince(ctx context.Context, days int) (int64, error)

	// LongestNames returns the top users ordered by username length descending.
	LongestNames(ctx context.Context, top int) ([]*User, error)

	// EmailDomainShare returns the fraction [0, 1] of users whose email ends
	// with the given domain suffix. An empty table yields 0.
	EmailDomainShare(ctx context.Context, domain string) (float64, error)
}

// UserRepository defines the interface for user persistence operations.
type UserRepository interface {
	// Create adds a new user to the database
	Create(ctx context.Context, user *User) error
	// List lists users in the database with pagination applied
	List(ctx context.Context, query *UserQuery) ([]*User, error)
	// GetByID retrieves a user from the database by id
	GetByID(ctx context.Context, userID int64) (*User, error)
	// GetByUsername retrieves the first user with the given username
	GetByUsername(ctx context.Context, username string) (*User, error)
	// GetByEmail retrieves the first user with the given email
	GetByEmail(ctx context.Context, email string) (*User, error)
	// UpdateByID updates a user in the database by id
	UpdateByID(ctx context.Context, user *User) error
	// DeleteByID deletes a user in the database by id
	DeleteByID(ctx context.Context, userID int64) error
	// DeleteByUsername deletes users with the given username, reporting how many rows matched
	DeleteByUsername(ctx context.Context, username string) (int64, error)
	// DeleteByEmail deletes users with the given email, reporting how many rows matched
	DeleteByEmail(ctx context.Context, email string) (int64, error)

	// Count returns the total number of users
	Count(ctx context.Context) (int64, error)
	// CountRegisteredSince returns the number of users with registration_date >= since
	CountRegisteredSince(ctx context.Context, since time.Time) (int64, error)
	// CountEmailSuffix returns the number of users whose email ends with suffix
	CountEmailSuffix(ctx context.Context, suffix string) (int64, error)
	// ListByNameLength returns up to limit users ordered by username length descending
	ListByNameLength(ctx context.Context, limit int) ([]*User, error)
}
