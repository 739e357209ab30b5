package activities

import (
	"context"
	"time"
)

// ActivityService defines methods for recording visits and estimating
// whether a user keeps up their activity.
type ActivityService interface {
	// Record stores a new activity event for the given user.
	// It returns the stored activity with its id populated.
	Record(ctx context.Context, userID int64, date time.Time) (*Activity, error)

	// RetentionProbability estimates the probability [0, 1] that the user
	// keeps up their current activity level over the next month, based on a
	// linear trend over their monthly visit counts since registration.
	RetentionProbability(ctx context.Context, userID int64, registeredAt, now time.Time) (float64, error)
}

// ActivityRepository defines the interface for activity persistence operations.
type ActivityRepository interface {
	// Create adds a new activity event to the database
	Create(ctx context.Context, activity *Activity) error
	// CreateBatch adds activity events in batches
	CreateBatch(ctx context.Context, batch []*Activity) error
	// ListByUserID retrieves all activity events of a user ordered by date
	ListByUserID(ctx context.Context, userID int64) ([]*Activity, error)
	// DeleteByUserID deletes all activity events of a user
	DeleteByUserID(ctx context.Context, userID int64) error
	// CountByUserID returns the number of activity events of a user
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}
