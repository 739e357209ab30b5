// Package activities holds the activity event entity and its contracts.
// An activity row records a single user visit at a point in time.
package activities

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Activity entity
type Activity struct {
	ID     int64     `validate:"omitempty,min=1"`
	UserID int64     `validate:"required,min=1"`
	Date   time.Time `validate:"required"`
}

// Validate for validating Activity struct
func (a *Activity) Validate() error {
	validate := validator.New()

	err := validate.Struct(a)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
