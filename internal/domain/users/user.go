package users

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Sentinel errors shared by repositories and services so callers can map
// them onto transport-level responses.
var (
	// ErrNotFound is returned when no user matches the given selector.
	ErrNotFound = errors.New("user not found")
	// ErrDuplicateID is returned when a user with an explicitly supplied id already exists.
	ErrDuplicateID = errors.New("user with given id already exists")
)

// User entity
type User struct {
	ID               int64     `validate:"omitempty,min=1"`
	Username         string    `validate:"required,min=1,max=50"`
	Email            string    `validate:"required,min=1,max=50"`
	RegistrationDate time.Time `validate:"required"`
}

// Validate for validating User struct
func (u *User) Validate() error {
	validate := validator.New()

	err := validate.Struct(u)
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

// UserQuery represents lookup and pagination parameters for listing users.
// Username and Email, when set, narrow the listing to exact matches.
type UserQuery struct {
	Username string `validate:"omitempty,max=50"`
	Email    string `validate:"omitempty,max=50"`

	Page    int `validate:"min=0"`
	PerPage int `validate:"min=1,max=100"`
}

// NewUserQuery creates a query with default pagination applied.
func NewUserQuery() *UserQuery {
	return &UserQuery{
		Page:    0,
		PerPage: 10,
	}
}

// Validate for validating UserQuery struct
func (q *UserQuery) Validate() error {
	validate := validator.New()

	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	return nil
}
