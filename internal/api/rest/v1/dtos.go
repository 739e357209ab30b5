package v1

import (
	"errors"
	"fmt"
	"time"

	"github.com/someilay/QuasarTest/internal/domain/activities"
	"github.com/someilay/QuasarTest/internal/domain/users"

	"github.com/go-playground/validator/v10"
)

// ErrorResponse is the uniform error payload of the api.
type ErrorResponse struct {
	Message string `json:"message"`
}

// CreateUserRequest is the payload for creating a user. The id may be set
// explicitly; the registration date defaults to the current time.
type CreateUserRequest struct {
	ID               *int64     `json:"id" validate:"omitempty,min=1"`
	Username         string     `json:"username" validate:"required,min=1,max=50"`
	Email            string     `json:"email" validate:"required,min=1,max=50"`
	RegistrationDate *time.Time `json:"registrationDate"`
}

// Validate for validating CreateUserRequest struct
func (r *CreateUserRequest) Validate() error {
	return validateStruct(r)
}

// UpdateUserRequest is the payload for updating a user. Omitted fields stay
// unchanged.
type UpdateUserRequest struct {
	Username *string `json:"username" validate:"omitempty,min=1,max=50"`
	Email    *string `json:"email" validate:"omitempty,min=1,max=50"`
}

// Validate for validating UpdateUserRequest struct
func (r *UpdateUserRequest) Validate() error {
	if r.Username == nil && r.Email == nil {
		return fmt.Errorf("at least one of username or email must be specified")
	}
	return validateStruct(r)
}

// RecordActivityRequest is the payload for recording an activity event.
// The date defaults to the current time.
type RecordActivityRequest struct {
	Date *time.Time `json:"date"`
}

// UserResponse is the api representation of a user. ActivityProb is only set
// when a prediction was requested.
type UserResponse struct {
	ID               int64     `json:"id"`
	Username         string    `json:"username"`
	Email            string    `json:"email"`
	RegistrationDate time.Time `json:"registrationDate"`
	ActivityProb     *float64  `json:"activityProb,omitempty"`
}

// NewUserResponse maps a domain user onto its api representation.
func NewUserResponse(user *users.User) UserResponse {
	return UserResponse{
		ID:               user.ID,
		Username:         user.Username,
		Email:            user.Email,
		RegistrationDate: user.RegistrationDate,
	}
}

// ActivityResponse is the api representation of an activity event.
type ActivityResponse struct {
	ID     int64     `json:"id"`
	UserID int64     `json:"userId"`
	Date   time.Time `json:"date"`
}

// NewActivityResponse maps a domain activity onto its api representation.
func NewActivityResponse(activity *activities.Activity) ActivityResponse {
	return ActivityResponse{
		ID:     activity.ID,
		UserID: activity.UserID,
		Date:   activity.Date,
	}
}

// CountResponse carries a single counter metric.
type CountResponse struct {
	Result int64 `json:"result"`
}

// FractionResponse carries a single ratio metric in [0, 1].
type FractionResponse struct {
	Result float64 `json:"result"`
}

// StatusResponse acknowledges an operation without a payload.
type StatusResponse struct {
	Status string `json:"status"`
}

func validateStruct(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
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
