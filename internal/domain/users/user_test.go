//go:build unit
// +build unit

package users

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestUser_Validate(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name      string
		user      User
		shouldErr bool
	}{
		{"valid user", User{ID: 1, Username: "alice", Email: "alice@example.com", RegistrationDate: now}, false},
		{"valid without explicit id", User{Username: "bob", Email: "bob@example.com", RegistrationDate: now}, false},
		{"missing username", User{Email: "a@example.com", RegistrationDate: now}, true},
		{"missing email", User{Username: "a", RegistrationDate: now}, true},
		{"missing registration date", User{Username: "a", Email: "a@example.com"}, true},
		{"username too long", User{Username: strings.Repeat("a", 51), Email: "a@example.com", RegistrationDate: now}, true},
		{"email too long", User{Username: "a", Email: strings.Repeat("a", 51), RegistrationDate: now}, true},
		{"negative id", User{ID: -1, Username: "a", Email: "a@example.com", RegistrationDate: now}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.user.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestUserQuery_Validate(t *testing.T) {
	tests := []struct {
		name      string
		query     *UserQuery
		shouldErr bool
	}{
		{"defaults", NewUserQuery(), false},
		{"custom pagination", &UserQuery{Page: 3, PerPage: 25}, false},
		{"negative page", &UserQuery{Page: -1, PerPage: 10}, true},
		{"zero per page", &UserQuery{Page: 0, PerPage: 0}, true},
		{"per page above limit", &UserQuery{Page: 0, PerPage: 101}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.query.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
