//go:build unit
// +build unit

package v1

import (
	"strings"
	"testing"
	"time"

	"github.com/someilay/QuasarTest/internal/domain/users"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateUserRequest_Validation(t *testing.T) {
	explicitID := int64(7)
	badID := int64(0)

	tests := []struct {
		name    string
		request CreateUserRequest
		wantErr bool
	}{
		{
			name:    "valid minimal",
			request: CreateUserRequest{Username: "alice", Email: "alice@example.com"},
			wantErr: false,
		},
		{
			name:    "valid with explicit id",
			request: CreateUserRequest{ID: &explicitID, Username: "alice", Email: "alice@example.com"},
			wantErr: false,
		},
		{
			name:    "missing username",
			request: CreateUserRequest{Email: "alice@example.com"},
			wantErr: true,
		},
		{
			name:    "missing email",
			request: CreateUserRequest{Username: "alice"},
			wantErr: true,
		},
		{
			name:    "username too long",
			request: CreateUserRequest{Username: strings.Repeat("a", 51), Email: "alice@example.com"},
			wantErr: true,
		},
		{
			name:    "non positive id",
			request: CreateUserRequest{ID: &badID, Username: "alice", Email: "alice@example.com"},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateUserRequest_Validation(t *testing.T) {
	username := "bob"
	email := "bob@example.com"
	empty := ""

	tests := []struct {
		name    string
		request UpdateUserRequest
		wantErr bool
	}{
		{
			name:    "username only",
			request: UpdateUserRequest{Username: &username},
			wantErr: false,
		},
		{
			name:    "email only",
			request: UpdateUserRequest{Email: &email},
			wantErr: false,
		},
		{
			name:    "both fields",
			request: UpdateUserRequest{Username: &username, Email: &email},
			wantErr: false,
		},
		{
			name:    "no fields",
			request: UpdateUserRequest{},
			wantErr: true,
		},
		{
			name:    "empty username",
			request: UpdateUserRequest{Username: &empty},
			wantErr: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.request.Validate()
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewUserResponse_OmitsActivityProb(t *testing.T) {
	user := &users.User{
		ID:               3,
		Username:         "carol",
		Email:            "carol@example.com",
		RegistrationDate: time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC),
	}

	response := NewUserResponse(user)

	require.Nil(t, response.ActivityProb)
	assert.Equal(t, user.ID, response.ID)
	assert.Equal(t, user.Username, response.Username)
	assert.Equal(t, user.Email, response.Email)
	assert.Equal(t, user.RegistrationDate, response.RegistrationDate)
}
