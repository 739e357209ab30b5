package models

import (
	"time"

	"github.com/someilay/QuasarTest/internal/domain/users"
)

// UserModel is the GORM database model for users (infrastructure concern)
type UserModel struct {
	ID               int64     `gorm:"primaryKey;autoIncrement"`
	Username         string    `gorm:"not null;type:varchar(50);index"`
	Email            string    `gorm:"not null;type:varchar(50);index"`
	RegistrationDate time.Time `gorm:"not null;index"`
}

// TableName specifies the table name for GORM
func (UserModel) TableName() string {
	return "users"
}

// ToDomain converts GORM model to domain entity
func (m *UserModel) ToDomain() *users.User {
	return &users.User{
		ID:               m.ID,
		Username:         m.Username,
		Email:            m.Email,
		RegistrationDate: m.RegistrationDate,
	}
}

// FromDomain converts domain entity to GORM model
func (m *UserModel) FromDomain(u *users.User) {
	m.ID = u.ID
	m.Username = u.Username
	m.Email = u.Email
	m.RegistrationDate = u.RegistrationDate
}
