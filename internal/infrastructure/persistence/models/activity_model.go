package models

import (
	"time"

	"github.com/someilay/QuasarTest/internal/domain/activities"
)

// ActivityModel is the GORM database model for activity events (infrastructure concern)
type ActivityModel struct {
	ID     int64     `gorm:"primaryKey;autoIncrement"`
	UserID int64     `gorm:"not null;index"`
	Date   time.Time `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ActivityModel) TableName() string {
	return "activities"
}

// ToDomain converts GORM model to domain entity
func (m *ActivityModel) ToDomain() *activities.Activity {
	return &activities.Activity{
		ID:     m.ID,
		UserID: m.UserID,
		Date:   m.Date,
	}
}

// FromDomain converts domain entity to GORM model
func (m *ActivityModel) FromDomain(a *activities.Activity) {
	m.ID = a.ID
	m.UserID = a.UserID
	m.Date = a.Date
}
