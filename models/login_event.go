package models

import (
	"time"

	"github.com/google/uuid"
)

// LoginEvent is one successful login, written on the hot path via pgx.
type LoginEvent struct {
	ID         uuid.UUID `json:"id" gorm:"type:uuid;primaryKey"`
	UserID     uuid.UUID `json:"userId" gorm:"type:uuid;not null;index"`
	LoggedInAt time.Time `json:"loggedInAt" gorm:"not null"`
	IPAddress  string    `json:"ipAddress" gorm:"type:varchar(64)"`
	UserAgent  string    `json:"userAgent" gorm:"type:text"`
	DeviceType string    `json:"deviceType" gorm:"type:varchar(20)"`
}

func (LoginEvent) TableName() string {
	return "login_events"
}
