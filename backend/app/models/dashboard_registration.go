package models

import "time"

// DashboardRegistration is the operator console's own push subscription.
// Append-only; the most recent row wins.
type DashboardRegistration struct {
	ID         uint   `gorm:"primaryKey"`
	Endpoint   string `gorm:"type:text"`
	PushKey    string `gorm:"column:push_key;size:255"`
	AuthSecret string `gorm:"size:255"`
	CreatedAt  time.Time
}
