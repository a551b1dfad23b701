package models

import "time"

// Registration is an agent push subscription. Rows are never updated or
// deleted; a newer row supersedes older ones, so the highest id per agent
// is the authoritative subscription.
type Registration struct {
	ID         uint   `gorm:"primaryKey"`
	AgentID    string `gorm:"index;size:64;not null"`
	Endpoint   string `gorm:"type:text"`
	AuthKey    string `gorm:"size:255"`
	AuthSecret string `gorm:"size:255"`
	CreatedAt  time.Time
}
