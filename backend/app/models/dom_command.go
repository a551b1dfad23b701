package models

import "time"

// DomCommand is one entry in an agent's append-only DOM execution log.
// Repeated sends of the same script are independent rows.
type DomCommand struct {
	ID        uint    `gorm:"primaryKey"`
	AgentID   string  `gorm:"index;size:64;not null"`
	Command   string  `gorm:"type:text"`
	Result    *string `gorm:"type:text"`
	Processed bool
	CreatedAt time.Time
}
