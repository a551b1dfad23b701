package models

import "time"

// Module is a single work slot: agent AgentID should run capability Name.
// The composite unique index is the real guard against double enqueue;
// the service-level existence check only provides the friendlier error.
type Module struct {
	ID        uint   `gorm:"primaryKey"`
	AgentID   string `gorm:"uniqueIndex:idx_agent_module;size:64;not null"`
	Name      string `gorm:"uniqueIndex:idx_agent_module;size:191;not null"`
	Results   string `gorm:"type:text"`
	Processed bool
	CreatedAt time.Time
}
