package models

import "time"

// Agent is a browser beacon known to the panel. The id is minted by the
// enrollment path and never changes afterwards.
type Agent struct {
	ID        string `gorm:"primaryKey;size:64"`
	Domain    string `gorm:"size:255"`
	UserAgent string `gorm:"size:512"`
	RemoteIP  string `gorm:"size:64"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Registrations []Registration `gorm:"constraint:OnDelete:CASCADE"`
	Modules       []Module       `gorm:"constraint:OnDelete:CASCADE"`
	DomCommands   []DomCommand   `gorm:"constraint:OnDelete:CASCADE"`
}

// ToJSON is the descriptive projection used by every operator-facing view.
func (a *Agent) ToJSON() map[string]any {
	return map[string]any{
		"id":         a.ID,
		"domain":     a.Domain,
		"user_agent": a.UserAgent,
		"ip":         a.RemoteIP,
		"created_at": a.CreatedAt.Unix(),
	}
}
