package repo

import (
	"beacon-guard/backend/app/models"

	"gorm.io/gorm"
)

type DomCommandRepository struct{ db *gorm.DB }

func NewDomCommandRepository(db *gorm.DB) *DomCommandRepository {
	return &DomCommandRepository{db: db}
}

func (r *DomCommandRepository) Create(c *models.DomCommand) error {
	return r.db.Create(c).Error
}

// LatestProcessed returns the newest limit processed commands for an
// agent, newest first.
func (r *DomCommandRepository) LatestProcessed(agentID string, limit int) ([]models.DomCommand, error) {
	var cmds []models.DomCommand
	err := r.db.Where("agent_id = ? AND processed = ?", agentID, true).
		Order("id DESC").Limit(limit).Find(&cmds).Error
	if err != nil {
		return nil, err
	}
	return cmds, nil
}

func (r *DomCommandRepository) CountByAgent(agentID string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.DomCommand{}).Where("agent_id = ?", agentID).Count(&count).Error
}
