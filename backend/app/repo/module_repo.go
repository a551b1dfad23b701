package repo

import (
	"beacon-guard/backend/app/models"

	"gorm.io/gorm"
)

type ModuleRepository struct{ db *gorm.DB }

func NewModuleRepository(db *gorm.DB) *ModuleRepository { return &ModuleRepository{db: db} }

func (r *ModuleRepository) Create(m *models.Module) error {
	return r.db.Create(m).Error
}

// FindByAgentAndName returns the newest module row for the pair, or
// gorm.ErrRecordNotFound.
func (r *ModuleRepository) FindByAgentAndName(agentID, name string) (*models.Module, error) {
	var m models.Module
	if err := r.db.Where("agent_id = ? AND name = ?", agentID, name).Order("id DESC").First(&m).Error; err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *ModuleRepository) Delete(m *models.Module) error {
	return r.db.Delete(m).Error
}

// ProcessedByAgent returns the modules whose results have landed.
func (r *ModuleRepository) ProcessedByAgent(agentID string) ([]models.Module, error) {
	var mods []models.Module
	if err := r.db.Where("agent_id = ? AND processed = ?", agentID, true).Find(&mods).Error; err != nil {
		return nil, err
	}
	return mods, nil
}

func (r *ModuleRepository) CountByAgent(agentID string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.Module{}).Where("agent_id = ?", agentID).Count(&count).Error
}
