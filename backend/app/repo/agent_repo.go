package repo

import (
	"beacon-guard/backend/app/models"

	"gorm.io/gorm"
)

type AgentRepository struct{ db *gorm.DB }

func NewAgentRepository(db *gorm.DB) *AgentRepository { return &AgentRepository{db: db} }

func (r *AgentRepository) FindByID(id string) (*models.Agent, error) {
	var a models.Agent
	if err := r.db.Where("id = ?", id).First(&a).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

// FindNotIn returns every agent whose id is absent from ids, with its
// registration history preloaded in one batch query (no per-agent lookup).
func (r *AgentRepository) FindNotIn(ids []string) ([]models.Agent, error) {
	q := r.db.Preload("Registrations")
	if len(ids) > 0 {
		q = q.Where("id NOT IN ?", ids)
	}
	var agents []models.Agent
	if err := q.Find(&agents).Error; err != nil {
		return nil, err
	}
	return agents, nil
}

// Delete removes the agent and all its queue rows in one transaction, so
// a failed delete never leaves orphaned modules or DOM commands behind.
func (r *AgentRepository) Delete(id string) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("agent_id = ?", id).Delete(&models.Module{}).Error; err != nil {
			return err
		}
		if err := tx.Where("agent_id = ?", id).Delete(&models.DomCommand{}).Error; err != nil {
			return err
		}
		if err := tx.Where("agent_id = ?", id).Delete(&models.Registration{}).Error; err != nil {
			return err
		}
		return tx.Where("id = ?", id).Delete(&models.Agent{}).Error
	})
}
