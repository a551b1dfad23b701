package repo

import (
	"beacon-guard/backend/app/models"

	"gorm.io/gorm"
)

type RegistrationRepository struct{ db *gorm.DB }

func NewRegistrationRepository(db *gorm.DB) *RegistrationRepository {
	return &RegistrationRepository{db: db}
}

func (r *RegistrationRepository) Create(reg *models.Registration) error {
	return r.db.Create(reg).Error
}

// LatestByAgent returns the newest subscription row for an agent; older
// rows are history and never consulted.
func (r *RegistrationRepository) LatestByAgent(agentID string) (*models.Registration, error) {
	var reg models.Registration
	if err := r.db.Where("agent_id = ?", agentID).Order("id DESC").First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}
