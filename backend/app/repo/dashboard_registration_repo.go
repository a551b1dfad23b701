package repo

import (
	"beacon-guard/backend/app/models"

	"gorm.io/gorm"
)

type DashboardRegistrationRepository struct{ db *gorm.DB }

func NewDashboardRegistrationRepository(db *gorm.DB) *DashboardRegistrationRepository {
	return &DashboardRegistrationRepository{db: db}
}

func (r *DashboardRegistrationRepository) Create(reg *models.DashboardRegistration) error {
	return r.db.Create(reg).Error
}

func (r *DashboardRegistrationRepository) Latest() (*models.DashboardRegistration, error) {
	var reg models.DashboardRegistration
	if err := r.db.Order("id DESC").First(&reg).Error; err != nil {
		return nil, err
	}
	return &reg, nil
}
