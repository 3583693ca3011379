package db

import (
	"github.com/terraincognita07/morsel/internal/models"
	"gorm.io/gorm"
)

type QuotaRepository struct {
	database *gorm.DB
}

func NewQuotaRepository(database *gorm.DB) *QuotaRepository {
	return &QuotaRepository{database: database}
}

func (repo *QuotaRepository) FindByUser(userID uint) (models.AnalysisQuota, bool, error) {
	quota := models.AnalysisQuota{}
	result := repo.database.Where("user_id = ?", userID).Limit(1).Find(&quota)
	if result.Error != nil {
		return models.AnalysisQuota{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.AnalysisQuota{}, false, nil
	}
	return quota, true, nil
}

func (repo *QuotaRepository) Save(quota *models.AnalysisQuota) error {
	if quota.ID == 0 {
		return repo.database.Create(quota).Error
	}
	return repo.database.Save(quota).Error
}
