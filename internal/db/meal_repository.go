package db

import (
	"time"

	"github.com/terraincognita07/morsel/internal/models"
	"gorm.io/gorm"
)

type MealRepository struct {
	database *gorm.DB
}

func NewMealRepository(database *gorm.DB) *MealRepository {
	return &MealRepository{database: database}
}

func (repo *MealRepository) ListByUser(userID uint) ([]models.MealRecord, error) {
	meals := make([]models.MealRecord, 0)
	if err := repo.database.Where("user_id = ?", userID).Order("upload_time ASC, id ASC").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *MealRepository) ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.MealRecord, error) {
	meals := make([]models.MealRecord, 0)
	if err := repo.database.
		Where("user_id = ? AND upload_time >= ? AND upload_time < ?", userID, fromStart, toEnd).
		Order("upload_time ASC, id ASC").
		Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *MealRepository) ListByUserOptionalRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.MealRecord, error) {
	query := repo.database.Model(&models.MealRecord{}).Where("user_id = ?", userID)
	if fromStart != nil {
		query = query.Where("upload_time >= ?", *fromStart)
	}
	if toEnd != nil {
		query = query.Where("upload_time < ?", *toEnd)
	}

	meals := make([]models.MealRecord, 0)
	if err := query.Order("upload_time ASC, id ASC").Find(&meals).Error; err != nil {
		return nil, err
	}
	return meals, nil
}

func (repo *MealRepository) FindByIDForUser(mealID uint, userID uint) (models.MealRecord, bool, error) {
	meal := models.MealRecord{}
	result := repo.database.
		Where("id = ? AND user_id = ?", mealID, userID).
		Limit(1).
		Find(&meal)
	if result.Error != nil {
		return models.MealRecord{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MealRecord{}, false, nil
	}
	return meal, true, nil
}

func (repo *MealRepository) Create(meal *models.MealRecord) error {
	return repo.database.Create(meal).Error
}

func (repo *MealRepository) Save(meal *models.MealRecord) error {
	return repo.database.Save(meal).Error
}

func (repo *MealRepository) DeleteByIDForUser(mealID uint, userID uint) error {
	return repo.database.Where("id = ? AND user_id = ?", mealID, userID).Delete(&models.MealRecord{}).Error
}
