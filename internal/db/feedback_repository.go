package db

import (
	"github.com/terraincognita07/morsel/internal/models"
	"gorm.io/gorm"
)

type FeedbackRepository struct {
	database *gorm.DB
}

func NewFeedbackRepository(database *gorm.DB) *FeedbackRepository {
	return &FeedbackRepository{database: database}
}

func (repo *FeedbackRepository) FindByMeal(mealID uint) (models.MealFeedback, bool, error) {
	feedback := models.MealFeedback{}
	result := repo.database.Where("meal_id = ?", mealID).Limit(1).Find(&feedback)
	if result.Error != nil {
		return models.MealFeedback{}, false, result.Error
	}
	if result.RowsAffected == 0 {
		return models.MealFeedback{}, false, nil
	}
	return feedback, true, nil
}

func (repo *FeedbackRepository) Upsert(feedback *models.MealFeedback) error {
	existing := models.MealFeedback{}
	result := repo.database.Where("meal_id = ?", feedback.MealID).Limit(1).Find(&existing)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		feedback.ID = existing.ID
		feedback.CreatedAt = existing.CreatedAt
		return repo.database.Save(feedback).Error
	}
	return repo.database.Create(feedback).Error
}

func (repo *FeedbackRepository) DeleteByMeal(mealID uint) error {
	return repo.database.Where("meal_id = ?", mealID).Delete(&models.MealFeedback{}).Error
}
