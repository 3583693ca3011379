package services

import (
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/terraincognita07/morsel/internal/models"
)

var (
	ErrMealNotFound           = errors.New("meal not found")
	ErrInvalidMealName        = errors.New("invalid meal name")
	ErrInvalidNutrientValue   = errors.New("invalid nutrient value")
	ErrInvalidProcessingLevel = errors.New("invalid processing level")
	ErrInvalidUploadTime      = errors.New("invalid upload time")
	ErrSaveMealFailed         = errors.New("save meal failed")
	ErrDeleteMealFailed       = errors.New("delete meal failed")
)

const maxMealNameLength = 200

type MealWriterRepository interface {
	ListByUser(userID uint) ([]models.MealRecord, error)
	FindByIDForUser(mealID uint, userID uint) (models.MealRecord, bool, error)
	Create(meal *models.MealRecord) error
	Save(meal *models.MealRecord) error
	DeleteByIDForUser(mealID uint, userID uint) error
}

type MealFeedbackRepository interface {
	FindByMeal(mealID uint) (models.MealFeedback, bool, error)
	Upsert(feedback *models.MealFeedback) error
	DeleteByMeal(mealID uint) error
}

type MealService struct {
	meals    MealWriterRepository
	feedback MealFeedbackRepository
}

func NewMealService(meals MealWriterRepository, feedback MealFeedbackRepository) *MealService {
	return &MealService{meals: meals, feedback: feedback}
}

func (service *MealService) ListMealsForUser(userID uint) ([]models.MealRecord, error) {
	return service.meals.ListByUser(userID)
}

func (service *MealService) FindMealForUser(mealID uint, userID uint) (models.MealRecord, error) {
	meal, found, err := service.meals.FindByIDForUser(mealID, userID)
	if err != nil {
		return models.MealRecord{}, err
	}
	if !found {
		return models.MealRecord{}, ErrMealNotFound
	}
	return meal, nil
}

func (service *MealService) CreateMealForUser(userID uint, meal models.MealRecord) (models.MealRecord, error) {
	if err := validateMealRecord(&meal); err != nil {
		return models.MealRecord{}, err
	}

	meal.ID = 0
	meal.UserID = userID
	if err := service.meals.Create(&meal); err != nil {
		return models.MealRecord{}, fmt.Errorf("%w: %v", ErrSaveMealFailed, err)
	}
	return meal, nil
}

func (service *MealService) UpdateMealForUser(mealID uint, userID uint, updated models.MealRecord) (models.MealRecord, error) {
	existing, err := service.FindMealForUser(mealID, userID)
	if err != nil {
		return models.MealRecord{}, err
	}

	if err := validateMealRecord(&updated); err != nil {
		return models.MealRecord{}, err
	}

	updated.ID = existing.ID
	updated.UserID = existing.UserID
	updated.CreatedAt = existing.CreatedAt
	if err := service.meals.Save(&updated); err != nil {
		return models.MealRecord{}, fmt.Errorf("%w: %v", ErrSaveMealFailed, err)
	}
	return updated, nil
}

func (service *MealService) DeleteMealForUser(mealID uint, userID uint) error {
	if _, err := service.FindMealForUser(mealID, userID); err != nil {
		return err
	}
	if err := service.feedback.DeleteByMeal(mealID); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteMealFailed, err)
	}
	if err := service.meals.DeleteByIDForUser(mealID, userID); err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteMealFailed, err)
	}
	return nil
}

// FeedbackForMeal returns the stored reaction for a meal, or a zero-value
// feedback when none was saved yet.
func (service *MealService) FeedbackForMeal(mealID uint, userID uint) (models.MealFeedback, bool, error) {
	if _, err := service.FindMealForUser(mealID, userID); err != nil {
		return models.MealFeedback{}, false, err
	}
	return service.feedback.FindByMeal(mealID)
}

func (service *MealService) SaveFeedbackForMeal(mealID uint, userID uint, rating int, comment string, favorite bool) (models.MealFeedback, error) {
	if _, err := service.FindMealForUser(mealID, userID); err != nil {
		return models.MealFeedback{}, err
	}
	if rating < 0 || rating > 5 {
		return models.MealFeedback{}, fmt.Errorf("%w: rating out of range", ErrInvalidInput)
	}

	feedback := models.MealFeedback{
		MealID:   mealID,
		UserID:   userID,
		Rating:   rating,
		Comment:  strings.TrimSpace(comment),
		Favorite: favorite,
	}
	if err := service.feedback.Upsert(&feedback); err != nil {
		return models.MealFeedback{}, fmt.Errorf("%w: %v", ErrSaveMealFailed, err)
	}
	return feedback, nil
}

func validateMealRecord(meal *models.MealRecord) error {
	meal.Name = strings.TrimSpace(meal.Name)
	if meal.Name == "" || len(meal.Name) > maxMealNameLength {
		return ErrInvalidMealName
	}

	if meal.UploadTime.IsZero() {
		return ErrInvalidUploadTime
	}

	level := strings.TrimSpace(meal.ProcessingLevel)
	meal.ProcessingLevel = level
	if level != "" && !isKnownProcessingLevel(level) {
		return ErrInvalidProcessingLevel
	}

	for _, value := range []float64{
		meal.Calories, meal.ProteinGrams, meal.CarbsGrams, meal.FatGrams,
		meal.FiberGrams, meal.SugarGrams, meal.SodiumMg, meal.FluidsMl,
		meal.AlcoholGrams, meal.CaffeineMg,
	} {
		if math.IsNaN(value) || math.IsInf(value, 0) || value < 0 {
			return ErrInvalidNutrientValue
		}
	}

	if meal.Allergens == nil {
		meal.Allergens = []string{}
	}
	if meal.Additives == nil {
		meal.Additives = []string{}
	}
	return nil
}

func isKnownProcessingLevel(level string) bool {
	for _, known := range models.KnownProcessingLevels() {
		if level == known {
			return true
		}
	}
	return false
}
