package services

import (
	"errors"
	"math"
	"strings"
	"testing"
	"time"

	"github.com/terraincognita07/morsel/internal/models"
)

type fakeMealRepository struct {
	meals  map[uint]models.MealRecord
	nextID uint
}

func newFakeMealRepository() *fakeMealRepository {
	return &fakeMealRepository{meals: make(map[uint]models.MealRecord), nextID: 1}
}

func (repo *fakeMealRepository) ListByUser(userID uint) ([]models.MealRecord, error) {
	result := make([]models.MealRecord, 0)
	for _, meal := range repo.meals {
		if meal.UserID == userID {
			result = append(result, meal)
		}
	}
	return result, nil
}

func (repo *fakeMealRepository) FindByIDForUser(mealID uint, userID uint) (models.MealRecord, bool, error) {
	meal, found := repo.meals[mealID]
	if !found || meal.UserID != userID {
		return models.MealRecord{}, false, nil
	}
	return meal, true, nil
}

func (repo *fakeMealRepository) Create(meal *models.MealRecord) error {
	meal.ID = repo.nextID
	repo.nextID++
	repo.meals[meal.ID] = *meal
	return nil
}

func (repo *fakeMealRepository) Save(meal *models.MealRecord) error {
	repo.meals[meal.ID] = *meal
	return nil
}

func (repo *fakeMealRepository) DeleteByIDForUser(mealID uint, userID uint) error {
	meal, found := repo.meals[mealID]
	if found && meal.UserID == userID {
		delete(repo.meals, mealID)
	}
	return nil
}

type fakeFeedbackRepository struct {
	byMeal map[uint]models.MealFeedback
}

func newFakeFeedbackRepository() *fakeFeedbackRepository {
	return &fakeFeedbackRepository{byMeal: make(map[uint]models.MealFeedback)}
}

func (repo *fakeFeedbackRepository) FindByMeal(mealID uint) (models.MealFeedback, bool, error) {
	feedback, found := repo.byMeal[mealID]
	return feedback, found, nil
}

func (repo *fakeFeedbackRepository) Upsert(feedback *models.MealFeedback) error {
	repo.byMeal[feedback.MealID] = *feedback
	return nil
}

func (repo *fakeFeedbackRepository) DeleteByMeal(mealID uint) error {
	delete(repo.byMeal, mealID)
	return nil
}

func newTestMealService() (*MealService, *fakeMealRepository, *fakeFeedbackRepository) {
	meals := newFakeMealRepository()
	feedback := newFakeFeedbackRepository()
	return NewMealService(meals, feedback), meals, feedback
}

func validTestMeal(t *testing.T) models.MealRecord {
	t.Helper()
	return models.MealRecord{
		Name:            "Grilled chicken",
		FoodCategory:    "protein",
		ProcessingLevel: models.ProcessingUnprocessed,
		UploadTime:      mustParseTime(t, "2026-03-01T12:00:00Z"),
		Calories:        450,
		ProteinGrams:    42,
	}
}

func TestMealService_CreateAssignsOwner(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestMealService()
	created, err := service.CreateMealForUser(7, validTestMeal(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID == 0 {
		t.Fatal("expected assigned meal id")
	}
	if created.UserID != 7 {
		t.Fatalf("expected owner 7, got %d", created.UserID)
	}
	if created.Allergens == nil || created.Additives == nil {
		t.Fatal("expected allergen and additive slices to be initialized")
	}
}

func TestMealService_CreateValidation(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		mutate  func(*models.MealRecord)
		wantErr error
	}{
		{"blank name", func(m *models.MealRecord) { m.Name = "   " }, ErrInvalidMealName},
		{"overlong name", func(m *models.MealRecord) { m.Name = strings.Repeat("a", maxMealNameLength+1) }, ErrInvalidMealName},
		{"zero upload time", func(m *models.MealRecord) { m.UploadTime = time.Time{} }, ErrInvalidUploadTime},
		{"unknown processing level", func(m *models.MealRecord) { m.ProcessingLevel = "DEEP_FRIED" }, ErrInvalidProcessingLevel},
		{"negative calories", func(m *models.MealRecord) { m.Calories = -1 }, ErrInvalidNutrientValue},
		{"nan protein", func(m *models.MealRecord) { m.ProteinGrams = math.NaN() }, ErrInvalidNutrientValue},
		{"infinite sodium", func(m *models.MealRecord) { m.SodiumMg = math.Inf(1) }, ErrInvalidNutrientValue},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			service, _, _ := newTestMealService()
			meal := validTestMeal(t)
			testCase.mutate(&meal)

			_, err := service.CreateMealForUser(1, meal)
			if !errors.Is(err, testCase.wantErr) {
				t.Fatalf("expected %v, got %v", testCase.wantErr, err)
			}
		})
	}
}

func TestMealService_EmptyProcessingLevelIsAllowed(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestMealService()
	meal := validTestMeal(t)
	meal.ProcessingLevel = ""

	if _, err := service.CreateMealForUser(1, meal); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestMealService_UpdateKeepsOwnerAndCreatedAt(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestMealService()
	created, err := service.CreateMealForUser(3, validTestMeal(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	updated := validTestMeal(t)
	updated.Name = "Chicken salad"
	updated.Calories = 380

	saved, err := service.UpdateMealForUser(created.ID, 3, updated)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if saved.UserID != 3 || saved.ID != created.ID {
		t.Fatalf("expected identity preserved, got id=%d user=%d", saved.ID, saved.UserID)
	}
	if saved.Name != "Chicken salad" || saved.Calories != 380 {
		t.Fatalf("expected updated fields, got name=%q calories=%v", saved.Name, saved.Calories)
	}
}

func TestMealService_UpdateForeignMealFails(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestMealService()
	created, err := service.CreateMealForUser(3, validTestMeal(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.UpdateMealForUser(created.ID, 4, validTestMeal(t)); !errors.Is(err, ErrMealNotFound) {
		t.Fatalf("expected ErrMealNotFound for foreign user, got %v", err)
	}
}

func TestMealService_DeleteRemovesFeedback(t *testing.T) {
	t.Parallel()

	service, meals, feedback := newTestMealService()
	created, err := service.CreateMealForUser(3, validTestMeal(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := service.SaveFeedbackForMeal(created.ID, 3, 5, "tasty", true); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if err := service.DeleteMealForUser(created.ID, 3); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, found := meals.meals[created.ID]; found {
		t.Fatal("expected meal to be deleted")
	}
	if _, found := feedback.byMeal[created.ID]; found {
		t.Fatal("expected feedback to be deleted with meal")
	}
}

func TestMealService_FeedbackRatingRange(t *testing.T) {
	t.Parallel()

	service, _, _ := newTestMealService()
	created, err := service.CreateMealForUser(3, validTestMeal(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := service.SaveFeedbackForMeal(created.ID, 3, 6, "", false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for rating 6, got %v", err)
	}
	if _, err := service.SaveFeedbackForMeal(created.ID, 3, -1, "", false); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for rating -1, got %v", err)
	}

	feedback, err := service.SaveFeedbackForMeal(created.ID, 3, 4, "  solid  ", true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if feedback.Comment != "solid" {
		t.Fatalf("expected trimmed comment, got %q", feedback.Comment)
	}
	if !feedback.Favorite {
		t.Fatal("expected favorite flag preserved")
	}
}
