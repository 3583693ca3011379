package api

import (
	"errors"
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/morsel/internal/models"
	"github.com/terraincognita07/morsel/internal/services"
)

func (handler *Handler) ListMeals(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user == nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	meals, err := handler.mealService.ListMealsForUser(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch meals")
	}
	return c.JSON(fiber.Map{"meals": meals})
}

func (handler *Handler) GetMeal(c *fiber.Ctx) error {
	user, mealID, status, message := handler.mealRequestContext(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	meal, err := handler.mealService.FindMealForUser(mealID, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return apiError(c, fiber.StatusNotFound, "meal not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch meal")
	}
	return c.JSON(meal)
}

func (handler *Handler) CreateMeal(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user == nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	meal, parseError := parseMealPayload(c)
	if parseError != "" {
		return apiError(c, fiber.StatusBadRequest, parseError)
	}

	handler.ensureDependencies()
	created, err := handler.mealService.CreateMealForUser(user.ID, meal)
	if err != nil {
		return mealWriteError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(created)
}

func (handler *Handler) UpdateMeal(c *fiber.Ctx) error {
	user, mealID, status, message := handler.mealRequestContext(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	meal, parseError := parseMealPayload(c)
	if parseError != "" {
		return apiError(c, fiber.StatusBadRequest, parseError)
	}

	updated, err := handler.mealService.UpdateMealForUser(mealID, user.ID, meal)
	if err != nil {
		return mealWriteError(c, err)
	}
	return c.JSON(updated)
}

func (handler *Handler) DeleteMeal(c *fiber.Ctx) error {
	user, mealID, status, message := handler.mealRequestContext(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	if err := handler.mealService.DeleteMealForUser(mealID, user.ID); err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return apiError(c, fiber.StatusNotFound, "meal not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to delete meal")
	}
	return c.JSON(fiber.Map{"ok": true})
}

func (handler *Handler) GetMealFeedback(c *fiber.Ctx) error {
	user, mealID, status, message := handler.mealRequestContext(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	feedback, found, err := handler.mealService.FeedbackForMeal(mealID, user.ID)
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return apiError(c, fiber.StatusNotFound, "meal not found")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch feedback")
	}
	if !found {
		return apiError(c, fiber.StatusNotFound, "feedback not found")
	}
	return c.JSON(feedback)
}

func (handler *Handler) SaveMealFeedback(c *fiber.Ctx) error {
	user, mealID, status, message := handler.mealRequestContext(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	payload := feedbackPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return apiError(c, fiber.StatusBadRequest, "invalid input")
	}

	feedback, err := handler.mealService.SaveFeedbackForMeal(mealID, user.ID, payload.Rating, payload.Comment, payload.Favorite)
	if err != nil {
		if errors.Is(err, services.ErrMealNotFound) {
			return apiError(c, fiber.StatusNotFound, "meal not found")
		}
		if errors.Is(err, services.ErrInvalidInput) {
			return apiError(c, fiber.StatusBadRequest, "rating out of range")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to save feedback")
	}
	return c.JSON(feedback)
}

func (handler *Handler) mealRequestContext(c *fiber.Ctx) (*models.User, uint, int, string) {
	user, ok := currentUser(c)
	if !ok || user == nil {
		return nil, 0, fiber.StatusUnauthorized, "unauthorized"
	}

	rawID := c.Params("id")
	mealID, err := strconv.ParseUint(rawID, 10, 32)
	if err != nil || mealID == 0 {
		return nil, 0, fiber.StatusBadRequest, "invalid meal id"
	}

	handler.ensureDependencies()
	return user, uint(mealID), 0, ""
}

func parseMealPayload(c *fiber.Ctx) (models.MealRecord, string) {
	payload := mealPayload{}
	if err := c.BodyParser(&payload); err != nil {
		return models.MealRecord{}, "invalid input"
	}

	uploadTime, err := time.Parse(time.RFC3339, payload.UploadTime)
	if err != nil {
		return models.MealRecord{}, "invalid upload time"
	}

	return models.MealRecord{
		Name:            payload.Name,
		FoodCategory:    payload.FoodCategory,
		ProcessingLevel: payload.ProcessingLevel,
		UploadTime:      uploadTime,
		Calories:        payload.Calories,
		ProteinGrams:    payload.ProteinGrams,
		CarbsGrams:      payload.CarbsGrams,
		FatGrams:        payload.FatGrams,
		FiberGrams:      payload.FiberGrams,
		SugarGrams:      payload.SugarGrams,
		SodiumMg:        payload.SodiumMg,
		FluidsMl:        payload.FluidsMl,
		AlcoholGrams:    payload.AlcoholGrams,
		CaffeineMg:      payload.CaffeineMg,
		Allergens:       payload.Allergens,
		Additives:       payload.Additives,
		HealthRiskNotes: payload.HealthRiskNotes,
	}, ""
}

func mealWriteError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, services.ErrMealNotFound):
		return apiError(c, fiber.StatusNotFound, "meal not found")
	case errors.Is(err, services.ErrInvalidMealName):
		return apiError(c, fiber.StatusBadRequest, "invalid meal name")
	case errors.Is(err, services.ErrInvalidNutrientValue):
		return apiError(c, fiber.StatusBadRequest, "nutrient values must be non-negative numbers")
	case errors.Is(err, services.ErrInvalidProcessingLevel):
		return apiError(c, fiber.StatusBadRequest, "unknown processing level")
	case errors.Is(err, services.ErrInvalidUploadTime):
		return apiError(c, fiber.StatusBadRequest, "invalid upload time")
	default:
		return apiError(c, fiber.StatusInternalServerError, "failed to save meal")
	}
}
