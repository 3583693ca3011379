package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/morsel/internal/services"
)

const calendarMonthLayout = "2006-01"

func (handler *Handler) GetCalendar(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user == nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	now := time.Now().In(handler.location)
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, handler.location)
	if rawMonth := strings.TrimSpace(c.Query("month")); rawMonth != "" {
		parsed, err := time.ParseInLocation(calendarMonthLayout, rawMonth, handler.location)
		if err != nil {
			return apiError(c, fiber.StatusBadRequest, "invalid month")
		}
		monthStart = parsed
	}

	// The grid overflows into adjacent months, so fetch one week of
	// padding on each side.
	fetchStart := monthStart.AddDate(0, 0, -7)
	fetchEnd := monthStart.AddDate(0, 1, 7)

	handler.ensureDependencies()
	meals, err := handler.repositories.Meals.ListByUserRange(user.ID, fetchStart, fetchEnd)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch meals")
	}

	days := services.BuildCalendarDayStates(monthStart, meals, user.DailyCalorieGoal, now, handler.location)
	return c.JSON(fiber.Map{
		"month": monthStart.Format(calendarMonthLayout),
		"days":  days,
	})
}
