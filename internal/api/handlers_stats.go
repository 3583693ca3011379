package api

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/morsel/internal/services"
)

func (handler *Handler) GetStatistics(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user == nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	period := services.StatsPeriod(strings.TrimSpace(c.Query("period", string(services.PeriodWeek))))

	handler.ensureDependencies()
	statistics, err := handler.statsService.BuildStatisticsForUser(user.ID, period, time.Now().In(handler.location))
	if err != nil {
		if errors.Is(err, services.ErrInvalidInput) {
			return apiError(c, fiber.StatusBadRequest, "unsupported period")
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to compute statistics")
	}

	return c.JSON(statistics)
}
