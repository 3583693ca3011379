package api

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/morsel/internal/services"
)

// CheckAnalysisQuota consumes one AI-analysis slot for the current user.
// The actual photo analysis happens in an external service; this endpoint
// only enforces the daily limit.
func (handler *Handler) CheckAnalysisQuota(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user == nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	quotaStatus, err := handler.quotaService.Record(user.ID, time.Now().In(handler.location))
	if err != nil {
		if errors.Is(err, services.ErrQuotaExhausted) {
			return c.Status(fiber.StatusTooManyRequests).JSON(quotaStatus)
		}
		return apiError(c, fiber.StatusInternalServerError, "failed to check quota")
	}

	return c.JSON(quotaStatus)
}

func (handler *Handler) GetAnalysisQuota(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok || user == nil {
		return apiError(c, fiber.StatusUnauthorized, "unauthorized")
	}

	handler.ensureDependencies()
	quotaStatus, err := handler.quotaService.Check(user.ID, time.Now().In(handler.location))
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to check quota")
	}
	return c.JSON(quotaStatus)
}
