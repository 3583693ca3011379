package api

import (
	"github.com/terraincognita07/morsel/internal/db"
	"github.com/terraincognita07/morsel/internal/services"
)

func (handler *Handler) ensureDependencies() {
	if handler.repositories == nil {
		if handler.db == nil {
			return
		}
		handler.repositories = db.NewRepositories(handler.db)
	}

	if handler.authService == nil {
		handler.authService = services.NewAuthService(handler.repositories.Users)
	}
	if handler.mealService == nil {
		handler.mealService = services.NewMealService(handler.repositories.Meals, handler.repositories.Feedback)
	}
	if handler.statsService == nil {
		handler.statsService = services.NewStatsService(handler.repositories.Meals, handler.location)
	}
	if handler.exportService == nil {
		handler.exportService = services.NewExportService(handler.repositories.Meals, handler.location)
	}
	if handler.quotaService == nil {
		handler.quotaService = services.NewQuotaService(handler.repositories.Quotas, handler.analysisDailyLimit)
	}
}
