package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handler.Register)
	auth.Post("/login", handler.Login)
	auth.Post("/logout", handler.AuthRequired, handler.Logout)

	meals := api.Group("/meals", handler.AuthRequired)
	meals.Get("", handler.ListMeals)
	meals.Post("", handler.CreateMeal)
	meals.Get("/:id", handler.GetMeal)
	meals.Put("/:id", handler.UpdateMeal)
	meals.Delete("/:id", handler.DeleteMeal)
	meals.Get("/:id/feedback", handler.GetMealFeedback)
	meals.Put("/:id/feedback", handler.SaveMealFeedback)

	stats := api.Group("/stats", handler.AuthRequired)
	stats.Get("", handler.GetStatistics)

	api.Get("/calendar", handler.AuthRequired, handler.GetCalendar)

	analysis := api.Group("/analysis", handler.AuthRequired)
	analysis.Get("/quota", handler.GetAnalysisQuota)
	analysis.Post("/check", handler.CheckAnalysisQuota)

	export := api.Group("/export", handler.AuthRequired)
	export.Get("/summary", handler.ExportSummary)
	export.Get("/csv", handler.ExportCSV)
	export.Get("/json", handler.ExportJSON)

	settings := api.Group("/settings", handler.AuthRequired)
	settings.Post("/calorie-goal", handler.UpdateCalorieGoal)
	settings.Delete("/account", handler.DeleteAccount)
}
