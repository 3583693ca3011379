package api

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/terraincognita07/morsel/internal/models"
	"github.com/terraincognita07/morsel/internal/services"
)

func (handler *Handler) ExportSummary(c *fiber.Ctx) error {
	user, from, to, status, message := handler.exportUserAndRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	meals, err := handler.exportService.LoadMealsForRange(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch meals")
	}

	return c.JSON(handler.exportService.BuildSummary(meals))
}

func (handler *Handler) ExportJSON(c *fiber.Ctx) error {
	user, from, to, status, message := handler.exportUserAndRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	meals, err := handler.exportService.LoadMealsForRange(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch meals")
	}

	now := time.Now().In(handler.location)
	setExportAttachmentHeaders(c, fiber.MIMEApplicationJSON, buildExportFilename(now, "json"))
	return c.JSON(fiber.Map{
		"exportedAt": now.Format(time.RFC3339),
		"entries":    handler.exportService.BuildJSONEntries(meals),
	})
}

func (handler *Handler) ExportCSV(c *fiber.Ctx) error {
	user, from, to, status, message := handler.exportUserAndRange(c)
	if status != 0 {
		return apiError(c, status, message)
	}

	meals, err := handler.exportService.LoadMealsForRange(user.ID, from, to)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to fetch meals")
	}
	now := time.Now().In(handler.location)

	var output bytes.Buffer
	writer := csv.NewWriter(&output)
	if err := writer.Write(services.ExportCSVHeaders); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}
	for _, meal := range meals {
		if err := writer.Write(handler.exportService.BuildCSVRow(meal)); err != nil {
			return apiError(c, fiber.StatusInternalServerError, "failed to build export")
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return apiError(c, fiber.StatusInternalServerError, "failed to build export")
	}

	setExportAttachmentHeaders(c, "text/csv", buildExportFilename(now, "csv"))
	return c.Send(output.Bytes())
}

func (handler *Handler) exportUserAndRange(c *fiber.Ctx) (*models.User, *time.Time, *time.Time, int, string) {
	user, ok := currentUser(c)
	if !ok || user == nil {
		return nil, nil, nil, fiber.StatusUnauthorized, "unauthorized"
	}

	from, to, err := services.ParseExportRange(c.Query("from"), c.Query("to"), handler.location)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrExportFromDateInvalid):
			return nil, nil, nil, fiber.StatusBadRequest, "invalid from date"
		case errors.Is(err, services.ErrExportToDateInvalid):
			return nil, nil, nil, fiber.StatusBadRequest, "invalid to date"
		default:
			return nil, nil, nil, fiber.StatusBadRequest, "invalid range"
		}
	}

	handler.ensureDependencies()
	return user, from, to, 0, ""
}

func buildExportFilename(now time.Time, extension string) string {
	return fmt.Sprintf("morsel-export-%s.%s", now.Format("2006-01-02"), extension)
}

func setExportAttachmentHeaders(c *fiber.Ctx, contentType string, filename string) {
	c.Set(fiber.HeaderContentType, contentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%s", filename))
}
