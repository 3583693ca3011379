package services

import (
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/terraincognita07/morsel/internal/models"
)

const exportDateLayout = "2006-01-02"

var (
	ErrExportFromDateInvalid = errors.New("invalid export from date")
	ErrExportToDateInvalid   = errors.New("invalid export to date")
	ErrExportRangeInvalid    = errors.New("invalid export range")
)

var ExportCSVHeaders = []string{
	"Date",
	"Time",
	"Name",
	"Category",
	"Processing level",
	"Calories",
	"Protein (g)",
	"Carbs (g)",
	"Fat (g)",
	"Fiber (g)",
	"Sugar (g)",
	"Sodium (mg)",
	"Fluids (ml)",
	"Alcohol (g)",
	"Caffeine (mg)",
	"Allergens",
	"Health risk notes",
}

type ExportMealReader interface {
	ListByUserOptionalRange(userID uint, fromStart *time.Time, toEnd *time.Time) ([]models.MealRecord, error)
}

type ExportService struct {
	meals    ExportMealReader
	location *time.Location
}

type ExportSummary struct {
	TotalEntries int    `json:"totalEntries"`
	HasData      bool   `json:"hasData"`
	DateFrom     string `json:"dateFrom"`
	DateTo       string `json:"dateTo"`
}

type ExportJSONEntry struct {
	Date            string   `json:"date"`
	Time            string   `json:"time"`
	Name            string   `json:"name"`
	FoodCategory    string   `json:"foodCategory"`
	ProcessingLevel string   `json:"processingLevel"`
	Calories        float64  `json:"calories"`
	ProteinGrams    float64  `json:"proteinGrams"`
	CarbsGrams      float64  `json:"carbsGrams"`
	FatGrams        float64  `json:"fatGrams"`
	FiberGrams      float64  `json:"fiberGrams"`
	SugarGrams      float64  `json:"sugarGrams"`
	SodiumMg        float64  `json:"sodiumMg"`
	FluidsMl        float64  `json:"fluidsMl"`
	AlcoholGrams    float64  `json:"alcoholGrams"`
	CaffeineMg      float64  `json:"caffeineMg"`
	Allergens       []string `json:"allergens"`
	HealthRiskNotes string   `json:"healthRiskNotes"`
}

func NewExportService(meals ExportMealReader, location *time.Location) *ExportService {
	if location == nil {
		location = time.UTC
	}
	return &ExportService{meals: meals, location: location}
}

// ParseExportRange turns optional from/to query values into a half-open
// range. The to day is included by extending the bound to the next day.
func ParseExportRange(fromRaw string, toRaw string, location *time.Location) (*time.Time, *time.Time, error) {
	if location == nil {
		location = time.UTC
	}

	var from *time.Time
	var to *time.Time

	if cleaned := strings.TrimSpace(fromRaw); cleaned != "" {
		parsed, err := time.ParseInLocation(exportDateLayout, cleaned, location)
		if err != nil {
			return nil, nil, ErrExportFromDateInvalid
		}
		from = &parsed
	}
	if cleaned := strings.TrimSpace(toRaw); cleaned != "" {
		parsed, err := time.ParseInLocation(exportDateLayout, cleaned, location)
		if err != nil {
			return nil, nil, ErrExportToDateInvalid
		}
		exclusiveEnd := parsed.AddDate(0, 0, 1)
		to = &exclusiveEnd
	}

	if from != nil && to != nil && !from.Before(*to) {
		return nil, nil, ErrExportRangeInvalid
	}
	return from, to, nil
}

func (service *ExportService) LoadMealsForRange(userID uint, from *time.Time, to *time.Time) ([]models.MealRecord, error) {
	return service.meals.ListByUserOptionalRange(userID, from, to)
}

func (service *ExportService) BuildSummary(meals []models.MealRecord) ExportSummary {
	summary := ExportSummary{TotalEntries: len(meals), HasData: len(meals) > 0}
	if len(meals) == 0 {
		return summary
	}
	summary.DateFrom = DateAtLocation(meals[0].UploadTime, service.location).Format(exportDateLayout)
	summary.DateTo = DateAtLocation(meals[len(meals)-1].UploadTime, service.location).Format(exportDateLayout)
	return summary
}

func (service *ExportService) BuildJSONEntries(meals []models.MealRecord) []ExportJSONEntry {
	entries := make([]ExportJSONEntry, 0, len(meals))
	for _, meal := range meals {
		localized := meal.UploadTime.In(service.location)
		allergens := meal.Allergens
		if allergens == nil {
			allergens = []string{}
		}
		entries = append(entries, ExportJSONEntry{
			Date:            localized.Format(exportDateLayout),
			Time:            localized.Format("15:04"),
			Name:            meal.Name,
			FoodCategory:    meal.FoodCategory,
			ProcessingLevel: meal.ProcessingLevel,
			Calories:        meal.Calories,
			ProteinGrams:    meal.ProteinGrams,
			CarbsGrams:      meal.CarbsGrams,
			FatGrams:        meal.FatGrams,
			FiberGrams:      meal.FiberGrams,
			SugarGrams:      meal.SugarGrams,
			SodiumMg:        meal.SodiumMg,
			FluidsMl:        meal.FluidsMl,
			AlcoholGrams:    meal.AlcoholGrams,
			CaffeineMg:      meal.CaffeineMg,
			Allergens:       allergens,
			HealthRiskNotes: meal.HealthRiskNotes,
		})
	}
	return entries
}

func (service *ExportService) BuildCSVRow(meal models.MealRecord) []string {
	localized := meal.UploadTime.In(service.location)
	return []string{
		localized.Format(exportDateLayout),
		localized.Format("15:04"),
		meal.Name,
		meal.FoodCategory,
		meal.ProcessingLevel,
		formatNutrient(meal.Calories),
		formatNutrient(meal.ProteinGrams),
		formatNutrient(meal.CarbsGrams),
		formatNutrient(meal.FatGrams),
		formatNutrient(meal.FiberGrams),
		formatNutrient(meal.SugarGrams),
		formatNutrient(meal.SodiumMg),
		formatNutrient(meal.FluidsMl),
		formatNutrient(meal.AlcoholGrams),
		formatNutrient(meal.CaffeineMg),
		strings.Join(meal.Allergens, "; "),
		meal.HealthRiskNotes,
	}
}

func formatNutrient(value float64) string {
	return strconv.FormatFloat(value, 'f', -1, 64)
}
