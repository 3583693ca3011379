package services

import (
	"fmt"
	"time"

	"github.com/terraincognita07/morsel/internal/models"
)

type StatsMealReader interface {
	ListByUserRange(userID uint, fromStart time.Time, toEnd time.Time) ([]models.MealRecord, error)
}

type StatsService struct {
	meals    StatsMealReader
	location *time.Location
}

func NewStatsService(meals StatsMealReader, location *time.Location) *StatsService {
	if location == nil {
		location = time.UTC
	}
	return &StatsService{meals: meals, location: location}
}

// BuildStatisticsForUser resolves the period window, fetches the user's
// meals, and runs the aggregation. A fetch failure propagates as an error
// so callers can tell it apart from a valid empty period.
func (service *StatsService) BuildStatisticsForUser(userID uint, period StatsPeriod, now time.Time) (NutritionStatistics, error) {
	from, to, totalDays, err := ResolvePeriodRange(period, now)
	if err != nil {
		return NutritionStatistics{}, err
	}

	meals, err := service.meals.ListByUserRange(userID, from, to)
	if err != nil {
		return NutritionStatistics{}, fmt.Errorf("fetch meals for stats: %w", err)
	}

	return BuildNutritionStatistics(meals, from, totalDays, service.location)
}
