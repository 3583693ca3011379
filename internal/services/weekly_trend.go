package services

import (
	"time"

	"github.com/terraincognita07/morsel/internal/models"
)

const weeklyTrendDays = 7

type WeeklyTrends struct {
	Calories []int `json:"calories"`
	Protein  []int `json:"protein"`
	Carbs    []int `json:"carbs"`
	Fats     []int `json:"fats"`
}

func emptyWeeklyTrends() WeeklyTrends {
	return WeeklyTrends{
		Calories: make([]int, weeklyTrendDays),
		Protein:  make([]int, weeklyTrendDays),
		Carbs:    make([]int, weeklyTrendDays),
		Fats:     make([]int, weeklyTrendDays),
	}
}

// BuildWeeklyTrends buckets meals by day offset from startDate. Only the
// first seven days feed the trend; later meals are dropped even when the
// analysis period is longer.
func BuildWeeklyTrends(meals []models.MealRecord, startDate time.Time) WeeklyTrends {
	calories := make([]float64, weeklyTrendDays)
	protein := make([]float64, weeklyTrendDays)
	carbs := make([]float64, weeklyTrendDays)
	fats := make([]float64, weeklyTrendDays)

	for _, meal := range meals {
		offset := meal.UploadTime.Sub(startDate)
		if offset < 0 {
			continue
		}
		dayIndex := int(offset / (24 * time.Hour))
		if dayIndex >= weeklyTrendDays {
			continue
		}
		calories[dayIndex] += meal.Calories
		protein[dayIndex] += meal.ProteinGrams
		carbs[dayIndex] += meal.CarbsGrams
		fats[dayIndex] += meal.FatGrams
	}

	trends := emptyWeeklyTrends()
	for day := 0; day < weeklyTrendDays; day++ {
		trends.Calories[day] = roundToInt(calories[day])
		trends.Protein[day] = roundToInt(protein[day])
		trends.Carbs[day] = roundToInt(carbs[day])
		trends.Fats[day] = roundToInt(fats[day])
	}
	return trends
}
