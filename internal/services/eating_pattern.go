package services

import (
	"fmt"
	"math"
	"time"

	"github.com/terraincognita07/morsel/internal/models"
)

const (
	defaultEatingWindowStart = "08:00"
	defaultEatingWindowEnd   = "20:00"
	defaultMostCommonTime    = "12:00"
)

type EatingWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

func defaultEatingWindow() EatingWindow {
	return EatingWindow{Start: defaultEatingWindowStart, End: defaultEatingWindowEnd}
}

func fractionalHour(value time.Time, location *time.Location) float64 {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	return float64(localized.Hour()) + float64(localized.Minute())/60
}

func formatClock(hour float64) string {
	wholeHours := int(hour)
	minutes := int(math.Round((hour - float64(wholeHours)) * 60))
	if minutes == 60 {
		wholeHours++
		minutes = 0
	}
	wholeHours %= 24
	return fmt.Sprintf("%02d:%02d", wholeHours, minutes)
}

// BuildEatingWindow finds the earliest and latest local time of day across
// all meals in the period.
func BuildEatingWindow(meals []models.MealRecord, location *time.Location) (EatingWindow, float64, float64) {
	if len(meals) == 0 {
		return defaultEatingWindow(), 8, 20
	}

	earliest := fractionalHour(meals[0].UploadTime, location)
	latest := earliest
	for _, meal := range meals[1:] {
		hour := fractionalHour(meal.UploadTime, location)
		if hour < earliest {
			earliest = hour
		}
		if hour > latest {
			latest = hour
		}
	}

	window := EatingWindow{Start: formatClock(earliest), End: formatClock(latest)}
	return window, earliest, latest
}

// EstimateFastingHours derives the daily fasting span from the eating
// window. A window that wraps past midnight fasts for start-end instead.
func EstimateFastingHours(start float64, end float64) int {
	if end > start {
		return roundToInt(24 - (end - start))
	}
	return roundToInt(start - end)
}

// MostCommonMealTime picks the hour of day with the most meals. Ties go to
// the earlier hour.
func MostCommonMealTime(meals []models.MealRecord, location *time.Location) string {
	if len(meals) == 0 {
		return defaultMostCommonTime
	}

	var countsByHour [24]int
	for _, meal := range meals {
		if location == nil {
			countsByHour[meal.UploadTime.In(time.UTC).Hour()]++
			continue
		}
		countsByHour[meal.UploadTime.In(location).Hour()]++
	}

	bestHour := 0
	for hour := 1; hour < len(countsByHour); hour++ {
		if countsByHour[hour] > countsByHour[bestHour] {
			bestHour = hour
		}
	}
	return fmt.Sprintf("%02d:00", bestHour)
}
