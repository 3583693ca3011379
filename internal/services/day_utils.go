package services

import (
	"math"
	"time"
)

func DateAtLocation(value time.Time, location *time.Location) time.Time {
	if location == nil {
		location = time.UTC
	}
	localized := value.In(location)
	year, month, day := localized.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, location)
}

func roundToInt(value float64) int {
	return int(math.Round(value))
}

func roundPercent(numerator float64, denominator float64) int {
	if denominator == 0 {
		return 0
	}
	return roundToInt(100 * numerator / denominator)
}
