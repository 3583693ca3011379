package services

import (
	"time"

	"github.com/terraincognita07/morsel/internal/models"
)

type CalendarDayState struct {
	Date       time.Time `json:"-"`
	DateString string    `json:"date"`
	Day        int       `json:"day"`
	InMonth    bool      `json:"inMonth"`
	IsToday    bool      `json:"isToday"`
	HasData    bool      `json:"hasData"`
	MealCount  int       `json:"mealCount"`
	Calories   int       `json:"calories"`
	Protein    int       `json:"protein"`
	GoalMet    bool      `json:"goalMet"`
	OverGoal   bool      `json:"overGoal"`
}

// BuildCalendarDayStates lays the month onto a Sunday-aligned grid and
// attaches per-day nutrition aggregates. goalCalories controls the
// met/exceeded flags; zero disables them.
func BuildCalendarDayStates(monthStart time.Time, meals []models.MealRecord, goalCalories int, now time.Time, location *time.Location) []CalendarDayState {
	monthEnd := monthStart.AddDate(0, 1, -1)
	gridStart := monthStart.AddDate(0, 0, -int(monthStart.Weekday()))
	gridEnd := monthEnd.AddDate(0, 0, 6-int(monthEnd.Weekday()))

	type dayTotals struct {
		mealCount int
		calories  float64
		protein   float64
	}
	totalsByDate := make(map[string]dayTotals)
	for _, meal := range meals {
		key := DateAtLocation(meal.UploadTime, location).Format("2006-01-02")
		totals := totalsByDate[key]
		totals.mealCount++
		totals.calories += meal.Calories
		totals.protein += meal.ProteinGrams
		totalsByDate[key] = totals
	}

	todayKey := DateAtLocation(now, location).Format("2006-01-02")

	days := make([]CalendarDayState, 0, 42)
	for day := gridStart; !day.After(gridEnd); day = day.AddDate(0, 0, 1) {
		key := day.Format("2006-01-02")
		totals := totalsByDate[key]
		calories := roundToInt(totals.calories)

		goalMet := false
		overGoal := false
		if goalCalories > 0 && totals.mealCount > 0 {
			goalMet = calories >= goalCalories*80/100 && calories <= goalCalories*120/100
			overGoal = calories > goalCalories*120/100
		}

		days = append(days, CalendarDayState{
			Date:       day,
			DateString: key,
			Day:        day.Day(),
			InMonth:    day.Month() == monthStart.Month(),
			IsToday:    key == todayKey,
			HasData:    totals.mealCount > 0,
			MealCount:  totals.mealCount,
			Calories:   calories,
			Protein:    roundToInt(totals.protein),
			GoalMet:    goalMet,
			OverGoal:   overGoal,
		})
	}

	return days
}
