package services

import (
	"strings"
	"time"

	"github.com/terraincognita07/morsel/internal/models"
)

const (
	dailyCalorieGoal     = 2000
	assumedMealsPerDay   = 3
	maxGoalPercentOutput = 100
)

type GeneralStats struct {
	EatingWindow          EatingWindow `json:"eatingWindow"`
	FastingHours          int          `json:"fastingHours"`
	MostCommonMealTime    string       `json:"mostCommonMealTime"`
	VegetableFruitPercent int          `json:"vegetableFruitPercent"`
	FullLoggingPercent    int          `json:"fullLoggingPercent"`
	MissedMeals           int          `json:"missedMeals"`
}

type HealthInsights struct {
	AllergenAlerts    []string `json:"allergenAlerts"`
	HealthRiskPercent int      `json:"healthRiskPercent"`
}

// NutritionStatistics is computed fresh on every request and never
// persisted. It serializes directly into the statistics response body.
type NutritionStatistics struct {
	AverageCaloriesDaily          int            `json:"averageCaloriesDaily"`
	AverageProteinDaily           int            `json:"averageProteinDaily"`
	AverageCarbsDaily             int            `json:"averageCarbsDaily"`
	AverageFatsDaily              int            `json:"averageFatsDaily"`
	AverageFiberDaily             int            `json:"averageFiberDaily"`
	AverageSugarDaily             int            `json:"averageSugarDaily"`
	AverageSodiumDaily            int            `json:"averageSodiumDaily"`
	AverageFluidsDaily            int            `json:"averageFluidsDaily"`
	AverageAlcoholDaily           int            `json:"averageAlcoholDaily"`
	AverageCaffeineDaily          int            `json:"averageCaffeineDaily"`
	CalorieGoalAchievementPercent int            `json:"calorieGoalAchievementPercent"`
	ProcessedFoodPercentage       int            `json:"processedFoodPercentage"`
	WeeklyTrends                  WeeklyTrends   `json:"weeklyTrends"`
	NutritionScore                int            `json:"nutritionScore"`
	Insights                      []string       `json:"insights"`
	Recommendations               []string       `json:"recommendations"`
	GeneralStats                  GeneralStats   `json:"generalStats"`
	HealthInsights                HealthInsights `json:"healthInsights"`
}

// DefaultNutritionStatistics is the fixed empty-state result: no meals in
// range is a valid outcome, not an error.
func DefaultNutritionStatistics() NutritionStatistics {
	return NutritionStatistics{
		WeeklyTrends:    emptyWeeklyTrends(),
		NutritionScore:  nutritionScoreBase,
		Insights:        []string{},
		Recommendations: []string{},
		GeneralStats: GeneralStats{
			EatingWindow:       defaultEatingWindow(),
			FastingHours:       12,
			MostCommonMealTime: defaultMostCommonTime,
		},
		HealthInsights: HealthInsights{
			AllergenAlerts: []string{},
		},
	}
}

// BuildNutritionStatistics is the aggregation core: a pure function of the
// meal slice, the resolved period window, and the location used to read
// local times of day.
func BuildNutritionStatistics(meals []models.MealRecord, startDate time.Time, totalDays int, location *time.Location) (NutritionStatistics, error) {
	if len(meals) == 0 {
		return DefaultNutritionStatistics(), nil
	}
	if totalDays < 1 {
		totalDays = 1
	}

	totals, err := SumMealNutrients(meals)
	if err != nil {
		return NutritionStatistics{}, err
	}
	averages := totals.DailyAverages(totalDays)

	mealCount := len(meals)
	processedCount := 0
	vegetableFruitCount := 0
	flaggedCount := 0
	allergenAlerts := make([]string, 0)
	seenAllergens := make(map[string]struct{})

	for _, meal := range meals {
		if meal.IsProcessed() {
			processedCount++
		}
		if looksLikeVegetableOrFruit(meal) {
			vegetableFruitCount++
		}
		if strings.TrimSpace(meal.HealthRiskNotes) != "" {
			flaggedCount++
		}
		for _, allergen := range meal.Allergens {
			cleaned := strings.TrimSpace(allergen)
			if cleaned == "" {
				continue
			}
			if _, seen := seenAllergens[cleaned]; seen {
				continue
			}
			seenAllergens[cleaned] = struct{}{}
			allergenAlerts = append(allergenAlerts, cleaned)
		}
	}

	rawGoalPercent := 100 * averages.Calories / dailyCalorieGoal
	goalPercentOutput := roundToInt(rawGoalPercent)
	if goalPercentOutput > maxGoalPercentOutput {
		goalPercentOutput = maxGoalPercentOutput
	}

	processedPercent := 100 * float64(processedCount) / float64(mealCount)

	window, windowStart, windowEnd := BuildEatingWindow(meals, location)

	fullLoggingPercent := roundPercent(float64(mealCount), float64(totalDays*assumedMealsPerDay))
	if fullLoggingPercent > 100 {
		fullLoggingPercent = 100
	}
	missedMeals := totalDays*assumedMealsPerDay - mealCount
	if missedMeals < 0 {
		missedMeals = 0
	}

	score := ComputeNutritionScore(rawGoalPercent, averages.Protein, averages.Fiber, processedPercent)

	metrics := InsightMetrics{
		NutritionScore:   score,
		AvgCaloriesDaily: averages.Calories,
		AvgProteinDaily:  averages.Protein,
		AvgFiberDaily:    averages.Fiber,
		ProcessedPercent: processedPercent,
		MealsPerDay:      float64(mealCount) / float64(totalDays),
	}

	return NutritionStatistics{
		AverageCaloriesDaily:          roundToInt(averages.Calories),
		AverageProteinDaily:           roundToInt(averages.Protein),
		AverageCarbsDaily:             roundToInt(averages.Carbs),
		AverageFatsDaily:              roundToInt(averages.Fats),
		AverageFiberDaily:             roundToInt(averages.Fiber),
		AverageSugarDaily:             roundToInt(averages.Sugar),
		AverageSodiumDaily:            roundToInt(averages.Sodium),
		AverageFluidsDaily:            roundToInt(averages.Fluids),
		AverageAlcoholDaily:           roundToInt(averages.Alcohol),
		AverageCaffeineDaily:          roundToInt(averages.Caffeine),
		CalorieGoalAchievementPercent: goalPercentOutput,
		ProcessedFoodPercentage:       roundToInt(processedPercent),
		WeeklyTrends:                  BuildWeeklyTrends(meals, startDate),
		NutritionScore:                score,
		Insights:                      BuildInsights(metrics),
		Recommendations:               BuildRecommendations(metrics),
		GeneralStats: GeneralStats{
			EatingWindow:          window,
			FastingHours:          EstimateFastingHours(windowStart, windowEnd),
			MostCommonMealTime:    MostCommonMealTime(meals, location),
			VegetableFruitPercent: roundPercent(float64(vegetableFruitCount), float64(mealCount)),
			FullLoggingPercent:    fullLoggingPercent,
			MissedMeals:           missedMeals,
		},
		HealthInsights: HealthInsights{
			AllergenAlerts:    allergenAlerts,
			HealthRiskPercent: roundPercent(float64(flaggedCount), float64(mealCount)),
		},
	}, nil
}

func looksLikeVegetableOrFruit(meal models.MealRecord) bool {
	category := strings.ToLower(meal.FoodCategory)
	if strings.Contains(category, "vegetable") || strings.Contains(category, "fruit") {
		return true
	}
	name := strings.ToLower(meal.Name)
	return strings.Contains(name, "salad") || strings.Contains(name, "fruit")
}
