package services

import (
	"fmt"
	"math"

	"github.com/terraincognita07/morsel/internal/models"
)

type NutrientTotals struct {
	Calories float64
	Protein  float64
	Carbs    float64
	Fats     float64
	Fiber    float64
	Sugar    float64
	Sodium   float64
	Fluids   float64
	Alcohol  float64
	Caffeine float64
}

// guardNutrient maps an absent or negative value to zero. Non-finite values
// mean the record was corrupted upstream and abort the whole computation.
func guardNutrient(value float64) (float64, error) {
	if math.IsNaN(value) || math.IsInf(value, 0) {
		return 0, fmt.Errorf("%w: non-finite nutrient value", ErrInvalidInput)
	}
	if value < 0 {
		return 0, nil
	}
	return value, nil
}

func SumMealNutrients(meals []models.MealRecord) (NutrientTotals, error) {
	totals := NutrientTotals{}
	for _, meal := range meals {
		fields := []struct {
			value  float64
			target *float64
		}{
			{meal.Calories, &totals.Calories},
			{meal.ProteinGrams, &totals.Protein},
			{meal.CarbsGrams, &totals.Carbs},
			{meal.FatGrams, &totals.Fats},
			{meal.FiberGrams, &totals.Fiber},
			{meal.SugarGrams, &totals.Sugar},
			{meal.SodiumMg, &totals.Sodium},
			{meal.FluidsMl, &totals.Fluids},
			{meal.AlcoholGrams, &totals.Alcohol},
			{meal.CaffeineMg, &totals.Caffeine},
		}
		for _, field := range fields {
			guarded, err := guardNutrient(field.value)
			if err != nil {
				return NutrientTotals{}, err
			}
			*field.target += guarded
		}
	}
	return totals, nil
}

func (totals NutrientTotals) DailyAverages(totalDays int) NutrientTotals {
	if totalDays < 1 {
		totalDays = 1
	}
	divisor := float64(totalDays)
	return NutrientTotals{
		Calories: totals.Calories / divisor,
		Protein:  totals.Protein / divisor,
		Carbs:    totals.Carbs / divisor,
		Fats:     totals.Fats / divisor,
		Fiber:    totals.Fiber / divisor,
		Sugar:    totals.Sugar / divisor,
		Sodium:   totals.Sodium / divisor,
		Fluids:   totals.Fluids / divisor,
		Alcohol:  totals.Alcohol / divisor,
		Caffeine: totals.Caffeine / divisor,
	}
}
