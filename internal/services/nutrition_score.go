package services

const (
	nutritionScoreBase = 50
	nutritionScoreMin  = 1
	nutritionScoreMax  = 100
)

// rangeAward grants points when a value falls inside an inclusive band.
// Bands are checked in order and only the first match counts.
type rangeAward struct {
	low    float64
	high   float64
	points int
}

// thresholdAward grants points for the first threshold the value reaches,
// scanning from the most demanding tier down.
type thresholdAward struct {
	atLeast float64
	points  int
}

var goalAchievementAwards = []rangeAward{
	{low: 90, high: 110, points: 20},
	{low: 80, high: 120, points: 15},
	{low: 70, high: 130, points: 10},
}

var proteinAwards = []thresholdAward{
	{atLeast: 120, points: 15},
	{atLeast: 80, points: 10},
	{atLeast: 50, points: 5},
}

var fiberAwards = []thresholdAward{
	{atLeast: 25, points: 10},
	{atLeast: 15, points: 7},
	{atLeast: 10, points: 5},
}

// processedFoodPenalties are keyed by upper bound: the first band whose
// limit the percentage does not exceed applies.
var processedFoodPenalties = []struct {
	atMost float64
	points int
}{
	{atMost: 10, points: 5},
	{atMost: 20, points: 0},
	{atMost: 40, points: -5},
}

const processedFoodWorstPenalty = -15

func awardForRange(value float64, bands []rangeAward) int {
	for _, band := range bands {
		if value >= band.low && value <= band.high {
			return band.points
		}
	}
	return 0
}

func awardForThreshold(value float64, tiers []thresholdAward) int {
	for _, tier := range tiers {
		if value >= tier.atLeast {
			return tier.points
		}
	}
	return 0
}

func awardForProcessedFood(percent float64) int {
	for _, band := range processedFoodPenalties {
		if percent <= band.atMost {
			return band.points
		}
	}
	return processedFoodWorstPenalty
}

// ComputeNutritionScore builds the 1-100 heuristic from the uncapped goal
// achievement percentage, daily protein and fiber averages, and the
// processed-food share.
func ComputeNutritionScore(goalPercent float64, avgProtein float64, avgFiber float64, processedPercent float64) int {
	score := nutritionScoreBase
	score += awardForRange(goalPercent, goalAchievementAwards)
	score += awardForThreshold(avgProtein, proteinAwards)
	score += awardForThreshold(avgFiber, fiberAwards)
	score += awardForProcessedFood(processedPercent)

	if score < nutritionScoreMin {
		return nutritionScoreMin
	}
	if score > nutritionScoreMax {
		return nutritionScoreMax
	}
	return score
}
