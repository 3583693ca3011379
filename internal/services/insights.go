package services

// InsightMetrics carries the derived values the insight and recommendation
// rules read. Averages stay floating point so band boundaries behave the
// same way they do inside the aggregator.
type InsightMetrics struct {
	NutritionScore   int
	AvgCaloriesDaily float64
	AvgProteinDaily  float64
	AvgFiberDaily    float64
	ProcessedPercent float64
	MealsPerDay      float64
}

type insightRule struct {
	matches func(InsightMetrics) bool
	message string
}

// Each group emits at most one message: the first rule that matches.
// Groups run top to bottom, which fixes the output order.
var insightRuleGroups = [][]insightRule{
	{
		{func(m InsightMetrics) bool { return m.NutritionScore >= 80 },
			"Excellent nutrition habits! Your diet is well balanced."},
		{func(m InsightMetrics) bool { return m.NutritionScore >= 60 },
			"You have a good nutrition foundation with room to improve."},
		{func(m InsightMetrics) bool { return true },
			"Your nutrition could benefit from some adjustments."},
	},
	{
		{func(m InsightMetrics) bool { return m.AvgProteinDaily >= 120 },
			"Strong protein intake is supporting your muscle health."},
		{func(m InsightMetrics) bool { return m.AvgProteinDaily < 80 },
			"Your protein intake is on the low side for most goals."},
	},
	{
		{func(m InsightMetrics) bool { return m.ProcessedPercent > 30 },
			"A large share of your meals are processed foods."},
		{func(m InsightMetrics) bool { return m.ProcessedPercent < 15 },
			"Great job keeping processed foods to a minimum."},
	},
	{
		{func(m InsightMetrics) bool { return m.MealsPerDay < 2 },
			"Try to log more meals so your statistics stay accurate."},
		{func(m InsightMetrics) bool { return m.MealsPerDay > 5 },
			"You eat frequently - keep an eye on portion sizes."},
	},
}

var recommendationRuleGroups = [][]insightRule{
	{
		{func(m InsightMetrics) bool { return m.AvgProteinDaily < 100 },
			"Add lean proteins such as chicken, fish, or legumes to your meals."},
	},
	{
		{func(m InsightMetrics) bool { return m.AvgFiberDaily < 20 },
			"Include more fiber from vegetables, fruits, and whole grains."},
	},
	{
		{func(m InsightMetrics) bool { return m.ProcessedPercent > 25 },
			"Replace processed foods with fresh, whole ingredients where you can."},
	},
	{
		{func(m InsightMetrics) bool { return m.AvgCaloriesDaily < 1500 },
			"Your calorie intake looks low - make sure you are eating enough."},
		{func(m InsightMetrics) bool { return m.AvgCaloriesDaily > 2500 },
			"Keep an eye on portion sizes to balance your calorie intake."},
	},
	{
		{func(m InsightMetrics) bool { return true },
			"Stay hydrated and keep your meal times consistent."},
	},
}

func evaluateRuleGroups(metrics InsightMetrics, groups [][]insightRule) []string {
	messages := make([]string, 0, len(groups))
	for _, group := range groups {
		for _, rule := range group {
			if rule.matches(metrics) {
				messages = append(messages, rule.message)
				break
			}
		}
	}
	return messages
}

func BuildInsights(metrics InsightMetrics) []string {
	return evaluateRuleGroups(metrics, insightRuleGroups)
}

func BuildRecommendations(metrics InsightMetrics) []string {
	return evaluateRuleGroups(metrics, recommendationRuleGroups)
}
