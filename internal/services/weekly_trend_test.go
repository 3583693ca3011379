package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/morsel/internal/models"
)

func TestBuildWeeklyTrends_BucketsByDayOffset(t *testing.T) {
	t.Parallel()

	start := mustParseTime(t, "2026-03-01T00:00:00Z")
	meals := []models.MealRecord{
		{UploadTime: start.Add(9 * time.Hour), Calories: 400, ProteinGrams: 30, CarbsGrams: 40, FatGrams: 10},
		{UploadTime: start.Add(20 * time.Hour), Calories: 600, ProteinGrams: 40, CarbsGrams: 50, FatGrams: 20},
		{UploadTime: start.AddDate(0, 0, 3).Add(12 * time.Hour), Calories: 800, ProteinGrams: 50, CarbsGrams: 60, FatGrams: 30},
		{UploadTime: start.AddDate(0, 0, 6).Add(23 * time.Hour), Calories: 500, ProteinGrams: 20, CarbsGrams: 70, FatGrams: 15},
	}

	trends := BuildWeeklyTrends(meals, start)

	if trends.Calories[0] != 1000 {
		t.Fatalf("expected day 0 calories 1000, got %d", trends.Calories[0])
	}
	if trends.Calories[3] != 800 {
		t.Fatalf("expected day 3 calories 800, got %d", trends.Calories[3])
	}
	if trends.Calories[6] != 500 {
		t.Fatalf("expected day 6 calories 500, got %d", trends.Calories[6])
	}
	if trends.Protein[0] != 70 || trends.Carbs[0] != 90 || trends.Fats[0] != 30 {
		t.Fatalf("unexpected day 0 macros: protein=%d carbs=%d fats=%d",
			trends.Protein[0], trends.Carbs[0], trends.Fats[0])
	}
}

func TestBuildWeeklyTrends_SumMatchesInWindowMeals(t *testing.T) {
	t.Parallel()

	start := mustParseTime(t, "2026-03-01T00:00:00Z")
	meals := []models.MealRecord{
		{UploadTime: start.Add(2 * time.Hour), Calories: 300},
		{UploadTime: start.AddDate(0, 0, 2), Calories: 450},
		{UploadTime: start.AddDate(0, 0, 5).Add(18 * time.Hour), Calories: 250},
		// Outside the trend window even though a month period would include them.
		{UploadTime: start.AddDate(0, 0, 7), Calories: 9000},
		{UploadTime: start.AddDate(0, 0, 20), Calories: 9000},
		{UploadTime: start.Add(-1 * time.Hour), Calories: 9000},
	}

	trends := BuildWeeklyTrends(meals, start)

	total := 0
	for _, value := range trends.Calories {
		total += value
	}
	if total != 1000 {
		t.Fatalf("expected trend total 1000 from in-window meals, got %d", total)
	}
}

func TestBuildWeeklyTrends_EmptyInput(t *testing.T) {
	t.Parallel()

	trends := BuildWeeklyTrends(nil, mustParseTime(t, "2026-03-01T00:00:00Z"))
	for _, series := range [][]int{trends.Calories, trends.Protein, trends.Carbs, trends.Fats} {
		if len(series) != 7 {
			t.Fatalf("expected 7 buckets, got %d", len(series))
		}
		for day, value := range series {
			if value != 0 {
				t.Fatalf("expected zero bucket at day %d, got %d", day, value)
			}
		}
	}
}
