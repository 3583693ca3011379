package services

import (
	"testing"
	"time"

	"github.com/terraincognita07/morsel/internal/models"
)

func TestBuildEatingWindow_FindsEarliestAndLatest(t *testing.T) {
	t.Parallel()

	meals := []models.MealRecord{
		{UploadTime: mustParseTime(t, "2026-03-01T09:00:00Z")},
		{UploadTime: mustParseTime(t, "2026-03-01T13:30:00Z")},
		{UploadTime: mustParseTime(t, "2026-03-02T21:00:00Z")},
	}

	window, start, end := BuildEatingWindow(meals, time.UTC)
	if window.Start != "09:00" || window.End != "21:00" {
		t.Fatalf("expected window 09:00-21:00, got %s-%s", window.Start, window.End)
	}
	if fasting := EstimateFastingHours(start, end); fasting != 12 {
		t.Fatalf("expected 12h fasting, got %d", fasting)
	}
}

func TestBuildEatingWindow_EmptyUsesDefaults(t *testing.T) {
	t.Parallel()

	window, start, end := BuildEatingWindow(nil, time.UTC)
	if window.Start != "08:00" || window.End != "20:00" {
		t.Fatalf("expected default window 08:00-20:00, got %s-%s", window.Start, window.End)
	}
	if fasting := EstimateFastingHours(start, end); fasting != 12 {
		t.Fatalf("expected default fasting 12h, got %d", fasting)
	}
}

func TestEstimateFastingHours_WrapPastMidnight(t *testing.T) {
	t.Parallel()

	// All meals between 22:00 and 02:00: window "wraps" so end < start.
	if fasting := EstimateFastingHours(22, 2); fasting != 20 {
		t.Fatalf("expected 20h fasting for 22:00-02:00 window, got %d", fasting)
	}
}

func TestFormatClock_RoundsMinutes(t *testing.T) {
	t.Parallel()

	cases := []struct {
		hour float64
		want string
	}{
		{9.0, "09:00"},
		{13.5, "13:30"},
		{7.999, "08:00"},
		{23.999, "00:00"},
		{0.25, "00:15"},
	}

	for _, testCase := range cases {
		if got := formatClock(testCase.hour); got != testCase.want {
			t.Fatalf("formatClock(%v): expected %s, got %s", testCase.hour, testCase.want, got)
		}
	}
}

func TestMostCommonMealTime_PicksBusiestHour(t *testing.T) {
	t.Parallel()

	meals := []models.MealRecord{
		{UploadTime: mustParseTime(t, "2026-03-01T08:15:00Z")},
		{UploadTime: mustParseTime(t, "2026-03-01T13:00:00Z")},
		{UploadTime: mustParseTime(t, "2026-03-02T13:45:00Z")},
		{UploadTime: mustParseTime(t, "2026-03-03T13:10:00Z")},
		{UploadTime: mustParseTime(t, "2026-03-03T19:00:00Z")},
	}

	if got := MostCommonMealTime(meals, time.UTC); got != "13:00" {
		t.Fatalf("expected 13:00, got %s", got)
	}
}

func TestMostCommonMealTime_TieGoesToEarlierHour(t *testing.T) {
	t.Parallel()

	meals := []models.MealRecord{
		{UploadTime: mustParseTime(t, "2026-03-01T19:00:00Z")},
		{UploadTime: mustParseTime(t, "2026-03-01T08:00:00Z")},
		{UploadTime: mustParseTime(t, "2026-03-02T19:30:00Z")},
		{UploadTime: mustParseTime(t, "2026-03-02T08:30:00Z")},
	}

	if got := MostCommonMealTime(meals, time.UTC); got != "08:00" {
		t.Fatalf("expected tie to resolve to 08:00, got %s", got)
	}
}

func TestMostCommonMealTime_EmptyDefault(t *testing.T) {
	t.Parallel()

	if got := MostCommonMealTime(nil, time.UTC); got != "12:00" {
		t.Fatalf("expected default 12:00, got %s", got)
	}
}
