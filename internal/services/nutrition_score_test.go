package services

import "testing"

func TestComputeNutritionScore_Bands(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name             string
		goalPercent      float64
		avgProtein       float64
		avgFiber         float64
		processedPercent float64
		want             int
	}{
		{name: "neutral baseline", goalPercent: 0, avgProtein: 0, avgFiber: 0, processedPercent: 15, want: 50},
		{name: "ideal everything", goalPercent: 100, avgProtein: 130, avgFiber: 30, processedPercent: 5, want: 100},
		{name: "goal band edge low", goalPercent: 90, avgProtein: 0, avgFiber: 0, processedPercent: 15, want: 70},
		{name: "goal band edge high", goalPercent: 110, avgProtein: 0, avgFiber: 0, processedPercent: 15, want: 70},
		{name: "goal second band", goalPercent: 85, avgProtein: 0, avgFiber: 0, processedPercent: 15, want: 65},
		{name: "goal third band", goalPercent: 70, avgProtein: 0, avgFiber: 0, processedPercent: 15, want: 60},
		{name: "goal outside bands", goalPercent: 69.9, avgProtein: 0, avgFiber: 0, processedPercent: 15, want: 50},
		{name: "protein mid tier", goalPercent: 0, avgProtein: 80, avgFiber: 0, processedPercent: 15, want: 60},
		{name: "protein low tier", goalPercent: 0, avgProtein: 50, avgFiber: 0, processedPercent: 15, want: 55},
		{name: "fiber top tier", goalPercent: 0, avgProtein: 0, avgFiber: 25, processedPercent: 15, want: 60},
		{name: "fiber mid tier", goalPercent: 0, avgProtein: 0, avgFiber: 15, processedPercent: 15, want: 57},
		{name: "fiber low tier", goalPercent: 0, avgProtein: 0, avgFiber: 10, processedPercent: 15, want: 55},
		{name: "processed bonus", goalPercent: 0, avgProtein: 0, avgFiber: 0, processedPercent: 10, want: 55},
		{name: "processed mild penalty", goalPercent: 0, avgProtein: 0, avgFiber: 0, processedPercent: 40, want: 45},
		{name: "processed heavy penalty", goalPercent: 0, avgProtein: 0, avgFiber: 0, processedPercent: 41, want: 35},
	}

	for _, testCase := range cases {
		testCase := testCase
		t.Run(testCase.name, func(t *testing.T) {
			t.Parallel()
			got := ComputeNutritionScore(testCase.goalPercent, testCase.avgProtein, testCase.avgFiber, testCase.processedPercent)
			if got != testCase.want {
				t.Fatalf("expected score %d, got %d", testCase.want, got)
			}
		})
	}
}

func TestComputeNutritionScore_ProteinBoundaryIsMonotonic(t *testing.T) {
	t.Parallel()

	below := ComputeNutritionScore(100, 119, 0, 15)
	above := ComputeNutritionScore(100, 120, 0, 15)
	if above <= below {
		t.Fatalf("expected score to rise across 119->120 protein boundary, got %d -> %d", below, above)
	}
	if above-below != 5 {
		t.Fatalf("expected +10 -> +15 tier step of 5 points, got %d", above-below)
	}
}

func TestComputeNutritionScore_ClampedToRange(t *testing.T) {
	t.Parallel()

	worst := ComputeNutritionScore(0, 0, 0, 100)
	if worst < 1 {
		t.Fatalf("expected clamp to minimum 1, got %d", worst)
	}
	if worst != 35 {
		t.Fatalf("expected worst case 50-15=35, got %d", worst)
	}

	best := ComputeNutritionScore(100, 500, 500, 0)
	if best != 100 {
		t.Fatalf("expected clamp to maximum 100, got %d", best)
	}
}
