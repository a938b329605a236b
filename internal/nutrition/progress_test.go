package nutrition_test

import (
	"math"
	"testing"

	"github.com/saadjs/produce-cli/internal/model"
	"github.com/saadjs/produce-cli/internal/nutrition"
	"github.com/saadjs/produce-cli/internal/reference"
)

func TestNormalizeGrams(t *testing.T) {
	t.Parallel()
	if got := nutrition.NormalizeGrams(2, model.UnitPieces); got != 200 {
		t.Fatalf("expected 2 pieces = 200g, got %.1f", got)
	}
	if got := nutrition.NormalizeGrams(0.5, model.UnitPieces); got != 50 {
		t.Fatalf("expected 0.5 pieces = 50g, got %.1f", got)
	}
	if got := nutrition.NormalizeGrams(137.5, model.UnitGrams); got != 137.5 {
		t.Fatalf("expected grams to pass through, got %.1f", got)
	}
}

func TestCalculateProgressDefaultTargetsScenario(t *testing.T) {
	t.Parallel()
	entries := []model.FoodEntry{
		{Name: "Apple", Amount: 300, Unit: model.UnitGrams, Category: model.CategoryFruit},
	}
	got := nutrition.CalculateProgress(entries, reference.DefaultTargets, 1)
	if got.Fruits != 100 || got.Vegetables != 0 || got.Combined != 50 {
		t.Fatalf("expected 100/0/50, got %+v", got.Progress)
	}
	if got.FruitG != 300 {
		t.Fatalf("expected 300 fruit grams, got %.1f", got.FruitG)
	}
}

func TestCalculateProgressEmpty(t *testing.T) {
	t.Parallel()
	got := nutrition.CalculateProgress(nil, reference.DefaultTargets, 7)
	if got.Progress != (nutrition.Progress{}) {
		t.Fatalf("expected zero progress, got %+v", got.Progress)
	}
	if got.FruitTargetG != 225*7 || got.VegetableTargetG != 325*7 {
		t.Fatalf("expected weekly targets scaled by 7, got %+v", got)
	}
}

func TestCalculateProgressCapsAtHundred(t *testing.T) {
	t.Parallel()
	targets := model.TargetGuideline{DailyFruitG: 200, DailyVegetableG: 400}
	prev := -1
	for _, grams := range []float64{0, 50, 100, 199, 200, 1000, 1e6} {
		got := nutrition.CalculateProgress([]model.FoodEntry{
			{Name: "Carrot", Amount: grams, Unit: model.UnitGrams, Category: model.CategoryVegetable},
		}, targets, 1)
		if got.Vegetables < 0 || got.Vegetables > 100 {
			t.Fatalf("vegetable progress %d out of range for %.0fg", got.Vegetables, grams)
		}
		if got.Vegetables < prev {
			t.Fatalf("progress decreased from %d to %d at %.0fg", prev, got.Vegetables, grams)
		}
		prev = got.Vegetables
	}
	if prev != 100 {
		t.Fatalf("expected progress to reach the cap, got %d", prev)
	}
}

func TestCalculateProgressCombinedUsesCappedValues(t *testing.T) {
	t.Parallel()
	targets := model.TargetGuideline{DailyFruitG: 100, DailyVegetableG: 100}
	got := nutrition.CalculateProgress([]model.FoodEntry{
		{Name: "Apple", Amount: 5, Unit: model.UnitPieces, Category: model.CategoryFruit},
		{Name: "Kale", Amount: 40, Unit: model.UnitGrams, Category: model.CategoryVegetable},
	}, targets, 1)
	if got.Fruits != 100 || got.Vegetables != 40 || got.Combined != 70 {
		t.Fatalf("expected 100/40/70, got %+v", got.Progress)
	}
}

func TestCalculateProgressWeeklyScale(t *testing.T) {
	t.Parallel()
	got := nutrition.CalculateProgress([]model.FoodEntry{
		{Name: "Mango", Amount: 787.5, Unit: model.UnitGrams, Category: model.CategoryFruit},
		{Name: "Spinach", Amount: 2275, Unit: model.UnitGrams, Category: model.CategoryVegetable},
	}, reference.DefaultTargets, 7)
	if got.Fruits != 50 || got.Vegetables != 100 || got.Combined != 75 {
		t.Fatalf("expected 50/100/75, got %+v", got.Progress)
	}
}

func TestCalculateProgressCombinedIsMean(t *testing.T) {
	t.Parallel()
	targets := model.TargetGuideline{DailyFruitG: 250, DailyVegetableG: 250}
	for fruit := 0.0; fruit <= 300; fruit += 25 {
		for veg := 0.0; veg <= 300; veg += 50 {
			got := nutrition.CalculateProgress([]model.FoodEntry{
				{Name: "Pear", Amount: fruit, Unit: model.UnitGrams, Category: model.CategoryFruit},
				{Name: "Onion", Amount: veg, Unit: model.UnitGrams, Category: model.CategoryVegetable},
			}, targets, 1)
			want := int(math.Round(float64(got.Fruits+got.Vegetables) / 2))
			if got.Combined != want {
				t.Fatalf("fruit=%.0f veg=%.0f: combined %d, want %d", fruit, veg, got.Combined, want)
			}
		}
	}
}
