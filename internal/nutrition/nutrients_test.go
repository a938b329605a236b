package nutrition_test

import (
	"math"
	"testing"

	"github.com/saadjs/produce-cli/internal/model"
	"github.com/saadjs/produce-cli/internal/nutrition"
	"github.com/saadjs/produce-cli/internal/reference"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestSumNutrientsBananaPieces(t *testing.T) {
	t.Parallel()
	got := nutrition.SumNutrients([]model.FoodEntry{
		{Name: "Banana", Amount: 2, Unit: model.UnitPieces, Category: model.CategoryFruit},
	}, reference.Nutrients, nutrition.ZeroNutrients)
	if !approx(got.VitaminCMg, 17.4) {
		t.Fatalf("expected vitamin C 17.4, got %.4f", got.VitaminCMg)
	}
	if !approx(got.PotassiumMg, 716) {
		t.Fatalf("expected potassium 716, got %.4f", got.PotassiumMg)
	}
	if !approx(got.FiberG, 5.2) || !approx(got.VitaminAMcg, 6) {
		t.Fatalf("unexpected fiber/vitamin A: %+v", got)
	}
	if got.Unmatched != 0 {
		t.Fatalf("expected no unmatched entries, got %d", got.Unmatched)
	}
}

func TestSumNutrientsLinearInMass(t *testing.T) {
	t.Parallel()
	one := nutrition.SumNutrients([]model.FoodEntry{
		{Name: "Kale", Amount: 80, Unit: model.UnitGrams, Category: model.CategoryVegetable},
	}, reference.Nutrients, nutrition.ZeroNutrients)
	two := nutrition.SumNutrients([]model.FoodEntry{
		{Name: "Kale", Amount: 160, Unit: model.UnitGrams, Category: model.CategoryVegetable},
	}, reference.Nutrients, nutrition.ZeroNutrients)
	if !approx(two.VitaminCMg, 2*one.VitaminCMg) || !approx(two.VitaminAMcg, 2*one.VitaminAMcg) ||
		!approx(two.FiberG, 2*one.FiberG) || !approx(two.PotassiumMg, 2*one.PotassiumMg) {
		t.Fatalf("expected doubling mass to double totals: %+v vs %+v", one, two)
	}
}

func TestSumNutrientsUnknownFoodUsesFallback(t *testing.T) {
	t.Parallel()
	entries := []model.FoodEntry{
		{Name: "Durian", Amount: 3, Unit: model.UnitPieces, Category: model.CategoryFruit},
		{Name: "Orange", Amount: 100, Unit: model.UnitGrams, Category: model.CategoryFruit},
	}
	got := nutrition.SumNutrients(entries, reference.Nutrients, nutrition.ZeroNutrients)
	if got.Unmatched != 1 {
		t.Fatalf("expected 1 unmatched entry, got %d", got.Unmatched)
	}
	if !approx(got.VitaminCMg, 53.2) {
		t.Fatalf("expected only orange to contribute vitamin C, got %.4f", got.VitaminCMg)
	}

	progress := nutrition.CalculateProgress(entries, reference.DefaultTargets, 1)
	if progress.FruitG != 400 {
		t.Fatalf("expected unknown food to still count toward progress, got %.1fg", progress.FruitG)
	}

	custom := nutrition.SumNutrients(entries[:1], reference.Nutrients, model.NutrientProfile{FiberG: 1})
	if !approx(custom.FiberG, 3) {
		t.Fatalf("expected explicit fallback to be scaled, got %.4f", custom.FiberG)
	}
}

func TestSumNutrientsEmpty(t *testing.T) {
	t.Parallel()
	got := nutrition.SumNutrients(nil, reference.Nutrients, nutrition.ZeroNutrients)
	if got != (nutrition.NutrientTotals{}) {
		t.Fatalf("expected zero totals, got %+v", got)
	}
}
