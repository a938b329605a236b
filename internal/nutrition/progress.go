package nutrition

import (
	"math"

	"github.com/saadjs/produce-cli/internal/model"
)

// GramsPerPiece is the flat conversion applied to every food logged in pieces.
const GramsPerPiece = 100.0

// NormalizeGrams converts an amount in unit to grams.
func NormalizeGrams(amount float64, unit model.Unit) float64 {
	if unit == model.UnitPieces {
		return amount * GramsPerPiece
	}
	return amount
}

// Grams is the canonical mass of an entry.
func Grams(e model.FoodEntry) float64 {
	return NormalizeGrams(e.Amount, e.Unit)
}

// Progress is intake against target as whole percentages in [0, 100].
type Progress struct {
	Fruits     int `json:"fruits"`
	Vegetables int `json:"vegetables"`
	Combined   int `json:"combined"`
}

// ProgressDetail carries the unrounded inputs behind a Progress.
type ProgressDetail struct {
	Progress
	FruitG           float64 `json:"fruit_g"`
	VegetableG       float64 `json:"vegetable_g"`
	FruitTargetG     float64 `json:"fruit_target_g"`
	VegetableTargetG float64 `json:"vegetable_target_g"`
}

// CalculateProgress sums entries by category against daily targets scaled by days.
// Entries must already be filtered to the window.
func CalculateProgress(entries []model.FoodEntry, daily model.TargetGuideline, days int) ProgressDetail {
	out := ProgressDetail{
		FruitTargetG:     daily.DailyFruitG * float64(days),
		VegetableTargetG: daily.DailyVegetableG * float64(days),
	}
	for _, e := range entries {
		switch e.Category {
		case model.CategoryFruit:
			out.FruitG += Grams(e)
		case model.CategoryVegetable:
			out.VegetableG += Grams(e)
		}
	}
	fruit := cappedPercent(out.FruitG, out.FruitTargetG)
	vegetable := cappedPercent(out.VegetableG, out.VegetableTargetG)
	out.Fruits = int(math.Round(fruit))
	out.Vegetables = int(math.Round(vegetable))
	out.Combined = int(math.Round((fruit + vegetable) / 2))
	return out
}

func cappedPercent(actual, target float64) float64 {
	if target <= 0 || actual <= 0 {
		return 0
	}
	return math.Min(actual/target*100, 100)
}
