package nutrition

import "github.com/saadjs/produce-cli/internal/model"

// Lookup resolves a food name to its per-100g nutrients.
type Lookup func(name string) (model.NutrientProfile, bool)

// ZeroNutrients is the fallback that makes unknown foods contribute nothing.
var ZeroNutrients = model.NutrientProfile{}

// NutrientTotals are summed estimates for a window. Values are not rounded.
type NutrientTotals struct {
	VitaminCMg  float64 `json:"vitamin_c_mg"`
	VitaminAMcg float64 `json:"vitamin_a_mcg"`
	FiberG      float64 `json:"fiber_g"`
	PotassiumMg float64 `json:"potassium_mg"`
	Unmatched   int     `json:"unmatched_entries"`
}

// SumNutrients scales each entry's per-100g profile by grams/100 across both
// categories. Names the lookup misses use fallback and are counted in Unmatched.
func SumNutrients(entries []model.FoodEntry, lookup Lookup, fallback model.NutrientProfile) NutrientTotals {
	var out NutrientTotals
	for _, e := range entries {
		profile, ok := lookup(e.Name)
		if !ok {
			profile = fallback
			out.Unmatched++
		}
		factor := Grams(e) / 100
		out.VitaminCMg += profile.VitaminCMg * factor
		out.VitaminAMcg += profile.VitaminAMcg * factor
		out.FiberG += profile.FiberG * factor
		out.PotassiumMg += profile.PotassiumMg * factor
	}
	return out
}
