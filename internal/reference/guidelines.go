package reference

import "github.com/saadjs/produce-cli/internal/model"

// DefaultTargets applies when no profile has been saved.
var DefaultTargets = model.TargetGuideline{DailyFruitG: 225, DailyVegetableG: 325}

var targetTable = map[model.Gender]map[model.AgeGroup]model.TargetGuideline{
	model.GenderMale: {
		model.AgeGroup2To5:   {DailyFruitG: 175, DailyVegetableG: 175},
		model.AgeGroup6To10:  {DailyFruitG: 225, DailyVegetableG: 225},
		model.AgeGroup11To14: {DailyFruitG: 275, DailyVegetableG: 275},
		model.AgeGroup15To18: {DailyFruitG: 275, DailyVegetableG: 325},
		model.AgeGroup19To64: {DailyFruitG: 225, DailyVegetableG: 325},
		model.AgeGroup65Plus: {DailyFruitG: 225, DailyVegetableG: 275},
	},
	model.GenderFemale: {
		model.AgeGroup2To5:   {DailyFruitG: 175, DailyVegetableG: 175},
		model.AgeGroup6To10:  {DailyFruitG: 225, DailyVegetableG: 225},
		model.AgeGroup11To14: {DailyFruitG: 275, DailyVegetableG: 275},
		model.AgeGroup15To18: {DailyFruitG: 225, DailyVegetableG: 275},
		model.AgeGroup19To64: {DailyFruitG: 225, DailyVegetableG: 275},
		model.AgeGroup65Plus: {DailyFruitG: 225, DailyVegetableG: 275},
	},
}

// Targets returns the guideline cell for (gender, group).
func Targets(gender model.Gender, group model.AgeGroup) (model.TargetGuideline, bool) {
	byGroup, ok := targetTable[gender]
	if !ok {
		return model.TargetGuideline{}, false
	}
	t, ok := byGroup[group]
	return t, ok
}

// GuidelineText is the human-readable advice shown alongside gram targets.
type GuidelineText struct {
	AgeGroup        string `json:"age_group"`
	DailyFruits     string `json:"daily_fruits"`
	DailyVegetables string `json:"daily_vegetables"`
	DailyTotal      string `json:"daily_total"`
	WeeklyTotal     string `json:"weekly_total"`
	Notes           string `json:"notes"`
}

var (
	childrenNotes = "Children need smaller portions but should still eat a variety of colorful fruits and vegetables."
	growingNotes  = "Growing children benefit from increased portions and variety in their diet."
	teenNotes     = "Adolescents have higher nutritional needs to support rapid growth and development."
)

var guidelineTexts = map[model.Gender]map[model.AgeGroup]GuidelineText{
	model.GenderMale: {
		model.AgeGroup2To5:   {"2-5 years", "150-200g (2 portions)", "150-200g (2 portions)", "300-400g", "2.1-2.8kg", childrenNotes},
		model.AgeGroup6To10:  {"6-10 years", "200-250g (2-3 portions)", "200-250g (2-3 portions)", "400-500g", "2.8-3.5kg", growingNotes},
		model.AgeGroup11To14: {"11-14 years", "250-300g (3 portions)", "250-300g (3 portions)", "500-600g", "3.5-4.2kg", teenNotes},
		model.AgeGroup15To18: {"15-18 years", "250-300g (3 portions)", "300-350g (3-4 portions)", "550-650g", "3.9-4.6kg", "Teenage boys need substantial nutrition for growth spurts and physical activity."},
		model.AgeGroup19To64: {"19-64 years", "200-250g (2-3 portions)", "300-350g (3-4 portions)", "500-600g", "3.5-4.2kg", "Adults should aim for at least 400g daily, with emphasis on variety and color."},
		model.AgeGroup65Plus: {"65+ years", "200-250g (2-3 portions)", "250-300g (3 portions)", "450-550g", "3.2-3.9kg", "Older adults benefit from nutrient-dense fruits and vegetables to maintain health."},
	},
	model.GenderFemale: {
		model.AgeGroup2To5:   {"2-5 years", "150-200g (2 portions)", "150-200g (2 portions)", "300-400g", "2.1-2.8kg", childrenNotes},
		model.AgeGroup6To10:  {"6-10 years", "200-250g (2-3 portions)", "200-250g (2-3 portions)", "400-500g", "2.8-3.5kg", growingNotes},
		model.AgeGroup11To14: {"11-14 years", "250-300g (3 portions)", "250-300g (3 portions)", "500-600g", "3.5-4.2kg", teenNotes},
		model.AgeGroup15To18: {"15-18 years", "200-250g (2-3 portions)", "250-300g (3 portions)", "450-550g", "3.2-3.9kg", "Teenage girls need adequate nutrition for growth and development."},
		model.AgeGroup19To64: {"19-64 years", "200-250g (2-3 portions)", "250-300g (3 portions)", "450-550g", "3.2-3.9kg", "Adult women should aim for at least 400g daily, with emphasis on variety and color."},
		model.AgeGroup65Plus: {"65+ years", "200-250g (2-3 portions)", "250-300g (3 portions)", "450-550g", "3.2-3.9kg", "Older women benefit from nutrient-dense fruits and vegetables to maintain health."},
	},
}

func Guideline(gender model.Gender, group model.AgeGroup) (GuidelineText, bool) {
	byGroup, ok := guidelineTexts[gender]
	if !ok {
		return GuidelineText{}, false
	}
	g, ok := byGroup[group]
	return g, ok
}

// RecommendedDaily is the reference daily intake each nutrient total is compared against.
// Weekly recommendations are seven times these values.
var RecommendedDaily = model.NutrientProfile{
	VitaminCMg:  90,
	VitaminAMcg: 900,
	FiberG:      25,
	PotassiumMg: 3500,
}
