package reference

import (
	"sort"
	"strings"

	"github.com/saadjs/produce-cli/internal/model"
)

// Nutrient values per 100g.
var nutrientTable = map[string]model.NutrientProfile{
	// fruits
	"Apple":      {VitaminCMg: 4.6, VitaminAMcg: 3, FiberG: 2.4, PotassiumMg: 107},
	"Banana":     {VitaminCMg: 8.7, VitaminAMcg: 3, FiberG: 2.6, PotassiumMg: 358},
	"Orange":     {VitaminCMg: 53.2, VitaminAMcg: 11, FiberG: 2.4, PotassiumMg: 181},
	"Strawberry": {VitaminCMg: 58.8, VitaminAMcg: 1, FiberG: 2.0, PotassiumMg: 153},
	"Blueberry":  {VitaminCMg: 9.7, VitaminAMcg: 3, FiberG: 2.4, PotassiumMg: 77},
	"Grape":      {VitaminCMg: 3.2, VitaminAMcg: 3, FiberG: 0.9, PotassiumMg: 191},
	"Mango":      {VitaminCMg: 36.4, VitaminAMcg: 54, FiberG: 1.6, PotassiumMg: 168},
	"Pineapple":  {VitaminCMg: 47.8, VitaminAMcg: 3, FiberG: 1.4, PotassiumMg: 109},
	"Watermelon": {VitaminCMg: 8.1, VitaminAMcg: 28, FiberG: 0.4, PotassiumMg: 112},
	"Peach":      {VitaminCMg: 6.6, VitaminAMcg: 16, FiberG: 1.5, PotassiumMg: 190},
	"Pear":       {VitaminCMg: 4.3, VitaminAMcg: 1, FiberG: 3.1, PotassiumMg: 116},
	"Cherry":     {VitaminCMg: 7.0, VitaminAMcg: 3, FiberG: 2.1, PotassiumMg: 222},
	"Kiwi":       {VitaminCMg: 92.7, VitaminAMcg: 4, FiberG: 3.0, PotassiumMg: 312},
	"Plum":       {VitaminCMg: 9.5, VitaminAMcg: 17, FiberG: 1.4, PotassiumMg: 157},
	"Raspberry":  {VitaminCMg: 26.2, VitaminAMcg: 2, FiberG: 6.5, PotassiumMg: 151},

	// vegetables
	"Carrot":      {VitaminCMg: 5.9, VitaminAMcg: 835, FiberG: 2.8, PotassiumMg: 320},
	"Broccoli":    {VitaminCMg: 89.2, VitaminAMcg: 31, FiberG: 2.6, PotassiumMg: 316},
	"Spinach":     {VitaminCMg: 28.1, VitaminAMcg: 469, FiberG: 2.2, PotassiumMg: 558},
	"Tomato":      {VitaminCMg: 13.7, VitaminAMcg: 42, FiberG: 1.2, PotassiumMg: 237},
	"Cucumber":    {VitaminCMg: 2.8, VitaminAMcg: 5, FiberG: 0.5, PotassiumMg: 147},
	"Bell Pepper": {VitaminCMg: 127.7, VitaminAMcg: 157, FiberG: 2.1, PotassiumMg: 211},
	"Lettuce":     {VitaminCMg: 9.2, VitaminAMcg: 370, FiberG: 1.3, PotassiumMg: 194},
	"Kale":        {VitaminCMg: 120.0, VitaminAMcg: 500, FiberG: 3.6, PotassiumMg: 491},
	"Zucchini":    {VitaminCMg: 17.9, VitaminAMcg: 10, FiberG: 1.0, PotassiumMg: 261},
	"Cauliflower": {VitaminCMg: 48.2, VitaminAMcg: 0, FiberG: 2.0, PotassiumMg: 303},
	"Celery":      {VitaminCMg: 3.1, VitaminAMcg: 22, FiberG: 1.6, PotassiumMg: 260},
	"Onion":       {VitaminCMg: 7.4, VitaminAMcg: 0, FiberG: 1.7, PotassiumMg: 146},
	"Mushroom":    {VitaminCMg: 2.1, VitaminAMcg: 0, FiberG: 1.0, PotassiumMg: 318},
	"Asparagus":   {VitaminCMg: 5.6, VitaminAMcg: 38, FiberG: 2.1, PotassiumMg: 202},
	"Green Beans": {VitaminCMg: 12.2, VitaminAMcg: 35, FiberG: 2.7, PotassiumMg: 211},
}

// Selectable foods per category, in display order.
var foodLists = map[model.Category][]string{
	model.CategoryFruit: {
		"Apple", "Banana", "Orange", "Strawberry", "Blueberry", "Grape", "Mango", "Pineapple",
		"Watermelon", "Peach", "Pear", "Cherry", "Kiwi", "Plum", "Raspberry",
	},
	model.CategoryVegetable: {
		"Carrot", "Broccoli", "Spinach", "Tomato", "Cucumber", "Bell Pepper", "Lettuce", "Kale",
		"Zucchini", "Cauliflower", "Celery", "Onion", "Mushroom", "Asparagus", "Green Beans",
	},
}

// Nutrients looks up the per-100g profile for an exact food name.
// The bool is false when the name is not in the table; callers decide the fallback.
func Nutrients(name string) (model.NutrientProfile, bool) {
	p, ok := nutrientTable[name]
	return p, ok
}

// Foods returns a copy of the selectable food names for a category.
func Foods(category model.Category) []string {
	src := foodLists[category]
	out := make([]string, len(src))
	copy(out, src)
	return out
}

// AllFoods returns every nutrient table key sorted by name.
func AllFoods() []string {
	out := make([]string, 0, len(nutrientTable))
	for name := range nutrientTable {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// CanonicalFoodName matches name case-insensitively against the category's list.
func CanonicalFoodName(category model.Category, name string) (string, bool) {
	want := strings.ToLower(strings.Join(strings.Fields(name), " "))
	if want == "" {
		return "", false
	}
	for _, candidate := range foodLists[category] {
		if strings.ToLower(candidate) == want {
			return candidate, true
		}
	}
	return "", false
}

// CategoryOf reports which selectable list contains name, if any.
func CategoryOf(name string) (model.Category, bool) {
	for _, c := range []model.Category{model.CategoryFruit, model.CategoryVegetable} {
		if _, ok := CanonicalFoodName(c, name); ok {
			return c, true
		}
	}
	return "", false
}
