package model

import "time"

type Unit string

const (
	UnitPieces Unit = "pieces"
	UnitGrams  Unit = "grams"
)

func (u Unit) Valid() bool {
	return u == UnitPieces || u == UnitGrams
}

type Category string

const (
	CategoryFruit     Category = "fruit"
	CategoryVegetable Category = "vegetable"
)

func (c Category) Valid() bool {
	return c == CategoryFruit || c == CategoryVegetable
}

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) Valid() bool {
	return g == GenderMale || g == GenderFemale
}

type AgeGroup string

const (
	AgeGroup2To5   AgeGroup = "2-5"
	AgeGroup6To10  AgeGroup = "6-10"
	AgeGroup11To14 AgeGroup = "11-14"
	AgeGroup15To18 AgeGroup = "15-18"
	AgeGroup19To64 AgeGroup = "19-64"
	AgeGroup65Plus AgeGroup = "65+"
)

// DefaultAgeGroup is used when an age is missing, unparseable or below 2.
const DefaultAgeGroup = AgeGroup19To64

// AgeGroups lists every bin in ascending order.
var AgeGroups = []AgeGroup{AgeGroup2To5, AgeGroup6To10, AgeGroup11To14, AgeGroup15To18, AgeGroup19To64, AgeGroup65Plus}

// FoodEntry is one logged consumption. Entries are append-only.
type FoodEntry struct {
	ID       int64
	UID      string
	Name     string
	Amount   float64
	Unit     Unit
	Category Category
	LoggedAt time.Time
}

type UserProfile struct {
	Gender    Gender
	Age       string
	UpdatedAt time.Time
}

// NutrientProfile holds nutrient content per 100g of a food.
type NutrientProfile struct {
	VitaminCMg  float64 `json:"vitamin_c_mg"`
	VitaminAMcg float64 `json:"vitamin_a_mcg"`
	FiberG      float64 `json:"fiber_g"`
	PotassiumMg float64 `json:"potassium_mg"`
}

// TargetGuideline is the daily gram intake target for one (gender, age group) cell.
type TargetGuideline struct {
	DailyFruitG     float64 `json:"daily_fruit_g"`
	DailyVegetableG float64 `json:"daily_vegetable_g"`
}
