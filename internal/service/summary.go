package service

import (
	"database/sql"
	"math"
	"time"

	"github.com/saadjs/produce-cli/internal/model"
	"github.com/saadjs/produce-cli/internal/nutrition"
	"github.com/saadjs/produce-cli/internal/reference"
)

type PeriodKind string

const (
	PeriodDay  PeriodKind = "day"
	PeriodWeek PeriodKind = "week"
)

type NutrientStatus struct {
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Current     float64 `json:"current"`
	Recommended float64 `json:"recommended"`
	Percent     int     `json:"percent"`
}

type PeriodSummary struct {
	Period         PeriodKind               `json:"period"`
	Window         nutrition.Window         `json:"window"`
	HasProfile     bool                     `json:"has_profile"`
	Gender         string                   `json:"gender,omitempty"`
	AgeGroup       string                   `json:"age_group,omitempty"`
	DailyTargets   model.TargetGuideline    `json:"daily_targets"`
	Progress       nutrition.ProgressDetail `json:"progress"`
	Nutrients      nutrition.NutrientTotals `json:"nutrients"`
	NutrientStatus []NutrientStatus         `json:"nutrient_status"`
	Entries        int                      `json:"entries"`
}

// TodaySummary reports the calendar day containing now.
func TodaySummary(db *sql.DB, now time.Time) (*PeriodSummary, error) {
	return summarize(db, PeriodDay, nutrition.DayWindow(now))
}

// WeekSummary reports the Monday-based week containing now.
func WeekSummary(db *sql.DB, now time.Time) (*PeriodSummary, error) {
	return summarize(db, PeriodWeek, nutrition.WeekWindow(now))
}

func summarize(db *sql.DB, period PeriodKind, w nutrition.Window) (*PeriodSummary, error) {
	snap, err := LoadSnapshot(db)
	if err != nil {
		return nil, err
	}
	out := &PeriodSummary{
		Period:       period,
		Window:       w,
		DailyTargets: engine.Targets(snap),
		Progress:     engine.Progress(snap, w),
		Nutrients:    engine.Nutrients(snap, w),
		Entries:      len(w.Filter(snap.Entries)),
	}
	if snap.Profile != nil {
		out.HasProfile = true
		out.Gender = string(snap.Profile.Gender)
		out.AgeGroup = string(nutrition.ResolveAgeGroup(snap.Profile.Age))
	}
	out.NutrientStatus = nutrientStatus(out.Nutrients, float64(w.Days()))
	return out, nil
}

func nutrientStatus(t nutrition.NutrientTotals, days float64) []NutrientStatus {
	rec := reference.RecommendedDaily
	items := []NutrientStatus{
		{Name: "Vitamin C", Unit: "mg", Current: t.VitaminCMg, Recommended: rec.VitaminCMg * days},
		{Name: "Vitamin A", Unit: "mcg", Current: t.VitaminAMcg, Recommended: rec.VitaminAMcg * days},
		{Name: "Fiber", Unit: "g", Current: t.FiberG, Recommended: rec.FiberG * days},
		{Name: "Potassium", Unit: "mg", Current: t.PotassiumMg, Recommended: rec.PotassiumMg * days},
	}
	for i := range items {
		if items[i].Recommended > 0 {
			items[i].Percent = int(math.Round(items[i].Current / items[i].Recommended * 100))
		}
	}
	return items
}
