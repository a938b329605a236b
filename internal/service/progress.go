package service

import (
	"database/sql"
	"time"

	"github.com/saadjs/produce-cli/internal/nutrition"
	"github.com/saadjs/produce-cli/internal/reference"
)

var engine = nutrition.NewEngine(reference.Nutrients, reference.Targets, reference.DefaultTargets)

// LoadSnapshot reads the full entry log and the profile.
func LoadSnapshot(db *sql.DB) (nutrition.Snapshot, error) {
	entries, err := AllEntries(db)
	if err != nil {
		return nutrition.Snapshot{}, err
	}
	profile, err := CurrentProfile(db)
	if err != nil {
		return nutrition.Snapshot{}, err
	}
	return nutrition.Snapshot{Entries: entries, Profile: profile}, nil
}

func DailyProgress(db *sql.DB, now time.Time) (nutrition.Progress, error) {
	return progressIn(db, nutrition.DayWindow(now))
}

func WeeklyProgress(db *sql.DB, now time.Time) (nutrition.Progress, error) {
	return progressIn(db, nutrition.WeekWindow(now))
}

func DailyNutrients(db *sql.DB, now time.Time) (nutrition.NutrientTotals, error) {
	return nutrientsIn(db, nutrition.DayWindow(now))
}

func WeeklyNutrients(db *sql.DB, now time.Time) (nutrition.NutrientTotals, error) {
	return nutrientsIn(db, nutrition.WeekWindow(now))
}

func progressIn(db *sql.DB, w nutrition.Window) (nutrition.Progress, error) {
	snap, err := LoadSnapshot(db)
	if err != nil {
		return nutrition.Progress{}, err
	}
	return engine.Progress(snap, w).Progress, nil
}

func nutrientsIn(db *sql.DB, w nutrition.Window) (nutrition.NutrientTotals, error) {
	snap, err := LoadSnapshot(db)
	if err != nil {
		return nutrition.NutrientTotals{}, err
	}
	return engine.Nutrients(snap, w), nil
}
