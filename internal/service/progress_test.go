package service_test

import (
	"math"
	"testing"

	"github.com/saadjs/produce-cli/internal/model"
	"github.com/saadjs/produce-cli/internal/nutrition"
	"github.com/saadjs/produce-cli/internal/service"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestDailyProgressDefaultTargets(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	now := localAt(2026, 2, 10, 20)
	mustRecord(t, db, "Apple", 300, model.UnitGrams, model.CategoryFruit, localAt(2026, 2, 10, 9))
	mustRecord(t, db, "Carrot", 1, model.UnitPieces, model.CategoryVegetable, localAt(2026, 2, 9, 12))

	got, err := service.DailyProgress(db, now)
	if err != nil {
		t.Fatalf("daily progress: %v", err)
	}
	want := nutrition.Progress{Fruits: 100, Vegetables: 0, Combined: 50}
	if got != want {
		t.Fatalf("expected %+v, got %+v", want, got)
	}
}

func TestDailyProgressEmptyLog(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	got, err := service.DailyProgress(db, localAt(2026, 2, 10, 12))
	if err != nil {
		t.Fatalf("daily progress: %v", err)
	}
	if got != (nutrition.Progress{}) {
		t.Fatalf("expected zero progress, got %+v", got)
	}
}

func TestDailyNutrientsBananaPieces(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	mustRecord(t, db, "Banana", 2, model.UnitPieces, model.CategoryFruit, localAt(2026, 2, 10, 8))
	mustRecord(t, db, "Durian", 1, model.UnitPieces, model.CategoryFruit, localAt(2026, 2, 10, 9))

	got, err := service.DailyNutrients(db, localAt(2026, 2, 10, 21))
	if err != nil {
		t.Fatalf("daily nutrients: %v", err)
	}
	if !approx(got.VitaminCMg, 17.4) || !approx(got.PotassiumMg, 716) || !approx(got.FiberG, 5.2) || !approx(got.VitaminAMcg, 6) {
		t.Fatalf("unexpected banana totals: %+v", got)
	}
	if got.Unmatched != 1 {
		t.Fatalf("expected one unmatched entry, got %d", got.Unmatched)
	}

	progress, err := service.DailyProgress(db, localAt(2026, 2, 10, 21))
	if err != nil {
		t.Fatalf("daily progress: %v", err)
	}
	if progress.Fruits != 100 {
		t.Fatalf("expected unknown food to still count toward progress, got %+v", progress)
	}
}

func TestWeeklyProgressIncludesSunday(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	mustRecord(t, db, "Pear", 5, model.UnitPieces, model.CategoryFruit, localAt(2026, 2, 8, 10))
	mustRecord(t, db, "Kiwi", 2, model.UnitPieces, model.CategoryFruit, localAt(2026, 2, 15, 23))

	got, err := service.WeeklyProgress(db, localAt(2026, 2, 11, 12))
	if err != nil {
		t.Fatalf("weekly progress: %v", err)
	}
	// 200g against 225*7.
	if got != (nutrition.Progress{Fruits: 13, Vegetables: 0, Combined: 6}) {
		t.Fatalf("unexpected weekly progress: %+v", got)
	}

	prev, err := service.WeeklyProgress(db, localAt(2026, 2, 8, 12))
	if err != nil {
		t.Fatalf("weekly progress for sunday: %v", err)
	}
	// 500g against 225*7.
	if prev != (nutrition.Progress{Fruits: 32, Vegetables: 0, Combined: 16}) {
		t.Fatalf("expected sunday to belong to the week starting monday feb 2, got %+v", prev)
	}
}

func TestPreviousWeekEntriesDoNotCount(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	mustRecord(t, db, "Kale", 500, model.UnitGrams, model.CategoryVegetable, localAt(2026, 2, 13, 10))
	now := localAt(2026, 2, 18, 10)

	progress, err := service.WeeklyProgress(db, now)
	if err != nil {
		t.Fatalf("weekly progress: %v", err)
	}
	nutrients, err := service.WeeklyNutrients(db, now)
	if err != nil {
		t.Fatalf("weekly nutrients: %v", err)
	}
	if progress != (nutrition.Progress{}) || nutrients != (nutrition.NutrientTotals{}) {
		t.Fatalf("expected zeros for a new week, got %+v %+v", progress, nutrients)
	}
}

func TestProgressIsIdempotentAndFollowsProfile(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	now := localAt(2026, 2, 10, 18)
	mustRecord(t, db, "Spinach", 200, model.UnitGrams, model.CategoryVegetable, localAt(2026, 2, 10, 12))
	if err := service.SaveProfile(db, service.SaveProfileInput{Gender: model.GenderMale, Age: "16"}); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	first, err := service.DailyProgress(db, now)
	if err != nil {
		t.Fatalf("daily progress: %v", err)
	}
	second, err := service.DailyProgress(db, now)
	if err != nil {
		t.Fatalf("daily progress again: %v", err)
	}
	if first != second {
		t.Fatalf("expected identical results, got %+v and %+v", first, second)
	}
	// 200g against 325g.
	if first.Vegetables != 62 {
		t.Fatalf("expected male 15-18 vegetable target, got %+v", first)
	}

	if err := service.SaveProfile(db, service.SaveProfileInput{Gender: model.GenderFemale, Age: "16"}); err != nil {
		t.Fatalf("replace profile: %v", err)
	}
	after, err := service.DailyProgress(db, now)
	if err != nil {
		t.Fatalf("daily progress after profile change: %v", err)
	}
	// 200g against 275g.
	if after.Vegetables != 73 {
		t.Fatalf("expected female 15-18 vegetable target, got %+v", after)
	}
}
