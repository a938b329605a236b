package service_test

import (
	"math"
	"strings"
	"testing"

	"github.com/saadjs/produce-cli/internal/model"
	"github.com/saadjs/produce-cli/internal/service"
)

func TestExportImportRoundTrip(t *testing.T) {
	t.Parallel()
	src := newTestDB(t)
	defer src.Close()
	dst := newTestDB(t)
	defer dst.Close()

	first := mustRecord(t, src, "Mango", 150, model.UnitGrams, model.CategoryFruit, localAt(2026, 2, 10, 7))
	mustRecord(t, src, "Broccoli", 1, model.UnitPieces, model.CategoryVegetable, localAt(2026, 2, 10, 19))
	if err := service.SaveProfile(src, service.SaveProfileInput{Gender: model.GenderFemale, Age: "12"}); err != nil {
		t.Fatalf("save profile: %v", err)
	}

	data, err := service.ExportDataSnapshot(src)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(data.Entries) != 2 || data.Profile == nil || data.Profile.Age != "12" {
		t.Fatalf("unexpected export payload: %+v", data)
	}

	report, err := service.ImportDataSnapshot(dst, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Inserted != 2 || report.Skipped != 0 || !report.ProfileReplaced {
		t.Fatalf("unexpected import report: %+v", report)
	}
	imported, err := service.EntryByUID(dst, first.UID)
	if err != nil || imported == nil {
		t.Fatalf("expected imported entry %s, got %+v %v", first.UID, imported, err)
	}
	if !imported.LoggedAt.Equal(first.LoggedAt) || imported.Amount != 150 || imported.Unit != model.UnitGrams {
		t.Fatalf("imported entry differs: %+v", imported)
	}

	srcProgress, err := service.DailyProgress(src, localAt(2026, 2, 10, 22))
	if err != nil {
		t.Fatalf("source progress: %v", err)
	}
	dstProgress, err := service.DailyProgress(dst, localAt(2026, 2, 10, 22))
	if err != nil {
		t.Fatalf("imported progress: %v", err)
	}
	if srcProgress != dstProgress {
		t.Fatalf("expected same progress after import, got %+v vs %+v", srcProgress, dstProgress)
	}

	again, err := service.ImportDataSnapshot(dst, data)
	if err != nil {
		t.Fatalf("re-import: %v", err)
	}
	if again.Inserted != 0 || again.Skipped != 2 {
		t.Fatalf("expected re-import to skip existing uids, got %+v", again)
	}
}

func TestImportFailModeRollsBack(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	existing := mustRecord(t, db, "Apple", 1, model.UnitPieces, model.CategoryFruit, localAt(2026, 2, 10, 7))
	data := &service.ExportData{Entries: []service.ExportEntry{
		{UID: "new-1", Name: "Pear", Amount: 1, Unit: "pieces", Category: "fruit", Timestamp: "2026-02-10T09:00:00Z"},
		{UID: existing.UID, Name: "Apple", Amount: 1, Unit: "pieces", Category: "fruit", Timestamp: "2026-02-10T07:00:00Z"},
	}}

	if _, err := service.ImportDataSnapshotWithOptions(db, data, service.ImportOptions{Mode: service.ImportModeFail}); err == nil {
		t.Fatalf("expected duplicate uid to fail the import")
	}
	entries, err := service.AllEntries(db)
	if err != nil {
		t.Fatalf("all entries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected failed import to leave the log unchanged, got %d entries", len(entries))
	}

	if _, err := service.ImportDataSnapshotWithOptions(db, data, service.ImportOptions{Mode: "merge"}); err == nil {
		t.Fatalf("expected unknown import mode to fail")
	}
}

func TestImportDryRunAndWarnings(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	data := &service.ExportData{
		Profile: &service.ExportProfile{Gender: "male", Age: "40"},
		Entries: []service.ExportEntry{
			{UID: "a", Name: "Kale", Amount: 80, Unit: "g", Category: "veg", Timestamp: "2026-02-10T09:00:00+01:00"},
			{UID: "b", Name: "Kale", Amount: 0, Unit: "grams", Category: "vegetable", Timestamp: "2026-02-10T09:00:00Z"},
			{UID: "c", Name: "Kale", Amount: 10, Unit: "grams", Category: "vegetable", Timestamp: "last tuesday"},
			{UID: "a", Name: "Kale", Amount: 80, Unit: "grams", Category: "vegetable", Timestamp: "2026-02-10T09:00:00Z"},
		},
	}

	dry, err := service.ImportDataSnapshotWithOptions(db, data, service.ImportOptions{DryRun: true})
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if dry.Inserted != 1 || dry.Skipped != 3 || len(dry.Warnings) != 2 || !dry.ProfileReplaced {
		t.Fatalf("unexpected dry run report: %+v", dry)
	}
	entries, err := service.AllEntries(db)
	if err != nil {
		t.Fatalf("all entries: %v", err)
	}
	profile, err := service.CurrentProfile(db)
	if err != nil {
		t.Fatalf("current profile: %v", err)
	}
	if len(entries) != 0 || profile != nil {
		t.Fatalf("expected dry run to write nothing, got %d entries and profile %+v", len(entries), profile)
	}

	report, err := service.ImportDataSnapshot(db, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Inserted != 1 {
		t.Fatalf("unexpected import report: %+v", report)
	}
	stored, err := service.EntryByUID(db, "a")
	if err != nil || stored == nil {
		t.Fatalf("expected entry a, got %+v %v", stored, err)
	}
	if stored.Unit != model.UnitGrams || stored.Category != model.CategoryVegetable {
		t.Fatalf("expected canonical unit and category, got %+v", stored)
	}
}

func TestEntriesToCSVRecords(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	e := mustRecord(t, db, "Cherry", 1.5, model.UnitPieces, model.CategoryFruit, localAt(2026, 2, 10, 7))
	rows := service.EntriesToCSVRecords([]model.FoodEntry{e})
	if len(rows) != 1 || len(rows[0]) != len(service.CSVHeader) {
		t.Fatalf("unexpected csv rows: %+v", rows)
	}
	if rows[0][0] != e.UID || rows[0][1] != "Cherry" || rows[0][2] != "1.5" || rows[0][3] != "pieces" || rows[0][4] != "fruit" {
		t.Fatalf("unexpected csv row: %+v", rows[0])
	}
}

func TestImportCanonicalizesFoodNames(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)
	defer db.Close()

	data := &service.ExportData{Entries: []service.ExportEntry{
		{UID: "listed", Name: "  banana ", Amount: 2, Unit: "pieces", Category: "fruit", Timestamp: "2026-02-10T09:00:00Z"},
		{UID: "unlisted", Name: "Durian", Amount: 1, Unit: "pieces", Category: "fruit", Timestamp: "2026-02-10T10:00:00Z"},
		{UID: "huge", Name: "Apple", Amount: 1e307, Unit: "pieces", Category: "fruit", Timestamp: "2026-02-10T11:00:00Z"},
		{UID: "inf", Name: "Apple", Amount: math.Inf(1), Unit: "grams", Category: "fruit", Timestamp: "2026-02-10T12:00:00Z"},
	}}

	report, err := service.ImportDataSnapshot(db, data)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if report.Inserted != 2 || report.Skipped != 2 || len(report.Warnings) != 3 {
		t.Fatalf("unexpected import report: %+v", report)
	}
	found := false
	for _, w := range report.Warnings {
		if strings.Contains(w, "Durian") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a warning for the unlisted food, got %+v", report.Warnings)
	}

	listed, err := service.EntryByUID(db, "listed")
	if err != nil || listed == nil || listed.Name != "Banana" {
		t.Fatalf("expected canonical Banana, got %+v %v", listed, err)
	}
	nutrients, err := service.DailyNutrients(db, listed.LoggedAt)
	if err != nil {
		t.Fatalf("daily nutrients: %v", err)
	}
	if nutrients.Unmatched != 1 || math.Abs(nutrients.PotassiumMg-716) > 1e-6 {
		t.Fatalf("expected imported banana to carry nutrients, got %+v", nutrients)
	}
	if _, err := service.ExportDataSnapshot(db); err != nil {
		t.Fatalf("export after import: %v", err)
	}
}
