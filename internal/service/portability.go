package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saadjs/produce-cli/internal/model"
	"github.com/saadjs/produce-cli/internal/reference"
)

type ExportEntry struct {
	UID       string  `json:"uid"`
	Name      string  `json:"name"`
	Amount    float64 `json:"amount"`
	Unit      string  `json:"unit"`
	Category  string  `json:"category"`
	Timestamp string  `json:"timestamp"`
}

type ExportProfile struct {
	Gender string `json:"gender"`
	Age    string `json:"age"`
}

type ExportData struct {
	Profile *ExportProfile `json:"profile"`
	Entries []ExportEntry  `json:"entries"`
}

type ImportMode string

const (
	// ImportModeSkip ignores entries whose uid already exists.
	ImportModeSkip ImportMode = "skip"
	// ImportModeFail aborts the whole import on the first existing uid.
	ImportModeFail ImportMode = "fail"
)

type ImportOptions struct {
	Mode   ImportMode
	DryRun bool
}

type ImportReport struct {
	Inserted        int      `json:"inserted"`
	Skipped         int      `json:"skipped"`
	ProfileReplaced bool     `json:"profile_replaced"`
	Warnings        []string `json:"warnings,omitempty"`
}

func ExportDataSnapshot(db *sql.DB) (*ExportData, error) {
	out := &ExportData{Entries: make([]ExportEntry, 0)}

	entries, err := AllEntries(db)
	if err != nil {
		return nil, fmt.Errorf("export entries: %w", err)
	}
	for _, e := range entries {
		out.Entries = append(out.Entries, ExportEntry{
			UID:       e.UID,
			Name:      e.Name,
			Amount:    e.Amount,
			Unit:      string(e.Unit),
			Category:  string(e.Category),
			Timestamp: formatTimestamp(e.LoggedAt),
		})
	}

	profile, err := CurrentProfile(db)
	if err != nil {
		return nil, fmt.Errorf("export profile: %w", err)
	}
	if profile != nil {
		out.Profile = &ExportProfile{Gender: string(profile.Gender), Age: profile.Age}
	}
	return out, nil
}

func ImportDataSnapshot(db *sql.DB, data *ExportData) (ImportReport, error) {
	return ImportDataSnapshotWithOptions(db, data, ImportOptions{Mode: ImportModeSkip})
}

// ImportDataSnapshotWithOptions appends entries in file order and replaces the
// profile when the payload carries one. Existing entries are never modified.
func ImportDataSnapshotWithOptions(db *sql.DB, data *ExportData, opts ImportOptions) (ImportReport, error) {
	report := ImportReport{}
	if data == nil {
		return report, fmt.Errorf("import payload is required")
	}
	mode, err := normalizeImportMode(opts.Mode)
	if err != nil {
		return report, err
	}

	tx, err := db.Begin()
	if err != nil {
		return report, fmt.Errorf("begin import tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	seen := map[string]bool{}
	for i, e := range data.Entries {
		in, listed, err := importEntryInput(e)
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("entry %d skipped: %v", i+1, err))
			report.Skipped++
			continue
		}
		exists := seen[in.UID]
		if !exists {
			existing, err := EntryByUID(tx, in.UID)
			if err != nil {
				return report, err
			}
			exists = existing != nil
		}
		if exists {
			if mode == ImportModeFail {
				return report, fmt.Errorf("entry %s already exists", in.UID)
			}
			report.Skipped++
			continue
		}
		seen[in.UID] = true
		if !listed {
			report.Warnings = append(report.Warnings, fmt.Sprintf("entry %d: %q is not a listed %s and has no nutrient data", i+1, in.Name, in.Category))
		}
		if opts.DryRun {
			report.Inserted++
			continue
		}
		if _, err := tx.Exec(`
INSERT INTO entries(uid, name, amount, unit, category, logged_at)
VALUES(?, ?, ?, ?, ?, ?)
`, in.UID, in.Name, in.Amount, string(in.Unit), string(in.Category), formatTimestamp(in.LoggedAt)); err != nil {
			return report, fmt.Errorf("import entry %s: %w", in.UID, err)
		}
		report.Inserted++
	}

	if data.Profile != nil {
		gender, err := ParseGender(data.Profile.Gender)
		if err != nil {
			report.Warnings = append(report.Warnings, fmt.Sprintf("profile skipped: %v", err))
		} else {
			report.ProfileReplaced = true
			if !opts.DryRun {
				if _, err := tx.Exec(`
INSERT INTO profile(id, gender, age, updated_at)
VALUES(1, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET gender=excluded.gender, age=excluded.age, updated_at=excluded.updated_at
`, string(gender), strings.TrimSpace(data.Profile.Age), formatTimestamp(time.Now())); err != nil {
					return report, fmt.Errorf("import profile: %w", err)
				}
			}
		}
	}

	if opts.DryRun {
		return report, nil
	}
	if err := tx.Commit(); err != nil {
		return report, fmt.Errorf("commit import tx: %w", err)
	}
	return report, nil
}

// importEntryInput validates one exported entry and canonicalizes its name
// against the category's food list. listed is false for names outside it.
func importEntryInput(e ExportEntry) (in RecordEntryInput, listed bool, err error) {
	in = RecordEntryInput{Name: strings.Join(strings.Fields(e.Name), " "), Amount: e.Amount, UID: strings.TrimSpace(e.UID)}
	if in.Name == "" {
		return in, false, fmt.Errorf("name is required")
	}
	unit, err := ParseUnit(e.Unit)
	if err != nil {
		return in, false, err
	}
	if err := validateAmount(in.Amount, unit); err != nil {
		return in, false, err
	}
	category, err := ParseCategory(e.Category)
	if err != nil {
		return in, false, err
	}
	loggedAt, err := parseTimestamp(e.Timestamp)
	if err != nil {
		return in, false, err
	}
	if canonical, ok := reference.CanonicalFoodName(category, in.Name); ok {
		in.Name = canonical
		listed = true
	}
	in.Unit = unit
	in.Category = category
	in.LoggedAt = loggedAt
	if in.UID == "" {
		in.UID = uuid.NewString()
	}
	return in, listed, nil
}

func normalizeImportMode(mode ImportMode) (ImportMode, error) {
	switch ImportMode(normalizeName(string(mode))) {
	case "", ImportModeSkip:
		return ImportModeSkip, nil
	case ImportModeFail:
		return ImportModeFail, nil
	default:
		return "", fmt.Errorf("invalid import mode %q (use skip or fail)", mode)
	}
}

// EntriesToCSVRecords renders entries as rows matching CSVHeader.
func EntriesToCSVRecords(entries []model.FoodEntry) [][]string {
	out := make([][]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, []string{
			e.UID,
			e.Name,
			fmt.Sprintf("%g", e.Amount),
			string(e.Unit),
			string(e.Category),
			formatTimestamp(e.LoggedAt),
		})
	}
	return out
}

var CSVHeader = []string{"uid", "name", "amount", "unit", "category", "timestamp"}
