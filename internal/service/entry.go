package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/saadjs/produce-cli/internal/model"
	"github.com/saadjs/produce-cli/internal/nutrition"
)

type RecordEntryInput struct {
	Name     string
	Amount   float64
	Unit     model.Unit
	Category model.Category
	LoggedAt time.Time
	UID      string
}

type ListEntriesFilter struct {
	Date     string
	FromDate string
	ToDate   string
	Category string
	Limit    int
}

// RecordEntry appends an entry. LoggedAt defaults to now and UID to a new uuid.
func RecordEntry(db *sql.DB, in RecordEntryInput) (model.FoodEntry, error) {
	in.Name = strings.TrimSpace(in.Name)
	if in.Name == "" {
		return model.FoodEntry{}, fmt.Errorf("entry name is required")
	}
	if !in.Unit.Valid() {
		return model.FoodEntry{}, fmt.Errorf("invalid unit %q (use pieces or grams)", in.Unit)
	}
	if err := validateAmount(in.Amount, in.Unit); err != nil {
		return model.FoodEntry{}, err
	}
	if !in.Category.Valid() {
		return model.FoodEntry{}, fmt.Errorf("invalid category %q (use fruit or vegetable)", in.Category)
	}
	if in.LoggedAt.IsZero() {
		in.LoggedAt = time.Now()
	}
	if strings.TrimSpace(in.UID) == "" {
		in.UID = uuid.NewString()
	}

	res, err := db.Exec(`
INSERT INTO entries(uid, name, amount, unit, category, logged_at)
VALUES(?, ?, ?, ?, ?, ?)
`, in.UID, in.Name, in.Amount, string(in.Unit), string(in.Category), formatTimestamp(in.LoggedAt))
	if err != nil {
		return model.FoodEntry{}, fmt.Errorf("insert entry: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return model.FoodEntry{}, fmt.Errorf("resolve inserted entry id: %w", err)
	}
	return model.FoodEntry{
		ID:       id,
		UID:      in.UID,
		Name:     in.Name,
		Amount:   in.Amount,
		Unit:     in.Unit,
		Category: in.Category,
		LoggedAt: in.LoggedAt,
	}, nil
}

// AllEntries loads the full log in append order.
func AllEntries(db *sql.DB) ([]model.FoodEntry, error) {
	rows, err := db.Query(`
SELECT id, uid, name, amount, unit, category, logged_at
FROM entries
ORDER BY id ASC`)
	if err != nil {
		return nil, fmt.Errorf("load entries: %w", err)
	}
	defer rows.Close()
	return scanEntries(rows)
}

// ListEntries returns entries newest first, filtered by local calendar dates.
func ListEntries(db *sql.DB, f ListEntriesFilter) ([]model.FoodEntry, error) {
	if err := validateListEntriesFilter(f); err != nil {
		return nil, err
	}
	var window *nutrition.Window
	if strings.TrimSpace(f.Date) != "" {
		day, err := parseDate(f.Date)
		if err != nil {
			return nil, err
		}
		w := nutrition.DayWindow(day)
		window = &w
	}
	var from, to time.Time
	if strings.TrimSpace(f.FromDate) != "" {
		d, err := parseDate(f.FromDate)
		if err != nil {
			return nil, err
		}
		from = d
	}
	if strings.TrimSpace(f.ToDate) != "" {
		d, err := parseDate(f.ToDate)
		if err != nil {
			return nil, err
		}
		to = d.AddDate(0, 0, 1)
	}
	var category model.Category
	if strings.TrimSpace(f.Category) != "" {
		c, err := ParseCategory(f.Category)
		if err != nil {
			return nil, err
		}
		category = c
	}
	if f.Limit <= 0 {
		f.Limit = 50
	}

	entries, err := AllEntries(db)
	if err != nil {
		return nil, err
	}
	out := make([]model.FoodEntry, 0)
	for i := len(entries) - 1; i >= 0 && len(out) < f.Limit; i-- {
		e := entries[i]
		if window != nil && !window.Contains(e.LoggedAt) {
			continue
		}
		if !from.IsZero() && e.LoggedAt.Before(from) {
			continue
		}
		if !to.IsZero() && !e.LoggedAt.Before(to) {
			continue
		}
		if category != "" && e.Category != category {
			continue
		}
		out = append(out, e)
	}
	return out, nil
}

type queryer interface {
	Query(query string, args ...any) (*sql.Rows, error)
}

// EntryByUID returns nil when no entry carries uid. q may be a *sql.DB or a *sql.Tx.
func EntryByUID(q queryer, uid string) (*model.FoodEntry, error) {
	rows, err := q.Query(`
SELECT id, uid, name, amount, unit, category, logged_at
FROM entries
WHERE uid = ?`, strings.TrimSpace(uid))
	if err != nil {
		return nil, fmt.Errorf("lookup entry %s: %w", uid, err)
	}
	defer rows.Close()
	entries, err := scanEntries(rows)
	if err != nil {
		return nil, err
	}
	if len(entries) == 0 {
		return nil, nil
	}
	return &entries[0], nil
}

func scanEntries(rows *sql.Rows) ([]model.FoodEntry, error) {
	entries := make([]model.FoodEntry, 0)
	for rows.Next() {
		var e model.FoodEntry
		var unit, category, loggedAtRaw string
		if err := rows.Scan(&e.ID, &e.UID, &e.Name, &e.Amount, &unit, &category, &loggedAtRaw); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		loggedAt, err := parseTimestamp(loggedAtRaw)
		if err != nil {
			return nil, fmt.Errorf("parse logged_at for entry %d: %w", e.ID, err)
		}
		e.Unit = model.Unit(unit)
		e.Category = model.Category(category)
		e.LoggedAt = loggedAt
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entries: %w", err)
	}
	return entries, nil
}

func parseDate(value string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", strings.TrimSpace(value), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q, expected YYYY-MM-DD", value)
	}
	return t, nil
}

func validateListEntriesFilter(f ListEntriesFilter) error {
	if strings.TrimSpace(f.Date) != "" && (strings.TrimSpace(f.FromDate) != "" || strings.TrimSpace(f.ToDate) != "") {
		return fmt.Errorf("--date cannot be combined with --from or --to")
	}
	return nil
}
