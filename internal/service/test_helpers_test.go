package service_test

import (
	"database/sql"
	"path/filepath"
	"testing"
	"time"

	"github.com/saadjs/produce-cli/internal/db"
	"github.com/saadjs/produce-cli/internal/model"
	"github.com/saadjs/produce-cli/internal/service"
)

func newTestDB(t *testing.T) *sql.DB {
	t.Helper()
	path := filepath.Join(t.TempDir(), "produce.db")
	sqldb, err := db.Open(path)
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	if err := db.ApplyMigrations(sqldb); err != nil {
		t.Fatalf("apply migrations: %v", err)
	}
	return sqldb
}

func mustRecord(t *testing.T, sqldb *sql.DB, name string, amount float64, unit model.Unit, category model.Category, at time.Time) model.FoodEntry {
	t.Helper()
	e, err := service.RecordEntry(sqldb, service.RecordEntryInput{
		Name:     name,
		Amount:   amount,
		Unit:     unit,
		Category: category,
		LoggedAt: at,
	})
	if err != nil {
		t.Fatalf("record %s: %v", name, err)
	}
	return e
}

func localAt(year int, month time.Month, day, hour int) time.Time {
	return time.Date(year, month, day, hour, 0, 0, 0, time.Local)
}
