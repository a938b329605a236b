package service

import (
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/saadjs/produce-cli/internal/model"
)

type SaveProfileInput struct {
	Gender model.Gender
	Age    string
}

// SaveProfile replaces the stored profile. The age text is kept verbatim;
// unparseable ages are accepted and resolve to the adult bin when targets are computed.
func SaveProfile(db *sql.DB, in SaveProfileInput) error {
	if !in.Gender.Valid() {
		return fmt.Errorf("invalid gender %q (use male or female)", in.Gender)
	}
	_, err := db.Exec(`
INSERT INTO profile(id, gender, age, updated_at)
VALUES(1, ?, ?, ?)
ON CONFLICT(id) DO UPDATE SET
  gender=excluded.gender,
  age=excluded.age,
  updated_at=excluded.updated_at
`, string(in.Gender), strings.TrimSpace(in.Age), formatTimestamp(time.Now()))
	if err != nil {
		return fmt.Errorf("save profile: %w", err)
	}
	return nil
}

// CurrentProfile returns nil when no profile has been saved yet.
func CurrentProfile(db *sql.DB) (*model.UserProfile, error) {
	var p model.UserProfile
	var gender, updatedRaw string
	err := db.QueryRow(`SELECT gender, age, updated_at FROM profile WHERE id = 1`).Scan(&gender, &p.Age, &updatedRaw)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("load profile: %w", err)
	}
	p.Gender = model.Gender(gender)
	if updated, err := parseTimestamp(updatedRaw); err == nil {
		p.UpdatedAt = updated
	}
	return &p, nil
}
