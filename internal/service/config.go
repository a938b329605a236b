package service

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/saadjs/produce-cli/internal/model"
)

const (
	ConfigDefaultUnit     = "default_unit"
	ConfigDefaultCategory = "default_category"
)

func SetConfig(db *sql.DB, key, value string) error {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return fmt.Errorf("config key is required")
	}
	value = strings.TrimSpace(value)
	switch key {
	case ConfigDefaultUnit:
		u, err := ParseUnit(value)
		if err != nil {
			return err
		}
		value = string(u)
	case ConfigDefaultCategory:
		c, err := ParseCategory(value)
		if err != nil {
			return err
		}
		value = string(c)
	}
	_, err := db.Exec(`
INSERT INTO app_config(key, value, updated_at)
VALUES(?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET value=excluded.value, updated_at=excluded.updated_at
`, key, value)
	if err != nil {
		return fmt.Errorf("set config %q: %w", key, err)
	}
	return nil
}

func GetConfig(db *sql.DB, key string) (string, bool, error) {
	key = strings.TrimSpace(strings.ToLower(key))
	if key == "" {
		return "", false, fmt.Errorf("config key is required")
	}
	var value string
	err := db.QueryRow(`SELECT value FROM app_config WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("get config %q: %w", key, err)
	}
	return value, true, nil
}

func ListConfig(db *sql.DB) (map[string]string, error) {
	rows, err := db.Query(`SELECT key, value FROM app_config ORDER BY key ASC`)
	if err != nil {
		return nil, fmt.Errorf("list config: %w", err)
	}
	defer rows.Close()
	out := map[string]string{}
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, fmt.Errorf("scan config: %w", err)
		}
		out[key] = value
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate config: %w", err)
	}
	return out, nil
}

// DefaultUnit falls back to pieces when the stored value is missing or invalid.
func DefaultUnit(db *sql.DB) (model.Unit, error) {
	v, ok, err := GetConfig(db, ConfigDefaultUnit)
	if err != nil {
		return "", err
	}
	if !ok {
		return model.UnitPieces, nil
	}
	u, err := ParseUnit(v)
	if err != nil {
		return model.UnitPieces, nil
	}
	return u, nil
}

// DefaultCategory falls back to fruit when the stored value is missing or invalid.
func DefaultCategory(db *sql.DB) (model.Category, error) {
	v, ok, err := GetConfig(db, ConfigDefaultCategory)
	if err != nil {
		return "", err
	}
	if !ok {
		return model.CategoryFruit, nil
	}
	c, err := ParseCategory(v)
	if err != nil {
		return model.CategoryFruit, nil
	}
	return c, nil
}
