package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/saadjs/produce-cli/internal/model"
	"github.com/saadjs/produce-cli/internal/nutrition"
)

func validatePositiveFloat(name string, value float64) error {
	if !(value > 0) || math.IsInf(value, 0) {
		return fmt.Errorf("%s must be a finite number > 0", name)
	}
	return nil
}

// validateAmount also rejects amounts whose gram weight overflows.
func validateAmount(amount float64, unit model.Unit) error {
	if err := validatePositiveFloat("amount", amount); err != nil {
		return err
	}
	if g := nutrition.NormalizeGrams(amount, unit); math.IsInf(g, 0) {
		return fmt.Errorf("amount %g %s is too large", amount, unit)
	}
	return nil
}

func normalizeName(name string) string {
	return strings.TrimSpace(strings.ToLower(name))
}

func ParseUnit(value string) (model.Unit, error) {
	switch normalizeName(value) {
	case "pieces", "piece", "pcs", "pc":
		return model.UnitPieces, nil
	case "grams", "gram", "g":
		return model.UnitGrams, nil
	default:
		return "", fmt.Errorf("invalid unit %q (use pieces or grams)", value)
	}
}

func ParseCategory(value string) (model.Category, error) {
	switch normalizeName(value) {
	case "fruit", "fruits":
		return model.CategoryFruit, nil
	case "vegetable", "vegetables", "veg":
		return model.CategoryVegetable, nil
	default:
		return "", fmt.Errorf("invalid category %q (use fruit or vegetable)", value)
	}
}

func ParseGender(value string) (model.Gender, error) {
	g := model.Gender(normalizeName(value))
	if !g.Valid() {
		return "", fmt.Errorf("invalid gender %q (use male or female)", value)
	}
	return g, nil
}

func formatTimestamp(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func parseTimestamp(value string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339Nano, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid timestamp %q (expected RFC3339): %w", value, err)
	}
	return t, nil
}
