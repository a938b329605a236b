package nutrition

import (
	"time"

	"github.com/saadjs/produce-cli/internal/model"
)

// Window is the half-open interval [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

func (w Window) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// Filter keeps the entries logged inside w, preserving their order.
func (w Window) Filter(entries []model.FoodEntry) []model.FoodEntry {
	out := make([]model.FoodEntry, 0, len(entries))
	for _, e := range entries {
		if w.Contains(e.LoggedAt) {
			out = append(out, e)
		}
	}
	return out
}

// Days is the number of calendar days the window spans.
func (w Window) Days() int {
	days := 0
	for d := w.Start; d.Before(w.End); d = d.AddDate(0, 0, 1) {
		days++
	}
	return days
}

// DayWindow covers the calendar day of now in now's location.
func DayWindow(now time.Time) Window {
	start := beginningOfDay(now)
	return Window{Start: start, End: start.AddDate(0, 0, 1)}
}

// WeekWindow covers the Monday-to-Sunday week containing now in now's location.
func WeekWindow(now time.Time) Window {
	start := beginningOfWeek(now)
	return Window{Start: start, End: start.AddDate(0, 0, 7)}
}

func beginningOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func beginningOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	offset := 1 - weekday
	if weekday == 0 {
		offset = -6
	}
	y, m, d := t.Date()
	return time.Date(y, m, d+offset, 0, 0, 0, 0, t.Location())
}
