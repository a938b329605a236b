package nutrition

import (
	"strings"

	"github.com/saadjs/produce-cli/internal/model"
)

// ResolveAgeGroup maps an age in years to its guideline bin.
// Only the leading integer of the text is read ("12.5" is 12, "7 years" is 7).
// Unparseable text or ages below 2 resolve to model.DefaultAgeGroup.
func ResolveAgeGroup(age string) model.AgeGroup {
	years, ok := leadingInt(age)
	if !ok || years < 2 {
		return model.DefaultAgeGroup
	}
	switch {
	case years <= 5:
		return model.AgeGroup2To5
	case years <= 10:
		return model.AgeGroup6To10
	case years <= 14:
		return model.AgeGroup11To14
	case years <= 18:
		return model.AgeGroup15To18
	case years <= 64:
		return model.AgeGroup19To64
	default:
		return model.AgeGroup65Plus
	}
}

func leadingInt(s string) (int, bool) {
	s = strings.TrimSpace(s)
	neg := false
	if s != "" && (s[0] == '+' || s[0] == '-') {
		neg = s[0] == '-'
		s = s[1:]
	}
	n, digits := 0, 0
	for _, r := range s {
		if r < '0' || r > '9' {
			break
		}
		if n < 1_000_000 {
			n = n*10 + int(r-'0')
		}
		digits++
	}
	if digits == 0 {
		return 0, false
	}
	if neg {
		n = -n
	}
	return n, true
}
