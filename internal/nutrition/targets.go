package nutrition

import "github.com/saadjs/produce-cli/internal/model"

// TargetTable resolves a (gender, age group) cell.
type TargetTable func(gender model.Gender, group model.AgeGroup) (model.TargetGuideline, bool)

// ResolveTargets returns the daily targets for profile, or fallback when the
// profile is nil or its gender has no table entry.
func ResolveTargets(profile *model.UserProfile, table TargetTable, fallback model.TargetGuideline) model.TargetGuideline {
	if profile == nil {
		return fallback
	}
	t, ok := table(profile.Gender, ResolveAgeGroup(profile.Age))
	if !ok {
		return fallback
	}
	return t
}
