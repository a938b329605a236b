package nutrition

import "github.com/saadjs/produce-cli/internal/model"

// Snapshot is the store state a computation reads.
type Snapshot struct {
	Entries []model.FoodEntry
	Profile *model.UserProfile
}

// Engine binds the reference tables used by every aggregation. It holds no
// per-call state; targets are resolved from the snapshot on each call.
type Engine struct {
	lookup         Lookup
	table          TargetTable
	defaultTargets model.TargetGuideline
	fallback       model.NutrientProfile
}

func NewEngine(lookup Lookup, table TargetTable, defaultTargets model.TargetGuideline) *Engine {
	return &Engine{
		lookup:         lookup,
		table:          table,
		defaultTargets: defaultTargets,
		fallback:       ZeroNutrients,
	}
}

func (e *Engine) Targets(s Snapshot) model.TargetGuideline {
	return ResolveTargets(s.Profile, e.table, e.defaultTargets)
}

func (e *Engine) Progress(s Snapshot, w Window) ProgressDetail {
	return CalculateProgress(w.Filter(s.Entries), e.Targets(s), w.Days())
}

func (e *Engine) Nutrients(s Snapshot, w Window) NutrientTotals {
	return SumNutrients(w.Filter(s.Entries), e.lookup, e.fallback)
}
