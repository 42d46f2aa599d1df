package strategy

import (
	"github.com/StudioSol/set"

	"swarm-utilization/internal/model"
)

// AllOption is the multiselect entry that stands for every strategy.
const AllOption = "All"

// Names returns the distinct strategy labels of rows in order of first appearance.
func Names(rows []model.ResultRow) []string {
	seen := set.NewLinkedHashSetString()
	for _, r := range rows {
		seen.Add(r.StrategyName)
	}
	out := make([]string, 0, seen.Length())
	for name := range seen.Iter() {
		out = append(out, name)
	}
	return out
}

// Options is the strategy multiselect list: AllOption first, then every label.
func Options(rows []model.ResultRow) []string {
	return append([]string{AllOption}, Names(rows)...)
}
