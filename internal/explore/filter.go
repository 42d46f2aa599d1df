package explore

import (
	"github.com/samber/lo"

	"swarm-utilization/internal/model"
)

// Filter returns the rows matching every criterion of sel, in dataset order.
// An empty strategy subset matches nothing; the wildcard matches everything.
func Filter(rows []model.ResultRow, sel model.Selection) []model.ResultRow {
	return lo.Filter(rows, func(r model.ResultRow, _ int) bool {
		return Matches(r, sel)
	})
}

// Matches is the conjunctive row predicate used by Filter.
func Matches(r model.ResultRow, sel model.Selection) bool {
	return r.GroupSize == sel.GroupSize &&
		r.EnemyCount == sel.EnemyCount &&
		r.HasTalent == sel.HasTalent &&
		sel.Strategies.Match(r.StrategyName)
}
