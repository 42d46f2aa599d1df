package explore

import "swarm-utilization/internal/model"

type metricColumn struct {
	kind    model.MetricKind
	enabled func(model.MetricFlags) bool
	value   func(model.ResultRow) float64
}

// metricColumns is the wide-to-long mapping, in display order.
var metricColumns = []metricColumn{
	{
		kind:    model.MetricAll,
		enabled: func(f model.MetricFlags) bool { return f.ShowAll },
		value:   func(r model.ResultRow) float64 { return r.TicksPerSecond },
	},
	{
		kind:    model.MetricFriendly,
		enabled: func(f model.MetricFlags) bool { return f.ShowFriendly },
		value:   func(r model.ResultRow) float64 { return r.FriendlyTicksPerTime },
	},
	{
		kind:    model.MetricEnemy,
		enabled: func(f model.MetricFlags) bool { return f.ShowEnemy },
		value:   func(r model.ResultRow) float64 { return r.EnemyTicksPerTime },
	},
}

// Reshape melts the three tick-rate columns of rows into one long series.
// Entries are grouped by kind (ALL, FRIENDLY, ENEMY) and keep row order within a kind.
func Reshape(rows []model.ResultRow, flags model.MetricFlags) []model.MetricSeriesEntry {
	out := make([]model.MetricSeriesEntry, 0, len(rows)*flags.Count())
	for _, col := range metricColumns {
		if !col.enabled(flags) {
			continue
		}
		for _, r := range rows {
			out = append(out, model.MetricSeriesEntry{
				StrategyName: r.StrategyName,
				Value:        col.value(r),
				Kind:         col.kind,
			})
		}
	}
	return out
}
