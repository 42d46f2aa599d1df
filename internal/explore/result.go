package explore

import "swarm-utilization/internal/model"

// Result is everything one render cycle hands to the presentation layer.
type Result struct {
	Selection model.Selection

	// Filtered feeds the "Filtered data" table.
	Filtered []model.ResultRow

	// Kinds are the enabled metric kinds in display order.
	Kinds  []model.MetricKind
	Series []model.MetricSeriesEntry

	// Colors is only set on the single-metric path; multi-metric charts
	// color bars by metric kind instead.
	Colors ColorAssignment

	CanRender bool
	Message   string
}

// SingleMetric reports whether exactly one metric kind is displayed.
func (r *Result) SingleMetric() bool {
	return len(r.Kinds) == 1
}

// Empty reports whether there is nothing to draw even though rendering is allowed.
func (r *Result) Empty() bool {
	return len(r.Series) == 0
}
