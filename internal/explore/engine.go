package explore

import "swarm-utilization/internal/model"

// Engine runs render cycles against a dataset with a fixed palette.
type Engine struct {
	palette Palette
}

// New creates an engine coloring strategies with p.
func New(p Palette) *Engine { return &Engine{palette: p} }

// Palette returns the palette the engine colors with.
func (e *Engine) Palette() Palette { return e.palette }

// Run executes one render cycle: filter, reshape, colorize (single metric only) and guard.
// A nil dataset behaves like an empty one.
func (e *Engine) Run(ds *model.Dataset, sel model.Selection) *Result {
	var rows []model.ResultRow
	if ds != nil {
		rows = ds.Rows
	}

	filtered := Filter(rows, sel)
	res := &Result{
		Selection: sel,
		Filtered:  filtered,
		Kinds:     sel.Metrics.Kinds(),
		CanRender: CanRender(sel.Metrics, sel.Strategies.Count()),
	}
	if !res.CanRender {
		res.Series = []model.MetricSeriesEntry{}
		res.Message = EmptySelectionMessage
		return res
	}

	res.Series = Reshape(filtered, sel.Metrics)
	if res.SingleMetric() {
		res.Colors = Colorize(SeriesLabels(res.Series), e.palette)
	}
	return res
}
