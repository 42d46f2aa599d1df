package render

import (
	"swarm-utilization/internal/analysis"
	"swarm-utilization/internal/explore"
)

// Bar is one drawable bar: an aggregated value with its label and color.
type Bar struct {
	analysis.BarStat
	Label string `json:"label"`
	Color string `json:"color"`
}

// Bars decides label and color for every aggregated bar of res.
// With one metric kind the strategy colors apply; otherwise bars take the hue
// of their metric kind and the label names the kind.
func Bars(res *explore.Result, stats []analysis.BarStat, p explore.Palette) []Bar {
	out := make([]Bar, 0, len(stats))
	for _, s := range stats {
		b := Bar{BarStat: s, Label: s.StrategyName}
		if res.SingleMetric() {
			color, ok := res.Colors.Lookup(s.StrategyName)
			if !ok {
				color = p.Default
			}
			b.Color = color
		} else {
			b.Label = s.StrategyName + " (" + s.Kind.Label() + ")"
			b.Color = p.MetricColor(s.Kind)
		}
		out = append(out, b)
	}
	return out
}
