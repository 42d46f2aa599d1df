package explore

import (
	"github.com/samber/lo"

	"swarm-utilization/internal/model"
	"swarm-utilization/internal/strategy"
)

// ColorEntry is the color chosen for one strategy label.
type ColorEntry struct {
	StrategyName string         `json:"strat_name"`
	Class        strategy.Class `json:"class"`
	Color        string         `json:"color"`
}

// ColorAssignment maps labels to colors, ordered by first appearance.
type ColorAssignment []ColorEntry

// Lookup returns the color assigned to label.
func (a ColorAssignment) Lookup(label string) (string, bool) {
	for _, e := range a {
		if e.StrategyName == label {
			return e.Color, true
		}
	}
	return "", false
}

// Map returns the assignment as a plain label -> color map.
func (a ColorAssignment) Map() map[string]string {
	out := make(map[string]string, len(a))
	for _, e := range a {
		out[e.StrategyName] = e.Color
	}
	return out
}

// Colorize assigns one color per distinct label, keeping first-appearance order.
func Colorize(labels []string, p Palette) ColorAssignment {
	uniq := lo.Uniq(labels)
	out := make(ColorAssignment, 0, len(uniq))
	for _, l := range uniq {
		c := strategy.Classify(l)
		out = append(out, ColorEntry{StrategyName: l, Class: c, Color: p.ClassColor(c)})
	}
	return out
}

// SeriesLabels returns the distinct strategy labels of series in first-appearance order.
func SeriesLabels(series []model.MetricSeriesEntry) []string {
	return lo.Uniq(lo.Map(series, func(e model.MetricSeriesEntry, _ int) string {
		return e.StrategyName
	}))
}
