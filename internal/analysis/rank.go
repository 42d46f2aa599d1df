package analysis

import (
	"sort"

	"swarm-utilization/internal/model"
)

type RankedStrategy struct {
	Rank int `json:"rank"`
	BarStat
}

// RankByMean keeps the bars of kind and sorts them descending by mean.
// Ties keep their first-appearance order.
func RankByMean(bars []BarStat, kind model.MetricKind) []RankedStrategy {
	out := make([]RankedStrategy, 0, len(bars))
	for _, b := range bars {
		if b.Kind == kind {
			out = append(out, RankedStrategy{BarStat: b})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Mean > out[j].Mean
	})
	for i := range out {
		out[i].Rank = i + 1
	}
	return out
}
