package analysis

import (
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"swarm-utilization/internal/model"
)

// BarStat summarizes every series value that ends up in one bar:
// one strategy label for one metric kind.
type BarStat struct {
	StrategyName string           `json:"strat_name"`
	Kind         model.MetricKind `json:"type"`
	Count        int              `json:"count"`

	Mean float64 `json:"mean"`
	Min  float64 `json:"min"`
	Max  float64 `json:"max"`
	P05  float64 `json:"p05"`
	P95  float64 `json:"p95"`

	// CILower/CIUpper bound the bootstrap confidence interval of the mean.
	CILower float64 `json:"ci_lower"`
	CIUpper float64 `json:"ci_upper"`
}

// Summarizer aggregates series entries into bars.
type Summarizer struct {
	// Resamples is the number of bootstrap samples; 0 disables the interval.
	Resamples  int
	Confidence float64
}

func DefaultSummarizer() Summarizer {
	return Summarizer{Resamples: 1000, Confidence: 0.95}
}

type barKey struct {
	name string
	kind model.MetricKind
}

// Summarize groups series by strategy (first appearance) and then by kind
// (display order), one BarStat per non-empty group.
func (s Summarizer) Summarize(series []model.MetricSeriesEntry) []BarStat {
	values := make(map[barKey][]float64)
	var names []string
	for _, e := range series {
		if !lo.Contains(names, e.StrategyName) {
			names = append(names, e.StrategyName)
		}
		k := barKey{e.StrategyName, e.Kind}
		values[k] = append(values[k], e.Value)
	}

	out := make([]BarStat, 0, len(values))
	for _, name := range names {
		for _, kind := range model.MetricKinds {
			vals, ok := values[barKey{name, kind}]
			if !ok {
				continue
			}
			out = append(out, s.bar(name, kind, vals))
		}
	}
	return out
}

func (s Summarizer) bar(name string, kind model.MetricKind, vals []float64) BarStat {
	sorted := append([]float64(nil), vals...)
	sort.Float64s(sorted)

	b := BarStat{
		StrategyName: name,
		Kind:         kind,
		Count:        len(sorted),
		Mean:         stat.Mean(sorted, nil),
		Min:          floats.Min(sorted),
		Max:          floats.Max(sorted),
		P05:          stat.Quantile(0.05, stat.LinInterp, sorted, nil),
		P95:          stat.Quantile(0.95, stat.LinInterp, sorted, nil),
	}
	b.CILower, b.CIUpper = b.Mean, b.Mean
	if s.Resamples > 0 && len(sorted) > 1 {
		ci := Bootstrap(sorted, Mean, s.Resamples, s.Confidence)
		b.CILower, b.CIUpper = ci.Lower, ci.Upper
	}
	return b
}
