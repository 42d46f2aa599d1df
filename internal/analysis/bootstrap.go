package analysis

import (
	"sort"

	"github.com/samber/lo"
	"gonum.org/v1/gonum/stat"
)

// BootstrapInterval is a confidence interval estimated by resampling.
type BootstrapInterval struct {
	Lower  float64
	Upper  float64
	StdDev float64
	Mean   float64
}

// Mean is the default bootstrap measure.
func Mean(values []float64) float64 {
	return stat.Mean(values, nil)
}

// Bootstrap resamples values with replacement sampleSize times, applies measure
// to each sample and returns the two-sided interval at the given confidence.
func Bootstrap(values []float64, measure func([]float64) float64, sampleSize int, confidence float64) BootstrapInterval {
	if len(values) == 0 || sampleSize <= 0 {
		return BootstrapInterval{}
	}

	data := make([]float64, 0, sampleSize)
	sample := make([]float64, len(values))
	for i := 0; i < sampleSize; i++ {
		for j := range sample {
			sample[j] = lo.Sample(values)
		}
		data = append(data, measure(sample))
	}

	tail := 1 - confidence
	sort.Float64s(data)

	mean, stdDev := stat.MeanStdDev(data, nil)
	return BootstrapInterval{
		Lower:  stat.Quantile(tail/2, stat.LinInterp, data, nil),
		Upper:  stat.Quantile(1-tail/2, stat.LinInterp, data, nil),
		StdDev: stdDev,
		Mean:   mean,
	}
}
