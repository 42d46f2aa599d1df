package render

import (
	"fmt"
	"io"

	"github.com/aybabtme/uniplot/histogram"
	"github.com/samber/lo"

	"swarm-utilization/internal/model"
)

// Histogram prints the value distribution of one metric kind across series.
func Histogram(w io.Writer, series []model.MetricSeriesEntry, kind model.MetricKind, bins, width int) error {
	values := lo.FilterMap(series, func(e model.MetricSeriesEntry, _ int) (float64, bool) {
		return e.Value, e.Kind == kind
	})
	if len(values) == 0 {
		return Notice(w, NoRowsMessage)
	}
	if bins <= 0 {
		bins = 10
	}
	if width <= 0 {
		width = 40
	}
	if _, err := fmt.Fprintln(w, titleStyle.Render(kind.Label())); err != nil {
		return err
	}
	return histogram.Fprint(w, histogram.Hist(bins, values), histogram.Linear(width))
}
