package render

import (
	"errors"
	"fmt"
	"io"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

// ErrNothingToDraw is returned when a chart is allowed but has no bars.
var ErrNothingToDraw = errors.New("nothing to draw")

const DefaultTitle = "Adaptive Swarm Utilization"

type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch s {
	case "", "png":
		return FormatPNG, nil
	case "svg":
		return FormatSVG, nil
	}
	return "", fmt.Errorf("unsupported chart format %q", s)
}

func (f Format) ContentType() string {
	if f == FormatSVG {
		return chart.ContentTypeSVG
	}
	return chart.ContentTypePNG
}

type ChartOptions struct {
	Title  string
	Width  int
	Height int
}

func (o ChartOptions) withDefaults(n int) ChartOptions {
	if o.Title == "" {
		o.Title = DefaultTitle
	}
	if o.Height == 0 {
		o.Height = 480
	}
	if o.Width == 0 {
		o.Width = 160 + 60*n
		if o.Width < 640 {
			o.Width = 640
		}
	}
	return o
}

// BarChart builds the go-chart value for bars. The value range always starts
// at zero so a single bar (or equal bars) still has a drawable range.
func BarChart(bars []Bar, opts ChartOptions) chart.BarChart {
	opts = opts.withDefaults(len(bars))

	maxV := 0.0
	values := make([]chart.Value, 0, len(bars))
	for _, b := range bars {
		maxV = math.Max(maxV, math.Max(b.Mean, b.CIUpper))
		col := drawing.ColorFromHex(b.Color)
		values = append(values, chart.Value{
			Label: b.Label,
			Value: b.Mean,
			Style: chart.Style{
				FillColor:   col,
				StrokeColor: col,
				StrokeWidth: 1,
			},
		})
	}
	if maxV == 0 {
		maxV = 1
	}

	return chart.BarChart{
		Title:  opts.Title,
		Width:  opts.Width,
		Height: opts.Height,
		Background: chart.Style{
			Padding: chart.Box{Top: 40, Bottom: 20},
		},
		XAxis: chart.Style{TextRotationDegrees: 45},
		YAxis: chart.YAxis{
			Name:  "ticks per second",
			Range: &chart.ContinuousRange{Min: 0, Max: maxV * 1.05},
		},
		Bars: values,
	}
}

// WriteChart renders bars to w. An empty bar list is reported as
// ErrNothingToDraw rather than a rendering failure.
func WriteChart(w io.Writer, bars []Bar, format Format, opts ChartOptions) error {
	if len(bars) == 0 {
		return ErrNothingToDraw
	}
	provider := chart.PNG
	if format == FormatSVG {
		provider = chart.SVG
	}
	if err := BarChart(bars, opts).Render(provider, w); err != nil {
		return fmt.Errorf("render chart: %w", err)
	}
	return nil
}
