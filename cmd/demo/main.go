package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"swarm-utilization/internal/analysis"
	"swarm-utilization/internal/data"
	"swarm-utilization/internal/explore"
	"swarm-utilization/internal/logger"
	"swarm-utilization/internal/model"
	"swarm-utilization/internal/render"
)

var dataPath string

// Demo:
// - Build the two-row example table (or load a CSV with --data)
// - Run three render cycles: one metric, all metrics, nothing selected
// - Print what each cycle hands to the presentation layer
func main() {
	demoCmd := &cobra.Command{
		Use:          "demo",
		Short:        "Walk through filter, reshape, colorize and guard on a tiny table",
		SilenceUsage: true,
		RunE:         runDemo,
	}
	demoCmd.Flags().StringVar(&dataPath, "data", "", "Optional results CSV instead of the built-in rows")

	if err := demoCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func demoDataset() *model.Dataset {
	return &model.Dataset{
		Source: "built-in",
		Rows: []model.ResultRow{
			{StrategyName: "EnemyFirst_A", GroupSize: 1, EnemyCount: 1, TicksPerSecond: 10, FriendlyTicksPerTime: 4, EnemyTicksPerTime: 6},
			{StrategyName: "FriendlyHeal", GroupSize: 1, EnemyCount: 1, TicksPerSecond: 8, FriendlyTicksPerTime: 7, EnemyTicksPerTime: 1},
		},
	}
}

func runDemo(cmd *cobra.Command, args []string) error {
	log := logger.Must(logger.Options{Level: "info", Colored: true, Out: os.Stderr})
	w := cmd.OutOrStdout()

	ds := demoDataset()
	if dataPath != "" {
		loaded, err := data.LoadDataset(dataPath, data.DefaultCSVOptions())
		if err != nil {
			return err
		}
		ds = loaded
	}
	log.Info().Str("source", ds.Source).Int("rows", ds.Len()).Msg("dataset")

	p := explore.DefaultPalette()
	engine := explore.New(p)

	cycles := []struct {
		name    string
		metrics model.MetricFlags
		filter  model.StrategyFilter
	}{
		{"all ticks only", model.MetricFlags{ShowAll: true}, model.AllStrategies()},
		{"every metric", model.AllMetrics(), model.AllStrategies()},
		{"no strategy selected", model.AllMetrics(), model.StrategySubset()},
	}

	for _, cy := range cycles {
		sel := model.DefaultSelection()
		sel.Metrics = cy.metrics
		sel.Strategies = cy.filter

		res := engine.Run(ds, sel)
		log.Info().
			Str("cycle", cy.name).
			Int("filtered", len(res.Filtered)).
			Int("series", len(res.Series)).
			Bool("can_render", res.CanRender).
			Msg("render cycle")

		fmt.Fprintln(w)
		if !res.CanRender {
			if err := render.Notice(w, res.Message); err != nil {
				return err
			}
			continue
		}
		for _, c := range res.Colors {
			fmt.Fprintf(w, "%-14s %-12s %s\n", c.StrategyName, c.Class, c.Color)
		}
		bars := render.Bars(res, analysis.Summarizer{}.Summarize(res.Series), p)
		if err := render.TerminalChart(w, cy.name, bars, 30); err != nil {
			return err
		}
	}
	return nil
}
