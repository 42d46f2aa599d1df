package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"swarm-utilization/internal/config"
	"swarm-utilization/internal/model"
	"swarm-utilization/internal/strategy"
)

// selectionFlags mirror the dashboard widgets.
type selectionFlags struct {
	groupSize  int
	enemyCount int
	talent     bool
	strategies []string
	metrics    []string
}

// registerFilters adds the row filter flags only.
func (f *selectionFlags) registerFilters(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&f.groupSize, "group", "g", 1, "Group size")
	cmd.Flags().IntVarP(&f.enemyCount, "enemies", "e", 1, "Enemy count")
	cmd.Flags().BoolVarP(&f.talent, "talent", "t", false, "Talent active")
	cmd.Flags().StringSliceVarP(&f.strategies, "strategy", "s", []string{strategy.AllOption},
		"Strategies to include; \"All\" selects every strategy, an empty value selects none")
}

func (f *selectionFlags) register(cmd *cobra.Command) {
	f.registerFilters(cmd)
	cmd.Flags().StringSliceVarP(&f.metrics, "metric", "m", []string{"all", "friendly", "enemy"},
		"Tick types to show: all, friendly, enemy")
}

func (f *selectionFlags) selection(limits config.SelectionConfig) (model.Selection, error) {
	if !limits.AllowsGroupSize(f.groupSize) {
		return model.Selection{}, fmt.Errorf("group size %d is not one of %v", f.groupSize, limits.GroupSizes)
	}
	if !limits.AllowsEnemyCount(f.enemyCount) {
		return model.Selection{}, fmt.Errorf("enemy count %d outside %d..%d", f.enemyCount, limits.EnemyMin, limits.EnemyMax)
	}

	var metrics model.MetricFlags
	for _, m := range f.metrics {
		kind, ok := model.ParseMetricKind(m)
		if !ok {
			return model.Selection{}, fmt.Errorf("unknown metric %q", m)
		}
		metrics = metrics.With(kind)
	}

	return model.Selection{
		GroupSize:  f.groupSize,
		EnemyCount: f.enemyCount,
		HasTalent:  f.talent,
		Strategies: strategyFilter(f.strategies),
		Metrics:    metrics,
	}, nil
}

func strategyFilter(labels []string) model.StrategyFilter {
	for _, l := range labels {
		if l == strategy.AllOption {
			return model.AllStrategies()
		}
	}
	return model.StrategySubset(labels...)
}
