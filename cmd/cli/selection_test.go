package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swarm-utilization/internal/config"
	"swarm-utilization/internal/model"
)

func TestSelectionFlags(t *testing.T) {
	limits := config.Default().Selection

	f := &selectionFlags{groupSize: 5, enemyCount: 3, talent: true, strategies: []string{"All"}, metrics: []string{"friendly"}}
	sel, err := f.selection(limits)
	require.NoError(t, err)
	assert.Equal(t, 5, sel.GroupSize)
	assert.True(t, sel.Strategies.IsAll())
	assert.Equal(t, []model.MetricKind{model.MetricFriendly}, sel.Metrics.Kinds())

	f = &selectionFlags{groupSize: 1, enemyCount: 1, strategies: []string{}, metrics: []string{"all ticks", "ENEMY"}}
	sel, err = f.selection(limits)
	require.NoError(t, err)
	assert.Equal(t, 0, sel.Strategies.Count())
	assert.Equal(t, []model.MetricKind{model.MetricAll, model.MetricEnemy}, sel.Metrics.Kinds())
}

func TestSelectionFlags_Invalid(t *testing.T) {
	limits := config.Default().Selection

	_, err := (&selectionFlags{groupSize: 2, enemyCount: 1}).selection(limits)
	assert.Error(t, err)

	_, err = (&selectionFlags{groupSize: 1, enemyCount: 11}).selection(limits)
	assert.Error(t, err)

	_, err = (&selectionFlags{groupSize: 1, enemyCount: 1, metrics: []string{"mana"}}).selection(limits)
	assert.Error(t, err)
}
