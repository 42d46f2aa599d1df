package explore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swarm-utilization/internal/model"
)

func row(name string, group, enemies int, talent bool, all, friendly, enemy float64) model.ResultRow {
	return model.ResultRow{
		StrategyName:         name,
		GroupSize:            group,
		EnemyCount:           enemies,
		HasTalent:            talent,
		TicksPerSecond:       all,
		FriendlyTicksPerTime: friendly,
		EnemyTicksPerTime:    enemy,
	}
}

func sampleRows() []model.ResultRow {
	return []model.ResultRow{
		row("EnemyFirst_A", 1, 1, false, 10, 4, 6),
		row("FriendlyHeal", 1, 1, false, 8, 7, 1),
		row("EnemyTank", 5, 1, false, 9, 2, 7),
		row("FriendlyHeal", 1, 1, true, 11, 9, 2),
		row("Balanced", 1, 2, false, 5, 3, 2),
		row("Balanced", 1, 1, false, 6, 3, 3),
		row("EnemyFirst_A", 1, 1, false, 12, 5, 7),
	}
}

func sel(group, enemies int, talent bool, strategies model.StrategyFilter, flags model.MetricFlags) model.Selection {
	return model.Selection{
		GroupSize:  group,
		EnemyCount: enemies,
		HasTalent:  talent,
		Strategies: strategies,
		Metrics:    flags,
	}
}

func TestFilter_SoundAndComplete(t *testing.T) {
	rows := sampleRows()
	selections := []model.Selection{
		sel(1, 1, false, model.AllStrategies(), model.AllMetrics()),
		sel(1, 1, false, model.StrategySubset("Balanced", "EnemyFirst_A"), model.AllMetrics()),
		sel(5, 1, false, model.AllStrategies(), model.AllMetrics()),
		sel(1, 1, true, model.StrategySubset("FriendlyHeal"), model.AllMetrics()),
		sel(20, 10, true, model.AllStrategies(), model.AllMetrics()),
	}

	for _, s := range selections {
		got := Filter(rows, s)
		for _, r := range got {
			assert.True(t, Matches(r, s))
		}

		// every matching dataset row shows up exactly once, in order
		var want []model.ResultRow
		for _, r := range rows {
			if Matches(r, s) {
				want = append(want, r)
			}
		}
		assert.Len(t, got, len(want))
		for i := range want {
			assert.Equal(t, want[i], got[i])
		}
	}
}

func TestFilter_PreservesOrder(t *testing.T) {
	got := Filter(sampleRows(), sel(1, 1, false, model.AllStrategies(), model.AllMetrics()))
	names := make([]string, 0, len(got))
	for _, r := range got {
		names = append(names, r.StrategyName)
	}
	assert.Equal(t, []string{"EnemyFirst_A", "FriendlyHeal", "Balanced", "EnemyFirst_A"}, names)
}

func TestFilter_EmptySubsetMatchesNothing(t *testing.T) {
	got := Filter(sampleRows(), sel(1, 1, false, model.StrategySubset(), model.AllMetrics()))
	assert.Empty(t, got)

	var zero model.StrategyFilter
	got = Filter(sampleRows(), sel(1, 1, false, zero, model.AllMetrics()))
	assert.Empty(t, got)
}

func TestFilter_LiteralAllIsNotWildcard(t *testing.T) {
	got := Filter(sampleRows(), sel(1, 1, false, model.StrategySubset("All"), model.AllMetrics()))
	assert.Empty(t, got)
}

func TestFilter_Idempotent(t *testing.T) {
	s := sel(1, 1, false, model.StrategySubset("EnemyFirst_A", "Balanced"), model.AllMetrics())
	once := Filter(sampleRows(), s)
	twice := Filter(once, s)
	assert.Equal(t, once, twice)
}

func TestFilter_EmptyDataset(t *testing.T) {
	assert.Empty(t, Filter(nil, model.DefaultSelection()))
}

func TestReshape_LengthMatchesFlags(t *testing.T) {
	rows := Filter(sampleRows(), sel(1, 1, false, model.AllStrategies(), model.AllMetrics()))
	require.Len(t, rows, 4)

	cases := []model.MetricFlags{
		{},
		{ShowAll: true},
		{ShowFriendly: true},
		{ShowEnemy: true},
		{ShowAll: true, ShowEnemy: true},
		model.AllMetrics(),
	}
	for _, f := range cases {
		assert.Len(t, Reshape(rows, f), len(rows)*f.Count())
	}
}

func TestReshape_NoFlags(t *testing.T) {
	got := Reshape(sampleRows(), model.MetricFlags{})
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestReshape_Order(t *testing.T) {
	rows := []model.ResultRow{
		row("A", 1, 1, false, 1, 2, 3),
		row("B", 1, 1, false, 4, 5, 6),
	}
	got := Reshape(rows, model.AllMetrics())
	want := []model.MetricSeriesEntry{
		{StrategyName: "A", Value: 1, Kind: model.MetricAll},
		{StrategyName: "B", Value: 4, Kind: model.MetricAll},
		{StrategyName: "A", Value: 2, Kind: model.MetricFriendly},
		{StrategyName: "B", Value: 5, Kind: model.MetricFriendly},
		{StrategyName: "A", Value: 3, Kind: model.MetricEnemy},
		{StrategyName: "B", Value: 6, Kind: model.MetricEnemy},
	}
	assert.Equal(t, want, got)

	got = Reshape(rows, model.MetricFlags{ShowFriendly: true, ShowEnemy: true})
	assert.Equal(t, want[2:], got)
}

func TestColorize(t *testing.T) {
	p := DefaultPalette()
	cases := map[string]string{
		"EnemyFirst_Alpha":         "#ff8800",
		"FriendlyHealer":           "#66cc66",
		"EnemyTank":                "#ff6666",
		"BalancedCaster":           "#6666ff",
		"friendly_then_EnemyFirst": "#ff8800",
		"ENEMYFIRSTfriendly":       "#ff8800",
		"enemy_friendly":           "#66cc66",
	}
	for label, want := range cases {
		got, ok := Colorize([]string{label}, p).Lookup(label)
		require.True(t, ok, label)
		assert.Equal(t, want, got, label)
	}
}

func TestColorize_DistinctInFirstAppearanceOrder(t *testing.T) {
	got := Colorize([]string{"b_enemy", "a_friendly", "b_enemy", "c"}, DefaultPalette())
	require.Len(t, got, 3)
	assert.Equal(t, "b_enemy", got[0].StrategyName)
	assert.Equal(t, "a_friendly", got[1].StrategyName)
	assert.Equal(t, "c", got[2].StrategyName)
	assert.Equal(t, map[string]string{
		"b_enemy":    "#ff6666",
		"a_friendly": "#66cc66",
		"c":          "#6666ff",
	}, got.Map())
}

func TestColorize_Deterministic(t *testing.T) {
	labels := []string{"EnemyFirst_X", "Balanced"}
	assert.Equal(t, Colorize(labels, DefaultPalette()), Colorize(labels, DefaultPalette()))
}

func TestCanRender(t *testing.T) {
	assert.False(t, CanRender(model.AllMetrics(), 0))
	assert.False(t, CanRender(model.MetricFlags{}, 3))
	assert.True(t, CanRender(model.MetricFlags{ShowEnemy: true}, 1))
	assert.True(t, CanRender(model.AllMetrics(), model.AllStrategies().Count()))
}

func TestEngine_RenderableWithoutMatchingRows(t *testing.T) {
	ds := &model.Dataset{Rows: sampleRows()}
	s := sel(20, 9, true, model.StrategySubset("Balanced"), model.MetricFlags{ShowAll: true})

	res := New(DefaultPalette()).Run(ds, s)
	assert.True(t, res.CanRender)
	assert.Empty(t, res.Filtered)
	assert.True(t, res.Empty())
	assert.Empty(t, res.Colors)
	assert.Empty(t, res.Message)
}

func TestEngine_EmptySelection(t *testing.T) {
	ds := &model.Dataset{Rows: sampleRows()}
	s := sel(1, 1, false, model.StrategySubset(), model.AllMetrics())

	res := New(DefaultPalette()).Run(ds, s)
	assert.False(t, res.CanRender)
	assert.Equal(t, EmptySelectionMessage, res.Message)
	assert.Empty(t, res.Series)
	assert.Nil(t, res.Colors)
}

func TestEngine_MultiMetricUsesHues(t *testing.T) {
	ds := &model.Dataset{Rows: sampleRows()}
	res := New(DefaultPalette()).Run(ds, model.DefaultSelection())

	assert.True(t, res.CanRender)
	assert.False(t, res.SingleMetric())
	assert.Nil(t, res.Colors)
	assert.Len(t, res.Series, len(res.Filtered)*3)
}

func TestEngine_EndToEnd(t *testing.T) {
	ds := &model.Dataset{Rows: []model.ResultRow{
		row("EnemyFirst_A", 1, 1, false, 10, 0, 0),
		row("FriendlyHeal", 1, 1, false, 8, 0, 0),
	}}
	s := sel(1, 1, false, model.AllStrategies(), model.MetricFlags{ShowAll: true})

	res := New(DefaultPalette()).Run(ds, s)
	require.True(t, res.CanRender)
	assert.Equal(t, ds.Rows, res.Filtered)
	assert.Equal(t, []model.MetricSeriesEntry{
		{StrategyName: "EnemyFirst_A", Value: 10, Kind: model.MetricAll},
		{StrategyName: "FriendlyHeal", Value: 8, Kind: model.MetricAll},
	}, res.Series)
	assert.Equal(t, ColorAssignment{
		{StrategyName: "EnemyFirst_A", Class: "ENEMY_FIRST", Color: "#ff8800"},
		{StrategyName: "FriendlyHeal", Class: "FRIENDLY", Color: "#66cc66"},
	}, res.Colors)
}

func TestEngine_NilDataset(t *testing.T) {
	res := New(DefaultPalette()).Run(nil, model.DefaultSelection())
	assert.True(t, res.CanRender)
	assert.Empty(t, res.Filtered)
	assert.Empty(t, res.Series)
}
