package models

import (
	"strings"

	"github.com/samber/lo"

	"swarm-utilization/internal/model"
	"swarm-utilization/internal/strategy"
)

// SelectionRequest carries the dashboard widgets' state.
// It binds from a JSON body (POST /view) or from query parameters.
// Omitted fields take the dashboard defaults.
type SelectionRequest struct {
	GroupSize  *int  `json:"group_size,omitempty" form:"group_size"`
	EnemyCount *int  `json:"enemy_count,omitempty" form:"enemy_count"`
	HasTalent  *bool `json:"has_talent,omitempty" form:"has_talent"`

	// AllStrategies selects every strategy. When both it and Strategies are
	// omitted the request means "All". An explicit empty list (or one holding
	// only blank entries) selects nothing.
	AllStrategies *bool    `json:"all_strategies,omitempty" form:"all_strategies"`
	Strategies    []string `json:"strategies,omitempty" form:"strategies"`

	ShowAll      *bool `json:"show_all,omitempty" form:"show_all"`
	ShowFriendly *bool `json:"show_friendly,omitempty" form:"show_friendly"`
	ShowEnemy    *bool `json:"show_enemy,omitempty" form:"show_enemy"`
}

// ToSelection resolves the request into a core Selection.
func (r SelectionRequest) ToSelection() model.Selection {
	sel := model.DefaultSelection()
	if r.GroupSize != nil {
		sel.GroupSize = *r.GroupSize
	}
	if r.EnemyCount != nil {
		sel.EnemyCount = *r.EnemyCount
	}
	if r.HasTalent != nil {
		sel.HasTalent = *r.HasTalent
	}

	sel.Strategies = r.strategyFilter()
	sel.Metrics = model.MetricFlags{
		ShowAll:      boolOr(r.ShowAll, true),
		ShowFriendly: boolOr(r.ShowFriendly, true),
		ShowEnemy:    boolOr(r.ShowEnemy, true),
	}
	return sel
}

func (r SelectionRequest) strategyFilter() model.StrategyFilter {
	labels := lo.Compact(lo.Map(r.Strategies, func(s string, _ int) string {
		return strings.TrimSpace(s)
	}))
	if r.AllStrategies != nil {
		if *r.AllStrategies {
			return model.AllStrategies()
		}
		return model.StrategySubset(labels...)
	}
	if r.Strategies == nil || lo.Contains(labels, strategy.AllOption) {
		return model.AllStrategies()
	}
	return model.StrategySubset(labels...)
}

func boolOr(p *bool, def bool) bool {
	if p == nil {
		return def
	}
	return *p
}

// ChartRequest adds output options to a selection.
type ChartRequest struct {
	SelectionRequest
	Format string `form:"format"` // "png" (default) or "svg"
	Width  int    `form:"width"`
	Height int    `form:"height"`
}

// RankRequest ranks strategies of a selection by one metric kind.
type RankRequest struct {
	SelectionRequest
	Kind  string `form:"kind"`  // default: "ALL"
	Limit int    `form:"limit"` // 0 = all
}
