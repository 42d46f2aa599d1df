package models

import (
	"swarm-utilization/internal/analysis"
	"swarm-utilization/internal/explore"
	"swarm-utilization/internal/model"
	"swarm-utilization/internal/render"
)

// SelectionEcho is the resolved selection sent back to the client.
type SelectionEcho struct {
	GroupSize     int               `json:"group_size"`
	EnemyCount    int               `json:"enemy_count"`
	HasTalent     bool              `json:"has_talent"`
	AllStrategies bool              `json:"all_strategies"`
	Strategies    []string          `json:"strategies"`
	Metrics       model.MetricFlags `json:"metrics"`
}

func EchoSelection(sel model.Selection) SelectionEcho {
	strategies := sel.Strategies.Labels()
	if strategies == nil {
		strategies = []string{}
	}
	return SelectionEcho{
		GroupSize:     sel.GroupSize,
		EnemyCount:    sel.EnemyCount,
		HasTalent:     sel.HasTalent,
		AllStrategies: sel.Strategies.IsAll(),
		Strategies:    strategies,
		Metrics:       sel.Metrics,
	}
}

// MetricOption describes one tick-type checkbox.
type MetricOption struct {
	Kind  model.MetricKind `json:"kind"`
	Label string           `json:"label"`
	Color string           `json:"color"`
}

// OptionsResponse lists the domains of every selection widget.
type OptionsResponse struct {
	GroupSizes    []int          `json:"group_sizes"`
	EnemyCounts   []int          `json:"enemy_counts"`
	TalentChoices []bool         `json:"talent_choices"`
	Strategies    []string       `json:"strategies"`
	Metrics       []MetricOption `json:"metrics"`
	Defaults      SelectionEcho  `json:"defaults"`
}

// ViewResponse is the output of one render cycle.
type ViewResponse struct {
	Selection SelectionEcho             `json:"selection"`
	CanRender bool                      `json:"can_render"`
	Message   string                    `json:"message,omitempty"`
	Filtered  []model.ResultRow         `json:"filtered"`
	Series    []model.MetricSeriesEntry `json:"series"`
	Colors    explore.ColorAssignment   `json:"colors,omitempty"`
	Bars      []render.Bar              `json:"bars"`
}

// RowsResponse wraps a rows table.
type RowsResponse struct {
	Rows  []model.ResultRow `json:"rows"`
	Count int               `json:"count"`
}

// RankResponse lists strategies ordered by mean value.
type RankResponse struct {
	Kind      model.MetricKind          `json:"kind"`
	Selection SelectionEcho             `json:"selection"`
	Rankings  []analysis.RankedStrategy `json:"rankings"`
}

// DatasetInfo describes the loaded results table.
type DatasetInfo struct {
	Path       string   `json:"path"`
	Rows       int      `json:"rows"`
	Strategies []string `json:"strategies"`
}

// ErrorResponse represents an error response
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail contains error information
type ErrorDetail struct {
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func NewError(code, message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: code, Message: message}}
}
