package model

import "github.com/StudioSol/set"

// StrategyFilter selects strategies either by wildcard or by an explicit subset.
// The zero value is an empty subset, which matches nothing.
type StrategyFilter struct {
	all    bool
	labels *set.LinkedHashSetString
}

// AllStrategies matches every strategy label.
func AllStrategies() StrategyFilter {
	return StrategyFilter{all: true}
}

// StrategySubset matches exactly the given labels. Duplicates collapse.
func StrategySubset(labels ...string) StrategyFilter {
	return StrategyFilter{labels: set.NewLinkedHashSetString(labels...)}
}

func (f StrategyFilter) IsAll() bool { return f.all }

// Match reports whether label passes the filter.
func (f StrategyFilter) Match(label string) bool {
	if f.all {
		return true
	}
	if f.labels == nil {
		return false
	}
	return f.labels.InArray(label)
}

// Count is the number of selected options. The wildcard counts as one selection.
func (f StrategyFilter) Count() int {
	if f.all {
		return 1
	}
	if f.labels == nil {
		return 0
	}
	return f.labels.Length()
}

// Labels returns the explicit subset in insertion order; nil for the wildcard.
func (f StrategyFilter) Labels() []string {
	if f.all || f.labels == nil {
		return nil
	}
	out := make([]string, 0, f.labels.Length())
	for l := range f.labels.Iter() {
		out = append(out, l)
	}
	return out
}

// MetricFlags are the three independent "show" toggles.
type MetricFlags struct {
	ShowAll      bool `json:"show_all"`
	ShowFriendly bool `json:"show_friendly"`
	ShowEnemy    bool `json:"show_enemy"`
}

// AllMetrics enables every metric, matching the dashboard defaults.
func AllMetrics() MetricFlags {
	return MetricFlags{ShowAll: true, ShowFriendly: true, ShowEnemy: true}
}

// Enabled reports whether kind is switched on.
func (m MetricFlags) Enabled(kind MetricKind) bool {
	switch kind {
	case MetricAll:
		return m.ShowAll
	case MetricFriendly:
		return m.ShowFriendly
	case MetricEnemy:
		return m.ShowEnemy
	default:
		return false
	}
}

// Kinds returns enabled kinds in display order.
func (m MetricFlags) Kinds() []MetricKind {
	out := make([]MetricKind, 0, len(MetricKinds))
	for _, k := range MetricKinds {
		if m.Enabled(k) {
			out = append(out, k)
		}
	}
	return out
}

func (m MetricFlags) Count() int { return len(m.Kinds()) }

// With returns a copy of m with kind switched on.
func (m MetricFlags) With(kind MetricKind) MetricFlags {
	switch kind {
	case MetricAll:
		m.ShowAll = true
	case MetricFriendly:
		m.ShowFriendly = true
	case MetricEnemy:
		m.ShowEnemy = true
	}
	return m
}

// Selection holds the user's filter and display choices for one render cycle.
type Selection struct {
	GroupSize  int
	EnemyCount int
	HasTalent  bool
	Strategies StrategyFilter
	Metrics    MetricFlags
}

// DefaultSelection mirrors the dashboard's initial widget state.
func DefaultSelection() Selection {
	return Selection{
		GroupSize:  1,
		EnemyCount: 1,
		HasTalent:  false,
		Strategies: AllStrategies(),
		Metrics:    AllMetrics(),
	}
}
