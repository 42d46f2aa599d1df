package model

// MetricKind tags which tick rate a series entry was taken from.
// Keep these values stable; they are part of the API output.
type MetricKind string

const (
	MetricAll      MetricKind = "ALL"
	MetricFriendly MetricKind = "FRIENDLY"
	MetricEnemy    MetricKind = "ENEMY"
)

// MetricKinds lists every kind in display order.
var MetricKinds = []MetricKind{MetricAll, MetricFriendly, MetricEnemy}

// Label is the human-friendly name used for legends and table headers.
func (k MetricKind) Label() string {
	switch k {
	case MetricAll:
		return "all ticks"
	case MetricFriendly:
		return "friendly ticks"
	case MetricEnemy:
		return "enemy ticks"
	default:
		return string(k)
	}
}

// ParseMetricKind accepts either the kind ("ALL") or a short alias ("all", "friendly", "enemy").
func ParseMetricKind(s string) (MetricKind, bool) {
	switch s {
	case "ALL", "all", "all ticks":
		return MetricAll, true
	case "FRIENDLY", "friendly", "friendly ticks":
		return MetricFriendly, true
	case "ENEMY", "enemy", "enemy ticks":
		return MetricEnemy, true
	}
	return "", false
}

// MetricSeriesEntry is one bar value in the long-form chart data.
type MetricSeriesEntry struct {
	StrategyName string     `json:"strat_name"`
	Value        float64    `json:"value"`
	Kind         MetricKind `json:"type"`
}
