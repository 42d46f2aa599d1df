package model

// ResultRow is one simulated outcome from the swarm results table.
// Rows are immutable once loaded.
type ResultRow struct {
	StrategyName string `json:"strat_name"`
	GroupSize    int    `json:"group_size"`
	EnemyCount   int    `json:"enemy_count"`
	HasTalent    bool   `json:"has_talent"`

	// Tick rates.
	TicksPerSecond       float64 `json:"ticks_per_second"`
	FriendlyTicksPerTime float64 `json:"friendly_ticks_per_time"`
	EnemyTicksPerTime    float64 `json:"enemy_ticks_per_time"`
}

// Dataset is the read-only, ordered results table for a session.
type Dataset struct {
	Source string      `json:"source,omitempty"`
	Rows   []ResultRow `json:"rows"`
}

// Len returns the number of rows; a nil dataset has none.
func (d *Dataset) Len() int {
	if d == nil {
		return 0
	}
	return len(d.Rows)
}
