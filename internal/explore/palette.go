package explore

import (
	"swarm-utilization/internal/model"
	"swarm-utilization/internal/strategy"
)

// Palette holds the color tokens (hex) used for bars.
type Palette struct {
	EnemyFirst string
	Friendly   string
	Enemy      string
	Default    string

	// MetricHues colors bars by metric kind when more than one kind is shown.
	MetricHues map[model.MetricKind]string
}

func DefaultPalette() Palette {
	return Palette{
		EnemyFirst: "#ff8800",
		Friendly:   "#66cc66",
		Enemy:      "#ff6666",
		Default:    "#6666ff",
		MetricHues: map[model.MetricKind]string{
			model.MetricAll:      "#1f77b4",
			model.MetricFriendly: "#ff7f0e",
			model.MetricEnemy:    "#2ca02c",
		},
	}
}

// ClassColor returns the token for a strategy class.
func (p Palette) ClassColor(c strategy.Class) string {
	switch c {
	case strategy.ClassEnemyFirst:
		return p.EnemyFirst
	case strategy.ClassFriendly:
		return p.Friendly
	case strategy.ClassEnemy:
		return p.Enemy
	default:
		return p.Default
	}
}

// MetricColor returns the hue for kind, falling back to the default palette.
func (p Palette) MetricColor(k model.MetricKind) string {
	if c, ok := p.MetricHues[k]; ok && c != "" {
		return c
	}
	return DefaultPalette().MetricHues[k]
}
