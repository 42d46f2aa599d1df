package strategy

import "strings"

// Class is the naming-convention family a strategy label belongs to.
// Keep these values stable; they are used for palette lookups and API output.
type Class string

const (
	ClassEnemyFirst Class = "ENEMY_FIRST"
	ClassFriendly   Class = "FRIENDLY"
	ClassEnemy      Class = "ENEMY"
	ClassDefault    Class = "DEFAULT"
)

type rule struct {
	class Class
	match func(lower string) bool
}

func contains(substr string) func(string) bool {
	return func(lower string) bool { return strings.Contains(lower, substr) }
}

// rules are evaluated top-down; the first match wins.
// "enemyfirst" must stay ahead of "enemy" and "friendly".
var rules = []rule{
	{class: ClassEnemyFirst, match: contains("enemyfirst")},
	{class: ClassFriendly, match: contains("friendly")},
	{class: ClassEnemy, match: contains("enemy")},
}

// Classify maps a strategy label to its class using case-insensitive substring rules.
func Classify(label string) Class {
	lower := strings.ToLower(label)
	for _, r := range rules {
		if r.match(lower) {
			return r.class
		}
	}
	return ClassDefault
}
