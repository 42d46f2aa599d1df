package explore

import "swarm-utilization/internal/model"

// EmptySelectionMessage is shown instead of a chart when CanRender is false.
const EmptySelectionMessage = "Select at least one tick type and strategy"

// CanRender reports whether a chart should be attempted.
// It only checks the selection counts: a true result may still come with an
// empty series list when no row matches, and renderers must cope with that.
func CanRender(flags model.MetricFlags, selectedStrategies int) bool {
	return flags.Count() > 0 && selectedStrategies > 0
}
