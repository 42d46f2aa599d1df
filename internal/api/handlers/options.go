package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"swarm-utilization/internal/api/models"
	"swarm-utilization/internal/model"
	"swarm-utilization/internal/strategy"
)

// Options handles GET /api/v1/options
func (h *ExploreHandler) Options(c *gin.Context) {
	ds, ok := h.dataset(c)
	if !ok {
		return
	}

	p := h.engine.Palette()
	metrics := lo.Map(model.MetricKinds, func(k model.MetricKind, _ int) models.MetricOption {
		return models.MetricOption{Kind: k, Label: k.Label(), Color: p.MetricColor(k)}
	})

	c.JSON(http.StatusOK, models.OptionsResponse{
		GroupSizes:    h.limits.GroupSizes,
		EnemyCounts:   lo.RangeFrom(h.limits.EnemyMin, h.limits.EnemyMax-h.limits.EnemyMin+1),
		TalentChoices: []bool{false, true},
		Strategies:    strategy.Options(ds.Rows),
		Metrics:       metrics,
		Defaults:      models.EchoSelection(model.DefaultSelection()),
	})
}
