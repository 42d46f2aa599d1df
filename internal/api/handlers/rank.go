package handlers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"swarm-utilization/internal/analysis"
	"swarm-utilization/internal/api/models"
	"swarm-utilization/internal/model"
)

// Rank handles GET /api/v1/rank
//
// Strategies of the selection are ranked by the mean of one metric kind.
// The metric checkboxes of the selection are ignored.
func (h *ExploreHandler) Rank(c *gin.Context) {
	var req models.RankRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return
	}

	kind := model.MetricAll
	if req.Kind != "" {
		k, ok := model.ParseMetricKind(req.Kind)
		if !ok {
			c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", fmt.Sprintf("unknown metric kind %q", req.Kind)))
			return
		}
		kind = k
	}

	sel, ok := h.selection(c, req.SelectionRequest)
	if !ok {
		return
	}
	sel.Metrics = model.MetricFlags{}.With(kind)

	ds, ok := h.dataset(c)
	if !ok {
		return
	}

	res := h.engine.Run(ds, sel)
	ranked := analysis.RankByMean(h.summarizer.Summarize(res.Series), kind)
	if req.Limit > 0 && req.Limit < len(ranked) {
		ranked = ranked[:req.Limit]
	}

	c.JSON(http.StatusOK, models.RankResponse{
		Kind:      kind,
		Selection: models.EchoSelection(sel),
		Rankings:  ranked,
	})
}
