package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swarm-utilization/internal/api/models"
	"swarm-utilization/internal/explore"
	"swarm-utilization/internal/render"
)

// View handles POST /api/v1/view
//
// An empty selection is not an error: the response carries can_render=false
// and the prompt message.
func (h *ExploreHandler) View(c *gin.Context) {
	sel, ok := h.bindJSONSelection(c)
	if !ok {
		return
	}
	ds, ok := h.dataset(c)
	if !ok {
		return
	}

	res := h.engine.Run(ds, sel)
	bars := render.Bars(res, h.summarizer.Summarize(res.Series), h.engine.Palette())

	h.log.Debug().
		Int("filtered", len(res.Filtered)).
		Int("series", len(res.Series)).
		Bool("can_render", res.CanRender).
		Msg("view")

	c.JSON(http.StatusOK, viewResponse(res, bars))
}

func viewResponse(res *explore.Result, bars []render.Bar) models.ViewResponse {
	return models.ViewResponse{
		Selection: models.EchoSelection(res.Selection),
		CanRender: res.CanRender,
		Message:   res.Message,
		Filtered:  nonNilRows(res.Filtered),
		Series:    res.Series,
		Colors:    res.Colors,
		Bars:      bars,
	}
}
