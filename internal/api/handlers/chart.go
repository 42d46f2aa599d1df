package handlers

import (
	"bytes"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"swarm-utilization/internal/api/models"
	"swarm-utilization/internal/render"
)

// Chart handles GET /api/v1/chart
//
// Responses: the image; 204 when the selection matches no rows;
// 422 EMPTY_SELECTION when no metric or strategy is selected.
func (h *ExploreHandler) Chart(c *gin.Context) {
	var req models.ChartRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return
	}
	format, err := render.ParseFormat(req.Format)
	if err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return
	}
	sel, ok := h.selection(c, req.SelectionRequest)
	if !ok {
		return
	}
	ds, ok := h.dataset(c)
	if !ok {
		return
	}

	res := h.engine.Run(ds, sel)
	if !res.CanRender {
		c.JSON(http.StatusUnprocessableEntity, models.NewError("EMPTY_SELECTION", res.Message))
		return
	}

	bars := render.Bars(res, h.summarizer.Summarize(res.Series), h.engine.Palette())
	var buf bytes.Buffer
	err = render.WriteChart(&buf, bars, format, render.ChartOptions{Width: req.Width, Height: req.Height})
	switch {
	case errors.Is(err, render.ErrNothingToDraw):
		c.Status(http.StatusNoContent)
	case err != nil:
		h.log.Error().Err(err).Msg("chart render failed")
		c.JSON(http.StatusInternalServerError, models.NewError("RENDER_ERROR", err.Error()))
	default:
		c.Data(http.StatusOK, format.ContentType(), buf.Bytes())
	}
}
