package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swarm-utilization/internal/api/models"
	"swarm-utilization/internal/explore"
)

// RawData handles GET /api/v1/data/raw
func (h *ExploreHandler) RawData(c *gin.Context) {
	ds, ok := h.dataset(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, models.RowsResponse{Rows: nonNilRows(ds.Rows), Count: ds.Len()})
}

// FilteredData handles GET /api/v1/data/filtered
func (h *ExploreHandler) FilteredData(c *gin.Context) {
	var req models.SelectionRequest
	sel, ok := h.bindQuerySelection(c, &req)
	if !ok {
		return
	}
	ds, ok := h.dataset(c)
	if !ok {
		return
	}
	rows := explore.Filter(ds.Rows, sel)
	c.JSON(http.StatusOK, models.RowsResponse{Rows: nonNilRows(rows), Count: len(rows)})
}
