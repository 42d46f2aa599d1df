package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"swarm-utilization/internal/api/models"
	"swarm-utilization/internal/strategy"
)

// ListDatasets handles GET /api/v1/datasets
func (h *ExploreHandler) ListDatasets(c *gin.Context) {
	ds, ok := h.dataset(c)
	if !ok {
		return
	}

	datasets := []models.DatasetInfo{
		{
			Path:       h.path,
			Rows:       ds.Len(),
			Strategies: strategy.Names(ds.Rows),
		},
	}
	c.JSON(http.StatusOK, gin.H{"datasets": datasets})
}
