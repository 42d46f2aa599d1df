package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"swarm-utilization/internal/analysis"
	"swarm-utilization/internal/api/models"
	"swarm-utilization/internal/config"
	"swarm-utilization/internal/data"
	"swarm-utilization/internal/explore"
	"swarm-utilization/internal/model"
)

// ExploreHandler serves the results explorer: options, render cycles,
// charts, tables and rankings over one configured dataset.
type ExploreHandler struct {
	datasets   *data.DatasetCache
	path       string
	engine     *explore.Engine
	summarizer analysis.Summarizer
	limits     config.SelectionConfig
	log        zerolog.Logger
}

// NewExploreHandler creates a handler reading cfg.Dataset.Path through cache.
func NewExploreHandler(cfg *config.Config, cache *data.DatasetCache, log zerolog.Logger) *ExploreHandler {
	return &ExploreHandler{
		datasets:   cache,
		path:       cfg.Dataset.Path,
		engine:     explore.New(cfg.ExplorePalette()),
		summarizer: analysis.DefaultSummarizer(),
		limits:     cfg.Selection,
		log:        log.With().Str("component", "explore").Logger(),
	}
}

func (h *ExploreHandler) dataset(c *gin.Context) (*model.Dataset, bool) {
	ds, err := h.datasets.Load(h.path)
	if err != nil {
		h.log.Error().Err(err).Str("path", h.path).Msg("dataset load failed")

		var remoteErr *data.RemoteError
		if errors.As(err, &remoteErr) {
			statusCode := http.StatusBadGateway
			if remoteErr.StatusCode == http.StatusTooManyRequests {
				statusCode = http.StatusTooManyRequests
			}
			c.JSON(statusCode, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    remoteErr.Code,
					Message: remoteErr.Message,
					Details: map[string]interface{}{
						"status_code": remoteErr.StatusCode,
						"retry_after": remoteErr.RetryAfter,
					},
				},
			})
			return nil, false
		}
		c.JSON(http.StatusInternalServerError, models.NewError(
			"DATASET_LOAD_ERROR",
			fmt.Sprintf("Failed to load dataset: %v", err),
		))
		return nil, false
	}
	return ds, true
}

// bindQuerySelection reads selection query parameters and validates them.
func (h *ExploreHandler) bindQuerySelection(c *gin.Context, req *models.SelectionRequest) (model.Selection, bool) {
	if err := c.ShouldBindQuery(req); err != nil {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return model.Selection{}, false
	}
	return h.selection(c, *req)
}

// bindJSONSelection reads a selection body. An empty body means the defaults.
func (h *ExploreHandler) bindJSONSelection(c *gin.Context) (model.Selection, bool) {
	var req models.SelectionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, models.NewError("INVALID_REQUEST", err.Error()))
		return model.Selection{}, false
	}
	return h.selection(c, req)
}

func (h *ExploreHandler) selection(c *gin.Context, req models.SelectionRequest) (model.Selection, bool) {
	sel := req.ToSelection()
	if !h.limits.AllowsGroupSize(sel.GroupSize) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SELECTION",
				Message: fmt.Sprintf("group_size %d is not offered", sel.GroupSize),
				Details: map[string]interface{}{"group_sizes": h.limits.GroupSizes},
			},
		})
		return sel, false
	}
	if !h.limits.AllowsEnemyCount(sel.EnemyCount) {
		c.JSON(http.StatusBadRequest, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INVALID_SELECTION",
				Message: fmt.Sprintf("enemy_count %d is out of range", sel.EnemyCount),
				Details: map[string]interface{}{"min": h.limits.EnemyMin, "max": h.limits.EnemyMax},
			},
		})
		return sel, false
	}
	return sel, true
}

func nonNilRows(rows []model.ResultRow) []model.ResultRow {
	if rows == nil {
		return []model.ResultRow{}
	}
	return rows
}
