package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"swarm-utilization/internal/api/models"
	"swarm-utilization/internal/config"
	"swarm-utilization/internal/data"
	"swarm-utilization/internal/model"
)

const sampleCSV = `stratName;group_size;enemyCount;hasCircle;ticksPerSecond;friendlyTicksPerTime;enemyTicksPerTime
EnemyFirst_A;1;1;False;10.0;4.0;6.0
FriendlyHeal;1;1;False;8.0;7.0;1.0
Balanced;1;1;False;6.0;3.0;3.0
EnemyTank;5;1;False;9.0;2.0;7.0
FriendlyHeal;1;1;True;11.0;9.0;2.0
`

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter(t *testing.T, mutate func(*config.Config)) *gin.Engine {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "results.csv")
	require.NoError(t, os.WriteFile(path, []byte(sampleCSV), 0o644))

	cfg := config.Default()
	cfg.Dataset.Path = path
	cfg.Server.StaticDir = ""
	if mutate != nil {
		mutate(cfg)
	}
	opts, err := cfg.CSVOptions()
	require.NoError(t, err)
	return NewRouter(cfg, data.NewDatasetCache(0, opts), zerolog.Nop())
}

func do(r http.Handler, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func TestHealth(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}

func TestOptions(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodGet, "/api/v1/options", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.OptionsResponse](t, w)
	assert.Equal(t, []int{1, 5, 20}, resp.GroupSizes)
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, resp.EnemyCounts)
	assert.Equal(t, []string{"All", "EnemyFirst_A", "FriendlyHeal", "Balanced", "EnemyTank"}, resp.Strategies)
	require.Len(t, resp.Metrics, 3)
	assert.Equal(t, "friendly ticks", resp.Metrics[1].Label)
	assert.True(t, resp.Defaults.AllStrategies)
	assert.Equal(t, 1, resp.Defaults.GroupSize)
	assert.Equal(t, model.AllMetrics(), resp.Defaults.Metrics)
}

func TestView_Defaults(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodPost, "/api/v1/view", "")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.ViewResponse](t, w)
	assert.True(t, resp.CanRender)
	assert.Empty(t, resp.Message)
	assert.Len(t, resp.Filtered, 3)
	assert.Len(t, resp.Series, 9)
	assert.Empty(t, resp.Colors)
	assert.Len(t, resp.Bars, 9)
}

func TestView_SingleMetricColors(t *testing.T) {
	body := `{"strategies":["EnemyFirst_A","FriendlyHeal"],"show_friendly":false,"show_enemy":false}`
	w := do(newTestRouter(t, nil), http.MethodPost, "/api/v1/view", body)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.ViewResponse](t, w)
	require.True(t, resp.CanRender)
	assert.Equal(t, []model.MetricSeriesEntry{
		{StrategyName: "EnemyFirst_A", Value: 10, Kind: model.MetricAll},
		{StrategyName: "FriendlyHeal", Value: 8, Kind: model.MetricAll},
	}, resp.Series)
	require.Len(t, resp.Colors, 2)
	assert.Equal(t, "#ff8800", resp.Colors[0].Color)
	assert.Equal(t, "#66cc66", resp.Colors[1].Color)
	assert.False(t, resp.Selection.AllStrategies)
}

func TestView_EmptySelection(t *testing.T) {
	r := newTestRouter(t, nil)
	for _, body := range []string{
		`{"show_all":false,"show_friendly":false,"show_enemy":false}`,
		`{"all_strategies":false}`,
		`{"strategies":[],"show_all":true}`,
	} {
		w := do(r, http.MethodPost, "/api/v1/view", body)
		require.Equal(t, http.StatusOK, w.Code, body)

		resp := decode[models.ViewResponse](t, w)
		assert.False(t, resp.CanRender, body)
		assert.Equal(t, "Select at least one tick type and strategy", resp.Message)
		assert.Empty(t, resp.Series)
		assert.Empty(t, resp.Bars)
	}
}

func TestView_EmptyStrategyListSelectsNothing(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodPost, "/api/v1/view", `{"strategies":[],"show_all":true}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.ViewResponse](t, w)
	assert.False(t, resp.CanRender)
	assert.False(t, resp.Selection.AllStrategies)
	assert.Empty(t, resp.Selection.Strategies)
	assert.Empty(t, resp.Filtered)
	assert.Equal(t, "Select at least one tick type and strategy", resp.Message)
}

func TestView_GuardTrueWithNoRows(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodPost, "/api/v1/view", `{"enemy_count":9}`)
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[models.ViewResponse](t, w)
	assert.True(t, resp.CanRender)
	assert.Empty(t, resp.Filtered)
	assert.Empty(t, resp.Series)
}

func TestView_InvalidSelection(t *testing.T) {
	r := newTestRouter(t, nil)
	for _, body := range []string{`{"group_size":3}`, `{"enemy_count":11}`, `{"enemy_count":0}`} {
		w := do(r, http.MethodPost, "/api/v1/view", body)
		require.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.Equal(t, "INVALID_SELECTION", decode[models.ErrorResponse](t, w).Error.Code)
	}

	w := do(r, http.MethodPost, "/api/v1/view", `{"group_size":"one"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "INVALID_REQUEST", decode[models.ErrorResponse](t, w).Error.Code)
}

func TestChart(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/v1/chart?format=svg&show_friendly=false&show_enemy=false", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/svg+xml", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "<svg")

	w = do(r, http.MethodGet, "/api/v1/chart", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
}

func TestChart_EmptyCases(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/v1/chart?enemy_count=9", "")
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = do(r, http.MethodGet, "/api/v1/chart?show_all=false&show_friendly=false&show_enemy=false", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decode[models.ErrorResponse](t, w)
	assert.Equal(t, "EMPTY_SELECTION", resp.Error.Code)
	assert.Equal(t, "Select at least one tick type and strategy", resp.Error.Message)

	w = do(r, http.MethodGet, "/api/v1/chart?strategies=&show_friendly=false&show_enemy=false", "")
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, "EMPTY_SELECTION", decode[models.ErrorResponse](t, w).Error.Code)

	w = do(r, http.MethodGet, "/api/v1/chart?format=gif", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestData(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/v1/data/raw", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 5, decode[models.RowsResponse](t, w).Count)

	w = do(r, http.MethodGet, "/api/v1/data/filtered?has_talent=true&strategies=FriendlyHeal", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.RowsResponse](t, w)
	require.Equal(t, 1, resp.Count)
	assert.Equal(t, 11.0, resp.Rows[0].TicksPerSecond)

	w = do(r, http.MethodGet, "/api/v1/data/filtered?all_strategies=false", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 0, decode[models.RowsResponse](t, w).Count)
}

func TestRank(t *testing.T) {
	r := newTestRouter(t, nil)

	w := do(r, http.MethodGet, "/api/v1/rank?kind=friendly&show_friendly=false", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp := decode[models.RankResponse](t, w)
	assert.Equal(t, model.MetricFriendly, resp.Kind)
	require.Len(t, resp.Rankings, 3)
	assert.Equal(t, "FriendlyHeal", resp.Rankings[0].StrategyName)
	assert.Equal(t, 1, resp.Rankings[0].Rank)
	assert.Equal(t, "Balanced", resp.Rankings[2].StrategyName)

	w = do(r, http.MethodGet, "/api/v1/rank?limit=1", "")
	require.Equal(t, http.StatusOK, w.Code)
	resp = decode[models.RankResponse](t, w)
	require.Len(t, resp.Rankings, 1)
	assert.Equal(t, "EnemyFirst_A", resp.Rankings[0].StrategyName)

	w = do(r, http.MethodGet, "/api/v1/rank?kind=bogus", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDatasets(t *testing.T) {
	w := do(newTestRouter(t, nil), http.MethodGet, "/api/v1/datasets", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Datasets []models.DatasetInfo `json:"datasets"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Datasets, 1)
	assert.Equal(t, 5, resp.Datasets[0].Rows)
	assert.Len(t, resp.Datasets[0].Strategies, 4)
}

func TestDatasetLoadError(t *testing.T) {
	r := newTestRouter(t, func(c *config.Config) {
		c.Dataset.Path = filepath.Join(t.TempDir(), "missing.csv")
	})
	w := do(r, http.MethodGet, "/api/v1/data/raw", "")
	require.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, "DATASET_LOAD_ERROR", decode[models.ErrorResponse](t, w).Error.Code)
}

func TestStaticFallback(t *testing.T) {
	static := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(static, "index.html"), []byte("<html>app</html>"), 0o644))
	r := newTestRouter(t, func(c *config.Config) { c.Server.StaticDir = static })

	w := do(r, http.MethodGet, "/some/page", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "app")

	w = do(r, http.MethodGet, "/api/v1/nope", "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := newTestRouter(t, func(c *config.Config) {
		c.Server.AllowedOrigins = []string{"http://localhost:5173"}
	})
	req := httptest.NewRequest(http.MethodOptions, "/api/v1/view", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:5173", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestIDPropagates(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	w := httptest.NewRecorder()
	newTestRouter(t, nil).ServeHTTP(w, req)
	assert.Equal(t, "abc-123", w.Header().Get("X-Request-ID"))
}
