package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"swarm-utilization/internal/api/handlers"
	"swarm-utilization/internal/api/middleware"
	"swarm-utilization/internal/api/models"
	"swarm-utilization/internal/config"
	"swarm-utilization/internal/data"
)

// NewRouter wires middleware, API routes and, when cfg.Server.StaticDir
// exists, the single-page front end.
func NewRouter(cfg *config.Config, cache *data.DatasetCache, log zerolog.Logger) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger(log))
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS(cfg.Server.AllowedOrigins))

	explore := handlers.NewExploreHandler(cfg, cache, log)

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		v1.GET("/options", explore.Options)
		v1.POST("/view", explore.View)
		v1.GET("/chart", explore.Chart)
		v1.GET("/data/raw", explore.RawData)
		v1.GET("/data/filtered", explore.FilteredData)
		v1.GET("/rank", explore.Rank)
		v1.GET("/datasets", explore.ListDatasets)
	}

	serveStatic(router, cfg.Server.StaticDir, log)
	return router
}

func serveStatic(router *gin.Engine, staticDir string, log zerolog.Logger) {
	if staticDir == "" {
		return
	}
	if _, err := os.Stat(staticDir); err != nil {
		log.Info().Str("dir", staticDir).Msg("static directory not found, skipping static file serving")
		return
	}

	router.Static("/assets", filepath.Join(staticDir, "assets"))
	router.StaticFile("/favicon.ico", filepath.Join(staticDir, "favicon.ico"))

	// SPA routing: unknown non-API paths get index.html.
	router.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api") {
			c.JSON(http.StatusNotFound, models.NewError("NOT_FOUND", "Not found"))
			return
		}
		c.File(filepath.Join(staticDir, "index.html"))
	})
	log.Info().Str("dir", staticDir).Msg("serving static files")
}
