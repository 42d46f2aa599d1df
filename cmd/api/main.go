package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"

	"swarm-utilization/internal/api"
	"swarm-utilization/internal/config"
	"swarm-utilization/internal/data"
	"swarm-utilization/internal/logger"
)

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	log := logger.Must(logger.Options{
		Level:   cfg.Log.Level,
		Colored: cfg.Log.UseColor(),
		JSON:    cfg.Log.UseJSON(),
	})

	if cfg.Production() {
		gin.SetMode(gin.ReleaseMode)
	}

	if wd, err := os.Getwd(); err == nil {
		log.Info().Str("wd", wd).Str("dataset", cfg.Dataset.Path).Msg("starting")
	}

	csvOpts, err := cfg.CSVOptions()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid dataset options")
	}
	ttl, err := cfg.CacheTTL()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid cache ttl")
	}
	cache := data.NewDatasetCache(ttl, csvOpts)

	// Warm the cache so a bad dataset shows up at startup rather than on the first request.
	if ds, err := cache.Load(cfg.Dataset.Path); err != nil {
		log.Warn().Err(err).Msg("dataset not loaded yet")
	} else {
		log.Info().Int("rows", ds.Len()).Msg("dataset loaded")
	}

	router := api.NewRouter(cfg, cache, log)

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Info().Str("addr", addr).Msg("starting API server")
	if err := router.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
