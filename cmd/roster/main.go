package main

import (
	"context"
	"log"
	"os"

	"github.com/seantiz/roster/internal/api"
	"github.com/seantiz/roster/internal/catalog"
	"github.com/seantiz/roster/internal/config"
	"github.com/seantiz/roster/internal/engine"
	"github.com/seantiz/roster/internal/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger := config.NewLogger(os.Stdout, cfg.LogLevel)

	logger.Info("roster: starting",
		"listen_addr", cfg.ListenAddr,
		"catalog_path", cfg.CatalogPath,
	)

	seed, err := catalog.Load(context.Background(), cfg.CatalogPath)
	if err != nil {
		log.Fatalf("failed to load catalog: %v", err)
	}

	s, err := store.NewMemoryStore(seed)
	if err != nil {
		log.Fatalf("invalid catalog: %v", err)
	}
	logger.Info("catalog loaded", "activities", len(seed))

	eng := engine.NewEngine(s, logger)
	srv := api.NewServer(cfg.ListenAddr, eng, logger,
		api.WithRateLimit(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
