// testserver starts a roster API server on the built-in catalog with an extra
// POST /testing/reset route that restores the seed between E2E test cases.
// Usage: go run ./cmd/testserver
package main

import (
	"log"
	"log/slog"
	"net/http"
	"os"

	"github.com/seantiz/roster/internal/api"
	"github.com/seantiz/roster/internal/catalog"
	"github.com/seantiz/roster/internal/engine"
	"github.com/seantiz/roster/internal/store"
)

func main() {
	addr := ":8080"
	if v := os.Getenv("ROSTER_LISTEN_ADDR"); v != "" {
		addr = v
	}

	s, err := store.NewMemoryStore(catalog.Default())
	if err != nil {
		log.Fatalf("failed to build store: %v", err)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	eng := engine.NewEngine(s, logger)
	srv := api.NewServer(addr, eng, logger)

	srv.Router().Post("/testing/reset", func(w http.ResponseWriter, _ *http.Request) {
		eng.Reset()
		w.WriteHeader(http.StatusNoContent)
	})

	logger.Info("testserver: starting", "addr", addr)
	if err := srv.Run(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
