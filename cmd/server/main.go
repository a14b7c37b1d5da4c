package main

import (
	"log/slog"
	"net/http"
	"os"

	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"

	"github.com/insama/insama/internal/config"
	"github.com/insama/insama/internal/server"
	"github.com/insama/insama/internal/storage/sqlite"
	"github.com/insama/insama/pkg/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}

	logging.Setup(cfg.Log.Level)

	store, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		slog.Error("Failed to initialize storage", "error", err)
		os.Exit(1)
	}
	defer store.Close()
	slog.Info("Storage initialized", "database", cfg.DB.Path)

	handler := server.New(store, cfg.Server.BaseURL).Handler()

	// h2c allows HTTP/2 without TLS behind a plain listener.
	h2cHandler := h2c.NewHandler(handler, &http2.Server{})

	addr := cfg.Server.Addr()
	slog.Info("Server starting", "address", addr, "base_url", cfg.Server.BaseURL)
	if err := http.ListenAndServe(addr, h2cHandler); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
