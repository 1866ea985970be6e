// cmd/server/main.go
package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"fieldops/internal/config"
	"fieldops/internal/handlers"
	"fieldops/internal/logging"
	"fieldops/internal/middleware"
	"fieldops/internal/repo"
	"fieldops/internal/service"
	"fieldops/internal/telemetry"
)

func main() {
	// --- Load config (config.yaml + env overrides) ---
	cfg := config.Load()

	// --- Logger ---
	logging.Setup(cfg.Logging.Level, cfg.Logging.Format == "json")

	// --- Store ---
	ctx := context.Background()
	var st repo.Store
	switch cfg.Store {
	case "postgres":
		slog.Debug("connecting to database")
		pg, err := repo.NewPostgres(ctx, cfg.Database.URL)
		if err != nil {
			slog.Error("db connect error", "err", err)
			os.Exit(1)
		}
		defer pg.Close()
		if err := pg.Ping(ctx); err != nil {
			slog.Error("db ping error", "err", err)
			os.Exit(1)
		}
		if err := pg.RunMigrations(ctx); err != nil {
			slog.Error("migration error", "err", err)
			os.Exit(1)
		}
		slog.Debug("database connection ready")
		st = pg.Store()
	default:
		mem := repo.NewMemory()
		st = mem.Store()
		if cfg.Seed {
			if err := repo.Seed(ctx, st); err != nil {
				slog.Error("seed error", "err", err)
				os.Exit(1)
			}
			slog.Debug("memory store seeded")
		}
	}

	svcs := service.New(st)

	// --- Router ---
	mux := chi.NewRouter()

	// Ensure request ID then log requests with slog
	mux.Use(middleware.RequestID(cfg.Security.RequestID.TrustHeader))
	mux.Use(middleware.SlogRequestLogger)
	if cfg.Security.RateLimit.Enabled {
		mux.Use(middleware.RateLimitWith(cfg.Security.RateLimit.RequestsPerMinute, cfg.Security.RateLimit.Burst, cfg.Security.RateLimit.TTL))
	}

	// --- CORS middleware ---
	mux.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000", "http://127.0.0.1:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	mux.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	mux.Handle("/metrics", telemetry.Handler())

	handlers.RegisterRoutes(mux, svcs)

	slog.Info("server listening", "addr", cfg.HTTP.Addr, "store", cfg.Store)
	if err := http.ListenAndServe(cfg.HTTP.Addr, mux); err != nil {
		slog.Error("server error", "err", err)
		os.Exit(1)
	}
}
