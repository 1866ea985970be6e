// cmd/mcp/main.go
package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"fieldops/internal/config"
	"fieldops/internal/logging"
	"fieldops/internal/mcp"
	"fieldops/internal/repo"
	"fieldops/internal/service"
)

func main() {
	cfg := config.Load()

	// stdout carries the stdio protocol stream; logs go to stderr.
	logging.SetupWriter(os.Stderr, cfg.Logging.Level, cfg.Logging.Format == "json")

	ctx := context.Background()
	var st repo.Store
	switch cfg.Store {
	case "postgres":
		pg, err := repo.NewPostgres(ctx, cfg.Database.URL)
		if err != nil {
			slog.Error("db connect error", "err", err)
			os.Exit(1)
		}
		defer pg.Close()
		if err := pg.RunMigrations(ctx); err != nil {
			slog.Error("migration error", "err", err)
			os.Exit(1)
		}
		st = pg.Store()
	default:
		mem := repo.NewMemory()
		st = mem.Store()
		if cfg.Seed {
			if err := repo.Seed(ctx, st); err != nil {
				slog.Error("seed error", "err", err)
				os.Exit(1)
			}
		}
	}

	srv := mcp.NewServer(service.New(st))

	slog.Info("mcp server starting", "store", cfg.Store)
	if err := server.ServeStdio(srv); err != nil {
		slog.Error("mcp server error", "err", err)
		os.Exit(1)
	}
}
