// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command loader clears and reloads the hunt database from CSV snapshots.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/danielhkuo/nm-draw-odds/cliparse"
	"github.com/danielhkuo/nm-draw-odds/db"
	"github.com/danielhkuo/nm-draw-odds/loader"
)

func main() {
	cliparse.LoadDotEnv(".env")

	cfg, err := cliparse.ParseLoaderFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	slog.Info("using database", "path", cfg.DatabasePath)
	conn, err := db.Open(ctx, cfg.DatabasePath, db.ReadWrite)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer conn.Close()

	if cfg.InitSchema {
		if err := db.CreateSchema(ctx, conn); err != nil {
			slog.Error("schema creation failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Database schema ready")
	}

	if cfg.Seed {
		seed, err := db.DefaultSeed()
		if err == nil {
			err = db.ApplySeed(ctx, conn, seed)
		}
		if err != nil {
			slog.Error("seeding lookups failed", "error", err)
			os.Exit(1)
		}
		slog.Info("Lookup tables seeded", "species", len(seed.Species), "bag_limits", len(seed.BagLimits))
	}

	if _, err := loader.New(conn, cfg.DataDir).Run(ctx); err != nil {
		slog.Error("load failed", "error", err)
		os.Exit(1)
	}
	slog.Info("Done")
}
