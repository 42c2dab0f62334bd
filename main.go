package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/danielhkuo/nm-draw-odds/cliparse"
	"github.com/danielhkuo/nm-draw-odds/db"
	"github.com/danielhkuo/nm-draw-odds/metrics"
	"github.com/danielhkuo/nm-draw-odds/middleware"
	"github.com/danielhkuo/nm-draw-odds/router"
)

func main() {
	var err error

	cliparse.LoadDotEnv(".env")

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Open SQLite read-only; the loader is the only writer
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	dbConn, err := db.Open(ctx, cfg.DatabasePath, db.ReadOnly)
	cancel()
	if err != nil {
		slog.Error("database connection failed", "error", err, "path", cfg.DatabasePath)
		os.Exit(1)
	}
	defer dbConn.Close()
	slog.Info("Database ready", "path", cfg.DatabasePath)

	m, err := metrics.New()
	if err != nil {
		slog.Error("metrics registration failed", "error", err)
		os.Exit(1)
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, m)

	// Create server
	server := http.Server{
		Handler:           middleware.WithRequestID(middleware.CORS(mux)),
		Addr:              ":" + strconv.Itoa(cfg.Port),
		ReadHeaderTimeout: 10 * time.Second,
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(shutdownCtx)
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
