// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/nm-draw-odds/cliparse"
	"github.com/danielhkuo/nm-draw-odds/handlers"
	"github.com/danielhkuo/nm-draw-odds/metrics"
	"github.com/danielhkuo/nm-draw-odds/middleware"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, m *metrics.Metrics) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	drawHandler := handlers.NewDrawHandler(db, m)
	planHandler := handlers.NewPlanHandler(db, m)

	api := func(h http.HandlerFunc) http.HandlerFunc {
		return middleware.WithLogging(middleware.WithMetrics(m, h))
	}

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Prometheus metrics
	if m != nil {
		mux.Handle("GET /metrics", m.Handler())
	}

	// Draw statistics (read-only)
	mux.HandleFunc("GET /api/draw_odds", api(drawHandler.DrawOdds))
	mux.HandleFunc("GET /api/hunts", api(drawHandler.Hunts))
	mux.HandleFunc("GET /api/best_hunts", api(drawHandler.BestHunts))
	mux.HandleFunc("GET /api/bag_limits", api(drawHandler.BagLimits))

	// Application advice
	mux.HandleFunc("POST /api/application_plan", api(planHandler.ApplicationPlan))

	// Static frontend (index.html at /)
	mux.Handle("GET /", http.FileServer(http.Dir(cfg.StaticDir)))

	return mux
}
