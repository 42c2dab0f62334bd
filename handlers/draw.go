// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/danielhkuo/nm-draw-odds/draw"
	"github.com/danielhkuo/nm-draw-odds/metrics"
	"github.com/danielhkuo/nm-draw-odds/middleware"
	"github.com/danielhkuo/nm-draw-odds/models"
)

type DrawHandler struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

func NewDrawHandler(db *sql.DB, m *metrics.Metrics) *DrawHandler {
	return &DrawHandler{db: db, metrics: m}
}

// DrawOdds handles GET /api/draw_odds?pool=&weapon=&species_code=&gmu=
// Returns up to 50 hunts in the GMU, most applied-for first
func (h *DrawHandler) DrawOdds(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pool, err := draw.ParsePoolParam(q.Get("pool"), q.Has("pool"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	speciesCode := q.Get("species_code")
	if speciesCode == "" {
		h.badRequest(w, r, draw.ErrSpeciesRequired)
		return
	}

	gmu, err := strconv.Atoi(strings.TrimSpace(q.Get("gmu")))
	if err != nil {
		h.badRequest(w, r, draw.ErrGMURequired)
		return
	}

	results, err := draw.FindDrawOdds(r.Context(), h.db, draw.DrawOddsParams{
		Pool:        pool,
		Weapon:      weaponParam(q.Get("weapon")),
		SpeciesCode: speciesCode,
		GMU:         gmu,
	})
	if err != nil {
		h.databaseError(w, r, "failed to query draw odds", err)
		return
	}
	h.metrics.RecordResultRows("draw_odds", len(results))

	middleware.JSONResponse(w, http.StatusOK, models.DrawOddsResponse{
		Pool:       string(pool),
		PoolLabel:  pool.Label(),
		DrawYear:   draw.DrawYear,
		SeasonYear: draw.SeasonYear,
		Results:    results,
	})
}

// Hunts handles GET /api/hunts?species_code=
// Lists active hunts for the species, ordered by hunt code
func (h *DrawHandler) Hunts(w http.ResponseWriter, r *http.Request) {
	speciesCode := r.URL.Query().Get("species_code")
	if speciesCode == "" {
		h.badRequest(w, r, draw.ErrSpeciesRequired)
		return
	}

	hunts, err := draw.ListHunts(r.Context(), h.db, speciesCode)
	if err != nil {
		h.databaseError(w, r, "failed to query hunts", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.HuntsResponse{Hunts: hunts})
}

// BestHunts handles GET /api/best_hunts?pool=&species_code=&weapon=
// Returns the top 10 hunts by success rate times draw odds
func (h *DrawHandler) BestHunts(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	pool, err := draw.ParsePoolParam(q.Get("pool"), q.Has("pool"))
	if err != nil {
		h.badRequest(w, r, err)
		return
	}

	speciesCode := q.Get("species_code")
	if speciesCode == "" {
		h.badRequest(w, r, draw.ErrSpeciesRequired)
		return
	}

	results, err := draw.FindBestHunts(r.Context(), h.db, pool, speciesCode, weaponParam(q.Get("weapon")))
	if err != nil {
		h.databaseError(w, r, "failed to query best hunts", err)
		return
	}
	h.metrics.RecordResultRows("best_hunts", len(results))

	middleware.JSONResponse(w, http.StatusOK, models.BestHuntsResponse{
		Pool:      string(pool),
		PoolLabel: pool.Label(),
		DrawYear:  draw.DrawYear,
		Results:   results,
	})
}

// BagLimits handles GET /api/bag_limits
func (h *DrawHandler) BagLimits(w http.ResponseWriter, r *http.Request) {
	limits, err := draw.ListBagLimits(r.Context(), h.db)
	if err != nil {
		h.databaseError(w, r, "failed to query bag limits", err)
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.BagLimitsResponse{BagLimits: limits})
}

func (h *DrawHandler) badRequest(w http.ResponseWriter, r *http.Request, err error) {
	badRequest(w, r, h.metrics, err)
}

func (h *DrawHandler) databaseError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	databaseError(w, r, h.metrics, msg, err)
}

func badRequest(w http.ResponseWriter, r *http.Request, m *metrics.Metrics, err error) {
	m.RecordError(r.Pattern, "validation")
	middleware.ErrorResponse(w, http.StatusBadRequest, err.Error())
}

func databaseError(w http.ResponseWriter, r *http.Request, m *metrics.Metrics, msg string, err error) {
	slog.Error(msg, "error", err, "request_id", middleware.RequestID(r.Context()))
	m.RecordError(r.Pattern, "database")
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Database error")
}

// weaponParam defaults a missing weapon to "all".
func weaponParam(s string) string {
	if s == "" {
		return "all"
	}
	return s
}
