// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/danielhkuo/nm-draw-odds/draw"
	"github.com/danielhkuo/nm-draw-odds/metrics"
	"github.com/danielhkuo/nm-draw-odds/middleware"
	"github.com/danielhkuo/nm-draw-odds/models"
)

type PlanHandler struct {
	db      *sql.DB
	metrics *metrics.Metrics
}

func NewPlanHandler(db *sql.DB, m *metrics.Metrics) *PlanHandler {
	return &PlanHandler{db: db, metrics: m}
}

// ApplicationPlan handles POST /api/application_plan
// Checks that three choices run from hardest to easiest to draw
func (h *PlanHandler) ApplicationPlan(w http.ResponseWriter, r *http.Request) {
	var req models.ApplicationPlanRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			badRequest(w, r, h.metrics, fmt.Errorf("Invalid type for field %s", typeErr.Field))
			return
		}
		// a body that is not JSON at all is treated as an empty request
		req = models.ApplicationPlanRequest{}
	}

	pool, err := draw.ParsePoolJSON(req.Pool)
	if err != nil {
		badRequest(w, r, h.metrics, err)
		return
	}
	if req.SpeciesCode == "" {
		badRequest(w, r, h.metrics, draw.ErrSpeciesRequired)
		return
	}
	if err := draw.ValidateChoices(req.Choices); err != nil {
		badRequest(w, r, h.metrics, err)
		return
	}

	counts, speciesName, err := draw.LookupChoices(r.Context(), h.db, pool, req.SpeciesCode, req.Choices)
	if err != nil {
		databaseError(w, r, h.metrics, "failed to query plan choices", err)
		return
	}

	resp := draw.EvaluatePlan(pool, req.SpeciesCode, req.Choices, counts, speciesName)
	h.metrics.RecordPlan(resp.LogicalOrder)

	middleware.JSONResponse(w, http.StatusOK, resp)
}
