// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the NM draw odds API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, m)

A nil *metrics.Metrics disables /metrics and request recording.

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Draw statistics:

	GET /api/draw_odds?pool=&weapon=&species_code=&gmu= - Odds for hunts in a GMU
	GET /api/hunts?species_code=                       - Hunt picker list
	GET /api/best_hunts?pool=&species_code=&weapon=    - Top 10 by success × odds
	GET /api/bag_limits                                - Bag limit glossary

Application advice:

	POST /api/application_plan - Check the order of three choices

Static files:

	GET / - index.html and assets from cfg.StaticDir

# Handler Initialization

	drawHandler := handlers.NewDrawHandler(db, m)
	planHandler := handlers.NewPlanHandler(db, m)

API routes are wrapped with request logging and metrics.
*/
package router
