// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package draw computes New Mexico big-game draw odds, best-hunt
recommendations and three-choice application advice.

# Lookup Tables

Pools select which draw_results columns a query reads:

	pool, err := draw.ParsePool("nonresident")

Weapons map to the digit embedded in hunt codes (rifle 1, archery 2,
muzzleloader 3). Any other weapon value, including "all", means no filter.

# Queries

SQL statements are rendered once per pool from templates at package
init. Request values only ever travel as positional parameters:

	q, err := draw.DrawOddsQuery(draw.DrawOddsParams{
		Pool:        draw.PoolResident,
		SpeciesCode: "ELK",
		GMU:         16,
	})
	rows, err := db.QueryContext(ctx, q.SQL, q.Args...)

GMUFilter matches a unit number inside the free-text unit description
using five LIKE patterns; formats outside them are not found.

The harvest join always picks the latest harvest year with Public data
for each hunt.

# Odds and Scores

	odds  = licenses / applications   (0 when either is missing or zero)
	score = success_rate * odds

# Notes

ClassifyNote tiers odds into high (>= 0.25), mid (>= 0.10) and low, then
picks one of three fixed sentences using the last character of the hunt
code mod 3. The same hunt always gets the same sentence.

# Application Plans

EvaluatePlan checks that three choices run from hardest to easiest to
draw (within OrderTolerance) and reports the best single-choice odds as
the overall application odds.
*/
package draw
