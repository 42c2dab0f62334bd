// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines the JSON request and response types of the API.

# Request Types

  - ApplicationPlanRequest: pool, species_code, choices (three hunt codes)

# Response Types

  - DrawOddsResponse: pool, pool_label, draw_year, season_year, results
  - HuntsResponse: hunts
  - BestHuntsResponse: pool, pool_label, draw_year, results
  - ApplicationPlanResponse: choices, logical_order, application_odds, one_in_n, advice
  - BagLimitsResponse: bag_limits
  - ErrorResponse: error

# Nullable Fields

Pointer fields encode as JSON null when the database has no value, e.g. a
hunt with no Public harvest report has "success_rate": null. Lists are
never null; an empty result is [].
*/
package models
