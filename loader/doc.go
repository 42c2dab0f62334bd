// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package loader rebuilds the hunt fact tables from CSV snapshots.

# Running

	l := loader.New(conn, "data")
	summary, err := l.Run(ctx)

Run reads and validates all four CSV files first, then clears
harvest_stats, draw_results, hunt_dates, hunt_gmus and hunts, and loads
them back in dependency order. Each table is committed on its own; the
run as a whole is not transactional.

# Files

	hunts_table_2025_units_species.csv
	draw_results_2025_clean.csv
	hunt_dates_2024_2026_combined.csv
	harvest_reports_public_with_licenses_2016_2024_cleaned.csv

A missing file returns ErrMissingFile. A missing required column returns
ErrMissingColumns. Both abort before anything is deleted.

# Data Problems

These are logged as warnings and reported in Summary, never fatal:

  - species label with no mapping: hunt row skipped
  - bag code not in bag_limits: hunt inserted with a NULL bag
  - repeated hunt code: first row kept
  - draw, date or harvest row for an unknown hunt code: row skipped
  - repeated (year, hunt_code) harvest row: first row kept

Blank draw counts load as 0, blank harvest figures as NULL.
*/
package loader
