// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the SQLite database and manages its schema and lookup seed.

# Opening

The API server attaches read-only; the loader attaches read-write:

	conn, err := db.Open(ctx, "nm_hunts.db", db.ReadOnly)

Both modes enable foreign keys. The driver is modernc.org/sqlite.

# Schema Creation

CreateSchema initializes all required tables and views:

	if err := db.CreateSchema(ctx, conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS everywhere.

# Tables

  - species: species code and common name
  - bag_limits: bag code, label and plain-language definition
  - hunts: hunt code, species, optional bag limit, unit description
  - hunt_gmus: GMU numbers per hunt (cleared on every load)
  - draw_results: applications, licenses and results per pool per draw year
  - hunt_dates: season dates and hunt name per season year
  - harvest_stats: success rate and effort per harvest year and access type

# Relationships

	species 1──* hunts
	bag_limits 1──* hunts (optional)
	hunts 1──* draw_results
	hunts 1──* hunt_dates
	hunts 1──* harvest_stats
	hunts 1──* hunt_gmus

# Views

  - hunt_summary_view: hunts with species and bag code
  - harvest_public_view: Public harvest rows with hunt code

# Seed

species and bag_limits are lookup tables maintained from seed.yaml:

	seed, err := db.DefaultSeed()
	err = db.ApplySeed(ctx, conn, seed)

Rows are upserted by code, so ids referenced by hunts survive a reseed.
*/
package db
