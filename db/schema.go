// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package db

import (
	"context"
	"database/sql"
	"fmt"
)

// CreateSchema creates all tables and views needed for the application.
// Safe to call multiple times - uses IF NOT EXISTS.
func CreateSchema(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, schema)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}

	return nil
}

// FactTables are the tables the loader clears and refills, in delete order.
var FactTables = []string{"harvest_stats", "draw_results", "hunt_dates", "hunt_gmus", "hunts"}

const schema = `
-- Species
CREATE TABLE IF NOT EXISTS species (
    species_id INTEGER PRIMARY KEY,
    species_code TEXT NOT NULL UNIQUE,
    common_name TEXT NOT NULL
);

-- Bag limits
CREATE TABLE IF NOT EXISTS bag_limits (
    bag_limit_id INTEGER PRIMARY KEY,
    bag_code TEXT NOT NULL UNIQUE,
    label TEXT NOT NULL,
    plain_definition TEXT
);

-- Hunts
CREATE TABLE IF NOT EXISTS hunts (
    hunt_id INTEGER PRIMARY KEY,
    hunt_code TEXT NOT NULL UNIQUE,
    species_id INTEGER NOT NULL REFERENCES species(species_id),
    bag_limit_id INTEGER REFERENCES bag_limits(bag_limit_id),
    unit_description TEXT,
    is_active INTEGER NOT NULL DEFAULT 1
);

CREATE INDEX IF NOT EXISTS idx_hunts_species_id ON hunts(species_id);

-- GMUs per hunt
CREATE TABLE IF NOT EXISTS hunt_gmus (
    hunt_id INTEGER NOT NULL REFERENCES hunts(hunt_id) ON DELETE CASCADE,
    gmu TEXT NOT NULL,
    PRIMARY KEY (hunt_id, gmu)
);

-- Draw results
CREATE TABLE IF NOT EXISTS draw_results (
    draw_result_id INTEGER PRIMARY KEY,
    hunt_id INTEGER NOT NULL REFERENCES hunts(hunt_id) ON DELETE CASCADE,
    draw_year INTEGER NOT NULL,
    resident_applications INTEGER,
    nonresident_applications INTEGER,
    outfitter_applications INTEGER,
    licenses_total INTEGER,
    resident_licenses INTEGER,
    nonresident_licenses INTEGER,
    outfitter_licenses INTEGER,
    resident_results INTEGER,
    nonresident_results INTEGER,
    outfitter_results INTEGER
);

CREATE INDEX IF NOT EXISTS idx_draw_results_hunt_year ON draw_results(hunt_id, draw_year);

-- Hunt dates
CREATE TABLE IF NOT EXISTS hunt_dates (
    hunt_date_id INTEGER PRIMARY KEY,
    hunt_id INTEGER NOT NULL REFERENCES hunts(hunt_id) ON DELETE CASCADE,
    season_year INTEGER NOT NULL,
    start_date TEXT,
    end_date TEXT,
    hunt_name TEXT,
    notes TEXT
);

CREATE INDEX IF NOT EXISTS idx_hunt_dates_hunt_year ON hunt_dates(hunt_id, season_year);

-- Harvest stats
CREATE TABLE IF NOT EXISTS harvest_stats (
    harvest_stat_id INTEGER PRIMARY KEY,
    hunt_id INTEGER NOT NULL REFERENCES hunts(hunt_id) ON DELETE CASCADE,
    harvest_year INTEGER NOT NULL,
    access_type TEXT NOT NULL DEFAULT 'Public',
    success_rate REAL,
    satisfaction REAL,
    days_hunted REAL,
    licenses_sold REAL
);

CREATE INDEX IF NOT EXISTS idx_harvest_stats_hunt_access ON harvest_stats(hunt_id, access_type, harvest_year);

-- Views
CREATE VIEW IF NOT EXISTS hunt_summary_view AS
SELECT h.hunt_code,
       s.species_code,
       s.common_name AS species_name,
       h.unit_description,
       bl.bag_code,
       h.is_active
FROM hunts h
JOIN species s ON s.species_id = h.species_id
LEFT JOIN bag_limits bl ON bl.bag_limit_id = h.bag_limit_id;

CREATE VIEW IF NOT EXISTS harvest_public_view AS
SELECT h.hunt_code,
       hs.harvest_year,
       hs.success_rate,
       hs.satisfaction,
       hs.days_hunted,
       hs.licenses_sold
FROM harvest_stats hs
JOIN hunts h ON h.hunt_id = hs.hunt_id
WHERE hs.access_type = 'Public';
`
