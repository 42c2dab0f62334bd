// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"testing"

	"github.com/danielhkuo/nm-draw-odds/draw"
	"github.com/danielhkuo/nm-draw-odds/testutil"
)

// setupDrawDB creates a database with a few elk hunts in GMU 34 and one
// deer hunt.
func setupDrawDB(t *testing.T) *sql.DB {
	t.Helper()
	db := testutil.SetupTestDB(t)

	elk := []struct {
		code   string
		unit   string
		apps   int64
		lics   int64
		rate   float64
		season string
	}{
		{"ELK-1-100", "Unit 34, 36", 1000, 50, 0.40, "Elk rifle"},
		{"ELK-1-200", "Unit 34", 500, 60, 0.30, "Elk rifle late"},
		{"ELK-2-300", "Units 16A and 34", 100, 30, 0.20, "Elk archery"},
	}
	for _, e := range elk {
		id := testutil.CreateTestHunt(t, db, testutil.Hunt{Code: e.code, Species: "ELK", UnitDescription: e.unit, BagCode: "MB"})
		testutil.AddTestDraw(t, db, id, map[draw.Pool]testutil.Counts{
			draw.PoolResident:    {Applications: e.apps, Licenses: e.lics},
			draw.PoolNonresident: {Applications: e.apps / 10, Licenses: 1},
		})
		testutil.AddTestDates(t, db, id, e.season, "2026-10-01", "2026-10-05")
		testutil.AddTestHarvest(t, db, id, 2024, "Public", e.rate)
	}

	deer := testutil.CreateTestHunt(t, db, testutil.Hunt{Code: "DER-1-100", Species: "DER", UnitDescription: "Unit 2B"})
	testutil.AddTestDraw(t, db, deer, map[draw.Pool]testutil.Counts{
		draw.PoolResident: {Applications: 4000, Licenses: 40},
	})
	testutil.AddTestDates(t, db, deer, "Deer rifle", "2026-10-25", "2026-10-29")

	return db
}
