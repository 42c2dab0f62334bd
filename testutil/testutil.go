// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/nm-draw-odds/cliparse"
	"github.com/danielhkuo/nm-draw-odds/db"
	"github.com/danielhkuo/nm-draw-odds/draw"
)

// SetupTestDB creates a fresh in-memory database with the full schema and
// the bundled species and bag limit seed. It is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := sql.Open(db.DriverName, "file::memory:?_pragma=foreign_keys(1)")
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	// every connection to :memory: is its own database
	conn.SetMaxOpenConns(1)
	t.Cleanup(func() { conn.Close() })

	ctx := context.Background()
	if err := db.CreateSchema(ctx, conn); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	seed, err := db.DefaultSeed()
	if err != nil {
		t.Fatalf("Failed to parse seed: %v", err)
	}
	if err := db.ApplySeed(ctx, conn, seed); err != nil {
		t.Fatalf("Failed to apply seed: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:         cliparse.DefaultPort,
		DatabasePath: ":memory:",
		StaticDir:    "testdata",
	}
}

// Hunt describes a hunt fixture. Zero-valued optional fields are stored as NULL.
type Hunt struct {
	Code            string
	Species         string
	UnitDescription string
	BagCode         string
	Inactive        bool
}

// CreateTestHunt inserts a hunt and returns its id
func CreateTestHunt(t *testing.T, conn *sql.DB, h Hunt) int64 {
	t.Helper()

	var unitDesc, bagCode sql.NullString
	if h.UnitDescription != "" {
		unitDesc = sql.NullString{String: h.UnitDescription, Valid: true}
	}
	if h.BagCode != "" {
		bagCode = sql.NullString{String: h.BagCode, Valid: true}
	}
	active := 1
	if h.Inactive {
		active = 0
	}

	res, err := conn.Exec(`
		INSERT INTO hunts (hunt_code, species_id, bag_limit_id, unit_description, is_active)
		VALUES (
			?,
			(SELECT species_id FROM species WHERE species_code = ?),
			(SELECT bag_limit_id FROM bag_limits WHERE bag_code = ?),
			?, ?
		)
	`, h.Code, h.Species, bagCode, unitDesc, active)
	if err != nil {
		t.Fatalf("Failed to create test hunt %s: %v", h.Code, err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		t.Fatalf("Failed to read hunt id: %v", err)
	}
	return id
}

// Counts are applications and licenses for one pool.
type Counts struct {
	Applications int64
	Licenses     int64
}

// AddTestDraw inserts a draw result for the fixed draw year. Pools missing
// from counts are stored as NULL.
func AddTestDraw(t *testing.T, conn *sql.DB, huntID int64, counts map[draw.Pool]Counts) {
	t.Helper()
	AddTestDrawYear(t, conn, huntID, draw.DrawYear, counts)
}

// AddTestDrawYear inserts a draw result for an arbitrary year.
func AddTestDrawYear(t *testing.T, conn *sql.DB, huntID int64, year int, counts map[draw.Pool]Counts) {
	t.Helper()

	vals := make([]any, 0, 6)
	for _, p := range draw.Pools {
		c, ok := counts[p]
		if !ok {
			vals = append(vals, nil, nil)
			continue
		}
		vals = append(vals, c.Applications, c.Licenses)
	}

	_, err := conn.Exec(`
		INSERT INTO draw_results (
			hunt_id, draw_year,
			resident_applications, resident_licenses,
			nonresident_applications, nonresident_licenses,
			outfitter_applications, outfitter_licenses
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, append([]any{huntID, year}, vals...)...)
	if err != nil {
		t.Fatalf("Failed to create test draw result: %v", err)
	}
}

// AddTestDates inserts season dates for the fixed season year.
func AddTestDates(t *testing.T, conn *sql.DB, huntID int64, name, start, end string) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO hunt_dates (hunt_id, season_year, start_date, end_date, hunt_name)
		VALUES (?, ?, ?, ?, ?)
	`, huntID, draw.SeasonYear, start, end, name)
	if err != nil {
		t.Fatalf("Failed to create test hunt dates: %v", err)
	}
}

// AddTestHarvest inserts a harvest stat row.
func AddTestHarvest(t *testing.T, conn *sql.DB, huntID int64, year int, accessType string, successRate float64) {
	t.Helper()

	_, err := conn.Exec(`
		INSERT INTO harvest_stats (hunt_id, harvest_year, access_type, success_rate)
		VALUES (?, ?, ?, ?)
	`, huntID, year, accessType, successRate)
	if err != nil {
		t.Fatalf("Failed to create test harvest stat: %v", err)
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
