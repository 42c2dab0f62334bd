// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"math"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/nm-draw-odds/models"
	"github.com/danielhkuo/nm-draw-odds/testutil"
)

func TestDrawOdds(t *testing.T) {
	db := setupDrawDB(t)
	handler := NewDrawHandler(db, nil)

	req := httptest.NewRequest("GET", "/api/draw_odds?species_code=ELK&gmu=34", nil)
	w := httptest.NewRecorder()
	handler.DrawOdds(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.DrawOddsResponse
	testutil.AssertJSON(t, w, &resp)

	if resp.Pool != "resident" || resp.PoolLabel != "Resident" {
		t.Errorf("Expected default resident pool, got %q (%q)", resp.Pool, resp.PoolLabel)
	}
	if resp.DrawYear != 2025 || resp.SeasonYear != 2026 {
		t.Errorf("Unexpected years: draw %d season %d", resp.DrawYear, resp.SeasonYear)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("Expected 3 results, got %d", len(resp.Results))
	}

	wantOrder := []string{"ELK-1-100", "ELK-1-200", "ELK-2-300"}
	for i, code := range wantOrder {
		if resp.Results[i].HuntCode != code {
			t.Errorf("Result %d: expected %s, got %s", i, code, resp.Results[i].HuntCode)
		}
	}
	if math.Abs(resp.Results[0].DrawOdds-0.05) > 1e-9 {
		t.Errorf("Expected odds 0.05, got %f", resp.Results[0].DrawOdds)
	}
}

func TestDrawOddsWeaponFilter(t *testing.T) {
	db := setupDrawDB(t)
	handler := NewDrawHandler(db, nil)

	tests := []struct {
		weapon   string
		expected int
	}{
		{"all", 3},
		{"rifle", 2},
		{"archery", 1},
		{"muzzleloader", 0},
		{"slingshot", 3},
	}

	for _, tt := range tests {
		t.Run(tt.weapon, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/draw_odds?species_code=ELK&gmu=34&weapon="+tt.weapon, nil)
			w := httptest.NewRecorder()
			handler.DrawOdds(w, req)

			testutil.AssertStatus(t, w, http.StatusOK)

			var resp models.DrawOddsResponse
			testutil.AssertJSON(t, w, &resp)
			if len(resp.Results) != tt.expected {
				t.Errorf("Expected %d results, got %d", tt.expected, len(resp.Results))
			}
		})
	}
}

func TestDrawOddsValidation(t *testing.T) {
	db := setupDrawDB(t)
	handler := NewDrawHandler(db, nil)

	tests := []struct {
		name    string
		query   string
		wantErr string
	}{
		{"invalid pool", "?pool=foo&species_code=ELK&gmu=34", "Invalid pool"},
		{"invalid pool wins over missing species", "?pool=foo", "Invalid pool"},
		{"empty pool", "?pool=&species_code=ELK&gmu=34", "Invalid pool"},
		{"missing species", "?gmu=34", "species_code is required"},
		{"missing gmu", "?species_code=ELK", "gmu is required"},
		{"non-numeric gmu", "?species_code=ELK&gmu=abc", "gmu is required"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/draw_odds"+tt.query, nil)
			w := httptest.NewRecorder()
			handler.DrawOdds(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			if resp.Error != tt.wantErr {
				t.Errorf("Expected error %q, got %q", tt.wantErr, resp.Error)
			}
		})
	}
}

func TestDrawOddsEmptyResults(t *testing.T) {
	db := setupDrawDB(t)
	handler := NewDrawHandler(db, nil)

	req := httptest.NewRequest("GET", "/api/draw_odds?species_code=ORX&gmu=34", nil)
	w := httptest.NewRecorder()
	handler.DrawOdds(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	// results must be an empty array, not null
	body := w.Body.String()
	var resp models.DrawOddsResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Results == nil || len(resp.Results) != 0 {
		t.Errorf("Expected empty results array, body: %s", body)
	}
}

func TestHunts(t *testing.T) {
	db := setupDrawDB(t)
	handler := NewDrawHandler(db, nil)

	req := httptest.NewRequest("GET", "/api/hunts?species_code=ELK", nil)
	w := httptest.NewRecorder()
	handler.Hunts(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.HuntsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.Hunts) != 3 {
		t.Fatalf("Expected 3 hunts, got %d", len(resp.Hunts))
	}
	if resp.Hunts[0].Label != "ELK-1-100 - Unit 34, 36" {
		t.Errorf("Unexpected label %q", resp.Hunts[0].Label)
	}

	req = httptest.NewRequest("GET", "/api/hunts", nil)
	w = httptest.NewRecorder()
	handler.Hunts(w, req)
	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestBestHunts(t *testing.T) {
	db := setupDrawDB(t)
	handler := NewDrawHandler(db, nil)

	req := httptest.NewRequest("GET", "/api/best_hunts?species_code=ELK", nil)
	w := httptest.NewRecorder()
	handler.BestHunts(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.BestHuntsResponse
	testutil.AssertJSON(t, w, &resp)

	// scores: 300 = 0.30*0.20, 200 = 0.12*0.30, 100 = 0.05*0.40
	wantOrder := []string{"ELK-2-300", "ELK-1-200", "ELK-1-100"}
	if len(resp.Results) != len(wantOrder) {
		t.Fatalf("Expected %d results, got %d", len(wantOrder), len(resp.Results))
	}
	for i, code := range wantOrder {
		if resp.Results[i].HuntCode != code {
			t.Errorf("Rank %d: expected %s, got %s", i+1, code, resp.Results[i].HuntCode)
		}
		if resp.Results[i].Note == "" {
			t.Errorf("Rank %d has no note", i+1)
		}
	}
	if math.Abs(resp.Results[0].Score-0.06) > 1e-9 {
		t.Errorf("Expected score 0.06, got %f", resp.Results[0].Score)
	}
}

func TestBestHuntsValidation(t *testing.T) {
	db := setupDrawDB(t)
	handler := NewDrawHandler(db, nil)

	for _, query := range []string{"?pool=guide&species_code=ELK", "?pool=&species_code=ELK", "?pool=resident"} {
		req := httptest.NewRequest("GET", "/api/best_hunts"+query, nil)
		w := httptest.NewRecorder()
		handler.BestHunts(w, req)
		testutil.AssertStatus(t, w, http.StatusBadRequest)
	}
}

func TestBagLimits(t *testing.T) {
	db := setupDrawDB(t)
	handler := NewDrawHandler(db, nil)

	req := httptest.NewRequest("GET", "/api/bag_limits", nil)
	w := httptest.NewRecorder()
	handler.BagLimits(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var resp models.BagLimitsResponse
	testutil.AssertJSON(t, w, &resp)
	if len(resp.BagLimits) == 0 {
		t.Fatal("Expected seeded bag limits")
	}
	for i := 1; i < len(resp.BagLimits); i++ {
		if resp.BagLimits[i-1].BagCode >= resp.BagLimits[i].BagCode {
			t.Errorf("Bag limits not sorted: %s before %s", resp.BagLimits[i-1].BagCode, resp.BagLimits[i].BagCode)
		}
	}
}

func TestDatabaseErrorReturns500(t *testing.T) {
	db := setupDrawDB(t)
	handler := NewDrawHandler(db, nil)
	db.Close()

	req := httptest.NewRequest("GET", "/api/bag_limits", nil)
	w := httptest.NewRecorder()
	handler.BagLimits(w, req)

	testutil.AssertStatus(t, w, http.StatusInternalServerError)

	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	if resp.Error != "Database error" {
		t.Errorf("Expected 'Database error', got %q", resp.Error)
	}
}
