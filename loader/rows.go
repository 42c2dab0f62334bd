// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package loader

import (
	"database/sql"
	"strings"
)

// File names inside the data directory.
const (
	HuntsFile   = "hunts_table_2025_units_species.csv"
	DrawFile    = "draw_results_2025_clean.csv"
	DatesFile   = "hunt_dates_2024_2026_combined.csv"
	HarvestFile = "harvest_reports_public_with_licenses_2016_2024_cleaned.csv"
)

var huntColumns = []string{"hunt_code", "unit_description", "bag", "species"}

type huntRow struct {
	HuntCode        string `csv:"hunt_code"`
	UnitDescription string `csv:"unit_description"`
	Bag             string `csv:"bag"`
	Species         string `csv:"species"`
}

var drawColumns = []string{
	"hunt_code",
	"year",
	"resident_applications",
	"non_resident_applications",
	"outfitter_applications",
	"licenses_total",
	"resident_licenses",
	"non_resident_licenses",
	"outfitter_licenses",
	"resident_results",
	"non_resident_results",
	"outfitter_results",
}

// Counts are floats because spreadsheet exports write "12.0".
type drawRow struct {
	HuntCode                string   `csv:"hunt_code"`
	Year                    int      `csv:"year"`
	ResidentApplications    *float64 `csv:"resident_applications"`
	NonresidentApplications *float64 `csv:"non_resident_applications"`
	OutfitterApplications   *float64 `csv:"outfitter_applications"`
	LicensesTotal           *float64 `csv:"licenses_total"`
	ResidentLicenses        *float64 `csv:"resident_licenses"`
	NonresidentLicenses     *float64 `csv:"non_resident_licenses"`
	OutfitterLicenses       *float64 `csv:"outfitter_licenses"`
	ResidentResults         *float64 `csv:"resident_results"`
	NonresidentResults      *float64 `csv:"non_resident_results"`
	OutfitterResults        *float64 `csv:"outfitter_results"`
}

var dateColumns = []string{"year", "hunt_code", "start_date", "end_date", "hunt_name"}

type dateRow struct {
	Year      int    `csv:"year"`
	HuntCode  string `csv:"hunt_code"`
	StartDate string `csv:"start_date"`
	EndDate   string `csv:"end_date"`
	HuntName  string `csv:"hunt_name"`
}

var harvestColumns = []string{"year", "hunt_code", "success_rate", "satisfaction", "days_hunted", "licenses_sold"}

type harvestRow struct {
	Year         int      `csv:"year"`
	HuntCode     string   `csv:"hunt_code"`
	SuccessRate  *float64 `csv:"success_rate"`
	Satisfaction *float64 `csv:"satisfaction"`
	DaysHunted   *float64 `csv:"days_hunted"`
	LicensesSold *float64 `csv:"licenses_sold"`
}

// countOrZero loads a blank count cell as 0.
func countOrZero(v *float64) int64 {
	if v == nil {
		return 0
	}
	return int64(*v)
}

func nullFloat(v *float64) sql.NullFloat64 {
	if v == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *v, Valid: true}
}

// nullText trims s and maps blank to NULL.
func nullText(s string) sql.NullString {
	s = strings.TrimSpace(s)
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}
