// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package loader

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"path/filepath"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/nm-draw-odds/db"
	"github.com/danielhkuo/nm-draw-odds/models"
)

// Loader clears the fact tables and reloads them from the CSV snapshots in
// a data directory. species and bag_limits must already be populated.
type Loader struct {
	db      *sql.DB
	dataDir string
}

func New(conn *sql.DB, dataDir string) *Loader {
	return &Loader{db: conn, dataDir: dataDir}
}

// Summary reports what a load inserted and skipped.
type Summary struct {
	Hunts        int
	DrawResults  int
	HuntDates    int
	HarvestStats int

	MissingSpecies      []string
	MissingBagCodes     []string
	DuplicateHuntCodes  []string
	UnknownDrawCodes    []string
	UnknownDateCodes    []string
	UnknownHarvestCodes []string
	HarvestDuplicates   int

	RowCounts map[string]int
}

type snapshot struct {
	hunts   []huntRow
	draws   []drawRow
	dates   []dateRow
	harvest []harvestRow
}

// Run performs the full clear-and-reload. Every CSV is read and checked
// before any table is touched; a missing file or column aborts the run.
// Each table is committed separately.
func (l *Loader) Run(ctx context.Context) (Summary, error) {
	var sum Summary

	slog.Info("using data dir", "path", l.dataDir)

	snap, err := l.readSnapshot()
	if err != nil {
		return sum, err
	}

	speciesIDs, err := l.codeMap(ctx, "SELECT species_id, species_code FROM species")
	if err != nil {
		return sum, fmt.Errorf("failed to load species codes: %w", err)
	}
	bagIDs, err := l.codeMap(ctx, "SELECT bag_limit_id, bag_code FROM bag_limits")
	if err != nil {
		return sum, fmt.Errorf("failed to load bag codes: %w", err)
	}
	slog.Info("loaded lookup codes", "species", len(speciesIDs), "bag_codes", len(bagIDs))

	if err := l.clearFactTables(ctx); err != nil {
		return sum, err
	}

	if err := l.inTx(ctx, func(tx *sql.Tx) error {
		return loadHunts(ctx, tx, snap.hunts, speciesIDs, bagIDs, &sum)
	}); err != nil {
		return sum, err
	}

	huntIDs, err := l.codeMap(ctx, "SELECT hunt_id, hunt_code FROM hunts")
	if err != nil {
		return sum, fmt.Errorf("failed to build hunt map: %w", err)
	}
	slog.Info("built hunt_code -> hunt_id map", "entries", humanize.Comma(int64(len(huntIDs))))

	steps := []func(tx *sql.Tx) error{
		func(tx *sql.Tx) error { return loadDrawResults(ctx, tx, snap.draws, huntIDs, &sum) },
		func(tx *sql.Tx) error { return loadHuntDates(ctx, tx, snap.dates, huntIDs, &sum) },
		func(tx *sql.Tx) error { return loadHarvestStats(ctx, tx, snap.harvest, huntIDs, &sum) },
	}
	for _, step := range steps {
		if err := l.inTx(ctx, step); err != nil {
			return sum, err
		}
	}

	sum.RowCounts, err = l.rowCounts(ctx)
	if err != nil {
		return sum, err
	}
	for _, table := range []string{"hunts", "draw_results", "hunt_dates", "harvest_stats"} {
		slog.Info("row count after load", "table", table, "rows", humanize.Comma(int64(sum.RowCounts[table])))
	}

	l.logViewSample(ctx, "hunt_summary_view")
	l.logViewSample(ctx, "harvest_public_view")

	return sum, nil
}

func (l *Loader) readSnapshot() (snapshot, error) {
	var snap snapshot
	var err error

	if snap.hunts, err = readCSV[huntRow](filepath.Join(l.dataDir, HuntsFile), huntColumns); err != nil {
		return snap, err
	}
	if snap.draws, err = readCSV[drawRow](filepath.Join(l.dataDir, DrawFile), drawColumns); err != nil {
		return snap, err
	}
	if snap.dates, err = readCSV[dateRow](filepath.Join(l.dataDir, DatesFile), dateColumns); err != nil {
		return snap, err
	}
	if snap.harvest, err = readCSV[harvestRow](filepath.Join(l.dataDir, HarvestFile), harvestColumns); err != nil {
		return snap, err
	}

	return snap, nil
}

// codeMap reads an (id, code) query into a code -> id map.
func (l *Loader) codeMap(ctx context.Context, query string) (map[string]int64, error) {
	rows, err := l.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	m := make(map[string]int64)
	for rows.Next() {
		var id int64
		var code string
		if err := rows.Scan(&id, &code); err != nil {
			return nil, err
		}
		m[code] = id
	}
	return m, rows.Err()
}

func (l *Loader) clearFactTables(ctx context.Context) error {
	slog.Info("clearing existing data from fact tables")
	return l.inTx(ctx, func(tx *sql.Tx) error {
		for _, table := range db.FactTables {
			// table names come from a fixed list
			if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
				return fmt.Errorf("failed to clear %s: %w", table, err)
			}
		}
		return nil
	})
}

func (l *Loader) inTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := l.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func (l *Loader) rowCounts(ctx context.Context) (map[string]int, error) {
	counts := make(map[string]int)
	for _, table := range []string{"hunts", "draw_results", "hunt_dates", "harvest_stats"} {
		var c int
		if err := l.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM "+table).Scan(&c); err != nil {
			return nil, fmt.Errorf("failed to count %s: %w", table, err)
		}
		counts[table] = c
	}
	return counts, nil
}

// logViewSample logs up to five rows of a view. A missing view is only
// logged.
func (l *Loader) logViewSample(ctx context.Context, view string) {
	rows, err := l.db.QueryContext(ctx, "SELECT * FROM "+view+" LIMIT 5")
	if err != nil {
		slog.Warn("could not query view", "view", view, "error", err)
		return
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		slog.Warn("could not read view columns", "view", view, "error", err)
		return
	}

	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			slog.Warn("could not scan view row", "view", view, "error", err)
			return
		}
		attrs := make([]any, 0, 2*len(cols)+2)
		attrs = append(attrs, "view", view)
		for i, c := range cols {
			attrs = append(attrs, c, vals[i])
		}
		slog.Info("sample row", attrs...)
	}
	if err := rows.Err(); err != nil {
		slog.Warn("could not read view", "view", view, "error", err)
	}
}

func loadHunts(ctx context.Context, tx *sql.Tx, rows []huntRow, speciesIDs, bagIDs map[string]int64, sum *Summary) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO hunts (hunt_code, species_id, bag_limit_id, unit_description, is_active)
		VALUES (?, ?, ?, ?, 1)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare hunt insert: %w", err)
	}
	defer stmt.Close()

	missingSpecies := newCodeSet()
	missingBags := newCodeSet()
	duplicates := newCodeSet()
	seen := make(map[string]bool, len(rows))

	for _, row := range rows {
		huntCode := strings.TrimSpace(row.HuntCode)
		if huntCode == "" {
			continue
		}

		rawSpecies := strings.TrimSpace(row.Species)
		speciesID, ok := resolveSpecies(rawSpecies, speciesIDs)
		if !ok {
			missingSpecies.add(rawSpecies)
			continue
		}

		if seen[huntCode] {
			duplicates.add(huntCode)
			continue
		}
		seen[huntCode] = true

		var bagID sql.NullInt64
		if bag := strings.TrimSpace(row.Bag); bag != "" {
			if id, ok := bagIDs[bag]; ok {
				bagID = sql.NullInt64{Int64: id, Valid: true}
			} else {
				missingBags.add(bag)
			}
		}

		if _, err := stmt.ExecContext(ctx, huntCode, speciesID, bagID, nullText(row.UnitDescription)); err != nil {
			return fmt.Errorf("failed to insert hunt %s: %w", huntCode, err)
		}
		sum.Hunts++
	}

	slog.Info("inserted hunts", "rows", humanize.Comma(int64(sum.Hunts)))
	sum.MissingSpecies = missingSpecies.sorted()
	sum.MissingBagCodes = missingBags.sorted()
	sum.DuplicateHuntCodes = duplicates.sorted()
	if len(sum.MissingSpecies) > 0 {
		slog.Warn("missing species mappings, rows skipped", "labels", sum.MissingSpecies)
	}
	if len(sum.MissingBagCodes) > 0 {
		slog.Warn("bag codes not found in bag_limits, set to NULL", "codes", sum.MissingBagCodes)
	}
	if len(sum.DuplicateHuntCodes) > 0 {
		slog.Warn("duplicate hunt codes, first row kept", "codes", sum.DuplicateHuntCodes)
	}
	return nil
}

func loadDrawResults(ctx context.Context, tx *sql.Tx, rows []drawRow, huntIDs map[string]int64, sum *Summary) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO draw_results (
			hunt_id,
			draw_year,
			resident_applications,
			nonresident_applications,
			outfitter_applications,
			licenses_total,
			resident_licenses,
			nonresident_licenses,
			outfitter_licenses,
			resident_results,
			nonresident_results,
			outfitter_results
		)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare draw result insert: %w", err)
	}
	defer stmt.Close()

	unknown := newCodeSet()
	for _, row := range rows {
		huntCode := strings.TrimSpace(row.HuntCode)
		if huntCode == "" {
			continue
		}
		huntID, ok := huntIDs[huntCode]
		if !ok {
			unknown.add(huntCode)
			continue
		}

		_, err := stmt.ExecContext(ctx,
			huntID,
			row.Year,
			countOrZero(row.ResidentApplications),
			countOrZero(row.NonresidentApplications),
			countOrZero(row.OutfitterApplications),
			countOrZero(row.LicensesTotal),
			countOrZero(row.ResidentLicenses),
			countOrZero(row.NonresidentLicenses),
			countOrZero(row.OutfitterLicenses),
			countOrZero(row.ResidentResults),
			countOrZero(row.NonresidentResults),
			countOrZero(row.OutfitterResults),
		)
		if err != nil {
			return fmt.Errorf("failed to insert draw result for %s: %w", huntCode, err)
		}
		sum.DrawResults++
	}

	slog.Info("inserted draw_results rows", "rows", humanize.Comma(int64(sum.DrawResults)))
	sum.UnknownDrawCodes = unknown.sorted()
	if len(sum.UnknownDrawCodes) > 0 {
		slog.Warn("draw_results had hunt codes not found in hunts", "codes", sum.UnknownDrawCodes)
	}
	return nil
}

func loadHuntDates(ctx context.Context, tx *sql.Tx, rows []dateRow, huntIDs map[string]int64, sum *Summary) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO hunt_dates (hunt_id, season_year, start_date, end_date, hunt_name, notes)
		VALUES (?, ?, ?, ?, ?, NULL)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare hunt date insert: %w", err)
	}
	defer stmt.Close()

	unknown := newCodeSet()
	for _, row := range rows {
		huntCode := strings.TrimSpace(row.HuntCode)
		if huntCode == "" {
			continue
		}
		huntID, ok := huntIDs[huntCode]
		if !ok {
			unknown.add(huntCode)
			continue
		}

		// blank hunt names load as "" rather than NULL
		huntName := strings.TrimSpace(row.HuntName)
		if _, err := stmt.ExecContext(ctx, huntID, row.Year, nullText(row.StartDate), nullText(row.EndDate), huntName); err != nil {
			return fmt.Errorf("failed to insert hunt date for %s: %w", huntCode, err)
		}
		sum.HuntDates++
	}

	slog.Info("inserted hunt_dates rows", "rows", humanize.Comma(int64(sum.HuntDates)))
	sum.UnknownDateCodes = unknown.sorted()
	if len(sum.UnknownDateCodes) > 0 {
		slog.Warn("hunt_dates had hunt codes not found in hunts", "codes", sum.UnknownDateCodes)
	}
	return nil
}

func loadHarvestStats(ctx context.Context, tx *sql.Tx, rows []harvestRow, huntIDs map[string]int64, sum *Summary) error {
	stmt, err := tx.PrepareContext(ctx, `
		INSERT INTO harvest_stats (
			hunt_id,
			harvest_year,
			access_type,
			success_rate,
			satisfaction,
			days_hunted,
			licenses_sold
		)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return fmt.Errorf("failed to prepare harvest insert: %w", err)
	}
	defer stmt.Close()

	deduped := dedupeHarvest(rows)
	sum.HarvestDuplicates = countNonBlank(rows) - len(deduped)
	if sum.HarvestDuplicates > 0 {
		slog.Info("deduped harvest rows on (year, hunt_code)", "before", countNonBlank(rows), "after", len(deduped))
	}

	unknown := newCodeSet()
	for _, row := range deduped {
		huntID, ok := huntIDs[row.HuntCode]
		if !ok {
			unknown.add(row.HuntCode)
			continue
		}

		_, err := stmt.ExecContext(ctx,
			huntID,
			row.Year,
			models.AccessPublic,
			nullFloat(row.SuccessRate),
			nullFloat(row.Satisfaction),
			nullFloat(row.DaysHunted),
			nullFloat(row.LicensesSold),
		)
		if err != nil {
			return fmt.Errorf("failed to insert harvest stat for %s: %w", row.HuntCode, err)
		}
		sum.HarvestStats++
	}

	slog.Info("inserted harvest_stats rows", "rows", humanize.Comma(int64(sum.HarvestStats)))
	sum.UnknownHarvestCodes = unknown.sorted()
	if len(sum.UnknownHarvestCodes) > 0 {
		slog.Warn("harvest_stats had hunt codes not found in hunts", "codes", sum.UnknownHarvestCodes)
	}
	return nil
}

// dedupeHarvest drops blank hunt codes and keeps the first row for each
// (year, hunt_code). Hunt codes come back trimmed.
func dedupeHarvest(rows []harvestRow) []harvestRow {
	type key struct {
		year int
		code string
	}
	seen := make(map[key]bool, len(rows))
	out := make([]harvestRow, 0, len(rows))
	for _, row := range rows {
		row.HuntCode = strings.TrimSpace(row.HuntCode)
		if row.HuntCode == "" {
			continue
		}
		k := key{row.Year, row.HuntCode}
		if seen[k] {
			continue
		}
		seen[k] = true
		out = append(out, row)
	}
	return out
}

func countNonBlank(rows []harvestRow) int {
	n := 0
	for _, row := range rows {
		if strings.TrimSpace(row.HuntCode) != "" {
			n++
		}
	}
	return n
}

type codeSet map[string]struct{}

func newCodeSet() codeSet { return codeSet{} }

func (s codeSet) add(code string) { s[code] = struct{}{} }

func (s codeSet) sorted() []string {
	if len(s) == 0 {
		return nil
	}
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	slices.Sort(out)
	return out
}
