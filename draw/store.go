// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/danielhkuo/nm-draw-odds/models"
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx.
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// FindDrawOdds runs the draw-odds query and computes odds for every row.
func FindDrawOdds(ctx context.Context, db Querier, p DrawOddsParams) ([]models.DrawOddsResult, error) {
	q, err := DrawOddsQuery(p)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query draw odds: %w", err)
	}
	defer rows.Close()

	results := []models.DrawOddsResult{}
	for rows.Next() {
		var (
			r                                models.DrawOddsResult
			unitDesc, huntName, start, end   sql.NullString
			bagCode                          sql.NullString
			applications, licenses, harvestY sql.NullInt64
			successRate                      sql.NullFloat64
		)
		if err := rows.Scan(
			&r.HuntCode, &r.SpeciesCode, &r.SpeciesName, &unitDesc,
			&huntName, &start, &end, &applications, &licenses,
			&successRate, &harvestY, &bagCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan draw odds row: %w", err)
		}

		r.UnitDescription = stringPtr(unitDesc)
		r.HuntName = stringPtr(huntName)
		r.StartDate = stringPtr(start)
		r.EndDate = stringPtr(end)
		r.DrawOdds = Odds(applications, licenses)
		r.SuccessRate = float64Ptr(successRate)
		r.HarvestYear = intPtr(harvestY)
		r.BagCode = stringPtr(bagCode)
		results = append(results, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read draw odds rows: %w", err)
	}

	return results, nil
}

// ListHunts returns the active hunts of a species for choice pickers.
func ListHunts(ctx context.Context, db Querier, speciesCode string) ([]models.HuntOption, error) {
	q := HuntsQuery(speciesCode)
	rows, err := db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query hunts: %w", err)
	}
	defer rows.Close()

	hunts := []models.HuntOption{}
	for rows.Next() {
		var code string
		var unitDesc sql.NullString
		if err := rows.Scan(&code, &unitDesc); err != nil {
			return nil, fmt.Errorf("failed to scan hunt: %w", err)
		}
		hunts = append(hunts, models.HuntOption{HuntCode: code, Label: HuntLabel(code, unitDesc.String)})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read hunts: %w", err)
	}

	return hunts, nil
}

// HuntLabel is "code - unit description", or just the code when there is no
// description.
func HuntLabel(huntCode, unitDescription string) string {
	if unitDescription == "" {
		return huntCode
	}
	return huntCode + " - " + unitDescription
}

// FindBestHunts loads the candidate hunts and ranks them.
func FindBestHunts(ctx context.Context, db Querier, pool Pool, speciesCode, weapon string) ([]models.BestHunt, error) {
	q, err := BestHuntsQuery(pool, speciesCode, weapon)
	if err != nil {
		return nil, err
	}

	rows, err := db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query best hunts: %w", err)
	}
	defer rows.Close()

	var candidates []Candidate
	for rows.Next() {
		var (
			c                  Candidate
			unitDesc, huntName sql.NullString
			bagCode            sql.NullString
			harvestYear        sql.NullInt64
		)
		if err := rows.Scan(
			&c.HuntCode, &unitDesc, &c.SpeciesName, &huntName,
			&c.Applications, &c.Licenses, &c.SuccessRate, &harvestYear, &bagCode,
		); err != nil {
			return nil, fmt.Errorf("failed to scan best hunt candidate: %w", err)
		}
		c.UnitDescription = stringPtr(unitDesc)
		c.HuntName = stringPtr(huntName)
		c.HarvestYear = intPtr(harvestYear)
		c.BagCode = stringPtr(bagCode)
		candidates = append(candidates, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read best hunt candidates: %w", err)
	}

	return RankBestHunts(candidates, BestHuntsLimit), nil
}

// ChoiceCounts are the pool's draw counts for one hunt code.
type ChoiceCounts struct {
	Applications sql.NullInt64
	Licenses     sql.NullInt64
}

// LookupChoices fetches draw counts for the hunt codes of a species. The
// returned species name is nil when none of the codes matched.
func LookupChoices(ctx context.Context, db Querier, pool Pool, speciesCode string, huntCodes []string) (map[string]ChoiceCounts, *string, error) {
	q, err := PlanQuery(pool, speciesCode, huntCodes)
	if err != nil {
		return nil, nil, err
	}

	rows, err := db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query plan choices: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]ChoiceCounts, len(huntCodes))
	var speciesName *string
	for rows.Next() {
		var code, name string
		var c ChoiceCounts
		if err := rows.Scan(&code, &name, &c.Applications, &c.Licenses); err != nil {
			return nil, nil, fmt.Errorf("failed to scan plan choice: %w", err)
		}
		counts[code] = c
		speciesName = &name
	}
	if err := rows.Err(); err != nil {
		return nil, nil, fmt.Errorf("failed to read plan choices: %w", err)
	}

	return counts, speciesName, nil
}

// ListBagLimits returns every bag limit sorted by code.
func ListBagLimits(ctx context.Context, db Querier) ([]models.BagLimit, error) {
	q := BagLimitsQuery()
	rows, err := db.QueryContext(ctx, q.SQL, q.Args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query bag limits: %w", err)
	}
	defer rows.Close()

	limits := []models.BagLimit{}
	for rows.Next() {
		var bl models.BagLimit
		var def sql.NullString
		if err := rows.Scan(&bl.BagCode, &bl.Label, &def); err != nil {
			return nil, fmt.Errorf("failed to scan bag limit: %w", err)
		}
		bl.PlainDefinition = stringPtr(def)
		limits = append(limits, bl)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read bag limits: %w", err)
	}

	return limits, nil
}
