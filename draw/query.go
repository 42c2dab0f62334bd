// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"fmt"
	"strings"
	"text/template"
)

// Query is a SQL statement with its positional arguments.
type Query struct {
	SQL  string
	Args []any
}

// latestHarvestJoin joins the Public harvest row from the most recent
// harvest year reported for each hunt.
const latestHarvestJoin = `
    LEFT JOIN (
      SELECT hs1.hunt_id,
             MAX(hs1.harvest_year) AS latest_harvest_year
      FROM harvest_stats hs1
      WHERE hs1.access_type = 'Public'
      GROUP BY hs1.hunt_id
    ) latest
      ON latest.hunt_id = h.hunt_id
    LEFT JOIN harvest_stats hs
      ON hs.hunt_id = h.hunt_id
     AND hs.harvest_year = latest.latest_harvest_year
     AND hs.access_type = 'Public'`

const drawOddsTemplate = `
    SELECT
      h.hunt_code,
      s.species_code,
      s.common_name AS species_name,
      h.unit_description,
      hd.hunt_name,
      hd.start_date,
      hd.end_date,
      dr.{{.Applications}} AS applications,
      dr.{{.Licenses}} AS licenses,
      hs.success_rate,
      hs.harvest_year,
      bl.bag_code
    FROM hunts h
    JOIN species s ON h.species_id = s.species_id
    JOIN draw_results dr
      ON dr.hunt_id = h.hunt_id
     AND dr.draw_year = ?
    JOIN hunt_dates hd
      ON hd.hunt_id = h.hunt_id
     AND hd.season_year = ?
    LEFT JOIN bag_limits bl
      ON bl.bag_limit_id = h.bag_limit_id
    {{.HarvestJoin}}
    WHERE h.is_active = 1
      AND s.species_code = ?`

const drawOddsOrderTemplate = ` ORDER BY dr.{{.Applications}} DESC LIMIT 50`

const bestHuntsTemplate = `
    SELECT
      h.hunt_code,
      h.unit_description,
      s.common_name AS species_name,
      hd.hunt_name,
      dr.{{.Applications}} AS applications,
      dr.{{.Licenses}} AS licenses,
      hs.success_rate,
      hs.harvest_year,
      bl.bag_code
    FROM hunts h
    JOIN species s ON h.species_id = s.species_id
    JOIN draw_results dr
      ON dr.hunt_id = h.hunt_id
     AND dr.draw_year = ?
    {{.HarvestJoin}}
    LEFT JOIN hunt_dates hd
      ON hd.hunt_id = h.hunt_id
     AND hd.season_year = ?
    LEFT JOIN bag_limits bl
      ON bl.bag_limit_id = h.bag_limit_id
    WHERE h.is_active = 1
      AND s.species_code = ?`

// Youth and mobility-impaired hunts are reserved access and never recommended.
const reservedAccessExclusion = `
      AND (
        h.unit_description IS NULL
        OR (LOWER(h.unit_description) NOT LIKE '%youth%' AND LOWER(h.unit_description) NOT LIKE '%mobility%')
      )
      AND (
        hd.hunt_name IS NULL
        OR (LOWER(hd.hunt_name) NOT LIKE '%youth%' AND LOWER(hd.hunt_name) NOT LIKE '%mobility%')
      )`

const planTemplate = `
    SELECT
      h.hunt_code,
      s.common_name AS species_name,
      dr.{{.Applications}} AS applications,
      dr.{{.Licenses}} AS licenses
    FROM hunts h
    JOIN species s ON h.species_id = s.species_id
    JOIN draw_results dr
      ON dr.hunt_id = h.hunt_id
     AND dr.draw_year = ?
    WHERE s.species_code = ?
      AND h.hunt_code IN `

const huntsQuery = `
    SELECT h.hunt_code, h.unit_description
    FROM hunts h
    JOIN species s ON h.species_id = s.species_id
    WHERE s.species_code = ?
      AND h.is_active = 1
    ORDER BY h.hunt_code`

const bagLimitsQuery = `
    SELECT bag_code, label, plain_definition
    FROM bag_limits
    ORDER BY bag_code`

// poolQueries holds the statements rendered for one pool. Column names only
// ever come from poolConfigs, never from request input.
type poolQueries struct {
	drawOdds      string
	drawOddsOrder string
	bestHunts     string
	plan          string
}

var queriesByPool = mustRenderPoolQueries()

func mustRenderPoolQueries() map[Pool]poolQueries {
	out := make(map[Pool]poolQueries, len(poolConfigs))
	for pool, cfg := range poolConfigs {
		data := struct {
			Applications string
			Licenses     string
			HarvestJoin  string
		}{cfg.applicationsCol, cfg.licensesCol, latestHarvestJoin}

		out[pool] = poolQueries{
			drawOdds:      mustRender(drawOddsTemplate, data),
			drawOddsOrder: mustRender(drawOddsOrderTemplate, data),
			bestHunts:     mustRender(bestHuntsTemplate, data),
			plan:          mustRender(planTemplate, data),
		}
	}
	return out
}

func mustRender(text string, data any) string {
	tmpl := template.Must(template.New("query").Parse(text))
	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		panic(fmt.Sprintf("render query template: %v", err))
	}
	return sb.String()
}

func queriesFor(pool Pool) (poolQueries, error) {
	q, ok := queriesByPool[pool]
	if !ok {
		return poolQueries{}, fmt.Errorf("%w %q", ErrUnknownPoolQuery, pool)
	}
	return q, nil
}

// DrawOddsParams are the validated inputs of a draw-odds lookup.
type DrawOddsParams struct {
	Pool        Pool
	Weapon      string
	SpeciesCode string
	GMU         int
}

// DrawOddsQuery builds the draw-odds statement: active hunts of a species
// whose unit description mentions the GMU, ordered by the pool's application
// count and capped at 50 rows.
func DrawOddsQuery(p DrawOddsParams) (Query, error) {
	q, err := queriesFor(p.Pool)
	if err != nil {
		return Query{}, err
	}

	var sb strings.Builder
	sb.WriteString(q.drawOdds)
	args := []any{DrawYear, SeasonYear, p.SpeciesCode}

	gclause, gparams := GMUFilter(p.GMU)
	sb.WriteString(" AND ")
	sb.WriteString(gclause)
	args = append(args, gparams...)

	if clause, param, ok := WeaponFilter(p.Weapon); ok {
		sb.WriteString(" AND ")
		sb.WriteString(clause)
		args = append(args, param)
	}

	sb.WriteString(q.drawOddsOrder)

	return Query{SQL: sb.String(), Args: args}, nil
}

// BestHuntsQuery builds the candidate set for recommendations: every active
// hunt of the species with a draw result, minus reserved-access hunts.
func BestHuntsQuery(pool Pool, speciesCode, weapon string) (Query, error) {
	q, err := queriesFor(pool)
	if err != nil {
		return Query{}, err
	}

	var sb strings.Builder
	sb.WriteString(q.bestHunts)
	args := []any{DrawYear, SeasonYear, speciesCode}

	if clause, param, ok := WeaponFilter(weapon); ok {
		sb.WriteString(" AND ")
		sb.WriteString(clause)
		args = append(args, param)
	}

	sb.WriteString(reservedAccessExclusion)

	return Query{SQL: sb.String(), Args: args}, nil
}

// PlanQuery looks up the pool's draw counts for the given hunt codes.
func PlanQuery(pool Pool, speciesCode string, huntCodes []string) (Query, error) {
	q, err := queriesFor(pool)
	if err != nil {
		return Query{}, err
	}
	if len(huntCodes) == 0 {
		return Query{}, ErrChoiceCount
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(huntCodes)), ",")
	args := make([]any, 0, len(huntCodes)+2)
	args = append(args, DrawYear, speciesCode)
	for _, code := range huntCodes {
		args = append(args, code)
	}

	return Query{SQL: q.plan + "(" + placeholders + ")", Args: args}, nil
}

// HuntsQuery lists the active hunts of a species ordered by code.
func HuntsQuery(speciesCode string) Query {
	return Query{SQL: huntsQuery, Args: []any{speciesCode}}
}

// BagLimitsQuery lists every bag limit ordered by code.
func BagLimitsQuery() Query {
	return Query{SQL: bagLimitsQuery}
}
