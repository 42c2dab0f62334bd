// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"database/sql"
	"sort"

	"github.com/danielhkuo/nm-draw-odds/models"
)

// BestHuntsLimit caps the number of recommendations returned.
const BestHuntsLimit = 10

// Candidate is an unscored best-hunt row as read from the database.
type Candidate struct {
	HuntCode        string
	UnitDescription *string
	HuntName        *string
	SpeciesName     string
	Applications    sql.NullInt64
	Licenses        sql.NullInt64
	SuccessRate     sql.NullFloat64
	HarvestYear     *int
	BagCode         *string
}

// RankBestHunts scores candidates by success rate times draw odds and
// returns the top limit, highest score first. Candidates without usable
// counts or a success rate are dropped. Equal (score, odds) pairs keep their
// input order.
func RankBestHunts(candidates []Candidate, limit int) []models.BestHunt {
	scored := []models.BestHunt{}
	for _, c := range candidates {
		odds, ok := Probability(c.Applications, c.Licenses)
		if !ok || !c.SuccessRate.Valid || odds <= 0 {
			continue
		}

		scored = append(scored, models.BestHunt{
			HuntCode:        c.HuntCode,
			UnitDescription: c.UnitDescription,
			HuntName:        c.HuntName,
			SpeciesName:     c.SpeciesName,
			DrawOdds:        odds,
			SuccessRate:     c.SuccessRate.Float64,
			HarvestYear:     c.HarvestYear,
			BagCode:         c.BagCode,
			Score:           Score(c.SuccessRate.Float64, odds),
			Note:            ClassifyNote(&odds, c.HuntCode),
		})
	}

	sort.SliceStable(scored, func(i, j int) bool {
		if scored[i].Score != scored[j].Score {
			return scored[i].Score > scored[j].Score
		}
		return scored[i].DrawOdds > scored[j].DrawOdds
	})

	if limit >= 0 && len(scored) > limit {
		scored = scored[:limit]
	}
	return scored
}
