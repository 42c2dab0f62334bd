// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"database/sql"
	"math"
)

// Odds returns licenses/applications, or 0 when either count is missing or zero.
func Odds(applications, licenses sql.NullInt64) float64 {
	p, ok := Probability(applications, licenses)
	if !ok {
		return 0.0
	}
	return p
}

// Probability is Odds with an explicit "no data" result instead of 0.
func Probability(applications, licenses sql.NullInt64) (float64, bool) {
	if !applications.Valid || !licenses.Valid {
		return 0, false
	}
	if applications.Int64 == 0 || licenses.Int64 == 0 {
		return 0, false
	}
	return float64(licenses.Int64) / float64(applications.Int64), true
}

// Score is the expected chance of drawing and then harvesting an animal with
// a single application.
func Score(successRate, odds float64) float64 {
	return successRate * odds
}

// OneInN converts a probability into "1 in N" form, rounding half to even.
// ok is false for non-positive probabilities.
func OneInN(p float64) (int, bool) {
	if p <= 0 {
		return 0, false
	}
	return int(math.RoundToEven(1.0 / p)), true
}
