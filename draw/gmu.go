// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import (
	"strconv"
	"strings"
)

// gmuSuffixes are what may follow a unit number inside the free-text unit
// description. Every pattern also requires a space before the number.
var gmuSuffixes = []string{",", ":", " ", " and", ""}

// GMUFilter builds a disjunctive LIKE predicate matching gmu inside
// h.unit_description. Params are returned in the same order as the
// placeholders in the clause.
func GMUFilter(gmu int) (string, []any) {
	g := strconv.Itoa(gmu)

	clauses := make([]string, 0, len(gmuSuffixes))
	params := make([]any, 0, len(gmuSuffixes))
	for _, suffix := range gmuSuffixes {
		clauses = append(clauses, "h.unit_description LIKE ?")
		params = append(params, "% "+g+suffix+"%")
	}

	return "(" + strings.Join(clauses, " OR ") + ")", params
}
