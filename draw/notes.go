// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package draw

import "unicode/utf8"

// Tier buckets draw odds for the advisory notes.
type Tier string

const (
	TierHigh Tier = "high"
	TierMid  Tier = "mid"
	TierLow  Tier = "low"
)

const (
	highOddsThreshold = 0.25
	midOddsThreshold  = 0.10
)

// NoOddsNote is returned when a hunt has no odds to classify.
const NoOddsNote = "No odds data available for this hunt."

var noteTemplates = map[Tier][3]string{
	TierHigh: {
		"Textbook third choice safety hunt: very high odds without giving up much in the way of opportunity.",
		"Great safety pick. You are playing in the high odds tier here, which is exactly what you want for a third choice.",
		"This is the kind of hunt you park in the third slot when you actually want to go hunting instead of just buying a lottery ticket.",
	},
	TierMid: {
		"Nice middle of the road odds. This is a solid second choice if your first pick is a long shot.",
		"Good candidate for a second choice: odds are respectable and the success numbers say it is worth showing up prepared.",
		"Balanced odds for a second tier hunt. Not a gimme, but not a moonshot either.",
	},
	TierLow: {
		"Classic first choice tag: low odds, but the kind of hunt you swing for when you want something special.",
		"Treat this as a swing for the fences first choice. Odds are tight enough that it should not be sitting in your third slot.",
		"This belongs in your dream hunt bucket. Odds are slim, which is exactly what you expect for a true first choice.",
	},
}

// ClassifyTier buckets odds: high at 0.25 and above, mid from 0.10, low below.
func ClassifyTier(odds float64) Tier {
	switch {
	case odds >= highOddsThreshold:
		return TierHigh
	case odds >= midOddsThreshold:
		return TierMid
	default:
		return TierLow
	}
}

// ClassifyNote picks the advisory sentence for a hunt. The sentence depends
// only on the odds tier and the last character of the hunt code, so the same
// hunt always reads the same way.
func ClassifyNote(odds *float64, huntCode string) string {
	if odds == nil {
		return NoOddsNote
	}
	return noteTemplates[ClassifyTier(*odds)][noteIndex(huntCode)]
}

// noteIndex is the code point of the last character mod 3.
func noteIndex(huntCode string) int {
	last, _ := utf8.DecodeLastRuneInString(huntCode)
	if last == utf8.RuneError {
		return 0
	}
	return int(last) % 3
}
